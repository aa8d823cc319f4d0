package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigelrozanski/pubfig"
)

var ScaleCmd = &cobra.Command{
	Use:   "scale [measurements]",
	Short: "scale measurements for the destination",
	Long: `scale one or more measurements by the destination's factor,
printing the value (in pt) to hand to the renderer

measurements take a unit suffix (in, mm, cm, pt, px);
bare numbers are taken as pt

ex.: pubfig scale --dest figma 8.5in 11in`,
	Args: cobra.MinimumNArgs(1),
	RunE: scaleCmd,
}

func init() {
	RootCmd.AddCommand(ScaleCmd)
}

func scaleCmd(cmd *cobra.Command, args []string) error {
	return pubfig.With(destFlag, func() error {
		for _, arg := range args {
			pt, err := pubfig.ScaleLength(arg)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%gpt\n", arg, pt)
		}
		return nil
	})
}
