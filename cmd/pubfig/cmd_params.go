package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rigelrozanski/pubfig"
)

var ParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "print the render parameters for the destination",
	Args:  cobra.NoArgs,
	RunE:  paramsCmd,
}

func init() {
	RootCmd.AddCommand(ParamsCmd)
}

func paramsCmd(cmd *cobra.Command, args []string) error {
	p, _ := pubfig.Params(destFlag)
	fmt.Printf("font.family   %v\n", p.FontFamily)
	fmt.Printf("size.base     %gpt\n", p.BaseSize)
	fmt.Printf("size.tick     %gpt\n", p.TickSize)
	fmt.Printf("size.title    %gpt\n", p.TitleSize)
	fmt.Printf("dpi.display   %g\n", p.DisplayDPI)
	fmt.Printf("dpi.save      %g\n", p.SaveDPI)
	fmt.Printf("text-as-text  %v\n", p.TextAsText)
	return nil
}
