package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rigelrozanski/pubfig"
)

var (
	FrameCmd = &cobra.Command{
		Use:   "frame [inches...]",
		Short: "pixel-frame arithmetic for a figure's physical size",
		Long: `print the destination frame size in pixels and the size to
request from the renderer, for figure dimensions given in inches

ex.: pubfig frame --dest figma --ppi 300 8.5 11`,
		Args: cobra.MinimumNArgs(1),
		RunE: frameCmd,
	}

	ppiFlag float64
)

func init() {
	FrameCmd.PersistentFlags().Float64Var(
		&ppiFlag, "ppi", 300, "pixel density of the destination frame")
	RootCmd.AddCommand(FrameCmd)
}

func frameCmd(cmd *cobra.Command, args []string) error {
	inches := make([]float64, len(args))
	for i, arg := range args {
		in, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad dimension %q: %v", arg, err)
		}
		inches[i] = in
	}

	px := pubfig.FramePx(ppiFlag, inches...)
	req := pubfig.RequestSize(destFlag, ppiFlag, inches...)
	for i := range inches {
		fmt.Printf("%gin\tframe %gpx\trequest %gin\n", inches[i], px[i], req[i])
	}
	return nil
}
