package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/rigelrozanski/pubfig"
)

var (
	ProofCmd = &cobra.Command{
		Use:   "proof [out.pdf]",
		Short: "generate a calibration proof sheet pdf",
		Long: `generate a pdf with a quarter-inch grid and font samples, sized
so that it imports into the destination at true physical size -
measure the squares after import to verify the scaling

ex.: pubfig proof --dest figma --ppi 300 --size 8.5x11 proof.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: proofCmd,
	}

	sizeFlag string
)

func init() {
	ProofCmd.PersistentFlags().Float64Var(
		&ppiFlag, "ppi", 300, "pixel density of the destination frame")
	ProofCmd.PersistentFlags().StringVar(
		&sizeFlag, "size", "8.5x11", "true physical size in inches, WxH")
	RootCmd.AddCommand(ProofCmd)
}

func proofCmd(cmd *cobra.Command, args []string) error {
	split := strings.SplitN(sizeFlag, "x", 2)
	if len(split) != 2 {
		return fmt.Errorf("bad size %v, expected WxH", sizeFlag)
	}
	w, err := strconv.ParseFloat(split[0], 64)
	if err != nil {
		return fmt.Errorf("bad size %v: %v", sizeFlag, err)
	}
	h, err := strconv.ParseFloat(split[1], 64)
	if err != nil {
		return fmt.Errorf("bad size %v: %v", sizeFlag, err)
	}

	ps := pubfig.ProofSheet{Width: w, Height: h, PPI: ppiFlag, Dest: destFlag}
	pageW, pageH := ps.PageSize()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	ps.Print(pdf)

	return pdf.OutputFileAndClose(args[0])
}
