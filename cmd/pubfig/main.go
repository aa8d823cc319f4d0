package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pubfig",
	Short: "size figures and fonts for import into vector editors",
}

var destFlag string

func init() {
	RootCmd.PersistentFlags().StringVar(
		&destFlag, "dest", "default", "destination editor (figma needs corrective scaling)")
}
