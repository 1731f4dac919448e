package main

import (
	"fmt"
	"os"

	"github.com/monobilisim/rammon/common"
	"github.com/monobilisim/rammon/ramHealth"
	"github.com/spf13/cobra"
)

var RammonVersion = "devel"

var RootCmd = &cobra.Command{
	Use:     "rammon",
	Short:   "Lightweight RAM monitor",
	Long:    "rammon redraws host memory usage and browser/editor memory every interval until interrupted",
	Version: RammonVersion,
	Args:    cobra.NoArgs,
	Run:     ramHealth.Main,
}

func main() {
	common.Version = RammonVersion

	RootCmd.Flags().Bool("once", false, "Print a single snapshot and exit")
	RootCmd.Flags().IntP("interval", "i", 30, "Seconds between two snapshots")

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
