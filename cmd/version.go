package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mrivnak/pi-fan/internal/ui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pi-fan",
	Long:  `All software has versions. This is pi-fan's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("1.0.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
