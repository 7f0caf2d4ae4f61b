package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardscribe",
	Short: "Tool for building card type databases from MTGJSON",
	Long: `Cardscribe is a command-line tool for turning MTGJSON atomic card datasets
into compact, script-loadable card type databases.`,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
