package cmd

import (
	"fmt"

	"github.com/openmtg/cardscribe/internal/config"
	"github.com/openmtg/cardscribe/internal/mtgjson"
	"github.com/spf13/cobra"
)

// datasetsCmd represents the datasets command group
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage the atomic datasets cardscribe builds from",
	Long:  `Commands for listing the known MTGJSON atomic datasets and choosing the default.`,
}

// datasetsListCmd represents the datasets ls command
var datasetsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the known atomic datasets",
	Run: func(cmd *cobra.Command, args []string) {
		// Get default dataset
		defaultDataset, err := config.GetDefaultDataset()
		if err != nil {
			fmt.Printf("Error getting default dataset: %v\n", err)
			return
		}

		for _, name := range mtgjson.KnownDatasets {
			if name == defaultDataset {
				fmt.Printf("* %s [DEFAULT]\n", name)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}
	},
}

// datasetsSetDefaultCmd represents the datasets set-default command
var datasetsSetDefaultCmd = &cobra.Command{
	Use:   "set-default [dataset]",
	Short: "Set the default atomic dataset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		// Check that the dataset is one we know how to fetch
		if !mtgjson.IsKnownDataset(name) {
			fmt.Printf("Error: unknown dataset %s (see 'cardscribe datasets ls')\n", name)
			return
		}

		// Set as default
		if err := config.SetDefaultDataset(name); err != nil {
			fmt.Printf("Error setting default dataset: %v\n", err)
			return
		}

		fmt.Printf("Default dataset set to: %s\n", name)
	},
}

func init() {
	RootCmd.AddCommand(datasetsCmd)
	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsSetDefaultCmd)
}
