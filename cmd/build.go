package cmd

import (
	"fmt"
	"os"

	"github.com/openmtg/cardscribe/internal/config"
	"github.com/openmtg/cardscribe/internal/database"
	"github.com/openmtg/cardscribe/internal/index"
	"github.com/openmtg/cardscribe/internal/mtgjson"
	"github.com/openmtg/cardscribe/internal/progress"
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetch an atomic dataset and build the card type database",
	Long: `Build downloads an MTGJSON atomic dataset, derives the type tags of every
card name, and writes them out as a script-loadable database file.

The dataset and output path come from your config file unless overridden
with flags. Alternate-art ("A-") card names are excluded; dual-faced cards
are indexed under the full name and once per face.

Examples:
  cardscribe build
  cardscribe build --dataset StandardAtomic --output standard_types.js`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		dataset, _ := cmd.Flags().GetString("dataset")
		if dataset == "" {
			dataset = cfg.DefaultDataset
		}
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.OutputPath
		}

		fmt.Println("Downloading data...")
		client := mtgjson.NewClient()
		meter := progress.New(os.Stderr, "Downloading", 0, progress.Bytes)
		ds, err := client.FetchDataset(dataset, meter)
		if err != nil {
			return err
		}

		procMeter := progress.New(os.Stderr, "Processing cards", int64(ds.Len()), progress.Count)
		ix, err := index.Build(ds, index.BuildOptions{
			SkipLog:  os.Stdout,
			Progress: func(done, total int) { procMeter.Add(1) },
		})
		if err != nil {
			return err
		}
		procMeter.Finish()

		fmt.Println("\nWriting to file...")
		if err := database.Write(output, ix); err != nil {
			return err
		}

		fmt.Println("Done!")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("dataset", "s", "", "Atomic dataset to fetch (see 'cardscribe datasets ls')")
	buildCmd.Flags().StringP("output", "o", "", "Path of the database file to write")
}
