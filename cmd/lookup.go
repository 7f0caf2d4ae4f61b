package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/openmtg/cardscribe/internal/config"
	"github.com/openmtg/cardscribe/internal/database"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [card name]",
	Short: "Look up a card's type tags in a generated database",
	Long: `Lookup reads a generated database file and prints the type tags recorded
for a card. Names match case-insensitively, and a dual-faced card can be
found by either face name.

You can point at a database file with the --database flag; otherwise the
configured output path is used.

Examples:
  cardscribe lookup "Sink into Stupor"
  cardscribe lookup --database modern_types.js soporific springs`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		dbPath, _ := cmd.Flags().GetString("database")
		if dbPath == "" {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %v", err)
			}
			dbPath = cfg.OutputPath
		}

		// Check if the database exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s (run 'cardscribe build' first)", dbPath)
		}

		cards, err := database.Read(dbPath)
		if err != nil {
			return fmt.Errorf("error loading database: %v", err)
		}

		types, ok := cards[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("card not found: %s", name)
		}

		fmt.Println(color.CyanString("Card:  ") + color.HiWhiteString("%s", strings.ToLower(name)))
		fmt.Println(color.CyanString("Types: ") + color.HiWhiteString("%s", strings.Join(types, " ")))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().StringP("database", "d", "", "Path to a generated database file")
}
