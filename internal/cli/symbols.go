package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/docharvest/internal/collector"
	"github.com/mvp-joe/docharvest/internal/storage"
)

var symbolsFlags harvestFlags

var symbolsCmd = &cobra.Command{
	Use:   "symbols <root>",
	Short: "Extract symbol-usage occurrences from a source tree",
	Long: `Walks the given root directory, extracts symbol usages (calls, field
accesses, constructions) from every supported source file, and writes the
records to a JSON file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCollector(&symbolsFlags)
		if err != nil {
			return err
		}

		symbols, err := c.CollectSymbols(args[0])
		if err != nil {
			return err
		}

		if err := collector.SaveSymbolsJSON(symbols, symbolsFlags.output); err != nil {
			return err
		}

		if symbolsFlags.sqlite != "" {
			store, err := storage.Open(symbolsFlags.sqlite)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveSymbols(symbols); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
	registerHarvestFlags(symbolsCmd, &symbolsFlags, "symbols.json")
}
