package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/docharvest/internal/collector"
	"github.com/mvp-joe/docharvest/internal/storage"
)

var docstringsFlags harvestFlags

var docstringsCmd = &cobra.Command{
	Use:   "docstrings <root>",
	Short: "Extract documentation comments from a source tree",
	Long: `Walks the given root directory, extracts documentation comments from every
supported source file, and writes the records to a JSON file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCollector(&docstringsFlags)
		if err != nil {
			return err
		}

		docs, err := c.CollectDocstrings(args[0])
		if err != nil {
			return err
		}

		if err := collector.SaveDocstringsJSON(docs, docstringsFlags.output); err != nil {
			return err
		}

		if docstringsFlags.sqlite != "" {
			store, err := storage.Open(docstringsFlags.sqlite)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveDocstrings(docs); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(docstringsCmd)
	registerHarvestFlags(docstringsCmd, &docstringsFlags, "docstrings.json")
}
