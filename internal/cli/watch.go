package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/docharvest/internal/collector"
)

var watchFlags harvestFlags

var watchCmd = &cobra.Command{
	Use:   "watch <root>",
	Short: "Continuously re-harvest docstrings as files change",
	Long: `Performs an initial docstring harvest of the root directory, then watches
it for changes and rewrites the output JSON after each batch of edits.
Stops on SIGINT/SIGTERM.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootDir := args[0]

		c, err := newCollector(&watchFlags)
		if err != nil {
			return err
		}

		harvest := func(c *collector.Collector, root string) {
			docs, err := c.CollectDocstrings(root)
			if err != nil {
				log.Printf("Warning: harvest failed: %v", err)
				return
			}
			if err := collector.SaveDocstringsJSON(docs, watchFlags.output); err != nil {
				log.Printf("Warning: failed to save output: %v", err)
			}
		}

		harvest(c, rootDir)

		watcher, err := collector.NewWatcher(c, rootDir, harvest)
		if err != nil {
			return err
		}
		defer watcher.Stop()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		watcher.Start(ctx)

		log.Printf("Watching %s (Ctrl-C to stop)", rootDir)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	registerHarvestFlags(watchCmd, &watchFlags, "docstrings.json")
}
