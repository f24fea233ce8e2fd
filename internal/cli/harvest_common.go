package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mvp-joe/docharvest/internal/collector"
	"github.com/mvp-joe/docharvest/internal/extract"
)

// harvestFlags are shared by the docstrings, symbols, and watch commands.
type harvestFlags struct {
	output   string
	langs    []string
	ignore   []string
	parallel int
	sqlite   string
}

func registerHarvestFlags(cmd *cobra.Command, flags *harvestFlags, defaultOutput string) {
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultOutput, "output JSON file")
	cmd.Flags().StringSliceVar(&flags.langs, "lang", nil, "languages to harvest (default: all)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip (e.g. 'node_modules/**')")
	cmd.Flags().IntVar(&flags.parallel, "parallel", 1, "number of files processed concurrently")
	cmd.Flags().StringVar(&flags.sqlite, "sqlite", "", "also persist records to this SQLite database")

	viper.BindPFlag("lang", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("ignore", cmd.Flags().Lookup("ignore"))
	viper.BindPFlag("parallel", cmd.Flags().Lookup("parallel"))
}

// newCollector builds a collector from the resolved flag/config values.
func newCollector(flags *harvestFlags) (*collector.Collector, error) {
	langs := flags.langs
	if len(langs) == 0 {
		langs = viper.GetStringSlice("lang")
	}
	extractors, err := extract.ExtractorsFor(langs)
	if err != nil {
		return nil, err
	}

	ignore := flags.ignore
	if len(ignore) == 0 {
		ignore = viper.GetStringSlice("ignore")
	}

	parallel := flags.parallel
	if parallel <= 1 && viper.IsSet("parallel") {
		parallel = viper.GetInt("parallel")
	}
	if parallel < 1 {
		return nil, fmt.Errorf("--parallel must be at least 1, got %d", parallel)
	}

	c := collector.New(extractors,
		collector.WithIgnorePatterns(ignore),
		collector.WithWorkers(parallel),
	)

	if !viper.GetBool("quiet") {
		reporter := newProgressReporter()
		c.OnProgress = reporter.onFile
	}

	return c, nil
}
