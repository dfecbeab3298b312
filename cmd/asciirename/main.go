// Command asciirename renames files and directories whose names contain
// non-ASCII or shell-unsafe characters to safe ASCII equivalents. The
// process exit code is the number of skipped operations, so 0 means every
// planned rename succeeded.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/asciirename/internal/config"
	"github.com/backmassage/asciirename/internal/fsx"
	"github.com/backmassage/asciirename/internal/logging"
	"github.com/backmassage/asciirename/internal/pipeline"
)

// version is shown by --version; override at build time with
// -ldflags "-X main.version=...".
var version = "1.0.0-dev"

// exitBadArgs is returned for unrecognized flags, before any filesystem
// work begins.
const exitBadArgs = 255

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	var (
		showVersion bool
		forceColor  bool
		noColor     bool
		skipped     int
	)

	root := &cobra.Command{
		Use:   "asciirename [flags] [paths...]",
		Short: "Rename paths to shell-safe ASCII names",
		Long: "asciirename renames files and directories whose names contain\n" +
			"non-ASCII characters to best-effort ASCII equivalents, replacing\n" +
			"shell metacharacters with underscores. Ancestor directories of each\n" +
			"argument are candidates too, processed deepest first.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(os.Stdout, "asciirename v"+version)
				return nil
			}
			if len(args) == 0 {
				fmt.Fprintln(os.Stdout, "asciirename: try 'asciirename --help' for more information")
				return nil
			}

			if noColor {
				cfg.ColorMode = config.ColorNever
			} else if forceColor {
				cfg.ColorMode = config.ColorAlways
			}
			cfg.Paths = args
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.NewLogger(&cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			stats := pipeline.Run(&cfg, log, fsx.OS{})
			skipped = stats.Skipped
			return nil
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&cfg.NoOp, "no-op", "n", false, "Show what would happen but don't actually rename path(s)")
	flags.BoolVarP(&cfg.Overwrite, "overwrite", "o", false, "Overwrite existing path(s)")
	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "Rename files and subdirectories recursively")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Make the output more verbose")
	flags.BoolVarP(&showVersion, "version", "V", false, "Show version number and exit")
	flags.BoolVar(&forceColor, "color", false, "Force colored output")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.StringVarP(&cfg.LogFile, "log", "l", "", "Append output to a log file")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v. Run with --help for usage info.\n", err)
		return exitBadArgs
	}
	return skipped
}
