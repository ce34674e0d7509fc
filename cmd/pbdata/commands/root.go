package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pbdata",
	Short: "Inspect growable buffers and tabular field values",
	Long: `pbdata - command line tools for the pb-data buffer library.

Commands:
  fill      Stream a file or stdin into a growable memory buffer and
            report how the buffer grew under the chosen policy
  classify  Run the string-classification predicates over values

Examples:
  # Fill a buffer from a file with a doubling policy capped at 1 MiB
  pbdata fill --policy exponential --initial-size 4096 --max-size 1048576 data.bin

  # Load the buffer profile from a YAML file instead of flags
  pbdata fill -f profile.yaml data.bin

  # Classify values
  pbdata classify 42 3.14 2024-01-15 0xff hello`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// IsVerbose reports whether the global verbose flag is set.
func IsVerbose() bool {
	return verbose
}
