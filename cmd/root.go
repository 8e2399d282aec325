// Package cmd implements the CLI for wp2plus using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "wp2plus <file|url>",
	Short: "wp2plus converts a WordPress post into plain text for social posting",
	Long: `wp2plus reads a WordPress post exported as HTML and rewrites it as plain text:
*bold*, _italics_, numbered lists, and hyperlinks turned into [n] references.
Image captions are printed first, each followed by a divider.

Examples:
  wp2plus post.html
  wp2plus post.html -o post.txt
  wp2plus https://example.com/export/post.html --verbose`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
	RunE: runConvert,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every pipeline stage")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
