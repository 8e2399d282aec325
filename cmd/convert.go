package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/wp2plus/core"
	"github.com/gaurav-prasanna/wp2plus/core/fetch"
	"github.com/gaurav-prasanna/wp2plus/core/output"
	"github.com/gaurav-prasanna/wp2plus/core/pipeline"
)

// Flag variables.
var (
	flagOutput  string
	flagDivider string
)

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the result to this file instead of stdout")
	rootCmd.Flags().StringVar(&flagDivider, "divider", output.DefaultDivider, "Line printed between figures and before the body")
}

func runConvert(cmd *cobra.Command, args []string) error {
	return convert(cmd, args[0], fetch.New(), output.New(flagOutput, flagDivider))
}

// convert runs one source through the pipeline: load, convert, emit.
func convert(cmd *cobra.Command, source string, loader core.Loader, writer *output.Writer) error {
	logger := slog.Default()

	raw, err := loader.Load(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	logger.Debug("loaded source", "source", source, "bytes", len(raw))

	res, err := pipeline.New(logger).Convert(raw)
	if err != nil {
		return err
	}

	if err := writer.Write(res); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	if writer.Path != "" {
		logger.Info("written", "path", writer.Path, "figures", len(res.Figures))
	}
	return nil
}
