// mdl2ply converts Tales of Rebirth / Tales of Destiny 2 MDL models to PLY.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/SymphoniaLauren/MDL-Ply-Converter/internal/config"
	"github.com/SymphoniaLauren/MDL-Ply-Converter/internal/convert"
	"github.com/SymphoniaLauren/MDL-Ply-Converter/internal/logger"
	"github.com/SymphoniaLauren/MDL-Ply-Converter/version"
)

var (
	flags config.Flags
	cfg   *config.Config
)

// out prints counts with digit grouping.
var out = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   "mdl2ply <input> <output>",
	Short: "Convert MDL models to PLY",
	Long: `mdl2ply converts Tales of Rebirth / Tales of Destiny 2 MDL models to the
PLY format for use in conventional 3D modelling software.

Single MDL files (starting with 'MDL@') are written to <output> as-is.
Packed MDL files hold several models; each one is written to <output> with
the model index inserted before the extension (body.ply -> body0.ply, body1.ply, ...).`,
	Example: `  mdl2ply chara.mdl chara.ply
  mdl2ply field.bin field.ply
  mdl2ply info field.bin`,
	Args:              cobra.ExactArgs(2),
	PersistentPreRunE: setup,
	RunE:              runConvert,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.Version = version.String()
	flags.Register(rootCmd.PersistentFlags())
}

// setup loads configuration and initializes logging before any command runs.
// help needs neither, so a broken config file cannot hide the usage text.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	var err error
	cfg, err = config.Load(&flags)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}

	logger.Debug("Configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("level", cfg.Logging.Level),
		zap.Int("workers", cfg.Output.Workers),
	)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	written, err := convert.ConvertFile(cmd.Context(), input, convert.OutputSpec{
		Path:    output,
		Comment: cfg.Output.Comment,
		Workers: cfg.Output.Workers,
	})
	if err != nil {
		return err
	}

	for _, w := range written {
		out.Fprintf(cmd.OutOrStdout(), "Model %d exported: %s (%d vertices, %d faces)\n", w.Model, w.Path, w.Vertices, w.Faces)
	}
	switch len(written) {
	case 0:
		fmt.Fprintln(cmd.OutOrStdout(), "No models in input, nothing written.")
	case 1:
		fmt.Fprintln(cmd.OutOrStdout(), "File written successfully!")
	default:
		out.Fprintf(cmd.OutOrStdout(), "%d models exported successfully.\n", len(written))
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error("Command failed", zap.Error(err))
	}
	logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
