package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SymphoniaLauren/MDL-Ply-Converter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the mdl2ply configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the current settings as a YAML config file",
	Long:  "Write the effective settings (defaults, config file and flags) to path, or to the user config directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		if len(args) == 1 {
			path = args[0]
		}
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
