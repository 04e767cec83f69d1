package cmd

import (
	"fmt"

	"github.com/inovacc/stitchr/internal/core"
	"github.com/inovacc/stitchr/internal/encoding"
	"github.com/inovacc/stitchr/internal/model"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stitchr configuration",
	Long: `Commands for managing stitchr configuration.

Settings are read from the INI config file and can be overridden with
STITCHR_* environment variables, e.g. STITCHR_STORAGE_BACKEND=sqlite.

Available Commands:
  show      Print the effective configuration
  init      Write a config file with default values
  path      Print the config file location`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		core.ShowConfig(cmd.OutOrStdout(), cfg)
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with default values",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTolerantConfig: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		if encoding.FileExists(path) && !configForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}

		defaults := model.DefaultConfig()
		if err := core.SaveConfig(path, &defaults); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file location",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTolerantConfig: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}

	return core.DefaultConfigPath()
}
