package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multigrid/config"
)

// NewSchemaCommand creates the schema command, which prints the CUE schema
// configuration files are validated against.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "schema",
		Short:         "Print the CUE schema for configuration files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.JSON() {
				return out.Success(map[string]string{"schema": config.Schema()}, nil)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.Schema())
			return err
		},
	}
}

// NewConfigCommand creates the config command, which prints the effective
// configuration (defaults applied) as YAML.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration generate would use, with defaults filled in.
Without --config this is the default configuration, a starting point for
new files.

Example:
  multigrid config > tiling.yaml
  multigrid config -c tiling.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(path)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.JSON() {
				return out.Success(cfg, nil)
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to render config", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "path to a YAML run configuration")

	return cmd
}
