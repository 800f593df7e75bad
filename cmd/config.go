package cmd

import (
	"fmt"

	"github.com/connorhough/entercaptcha/internal/config"
	"github.com/connorhough/entercaptcha/internal/iostreams"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd(streams *iostreams.IOStreams) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage entercaptcha configuration",
		Long:  `Get and set entercaptcha configuration values.`,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get a configuration value",
			Long:  `Get a configuration value by key.`,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := config.GetValue(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(streams.Out, value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Long:  `Set a configuration value by key.`,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return config.SetValue(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(streams.Out, path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a commented config file",
			Long:  `Write the default configuration template unless a config file already exists.`,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configPath()
				if err != nil {
					return err
				}
				created, err := config.EnsureConfigExists(path)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(streams.Out, "Wrote %s\n", path)
				} else {
					fmt.Fprintf(streams.Out, "Config already exists at %s\n", path)
				}
				return nil
			},
		},
	)

	return configCmd
}

// configPath prefers the file viper loaded, then --config, then the default location.
func configPath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}
