package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hooks/internal/config"
)

func configCmd(g *globalFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after defaults and flags are applied,
in hooks.toml format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg
			if file != "" {
				var err error
				if cfg, err = config.Load(file); err != nil {
					return err
				}
			}

			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			if cfg.Path() != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", cfg.Path())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "# defaults")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), data)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Configuration file to print instead of --config")

	return cmd
}
