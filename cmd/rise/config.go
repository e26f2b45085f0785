package main

import (
	"rise/internal/app"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	flags := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective tuning file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
	flags.Bind(cmd.Flags())
	for _, name := range []string{"seed", "hash", "output"} {
		_ = cmd.Flags().MarkHidden(name)
	}
	return cmd
}
