package main

import (
	"errors"
	"fmt"

	"rise/internal/app"

	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	flags := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open an interactive viewer (R new seed, Backspace previous, H panel, G grid, P save, Q quit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			err = app.Run(cfg, flags.ResolveSeed(), log)
			if errors.Is(err, app.ErrNoViewer) {
				fmt.Fprintln(cmd.ErrOrStderr(), "The viewer requires the ebiten build tag.")
				fmt.Fprintln(cmd.ErrOrStderr(), "Re-run with `go run -tags ebiten ./cmd/rise view` or build with `-tags ebiten`.")
			}
			return err
		},
	}
	flags.Bind(cmd.Flags())
	return cmd
}
