package main

import (
	"fmt"

	"rise/internal/app"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	flags := app.NewConfig()
	var digest bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one seed to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			seed := flags.ResolveSeed()
			res, err := app.Render(cmd.Context(), app.Job{
				Config: cfg,
				Seed:   seed,
				Output: flags.OutputPath(seed),
				Stdout: cmd.OutOrStdout(),
				Record: digest,
			}, log)
			if err != nil {
				return err
			}
			if digest {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s  %d ops  seed %d\n", res.Digest, res.Ops, res.Seed)
			}
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	cmd.Flags().BoolVar(&digest, "digest", false, "print a SHA-256 digest of the draw calls")
	return cmd
}
