package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"rise/internal/app"
	"rise/internal/core"
	"rise/internal/palette"
	"rise/internal/style"

	"github.com/spf13/cobra"
)

func paramsCmd() *cobra.Command {
	flags := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the style parameters drawn for a seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, _, err := style.New(flags.ResolveSeed(), palette.Catalogue)
			if err != nil {
				return err
			}
			return writeSnapshot(cmd.OutOrStdout(), params.Snapshot())
		},
	}
	cmd.Flags().Int64VarP(&flags.Seed, "seed", "s", flags.Seed, "seed for the run")
	cmd.Flags().StringVar(&flags.Hash, "hash", flags.Hash, "derive the seed from a hash token")
	return cmd
}

func writeSnapshot(w io.Writer, snap core.ParameterSnapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, g := range snap.Groups {
		fmt.Fprintf(tw, "[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(tw, "  %s\t%s\n", p.Key, p.Value)
		}
	}
	return tw.Flush()
}

func palettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the palette catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, p := range palette.Catalogue {
				fmt.Fprintf(tw, "%d\t%s\t%v\n", i, p.Name, p.Stops)
			}
			return tw.Flush()
		},
	}
}
