package main

import (
	"fmt"
	"os"
	"runtime"

	"rise/internal/app"

	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	flags := app.NewConfig()
	var (
		count   int
		workers int
		dir     string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render a run of consecutive seeds in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			seeds := make([]int64, count)
			for i := range seeds {
				seeds[i] = flags.Seed + int64(i)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Rendering %d seeds (%d workers)\n", count, workers)
			results, err := app.RenderBatch(cmd.Context(), app.Batch{
				Config:  cfg,
				Seeds:   seeds,
				Workers: workers,
				Dir:     dir,
			}, log)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", r.Seed, r.Params.PaletteName, r.Params.Mode(), r.Path)
			}
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of seeds, starting at --seed")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	_ = cmd.Flags().MarkHidden("output")
	return cmd
}
