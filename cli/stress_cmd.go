package cli

import (
	"fmt"

	"github.com/amp-labs/amp-ordered/logger"
	"github.com/spf13/cobra"
)

const summaryWidth = 78

func newStressCommand(a *app) *cobra.Command {
	var flagCfg StressConfig

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run a randomized insert/remove workload against many trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := mergeStressFlags(cmd, a.cfg.Stress, flagCfg)
			log := logger.Get(cmd.Context())

			if cfg.MetricsAddr != "" {
				_, stop, err := serveMetrics(cmd.Context(), log, cfg.MetricsAddr)
				if err != nil {
					return err
				}

				defer stop()
			}

			results, err := (&Stress{Config: cfg, Log: log}).Run(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), Banner(summarize(results), summaryWidth))

			return err
		},
	}

	def := DefaultConfig().Stress

	flags := cmd.Flags()
	flags.IntVar(&flagCfg.Trees, "trees", def.Trees, "number of independent trees")
	flags.IntVar(&flagCfg.Ops, "ops", def.Ops, "operations per tree")
	flags.Uint64Var(&flagCfg.Seed, "seed", def.Seed, "random seed; tree i uses seed+i")
	flags.StringVar(&flagCfg.Keys, "keys", def.Keys, "key type: int or uuid")
	flags.IntVar(&flagCfg.KeySpace, "key-space", def.KeySpace, "number of distinct keys")
	flags.IntVar(&flagCfg.Workers, "workers", def.Workers, "worker goroutines")
	flags.StringVar(&flagCfg.MetricsAddr, "metrics-addr", def.MetricsAddr, "serve Prometheus metrics on this address")

	return cmd
}

// mergeStressFlags overlays the flags that were set explicitly on the
// configured workload.
func mergeStressFlags(cmd *cobra.Command, cfg, flagCfg StressConfig) StressConfig {
	changed := cmd.Flags().Changed

	if changed("trees") {
		cfg.Trees = flagCfg.Trees
	}

	if changed("ops") {
		cfg.Ops = flagCfg.Ops
	}

	if changed("seed") {
		cfg.Seed = flagCfg.Seed
	}

	if changed("keys") {
		cfg.Keys = flagCfg.Keys
	}

	if changed("key-space") {
		cfg.KeySpace = flagCfg.KeySpace
	}

	if changed("workers") {
		cfg.Workers = flagCfg.Workers
	}

	if changed("metrics-addr") {
		cfg.MetricsAddr = flagCfg.MetricsAddr
	}

	return cfg
}

func summarize(results []StressResult) []string {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, fmt.Sprintf(" %-10s %8s %6s %10s %10s  %-16s",
		"tree", "elements", "height", "rotations", "fixups", "digest"))

	for _, r := range results {
		lines = append(lines, fmt.Sprintf(" %-10s %8d %6d %10d %10d  %016x",
			r.Tree, r.Elements, r.Height, r.Stats.Rotations,
			r.Stats.InsertFixups+r.Stats.DeleteFixups, r.Digest))
	}

	return lines
}
