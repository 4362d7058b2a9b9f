// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
)

// flagValues mirrors config.Config for cobra binding; only flags the user
// actually set override the file.
type flagValues struct {
	configPath string
	cfg        config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	fv := &flagValues{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           "lvsearch",
		Short:         "State-space search (BFS, UCS, A*) with heuristic verification",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return err
			}
			log, err := logging.New(logging.Config{
				Level:  cfg.LogLevel,
				JSON:   cfg.LogJSON,
				Output: stderr,
			})
			if err != nil {
				return err
			}

			return execute(cmd.Context(), cfg, stdout, log)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&fv.configPath, "config", "", "YAML configuration file")
	f.StringVar(&fv.cfg.Algorithm, "alg", "", "search algorithm: bfs, ucs or astar")
	f.StringVar(&fv.cfg.States, "ss", "", "state space description file")
	f.StringVar(&fv.cfg.Grid, "grid", "", "grid map file, used instead of --ss")
	f.IntVar(&fv.cfg.Conn, "conn", 4, "grid connectivity: 4 or 8")
	f.StringVar(&fv.cfg.Heuristics, "h", "", "heuristic values file")
	f.BoolVar(&fv.cfg.CheckOptimistic, "check-optimistic", false, "verify that the heuristic never overestimates")
	f.BoolVar(&fv.cfg.CheckConsistent, "check-consistent", false, "verify that the heuristic is consistent on every transition")
	f.IntVar(&fv.cfg.Workers, "workers", 1, "parallel workers for heuristic verification")
	f.StringVar(&fv.cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.BoolVar(&fv.cfg.LogJSON, "log-json", false, "emit JSON logs on stderr")
	f.StringVar(&fv.cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}

// resolveConfig loads the YAML file and overlays explicitly set flags.
func resolveConfig(cmd *cobra.Command, fv *flagValues) (config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	overlay := map[string]func(){
		"alg":              func() { cfg.Algorithm = fv.cfg.Algorithm },
		"ss":               func() { cfg.States = fv.cfg.States },
		"grid":             func() { cfg.Grid = fv.cfg.Grid },
		"conn":             func() { cfg.Conn = fv.cfg.Conn },
		"h":                func() { cfg.Heuristics = fv.cfg.Heuristics },
		"check-optimistic": func() { cfg.CheckOptimistic = fv.cfg.CheckOptimistic },
		"check-consistent": func() { cfg.CheckConsistent = fv.cfg.CheckConsistent },
		"workers":          func() { cfg.Workers = fv.cfg.Workers },
		"log-level":        func() { cfg.LogLevel = fv.cfg.LogLevel },
		"log-json":         func() { cfg.LogJSON = fv.cfg.LogJSON },
		"metrics-file":     func() { cfg.MetricsFile = fv.cfg.MetricsFile },
	}
	for name, apply := range overlay {
		if f.Changed(name) {
			apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
