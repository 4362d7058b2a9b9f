// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/metrics"
	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
)

// execute performs one configured run: search first, then the optimism
// check, then the consistency check.
func execute(ctx context.Context, cfg config.Config, stdout io.Writer, log *slog.Logger) error {
	g, label, err := loadGraph(cfg, log)
	if err != nil {
		return err
	}
	rec := metrics.New()

	if cfg.Algorithm == "" && !cfg.CheckOptimistic && !cfg.CheckConsistent {
		log.Warn("nothing to do: pass --alg or a heuristic check")
	}

	if cfg.Algorithm != "" {
		if err := runSearch(ctx, cfg, g, stdout, log, rec); err != nil {
			return err
		}
	}

	verifyOpts := []heuristic.Option{
		heuristic.WithContext(ctx),
		heuristic.WithWorkers(cfg.Workers),
	}
	if cfg.CheckOptimistic {
		rep, err := heuristic.CheckOptimistic(g, verifyOpts...)
		if err != nil {
			return err
		}
		log.Info("optimism checked", "nodes", len(rep.Conditions), "optimistic", rep.Optimistic)
		rec.ObserveOptimism(rep)
		if err := report.WriteOptimism(stdout, label, rep); err != nil {
			return err
		}
	}
	if cfg.CheckConsistent {
		rep, err := heuristic.CheckConsistent(g, verifyOpts...)
		if err != nil {
			return err
		}
		log.Info("consistency checked", "edges", len(rep.Conditions), "consistent", rep.Consistent)
		rec.ObserveConsistency(rep)
		if err := report.WriteConsistency(stdout, label, rep); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		if err := rec.WriteFile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Debug("metrics written", "path", cfg.MetricsFile)
	}

	return nil
}

// loadGraph builds the frozen state space and returns the label printed in
// heuristic report headers.
func loadGraph(cfg config.Config, log *slog.Logger) (*core.Graph, string, error) {
	var (
		g     *core.Graph
		label = cfg.Heuristics
		err   error
	)
	if cfg.Grid != "" {
		g, label, err = loadGrid(cfg, log)
	} else {
		g, err = loader.LoadStates(cfg.States)
	}
	if err != nil {
		return nil, "", err
	}
	if cfg.NeedsHeuristics() {
		if err := loader.LoadHeuristics(cfg.Heuristics, g); err != nil {
			return nil, "", err
		}
		label = cfg.Heuristics
	}
	g.Freeze()
	log.Debug("state space loaded",
		"states", g.NodeCount(), "transitions", g.EdgeCount(),
		"start", g.Start(), "goals", g.Goals())

	return g, label, nil
}

func loadGrid(cfg config.Config, log *slog.Logger) (*core.Graph, string, error) {
	conn, err := gridgraph.ParseConnectivity(cfg.Conn)
	if err != nil {
		return nil, "", err
	}
	m, err := gridgraph.LoadGrid(cfg.Grid, gridgraph.GridOptions{Conn: conn})
	if err != nil {
		return nil, "", err
	}
	reachable := false
	for _, goal := range m.Goals {
		if m.Grid.Connected(m.Start, goal) {
			reachable = true
			break
		}
	}
	if !reachable {
		log.Info("no goal cell is connected to the start cell", "grid", cfg.Grid)
	}
	g, err := m.ToCoreGraph()
	if err != nil {
		return nil, "", err
	}

	return g, gridgraph.HeuristicName(conn), nil
}

func runSearch(ctx context.Context, cfg config.Config, g *core.Graph, stdout io.Writer, log *slog.Logger, rec *metrics.Recorder) error {
	opts := []search.Option{search.WithContext(ctx)}
	if log.Enabled(ctx, slog.LevelDebug) {
		opts = append(opts, search.WithOnExpand(func(id string, cost float64) {
			log.Debug("expand", "state", id, "g", cost)
		}))
	}

	began := time.Now()
	res, err := search.Run(cfg.Algorithm, g, g.Start(), nil, g.IsGoal, opts...)
	if err != nil {
		return fmt.Errorf("search %s: %w", cfg.Algorithm, err)
	}
	elapsed := time.Since(began)

	if res.Algorithm == "" {
		log.Warn("unknown algorithm, reporting empty result", "alg", cfg.Algorithm)
	}
	log.Info("search finished",
		"alg", res.Algorithm, "found", res.Found, "visited", res.StatesVisited, "elapsed", elapsed)
	rec.ObserveSearch(res, elapsed)

	return report.WriteSearch(stdout, res)
}
