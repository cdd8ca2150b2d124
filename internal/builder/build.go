package builder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tilefield/wfcgen/internal/catalog"
	"github.com/tilefield/wfcgen/internal/chunk"
	"github.com/tilefield/wfcgen/internal/config"
	"github.com/tilefield/wfcgen/internal/history"
	"github.com/tilefield/wfcgen/internal/logger"
	"github.com/tilefield/wfcgen/internal/pathfind"
	"github.com/tilefield/wfcgen/internal/wfc"
)

// Result is the outcome of a successful Build call.
type Result struct {
	Ledger  *history.Ledger
	Tries   int
	Elapsed time.Duration
}

// ErrMaxAttempts is returned when cfg.MaxAttempts is positive and every
// attempt up to that bound either contradicted or produced no path
// (REDESIGN FLAG #3, spec.md §9).
var ErrMaxAttempts = fmt.Errorf("builder: exceeded configured max attempts")

// Build runs the full pipeline: derive a catalog/constraint model from
// source, then retry the collapse-and-validate loop until it succeeds,
// a fatal precondition error occurs, ctx is cancelled, or (if
// cfg.MaxAttempts > 0) the attempt bound is reached. On contradiction or
// a failed path validation, history is discarded and the loop retries
// from scratch, per spec.md §4.5/§4.6/§7.
func Build(ctx context.Context, cfg *config.Config, source Source, rng *rand.Rand) (*Result, error) {
	model, exits, err := buildModel(cfg, source)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	ledger := history.New()

	for attempt := 1; cfg.MaxAttempts == 0 || attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ledger.Clear()
		solver := wfc.NewSolver(cfg.Size, model, rng, ledger, cfg.LogHistory)

		if err := solver.Solve(); err != nil {
			if err == wfc.ErrContradiction {
				logger.Info("attempt contradicted", "attempt", attempt, "result", "contradiction")
				continue
			}
			return nil, err
		}

		graph := solvedGraph{grid: solver.Grid, exits: exits}
		start, goal := 0, cfg.Size*cfg.Size-1

		path, ok := pathfind.AStar(graph, start, goal)
		if !ok {
			logger.Info("attempt produced no path", "attempt", attempt, "result", "no_path", "cells_collapsed", len(solver.Grid.Cells))
			continue
		}

		pathMask := make([]bool, len(solver.Grid.Cells))
		for _, idx := range path {
			pathMask[idx] = true
		}
		ledger.Push(history.NewSnapshot(cfg.Size, solver.Grid.Values(), pathMask))

		reachable := pathfind.ReachableFrom(graph, start)
		pruned := solver.Grid.Values()
		for i, ok := range reachable {
			if !ok {
				pruned[i] = -1
			}
		}
		ledger.Push(history.NewSnapshot(cfg.Size, pruned, nil))

		elapsed := time.Since(started)
		logger.Summary("build succeeded", "tries", attempt, "elapsed", elapsed)
		return &Result{Ledger: ledger, Tries: attempt, Elapsed: elapsed}, nil
	}

	return nil, ErrMaxAttempts
}

// buildModel derives the wfc.Model (and its paired exitProvider) for
// source, dispatching on its discriminated kind.
func buildModel(cfg *config.Config, source Source) (wfc.Model, exitProvider, error) {
	if source.IsText() {
		m := chunk.ParseText(source.Text)
		patterns := chunk.ExtractPatterns(m, cfg.ChunkSize, cfg.IncludeFlipping, cfg.Dedupe)
		if len(patterns) == 0 {
			return nil, nil, fmt.Errorf("builder: textual sample yielded zero patterns")
		}
		model := newChunkModel(patterns)
		return model, model, nil
	}

	cat, err := catalog.BuildFromImage(source.Image, cfg.TileSize)
	if err != nil {
		return nil, nil, err
	}
	if len(cfg.Variants) > 0 {
		overrides := make([]catalog.ExplicitVariant, len(cfg.Variants))
		for i, v := range cfg.Variants {
			overrides[i] = catalog.ExplicitVariant{
				AssetID:   v.AssetID,
				Weight:    v.Weight,
				Neighbors: v.Neighbors,
			}
		}
		cat.MergeExplicit(overrides)
	}
	model := newCatalogModel(cat)
	return model, model, nil
}
