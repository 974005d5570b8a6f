// SPDX-License-Identifier: MIT
// Package: envision
//
// build.go — total envisionment: enumerate, filter, expand, merge.
//
// Pipeline:
//   1) Resolve options; validate the model (configuration errors stop here).
//   2) Compare the candidate count with the ceiling before enumerating.
//   3) Split the ordinal space [0,total) into contiguous shards, one per worker.
//      Each worker owns a private accumulator of legal states, their successor
//      lists and its rejection counters.
//   4) After every worker returns, merge accumulators in shard order: all nodes
//      first, then all edges. Shard order equals enumeration order, so the
//      graph is identical for any worker count.

package envision

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/envision/core"
	"github.com/katalvlaran/envision/legality"
	"github.com/katalvlaran/envision/quantity"
	"github.com/katalvlaran/envision/state"
	"github.com/katalvlaran/envision/successor"
)

// Stats summarizes one Build run.
type Stats struct {
	// RunID identifies the run in logs.
	RunID string

	// Workers is the number of shards actually used.
	Workers int

	// Candidates is the number of enumerated candidate states.
	Candidates uint64

	// Rejected counts illegal candidates per rejecting stage. Every stage in
	// legality.Stages has an entry.
	Rejected map[legality.Stage]uint64

	// Nodes, Edges and Terminals describe the resulting graph. A terminal has no
	// outgoing edge.
	Nodes, Edges, Terminals int

	Duration time.Duration
}

// Result is the output of Build.
type Result struct {
	Graph *core.Graph
	Stats Stats
}

// partial is a worker's private accumulator.
type partial struct {
	states     []state.State
	succs      [][]state.State // succs[i] are the successors of states[i]
	candidates uint64
	rejected   [numStages]uint64 // indexed by Stage
}

const numStages = int(legality.StageProportionality) + 1

// Build computes the total envisionment of m: every legal state and every legal
// one-step transition between legal states.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrNilModel when m is nil.
//   - quantity sentinels (ErrUnknownQuantity, ErrUnknownMagnitude, ...) for an invalid model.
//   - ErrCombinatorialLimit when the candidate count exceeds the ceiling.
//   - ctx.Err() when ctx is cancelled during enumeration.
//
// Complexity: O(C·n + L·S·n) for C candidates, L legal states, S successor
// candidates per state and n quantities.
func Build(ctx context.Context, m *quantity.Model, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if m == nil {
		cfg.metrics.observe(OutcomeError, nil)
		cfg.logger.Error("invalid model", "error", ErrNilModel)
		return nil, buildErrorf(ErrNilModel, "model <nil>")
	}
	start := time.Now()
	runID := uuid.NewString()
	log := cfg.logger.With("run_id", runID, "model", m.Name())

	// 1) configuration
	checker, err := legality.New(m)
	if err != nil {
		cfg.metrics.observe(OutcomeError, nil)
		log.Error("invalid model", "error", err)
		return nil, buildErrorf(err, "model %q", m.Name())
	}

	// 2) ceiling
	total, err := m.CandidateCount()
	if err != nil {
		cfg.metrics.observe(OutcomeLimit, nil)
		log.Warn("candidate space too large", "error", err, "limit", cfg.maxCandidates)
		return nil, buildErrorf(errors.Join(ErrCombinatorialLimit, err), "model %q", m.Name())
	}
	if total > cfg.maxCandidates {
		cfg.metrics.observe(OutcomeLimit, nil)
		log.Warn("candidate space too large", "candidates", total, "limit", cfg.maxCandidates)
		return nil, buildErrorf(ErrCombinatorialLimit, "%d candidates, limit %d", total, cfg.maxCandidates)
	}

	if err := ctx.Err(); err != nil {
		cfg.metrics.observe(OutcomeCanceled, nil)
		return nil, buildErrorf(err, "model %q", m.Name())
	}

	// 3) sharded enumeration
	workers := cfg.workers
	if uint64(workers) > total {
		workers = int(max(total, 1))
	}
	log.Info("build started", "candidates", total, "workers", workers)

	gen := successor.New(m, checker)
	parts := make([]partial, workers)
	chunk := (total + uint64(workers) - 1) / uint64(workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range parts {
		lo := uint64(w) * chunk
		hi := min(lo+chunk, total)
		g.Go(func() error {
			if err := expand(gctx, m, checker, gen, lo, hi, &parts[w]); err != nil {
				return err
			}
			log.Debug("shard done", "shard", w, "lo", lo, "hi", hi, "legal", len(parts[w].states))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		cfg.metrics.observe(OutcomeCanceled, nil)
		log.Warn("build interrupted", "error", err)
		return nil, buildErrorf(err, "model %q", m.Name())
	}

	// 4) merge
	res, err := merge(parts)
	if err != nil {
		cfg.metrics.observe(OutcomeError, nil)
		return nil, buildErrorf(err, "merge")
	}
	res.Stats.RunID = runID
	res.Stats.Workers = workers
	res.Stats.Duration = time.Since(start)

	cfg.metrics.observe(OutcomeOK, &res.Stats)
	log.Info("build finished",
		"nodes", res.Stats.Nodes,
		"edges", res.Stats.Edges,
		"terminals", res.Stats.Terminals,
		"duration", res.Stats.Duration,
	)
	return res, nil
}

// expand walks the ordinal range [lo,hi) and fills p.
func expand(ctx context.Context, m *quantity.Model, checker *legality.Checker, gen *successor.Generator, lo, hi uint64, p *partial) error {
	for s := range state.EnumerateRange(m, lo, hi) {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.candidates++
		if stage := checker.Check(s); stage != legality.StageNone {
			p.rejected[stage]++
			continue
		}
		p.states = append(p.states, s)
		p.succs = append(p.succs, gen.Successors(s))
	}
	return nil
}

// merge folds the partials into one graph, nodes before edges.
func merge(parts []partial) (*Result, error) {
	g := core.NewGraph()
	st := Stats{Rejected: make(map[legality.Stage]uint64, len(legality.Stages))}
	for _, stage := range legality.Stages {
		st.Rejected[stage] = 0
	}

	for i := range parts {
		st.Candidates += parts[i].candidates
		for _, stage := range legality.Stages {
			st.Rejected[stage] += parts[i].rejected[stage]
		}
		for _, s := range parts[i].states {
			if _, _, err := g.AddNode(s); err != nil {
				return nil, err
			}
		}
	}
	for i := range parts {
		for j, s := range parts[i].states {
			from := s.Key()
			if len(parts[i].succs[j]) == 0 {
				st.Terminals++
			}
			for _, next := range parts[i].succs[j] {
				if _, err := g.AddEdge(from, next.Key()); err != nil {
					return nil, err
				}
			}
		}
	}
	st.Nodes = g.NodeCount()
	st.Edges = g.EdgeCount()

	return &Result{Graph: g, Stats: st}, nil
}
