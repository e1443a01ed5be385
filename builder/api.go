package builder

import (
	"fmt"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
)

// Constructor adds one topology to the plan. Constructors validate their
// parameters first and never panic.
type Constructor func(p *plan, cfg builderConfig) error

// plan accumulates vertices and edges across constructors.
type plan struct {
	ids      []string
	edges    []core.EdgeInput
	weighted bool
}

// addVertices appends k vertices and returns the index of the first.
func (p *plan) addVertices(method string, k int, cfg builderConfig) (int, error) {
	if len(p.ids)+k > core.MaxVertices {
		return 0, fmt.Errorf("%s: %d+%d vertices > %d: %w", method, len(p.ids), k, core.MaxVertices, ErrTooManyVertices)
	}
	base := len(p.ids)
	for i := 0; i < k; i++ {
		p.ids = append(p.ids, cfg.idFn(base+i))
	}

	return base, nil
}

// link appends the edge i-j, drawing a weight when the plan is weighted.
func (p *plan) link(i, j int, cfg builderConfig) {
	var w int64
	if p.weighted {
		w = cfg.weightFn(cfg.rng)
	}
	p.edges = append(p.edges, core.EdgeInput{From: p.ids[i], To: p.ids[j], Weight: w})
}

// BuildInput resolves bopts, applies cons in order and returns authoring
// input for alg. Weighted algorithms get weights from the configured
// WeightFn; algorithms that need a start vertex start at the first vertex.
func BuildInput(alg session.Algorithm, bopts []BuilderOption, cons ...Constructor) (session.Input, error) {
	a, err := session.ParseAlgorithm(string(alg))
	if err != nil {
		return session.Input{}, fmt.Errorf("BuildInput: %w", err)
	}
	if len(cons) == 0 {
		return session.Input{}, fmt.Errorf("BuildInput: no constructors: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	p := &plan{weighted: a.Weighted()}
	for i, fn := range cons {
		if fn == nil {
			return session.Input{}, fmt.Errorf("BuildInput: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(p, cfg); err != nil {
			return session.Input{}, fmt.Errorf("BuildInput: %w", err)
		}
	}

	in := session.Input{Algorithm: a, Edges: p.edges}
	if cfg.labelled {
		in.Nodes = p.ids
	} else {
		in.NodeCount = len(p.ids)
	}
	if a.NeedsStart() {
		in.Start = p.ids[0]
	}

	return in, nil
}
