package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/bfs"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/dfs"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/prim_kruskal"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// Algorithm names one of the four step generators.
type Algorithm string

// Supported algorithms.
const (
	BFS     Algorithm = "bfs"
	DFS     Algorithm = "dfs"
	Kruskal Algorithm = "kruskal"
	Prim    Algorithm = "prim"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("session: unknown algorithm")

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm { return []Algorithm{BFS, DFS, Kruskal, Prim} }

// ParseAlgorithm accepts a name in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case BFS, DFS, Kruskal, Prim:
		return a, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Weighted reports whether the algorithm needs positive edge weights and
// at least one edge.
func (a Algorithm) Weighted() bool { return a == Kruskal || a == Prim }

// NeedsStart reports whether the algorithm takes a start vertex.
func (a Algorithm) NeedsStart() bool { return a != Kruskal }

// ValidationError reports invalid input found before any generation work.
// Field is one of "algorithm", "nodes", "edges", "start".
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("session: invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Generate validates g for alg and runs the matching generator. It does not
// touch any session state; Session.Build uses it and then installs the log.
func Generate(ctx context.Context, alg Algorithm, g *core.Graph, start string) (*step.Log, error) {
	alg, err := ParseAlgorithm(string(alg))
	if err != nil {
		return nil, &ValidationError{Field: "algorithm", Err: err}
	}
	req := core.Requirement{Start: start, RequireStart: alg.NeedsStart(), RequireEdges: alg.Weighted()}
	if err := core.Check(g, req); err != nil {
		return nil, classify(err)
	}

	switch alg {
	case BFS:
		return bfs.BFS(g, start, bfs.WithContext(ctx))
	case DFS:
		return dfs.DFS(g, start, dfs.WithContext(ctx))
	case Kruskal:
		return prim_kruskal.Kruskal(g, prim_kruskal.WithContext(ctx))
	default:
		return prim_kruskal.Prim(g, start, prim_kruskal.WithContext(ctx))
	}
}

// classify maps a core validation sentinel onto the input field at fault.
func classify(err error) error {
	switch {
	case errors.Is(err, core.ErrVertexNotFound):
		return &ValidationError{Field: "start", Err: err}
	case errors.Is(err, core.ErrNoEdges), errors.Is(err, core.ErrBadWeight):
		return &ValidationError{Field: "edges", Err: err}
	case core.IsValidation(err):
		return &ValidationError{Field: "nodes", Err: err}
	default:
		return err
	}
}
