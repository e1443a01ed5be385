// File: authoring.go
// Role: Turning user-authored input into a validated Graph.
//
// Authoring is forgiving about edges and strict about everything else:
// an invalid edge is dropped and reported, while a bad node count or a
// missing start vertex fails the whole build.

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EdgeInput is one authored edge before validation.
type EdgeInput struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight,omitempty" yaml:"weight,omitempty"`

	// BadWeight keeps authored weight text that is not an integer, such
	// as "1.5". AddEdges drops the edge with ErrBadWeight.
	BadWeight string `json:"-" yaml:"-"`
}

// ParseWeight reads an authored weight; blank text means no weight.
//
// Errors: ErrBadWeight if s is not a base-10 integer.
func ParseWeight(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	w, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadWeight, s)
	}

	return w, nil
}

// UnmarshalJSON accepts the weight as a JSON number or string. A weight
// that is not an integer lands in BadWeight instead of failing the whole
// document, so one bad edge is dropped like any other invalid edge.
func (e *EdgeInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		From   string          `json:"from"`
		To     string          `json:"to"`
		Weight json.RawMessage `json:"weight"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = EdgeInput{From: raw.From, To: raw.To}

	text := strings.TrimSpace(string(raw.Weight))
	if text == "" || text == "null" {
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal(raw.Weight, &text); err != nil {
			return err
		}
	}
	w, err := ParseWeight(text)
	if err != nil {
		e.BadWeight = text
		return nil
	}
	e.Weight = w

	return nil
}

// Rejected pairs a dropped EdgeInput with the reason it was dropped.
type Rejected struct {
	Input EdgeInput
	Err   error
}

// GenerateNodes creates a graph with vertices labelled "1".."n".
//
// Errors: ErrNodeCount if n is outside [MinVertices, max].
func GenerateNodes(n int, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if n < MinVertices || n > g.maxVertices {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrNodeCount, n, MinVertices, g.maxVertices)
	}
	for i := 1; i <= n; i++ {
		// fresh graph, labels are unique and within bounds
		_ = g.AddVertex(strconv.Itoa(i))
	}

	return g, nil
}

// FromLabels creates a graph with the given vertex labels, in order.
//
// Errors: ErrNodeCount for an empty or oversized list, ErrEmptyVertexID,
// ErrDuplicateVertex.
func FromLabels(labels []string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if len(labels) < MinVertices || len(labels) > g.maxVertices {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrNodeCount, len(labels), MinVertices, g.maxVertices)
	}
	for _, l := range labels {
		if err := g.AddVertex(NormalizeID(l)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// NormalizeID trims surrounding space and upper-cases a label, so "a" and
// " A" both address vertex "A". Numeric labels are unaffected.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// AddEdges adds every valid input and silently drops the rest.
// The dropped inputs are returned so callers can log or display them.
func (g *Graph) AddEdges(inputs []EdgeInput) (added int, rejected []Rejected) {
	for _, in := range inputs {
		if in.BadWeight != "" {
			err := fmt.Errorf("%w: %q is not an integer", ErrBadWeight, in.BadWeight)
			rejected = append(rejected, Rejected{Input: in, Err: err})
			continue
		}
		from, to := NormalizeID(in.From), NormalizeID(in.To)
		if _, err := g.AddEdge(from, to, in.Weight); err != nil {
			rejected = append(rejected, Rejected{Input: in, Err: err})
			continue
		}
		added++
	}

	return added, rejected
}

// Requirement describes what a generator needs from a graph.
type Requirement struct {
	// Start must name an existing vertex when RequireStart is set.
	Start        string
	RequireStart bool

	// RequireEdges rejects graphs with no edges (weighted algorithms).
	RequireEdges bool
}

// Check validates g against req. Errors are wrapped sentinels:
// ErrGraphNil, ErrNodeCount, ErrVertexNotFound (start), ErrNoEdges.
func Check(g *Graph, req Requirement) error {
	if g == nil {
		return ErrGraphNil
	}
	stats := g.Stats()
	if stats.VertexCount < MinVertices || stats.VertexCount > stats.MaxVertices {
		return fmt.Errorf("%w: %d", ErrNodeCount, stats.VertexCount)
	}
	if req.RequireStart && !g.HasVertex(req.Start) {
		return fmt.Errorf("%w: start %q", ErrVertexNotFound, req.Start)
	}
	if req.RequireEdges && stats.EdgeCount == 0 {
		return ErrNoEdges
	}

	return nil
}

// IsValidation reports whether err is one of the authoring sentinels that
// callers should present as invalid input rather than an internal failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrGraphNil, ErrEmptyVertexID, ErrDuplicateVertex, ErrVertexNotFound,
		ErrLoopNotAllowed, ErrBadWeight, ErrNodeCount, ErrNoEdges,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
