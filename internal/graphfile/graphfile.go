// Package graphfile loads authored graphs from HCL (or HCL-JSON) files.
//
// A graph file looks like:
//
//	algorithm = "prim"
//	nodes     = ["A", "B", "C"] # or: node_count = 3
//	start     = "A"
//
//	edge {
//	  from   = "A"
//	  to     = "B"
//	  weight = 3
//	}
//
// Edge validation is left to session.Build, which drops invalid edges
// and reports them, so a file with a bad edge still loads.
package graphfile

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
)

// ErrNodesConflict is returned when a file sets both nodes and node_count.
var ErrNodesConflict = errors.New("graphfile: set either nodes or node_count, not both")

// hclGraphFile is the decoding target for one file.
type hclGraphFile struct {
	Algorithm string          `hcl:"algorithm,optional"`
	Nodes     []string        `hcl:"nodes,optional"`
	NodeCount int             `hcl:"node_count,optional"`
	Start     string          `hcl:"start,optional"`
	Edges     []*hclEdgeBlock `hcl:"edge,block"`
}

// Weight stays a raw value so a fractional or textual weight drops the
// edge at build time instead of failing the file.
type hclEdgeBlock struct {
	From   string    `hcl:"from"`
	To     string    `hcl:"to"`
	Weight cty.Value `hcl:"weight,optional"`
}

// Load parses the file at path. Files ending in ".json" use the HCL JSON
// syntax; everything else is native HCL.
func Load(ctx context.Context, path string) (session.Input, error) {
	ctxlog.FromContext(ctx).Debug("loading graph file", "path", path)

	parser := hclparse.NewParser()
	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return session.Input{}, fmt.Errorf("failed to parse graph file %s: %w", path, diags)
	}

	return decode(file, path)
}

// Parse decodes native HCL source; filename is only used in diagnostics.
func Parse(src []byte, filename string) (session.Input, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return session.Input{}, fmt.Errorf("failed to parse graph file %s: %w", filename, diags)
	}

	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (session.Input, error) {
	var parsed hclGraphFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return session.Input{}, fmt.Errorf("failed to decode graph file %s: %w", filename, diags)
	}
	if len(parsed.Nodes) > 0 && parsed.NodeCount != 0 {
		return session.Input{}, fmt.Errorf("%w: %s", ErrNodesConflict, filename)
	}

	in := session.Input{
		Algorithm: session.Algorithm(parsed.Algorithm),
		Nodes:     parsed.Nodes,
		NodeCount: parsed.NodeCount,
		Start:     parsed.Start,
		Edges:     make([]core.EdgeInput, 0, len(parsed.Edges)),
	}
	for _, e := range parsed.Edges {
		in.Edges = append(in.Edges, e.input())
	}

	return in, nil
}

// input converts the block. Integer numbers and integer strings become
// Weight; anything else is kept as BadWeight text.
func (b *hclEdgeBlock) input() core.EdgeInput {
	in := core.EdgeInput{From: b.From, To: b.To}
	v := b.Weight
	if v.IsNull() || !v.IsKnown() {
		return in
	}

	var text string
	switch v.Type() {
	case cty.Number:
		bf := v.AsBigFloat()
		if w, acc := bf.Int64(); acc == big.Exact {
			in.Weight = w
			return in
		}
		text = bf.Text('g', -1)
	case cty.String:
		text = v.AsString()
	default:
		text = v.Type().FriendlyName()
	}
	w, err := core.ParseWeight(text)
	if err != nil {
		in.BadWeight = text
		return in
	}
	in.Weight = w

	return in
}
