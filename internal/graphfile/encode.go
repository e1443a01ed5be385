package graphfile

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
)

// Encode writes in as a native HCL graph file that Load and Parse accept.
// Zero weights and an empty start are omitted; a BadWeight is written as
// a string so it survives a round trip.
func Encode(w io.Writer, in session.Input) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if in.Algorithm != "" {
		body.SetAttributeValue("algorithm", cty.StringVal(string(in.Algorithm)))
	}
	if len(in.Nodes) > 0 {
		vals := make([]cty.Value, len(in.Nodes))
		for i, n := range in.Nodes {
			vals[i] = cty.StringVal(n)
		}
		body.SetAttributeValue("nodes", cty.ListVal(vals))
	} else {
		body.SetAttributeValue("node_count", cty.NumberIntVal(int64(in.NodeCount)))
	}
	if in.Start != "" {
		body.SetAttributeValue("start", cty.StringVal(in.Start))
	}

	for _, e := range in.Edges {
		body.AppendNewline()
		eb := body.AppendNewBlock("edge", nil).Body()
		eb.SetAttributeValue("from", cty.StringVal(e.From))
		eb.SetAttributeValue("to", cty.StringVal(e.To))
		switch {
		case e.BadWeight != "":
			eb.SetAttributeValue("weight", cty.StringVal(e.BadWeight))
		case e.Weight != 0:
			eb.SetAttributeValue("weight", cty.NumberIntVal(e.Weight))
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("graphfile: write: %w", err)
	}

	return nil
}
