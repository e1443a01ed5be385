// Package render turns replay logs into terminal text: a one-line view of
// the working structure, per-record frames, the history table and the
// Kruskal sorted-edge table. It also derives which nodes and edges a
// presenter should highlight at a cursor position.
//
// Nothing here mutates a log; every view is computed from records.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// Slots is the number of cells drawn for a queue, stack or candidate queue.
const Slots = 5

// Mode selects the table flavour.
type Mode int

const (
	ASCII    Mode = iota // box-drawing terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// EdgeLabel formats an edge as "A-B" or "A-B (3)" when weighted.
func EdgeLabel(e core.Edge) string {
	if e.Weight == 0 {
		return e.From + "-" + e.To
	}

	return fmt.Sprintf("%s-%s (%d)", e.From, e.To, e.Weight)
}

// SlotCells lays items into exactly n cells. Missing cells are empty;
// when items overflow, the last cell reads "+k" for the hidden remainder.
func SlotCells(items []string, n int) []string {
	cells := make([]string, n)
	if len(items) <= n {
		copy(cells, items)
		return cells
	}
	copy(cells, items[:n-1])
	cells[n-1] = fmt.Sprintf("+%d", len(items)-(n-1))

	return cells
}

// Structure renders the working-structure snapshot of rec for a log of
// the given structure kind, e.g. "[1][2][ ][ ][ ]" for a queue or
// "{A B} {C}" for a union-find partition.
func Structure(s step.Structure, rec step.Record) string {
	switch s {
	case step.StructureQueue, step.StructureStack:
		return slotLine(rec.Items)
	case step.StructurePriorityQueue:
		items := make([]string, len(rec.Candidates))
		for i, c := range rec.Candidates {
			items[i] = fmt.Sprintf("%s-%s:%d", c.From, c.To, c.Weight)
		}
		return slotLine(items)
	case step.StructurePartition:
		sets := make([]string, len(rec.Partition))
		for i, comp := range rec.Partition {
			sets[i] = "{" + strings.Join(comp.Nodes, " ") + "}"
		}
		return strings.Join(sets, " ")
	default:
		return ""
	}
}

func slotLine(items []string) string {
	var b strings.Builder
	for _, c := range SlotCells(items, Slots) {
		if c == "" {
			c = " "
		}
		b.WriteString("[" + c + "]")
	}

	return b.String()
}

// Frame writes one record: position, kind, description and structure.
// It is the observer body used by terminal playback.
func Frame(w io.Writer, log *step.Log, i int) error {
	rec, ok := log.At(i)
	if !ok {
		return fmt.Errorf("render: record %d out of range [0,%d)", i, log.Len())
	}
	_, err := fmt.Fprintf(w, "%3d/%-3d %-9s %s\n        %s: %s\n",
		i+1, log.Len(), rec.Kind, rec.Description, log.Structure(), Structure(log.Structure(), rec))

	return err
}

func newWriter() table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)

	return w
}

func output(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}

	return w.Render()
}

// History renders records 0..cursor, one row each, with their structure
// snapshots. A cursor beyond the log is clamped to the last record.
func History(log *step.Log, cursor int, m Mode) string {
	w := newWriter()
	w.AppendHeader(table.Row{"#", "Kind", "Focus", log.Structure().String(), "Description"})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, WidthMax: 60},
	})
	if cursor >= log.Len() {
		cursor = log.Len() - 1
	}
	for i := 0; i <= cursor; i++ {
		rec, _ := log.At(i)
		w.AppendRow(table.Row{i, rec.Kind, focus(rec), Structure(log.Structure(), rec), rec.Description})
	}

	return output(w, m)
}

// focus prefers the edge, then the node; "-" marks records with neither.
func focus(rec step.Record) string {
	switch {
	case rec.Edge != nil:
		return EdgeLabel(*rec.Edge)
	case rec.HasNode():
		return rec.Node
	default:
		return "-"
	}
}

// Edge statuses in the Kruskal sorted-edge table.
const (
	StatusPending     = "pending"
	StatusConsidering = "considering"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

// EdgeStatuses classifies every sorted edge of a Kruskal record: edges
// before EdgeIndex are accepted or rejected, the edge at EdgeIndex is
// being considered (or was just decided) and the rest are pending.
func EdgeStatuses(rec step.Record) []string {
	accepted := make(map[int]bool, len(rec.Accepted))
	for _, e := range rec.Accepted {
		accepted[e.Index] = true
	}
	out := make([]string, len(rec.SortedEdges))
	for i, e := range rec.SortedEdges {
		switch {
		case i > rec.EdgeIndex:
			out[i] = StatusPending
		case i == rec.EdgeIndex && rec.Kind == step.KindConsider:
			out[i] = StatusConsidering
		case accepted[e.Index]:
			out[i] = StatusAccepted
		default:
			out[i] = StatusRejected
		}
	}

	return out
}

// SortedEdges renders the Kruskal sorted-edge table for rec with a running
// cost footer. Records without sorted edges render an empty string.
func SortedEdges(rec step.Record, m Mode) string {
	if len(rec.SortedEdges) == 0 {
		return ""
	}
	w := newWriter()
	w.AppendHeader(table.Row{"#", "Edge", "Weight", "Status"})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for i, st := range EdgeStatuses(rec) {
		e := rec.SortedEdges[i]
		w.AppendRow(table.Row{i, e.From + "-" + e.To, e.Weight, st})
	}
	w.AppendFooter(table.Row{"", "", rec.Cost, "cost"})

	return output(w, m)
}
