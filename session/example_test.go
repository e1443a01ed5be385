package session_test

import (
	"context"
	"fmt"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
)

// ExampleSession_Build authors a small weighted graph, runs Kruskal and
// walks the playback cursor through the first few records.
func ExampleSession_Build() {
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.Discard())
	s := session.New(session.WithPlayback(playback.WithLogger(ctxlog.Discard())))

	log, err := s.Build(ctx, session.Input{
		Algorithm: session.Kruskal,
		NodeCount: 3,
		Edges: []core.EdgeInput{
			{From: "1", To: "2", Weight: 1},
			{From: "2", To: "3", Weight: 2},
			{From: "1", To: "3", Weight: 5},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ctrl := s.Controller()
	for ctrl.StepForward() {
		if ctrl.CurrentIndex() > 2 {
			break
		}
		rec, _ := ctrl.Current()
		fmt.Println(rec.Kind, rec.Description)
	}
	fmt.Println(log.Summary())

	// Output:
	// consider Consider edge (1-2) with weight 1. Check whether it forms a cycle.
	// accept Edge (1-2) does not form a cycle. ACCEPT it into the MST. Total cost now: 1
	// MST Total Cost: 3 | Edges in MST: 2
}
