package playback_test

import (
	"fmt"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/bfs"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// ExampleController steps through a log by hand.
func ExampleController() {
	g, _ := core.GenerateNodes(2)
	_, _ = g.AddEdge("1", "2", 0)
	log, _ := bfs.BFS(g, "1")

	c := playback.New(playback.WithObserver(func(i int, r step.Record) {
		fmt.Printf("%d %s\n", i, r.Kind)
	}))
	c.Install(log)
	c.StepForward()
	c.StepForward()
	c.StepBackward()
	fmt.Println("at", c.CurrentIndex(), "of", c.Len())
	// Output:
	// 0 init
	// 1 start
	// 2 process
	// 1 start
	// at 1 of 7
}
