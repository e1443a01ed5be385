// algoviz builds step-by-step replays of BFS, DFS, Kruskal and Prim on small
// authored graphs and plays them back in the terminal or over HTTP.
//
// Usage:
//
//	algoviz run   graph.hcl [--algorithm=bfs] [--start=1] [--interval=500ms] [--narrate]
//	algoviz steps graph.hcl [--markdown]
//	algoviz serve [--listen=127.0.0.1:3000]
//	algoviz generate cycle:5 [--algorithm=prim] [--seed=1] > graph.hcl
//	algoviz version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
