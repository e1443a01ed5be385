// Package narration provides playback.Narrator implementations for
// terminals and tests. A browser presenter narrates on its own side.
package narration

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
)

var (
	_ playback.Narrator = Silent{}
	_ playback.Narrator = (*Writer)(nil)
)

// Silent finishes every narration immediately.
type Silent struct{}

// Narrate returns ctx.Err() if ctx is already done, nil otherwise.
func (Silent) Narrate(ctx context.Context, _ string) error { return ctx.Err() }

// Writer prints each description and then holds for as long as it would
// take to read it aloud at the configured pace.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	wpm    int
	rate   float64
	prefix string
}

// NewWriter returns a Writer speaking at wpm*rate words per minute.
// Non-positive values fall back to 150 and 1.0.
func NewWriter(out io.Writer, wpm int, rate float64) *Writer {
	if wpm <= 0 {
		wpm = 150
	}
	if rate <= 0 {
		rate = 1
	}

	return &Writer{out: out, wpm: wpm, rate: rate, prefix: "🔊 "}
}

// Duration is the hold time for text: its word count at the writer's pace.
func (w *Writer) Duration(text string) time.Duration {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	perMinute := float64(w.wpm) * w.rate

	return time.Duration(math.Round(float64(words) / perMinute * float64(time.Minute)))
}

// Narrate writes text and blocks for Duration(text) or until ctx is done.
func (w *Writer) Narrate(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	_, err := fmt.Fprintf(w.out, "%s%s\n", w.prefix, text)
	w.mu.Unlock()
	if err != nil {
		return fmt.Errorf("narration: write: %w", err)
	}

	d := w.Duration(text)
	if d == 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
