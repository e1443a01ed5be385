package playback

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// DefaultInterval is the timer-mode delay between two advances.
const DefaultInterval = time.Second

var (
	// ErrNoLog is returned by Play when no log is installed.
	ErrNoLog = errors.New("playback: no log installed")

	// ErrAlreadyPlaying is returned by Play while autoplay is running.
	ErrAlreadyPlaying = errors.New("playback: already playing")
)

// Narrator speaks a record description and returns once speech has
// finished. It must return promptly when ctx is cancelled.
type Narrator interface {
	Narrate(ctx context.Context, text string) error
}

// NarratorFunc adapts a function to Narrator.
type NarratorFunc func(ctx context.Context, text string) error

// Narrate calls f(ctx, text).
func (f NarratorFunc) Narrate(ctx context.Context, text string) error { return f(ctx, text) }

// ObserverFunc is notified after every cursor move with the new index and
// a copy of the record there. It runs outside the controller lock, so it
// may call back into the controller.
type ObserverFunc func(index int, r step.Record)

// Option configures a Controller.
type Option func(*Controller)

// WithInterval sets the timer-mode delay. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithNarrator installs the narration collaborator and enables narration.
func WithNarrator(n Narrator) Option {
	return func(c *Controller) {
		if n != nil {
			c.narrator = n
			c.narration = true
		}
	}
}

// WithLogger sets the controller logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn as an observer.
func WithObserver(fn ObserverFunc) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}
