// Package playback moves a read cursor over an installed step.Log.
//
// A Controller supports manual stepping in both directions and two
// mutually exclusive autoplay modes that share a single playing flag:
//
//   - timer mode advances the cursor once per interval;
//   - narration mode speaks the current record, waits for the Narrator
//     to finish, then advances and speaks again.
//
// Every autoplay run owns a token. Pause, Reset, Install and manual steps
// bump the token and cancel the run's context, and an advance is applied
// only while its token is still current. A narration that finishes after
// a pause can therefore never move the cursor.
package playback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// Controller owns the cursor of one log. It is safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	log     *step.Log
	cursor  int
	playing bool
	token   uint64
	cancel  context.CancelFunc
	done    chan struct{}

	interval  time.Duration
	narrator  Narrator
	narration bool
	speakStop context.CancelFunc

	observers []ObserverFunc
	logger    *slog.Logger
}

// New returns an idle Controller with no log.
func New(opts ...Option) *Controller {
	closed := make(chan struct{})
	close(closed)
	c := &Controller{
		interval: DefaultInterval,
		done:     closed,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Install replaces the log and resets the cursor to 0, stopping autoplay
// first. A nil log clears the controller.
func (c *Controller) Install(l *step.Log) {
	c.mu.Lock()
	c.stopLocked()
	c.log = l
	c.cursor = 0
	obs, rec, ok := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("playback log installed", "records", l.Len())
	if ok {
		notify(obs, 0, rec)
	}
}

// Log returns the installed log, or nil.
func (c *Controller) Log() *step.Log {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.log
}

// Len returns the number of records in the installed log.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.log.Len()
}

// CurrentIndex returns the cursor. It is 0 when no log is installed.
func (c *Controller) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor
}

// Current returns a copy of the record under the cursor.
func (c *Controller) Current() (step.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.log.At(c.cursor)
}

// IsPlaying reports whether autoplay is running.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.playing
}

// Observe registers fn to be notified after every cursor move.
func (c *Controller) Observe(fn ObserverFunc) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// SetNarration enables or disables narration. Without a Narrator it has
// no effect. The mode of a running autoplay is not changed.
func (c *Controller) SetNarration(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.narration = on && c.narrator != nil
	if !c.narration {
		c.stopSpeechLocked()
	}
}

// Narrating reports whether autoplay would run in narration mode.
func (c *Controller) Narrating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.narration
}

// SetInterval changes the timer-mode delay for the next Play.
func (c *Controller) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
}

// StepForward pauses autoplay and moves the cursor one record forward.
// At the last record (or with no log) it is a no-op and returns false.
// A successful move narrates the new record without blocking.
func (c *Controller) StepForward() bool { return c.step(+1) }

// StepBackward pauses autoplay and moves the cursor one record back.
// At index 0 (or with no log) it is a no-op and returns false.
func (c *Controller) StepBackward() bool { return c.step(-1) }

func (c *Controller) step(delta int) bool {
	c.mu.Lock()
	c.stopLocked()
	next := c.cursor + delta
	if c.log == nil || next < 0 || next >= c.log.Len() {
		c.mu.Unlock()
		return false
	}
	c.cursor = next
	obs, rec, _ := c.snapshotLocked()
	speak := c.speakLocked(rec.Description)
	c.mu.Unlock()

	notify(obs, next, rec)
	speak()

	return true
}

// Reset pauses autoplay and moves the cursor back to 0.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.stopLocked()
	c.cursor = 0
	obs, rec, ok := c.snapshotLocked()
	c.mu.Unlock()

	if ok {
		notify(obs, 0, rec)
	}
}

// Play starts autoplay in narration mode when narration is enabled and a
// Narrator is installed, otherwise in timer mode. It returns immediately;
// autoplay stops at the last record, on Pause, or when ctx is done.
func (c *Controller) Play(ctx context.Context) error {
	c.mu.Lock()
	if c.log == nil {
		c.mu.Unlock()
		return ErrNoLog
	}
	if c.playing {
		c.mu.Unlock()
		return ErrAlreadyPlaying
	}
	c.stopSpeechLocked()
	c.token++
	tok := c.token
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.playing = true
	done := make(chan struct{})
	c.done = done
	narrate := c.narration
	interval := c.interval
	c.mu.Unlock()

	c.logger.Debug("playback started", "narration", narrate, "interval", interval)
	go func() {
		defer close(done)
		if narrate {
			c.runNarrated(runCtx, tok)
		} else {
			c.runTimer(runCtx, tok, interval)
		}
		c.finish(tok)
	}()

	return nil
}

// Pause stops autoplay and any narration in progress. The cursor stays
// where it is. Pausing an idle controller is a no-op.
func (c *Controller) Pause() {
	c.mu.Lock()
	wasPlaying := c.playing
	c.stopLocked()
	c.mu.Unlock()

	if wasPlaying {
		c.logger.Debug("playback paused")
	}
}

// Done returns a channel closed when the most recent autoplay run has
// fully stopped. Before any Play it is already closed.
func (c *Controller) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.done
}

// runTimer advances once per tick until the last record.
func (c *Controller) runTimer(ctx context.Context, tok uint64, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, ok := c.advance(tok); !ok {
				return
			}
		}
	}
}

// runNarrated speaks the current record, then alternates advance and
// speak. The token is checked before every advance.
func (c *Controller) runNarrated(ctx context.Context, tok uint64) {
	rec, ok := c.Current()
	if !ok {
		return
	}
	for {
		c.narrate(ctx, rec.Description)
		if ctx.Err() != nil {
			return
		}
		if rec, ok = c.advance(tok); !ok {
			return
		}
	}
}

// narrate blocks until the narrator finishes. A failure counts as finished.
func (c *Controller) narrate(ctx context.Context, text string) {
	if text == "" || c.narrator == nil {
		return
	}
	if err := c.narrator.Narrate(ctx, text); err != nil && ctx.Err() == nil {
		c.logger.Warn("narration failed; continuing", "err", err)
	}
}

// advance moves the cursor forward if tok is still current and returns
// the new record. It reports false when the run must stop: stale token or
// last record reached.
func (c *Controller) advance(tok uint64) (step.Record, bool) {
	c.mu.Lock()
	if tok != c.token || c.log == nil || c.cursor >= c.log.Len()-1 {
		c.mu.Unlock()
		return step.Record{}, false
	}
	c.cursor++
	idx := c.cursor
	obs, rec, _ := c.snapshotLocked()
	c.mu.Unlock()

	notify(obs, idx, rec.Clone())

	return rec, true
}

// finish clears the playing flag if tok still owns the controller.
func (c *Controller) finish(tok uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tok != c.token {
		return
	}
	c.playing = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.logger.Debug("playback finished", "index", c.cursor)
}

// stopLocked invalidates the running autoplay, if any, and silences speech.
func (c *Controller) stopLocked() {
	c.token++
	c.playing = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.stopSpeechLocked()
}

func (c *Controller) stopSpeechLocked() {
	if c.speakStop != nil {
		c.speakStop()
		c.speakStop = nil
	}
}

// speakLocked prepares fire-and-forget narration of text for a manual
// step. The returned func must be called after the lock is released.
func (c *Controller) speakLocked(text string) func() {
	if !c.narration || c.narrator == nil || text == "" {
		return func() {}
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.speakStop = cancel
	n := c.narrator

	return func() {
		go func() {
			defer cancel()
			if err := n.Narrate(ctx, text); err != nil && ctx.Err() == nil {
				c.logger.Warn("narration failed", "err", err)
			}
		}()
	}
}

func (c *Controller) snapshotLocked() ([]ObserverFunc, step.Record, bool) {
	rec, ok := c.log.At(c.cursor)
	if !ok {
		return nil, step.Record{}, false
	}
	obs := make([]ObserverFunc, len(c.observers))
	copy(obs, c.observers)

	return obs, rec, true
}

func notify(obs []ObserverFunc, idx int, rec step.Record) {
	for i, fn := range obs {
		r := rec
		if i > 0 {
			r = rec.Clone()
		}
		fn(idx, r)
	}
}
