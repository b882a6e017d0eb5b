// Package audio turns game events into sound cues.
// Playback itself is left to a Sink; the package only decides which
// events are audible and throttles rapid bounce sounds.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Sink plays the cue for one event.
type Sink interface {
	Play(kind core.EventKind)
}

// BellSink rings the terminal bell.
type BellSink struct {
	w io.Writer
}

// NewBellSink returns a sink writing BEL to w.
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{w: w}
}

// Play rings once, or twice for a game over.
func (s *BellSink) Play(kind core.EventKind) {
	bell := "\a"
	if kind == core.EventGameOver {
		bell = "\a\a"
	}
	io.WriteString(s.w, bell) //nolint:errcheck
}

// LogSink records cues in a structured log.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink returns a sink logging at debug level.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Play logs the cue.
func (s *LogSink) Play(kind core.EventKind) {
	s.logger.Debug("sound", "cue", kind)
}

// Trigger forwards events to its sinks.
// Bounce cues closer together than the cooldown are dropped; every other
// cue always plays.
type Trigger struct {
	cooldown time.Duration
	sinks    []Sink

	mu         sync.Mutex
	lastBounce time.Time
}

// NewTrigger creates a trigger fanning out to sinks.
func NewTrigger(cooldown time.Duration, sinks ...Sink) *Trigger {
	return &Trigger{cooldown: cooldown, sinks: sinks}
}

// Fire plays the cue for ev at wall time now.
// Returns false if the cue was throttled.
func (t *Trigger) Fire(ev core.Event, now time.Time) bool {
	if ev.Kind == core.EventBounce && !t.allowBounce(now) {
		return false
	}

	for _, s := range t.sinks {
		s.Play(ev.Kind)
	}
	return true
}

// FireAll plays every event of one tick in order.
func (t *Trigger) FireAll(events []core.Event, now time.Time) {
	for _, ev := range events {
		t.Fire(ev, now)
	}
}

func (t *Trigger) allowBounce(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.lastBounce.IsZero() && now.Sub(t.lastBounce) <= t.cooldown {
		return false
	}
	t.lastBounce = now
	return true
}
