// Package alert plays the phase-ended signal as a sequence of pulses.
package alert

import (
	"context"
	"sync"
	"time"
)

// Pattern alternates off and on durations, starting with the delay before
// the first pulse: {0, 500ms} is one pulse, {0, 500ms, 110ms, 500ms} two.
type Pattern []time.Duration

// Pulses returns the number of on segments.
func (pattern Pattern) Pulses() int {
	return len(pattern) / 2
}

// Total returns the time the pattern takes to play.
func (pattern Pattern) Total() time.Duration {
	var total time.Duration
	for _, duration := range pattern {
		total += duration
	}
	return total
}

// Sequencer drives a light/flash/banner callback through a Pattern. Only
// one sequence plays at a time; starting a new one cancels the previous.
// toggle must not call back into the sequencer.
type Sequencer struct {
	mu      sync.Mutex
	pattern Pattern
	toggle  func(on bool)
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a sequencer calling toggle on every on/off edge.
func New(pattern Pattern, toggle func(on bool)) *Sequencer {
	return &Sequencer{
		pattern: pattern,
		toggle:  toggle,
	}
}

// Play starts the pattern in the background.
func (sequencer *Sequencer) Play(ctx context.Context) {
	sequencer.mu.Lock()
	defer sequencer.mu.Unlock()
	sequencer.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	sequencer.cancel = cancel
	sequencer.done = done

	go func() {
		defer close(done)
		sequencer.run(runCtx)
	}()
}

// Stop cancels the active sequence and waits for it to switch off.
func (sequencer *Sequencer) Stop() {
	sequencer.mu.Lock()
	defer sequencer.mu.Unlock()
	sequencer.stopLocked()
}

func (sequencer *Sequencer) stopLocked() {
	if sequencer.cancel == nil {
		return
	}
	sequencer.cancel()
	<-sequencer.done
	sequencer.cancel = nil
	sequencer.done = nil
}

func (sequencer *Sequencer) run(ctx context.Context) {
	lit := false
	set := func(on bool) {
		if on != lit {
			lit = on
			sequencer.toggle(on)
		}
	}
	defer set(false)

	for index, duration := range sequencer.pattern {
		set(index%2 == 1)
		if !sleepWithContext(ctx, duration) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	if duration <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
