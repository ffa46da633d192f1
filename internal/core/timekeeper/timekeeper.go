package timekeeper

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
}

// loop identifies one scoped ticker goroutine. A loop that has been stopped
// never mutates state, even if its ticker fired before it observed the stop.
type loop struct {
	stop chan struct{}
}

// TimeKeeper is the work/rest state machine. Commands and ticks are
// serialised by a single mutex; the ticker only runs while the timer does.
type TimeKeeper struct {
	mu        sync.Mutex
	store     *settings.Store
	options   Config
	phase     Phase
	round     int
	remaining int
	running   bool
	closed    bool
	loop      *loop
	loops     sync.WaitGroup
	alerter   Alerter
	events    []chan Event
}

// New creates a TimeKeeper reading its durations from store. The timer
// starts paused in the first work phase.
func New(store *settings.Store, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if store == nil {
		store = settings.NewStore(model.DefaultConfig())
	}

	keeper := &TimeKeeper{
		store:   store,
		options: options,
	}
	keeper.rewindLocked()
	return keeper
}

// SetAlerter injects the phase expiry hook.
func (keeper *TimeKeeper) SetAlerter(alerter Alerter) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.alerter = alerter
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than block the timer.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Snapshot returns the current run state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// FieldText returns the text currently held for field.
func (keeper *TimeKeeper) FieldText(field settings.Field) string {
	return keeper.store.Text(field)
}

// Effective returns the configuration the timer falls back to.
func (keeper *TimeKeeper) Effective() model.Config {
	return keeper.store.Effective()
}

// ToggleRun pauses a running timer or starts a paused one. Starting needs
// every configuration field to hold a valid value; otherwise nothing
// happens. It reports whether the state changed.
func (keeper *TimeKeeper) ToggleRun() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return false
	}

	if keeper.running {
		keeper.running = false
		keeper.stopLoopLocked()
	} else {
		if _, ok := keeper.store.Config(); !ok {
			return false
		}
		keeper.running = true
		keeper.startLoopLocked()
	}

	keeper.emitLocked(Event{
		Type:     EventStateChange,
		Snapshot: keeper.snapshotLocked(),
		At:       time.Now(),
	})
	return true
}

// Reset stops the timer and rewinds to the first work phase.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.resetLocked()
	keeper.emitLocked(Event{
		Type:     EventStateChange,
		Snapshot: keeper.snapshotLocked(),
		At:       time.Now(),
	})
}

// SetWorkMinutes stores a new work length. A valid value rewinds the timer
// to the first work phase so the new length is shown before starting.
func (keeper *TimeKeeper) SetWorkMinutes(text string) bool {
	return keeper.edit(settings.FieldWork, text)
}

// SetRestMinutes stores a new rest length. It takes effect at the next rest.
func (keeper *TimeKeeper) SetRestMinutes(text string) bool {
	return keeper.edit(settings.FieldRest, text)
}

// SetRoundCount stores a new round count. It takes effect at the next rest
// expiry.
func (keeper *TimeKeeper) SetRoundCount(text string) bool {
	return keeper.edit(settings.FieldRounds, text)
}

// Tick advances a running timer by one second.
func (keeper *TimeKeeper) Tick() {
	keeper.step(nil)
}

// Close stops the ticker, waits for it to exit and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.running = false
	keeper.stopLoopLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	keeper.loops.Wait()
	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) edit(field settings.Field, text string) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.running {
		return false
	}

	edit := keeper.store.Set(field, text)
	if !edit.Accepted {
		return false
	}
	if field == settings.FieldWork && edit.Valid {
		keeper.rewindLocked()
	}

	keeper.emitLocked(Event{
		Type:     EventConfigChange,
		Snapshot: keeper.snapshotLocked(),
		At:       time.Now(),
	})
	return true
}

func (keeper *TimeKeeper) run(current *loop) {
	defer keeper.loops.Done()

	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-current.stop:
			return
		case <-ticker.C:
			keeper.step(current)
		}
	}
}

// step applies at most one transition. A nil source is a manual tick.
func (keeper *TimeKeeper) step(source *loop) {
	keeper.mu.Lock()
	if !keeper.running || (source != nil && source != keeper.loop) {
		keeper.mu.Unlock()
		return
	}

	now := time.Now()
	if keeper.remaining > 0 {
		keeper.remaining--
	}
	if keeper.remaining > 0 {
		keeper.emitLocked(Event{
			Type:     EventTick,
			Snapshot: keeper.snapshotLocked(),
			At:       now,
		})
		keeper.mu.Unlock()
		return
	}

	ended := keeper.phase
	keeper.expireLocked(now)
	alerter := keeper.alerter
	next := keeper.snapshotLocked()
	keeper.mu.Unlock()

	if alerter != nil {
		alerter.PhaseEnded(ended, next)
	}
}

func (keeper *TimeKeeper) expireLocked(now time.Time) {
	ended := keeper.phase
	config := keeper.store.Effective()

	cycleDone := false
	switch keeper.phase {
	case PhaseRest:
		if keeper.round < config.TotalRounds {
			keeper.round++
			keeper.phase = PhaseWork
			keeper.remaining = config.WorkSeconds()
		} else {
			keeper.resetLocked()
			cycleDone = true
		}
	default:
		keeper.phase = PhaseRest
		keeper.remaining = config.RestSeconds()
	}

	keeper.emitLocked(Event{
		Type:     EventPhaseEnded,
		Snapshot: keeper.snapshotLocked(),
		Ended:    ended,
		At:       now,
	})
	if cycleDone {
		keeper.emitLocked(Event{
			Type:     EventStateChange,
			Snapshot: keeper.snapshotLocked(),
			At:       now,
		})
	}
}

func (keeper *TimeKeeper) resetLocked() {
	keeper.running = false
	keeper.stopLoopLocked()
	keeper.rewindLocked()
}

func (keeper *TimeKeeper) rewindLocked() {
	keeper.phase = PhaseWork
	keeper.round = 1
	keeper.remaining = keeper.store.Effective().WorkSeconds()
}

func (keeper *TimeKeeper) startLoopLocked() {
	keeper.stopLoopLocked()
	current := &loop{stop: make(chan struct{})}
	keeper.loop = current
	keeper.loops.Add(1)
	go keeper.run(current)
}

func (keeper *TimeKeeper) stopLoopLocked() {
	if keeper.loop == nil {
		return
	}
	close(keeper.loop.stop)
	keeper.loop = nil
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:            keeper.phase,
		CurrentRound:     keeper.round,
		TotalRounds:      keeper.store.Effective().TotalRounds,
		RemainingSeconds: keeper.remaining,
		IsRunning:        keeper.running,
	}
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
