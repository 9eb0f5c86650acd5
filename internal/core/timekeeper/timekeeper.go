package timekeeper

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"pomodoro/internal/core/session"
)

// Notifier plays the expiry alert. Errors are logged and otherwise ignored.
type Notifier interface {
	Notify(alert session.Alert) error
}

// Config contains runtime options for Keeper.
type Config struct {
	TickInterval time.Duration
	Scheduler    Scheduler
	Notifier     Notifier
	// Logger defaults to slog.Default at the time of each call.
	Logger *slog.Logger
	Now    func() time.Time
}

// Keeper owns the session state cell and drives it with a Scheduler.
type Keeper struct {
	mu         sync.Mutex
	options    Config
	state      session.State
	sessionID  string
	cancel     CancelFunc
	generation uint64
	events     []chan Event
	closed     bool
	notifying  sync.WaitGroup
}

// New creates an idle Keeper with default durations.
func New(options Config) *Keeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = TickerScheduler{}
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Keeper{
		options: options,
		state:   session.NewState(),
	}
}

// Subscribe registers a new observer channel.
func (keeper *Keeper) Subscribe(buffer int) <-chan Event {
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

// State returns a snapshot of the current state.
func (keeper *Keeper) State() session.State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// View returns the render-ready projection of the current state.
func (keeper *Keeper) View() session.View {
	return keeper.State().View()
}

// Toggle starts or pauses the timer.
func (keeper *Keeper) Toggle() {
	keeper.Dispatch(session.Toggle{})
}

// Start starts a new session or resumes a paused one.
func (keeper *Keeper) Start() {
	keeper.Dispatch(session.Start{})
}

// Pause freezes the countdown. No tick is applied after Pause returns.
func (keeper *Keeper) Pause() {
	keeper.Dispatch(session.Pause{})
}

// Stop ends the session and restores default durations.
func (keeper *Keeper) Stop() {
	keeper.Dispatch(session.Stop{})
}

// AdjustFocus changes the focus duration while idle.
func (keeper *Keeper) AdjustFocus(direction session.Direction) {
	keeper.Dispatch(session.AdjustFocus{Direction: direction})
}

// AdjustBreak changes the break duration while idle.
func (keeper *Keeper) AdjustBreak(direction session.Direction) {
	keeper.Dispatch(session.AdjustBreak{Direction: direction})
}

// Dispatch applies a command. Commands after Close are ignored.
func (keeper *Keeper) Dispatch(cmd session.Command) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.applyLocked(cmd)
}

// Close cancels any pending tick, closes observers and waits for in-flight
// alerts to return.
func (keeper *Keeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.cancelLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	keeper.notifying.Wait()
}

func (keeper *Keeper) tick(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	// Callbacks from a canceled schedule may still be in flight.
	if keeper.closed || generation != keeper.generation || !keeper.state.Running {
		return
	}
	keeper.applyLocked(session.Tick{})
}

func (keeper *Keeper) applyLocked(cmd session.Command) {
	prev := keeper.state
	next, effects := session.Reduce(prev, cmd)
	keeper.state = next

	keeper.trackSessionLocked(prev, next)
	keeper.reconcileLocked()

	now := keeper.options.Now()
	for _, effect := range effects {
		if alert, ok := effect.(session.Alert); ok {
			keeper.alertLocked(alert, now)
		}
	}

	if _, ok := cmd.(session.Tick); ok {
		if len(effects) == 0 {
			keeper.emitLocked(Event{Type: EventProgress, SessionID: keeper.sessionID, View: next.View(), At: now})
		}
		return
	}
	if changed(prev, next) {
		keeper.logger().Debug("state change",
			"command", fmt.Sprintf("%T", cmd),
			"session_id", keeper.sessionID,
			"running", next.Running,
			"focus_minutes", next.Durations.FocusMinutes,
			"break_minutes", next.Durations.BreakMinutes,
		)
		keeper.emitLocked(Event{Type: EventStateChange, SessionID: keeper.sessionID, View: next.View(), At: now})
	}
}

func (keeper *Keeper) trackSessionLocked(prev, next session.State) {
	switch {
	case prev.Session == nil && next.Session != nil:
		keeper.sessionID = uuid.NewString()
		keeper.logger().Info("session started",
			"session_id", keeper.sessionID,
			"focus_minutes", next.Durations.FocusMinutes,
			"break_minutes", next.Durations.BreakMinutes,
		)
	case prev.Session != nil && next.Session == nil:
		keeper.logger().Info("session stopped", "session_id", keeper.sessionID)
		keeper.sessionID = ""
	}
}

// reconcileLocked keeps exactly one schedule alive while running and none
// otherwise.
func (keeper *Keeper) reconcileLocked() {
	if keeper.state.Running && keeper.cancel == nil {
		keeper.generation++
		generation := keeper.generation
		keeper.cancel = keeper.options.Scheduler.Schedule(keeper.options.TickInterval, func() {
			keeper.tick(generation)
		})
		return
	}
	if !keeper.state.Running {
		keeper.cancelLocked()
	}
}

func (keeper *Keeper) cancelLocked() {
	if keeper.cancel == nil {
		return
	}
	keeper.cancel()
	keeper.cancel = nil
	keeper.generation++
}

func (keeper *Keeper) alertLocked(alert session.Alert, now time.Time) {
	keeper.logger().Info("session expired",
		"session_id", keeper.sessionID,
		"ended", alert.Ended,
		"next", alert.Next,
	)
	keeper.emitLocked(Event{
		Type:      EventExpired,
		SessionID: keeper.sessionID,
		View:      keeper.state.View(),
		Alert:     alert,
		At:        now,
	})

	notifier := keeper.options.Notifier
	if notifier == nil {
		return
	}
	logger := keeper.logger()
	keeper.notifying.Add(1)
	go func() {
		defer keeper.notifying.Done()
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Warn("alert panicked", "panic", recovered)
			}
		}()
		if err := notifier.Notify(alert); err != nil {
			logger.Warn("alert failed", "err", err)
		}
	}()
}

func (keeper *Keeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (keeper *Keeper) logger() *slog.Logger {
	if keeper.options.Logger != nil {
		return keeper.options.Logger
	}
	return slog.Default()
}

func changed(prev, next session.State) bool {
	if prev.Running != next.Running || prev.Durations != next.Durations {
		return true
	}
	if (prev.Session == nil) != (next.Session == nil) {
		return true
	}
	return prev.Session != nil && *prev.Session != *next.Session
}
