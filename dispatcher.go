package tapkit

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Clock supplies the current time. Tests inject a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DispatcherConfig configures a new Dispatcher. All fields are optional.
type DispatcherConfig struct {
	Config   Config
	Feedback Feedback
	Sink     EventSink
	Clock    Clock
	Logger   *log.Logger
}

// Dispatcher owns a registry of touch targets and routes pointer events to
// them: hit-testing with padded hitboxes, double-tap suppression, and
// drag/hold classification.
//
// A Dispatcher is not safe for concurrent use. Call it from the game loop
// goroutine only; Tick fires deferred hold checks on that same goroutine.
type Dispatcher[T any] struct {
	cfg      Config
	feedback Feedback
	sink     EventSink
	clock    Clock
	logger   *log.Logger

	enabled bool
	debug   bool

	// Registry, in registration order.
	targets []*target[T]
	nextID  TargetID

	// Pointer session (at most one).
	session    session
	sessionSeq uint64
	holds      []holdCheck

	// Debounce record.
	lastTapTime   time.Time
	lastTapTarget TargetID
}

// NewDispatcher creates an enabled dispatcher with an empty registry.
func NewDispatcher[T any](dc DispatcherConfig) *Dispatcher[T] {
	cfg := dc.Config.withDefaults()
	clock := dc.Clock
	if clock == nil {
		clock = systemClock{}
	}
	logger := dc.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	return &Dispatcher[T]{
		cfg:      cfg,
		feedback: dc.Feedback,
		sink:     dc.Sink,
		clock:    clock,
		logger:   logger,
		enabled:  true,
		debug:    cfg.Debug,
	}
}

func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "tapkit"})
}

// Config returns the effective configuration.
func (d *Dispatcher[T]) Config() Config {
	return d.cfg
}

// SetFeedback replaces the haptic collaborator. Nil disables haptics.
func (d *Dispatcher[T]) SetFeedback(f Feedback) {
	d.feedback = f
}

// SetEventSink sets the interaction sink. Nil disables forwarding.
func (d *Dispatcher[T]) SetEventSink(sink EventSink) {
	d.sink = sink
}

// Enable resumes event handling.
func (d *Dispatcher[T]) Enable() {
	if !d.enabled {
		d.logger.Debug("dispatcher enabled")
	}
	d.enabled = true
}

// Disable suspends event handling. Registrations are kept; any in-flight
// session is dropped so no drag or hold survives a re-enable.
func (d *Dispatcher[T]) Disable() {
	if d.enabled {
		d.logger.Debug("dispatcher disabled")
	}
	d.enabled = false
	d.resetSession()
}

// Enabled reports whether events are being handled.
func (d *Dispatcher[T]) Enabled() bool {
	return d.enabled
}

// ClearAllTargets empties the registry and drops any in-flight session.
func (d *Dispatcher[T]) ClearAllTargets() {
	d.resetSession()
	clear(d.targets)
	d.targets = d.targets[:0]
	d.logger.Debug("targets cleared")
}

// Tick fires hold checks whose deadline has passed. Call once per frame.
func (d *Dispatcher[T]) Tick() {
	if len(d.holds) == 0 {
		return
	}
	now := d.clock.Now()
	var due []holdCheck
	kept := d.holds[:0]
	for _, h := range d.holds {
		if now.Before(h.due) {
			kept = append(kept, h)
		} else {
			due = append(due, h)
		}
	}
	clear(d.holds[len(kept):])
	d.holds = kept
	for _, h := range due {
		d.fireHold(h)
	}
}

// emit forwards an interaction to the sink, if any.
func (d *Dispatcher[T]) emit(ev InteractionEvent) {
	if d.sink == nil {
		return
	}
	d.sink.EmitEvent(ev)
}
