package tapkit

import (
	"math"
	"time"
)

// session is the state of one press-to-release interaction.
type session struct {
	active   bool
	id       uint64
	start    Vec2
	current  Vec2
	target   TargetID // pressed target, zero if the press missed
	dragging bool     // latches true for the rest of the session
}

// holdCheck is a deferred hold test scheduled at press time.
type holdCheck struct {
	due     time.Time
	session uint64
	target  TargetID
	pos     Vec2
}

// Press starts a session at (x, y). It is ignored while disabled or while
// another session is active.
func (d *Dispatcher[T]) Press(x, y float64) {
	if !d.enabled || d.session.active {
		return
	}
	d.sessionSeq++
	pos := Vec2{X: x, Y: y}
	d.session = session{active: true, id: d.sessionSeq, start: pos, current: pos}

	t := d.hitTest(x, y)
	if t == nil {
		return
	}
	d.session.target = t.id
	setActive(t.el, true)

	now := d.clock.Now()
	if t.opts.HoldEnabled {
		d.holds = append(d.holds, holdCheck{
			due:     now.Add(d.cfg.HoldThreshold),
			session: d.session.id,
			target:  t.id,
			pos:     pos,
		})
	}
	d.emit(InteractionEvent{Type: EventPress, Target: t.id, X: x, Y: y, Timestamp: now})
}

// Move updates the active session. Once movement from the press position
// exceeds the drag threshold on either axis the session is dragging for
// good, and drag-enabled targets under the pointer receive OnDrag. Moves
// never produce taps.
func (d *Dispatcher[T]) Move(x, y float64) {
	if !d.enabled || !d.session.active {
		return
	}
	s := &d.session
	s.current = Vec2{X: x, Y: y}
	dx := x - s.start.X
	dy := y - s.start.Y
	if !s.dragging && (math.Abs(dx) > d.cfg.DragThreshold || math.Abs(dy) > d.cfg.DragThreshold) {
		s.dragging = true
	}
	if !s.dragging {
		return
	}

	t := d.hitTest(x, y)
	if t == nil || !t.opts.DragEnabled {
		return
	}
	if t.opts.OnDrag != nil {
		t.opts.OnDrag(DragEvent[T]{
			Target:  t.id,
			Element: t.el,
			Start:   s.start,
			Current: s.current,
			DeltaX:  dx,
			DeltaY:  dy,
			Data:    t.opts.Data,
		})
	}
	d.emit(InteractionEvent{
		Type: EventDrag, Target: t.id, X: x, Y: y, Timestamp: d.clock.Now(),
		StartX: s.start.X, StartY: s.start.Y, DeltaX: dx, DeltaY: dy,
	})
}

// Release ends the active session at (x, y). A release over a target taps
// it unless the session was dragging. The session is cleared even if the
// tap callback panics.
func (d *Dispatcher[T]) Release(x, y float64) {
	if !d.enabled || !d.session.active {
		return
	}
	defer d.resetSession()

	if d.session.dragging {
		return
	}
	if t := d.hitTest(x, y); t != nil {
		d.tap(t, Vec2{X: x, Y: y})
	}
}

// tap applies double-tap suppression, then runs feedback and the callback.
func (d *Dispatcher[T]) tap(t *target[T], pos Vec2) {
	now := d.clock.Now()
	if !t.opts.AllowDoubleTap && d.lastTapTarget == t.id && now.Sub(d.lastTapTime) < d.cfg.DoubleTapWindow {
		d.emit(InteractionEvent{Type: EventTapSuppressed, Target: t.id, X: pos.X, Y: pos.Y, Timestamp: now})
		return
	}

	setActive(t.el, false)
	if d.feedback != nil {
		d.feedback.TriggerHaptic(IntensityLight)
	}
	if t.opts.Callback != nil {
		t.opts.Callback(TapEvent[T]{
			Target:    t.id,
			Element:   t.el,
			Position:  pos,
			Data:      t.opts.Data,
			Timestamp: now,
		})
	}
	d.lastTapTime = now
	d.lastTapTarget = t.id
	d.emit(InteractionEvent{Type: EventTap, Target: t.id, X: pos.X, Y: pos.Y, Timestamp: now})
}

// fireHold runs a scheduled hold check. It is a no-op unless the session it
// was scheduled for is still active and not dragging, and the pressed target
// is still registered.
func (d *Dispatcher[T]) fireHold(h holdCheck) {
	s := d.session
	if !s.active || s.id != h.session || s.dragging {
		return
	}
	t := d.lookup(h.target)
	if t == nil {
		return
	}
	if t.opts.OnHold != nil {
		t.opts.OnHold(HoldEvent[T]{
			Target:   t.id,
			Element:  t.el,
			Position: h.pos,
			Data:     t.opts.Data,
			Duration: d.cfg.HoldThreshold,
		})
	}
	d.emit(InteractionEvent{
		Type: EventHold, Target: t.id, X: h.pos.X, Y: h.pos.Y,
		Timestamp: d.clock.Now(), Duration: d.cfg.HoldThreshold,
	})
}

// Active reports whether a press-to-release session is in progress.
func (d *Dispatcher[T]) Active() bool {
	return d.session.active
}

// Dragging reports whether the active session has crossed the drag threshold.
func (d *Dispatcher[T]) Dragging() bool {
	return d.session.active && d.session.dragging
}

// resetSession ends the session and clears the pressed affordance from
// every target.
func (d *Dispatcher[T]) resetSession() {
	d.session = session{}
	for _, t := range d.targets {
		setActive(t.el, false)
	}
}
