package tapkit

import (
	"fmt"
	"reflect"
)

// TargetID identifies a registered target. IDs are never reused within a
// Dispatcher; the zero value never names a target.
type TargetID uint64

// String returns the id in the "touch_N" form used in logs.
func (id TargetID) String() string {
	return fmt.Sprintf("touch_%d", uint64(id))
}

// BoundsProvider is the UI element a target is anchored to. Bounds is
// queried on every hit test and must return the element's current box in
// pointer coordinates.
type BoundsProvider interface {
	Bounds() Rect
}

// Activatable is implemented by elements that show a pressed affordance.
// The dispatcher sets it on press and clears it on every target when the
// session ends.
type Activatable interface {
	SetActive(active bool)
}

// Options configures a target at registration.
type Options[T any] struct {
	// Callback runs on a qualifying tap.
	Callback func(TapEvent[T])

	// HitboxPadding is the forgiveness margin added on every side before
	// hit-testing. Zero selects the dispatcher default; negative means none.
	HitboxPadding float64

	// MinSize is the advisory minimum element width and height. Smaller
	// elements log a warning at registration; hit-testing is unaffected.
	// Zero selects the dispatcher default.
	MinSize float64

	// AllowDoubleTap disables suppression of repeat taps inside the
	// double-tap window.
	AllowDoubleTap bool

	DragEnabled bool
	HoldEnabled bool
	OnDrag      func(DragEvent[T])
	OnHold      func(HoldEvent[T])

	// Data is attached to every event for this target.
	Data T
}

type target[T any] struct {
	id   TargetID
	el   BoundsProvider
	opts Options[T]
}

// padding returns the effective hitbox margin.
func (t *target[T]) padding() float64 {
	if t.opts.HitboxPadding < 0 {
		return 0
	}
	return t.opts.HitboxPadding
}

// contains tests (x, y) against the element's current bounds grown by the
// target's padding. Targets with no element never match.
func (t *target[T]) contains(x, y float64) bool {
	if t.el == nil {
		return false
	}
	return t.el.Bounds().Expand(t.padding()).Contains(x, y)
}

// normalize fills zero-valued options from the dispatcher config.
func (d *Dispatcher[T]) normalize(opts Options[T]) Options[T] {
	if opts.HitboxPadding == 0 {
		opts.HitboxPadding = d.cfg.HitboxPadding
	}
	if opts.MinSize <= 0 {
		opts.MinSize = d.cfg.MinTargetSize
	}
	return opts
}

// Register adds a target anchored to el and returns its id. A nil el,
// including a typed nil pointer, is accepted and never matches a hit test.
func (d *Dispatcher[T]) Register(el BoundsProvider, opts Options[T]) TargetID {
	if isNilElement(el) {
		el = nil
	}
	d.nextID++
	t := &target[T]{id: d.nextID, el: el, opts: d.normalize(opts)}
	d.targets = append(d.targets, t)
	d.checkMinSize(t)
	return t.id
}

// Unregister removes a target. Unknown ids are ignored.
func (d *Dispatcher[T]) Unregister(id TargetID) {
	for i, t := range d.targets {
		if t.id == id {
			setActive(t.el, false)
			copy(d.targets[i:], d.targets[i+1:])
			d.targets[len(d.targets)-1] = nil
			d.targets = d.targets[:len(d.targets)-1]
			return
		}
	}
}

// Update merges new options into a registered target. fn receives the
// current options and edits them in place; the id is unchanged. Unknown ids
// are ignored.
func (d *Dispatcher[T]) Update(id TargetID, fn func(*Options[T])) {
	t := d.lookup(id)
	if t == nil || fn == nil {
		return
	}
	opts := t.opts
	fn(&opts)
	t.opts = d.normalize(opts)
}

// Target returns a copy of the target's effective options.
func (d *Dispatcher[T]) Target(id TargetID) (Options[T], bool) {
	t := d.lookup(id)
	if t == nil {
		return Options[T]{}, false
	}
	return t.opts, true
}

// Len returns the number of registered targets.
func (d *Dispatcher[T]) Len() int {
	return len(d.targets)
}

func (d *Dispatcher[T]) lookup(id TargetID) *target[T] {
	for _, t := range d.targets {
		if t.id == id {
			return t
		}
	}
	return nil
}

// hitTest returns the first-registered target whose padded bounds contain
// (x, y), or nil.
func (d *Dispatcher[T]) hitTest(x, y float64) *target[T] {
	for _, t := range d.targets {
		if t.contains(x, y) {
			return t
		}
	}
	return nil
}

// isNilElement reports whether el is nil or wraps a nil pointer, map,
// slice, func or channel.
func isNilElement(el BoundsProvider) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func setActive(el BoundsProvider, active bool) {
	if a, ok := el.(Activatable); ok {
		a.SetActive(active)
	}
}
