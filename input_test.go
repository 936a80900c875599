package tapkit

import (
	"fmt"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// pointerRecorder is a PointerHandler that logs every call.
type pointerRecorder struct {
	calls []string
	ticks int
}

func (p *pointerRecorder) Press(x, y float64)   { p.calls = append(p.calls, fmt.Sprintf("press %g,%g", x, y)) }
func (p *pointerRecorder) Move(x, y float64)    { p.calls = append(p.calls, fmt.Sprintf("move %g,%g", x, y)) }
func (p *pointerRecorder) Release(x, y float64) { p.calls = append(p.calls, fmt.Sprintf("release %g,%g", x, y)) }
func (p *pointerRecorder) Tick()                { p.ticks++ }

// drain consumes the inject queue without reading real devices.
func drain(in *Input) {
	for in.processInjected() {
	}
}

func equalCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("calls = %q, want %q", got, want)
		}
	}
}

func TestPointerTransitions(t *testing.T) {
	rec := &pointerRecorder{}
	in := NewInput(rec)

	in.pointer(sourceMouse, 1, 1, false) // idle, up
	in.pointer(sourceMouse, 10, 20, true)
	in.pointer(sourceMouse, 10, 20, true) // held still
	in.pointer(sourceMouse, 15, 20, true)
	if !in.Down() {
		t.Error("Down should be true while pressed")
	}
	in.pointer(sourceMouse, 16, 21, false)
	in.pointer(sourceMouse, 16, 21, false)

	equalCalls(t, rec.calls, []string{"press 10,20", "move 15,20", "release 16,21"})
	if in.Down() {
		t.Error("Down should be false after release")
	}
}

func TestInjectCounts(t *testing.T) {
	tests := []struct {
		name   string
		inject func(in *Input)
		want   int
	}{
		{"tap", func(in *Input) { in.InjectTap(1, 1) }, 2},
		{"wait", func(in *Input) { in.InjectWait(4) }, 4},
		{"wait zero", func(in *Input) { in.InjectWait(0) }, 0},
		{"hold", func(in *Input) { in.InjectHold(1, 1, 3) }, 5},
		{"drag", func(in *Input) { in.InjectDrag(0, 0, 30, 0, 5) }, 5},
		{"drag clamps to two frames", func(in *Input) { in.InjectDrag(0, 0, 30, 0, 0) }, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput(&pointerRecorder{})
			tt.inject(in)
			if got := in.Pending(); got != tt.want {
				t.Errorf("Pending = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	rec := &pointerRecorder{}
	in := NewInput(rec)
	in.InjectDrag(0, 0, 40, 0, 5)
	drain(in)

	equalCalls(t, rec.calls, []string{
		"press 0,0", "move 10,0", "move 20,0", "move 30,0", "release 40,0",
	})
}

func TestInjectHoldKeepsPointerDown(t *testing.T) {
	rec := &pointerRecorder{}
	in := NewInput(rec)
	in.InjectHold(5, 5, 3)

	in.processInjected() // press
	for i := 0; i < 3; i++ {
		if !in.processInjected() {
			t.Fatal("idle frame not consumed")
		}
		if !in.Down() {
			t.Fatalf("pointer lifted during idle frame %d", i)
		}
	}
	in.processInjected() // release

	equalCalls(t, rec.calls, []string{"press 5,5", "release 5,5"})
	if in.processInjected() {
		t.Error("queue should be empty")
	}
}

func TestInputUpdateTicksHandler(t *testing.T) {
	rec := &pointerRecorder{}
	in := NewInput(rec)
	in.InjectTap(3, 4)

	in.Update()
	in.Update()

	if rec.ticks != 2 {
		t.Errorf("ticks = %d, want 2", rec.ticks)
	}
	equalCalls(t, rec.calls, []string{"press 3,4", "release 3,4"})
}

func TestInputDrivesDispatcher(t *testing.T) {
	d, clock := newTestDispatcher()
	var taps, holds int
	d.Register(newElement(0, 0, 100, 100), Options[string]{
		Callback:    func(TapEvent[string]) { taps++ },
		HoldEnabled: true,
		OnHold:      func(HoldEvent[string]) { holds++ },
	})
	in := NewInput(d)

	in.InjectTap(50, 50)
	in.Update()
	in.Update()
	if taps != 1 {
		t.Fatalf("taps = %d, want 1", taps)
	}

	clock.Advance(time.Second)
	in.InjectHold(50, 50, 2)
	in.Update() // press
	clock.Advance(DefaultHoldThreshold)
	in.Update() // idle, hold check due
	in.Update() // idle
	in.Update() // release
	if holds != 1 {
		t.Errorf("holds = %d, want 1", holds)
	}
	if taps != 2 {
		t.Errorf("taps = %d, want 2 (hold release still taps)", taps)
	}
}

func touch(id int, x, y float64) touchSample {
	return touchSample{id: ebiten.TouchID(id), x: x, y: y}
}

func TestApplyDevices(t *testing.T) {
	tests := []struct {
		name   string
		frames []deviceSample
		want   []string
	}{
		{
			name: "second touch ignored while first is down",
			frames: []deviceSample{
				{touches: []touchSample{touch(1, 10, 10)}},
				{touches: []touchSample{touch(1, 10, 10), touch(2, 200, 200)}},
				{touches: []touchSample{touch(2, 210, 200), touch(1, 10, 10)}},
			},
			want: []string{"press 10,10"},
		},
		{
			name: "owning touch lifts at last seen position",
			frames: []deviceSample{
				{touches: []touchSample{touch(1, 10, 10)}},
				{touches: []touchSample{touch(1, 30, 40)}},
				{},
			},
			want: []string{"press 10,10", "move 30,40", "release 30,40"},
		},
		{
			name: "lifting the owner does not hand over to another touch mid-frame",
			frames: []deviceSample{
				{touches: []touchSample{touch(1, 10, 10)}},
				{touches: []touchSample{touch(2, 200, 200)}},
			},
			want: []string{"press 10,10", "release 10,10"},
		},
		{
			name: "mouse skipped while a touch is down",
			frames: []deviceSample{
				{touches: []touchSample{touch(1, 10, 10)}, mouseX: 50, mouseY: 50, mouseDown: true},
				{touches: []touchSample{touch(1, 10, 10)}, mouseX: 60, mouseY: 60},
				{mouseX: 70, mouseY: 70},
			},
			want: []string{"press 10,10", "release 10,10"},
		},
		{
			name: "held mouse keeps the session when a touch lands",
			frames: []deviceSample{
				{mouseX: 5, mouseY: 5, mouseDown: true},
				{touches: []touchSample{touch(1, 100, 100)}, mouseX: 6, mouseY: 6, mouseDown: true},
				{touches: []touchSample{touch(1, 100, 100)}, mouseX: 6, mouseY: 6},
			},
			want: []string{"press 5,5", "move 6,6", "release 6,6"},
		},
		{
			name: "touch wins over mouse when both go down",
			frames: []deviceSample{
				{touches: []touchSample{touch(3, 40, 40)}, mouseX: 1, mouseY: 1, mouseDown: true},
			},
			want: []string{"press 40,40"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &pointerRecorder{}
			in := NewInput(rec)
			for _, f := range tt.frames {
				in.applyDevices(f)
			}
			equalCalls(t, rec.calls, tt.want)
		})
	}
}

func TestApplyDevices_SyntheticPressIgnoresDevices(t *testing.T) {
	rec := &pointerRecorder{}
	in := NewInput(rec)
	in.InjectPress(20, 20)
	drain(in)

	in.applyDevices(deviceSample{touches: []touchSample{touch(1, 90, 90)}})
	in.applyDevices(deviceSample{mouseX: 5, mouseY: 5})

	equalCalls(t, rec.calls, []string{"press 20,20"})
	if !in.Down() {
		t.Error("synthetic press should stay down until its release")
	}
}
