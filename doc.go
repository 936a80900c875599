// Package tapkit routes touch and mouse input to forgiving, toddler-sized
// tap targets for [Ebitengine] games.
//
// A [Dispatcher] owns a registry of targets. Each target is anchored to an
// element implementing [BoundsProvider] and gets a padded hitbox, so near
// misses still count. On every pointer event the dispatcher hit-tests the
// registry, classifies the interaction, and calls the target back:
//
//   - a press followed by a release over a target is a tap, unless the
//     pointer moved more than the drag threshold in between;
//   - a second tap on the same target inside the double-tap window is
//     dropped, unless the target allows double taps;
//   - drag-enabled targets receive OnDrag while the pointer drags over them;
//   - hold-enabled targets receive OnHold once the press outlasts the hold
//     threshold.
//
// # Quick start
//
//	d := tapkit.NewDispatcher[string](tapkit.DispatcherConfig{
//		Feedback: tapkit.VibrateFeedback{},
//	})
//	box := tapkit.NewBox(100, 100, 120, 120, tapkit.Color{R: 1, A: 1})
//	d.Register(box, tapkit.Options[string]{
//		Data: "red",
//		Callback: func(ev tapkit.TapEvent[string]) {
//			fmt.Println("tapped", ev.Data)
//		},
//	})
//	in := tapkit.NewInput(d)
//
//	// In your ebiten.Game:
//	func (g *Game) Update() error { g.in.Update(); return nil }
//
// # Overlapping targets
//
// When padded hitboxes overlap, the first-registered target wins. Avoid
// overlaps between targets that both care about tie-breaking.
//
// # Threading
//
// Everything runs on the game loop goroutine. Hold checks are deferred
// until [Dispatcher.Tick] (called by [Input.Update]) notices their
// deadline has passed, and each check is tied to the session that
// scheduled it, so stale checks are no-ops.
//
// [Ebitengine]: https://ebitengine.org
package tapkit
