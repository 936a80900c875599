package main

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/tapkit"
)

const boxSize = 120

// swatch is the payload attached to every target.
type swatch struct {
	Name  string
	Color tapkit.Color
}

var swatches = []swatch{
	{"red", tapkit.Color{R: 0.9, G: 0.3, B: 0.3, A: 1}},
	{"blue", tapkit.Color{R: 0.3, G: 0.6, B: 0.95, A: 1}},
	{"green", tapkit.Color{R: 0.3, G: 0.85, B: 0.45, A: 1}},
	{"purple", tapkit.Color{R: 0.7, G: 0.35, B: 0.9, A: 1}},
}

// holdCycle is the sequence the hold box walks through.
var holdCycle = []swatch{
	swatches[3],
	{"orange", tapkit.Color{R: 1, G: 0.65, B: 0.2, A: 1}},
	{"yellow", tapkit.Color{R: 0.95, G: 0.9, B: 0.3, A: 1}},
}

var clearColor = color.RGBA{R: 35, G: 30, B: 45, A: 255}

type game struct {
	d      *tapkit.Dispatcher[swatch]
	in     *tapkit.Input
	boxes  []*tapkit.Box
	logger *log.Logger

	runner          *tapkit.ScriptRunner
	exitAfterScript bool
	shots           tapkit.Screenshots

	rng    *rand.Rand
	want   string
	status string
	score  int

	holdID   tapkit.TargetID
	holdStep int

	dragStart  tapkit.Vec2
	dragOrigin tapkit.Vec2
}

func newGame(cfg tapkit.Config, feedback tapkit.Feedback, logger *log.Logger) *game {
	g := &game{
		logger: logger,
		rng:    rand.New(rand.NewSource(rand.Int63())),
	}
	g.d = tapkit.NewDispatcher[swatch](tapkit.DispatcherConfig{
		Config:   cfg,
		Feedback: feedback,
		Logger:   logger.WithPrefix("tapkit"),
	})
	g.in = tapkit.NewInput(g.d)

	for i, sw := range swatches {
		col, row := i%2, i/2
		box := tapkit.NewBox(float64(140+col*240), float64(100+row*190), boxSize, boxSize, sw.Color)
		g.boxes = append(g.boxes, box)

		opts := tapkit.Options[swatch]{Data: sw, Callback: g.onTap}
		switch sw.Name {
		case "green":
			opts.DragEnabled = true
			opts.OnDrag = g.onDrag(box)
		case "purple":
			opts.HoldEnabled = true
			opts.OnHold = g.onHold(box)
		}
		id := g.d.Register(box, opts)
		if sw.Name == "purple" {
			g.holdID = id
		}
	}
	g.pick()
	return g
}

// pick chooses the next color to look for.
func (g *game) pick() {
	opts, _ := g.d.Target(g.holdID)
	names := []string{"red", "blue", "green", opts.Data.Name}
	g.want = names[g.rng.Intn(len(names))]
}

func (g *game) onTap(ev tapkit.TapEvent[swatch]) {
	if ev.Data.Name == g.want {
		g.score++
		g.status = fmt.Sprintf("Yes! That's %s.", ev.Data.Name)
		g.logger.Info("correct", "color", ev.Data.Name, "score", g.score)
		g.pick()
		return
	}
	g.status = fmt.Sprintf("That's %s. Try again!", ev.Data.Name)
	g.logger.Debug("miss", "got", ev.Data.Name, "want", g.want)
}

func (g *game) onDrag(box *tapkit.Box) func(tapkit.DragEvent[swatch]) {
	return func(ev tapkit.DragEvent[swatch]) {
		if ev.Start != g.dragStart {
			g.dragStart = ev.Start
			g.dragOrigin = tapkit.Vec2{X: box.X, Y: box.Y}
		}
		box.X = g.dragOrigin.X + ev.DeltaX
		box.Y = g.dragOrigin.Y + ev.DeltaY
	}
}

func (g *game) onHold(box *tapkit.Box) func(tapkit.HoldEvent[swatch]) {
	return func(ev tapkit.HoldEvent[swatch]) {
		g.holdStep = (g.holdStep + 1) % len(holdCycle)
		next := holdCycle[g.holdStep]
		box.Color = next.Color
		// Re-point the target's payload; the element stays registered.
		g.d.Update(ev.Target, func(o *tapkit.Options[swatch]) {
			o.Data = next
		})
		if g.want == ev.Data.Name {
			g.pick()
		}
		g.status = fmt.Sprintf("Now it's %s!", next.Name)
		g.logger.Debug("hold", "target", ev.Target, "color", next.Name)
	}
}

func (g *game) Update() error {
	if g.runner != nil {
		g.runner.Step(g.in)
		if g.exitAfterScript && g.runner.Done() && g.in.Pending() == 0 {
			return ebiten.Termination
		}
	}
	g.in.Update()

	dt := float32(1.0 / float64(ebiten.TPS()))
	for _, b := range g.boxes {
		b.Update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	for _, b := range g.boxes {
		b.Draw(screen)
	}
	g.d.DrawDebug(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Find %s!   score: %d\n%s", g.want, g.score, g.status))
	g.shots.Flush(screen)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	return screenW, screenH
}
