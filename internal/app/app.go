//go:build ebiten

package app

import (
	"image/color"
	"runtime"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/stats"
	"lifegrid/internal/ui"
	"lifegrid/pkg/input"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// rawKeyCodes translates ebiten keys to the raw codes the input mapper
// understands.
var rawKeyCodes = map[ebiten.Key]int{
	ebiten.KeySpace: input.CodeSpace,
	ebiten.KeyN:     input.CodeN,
}

// Game adapts the simulation controller to the ebiten.Game interface.
// All controller mutations happen inside Update, so they run strictly
// sequentially.
type Game struct {
	ctrl    *life.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep
	stats   *stats.Stats

	cfg Config

	onColor   color.Color
	offColor  color.Color
	offPaused color.Color
}

// New constructs a Game around the provided controller.
func New(ctrl *life.Controller, cfg Config) *Game {
	dim := ctrl.Board().Dim()
	g := &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(dim, dim),
		overlay: ui.NewOverlay(dim, cfg.Scale),
		pacer:   core.NewFixedStep(cfg.StepInterval),
		stats:   stats.New(),
		cfg:     cfg,

		onColor:   color.White,
		offColor:  color.Black,
		offPaused: color.RGBA{R: 28, G: 30, B: 38, A: 255},
	}
	g.hud = ui.NewHUD(cfg.HUDWidth, "lifegrid", g.controls(), g)
	return g
}

func (g *Game) controls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "interval_ms", Label: "Interval ms", Step: 25, Min: 25, Max: 1000, HasMin: true, HasMax: true},
		{Key: "workers", Label: "Workers", Step: 1, Min: 1, Max: runtime.NumCPU(), HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment.
func (g *Game) SetIntParameter(key string, value int) bool {
	switch key {
	case "interval_ms":
		g.cfg.StepInterval = time.Duration(value) * time.Millisecond
		g.pacer.SetInterval(g.cfg.StepInterval)
		return true
	case "workers":
		g.ctrl.SetWorkers(value)
		return true
	}
	return false
}

// Update handles per-frame input and advances the simulation when one
// step interval has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, code := range rawKeyCodes {
		if inpututil.IsKeyJustPressed(key) {
			g.applyAction(input.Map(code))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Randomize(time.Now().UnixNano(), g.cfg.Density)
	}

	g.overlay.Update()
	if err := g.handleClick(); err != nil {
		return err
	}
	g.hud.Update(g.gridWidthPx(), g.status())

	if g.pacer.ShouldStep() {
		before := g.ctrl.Generation()
		start := time.Now()
		g.ctrl.Tick()
		if g.ctrl.Generation() != before {
			g.stats.Update(g.ctrl.Generation(), g.ctrl.Population(), time.Since(start))
		}
	}
	return nil
}

func (g *Game) applyAction(action input.Action) {
	switch action {
	case input.ActionTogglePause:
		g.ctrl.TogglePause()
	case input.ActionStepOnce:
		g.ctrl.StepOnce()
	}
}

// handleClick toggles the cell under the cursor. Clicks on the HUD
// panel never reach the controller; a toggle error therefore means the
// pixel-to-cell mapping is broken and aborts the run.
func (g *Game) handleClick() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.gridWidthPx() || my >= g.gridWidthPx() {
		return nil
	}
	return g.ctrl.ToggleCell(life.Coord{Col: mx / g.cfg.Scale, Row: my / g.cfg.Scale})
}

func (g *Game) status() ui.Status {
	return ui.Status{
		Paused:      g.ctrl.Paused(),
		Generation:  g.ctrl.Generation(),
		Population:  g.ctrl.Population(),
		StepsPerSec: g.stats.StepsPerSecond,
		AveragePop:  g.stats.AveragePopulation,
		Values: map[string]int{
			"interval_ms": int(g.pacer.Interval() / time.Millisecond),
			"workers":     g.ctrl.Workers(),
		},
	}
}

func (g *Game) gridWidthPx() int {
	return g.ctrl.Board().Dim() * g.cfg.Scale
}

// Draw renders the current generation. Paused state dims the dead-cell
// background so the mode is visible at a glance.
func (g *Game) Draw(screen *ebiten.Image) {
	off := g.offColor
	if g.ctrl.Paused() {
		off = g.offPaused
	}
	g.painter.Blit(screen, g.ctrl.Board().Cells(), g.onColor, off, g.cfg.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidthPx(), g.gridWidthPx())
}

// Layout returns the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.gridWidthPx()
	return side + g.cfg.HUDWidth, side
}
