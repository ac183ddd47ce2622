package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"lifegrid/internal/app"
	"lifegrid/pkg/input"
	"lifegrid/pkg/life"
	"lifegrid/pkg/pattern"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	cfg := app.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		fileCfg, err := app.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		cfg = cfg.Resolve(fileCfg, flag.CommandLine)
	}
	cfg.Validate()

	ctrl := life.NewController(cfg.Side, cfg.Workers)
	if cfg.Pattern != "" {
		p, ok := pattern.Get(cfg.Pattern)
		if !ok {
			log.Fatalf("unknown pattern %q (available: %v)", cfg.Pattern, pattern.Names())
		}
		ctrl.Stamp(p, life.Coord{Col: cfg.Side / 2, Row: cfg.Side / 2})
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	if err := run(screen, ctrl, cfg); err != nil {
		screen.Fini()
		log.Fatalf("%+v", err)
	}
}

// run owns the one goroutine that touches the controller: timer ticks
// and terminal events are funneled into a single select loop, so every
// mutation happens sequentially.
func run(screen tcell.Screen, ctrl *life.Controller, cfg app.Config) error {
	events := make(chan tcell.Event)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(cfg.StepInterval)
	defer ticker.Stop()

	var mouseDown bool
	for {
		draw(screen, ctrl, cfg)
		select {
		case <-ticker.C:
			ctrl.Tick()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, ctrl, cfg) {
					return nil
				}
			case *tcell.EventMouse:
				if err := handleMouse(ev, ctrl, &mouseDown); err != nil {
					return err
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}

// handleKey dispatches a key event; it returns false when the program
// should exit.
func handleKey(ev *tcell.EventKey, ctrl *life.Controller, cfg app.Config) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'c', 'C':
		ctrl.Clear()
	case 'r', 'R':
		ctrl.Randomize(time.Now().UnixNano(), cfg.Density)
	default:
		switch input.Map(rawCode(ev)) {
		case input.ActionTogglePause:
			ctrl.TogglePause()
		case input.ActionStepOnce:
			ctrl.StepOnce()
		}
	}
	return true
}

// rawCode folds the event rune into the uppercase raw code space the
// input mapper uses.
func rawCode(ev *tcell.EventKey) int {
	r := ev.Rune()
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return int(r)
}

// handleMouse toggles the clicked cell on the press edge of button 1.
// Cells render two columns wide, so the column is the x position halved.
func handleMouse(ev *tcell.EventMouse, ctrl *life.Controller, mouseDown *bool) error {
	if ev.Buttons()&tcell.Button1 == 0 {
		*mouseDown = false
		return nil
	}
	if *mouseDown {
		return nil
	}
	*mouseDown = true

	x, y := ev.Position()
	cell := life.Coord{Col: x / 2, Row: y}
	dim := ctrl.Board().Dim()
	if cell.Col >= dim || cell.Row >= dim {
		return nil
	}
	return ctrl.ToggleCell(cell)
}

func draw(screen tcell.Screen, ctrl *life.Controller, cfg app.Config) {
	board := ctrl.Board()
	dim := board.Dim()
	cells := board.Cells()

	aliveStyle := tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	if ctrl.Paused() {
		deadStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	}

	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			style := deadStyle
			if cells[row*dim+col] != 0 {
				style = aliveStyle
			}
			screen.SetContent(col*2, row, ' ', nil, style)
			screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	state := "running"
	if ctrl.Paused() {
		state = "paused"
	}
	status := fmt.Sprintf(" gen %d  pop %d  %s  interval %s  [space] pause  [n] step  [r] random  [c] clear  [q] quit ",
		ctrl.Generation(), ctrl.Population(), state, cfg.StepInterval)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray)
	for i, r := range status {
		screen.SetContent(i, dim, r, nil, statusStyle)
	}
	screen.Show()
}
