//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/pkg/life"
	"lifegrid/pkg/pattern"

	"github.com/hajimehoshi/ebiten/v2"
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

	game := app.New(ctrl, cfg)
	dim := ctrl.Board().Dim()

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(dim*cfg.Scale+cfg.HUDWidth, dim*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
