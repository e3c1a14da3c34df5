//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life3d/internal/app"
	"life3d/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ecfg, err := cfg.EngineConfig()
	if err != nil {
		log.Printf("falling back to default configuration: %v", err)
	}

	eng := engine.New(ecfg)
	game := app.New(eng, cfg.Scale, ecfg.Probability)
	size := eng.Size()

	ebiten.SetWindowTitle("Conway's game of life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
