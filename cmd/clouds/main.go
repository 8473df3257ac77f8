//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/zzkarna/optimized-cloud-generator/internal/app"
	"github.com/zzkarna/optimized-cloud-generator/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sc, err := cfg.SceneConfig()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(scene.New(sc), cfg)
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("clouds - volumetric raymarch")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
