package main

import (
	"flag"
	"log"

	"chosenoffset.com/raylight/game"
	"chosenoffset.com/raylight/render"
	ebitenrender "chosenoffset.com/raylight/render/ebiten"
	terminalrender "chosenoffset.com/raylight/render/terminal"
	"chosenoffset.com/raylight/scene"
)

func main() {
	terminal := flag.Bool("terminal", false, "Render into the terminal instead of a window")
	flag.Parse()

	cfg := scene.DefaultConfig()

	// Initialize the renderer backend
	var (
		renderer render.Renderer
		input    render.InputSource
		engine   render.Engine
	)
	if *terminal {
		backend := terminalrender.NewBackend()
		renderer = backend.Renderer()
		input = backend.InputSource()
		engine = backend
	} else {
		renderer = ebitenrender.NewRenderer()
		input = ebitenrender.NewInputSource()
		engine = ebitenrender.NewEngine()
	}

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Raylight - drag the light")

	g := game.New(cfg, renderer, input)

	log.Printf("Starting raylight (%d rays, occluder r=%.0f)...", cfg.RayCount, cfg.OccluderRadius)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
