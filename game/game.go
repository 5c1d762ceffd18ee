// Package game runs the per-frame loop: drain input, update the scene state,
// cast the ray fan, and emit draw commands through the render interfaces.
package game

import (
	"image/color"

	"chosenoffset.com/raylight/geom"
	"chosenoffset.com/raylight/raycast"
	"chosenoffset.com/raylight/render"
	"chosenoffset.com/raylight/scene"
)

var (
	backgroundColor = color.NRGBA{30, 30, 30, 255}
	occluderColor   = color.NRGBA{0, 120, 200, 255}
	rayHitColor     = color.NRGBA{255, 255, 0, 100}
	rayMissColor    = color.NRGBA{255, 255, 0, 50}
	lightColor      = color.NRGBA{255, 255, 0, 255}
	lightRingColor  = color.NRGBA{200, 200, 50, 255}
)

// Game holds the scene state and its collaborators.
type Game struct {
	cfg      scene.Config
	state    scene.State
	renderer render.Renderer
	input    render.InputSource
}

// New creates a game with the light idle at the viewport center.
func New(cfg scene.Config, renderer render.Renderer, input render.InputSource) *Game {
	return &Game{
		cfg:      cfg,
		state:    scene.NewState(cfg),
		renderer: renderer,
		input:    input,
	}
}

// Update drains the pending input events into the scene state.
// A quit event terminates the loop via render.Termination.
func (g *Game) Update() error {
	for _, ev := range g.input.PollEvents() {
		switch ev.Kind {
		case render.EventQuit:
			return render.Termination
		case render.EventPointerDown:
			g.state = g.state.PointerDown(geom.NewVec2(ev.X, ev.Y), g.cfg.PickRadius)
		case render.EventPointerMove:
			g.state = g.state.PointerMove(geom.NewVec2(ev.X, ev.Y))
		case render.EventPointerUp:
			g.state = g.state.PointerUp()
		}
	}
	return nil
}

// Draw emits the frame: occluder outline, ray fan, then the light marker.
func (g *Game) Draw(dst render.Surface) {
	dst.Fill(backgroundColor)

	for _, seg := range raycast.TessellateCircle(g.cfg.OccluderCenter, g.cfg.OccluderRadius, g.cfg.CircleSegments) {
		g.renderer.StrokeLine(dst,
			float32(seg.A.X), float32(seg.A.Y),
			float32(seg.B.X), float32(seg.B.Y),
			1, occluderColor)
	}

	// Rays that hit stop bright at the boundary; rays that miss run dim out
	// to the fixed length. The contrast is the whole visualization.
	light := g.state.Light
	for _, r := range raycast.CastFan(light, g.cfg.RayCount, g.cfg.Occluder()) {
		end := light.Add(r.Direction.Scale(g.cfg.RayInfinity))
		clr := rayMissColor
		if r.OK {
			end = r.Hit.Point
			clr = rayHitColor
		}
		g.renderer.StrokeLine(dst,
			float32(light.X), float32(light.Y),
			float32(end.X), float32(end.Y),
			1, clr)
	}

	// The marker radius equals the pick radius so the drawn circle is also
	// the grab area.
	g.renderer.FillCircle(dst,
		float32(light.X), float32(light.Y),
		float32(g.cfg.PickRadius), lightColor)
	g.renderer.StrokeCircle(dst,
		float32(light.X), float32(light.Y),
		float32(g.cfg.PickRadius), 2, lightRingColor)
}

// Layout reports the fixed logical scene size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
