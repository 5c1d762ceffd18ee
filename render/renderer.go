// Package render defines the interfaces between the scene core and the
// windowing/rasterization backend, so the game logic never touches a
// concrete graphics engine.
package render

import (
	"errors"
	"image/color"
)

// Termination is returned by Game.Update to stop the run loop cleanly.
// Engines translate it into their own shutdown path.
var Termination = errors.New("termination requested")

// Renderer draws the scene's primitives onto a Surface: lines with per-call
// color and alpha, plus circle helpers for the light marker. Backends own
// rasterization and presentation.
type Renderer interface {
	StrokeLine(dst Surface, x1, y1, x2, y2 float32, strokeWidth float32, clr color.Color)
	FillCircle(dst Surface, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Surface, x, y, radius float32, strokeWidth float32, clr color.Color)
}

// Surface is a render target for one frame.
type Surface interface {
	// Fill clears the whole surface to the given color.
	Fill(clr color.Color)
}

// InputSource produces the pending discrete input events, polled
// non-blockingly once per frame. Coordinates are in scene space.
type InputSource interface {
	PollEvents() []Event
}

// Game is the per-frame callback pair driven by an Engine.
type Game interface {
	// Update advances the simulation one frame. Returning Termination
	// stops the loop; any other error is fatal.
	Update() error

	// Draw emits the frame's draw commands onto dst.
	Draw(dst Surface)

	// Layout reports the logical scene size for the given outside size.
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Engine owns the window (or terminal), the frame pacing, and the run loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)

	// RunGame drives game.Update and game.Draw until the game terminates
	// or the backend shuts down.
	RunGame(game Game) error
}
