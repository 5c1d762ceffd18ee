// Package ebiten implements the render interfaces on top of Ebiten,
// providing the windowed backend.
package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/raylight/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// StrokeLine draws a line on the destination surface.
func (r *EbitenRenderer) StrokeLine(dst render.Surface, x1, y1, x2, y2 float32, strokeWidth float32, clr color.Color) {
	img := dst.(*EbitenSurface).img
	vector.StrokeLine(img, x1, y1, x2, y2, strokeWidth, clr, true)
}

// FillCircle draws a filled circle on the destination surface.
func (r *EbitenRenderer) FillCircle(dst render.Surface, x, y, radius float32, clr color.Color) {
	img := dst.(*EbitenSurface).img
	vector.DrawFilledCircle(img, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination surface.
func (r *EbitenRenderer) StrokeCircle(dst render.Surface, x, y, radius float32, strokeWidth float32, clr color.Color) {
	img := dst.(*EbitenSurface).img
	vector.StrokeCircle(img, x, y, radius, strokeWidth, clr, true)
}

// EbitenSurface wraps an ebiten.Image to implement the render.Surface interface.
type EbitenSurface struct {
	img *ebiten.Image
}

// Fill fills the entire surface with the given color.
func (s *EbitenSurface) Fill(clr color.Color) {
	s.img.Fill(clr)
}

// EbitenInputSource implements the InputSource interface using Ebiten.
//
// Ebiten exposes polled input state rather than an event queue, so discrete
// events are synthesized once per frame from edge detection (inpututil) and
// cursor movement since the previous poll.
type EbitenInputSource struct {
	lastX, lastY int
	polled       bool
}

// NewInputSource creates a new Ebiten-based input source.
func NewInputSource() render.InputSource {
	return &EbitenInputSource{}
}

// PollEvents returns the input events since the previous frame.
func (in *EbitenInputSource) PollEvents() []render.Event {
	var events []render.Event

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, render.Event{Kind: render.EventQuit})
	}

	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, render.Event{Kind: render.EventPointerDown, X: float64(x), Y: float64(y)})
	}

	if in.polled && (x != in.lastX || y != in.lastY) {
		events = append(events, render.Event{Kind: render.EventPointerMove, X: float64(x), Y: float64(y)})
	}
	in.lastX, in.lastY = x, y
	in.polled = true

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, render.Event{Kind: render.EventPointerUp})
	}

	return events
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.Termination) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenSurface{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
