// Package terminal implements the render interfaces on top of tcell,
// rendering the scene into terminal cells. It exists to prove the render
// abstraction holds for more than one backend, and because a terminal with
// mouse reporting is a perfectly good surface for a line-and-circle scene.
package terminal

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raylight/render"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Backend owns the tcell screen and implements Engine. Renderer and
// InputSource hang off it because they share the screen and the
// world-to-cell scaling.
type Backend struct {
	screen tcell.Screen
	events chan tcell.Event
	title  string

	// Logical scene size, reported by the game's Layout.
	worldW, worldH int

	prevButtons tcell.ButtonMask
	lastCellX   int
	lastCellY   int
}

// NewBackend creates a terminal backend. The screen is not initialized
// until RunGame so constructing a backend has no side effects.
func NewBackend() *Backend {
	return &Backend{
		events:    make(chan tcell.Event, 100),
		lastCellX: -1,
		lastCellY: -1,
	}
}

// Renderer returns the backend's renderer.
func (b *Backend) Renderer() render.Renderer {
	return &cellRenderer{}
}

// InputSource returns the backend's input source.
func (b *Backend) InputSource() render.InputSource {
	return b
}

// SetWindowSize records the logical scene size. The terminal decides its own
// cell grid; the size is only used for coordinate scaling until Layout runs.
func (b *Backend) SetWindowSize(width, height int) {
	b.worldW, b.worldH = width, height
}

// SetWindowTitle records the terminal title; it is applied once the screen
// is initialized in RunGame.
func (b *Backend) SetWindowTitle(title string) {
	b.title = title
}

// RunGame initializes the terminal and drives the frame loop until the game
// terminates or the terminal shuts down.
func (b *Backend) RunGame(game render.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	b.screen = screen
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	if b.title != "" {
		screen.SetTitle(b.title)
	}

	// Event pump: PollEvent blocks, so it runs in its own goroutine feeding
	// a buffered channel that PollEvents drains without blocking.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			b.events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := game.Update(); err != nil {
			if errors.Is(err, render.Termination) {
				return nil
			}
			return err
		}

		cols, rows := screen.Size()
		b.worldW, b.worldH = game.Layout(cols, rows)

		game.Draw(&cellSurface{
			screen: screen,
			cols:   cols,
			rows:   rows,
			worldW: float64(b.worldW),
			worldH: float64(b.worldH),
		})
		screen.Show()
	}
	return nil
}

// PollEvents drains the pending tcell events and converts them into the
// scene's discrete event vocabulary, scaled to world coordinates.
func (b *Backend) PollEvents() []render.Event {
	var events []render.Event

	for {
		select {
		case ev := <-b.events:
			events = append(events, b.convert(ev)...)
		default:
			return events
		}
	}
}

func (b *Backend) convert(ev tcell.Event) []render.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return []render.Event{{Kind: render.EventQuit}}
		}

	case *tcell.EventMouse:
		return b.convertMouse(ev)

	case *tcell.EventResize:
		b.screen.Sync()
	}
	return nil
}

func (b *Backend) convertMouse(ev *tcell.EventMouse) []render.Event {
	var events []render.Event

	cellX, cellY := ev.Position()
	x, y := b.cellToWorld(cellX, cellY)
	buttons := ev.Buttons()

	pressed := buttons&tcell.Button1 != 0
	wasPressed := b.prevButtons&tcell.Button1 != 0

	if pressed && !wasPressed {
		events = append(events, render.Event{Kind: render.EventPointerDown, X: x, Y: y})
	}
	if cellX != b.lastCellX || cellY != b.lastCellY {
		events = append(events, render.Event{Kind: render.EventPointerMove, X: x, Y: y})
	}
	if !pressed && wasPressed {
		events = append(events, render.Event{Kind: render.EventPointerUp})
	}

	b.prevButtons = buttons
	b.lastCellX, b.lastCellY = cellX, cellY
	return events
}

func (b *Backend) cellToWorld(cellX, cellY int) (float64, float64) {
	cols, rows := b.screen.Size()
	if cols == 0 || rows == 0 {
		return 0, 0
	}
	return float64(cellX) * float64(b.worldW) / float64(cols),
		float64(cellY) * float64(b.worldH) / float64(rows)
}
