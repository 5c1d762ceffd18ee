package scene

import "chosenoffset.com/raylight/geom"

// State is the mutable scene state: where the light is and whether the
// pointer is currently dragging it. The frame loop owns a single State value
// and threads it through the transition methods below; there are no globals.
type State struct {
	Light    geom.Vec2
	Dragging bool
}

// NewState returns the initial scene state: idle, light at the viewport center.
func NewState(cfg Config) State {
	return State{
		Light: geom.NewVec2(float64(cfg.ScreenWidth)/2, float64(cfg.ScreenHeight)/2),
	}
}

// PointerDown starts a drag if the press lands within the pick radius of the
// light. Presses elsewhere leave the state unchanged.
func (s State) PointerDown(at geom.Vec2, pickRadius float64) State {
	if at.Sub(s.Light).Length() < pickRadius {
		s.Dragging = true
	}
	return s
}

// PointerMove moves the light to the pointer position while dragging.
// Motion while idle is a no-op.
func (s State) PointerMove(at geom.Vec2) State {
	if s.Dragging {
		s.Light = at
	}
	return s
}

// PointerUp ends any drag, regardless of where the pointer is.
func (s State) PointerUp() State {
	s.Dragging = false
	return s
}
