package replay

import (
	"image/color"

	"sigpad/pkg/graphics"
	"sigpad/pkg/signature"
)

// Pen is the stroke style applied on pointer-down.
type Pen struct {
	Color color.NRGBA
	Width float64
}

// DefaultPen matches the strokes a signature starts implicitly.
func DefaultPen() Pen {
	return Pen{Color: signature.DefaultColor, Width: signature.DefaultWidth}
}

// Player feeds script events into a signature.
type Player struct {
	Pen     Pen
	Surface graphics.Size
}

// NewPlayer returns a player with the default pen and the given initial
// capture surface.
func NewPlayer(surface graphics.Size) *Player {
	return &Player{Pen: DefaultPen(), Surface: surface}
}

// Play applies every event to sig in order.
func (p *Player) Play(s Script, sig *signature.Signature) {
	for _, ev := range s.Events {
		p.Apply(ev, sig)
	}
}

// Apply handles a single event.
func (p *Player) Apply(ev Event, sig *signature.Signature) {
	switch ev.Kind {
	case KindSurface:
		p.Surface = ev.Size
	case KindColor:
		p.Pen.Color = ev.Color
	case KindWidth:
		p.Pen.Width = ev.Width
	case KindDown:
		sig.StartNewStroke(p.Pen.Color, p.Pen.Width)
		sig.AddPoint(ev.Point, p.Surface)
	case KindMove, KindUp:
		sig.AddPoint(ev.Point, p.Surface)
	case KindClear:
		sig.Clear()
	}
}

// CaptureSurface returns the last surface size declared by the script, or
// fallback when it declares none.
func (s Script) CaptureSurface(fallback graphics.Size) graphics.Size {
	size := fallback
	for _, ev := range s.Events {
		if ev.Kind == KindSurface {
			size = ev.Size
		}
	}
	return size
}
