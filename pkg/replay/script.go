// Package replay drives a signature from a recorded pointer-event script,
// the way a touch surface would while the user signs.
//
// A script is line oriented. Blank lines and lines starting with '#' are
// ignored; every other line is one command:
//
//	surface W H        size of the capturing surface from here on
//	color C            pen color: palette name or #RRGGBB[AA]
//	width N            pen width in surface units
//	down X Y           pointer down: starts a stroke and records the point
//	move X Y           pointer moved while down
//	up X Y             pointer released
//	clear              discard everything drawn so far
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"sigpad/pkg/graphics"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

// Kind identifies a script command.
type Kind int

const (
	KindSurface Kind = iota
	KindColor
	KindWidth
	KindDown
	KindMove
	KindUp
	KindClear
)

var kindNames = map[string]Kind{
	"surface": KindSurface,
	"color":   KindColor,
	"width":   KindWidth,
	"down":    KindDown,
	"move":    KindMove,
	"up":      KindUp,
	"clear":   KindClear,
}

// String returns the script keyword for k.
func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// Event is one parsed script line.
type Event struct {
	Line  int
	Kind  Kind
	Point graphics.Point // down, move, up
	Size  graphics.Size  // surface
	Color color.NRGBA    // color
	Width float64        // width
}

// Script is a parsed sequence of events.
type Script struct {
	Events []Event
}

// Parse reads a script. Errors carry the offending line number and wrap
// ErrSyntax.
func Parse(r io.Reader) (Script, error) {
	var s Script
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := parseLine(line)
		if err != nil {
			return Script{}, fmt.Errorf("line %d: %w", n, err)
		}
		ev.Line = n
		s.Events = append(s.Events, ev)
	}
	if err := sc.Err(); err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return s, nil
}

func parseLine(line string) (Event, error) {
	fields := strings.Fields(line)
	kind, ok := kindNames[strings.ToLower(fields[0])]
	if !ok {
		return Event{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, fields[0])
	}
	args := fields[1:]
	ev := Event{Kind: kind}

	switch kind {
	case KindSurface:
		v, err := floats(kind, args, 2)
		if err != nil {
			return Event{}, err
		}
		ev.Size = graphics.Sz(v[0], v[1])
	case KindColor:
		if len(args) != 1 {
			return Event{}, fmt.Errorf("%w: color takes 1 argument, got %d", ErrSyntax, len(args))
		}
		c, err := graphics.ParseColor(args[0])
		if err != nil {
			return Event{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		ev.Color = c
	case KindWidth:
		v, err := floats(kind, args, 1)
		if err != nil {
			return Event{}, err
		}
		if !(v[0] > 0) {
			return Event{}, fmt.Errorf("%w: width must be positive, got %v", ErrSyntax, v[0])
		}
		ev.Width = v[0]
	case KindDown, KindMove, KindUp:
		v, err := floats(kind, args, 2)
		if err != nil {
			return Event{}, err
		}
		ev.Point = graphics.Pt(v[0], v[1])
	case KindClear:
		if len(args) != 0 {
			return Event{}, fmt.Errorf("%w: clear takes no arguments", ErrSyntax)
		}
	}
	return ev, nil
}

func floats(kind Kind, args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrSyntax, kind, want, len(args))
	}
	out := make([]float64, want)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad number %q", ErrSyntax, kind, a)
		}
		out[i] = v
	}
	return out, nil
}
