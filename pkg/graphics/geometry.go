package graphics

import "math"

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 Point) Point {
	return Point{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}
}

// ControlPoint returns a quadratic control point for the span p1→p2.
// It starts at the midpoint and pushes the y coordinate further toward p2 by
// the remaining vertical distance, so the curve leaves p1 flatter than a
// straight line would.
func ControlPoint(p1, p2 Point) Point {
	cp := Midpoint(p1, p2)
	dy := math.Abs(p2.Y - cp.Y)
	if p1.Y < p2.Y {
		cp.Y += dy
	} else if p1.Y > p2.Y {
		cp.Y -= dy
	}
	return cp
}
