package signature

import "sigpad/pkg/graphics"

// letterbox returns the padding that centers a surface of the given size in
// the unit square. Only the shorter axis is padded: landscape surfaces get
// vertical padding, portrait surfaces horizontal padding, squares none.
func letterbox(size graphics.Size) (padX, padY float64) {
	aspect := size.Aspect()
	switch {
	case aspect > 1:
		padY = (1 - size.Height/size.Width) / 2
	case aspect < 1:
		padX = (1 - size.Width/size.Height) / 2
	}
	return padX, padY
}

// Normalize maps a surface-space point into normalized space. It reports
// false, and returns the zero point, when the surface is degenerate.
func Normalize(p graphics.Point, surface graphics.Size) (graphics.Point, bool) {
	if surface.IsDegenerate() {
		return graphics.Point{}, false
	}
	padX, padY := letterbox(surface)
	return graphics.Point{
		X: p.X/surface.Width + padX,
		Y: p.Y/surface.Height + padY,
	}, true
}

// Denormalize maps a normalized point onto a surface of the given size. It is
// the exact inverse of Normalize for surfaces with the same aspect ratio.
func Denormalize(p graphics.Point, surface graphics.Size) graphics.Point {
	padX, padY := letterbox(surface)
	return graphics.Point{
		X: (p.X - padX) * surface.Width,
		Y: (p.Y - padY) * surface.Height,
	}
}
