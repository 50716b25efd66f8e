package graphics

// LineCap represents the line cap style.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin represents the line join style.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// StrokeStyle describes how a path outline is drawn.
type StrokeStyle struct {
	Width float64
	Cap   LineCap
	Join  LineJoin
}

// PenStyle is the style used for handwriting: round ends and round corners
// so a pen-down with no movement still leaves a dot.
func PenStyle(width float64) StrokeStyle {
	return StrokeStyle{
		Width: width,
		Cap:   LineCapRound,
		Join:  LineJoinRound,
	}
}
