package domain

type WindowLabel string

const (
	WindowMain     WindowLabel = "main"
	WindowFloating WindowLabel = "floating"
)

const (
	minWindowCoord = -10000
	maxWindowCoord = 10000
	minWindowSize  = 100
	maxWindowSize  = 10000
)

// WindowGeometry fields are independently optional; a window may have a
// remembered size without a remembered position and vice versa.
type WindowGeometry struct {
	X      *int
	Y      *int
	Width  *int
	Height *int
}

func (g WindowGeometry) IsZero() bool {
	return g.X == nil && g.Y == nil && g.Width == nil && g.Height == nil
}

// HasPosition reports whether both coordinates are present and inside the
// envelope a screen can plausibly place a window at.
func (g WindowGeometry) HasPosition() bool {
	if g.X == nil || g.Y == nil {
		return false
	}
	return inRange(*g.X, minWindowCoord, maxWindowCoord) && inRange(*g.Y, minWindowCoord, maxWindowCoord)
}

func (g WindowGeometry) HasSize() bool {
	if g.Width == nil || g.Height == nil {
		return false
	}
	return inRange(*g.Width, minWindowSize, maxWindowSize) && inRange(*g.Height, minWindowSize, maxWindowSize)
}

// OutOfRangeField returns the first present field that falls outside the
// envelope, or "" when every present field is acceptable.
func (g WindowGeometry) OutOfRangeField() string {
	switch {
	case g.X != nil && !inRange(*g.X, minWindowCoord, maxWindowCoord):
		return "x"
	case g.Y != nil && !inRange(*g.Y, minWindowCoord, maxWindowCoord):
		return "y"
	case g.Width != nil && !inRange(*g.Width, minWindowSize, maxWindowSize):
		return "width"
	case g.Height != nil && !inRange(*g.Height, minWindowSize, maxWindowSize):
		return "height"
	default:
		return ""
	}
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
