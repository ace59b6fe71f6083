package application

import "github.com/bnema/pomodesk/internal/domain"

// WindowPlacement is how a window should be shown at startup. Position and
// size are applied independently; a window without a usable position is
// centered instead.
type WindowPlacement struct {
	Label    domain.WindowLabel
	Centered bool
	X        *int
	Y        *int
	Width    *int
	Height   *int
}
