package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for playfield elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// problemPalette is cycled through by problem id.
var problemPalette = []Color{
	ColorCyan,
	ColorYellow,
	ColorMagenta,
	ColorGreen,
	ColorBrightCyan,
	ColorOrange,
	ColorBlue,
}

// ProblemColor picks a stable color for the problem with the given id.
func ProblemColor(id int) Color {
	if id < 0 {
		id = -id
	}
	return problemPalette[id%len(problemPalette)]
}

// DangerColor returns the color for a label at the given depth, expressed as
// a fraction of the distance to the floor. Labels turn red near the floor.
func DangerColor(depth float64, base Color) Color {
	switch {
	case depth >= 0.85:
		return ColorBrightRed
	case depth >= 0.7:
		return ColorOrange
	default:
		return base
	}
}
