package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorGray
	ColorBrightWhite
	ColorBrightYellow
)

// ItemColors is the color cycle used for item kinds, in kind order.
var ItemColors = []Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorPink,
}

// ItemColor returns the color for the item kind with index k.
func ItemColor(k int) Color {
	if k < 0 {
		return ColorDefault
	}
	return ItemColors[k%len(ItemColors)]
}
