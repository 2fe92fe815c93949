package protocol

// Color is an RGB triple in the Launchpad Pro's 6-bit LED depth. Channels
// above 0x3F are clamped at encode time.
type Color struct {
	R, G, B uint8 // 0-63 per channel
}

// M8 palette, matching the colors the real device shows over LPP.
var (
	ColorOff     = Color{0, 0, 0}
	ColorWhite   = Color{63, 63, 63}
	ColorRed     = Color{63, 0, 0}
	ColorGreen   = Color{0, 63, 0}
	ColorBlue    = Color{0, 0, 63}
	ColorYellow  = Color{63, 63, 0}
	ColorCyan    = Color{0, 63, 63}
	ColorMagenta = Color{63, 0, 63}
	ColorOrange  = Color{63, 32, 0}
	ColorPink    = Color{63, 20, 40}

	ColorDimWhite = Color{20, 20, 20}
	ColorDimRed   = Color{20, 0, 0}
	ColorDimGreen = Color{0, 20, 0}
	ColorDimBlue  = Color{0, 0, 20}
)
