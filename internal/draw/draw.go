// Package draw renders logical playfield coordinates onto a terminal using
// half-block characters.
package draw

// Point is a position in logical playfield units.
type Point struct {
	X, Y float64
}

// Cell glyphs. A terminal cell shows two stacked pixels.
const (
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockFull      = '█'
)
