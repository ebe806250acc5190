package draw

import (
	"io"
	"math"
	"sort"
	"strings"
)

// Canvas maps the logical playfield onto terminal cells. Each cell holds two
// vertically stacked pixels drawn with half-block characters, and Render only
// emits cells that differ from what it wrote last time.
type Canvas struct {
	termWidth  int
	termHeight int
	pixHeight  int    // termHeight * 2
	pixels     []bool // [y*termWidth + x]
	prev       []rune // Cells written by the last Render; 0 = unknown

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	offsetCol int
	offsetRow int

	out       strings.Builder
	scratch   [20]byte
	scaled    []Point
	crossings []float64
	points    []Point
}

// NewCanvas creates a canvas covering v that draws a logicalWidth x
// logicalHeight playfield.
func NewCanvas(v Viewport, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.SetViewport(v)
	return c
}

// SetViewport resizes and repositions the canvas. It reports whether the
// visible area changed, in which case the caller should clear the terminal;
// the next Render then repaints everything.
func (c *Canvas) SetViewport(v Viewport) bool {
	changed := v.Width != c.termWidth || v.Height != c.termHeight ||
		v.OffsetCol != c.offsetCol || v.OffsetRow != c.offsetRow
	if v.Width != c.termWidth || v.Height != c.termHeight || c.pixels == nil {
		c.termWidth = v.Width
		c.termHeight = v.Height
		c.pixHeight = v.Height * 2
		c.pixels = make([]bool, c.pixHeight*v.Width)
		c.prev = make([]rune, v.Height*v.Width)
	} else if changed {
		clear(c.prev)
	}
	c.offsetCol = v.OffsetCol
	c.offsetRow = v.OffsetRow
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.pixHeight) / c.logicalHeight
	return changed
}

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw forgets what was last written so the next Render repaints
// every set cell. Call it after the terminal has been cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.prev)
}

// dirtyCell marks a cell that text was written over.
const dirtyCell rune = -1

// MarkTextDirty records that text covered length cells starting at the
// 1-based canvas position (col, row), so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, length int) {
	if row < 1 || row > c.termHeight {
		return
	}
	base := (row - 1) * c.termWidth
	for x := max(col, 1); x < col+length && x <= c.termWidth; x++ {
		c.prev[base+x-1] = dirtyCell
	}
}

// LogicalToTerminal converts a logical position to the 1-based canvas cell
// containing it, for placing text next to drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

// BorrowPoints returns a scratch slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.points) < n {
		c.points = make([]Point, n)
	}
	return c.points[:n]
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.pixHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// DrawLine draws a logical-space line with Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x, y := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx, dy := max(x2-x, x-x2), max(y2-y, y-y2)
	sx, sy := 1, 1
	if x > x2 {
		sx = -1
	}
	if y > y2 {
		sy = -1
	}

	e := dx - dy
	for {
		c.setPixel(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

// FillRect fills an axis-aligned logical rectangle. Anything with a positive
// size covers at least one pixel.
func (c *Canvas) FillRect(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	x1, y1 := c.toPixel(x, y)
	x2, y2 := c.toPixel(x+width, y+height)
	x2 = max(x2, x1+1)
	y2 = max(y2, y1+1)
	for py := max(y1, 0); py < min(y2, c.pixHeight); py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := max(x1, 0); px < min(x2, c.termWidth); px++ {
			row[px] = true
		}
	}
}

// DrawRect outlines an axis-aligned logical rectangle.
func (c *Canvas) DrawRect(x, y, width, height float64) {
	corners := [4]Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
	for i := range corners {
		c.DrawLine(corners[i], corners[(i+1)%len(corners)])
	}
}

// DrawPolygon outlines a logical polygon and optionally fills it.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// fillPolygon scanline-fills a polygon in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaled) < len(points) {
		c.scaled = make([]Point, len(points))
	}
	scaled := c.scaled[:len(points)]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = min(minY, scaled[i].Y)
		maxY = max(maxY, scaled[i].Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.crossings[:0]
		for i, p1 := range scaled {
			p2 := scaled[(i+1)%len(scaled)]
			if (p1.Y <= scanY) != (p2.Y <= scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.crossings = xs

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	}
	return BlockEmpty
}

// Render writes the cells that changed since the previous Render.
func (c *Canvas) Render(w io.Writer) error {
	c.out.Reset()
	for row := range c.termHeight {
		top := c.pixels[2*row*c.termWidth:]
		bottom := c.pixels[(2*row+1)*c.termWidth:]
		for col := range c.termWidth {
			ch := cellRune(top[col], bottom[col])
			cell := row*c.termWidth + col
			prev := c.prev[cell]
			c.prev[cell] = ch
			if ch == prev || (prev == 0 && ch == BlockEmpty) {
				continue
			}
			appendMove(&c.out, c.scratch[:], col+1+c.offsetCol, row+1+c.offsetRow)
			c.out.WriteRune(ch)
		}
	}
	return writeChunks(w, c.out.String())
}

// RenderBorder frames the canvas when the terminal has spare room around it:
// rules above and below need a spare row, bars at the sides a spare column,
// and corners need both.
func (c *Canvas) RenderBorder(w io.Writer) error {
	bars := c.offsetCol >= 1
	rules := c.offsetRow >= 1
	if !bars && !rules {
		return nil
	}

	var b strings.Builder
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	line := strings.Repeat("─", c.termWidth)

	if rules {
		edges := [2]struct {
			row         int
			open, close string
		}{
			{c.offsetRow, "┌", "┐"},
			{c.offsetRow + c.termHeight + 1, "└", "┘"},
		}
		for _, e := range edges {
			if bars {
				appendMove(&b, c.scratch[:], left, e.row)
				b.WriteString(e.open + line + e.close)
			} else {
				appendMove(&b, c.scratch[:], left+1, e.row)
				b.WriteString(line)
			}
		}
	}
	if bars {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			appendMove(&b, c.scratch[:], left, row)
			b.WriteString("│")
			appendMove(&b, c.scratch[:], right, row)
			b.WriteString("│")
		}
	}
	return writeChunks(w, b.String())
}
