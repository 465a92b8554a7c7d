package term

import (
	"strings"
	"unicode/utf8"
)

// layer orders what a cell shows when several elements share it. Higher
// layers win the cell's style.
type layer uint8

const (
	layerNone layer = iota
	layerGrid
	layerEmphasis
	layerCurve
	layerMarker
	layerMarkerActive
	layerLabel
)

// Braille dot (column, row) to bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type cell struct {
	pattern uint8
	layer   layer
	text    rune
}

// canvas is a grid of braille cells addressed in dots: each cell is two
// dots wide and four dots high.
type canvas struct {
	cols, rows int
	cells      []cell
}

func newCanvas(cols, rows int) *canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	return &canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

func (c *canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// set turns on the dot at (x, y). Cells holding text are left alone.
func (c *canvas) set(x, y int, l layer) {
	if x < 0 || y < 0 {
		return
	}
	cl := c.at(x/2, y/4)
	if cl == nil || cl.text != 0 {
		return
	}
	cl.pattern |= 1 << brailleBits[x%2][y%4]
	if l > cl.layer {
		cl.layer = l
	}
}

// line draws from (x0, y0) to (x1, y1), lighting every step-th dot.
func (c *canvas) line(x0, y0, x1, y1 int, l layer, step int) {
	step = max(step, 1)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for i := 0; ; i++ {
		if i%step == 0 {
			c.set(x0, y0, l)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// disk lights all dots within r of (cx, cy).
func (c *canvas) disk(cx, cy int, r float64, l layer) {
	ir := int(r)
	for y := -ir; y <= ir; y++ {
		for x := -ir; x <= ir; x++ {
			if float64(x*x+y*y) <= r*r {
				c.set(cx+x, cy+y, l)
			}
		}
	}
}

// text writes s starting at cell (col, row). It refuses to run off the
// canvas or to touch earlier text, keeping at least one blank cell between
// words, and reports whether s was placed.
func (c *canvas) text(col, row int, s string) bool {
	n := utf8.RuneCountInString(s)
	if row < 0 || row >= c.rows || col < 0 || col+n > c.cols {
		return false
	}
	for i := -1; i <= n; i++ {
		if cl := c.at(col+i, row); cl != nil && cl.text != 0 {
			return false
		}
	}
	i := 0
	for _, r := range s {
		cl := c.at(col+i, row)
		cl.text = r
		cl.layer = layerLabel
		i++
	}
	return true
}

// lines renders each row, grouping runs of equal layer so each run is
// styled once.
func (c *canvas) lines(style func(layer, string) string) []string {
	out := make([]string, c.rows)
	var row, run strings.Builder
	for r := range c.rows {
		row.Reset()
		run.Reset()
		current := layerNone
		for col := range c.cols {
			cl := c.at(col, r)
			if cl.layer != current && run.Len() > 0 {
				row.WriteString(style(current, run.String()))
				run.Reset()
			}
			current = cl.layer
			if cl.text != 0 {
				run.WriteRune(cl.text)
			} else {
				run.WriteRune(rune(0x2800 + int(cl.pattern)))
			}
		}
		if run.Len() > 0 {
			row.WriteString(style(current, run.String()))
		}
		out[r] = row.String()
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
