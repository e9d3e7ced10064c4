package ui

import (
	"fmt"

	"github.com/vireo-ui/vireo/geom"
)

// Grid places its children row-major into cells: child i lands in row
// i/columns, column i%columns. The column count is either fixed or, with a
// fixed cell width, derived from the container width each layout pass.
// Cell dimensions are fixed per axis or derived per column/row: a derived
// column is as wide as its widest occupant, a derived row as tall as its
// tallest.
type Grid struct {
	Container

	columns  int // 0 means derive from width / cell width
	spacingX float64
	spacingY float64
	cellSize geom.Size // zero axis means derive per column/row
	align    Align
}

// GridOptions configures a Grid.
type GridOptions struct {
	ContainerOptions

	// Columns fixes the column count. Zero derives it from the container's
	// content width and CellSize.Width; that requires a positive cell width.
	Columns int

	// SpacingX and SpacingY are the gaps between adjacent columns and rows.
	SpacingX float64
	SpacingY float64

	// CellSize fixes cell dimensions per axis; a zero axis derives that
	// dimension per column (widest occupant) and per row (tallest).
	CellSize geom.Size

	// Align positions children inside their cells on both axes.
	Align Align
}

// NewGrid builds a row-major grid container.
func NewGrid(opts GridOptions) (*Grid, error) {
	if opts.Columns < 0 {
		return nil, fmt.Errorf("grid: columns must not be negative, got %d", opts.Columns)
	}
	if opts.Columns == 0 && opts.CellSize.Width <= 0 {
		return nil, fmt.Errorf("grid: deriving columns requires a fixed cell width")
	}
	g := &Grid{
		columns:  opts.Columns,
		spacingX: opts.SpacingX,
		spacingY: opts.SpacingY,
		cellSize: opts.CellSize,
		align:    opts.Align,
	}
	g.initContainer(g, opts.ContainerOptions, g.layoutChildren)
	return g, nil
}

// Columns returns the fixed column count, 0 when derived from the width.
func (g *Grid) Columns() int { return g.columns }

// SetColumns replaces the column count. Negative values are ignored, and
// so is zero when no fixed cell width exists to derive the count from —
// the same configuration the constructor rejects.
func (g *Grid) SetColumns(n int) {
	if n < 0 || n == g.columns {
		return
	}
	if n == 0 && g.cellSize.Width <= 0 {
		return
	}
	g.columns = n
	g.invalidateLayout()
}

// SetSpacing replaces both cell gaps and invalidates layout.
func (g *Grid) SetSpacing(x, y float64) {
	if g.spacingX != x || g.spacingY != y {
		g.spacingX, g.spacingY = x, y
		g.invalidateLayout()
	}
}

// effectiveColumns resolves the column count for this layout pass.
func (g *Grid) effectiveColumns() int {
	if g.columns > 0 {
		return g.columns
	}
	if g.cellSize.Width <= 0 {
		return 1
	}
	avail := g.ContentRect().Width
	n := int((avail + g.spacingX) / (g.cellSize.Width + g.spacingX))
	if n < 1 {
		n = 1
	}
	return n
}

// cellMetrics resolves per-column widths and per-row heights for the
// current children. A fixed cell dimension applies uniformly to its axis;
// a zero one is derived from the largest child occupying each column/row.
func (g *Grid) cellMetrics() (colWidths, rowHeights []float64, cols int) {
	cols = g.effectiveColumns()
	rows := (len(g.children) + cols - 1) / cols
	if rows < 1 {
		rows = 1
	}
	colWidths = make([]float64, cols)
	rowHeights = make([]float64, rows)
	for i := range colWidths {
		colWidths[i] = g.cellSize.Width
	}
	for i := range rowHeights {
		rowHeights[i] = g.cellSize.Height
	}
	if g.cellSize.Width > 0 && g.cellSize.Height > 0 {
		return colWidths, rowHeights, cols
	}
	for i, ch := range g.children {
		r := ch.AsBase().Rect()
		col, row := i%cols, i/cols
		if g.cellSize.Width <= 0 && r.Width > colWidths[col] {
			colWidths[col] = r.Width
		}
		if g.cellSize.Height <= 0 && r.Height > rowHeights[row] {
			rowHeights[row] = r.Height
		}
	}
	return colWidths, rowHeights, cols
}

// CellAt returns the cell rect, in local coordinates, for child index i.
func (g *Grid) CellAt(i int) geom.Rect {
	g.ensureLayout()
	colWidths, rowHeights, cols := g.cellMetrics()
	row, col := i/cols, i%cols
	inner := g.ContentRect()
	x := inner.X
	for c := 0; c < col; c++ {
		x += colWidths[c] + g.spacingX
	}
	y := inner.Y
	for r := 0; r < row; r++ {
		y += rowHeights[r] + g.spacingY
	}
	return geom.NewRect(x, y, colWidths[col], rowHeights[row])
}

func (g *Grid) layoutChildren() {
	colWidths, rowHeights, cols := g.cellMetrics()
	n := len(g.children)

	if g.autoSize && n > 0 {
		used := cols
		if n < used {
			used = n
		}
		w := 2 * g.padding
		for c := 0; c < used; c++ {
			w += colWidths[c]
		}
		w += float64(used-1) * g.spacingX
		h := 2 * g.padding
		for r := range rowHeights {
			h += rowHeights[r]
		}
		h += float64(len(rowHeights)-1) * g.spacingY
		g.rect.Width, g.rect.Height = w, h
	}

	inner := g.ContentRect()
	i := 0
	cellY := inner.Y
	for row := 0; i < n; row++ {
		cellX := inner.X
		for col := 0; col < cols && i < n; col++ {
			cell := geom.NewRect(cellX, cellY, colWidths[col], rowHeights[row])
			ch := g.children[i]
			cb := ch.AsBase()
			r := cb.Rect()
			w, h := r.Width, r.Height
			x, y := cell.X, cell.Y
			switch g.align {
			case AlignCenter:
				x = cell.X + (cell.Width-w)/2
				y = cell.Y + (cell.Height-h)/2
			case AlignEnd:
				x = cell.Right() - w
				y = cell.Bottom() - h
			case AlignStretch:
				w, h = cell.Width, cell.Height
			}
			if w != r.Width || h != r.Height {
				if rl, ok := ch.(relayouter); ok {
					rl.markLayoutDirty()
				}
			}
			cb.rect = geom.NewRect(x, y, w, h)
			cellX += colWidths[col] + g.spacingX
			i++
		}
		cellY += rowHeights[row] + g.spacingY
	}
}
