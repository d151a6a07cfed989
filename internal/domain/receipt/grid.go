package receipt

import "fmt"

// Cell is a placement request on the virtual grid. Col and Row are
// 1-based; zero spans default to 1. Bold selects the header font.
type Cell struct {
	Col     int
	Row     int
	ColSpan int
	RowSpan int
	Text    string
	Bold    bool
}

// Page describes the physical page the grid is laid over. Width and
// Height are the full page dimensions; margins shrink the printable
// area symmetrically.
type Page struct {
	Width      float64
	Height     float64
	MarginLeft float64
	MarginTop  float64
}

// Rect is an absolute rectangle in page units.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Grid divides a page's printable area into virtual rows and columns.
type Grid struct {
	Rows int
	Cols int
}

// DefaultGrid matches the payslip form layout.
var DefaultGrid = Grid{Rows: 25, Cols: 6}

// LayoutError reports a cell that does not fit the grid.
type LayoutError struct {
	Cell   Cell
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("cell at col %d row %d: %s", e.Cell.Col, e.Cell.Row, e.Reason)
}

// Place resolves a cell to an absolute rectangle by linear
// interpolation over the printable area. Coordinates below 1 or spans
// overflowing the grid fail with a *LayoutError.
func (g Grid) Place(cell Cell, page Page) (Rect, error) {
	colSpan := cell.ColSpan
	if colSpan == 0 {
		colSpan = 1
	}
	rowSpan := cell.RowSpan
	if rowSpan == 0 {
		rowSpan = 1
	}

	switch {
	case cell.Col < 1 || cell.Row < 1:
		return Rect{}, &LayoutError{Cell: cell, Reason: "column and row must be positive"}
	case colSpan < 1 || rowSpan < 1:
		return Rect{}, &LayoutError{Cell: cell, Reason: "spans must be positive"}
	case cell.Col+colSpan-1 > g.Cols:
		return Rect{}, &LayoutError{Cell: cell, Reason: fmt.Sprintf("column span overflows %d-column grid", g.Cols)}
	case cell.Row+rowSpan-1 > g.Rows:
		return Rect{}, &LayoutError{Cell: cell, Reason: fmt.Sprintf("row span overflows %d-row grid", g.Rows)}
	}

	colWidth := (page.Width - 2*page.MarginLeft) / float64(g.Cols)
	rowHeight := (page.Height - 2*page.MarginTop) / float64(g.Rows)

	return Rect{
		X: page.MarginLeft + float64(cell.Col-1)*colWidth,
		Y: page.MarginTop + float64(cell.Row-1)*rowHeight,
		W: colWidth * float64(colSpan),
		H: rowHeight * float64(rowSpan),
	}, nil
}
