// Package layout implements the table layout and pagination engine.
//
// The engine takes an ordered column specification and an ordered record
// sequence and produces per-page batches of backend-agnostic draw commands:
// a bordered, striped table with a repeated header band, paginating whenever
// vertical space runs out. It performs no I/O; a rendering adapter translates
// the commands to an output backend.
package layout

import (
	"strings"

	"github.com/inkwell-reports/inkwell/pkg/errors"
)

// Sentinel errors returned by LayoutTable. All are detected before any draw
// command is emitted; matching is by code via errors.Is.
var (
	// ErrRowShapeMismatch indicates a record whose cell count differs from the
	// column count.
	ErrRowShapeMismatch = errors.ValidationError(errors.CodeRowShapeMismatch, "record cell count does not match column count")

	// ErrInvalidColumnSpec indicates an empty column list, a non-positive
	// column width, or a width sum exceeding the printable page width.
	ErrInvalidColumnSpec = errors.ValidationError(errors.CodeInvalidColumnSpec, "invalid column specification")

	// ErrInvalidPageGeometry indicates a page that cannot hold a header band
	// and at least one row between its margins.
	ErrInvalidPageGeometry = errors.LayoutError(errors.CodeInvalidPageGeometry, "page geometry cannot hold a header and one row")
)

// Ellipsis is the marker appended when a cell's text exceeds its column's
// character budget.
const Ellipsis = "..."

// ColumnSpec describes one table column: its header label and width in
// points. The character budget is derived from the width via Geometry.
type ColumnSpec struct {
	Header string
	Width  float64
}

// TotalWidth returns the sum of all column widths. This is the table width
// used for every band fill and for the closing border pass.
func TotalWidth(cols []ColumnSpec) float64 {
	var total float64
	for _, c := range cols {
		total += c.Width
	}
	return total
}

// Cursor is the explicit layout position threaded through layout calls:
// a zero-based page index and a vertical position on that page. Callers pass
// a cursor in and receive the advanced cursor back; the engine keeps no
// position state between calls.
type Cursor struct {
	Page int
	Y    float64
}

// Result is the outcome of one table layout call.
type Result struct {
	// Pages holds one draw-command batch per page touched by the table,
	// in page order. The page index of Pages[0] is Cursor.Page-(PagesUsed-1);
	// it differs from the input cursor's page when the table did not fit
	// below it and started on the next page.
	Pages [][]Command

	// Cursor is the advanced layout position after the table.
	Cursor Cursor

	// PagesUsed is the number of pages the table occupied.
	PagesUsed int
}

// Engine lays out record sequences as paginated tables. An Engine is
// stateless across calls and safe to reuse for any number of tables.
type Engine struct {
	geom  Geometry
	style Style
}

// NewEngine creates a layout engine with the given geometry and style.
func NewEngine(geom Geometry, style Style) *Engine {
	return &Engine{geom: geom, style: style}
}

// Geometry returns the engine's geometry.
func (e *Engine) Geometry() Geometry {
	return e.geom
}

// LayoutTable lays out rows under the given columns starting at cur.
//
// Validation happens before any command is emitted: on error the result is
// nil and no partial output exists. Pagination is content-driven; whenever
// the remaining space above the bottom margin is less than one row height
// plus the break slack, the current page's table region is closed with its
// borders and the header band is redrawn at the top of the next page.
// Row striping is per page: the first row on every page is unstriped.
//
// Borders are emitted per page, spanning exactly the table region drawn on
// that page, so a table split across a page break is fully bordered on every
// page it touches.
func (e *Engine) LayoutTable(cols []ColumnSpec, rows [][]string, cur Cursor) (*Result, error) {
	if err := e.validate(cols, rows); err != nil {
		return nil, err
	}

	g := e.geom
	tableWidth := TotalWidth(cols)
	startX := g.Margin

	res := &Result{}
	page := make([]Command, 0, 8+len(rows)*(len(cols)+2))

	// If the header band plus one row cannot fit above the bottom margin,
	// the table starts on a fresh page instead of overflowing. The first
	// batch then belongs to the next page index.
	y := cur.Y
	pageIdx := cur.Page
	if y-g.HeaderHeight-g.Margin < g.RowHeight+g.BreakSlack {
		pageIdx++
		y = g.TopY()
	}

	tableTop := y // top of the table region on the current page

	e.emitHeader(&page, cols, startX, y, tableWidth)
	y -= g.HeaderHeight

	rowOnPage := 0
	for _, row := range rows {
		if y-g.Margin < g.RowHeight+g.BreakSlack {
			// Close out this page: border the region drawn so far.
			e.emitBorders(&page, cols, startX, tableTop, y, tableWidth)
			res.Pages = append(res.Pages, page)

			page = make([]Command, 0, 8+len(cols)+2)
			pageIdx++
			y = g.TopY()
			tableTop = y
			rowOnPage = 0

			e.emitHeader(&page, cols, startX, y, tableWidth)
			y -= g.HeaderHeight
		}

		e.emitRow(&page, cols, row, startX, y, tableWidth, rowOnPage)
		y -= g.RowHeight
		rowOnPage++
	}

	e.emitBorders(&page, cols, startX, tableTop, y, tableWidth)
	res.Pages = append(res.Pages, page)

	res.Cursor = Cursor{Page: pageIdx, Y: y}
	res.PagesUsed = len(res.Pages)
	return res, nil
}

// validate checks column specs, page geometry, and row shapes.
// All failures are reported before any command exists.
func (e *Engine) validate(cols []ColumnSpec, rows [][]string) error {
	g := e.geom

	if g.PageHeight <= 0 || g.PageHeight-2*g.Margin < g.HeaderHeight+g.RowHeight {
		return errors.LayoutErrorf(errors.CodeInvalidPageGeometry,
			"page height %.2f with margin %.2f cannot hold a %.2f header and a %.2f row",
			g.PageHeight, g.Margin, g.HeaderHeight, g.RowHeight)
	}

	if len(cols) == 0 {
		return errors.ValidationError(errors.CodeInvalidColumnSpec, "column list is empty")
	}
	for i, c := range cols {
		if c.Width <= 0 {
			return errors.ValidationErrorf(errors.CodeInvalidColumnSpec,
				"column %d (%q) has non-positive width %.2f", i, c.Header, c.Width)
		}
	}
	if total := TotalWidth(cols); total > g.PrintableWidth() {
		return errors.ValidationErrorf(errors.CodeInvalidColumnSpec,
			"column widths sum to %.2f, exceeding printable width %.2f", total, g.PrintableWidth())
	}

	for i, row := range rows {
		if len(row) != len(cols) {
			return errors.ValidationErrorf(errors.CodeRowShapeMismatch,
				"record %d has %d cells, want %d", i, len(row), len(cols))
		}
	}
	return nil
}

// emitHeader emits the header band: filled background, bold per-column
// labels, and the heavy bottom rule.
func (e *Engine) emitHeader(page *[]Command, cols []ColumnSpec, startX, y, tableWidth float64) {
	g, s := e.geom, e.style

	*page = append(*page, FillRect{
		X:      startX,
		Y:      y - g.HeaderHeight,
		Width:  tableWidth,
		Height: g.HeaderHeight,
		Color:  s.HeaderFill,
	})

	x := startX
	for _, c := range cols {
		*page = append(*page, Text{
			X:     x + g.CellPadding,
			Y:     y - s.HeaderBaseline,
			Value: e.fit(c.Header, c.Width),
			Size:  s.HeaderFontSize,
			Bold:  true,
			Color: s.HeaderText,
		})
		x += c.Width
	}

	*page = append(*page, StrokeLine{
		X1: startX, Y1: y - g.HeaderHeight,
		X2: startX + tableWidth, Y2: y - g.HeaderHeight,
		Width: s.RuleWidth,
		Color: s.HeaderRule,
	})
}

// emitRow emits one row band: the stripe fill for odd rows, the cell texts,
// and the thin divider underneath.
func (e *Engine) emitRow(page *[]Command, cols []ColumnSpec, row []string, startX, y, tableWidth float64, rowOnPage int) {
	g, s := e.geom, e.style

	if rowOnPage%2 == 1 {
		*page = append(*page, FillRect{
			X:      startX,
			Y:      y - g.RowHeight,
			Width:  tableWidth,
			Height: g.RowHeight,
			Color:  s.StripeFill,
		})
	}

	x := startX
	for i, c := range cols {
		*page = append(*page, Text{
			X:     x + g.CellPadding,
			Y:     y - s.RowBaseline,
			Value: e.fit(row[i], c.Width),
			Size:  s.RowFontSize,
			Color: s.RowText,
		})
		x += c.Width
	}

	*page = append(*page, StrokeLine{
		X1: startX, Y1: y - g.RowHeight,
		X2: startX + tableWidth, Y2: y - g.RowHeight,
		Width: s.DividerWidth,
		Color: s.Divider,
	})
}

// emitBorders closes a page's table region: the four boundary borders plus an
// interior vertical separator at each column boundary, spanning from the
// region's top to its bottom on this page.
func (e *Engine) emitBorders(page *[]Command, cols []ColumnSpec, startX, top, bottom, tableWidth float64) {
	s := e.style

	lines := []StrokeLine{
		{X1: startX, Y1: top, X2: startX + tableWidth, Y2: top},       // top
		{X1: startX, Y1: bottom, X2: startX + tableWidth, Y2: bottom}, // bottom
		{X1: startX, Y1: top, X2: startX, Y2: bottom},                 // left
		{X1: startX + tableWidth, Y1: top, X2: startX + tableWidth, Y2: bottom}, // right
	}
	for _, l := range lines {
		l.Width = s.BorderWidth
		l.Color = s.Border
		*page = append(*page, l)
	}

	x := startX
	for i := 0; i < len(cols)-1; i++ {
		x += cols[i].Width
		*page = append(*page, StrokeLine{
			X1: x, Y1: top, X2: x, Y2: bottom,
			Width: s.SeparatorWidth,
			Color: s.Separator,
		})
	}
}

// fit truncates text that exceeds the column's character budget, replacing
// the tail with the ellipsis marker. Truncation is silent lossy formatting,
// never an error.
func (e *Engine) fit(text string, columnWidth float64) string {
	budget := e.geom.MaxChars(columnWidth)
	return Truncate(text, budget)
}

// Truncate applies the cell truncation rule: text at or under budget is
// returned verbatim; longer text keeps its first budget-3 characters followed
// by the 3-character ellipsis marker. Degenerate budgets narrower than the
// marker itself simply cut the text at the budget.
func Truncate(text string, budget int) string {
	if budget < 0 {
		budget = 0
	}
	if len(text) <= budget {
		return text
	}
	if budget <= len(Ellipsis) {
		return text[:budget]
	}
	var b strings.Builder
	b.WriteString(text[:budget-len(Ellipsis)])
	b.WriteString(Ellipsis)
	return b.String()
}
