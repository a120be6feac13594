package layout

import "math"

// Geometry holds the page and table measurements, in points, that stay
// invariant for the lifetime of one render call.
type Geometry struct {
	// PageWidth and PageHeight are the page dimensions in points.
	PageWidth  float64
	PageHeight float64

	// Margin is the uniform page margin in points.
	Margin float64

	// HeaderHeight is the vertical extent of the header band.
	HeaderHeight float64

	// RowHeight is the vertical extent of one row band.
	RowHeight float64

	// CellPadding is the fixed left padding applied to cell text.
	CellPadding float64

	// CharWidth is the average character width used to derive each column's
	// character budget.
	CharWidth float64

	// BreakSlack is the extra vertical space, beyond one row height, that must
	// remain above the bottom margin before another row is placed.
	BreakSlack float64
}

// DefaultGeometry returns the standard report geometry: A4 pages with 50pt
// margins and the row metrics used by all built-in reports.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:    595.276, // A4
		PageHeight:   841.890,
		Margin:       50,
		HeaderHeight: 30,
		RowHeight:    25,
		CellPadding:  8,
		CharWidth:    6,
		BreakSlack:   25,
	}
}

// PrintableWidth returns the horizontal space available to a table.
func (g Geometry) PrintableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// TopY returns the vertical cursor position at the top of a fresh page.
func (g Geometry) TopY() float64 {
	return g.PageHeight - g.Margin
}

// MaxChars returns the character budget for a column of the given width.
func (g Geometry) MaxChars(columnWidth float64) int {
	return int(math.Floor((columnWidth - 2*g.CellPadding) / g.CharWidth))
}

// Style holds the colors, font sizes, and stroke weights applied by the
// layout engine. Like Geometry it is fixed for the lifetime of a render call.
type Style struct {
	HeaderFill Color // header band background
	HeaderText Color // header label text
	HeaderRule Color // heavy rule under the header band
	RowText    Color // body cell text
	StripeFill Color // alternating row background
	Divider    Color // thin rule under each row
	Border     Color // outer table borders
	Separator  Color // interior column separators

	HeaderFontSize float64
	RowFontSize    float64

	// HeaderBaseline and RowBaseline are baseline offsets measured down from
	// the top of the respective band.
	HeaderBaseline float64
	RowBaseline    float64

	BorderWidth    float64
	RuleWidth      float64
	DividerWidth   float64
	SeparatorWidth float64
}

// DefaultStyle returns the standard report styling: steel-blue header,
// light-grey striping, and the stroke weights used by all built-in reports.
func DefaultStyle() Style {
	return Style{
		HeaderFill: RGB(70, 130, 180),
		HeaderText: RGB(255, 255, 255),
		HeaderRule: RGB(50, 100, 150),
		RowText:    RGB(0, 0, 0),
		StripeFill: RGB(248, 248, 248),
		Divider:    RGB(220, 220, 220),
		Border:     RGB(70, 130, 180),
		Separator:  RGB(150, 150, 150),

		HeaderFontSize: 12,
		RowFontSize:    10,
		HeaderBaseline: 20,
		RowBaseline:    16,

		BorderWidth:    2,
		RuleWidth:      2,
		DividerWidth:   0.5,
		SeparatorWidth: 1,
	}
}
