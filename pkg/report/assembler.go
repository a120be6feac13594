// Package report assembles employee PDF reports: a title block, a
// statistics section, and a paginated record table, rendered through the
// layout engine and written as timestamped files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-reports/inkwell/pkg/config"
	"github.com/inkwell-reports/inkwell/pkg/employee"
	"github.com/inkwell-reports/inkwell/pkg/errors"
	"github.com/inkwell-reports/inkwell/pkg/layout"
	"github.com/inkwell-reports/inkwell/pkg/pdf"
)

// timestampLayout names output files down to the second.
const timestampLayout = "2006-01-02_15-04-05"

// generatedOnLayout is the human-readable stamp in the title block.
const generatedOnLayout = "2006-01-02 15:04:05"

// breakSlack is the extra clearance above the bottom margin required before
// placing another row.
const breakSlack = 25

// Title block spacing and sizes, in points.
const (
	titleFontSize    = 22
	subtitleFontSize = 12
	headingFontSize  = 16
	statFontSize     = 11

	titleGap    = 30
	subtitleGap = 18
	sectionGap  = 40
	headingGap  = 25
	statGap     = 16
	ruleGap     = 15
	tableGap    = 30

	separatorRuleWidth = 3
)

var subtitleColor = layout.RGB(100, 100, 100)

var whitespaceRun = regexp.MustCompile(`\s+`)

// tableColumns returns the six-column employee table specification.
func tableColumns() []layout.ColumnSpec {
	return []layout.ColumnSpec{
		{Header: "ID", Width: 50},
		{Header: "Name", Width: 90},
		{Header: "Department", Width: 80},
		{Header: "Position", Width: 110},
		{Header: "Salary", Width: 70},
		{Header: "Hire Date", Width: 80},
	}
}

// tableRows converts records to table cell values in roster order.
func tableRows(emps []employee.Employee) [][]string {
	rows := make([][]string, len(emps))
	for i, e := range emps {
		rows[i] = []string{
			strconv.Itoa(e.ID),
			e.FullName(),
			e.Department,
			e.Position,
			Money(e.Salary),
			e.HireDate.Format(employee.HireDateLayout),
		}
	}
	return rows
}

// Assembler generates PDF reports under one configuration. It is stateless
// across calls; every report gets a fresh document stamped with the
// assembler's run ID.
type Assembler struct {
	cfg    *config.Config
	engine *layout.Engine
	style  layout.Style
	geom   layout.Geometry
	size   pdf.PageSize

	// now and runID are stubbed in tests.
	now   func() time.Time
	runID func() string
}

// NewAssembler builds an assembler from the configuration. The configuration
// is assumed validated.
func NewAssembler(cfg *config.Config) *Assembler {
	size := pdf.SizeByName(cfg.Page.Size)
	geom := layout.Geometry{
		PageWidth:    size.Width,
		PageHeight:   size.Height,
		Margin:       cfg.Page.Margin,
		HeaderHeight: cfg.Table.HeaderHeight,
		RowHeight:    cfg.Table.RowHeight,
		CellPadding:  cfg.Table.CellPadding,
		CharWidth:    cfg.Table.CharWidth,
		BreakSlack:   breakSlack,
	}

	style := layout.DefaultStyle()
	style.HeaderFill = layout.Hex(cfg.Style.HeaderFill)
	style.HeaderText = layout.Hex(cfg.Style.HeaderText)
	style.HeaderRule = layout.Hex(cfg.Style.HeaderRule)
	style.StripeFill = layout.Hex(cfg.Style.Stripe)
	style.RowText = layout.Hex(cfg.Style.RowText)
	style.Divider = layout.Hex(cfg.Style.Divider)
	style.Border = layout.Hex(cfg.Style.Border)
	style.Separator = layout.Hex(cfg.Style.Separator)

	id := uuid.NewString()
	return &Assembler{
		cfg:    cfg,
		engine: layout.NewEngine(geom, style),
		style:  style,
		geom:   geom,
		size:   size,
		now:    time.Now,
		runID:  func() string { return id },
	}
}

// RunID returns the identifier stamped into every document this assembler
// generates.
func (a *Assembler) RunID() string {
	return a.runID()
}

// EmployeeReport generates the complete employee report and returns the
// written file path.
func (a *Assembler) EmployeeReport(emps []employee.Employee) (string, error) {
	if len(emps) == 0 {
		return "", errors.DataError(errors.CodeEmptyRoster, "no employee records to report on")
	}

	filename := fmt.Sprintf("Employee_Report_%s.pdf", a.now().Format(timestampLayout))
	return a.generate(reportSpec{
		title:    "Employee Report",
		subject:  "Complete employee roster",
		filename: filename,
		count:    len(emps),
		heading:  "Summary Statistics",
		stats:    summaryStats(emps),
		records:  emps,
	})
}

// DepartmentReport generates a report scoped to one department. The passed
// records are expected to already be filtered to that department.
func (a *Assembler) DepartmentReport(emps []employee.Employee, department string) (string, error) {
	if len(emps) == 0 {
		return "", errors.DataError(errors.CodeEmptyRoster, "no employee records to report on").
			WithContext("department", department)
	}

	filename := fmt.Sprintf("Department_Report_%s_%s.pdf",
		whitespaceRun.ReplaceAllString(department, "_"),
		a.now().Format(timestampLayout))
	return a.generate(reportSpec{
		title:    department + " Department Report",
		subject:  "Department roster: " + department,
		filename: filename,
		count:    len(emps),
		heading:  "Department Statistics",
		stats:    departmentStats(emps, department),
		records:  emps,
	})
}

// SalaryReport generates the salary analysis report. Its table lists only
// the above-average earners, highest salary first.
func (a *Assembler) SalaryReport(emps []employee.Employee) (string, error) {
	if len(emps) == 0 {
		return "", errors.DataError(errors.CodeEmptyRoster, "no employee records to report on")
	}

	filename := fmt.Sprintf("Salary_Analysis_%s.pdf", a.now().Format(timestampLayout))
	return a.generate(reportSpec{
		title:        "Salary Analysis Report",
		subject:      "Salary distribution and above-average earners",
		filename:     filename,
		count:        len(emps),
		heading:      "Salary Analysis",
		stats:        salaryStats(emps),
		tableHeading: "Above Average Earners",
		records:      aboveAverageEarners(emps),
	})
}

// reportSpec carries everything generate needs for one report.
type reportSpec struct {
	title    string
	subject  string
	filename string

	// count is the roster size shown in the title block; it can differ
	// from len(records) when the table is a subset.
	count int

	heading string
	stats   []string

	// tableHeading, when set, is an extra heading directly above the table.
	tableHeading string

	records []employee.Employee
}

// generate lays out the report and writes the PDF file, returning its path.
func (a *Assembler) generate(spec reportSpec) (string, error) {
	preamble, y := a.preamble(spec)

	res, err := a.engine.LayoutTable(tableColumns(), tableRows(spec.records), layout.Cursor{Page: 0, Y: y})
	if err != nil {
		return "", err
	}

	// The first table batch shares the preamble's page unless the preamble
	// left too little room and the table pre-broke to a fresh page.
	firstTablePage := res.Cursor.Page - (res.PagesUsed - 1)
	var pages [][]layout.Command
	if firstTablePage == 0 {
		pages = append(pages, append(preamble, res.Pages[0]...))
		pages = append(pages, res.Pages[1:]...)
	} else {
		pages = append(pages, preamble)
		pages = append(pages, res.Pages...)
	}

	doc := pdf.NewDocument(a.size, a.cfg.Output.Compress)
	doc.SetMetadata(pdf.Metadata{
		Title:    spec.title,
		Author:   a.cfg.Output.Author,
		Subject:  spec.subject,
		Keywords: []string{"employee report", "run:" + a.runID()},
		Creator:  "Inkwell",
	})
	for _, page := range pages {
		doc.AddPage(pdf.RenderPage(page))
	}

	if err := os.MkdirAll(a.cfg.Output.Directory, 0755); err != nil {
		return "", errors.WrapIO(err, errors.CodeOutputDir, "cannot create output directory").
			WithContext("dir", a.cfg.Output.Directory)
	}
	path := filepath.Join(a.cfg.Output.Directory, spec.filename)
	if err := os.WriteFile(path, doc.Bytes(), 0644); err != nil {
		return "", errors.WrapIO(err, errors.CodeReportWrite, "cannot write report file").
			WithContext("path", path)
	}
	return path, nil
}

// preamble emits the title block and statistics section onto the first page
// and returns the commands plus the vertical position left for the table.
func (a *Assembler) preamble(spec reportSpec) ([]layout.Command, float64) {
	g := a.geom
	accent := a.style.HeaderFill
	x := g.Margin
	y := g.TopY()

	var cmds []layout.Command

	cmds = append(cmds, layout.Text{
		X: x, Y: y, Value: spec.title,
		Size: titleFontSize, Bold: true, Color: accent,
	})
	y -= titleGap

	cmds = append(cmds, layout.Text{
		X: x, Y: y,
		Value: "Generated on: " + a.now().Format(generatedOnLayout),
		Size:  subtitleFontSize, Color: subtitleColor,
	})
	y -= subtitleGap

	cmds = append(cmds, layout.Text{
		X: x, Y: y,
		Value: fmt.Sprintf("Total Employees: %d", spec.count),
		Size:  subtitleFontSize, Color: subtitleColor,
	})
	y -= subtitleGap

	cmds = append(cmds, layout.StrokeLine{
		X1: x, Y1: y, X2: g.PageWidth - g.Margin, Y2: y,
		Width: separatorRuleWidth, Color: accent,
	})
	y -= ruleGap
	y -= sectionGap

	cmds = append(cmds, layout.Text{
		X: x, Y: y, Value: spec.heading,
		Size: headingFontSize, Bold: true, Color: accent,
	})
	y -= headingGap

	for _, line := range spec.stats {
		cmds = append(cmds, layout.Text{
			X: x, Y: y, Value: line,
			Size: statFontSize, Color: a.style.RowText,
		})
		y -= statGap
	}
	y -= sectionGap

	if spec.tableHeading != "" {
		cmds = append(cmds, layout.Text{
			X: x, Y: y, Value: spec.tableHeading,
			Size: headingFontSize, Bold: true, Color: a.style.RowText,
		})
		y -= tableGap
	}

	return cmds, y
}
