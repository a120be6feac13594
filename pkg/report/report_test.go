package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/inkwell-reports/inkwell/pkg/config"
	"github.com/inkwell-reports/inkwell/pkg/employee"
	"github.com/inkwell-reports/inkwell/pkg/errors"
	"github.com/inkwell-reports/inkwell/pkg/layout"
)

func testAssembler(t *testing.T) *Assembler {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Directory = t.TempDir()
	cfg.Output.Compress = false // keep content streams readable for assertions

	a := NewAssembler(cfg)
	a.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	a.runID = func() string { return "11111111-2222-3333-4444-555555555555" }
	return a
}

// The default configuration's colors must reproduce the built-in layout
// style exactly; a drifting default would silently restyle shipped reports.
func TestDefaultConfigReproducesBuiltinStyle(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Directory = t.TempDir()

	a := NewAssembler(cfg)
	if a.style != layout.DefaultStyle() {
		t.Errorf("assembler style from default config = %+v, want %+v", a.style, layout.DefaultStyle())
	}
}

func readReport(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated report: %v", err)
	}
	return string(data)
}

func TestEmployeeReport(t *testing.T) {
	a := testAssembler(t)
	path, err := a.EmployeeReport(employee.SampleEmployees())
	if err != nil {
		t.Fatalf("EmployeeReport failed: %v", err)
	}

	if got := filepath.Base(path); got != "Employee_Report_2026-03-14_09-26-53.pdf" {
		t.Errorf("filename = %q", got)
	}

	content := readReport(t, path)
	if !strings.HasPrefix(content, "%PDF-1.4\n") {
		t.Error("report is not a PDF 1.4 file")
	}
	for _, want := range []string{
		"(Employee Report) Tj",
		"(Generated on: 2026-03-14 09:26:53) Tj",
		"(Total Employees: 10) Tj",
		"(Summary Statistics) Tj",
		"(Average Salary: $67,500.00) Tj",
		"(Salary Range: $52,000 - $85,000) Tj",
		"(Departments: 5) Tj",
		"(Latest Hire: 2023-04-18) Tj",
		"(John Smith) Tj",
		"($75,000) Tj",
		"(2022-03-15) Tj",
		"/Title (Employee Report)",
		"run:11111111-2222-3333-4444-555555555555",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestEmployeeReportTruncatesLongCells(t *testing.T) {
	a := testAssembler(t)
	emps := []employee.Employee{{
		ID: 3001, FirstName: "Priya", LastName: "Sharma",
		Department: "Engineering", Position: "Software Engineering Department Lead",
		Salary: 95000, HireDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}}

	path, err := a.EmployeeReport(emps)
	if err != nil {
		t.Fatalf("EmployeeReport failed: %v", err)
	}

	// Position column is 110pt wide: a 15 character budget.
	content := readReport(t, path)
	if !strings.Contains(content, "(Software Eng...) Tj") {
		t.Error("long position cell was not truncated to its budget")
	}
	if strings.Contains(content, "(Software Engineering Department Lead) Tj") {
		t.Error("untruncated position cell leaked into the report")
	}
}

func TestDepartmentReport(t *testing.T) {
	a := testAssembler(t)
	roster := employee.NewRoster()
	emps := roster.ByDepartment("Engineering")

	path, err := a.DepartmentReport(emps, "Engineering")
	if err != nil {
		t.Fatalf("DepartmentReport failed: %v", err)
	}
	if got := filepath.Base(path); got != "Department_Report_Engineering_2026-03-14_09-26-53.pdf" {
		t.Errorf("filename = %q", got)
	}

	content := readReport(t, path)
	for _, want := range []string{
		"(Engineering Department Report) Tj",
		"(Total Employees: 3) Tj",
		"(Department Statistics) Tj",
		"(Department: Engineering) Tj",
		"(Employee Count: 3) Tj",
		"(Unique Positions: 3) Tj",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(content, "(Sarah Johnson) Tj") {
		t.Error("report contains a record from another department")
	}
}

func TestDepartmentReportFilenameUnderscoresSpaces(t *testing.T) {
	a := testAssembler(t)
	emps := []employee.Employee{{
		ID: 4001, FirstName: "Ade", LastName: "Okafor",
		Department: "Customer  Success Ops", Position: "Lead",
		Salary: 60000, HireDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}}

	path, err := a.DepartmentReport(emps, "Customer  Success Ops")
	if err != nil {
		t.Fatalf("DepartmentReport failed: %v", err)
	}
	if got := filepath.Base(path); got != "Department_Report_Customer_Success_Ops_2026-03-14_09-26-53.pdf" {
		t.Errorf("filename = %q, whitespace runs should collapse to single underscores", got)
	}
}

func TestSalaryReport(t *testing.T) {
	a := testAssembler(t)
	path, err := a.SalaryReport(employee.SampleEmployees())
	if err != nil {
		t.Fatalf("SalaryReport failed: %v", err)
	}
	if got := filepath.Base(path); got != "Salary_Analysis_2026-03-14_09-26-53.pdf" {
		t.Errorf("filename = %q", got)
	}

	content := readReport(t, path)
	for _, want := range []string{
		"(Salary Analysis Report) Tj",
		"(Salary Analysis) Tj",
		"(Above Average: 6 employees) Tj",
		"(Below Average: 4 employees) Tj",
		"(Highest Paid: David Wilson) Tj",
		"(Above Average Earners) Tj",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// The table lists only above-average earners, highest salary first.
	if strings.Contains(content, "(Jennifer Taylor) Tj") {
		t.Error("below-average earner leaked into the table")
	}
	wilson := strings.Index(content, "(David Wilson) Tj")
	garcia := strings.Index(content, "(Robert Garcia) Tj")
	if wilson == -1 || garcia == -1 || wilson > garcia {
		t.Error("above-average earners are not ordered by salary descending")
	}
}

func TestEmptyRosterRejected(t *testing.T) {
	a := testAssembler(t)

	if _, err := a.EmployeeReport(nil); !errors.IsCode(err, errors.CodeEmptyRoster) {
		t.Errorf("EmployeeReport(nil) err = %v, want %s", err, errors.CodeEmptyRoster)
	}
	if _, err := a.DepartmentReport(nil, "Shipping"); !errors.IsCode(err, errors.CodeEmptyRoster) {
		t.Errorf("DepartmentReport(nil) err = %v, want %s", err, errors.CodeEmptyRoster)
	}
	if _, err := a.SalaryReport(nil); !errors.IsCode(err, errors.CodeEmptyRoster) {
		t.Errorf("SalaryReport(nil) err = %v, want %s", err, errors.CodeEmptyRoster)
	}
}

func TestManyRecordsPaginate(t *testing.T) {
	a := testAssembler(t)

	var emps []employee.Employee
	base := employee.SampleEmployees()
	for i := 0; i < 60; i++ {
		e := base[i%len(base)]
		e.ID = 5000 + i
		emps = append(emps, e)
	}

	path, err := a.EmployeeReport(emps)
	if err != nil {
		t.Fatalf("EmployeeReport failed: %v", err)
	}

	content := readReport(t, path)
	if !strings.Contains(content, "/Count 3") {
		t.Errorf("60 records under an A4 preamble should span 3 pages")
	}
	// Header labels repeat on every page.
	if got := strings.Count(content, "(Hire Date) Tj"); got != 3 {
		t.Errorf("header band drawn %d times, want once per page", got)
	}
}
