package employee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwell-reports/inkwell/pkg/errors"
)

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "John", LastName: "Smith"}
	if got := e.FullName(); got != "John Smith" {
		t.Errorf("FullName() = %q, want %q", got, "John Smith")
	}
}

func TestSampleRoster(t *testing.T) {
	r := NewRoster()
	if r.Count() != 10 {
		t.Fatalf("sample roster has %d records, want 10", r.Count())
	}

	all := r.All()
	if all[0].ID != 1001 || all[9].ID != 1010 {
		t.Errorf("sample records out of order: first=%d last=%d", all[0].ID, all[9].ID)
	}

	// All() hands out a copy, not the backing slice.
	all[0].FirstName = "mutated"
	if r.All()[0].FirstName != "John" {
		t.Error("mutating All() result changed the roster")
	}
}

func TestByDepartmentCaseInsensitive(t *testing.T) {
	r := NewRoster()

	eng := r.ByDepartment("Engineering")
	if len(eng) != 3 {
		t.Fatalf("got %d Engineering records, want 3", len(eng))
	}
	if eng[0].ID != 1001 || eng[1].ID != 1005 || eng[2].ID != 1007 {
		t.Errorf("Engineering records out of roster order: %d %d %d", eng[0].ID, eng[1].ID, eng[2].ID)
	}

	if got := r.ByDepartment("engineering"); len(got) != 3 {
		t.Errorf("lowercase lookup got %d records, want 3", len(got))
	}
	if got := r.ByDepartment("ENGINEERING"); len(got) != 3 {
		t.Errorf("uppercase lookup got %d records, want 3", len(got))
	}
	if got := r.ByDepartment("Shipping"); got != nil {
		t.Errorf("unknown department returned %d records", len(got))
	}
}

func TestHighEarnersThresholdIsExclusive(t *testing.T) {
	r := NewRoster()

	// 75000 is an exact salary in the sample data; the boundary record is
	// excluded.
	high := r.HighEarners(75000)
	if len(high) != 2 {
		t.Fatalf("got %d high earners above 75000, want 2", len(high))
	}
	for _, e := range high {
		if e.Salary <= 75000 {
			t.Errorf("%s with salary %.0f is not above the threshold", e.FullName(), e.Salary)
		}
	}
}

func TestHiredInYear(t *testing.T) {
	r := NewRoster()
	cases := []struct {
		year int
		want int
	}{
		{2020, 1},
		{2021, 3},
		{2022, 3},
		{2023, 3},
		{2019, 0},
	}
	for _, tc := range cases {
		if got := len(r.HiredInYear(tc.year)); got != tc.want {
			t.Errorf("HiredInYear(%d) = %d records, want %d", tc.year, got, tc.want)
		}
	}
}

func TestDepartmentsSortedDistinct(t *testing.T) {
	r := NewRoster()
	got := r.Departments()
	want := []string{"Engineering", "Finance", "HR", "Marketing", "Sales"}
	if len(got) != len(want) {
		t.Fatalf("got %d departments, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("department %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAverageSalary(t *testing.T) {
	r := NewRoster()
	// Sum of the ten sample salaries is 675000.
	if got := r.AverageSalary(); got != 67500 {
		t.Errorf("AverageSalary() = %.2f, want 67500.00", got)
	}

	if got := EmptyRoster().AverageSalary(); got != 0 {
		t.Errorf("empty roster AverageSalary() = %.2f, want 0", got)
	}
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp CSV: %v", err)
	}
	return path
}

const csvHeader = "id,firstName,lastName,email,department,position,salary,hireDate,phone,address\n"

func TestLoadCSV(t *testing.T) {
	csv := csvHeader +
		"2001,Alice,Nguyen,alice.nguyen@example.com,Engineering,Platform Engineer,91000,2024-05-20,+1-555-0201,12 River Rd\n" +
		"\n" +
		"2002,Bola,Adeyemi,bola.adeyemi@example.com,Sales,Account Executive,64000.50,2025-01-06,+1-555-0202,34 Lake Ave\n"

	r := NewRoster()
	if err := r.LoadCSV(writeTempCSV(t, csv)); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if r.Count() != 2 {
		t.Fatalf("got %d records after load, want 2", r.Count())
	}
	first := r.All()[0]
	if first.ID != 2001 || first.FullName() != "Alice Nguyen" {
		t.Errorf("first record parsed wrong: %s", first)
	}
	if first.HireDate.Year() != 2024 || first.HireDate.Month() != 5 {
		t.Errorf("hire date parsed wrong: %s", first.HireDate)
	}
	second := r.All()[1]
	if second.Salary != 64000.50 {
		t.Errorf("salary parsed wrong: %.2f", second.Salary)
	}
}

func TestLoadCSVMalformedKeepsPreviousRoster(t *testing.T) {
	cases := []struct {
		name string
		line string
		code string
	}{
		{"short record", "2001,Alice,Nguyen,a@example.com,Engineering,Engineer,91000,2024-05-20,+1-555-0201", errors.CodeCSVRecord},
		{"bad id", "x,Alice,Nguyen,a@example.com,Engineering,Engineer,91000,2024-05-20,+1-555-0201,12 River Rd", errors.CodeCSVField},
		{"bad salary", "2001,Alice,Nguyen,a@example.com,Engineering,Engineer,lots,2024-05-20,+1-555-0201,12 River Rd", errors.CodeCSVField},
		{"bad date", "2001,Alice,Nguyen,a@example.com,Engineering,Engineer,91000,05/20/2024,+1-555-0201,12 River Rd", errors.CodeCSVField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRoster()
			err := r.LoadCSV(writeTempCSV(t, csvHeader+tc.line+"\n"))
			if err == nil {
				t.Fatal("expected a load error")
			}
			if !errors.IsCode(err, tc.code) {
				t.Errorf("got error %v, want code %s", err, tc.code)
			}
			if r.Count() != 10 {
				t.Errorf("failed load must keep the previous roster, got %d records", r.Count())
			}
		})
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	r := NewRoster()
	err := r.LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.IsCode(err, errors.CodeCSVOpen) {
		t.Fatalf("got %v, want code %s", err, errors.CodeCSVOpen)
	}
	if r.Count() != 10 {
		t.Error("failed open must keep the previous roster")
	}
}
