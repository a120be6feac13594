package employee

import (
	"sort"
	"strings"
)

// Roster is the in-memory record set reports are generated from. A new
// roster starts with the sample records; LoadCSV replaces them wholesale.
// Query methods return fresh slices, preserving record order.
type Roster struct {
	employees []Employee
}

// NewRoster creates a roster pre-populated with the sample records.
func NewRoster() *Roster {
	return &Roster{employees: SampleEmployees()}
}

// EmptyRoster creates a roster with no records.
func EmptyRoster() *Roster {
	return &Roster{}
}

// All returns a copy of every record in roster order.
func (r *Roster) All() []Employee {
	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

// ByDepartment returns the records whose department matches name,
// case-insensitively, in roster order.
func (r *Roster) ByDepartment(name string) []Employee {
	var out []Employee
	for _, e := range r.employees {
		if strings.EqualFold(e.Department, name) {
			out = append(out, e)
		}
	}
	return out
}

// HighEarners returns the records with salary strictly above threshold.
func (r *Roster) HighEarners(threshold float64) []Employee {
	var out []Employee
	for _, e := range r.employees {
		if e.Salary > threshold {
			out = append(out, e)
		}
	}
	return out
}

// HiredInYear returns the records hired in the given calendar year.
func (r *Roster) HiredInYear(year int) []Employee {
	var out []Employee
	for _, e := range r.employees {
		if e.HireDate.Year() == year {
			out = append(out, e)
		}
	}
	return out
}

// Departments returns the distinct department names, sorted. Distinctness
// follows the stored spelling: names differing only in case are separate.
func (r *Roster) Departments() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range r.employees {
		if !seen[e.Department] {
			seen[e.Department] = true
			out = append(out, e.Department)
		}
	}
	sort.Strings(out)
	return out
}

// Count returns the number of records.
func (r *Roster) Count() int {
	return len(r.employees)
}

// AverageSalary returns the mean salary, or 0 for an empty roster.
func (r *Roster) AverageSalary() float64 {
	if len(r.employees) == 0 {
		return 0
	}
	var total float64
	for _, e := range r.employees {
		total += e.Salary
	}
	return total / float64(len(r.employees))
}
