// Package employee holds the employee record model and the roster that
// loads, queries, and summarizes records for report generation.
package employee

import (
	"fmt"
	"time"
)

// HireDateLayout is the date layout used in CSV files and reports.
const HireDateLayout = "2006-01-02"

// Employee is one personnel record.
type Employee struct {
	ID         int
	FirstName  string
	LastName   string
	Email      string
	Department string
	Position   string
	Salary     float64
	HireDate   time.Time
	Phone      string
	Address    string
}

// FullName returns the first and last name joined with a space.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// String renders a compact single-line form for logs and errors.
func (e Employee) String() string {
	return fmt.Sprintf("Employee{%d %s, %s/%s, $%.2f, hired %s}",
		e.ID, e.FullName(), e.Department, e.Position, e.Salary,
		e.HireDate.Format(HireDateLayout))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SampleEmployees returns the built-in demonstration records used when no
// CSV file has been loaded.
func SampleEmployees() []Employee {
	return []Employee{
		{1001, "John", "Smith", "john.smith@company.com", "Engineering", "Software Engineer", 75000, date(2022, 3, 15), "+1-555-0123", "123 Main St, Anytown, USA"},
		{1002, "Sarah", "Johnson", "sarah.johnson@company.com", "Marketing", "Marketing Manager", 68000, date(2021, 8, 22), "+1-555-0124", "456 Oak Ave, Somewhere, USA"},
		{1003, "Michael", "Brown", "michael.brown@company.com", "Finance", "Financial Analyst", 62000, date(2023, 1, 10), "+1-555-0125", "789 Pine Rd, Anywhere, USA"},
		{1004, "Emily", "Davis", "emily.davis@company.com", "HR", "HR Specialist", 58000, date(2022, 11, 5), "+1-555-0126", "321 Elm St, Nowhere, USA"},
		{1005, "David", "Wilson", "david.wilson@company.com", "Engineering", "Senior Developer", 85000, date(2020, 6, 1), "+1-555-0127", "654 Maple Dr, Everytown, USA"},
		{1006, "Lisa", "Martinez", "lisa.martinez@company.com", "Sales", "Sales Representative", 55000, date(2023, 4, 18), "+1-555-0128", "987 Cedar Ln, Hometown, USA"},
		{1007, "Robert", "Garcia", "robert.garcia@company.com", "Engineering", "DevOps Engineer", 78000, date(2021, 12, 8), "+1-555-0129", "147 Birch Ct, Yourtown, USA"},
		{1008, "Jennifer", "Taylor", "jennifer.taylor@company.com", "Marketing", "Content Specialist", 52000, date(2023, 2, 14), "+1-555-0130", "258 Spruce Way, Mytown, USA"},
		{1009, "Chris", "Anderson", "chris.anderson@company.com", "Finance", "Senior Accountant", 70000, date(2022, 7, 30), "+1-555-0131", "369 Fir Blvd, Ourtown, USA"},
		{1010, "Amanda", "Thomas", "amanda.thomas@company.com", "HR", "HR Manager", 72000, date(2021, 4, 12), "+1-555-0132", "741 Ash St, Thistown, USA"},
	}
}
