package report

import (
	"fmt"
	"sort"

	"github.com/inkwell-reports/inkwell/pkg/employee"
)

// averageSalary returns the mean salary of the given records, 0 when empty.
func averageSalary(emps []employee.Employee) float64 {
	if len(emps) == 0 {
		return 0
	}
	var total float64
	for _, e := range emps {
		total += e.Salary
	}
	return total / float64(len(emps))
}

// summaryStats builds the statistics block for the full employee report:
// mean salary, salary range, distinct department count, and the most recent
// hire date.
func summaryStats(emps []employee.Employee) []string {
	minSalary, maxSalary := emps[0].Salary, emps[0].Salary
	latest := emps[0].HireDate
	depts := make(map[string]bool)
	for _, e := range emps {
		if e.Salary < minSalary {
			minSalary = e.Salary
		}
		if e.Salary > maxSalary {
			maxSalary = e.Salary
		}
		if e.HireDate.After(latest) {
			latest = e.HireDate
		}
		depts[e.Department] = true
	}

	return []string{
		"Average Salary: " + MoneyCents(averageSalary(emps)),
		fmt.Sprintf("Salary Range: %s - %s", MoneyRounded(minSalary), MoneyRounded(maxSalary)),
		fmt.Sprintf("Departments: %d", len(depts)),
		"Latest Hire: " + latest.Format(employee.HireDateLayout),
	}
}

// departmentStats builds the statistics block for a single-department report.
func departmentStats(emps []employee.Employee, department string) []string {
	positions := make(map[string]bool)
	for _, e := range emps {
		positions[e.Position] = true
	}

	return []string{
		"Department: " + department,
		fmt.Sprintf("Employee Count: %d", len(emps)),
		"Average Salary: " + MoneyCents(averageSalary(emps)),
		fmt.Sprintf("Unique Positions: %d", len(positions)),
	}
}

// salaryStats builds the statistics block for the salary analysis report.
func salaryStats(emps []employee.Employee) []string {
	avg := averageSalary(emps)
	var above, below int
	highest := emps[0]
	for _, e := range emps {
		if e.Salary > avg {
			above++
		}
		if e.Salary < avg {
			below++
		}
		if e.Salary > highest.Salary {
			highest = e
		}
	}

	return []string{
		"Average Salary: " + MoneyCents(avg),
		fmt.Sprintf("Above Average: %d employees", above),
		fmt.Sprintf("Below Average: %d employees", below),
		"Highest Paid: " + highest.FullName(),
	}
}

// aboveAverageEarners returns the records earning strictly more than the
// group mean, ordered by salary descending. Ties keep roster order.
func aboveAverageEarners(emps []employee.Employee) []employee.Employee {
	avg := averageSalary(emps)
	var out []employee.Employee
	for _, e := range emps {
		if e.Salary > avg {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Salary > out[j].Salary
	})
	return out
}
