package employee

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/inkwell-reports/inkwell/pkg/errors"
)

// csvFieldCount is the exact number of comma-separated fields per record:
// id, first name, last name, email, department, position, salary, hire date,
// phone, address.
const csvFieldCount = 10

// LoadCSV replaces the roster's records with the contents of a CSV file.
//
// The first line is a header and is skipped; blank lines are ignored. Fields
// are split on commas with no quoting, so field values must not contain
// commas. Loading is all-or-nothing: any malformed record aborts the load
// and the roster keeps the records it had before the call.
func (r *Roster) LoadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapIO(err, errors.CodeCSVOpen, "cannot open CSV file").
			WithContext("path", path)
	}
	defer f.Close()

	var loaded []Employee
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 || strings.TrimSpace(line) == "" {
			continue
		}

		emp, err := parseRecord(line)
		if err != nil {
			if re, ok := errors.AsReportError(err); ok {
				return re.WithContext("path", path).
					WithContext("line", strconv.Itoa(lineNum))
			}
			return err
		}
		loaded = append(loaded, emp)
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapIO(err, errors.CodeCSVOpen, "cannot read CSV file").
			WithContext("path", path)
	}

	r.employees = loaded
	return nil
}

// parseRecord parses one CSV line into an Employee.
func parseRecord(line string) (Employee, error) {
	fields := strings.Split(line, ",")
	if len(fields) != csvFieldCount {
		return Employee{}, errors.DataErrorf(errors.CodeCSVRecord,
			"record has %d fields, want %d", len(fields), csvFieldCount)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Employee{}, fieldError("id", fields[0], err)
	}
	salary, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return Employee{}, fieldError("salary", fields[6], err)
	}
	hireDate, err := time.Parse(HireDateLayout, fields[7])
	if err != nil {
		return Employee{}, fieldError("hire date", fields[7], err)
	}

	return Employee{
		ID:         id,
		FirstName:  fields[1],
		LastName:   fields[2],
		Email:      fields[3],
		Department: fields[4],
		Position:   fields[5],
		Salary:     salary,
		HireDate:   hireDate,
		Phone:      fields[8],
		Address:    fields[9],
	}, nil
}

func fieldError(field, value string, cause error) *errors.ReportError {
	return errors.WrapData(cause, errors.CodeCSVField,
		fmt.Sprintf("invalid %s value %q", field, value))
}
