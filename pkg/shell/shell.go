// Package shell provides the interactive menu for report generation.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/inkwell-reports/inkwell/pkg/config"
	"github.com/inkwell-reports/inkwell/pkg/employee"
	"github.com/inkwell-reports/inkwell/pkg/report"
	"github.com/inkwell-reports/inkwell/pkg/spinner"
)

const mainPrompt = "\033[32minkwell>\033[0m "

// Shell is the interactive numbered menu over the roster and assembler.
type Shell struct {
	roster *employee.Roster
	asm    *report.Assembler
	cfg    *config.Config
	rl     *readline.Instance
	out    io.Writer

	// readLine prompts and reads one input line. Backed by readline in
	// normal use; tests script it.
	readLine func(prompt string) (string, error)

	newSpinner  func(message string) *spinner.Spinner
	newProgress func(total int, message string) *spinner.ProgressBar
}

// Config holds shell configuration.
type Config struct {
	HistoryFile string
}

// New creates an interactive shell reading from the terminal.
func New(roster *employee.Roster, asm *report.Assembler, cfg *config.Config, shellCfg Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          mainPrompt,
		HistoryFile:     shellCfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	s := &Shell{
		roster:      roster,
		asm:         asm,
		cfg:         cfg,
		rl:          rl,
		out:         os.Stdout,
		newSpinner:  spinner.New,
		newProgress: spinner.NewProgress,
	}
	s.readLine = func(prompt string) (string, error) {
		s.rl.SetPrompt(prompt)
		defer s.rl.SetPrompt(mainPrompt)
		return s.rl.Readline()
	}
	return s, nil
}

var errQuit = fmt.Errorf("quit")

// Run displays the menu until the user exits or the context is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	defer s.rl.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.printMenu()
		line, err := s.readLine("Enter your choice (1-7): ")
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := s.handleChoice(strings.TrimSpace(line)); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== Report Generation Menu ===")
	fmt.Fprintln(s.out, "1. Generate Complete Employee Report")
	fmt.Fprintln(s.out, "2. Generate Department Report")
	fmt.Fprintln(s.out, "3. Generate Salary Analysis Report")
	fmt.Fprintln(s.out, "4. Generate All Reports (Batch)")
	fmt.Fprintln(s.out, "5. View Employee Statistics")
	fmt.Fprintln(s.out, "6. Load Custom CSV Data")
	fmt.Fprintln(s.out, "7. Exit")
}

// handleChoice dispatches one menu selection. Invalid input is reported and
// never fatal.
func (s *Shell) handleChoice(input string) error {
	choice, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
		return nil
	}

	switch choice {
	case 1:
		s.generateEmployeeReport()
	case 2:
		return s.generateDepartmentReport()
	case 3:
		s.generateSalaryReport()
	case 4:
		s.generateBatchReports()
	case 5:
		s.viewStatistics()
	case 6:
		return s.loadCustomData()
	case 7:
		fmt.Fprintln(s.out, "Thank you for using Inkwell!")
		return errQuit
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1-7.")
	}
	return nil
}

func (s *Shell) generateEmployeeReport() {
	spin := s.newSpinner("Generating complete employee report")
	spin.Start()

	path, err := s.asm.EmployeeReport(s.roster.All())
	if err != nil {
		spin.Fail(fmt.Sprintf("Employee report failed: %v", err))
		return
	}
	spin.Succeed("Employee report generated: " + path)
}

func (s *Shell) generateDepartmentReport() error {
	departments := s.roster.Departments()
	if len(departments) == 0 {
		fmt.Fprintln(s.out, "No departments in the current data.")
		return nil
	}

	fmt.Fprintln(s.out, "\nAvailable Departments:")
	for i, dept := range departments {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, dept)
	}

	line, err := s.readLine(fmt.Sprintf("Select department (1-%d): ", len(departments)))
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > len(departments) {
		fmt.Fprintln(s.out, "Invalid department selection.")
		return nil
	}
	dept := departments[idx-1]

	spin := s.newSpinner("Generating report for " + dept + " department")
	spin.Start()

	path, err := s.asm.DepartmentReport(s.roster.ByDepartment(dept), dept)
	if err != nil {
		spin.Fail(fmt.Sprintf("Department report failed: %v", err))
		return nil
	}
	spin.Succeed("Department report generated: " + path)
	return nil
}

func (s *Shell) generateSalaryReport() {
	spin := s.newSpinner("Generating salary analysis report")
	spin.Start()

	path, err := s.asm.SalaryReport(s.roster.All())
	if err != nil {
		spin.Fail(fmt.Sprintf("Salary analysis failed: %v", err))
		return
	}
	spin.Succeed("Salary analysis generated: " + path)
}

// generateBatchReports writes the complete report, one report per
// department, and the salary analysis.
func (s *Shell) generateBatchReports() {
	all := s.roster.All()
	departments := s.roster.Departments()
	total := len(departments) + 2

	bar := s.newProgress(total, "Generating all reports")
	bar.Start()

	if _, err := s.asm.EmployeeReport(all); err != nil {
		bar.Fail(fmt.Sprintf("Employee report failed: %v", err))
		return
	}
	bar.Step("Employee report")

	for _, dept := range departments {
		if _, err := s.asm.DepartmentReport(s.roster.ByDepartment(dept), dept); err != nil {
			bar.Fail(fmt.Sprintf("%s department report failed: %v", dept, err))
			return
		}
		bar.Step(dept + " department report")
	}

	if _, err := s.asm.SalaryReport(all); err != nil {
		bar.Fail(fmt.Sprintf("Salary analysis failed: %v", err))
		return
	}
	bar.Step("Salary analysis")

	bar.Complete(fmt.Sprintf("All reports generated (%d files)", total))
}

func (s *Shell) viewStatistics() {
	fmt.Fprintln(s.out, "\n=== Employee Statistics ===")
	fmt.Fprintf(s.out, "Total Employees: %d\n", s.roster.Count())
	fmt.Fprintf(s.out, "Average Salary: %s\n", report.MoneyCents(s.roster.AverageSalary()))
	fmt.Fprintf(s.out, "Departments: %d\n", len(s.roster.Departments()))

	fmt.Fprintln(s.out, "\nDepartment Breakdown:")
	for _, dept := range s.roster.Departments() {
		fmt.Fprintf(s.out, "  %s: %d employees\n", dept, len(s.roster.ByDepartment(dept)))
	}

	var under60, mid, over80 int
	for _, e := range s.roster.All() {
		switch {
		case e.Salary < 60000:
			under60++
		case e.Salary < 80000:
			mid++
		default:
			over80++
		}
	}
	fmt.Fprintln(s.out, "\nSalary Distribution:")
	fmt.Fprintf(s.out, "  Under $60,000: %d employees\n", under60)
	fmt.Fprintf(s.out, "  $60,000 - $80,000: %d employees\n", mid)
	fmt.Fprintf(s.out, "  Over $80,000: %d employees\n", over80)
}

// loadCustomData prompts for a CSV file and replaces the roster on success.
// A failed load keeps the current records.
func (s *Shell) loadCustomData() error {
	fmt.Fprintln(s.out, "\nCSV format: id,firstName,lastName,email,department,position,salary,hireDate,phone,address")
	fmt.Fprintln(s.out, "Date format: yyyy-MM-dd")

	line, err := s.readLine("Enter CSV filename (or press Enter to skip): ")
	if err != nil {
		return err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return nil
	}

	if s.roster.Count() > 0 {
		ok, err := s.confirm(fmt.Sprintf("This will replace the current %d employee records. Continue?", s.roster.Count()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, "Load cancelled. Keeping current data.")
			return nil
		}
	}

	if err := s.roster.LoadCSV(path); err != nil {
		fmt.Fprintf(s.out, "Error loading CSV file: %v\n", err)
		fmt.Fprintln(s.out, "Continuing with previous data...")
		return nil
	}
	fmt.Fprintf(s.out, "✓ Custom data loaded successfully!\n")
	fmt.Fprintf(s.out, "New employee count: %d\n", s.roster.Count())
	return nil
}
