// Inkwell - Employee PDF Report Generator
//
// Inkwell renders employee rosters into paginated PDF reports: a complete
// roster report, per-department reports, and a salary analysis. Reports can
// be generated interactively through a menu shell or in one shot with -batch.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/inkwell-reports/inkwell/pkg/config"
	"github.com/inkwell-reports/inkwell/pkg/employee"
	"github.com/inkwell-reports/inkwell/pkg/report"
	"github.com/inkwell-reports/inkwell/pkg/shell"
	"github.com/inkwell-reports/inkwell/pkg/spinner"
)

const version = "1.0.0"

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Config file path (default: ./inkwell.yaml)")
	dataPath := flag.String("data", "", "CSV file to load instead of the built-in sample data")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	initConfig := flag.Bool("init", false, "Initialize default config file")
	batch := flag.Bool("batch", false, "Generate all reports and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Inkwell %s\n", version)
		os.Exit(0)
	}

	// Determine config path
	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}

	// Initialize config if requested
	if *initConfig {
		if err := config.InitConfig(cfgPath); err != nil {
			fmt.Printf("Failed to initialize config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config initialized at: %s\n", cfgPath)
		fmt.Println("Edit this file to adjust page geometry, colors, and output.")
		os.Exit(0)
	}

	// Load config
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Directory = *outDir
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	// Display banner
	fmt.Println("╔═══════════════════════════════════════════╗")
	fmt.Println("║   Inkwell - Employee Report Generator     ║")
	fmt.Println("╚═══════════════════════════════════════════╝")
	fmt.Println()

	// Show config location
	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config: %s\n", cfgPath)
	} else {
		fmt.Printf("Config: (using defaults, run -init to create)\n")
	}
	fmt.Printf("Output: %s\n", cfg.Output.Directory)
	fmt.Println()

	// Build the roster: sample data, optionally replaced from CSV
	roster := employee.NewRoster()
	csvPath := cfg.Data.CSVPath
	if *dataPath != "" {
		csvPath = *dataPath
	}
	if csvPath != "" {
		if err := roster.LoadCSV(csvPath); err != nil {
			fmt.Printf("Failed to load %s: %v\n", csvPath, err)
			fmt.Println("Continuing with sample data.")
		} else {
			fmt.Printf("Loaded %d employees from %s\n", roster.Count(), csvPath)
		}
	} else {
		fmt.Printf("Using built-in sample data (%d employees)\n", roster.Count())
	}
	fmt.Println()

	asm := report.NewAssembler(cfg)
	fmt.Printf("Run ID: %s\n", asm.RunID())
	fmt.Println()

	if *batch {
		if err := runBatch(roster, asm); err != nil {
			os.Exit(1)
		}
		return
	}

	// Get history file path
	homeDir, _ := os.UserHomeDir()
	historyFile := filepath.Join(homeDir, ".inkwell_history")

	// Create and run shell
	sh, err := shell.New(roster, asm, cfg, shell.Config{
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Printf("Failed to create shell: %v\n", err)
		os.Exit(1)
	}

	if err := sh.Run(ctx); err != nil && err != context.Canceled {
		fmt.Printf("Shell error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Goodbye!")
}

// runBatch generates the complete report, one report per department, and the
// salary analysis without entering the shell.
func runBatch(roster *employee.Roster, asm *report.Assembler) error {
	all := roster.All()
	departments := roster.Departments()
	total := len(departments) + 2

	bar := spinner.NewProgress(total, "Generating all reports")
	bar.Start()

	if _, err := asm.EmployeeReport(all); err != nil {
		bar.Fail(fmt.Sprintf("Employee report failed: %v", err))
		return err
	}
	bar.Step("Employee report")

	for _, dept := range departments {
		if _, err := asm.DepartmentReport(roster.ByDepartment(dept), dept); err != nil {
			bar.Fail(fmt.Sprintf("%s department report failed: %v", dept, err))
			return err
		}
		bar.Step(dept + " department report")
	}

	if _, err := asm.SalaryReport(all); err != nil {
		bar.Fail(fmt.Sprintf("Salary analysis failed: %v", err))
		return err
	}
	bar.Step("Salary analysis")

	bar.Complete(fmt.Sprintf("All reports generated (%d files)", total))
	return nil
}
