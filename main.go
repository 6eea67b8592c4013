package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Cash-Flow & Net-Worth Planner

Projects multi-year household cash flow and investment growth for a plan
built around a home purchase, a later relocation with short-term rental
income, an optional cabin build, and a recurring contribution decision.

MODES:
  PROJECTION (default)
    Runs a single deterministic projection from the configuration and
    prints the terminal investment balance.
    - Best for: "Where does this plan land after N years?"

  OPTIMIZER (-optimize flag)
    Samples random combinations of down payment, move year and rental
    occupancy and reports the path with the highest terminal balance.
    - Down payment drawn from 5%%, 10%% or 20%%
    - Move year drawn from years 2-7, occupancy from 45%%-80%%
    - Best for: "Which levers matter most?"

  COMPARISON (-compare flag)
    Runs the plan with and without the configured contribution and shows
    the side-by-side trajectories and terminal benefit.
    - Best for: "Is the contribution worth it?"

SENSITIVITY ANALYSIS (-sensitivity flag)
  Projects the plan across a grid of investment returns (3%%-12%%) and rental
  occupancies (45%%-80%%) and prints the terminal balance for each combination.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                           Run projection with built-in defaults
  %s -config my.yaml           Use custom configuration file
  %s -details                  Show year-by-year console breakdown
  %s -optimize -samples 5000   Optimizer with more trials
  %s -compare                  Contribution vs no-contribution comparison
  %s -sensitivity              Terminal balance across return/occupancy grid
  %s -spending bank.csv        Fold recent bank spending into core expenses
  %s -html -pdf                Write HTML and PDF reports alongside the run
  %s -indices                  List available stock index return presets

Configuration:
  Edit config.yaml to customize the home purchase, income, expenses,
  rental assumptions, cabin plan and investment return. Percentages may
  be written either as decimals (0.069) or with a %% suffix (6.9%%).
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	// Command line flags
	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	horizon := flag.Int("horizon", 0, "Projection horizon in years (overrides config)")
	showDetails := flag.Bool("details", false, "Show year-by-year breakdown in console")
	runOptimizer := flag.Bool("optimize", false, "Sample random paths and report the best one")
	samples := flag.Int("samples", 0, "Number of optimizer samples (overrides config)")
	runComparison := flag.Bool("compare", false, "Compare plan with and without the contribution")
	runSensitivity := flag.Bool("sensitivity", false, "Show terminal balance across a return/occupancy grid")
	spendingFile := flag.String("spending", "", "CSV or XLSX bank export to derive a monthly spending adjustment")
	generateHTML := flag.Bool("html", false, "Generate an HTML report and open it in the browser")
	generatePDF := flag.Bool("pdf", false, "Generate a PDF plan document")
	listIndices := flag.Bool("indices", false, "List available stock index return presets and exit")
	writeConfig := flag.Bool("write-config", false, "Write the built-in default configuration to the -config path and exit")
	flag.Parse()

	if *listIndices {
		PrintStockIndices()
		return
	}

	config, err := LoadConfig(*configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config, err = LoadDefaultConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading built-in defaults: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("No config file at %s, using built-in defaults\n", *configFile)
	}

	if *writeConfig {
		if err := SaveConfig(config, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default configuration to %s\n", *configFile)
		return
	}

	// A bank export nudges the core monthly expense before the plan is built
	if *spendingFile != "" {
		adjustment, err := LoadSpendingAdjustment(*spendingFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not derive spending adjustment: %v\n", err)
		} else {
			config.Expenses.CoreMonthly += adjustment
			fmt.Printf("Spending adjustment from %s: +%s/month\n", *spendingFile, FormatMoneyFull(adjustment))
		}
	}

	params, err := config.ToParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	horizonYears := config.HorizonYears()
	if *horizon > 0 {
		horizonYears = *horizon
	}

	PrintHeader(config, params, horizonYears)

	projection := Project(params, horizonYears, Overrides{})
	PrintProjection(projection, *showDetails)

	var optimizerResult *OptimizerResult
	if *runOptimizer {
		sampleCount := config.OptimizerSamples()
		if *samples > 0 {
			sampleCount = *samples
		}
		result := Optimize(params, sampleCount)
		optimizerResult = &result
		PrintOptimizerResult(result, sampleCount)
	}

	if *runSensitivity {
		analysis := RunSensitivityAnalysis(params, horizonYears)
		PrintSensitivityMatrix(analysis)
	}

	var comparisonResult *ComparisonResult
	if *runComparison {
		result := Compare(params, horizonYears)
		comparisonResult = &result
		PrintComparison(result)
	}

	if *generateHTML {
		reportPath := "cashflow_report.html"
		if err := GenerateHTMLReport(projection, params, optimizerResult, comparisonResult, reportPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating HTML report: %v\n", err)
		} else {
			fmt.Printf("HTML report written to %s\n", reportPath)
			openBrowser(reportPath)
		}
	}

	if *generatePDF {
		planPath := "cashflow_plan.pdf"
		if err := GeneratePDFReport(projection, params, optimizerResult, comparisonResult, planPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating PDF plan: %v\n", err)
		} else {
			fmt.Printf("PDF plan written to %s\n", planPath)
		}
	}
}

// openBrowser opens a file in the default browser
func openBrowser(filename string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", filename)
	case "darwin":
		cmd = exec.Command("open", filename)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", filename)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	err := cmd.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
