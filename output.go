package main

import (
	"fmt"
	"strings"
)

// FormatMoney formats a float as an abbreviated currency string
func FormatMoney(amount float64) string {
	if amount >= 1000000 {
		return fmt.Sprintf("$%.2fM", amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("$%.0fk", amount/1000)
	}
	return fmt.Sprintf("$%.0f", amount)
}

// FormatMoneyFull formats a float as full currency (no abbreviation)
func FormatMoneyFull(amount float64) string {
	return fmt.Sprintf("$%.0f", amount)
}

// PrintHeader prints the plan summary before the projection table
func PrintHeader(config *Config, params SimulationParams, horizon int) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                   CASH-FLOW & NET-WORTH PROJECTION                            ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("──────────────")

	principal := params.LoanPrincipal(params.DownPaymentPct)
	annualPayment := AnnualPayment(principal, params.MortgageRate, params.MortgageTermYears)

	fmt.Printf("  Home: %s, %.0f%% down", FormatMoney(params.HomePrice), params.DownPaymentPct*100)
	if params.SellHomeYear6 {
		fmt.Printf(", selling in year %d", homeSaleYear)
	}
	fmt.Println()
	fmt.Printf("  Mortgage: %s @ %.2f%% over %d years (%s/year)\n",
		FormatMoney(principal), params.MortgageRate*100, params.MortgageTermYears,
		FormatMoney(annualPayment))
	if params.ContributionAmount > 0 {
		fmt.Printf("  Contribution: %s applied to %s\n",
			FormatMoney(params.ContributionAmount), params.ContributionTarget)
	}
	fmt.Printf("  Income: %s now, %s after moving in year %d\n",
		FormatMoney(params.BaseSalary), FormatMoney(params.PostMoveSalary), params.MoveYear)
	fmt.Printf("  Rental: %.0f%% occupancy @ $%.0f + $%.0f/night",
		params.Occupancy*100, params.MainNightlyRate, params.GuestNightlyRate)
	if params.BuildCabin {
		fmt.Printf(" | Cabin: %s build, %.0f%% @ $%.0f/night",
			FormatMoney(params.CabinCost), params.CabinOccupancy*100, params.CabinNightlyRate)
		if params.CabinSaleYear > 0 {
			fmt.Printf(", sold year %d", params.CabinSaleYear)
		}
	}
	fmt.Println()

	returnDesc := fmt.Sprintf("%.1f%%", params.AnnualReturn*100)
	if config != nil && config.Investment.ReturnSource != "" {
		if index := GetStockIndexByID(config.Investment.ReturnSource); index != nil {
			returnDesc += fmt.Sprintf(" (%s)", index.Name)
		}
	}
	fmt.Printf("  Investment return: %s | Horizon: %d years\n", returnDesc, horizon)
	fmt.Println()
}

// PrintProjection prints the projection result, with the year-by-year
// table shown only when showDetails is set
func PrintProjection(projection Projection, showDetails bool) {
	if showDetails {
		fmt.Printf("%-6s │ %12s │ %12s │ %12s │ %14s\n",
			"Year", "Income", "Expenses", "Surplus", "Investments")
		fmt.Println(strings.Repeat("─", 70))

		for _, y := range projection {
			fmt.Printf("%-6d │ %12s │ %12s │ %12s │ %14s\n",
				y.Year,
				FormatMoneyFull(y.Income),
				FormatMoneyFull(y.Expenses),
				FormatMoneyFull(y.Surplus),
				FormatMoneyFull(y.InvestmentBalance))
		}

		fmt.Println(strings.Repeat("─", 70))
	}
	fmt.Printf("Terminal investment balance: %s\n", FormatMoney(projection.FinalBalance()))

	if projection.HasNegativeCashFlow() {
		fmt.Println("⚠️  Warning: at least one year spends more than it earns.")
	}
	fmt.Println()
}

// PrintOptimizerResult prints the best sampled path as a recommendation
func PrintOptimizerResult(result OptimizerResult, sampleCount int) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                          OPTIMAL PATH SEARCH                                  ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Best of %d sampled paths:\n", sampleCount)
	fmt.Printf("  Put %.0f%% down, move in year %d, target %.0f%% occupancy.\n",
		result.DownPaymentPct*100, result.MoveYear, result.Occupancy*100)
	fmt.Printf("  %d-year investment balance ≈ %s\n", DefaultHorizonYears, FormatMoney(result.FinalBalance))
	fmt.Println()
}

// PrintComparison prints the with/without-contribution projections side by side
func PrintComparison(cmp ComparisonResult) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                        SCENARIO COMPARISON                                     ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Contribution: %s\n\n", FormatMoney(cmp.ContributionAmount))

	fmt.Printf("%-6s │ %16s │ %16s │ %12s\n",
		"Year", "No Contribution", "With Contribution", "Difference")
	fmt.Println(strings.Repeat("─", 62))

	for i := range cmp.Without {
		without := cmp.Without[i].InvestmentBalance
		with := cmp.With[i].InvestmentBalance
		fmt.Printf("%-6d │ %16s │ %16s │ %12s\n",
			cmp.Without[i].Year,
			FormatMoneyFull(without),
			FormatMoneyFull(with),
			FormatMoneyFull(with-without))
	}

	fmt.Println(strings.Repeat("─", 62))
	fmt.Printf("Terminal benefit: %s\n\n",
		FormatMoney(cmp.With.FinalBalance()-cmp.Without.FinalBalance()))
}

// PrintStockIndices lists the return sources accepted in the config
func PrintStockIndices() {
	fmt.Println("Available return sources (investment.return_source):")
	fmt.Println()
	for _, index := range StockIndices {
		fmt.Printf("  %-10s %s: %s\n", index.ID, index.Name, index.Description)
		for _, r := range index.Returns {
			fmt.Printf("             %-12s %.1f%%\n", r.Label, r.Return*100)
		}
		fmt.Printf("             %-12s %.1f%%\n", "Default", index.DefaultReturn*100)
	}
}
