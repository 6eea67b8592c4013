package main

import (
	"fmt"
	"strings"
)

// SensitivityAnalysis holds terminal balances across a grid of investment
// return and rental occupancy assumptions
type SensitivityAnalysis struct {
	ReturnRates    []float64
	OccupancyRates []float64
	// FinalBalances[returnIdx][occupancyIdx]
	FinalBalances [][]float64
	Warnings      [][]bool // Years with negative cash flow anywhere in the run
}

// buildRates generates a slice of rates from min to max with the given step
func buildRates(min, max, step float64) []float64 {
	var rates []float64
	for r := min; r <= max+0.0001; r += step { // small epsilon for float comparison
		rates = append(rates, r)
	}
	return rates
}

// RunSensitivityAnalysis projects the plan across a grid of return and
// occupancy assumptions to show how the terminal balance moves with the two
// inputs the owner controls least.
func RunSensitivityAnalysis(params SimulationParams, horizonYears int) *SensitivityAnalysis {
	returnRates := buildRates(0.03, 0.12, 0.015)
	occupancyRates := buildRates(0.45, 0.80, 0.05)

	analysis := &SensitivityAnalysis{
		ReturnRates:    returnRates,
		OccupancyRates: occupancyRates,
		FinalBalances:  make([][]float64, len(returnRates)),
		Warnings:       make([][]bool, len(returnRates)),
	}

	for i, ret := range returnRates {
		analysis.FinalBalances[i] = make([]float64, len(occupancyRates))
		analysis.Warnings[i] = make([]bool, len(occupancyRates))

		p := params
		p.AnnualReturn = ret
		for j := range occupancyRates {
			occ := occupancyRates[j]
			projection := Project(p, horizonYears, Overrides{Occupancy: &occ})
			analysis.FinalBalances[i][j] = projection.FinalBalance()
			analysis.Warnings[i][j] = projection.HasNegativeCashFlow()
		}
	}

	return analysis
}

// PrintSensitivityMatrix prints the terminal balance grid to the console
func PrintSensitivityMatrix(analysis *SensitivityAnalysis) {
	fmt.Println("Sensitivity: terminal balance by return (rows) and occupancy (columns)")
	fmt.Println(strings.Repeat("─", 14+10*len(analysis.OccupancyRates)))

	fmt.Printf("%-12s", "Return")
	for _, occ := range analysis.OccupancyRates {
		fmt.Printf(" %8.0f%%", occ*100)
	}
	fmt.Println()

	for i, ret := range analysis.ReturnRates {
		fmt.Printf("%-12s", fmt.Sprintf("%.1f%%", ret*100))
		for j := range analysis.OccupancyRates {
			cell := FormatMoney(analysis.FinalBalances[i][j])
			if analysis.Warnings[i][j] {
				cell += "!"
			}
			fmt.Printf(" %9s", cell)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 14+10*len(analysis.OccupancyRates)))
	fmt.Println("! marks combinations with at least one negative cash-flow year")
	fmt.Println()
}
