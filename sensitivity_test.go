package main

import "testing"

func TestSensitivity_GridShape(t *testing.T) {
	analysis := RunSensitivityAnalysis(baseParams(), DefaultHorizonYears)

	if len(analysis.ReturnRates) == 0 || len(analysis.OccupancyRates) == 0 {
		t.Fatal("empty sensitivity grid")
	}
	if len(analysis.FinalBalances) != len(analysis.ReturnRates) {
		t.Fatalf("rows: expected %d, got %d", len(analysis.ReturnRates), len(analysis.FinalBalances))
	}
	for i, row := range analysis.FinalBalances {
		if len(row) != len(analysis.OccupancyRates) {
			t.Fatalf("row %d: expected %d columns, got %d", i, len(analysis.OccupancyRates), len(row))
		}
	}
}

func TestSensitivity_MonotoneInBothAxes(t *testing.T) {
	// A higher return or a higher occupancy never lowers the terminal balance
	analysis := RunSensitivityAnalysis(baseParams(), DefaultHorizonYears)

	for i, row := range analysis.FinalBalances {
		for j := 1; j < len(row); j++ {
			if row[j] < row[j-1]-simTolerance {
				t.Errorf("row %d: balance fell from %.2f to %.2f as occupancy rose",
					i, row[j-1], row[j])
			}
		}
	}
	for j := range analysis.OccupancyRates {
		for i := 1; i < len(analysis.FinalBalances); i++ {
			if analysis.FinalBalances[i][j] < analysis.FinalBalances[i-1][j]-simTolerance {
				t.Errorf("column %d: balance fell from %.2f to %.2f as return rose",
					j, analysis.FinalBalances[i-1][j], analysis.FinalBalances[i][j])
			}
		}
	}
}

func TestSensitivity_MatchesDirectRun(t *testing.T) {
	params := baseParams()
	analysis := RunSensitivityAnalysis(params, DefaultHorizonYears)

	p := params
	p.AnnualReturn = analysis.ReturnRates[0]
	occ := analysis.OccupancyRates[0]
	projection := Project(p, DefaultHorizonYears, Overrides{Occupancy: &occ})

	assertNear(t, projection.FinalBalance(), analysis.FinalBalances[0][0], "grid corner")
}

func TestSensitivity_BuildRates(t *testing.T) {
	rates := buildRates(0.45, 0.80, 0.05)
	if len(rates) != 8 {
		t.Fatalf("expected 8 rates from 45%% to 80%% by 5%%, got %d", len(rates))
	}
	assertNear(t, 0.45, rates[0], "first rate")
	assertNear(t, 0.80, rates[len(rates)-1], "last rate")
}
