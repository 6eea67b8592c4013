package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// GenerateHTMLReport writes a self-contained HTML report for a projection,
// with optional optimizer and comparison sections when those runs happened.
func GenerateHTMLReport(projection Projection, params SimulationParams,
	optimizer *OptimizerResult, comparison *ComparisonResult, filename string) error {

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Cash-Flow Projection</title>
    <style>
        :root {
            --primary: #2563eb;
            --success: #16a34a;
            --warning: #ea580c;
            --danger: #dc2626;
            --bg: #f8fafc;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
            padding: 2rem;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 { font-size: 1.75rem; margin-bottom: 0.5rem; color: var(--primary); }
        h2 {
            font-size: 1.25rem;
            margin: 1.5rem 0 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid var(--primary);
        }
        .subtitle { color: var(--text-muted); margin-bottom: 1.5rem; }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .grid { display: grid; gap: 1rem; grid-template-columns: repeat(4, 1fr); }
        @media (max-width: 768px) { .grid { grid-template-columns: 1fr; } }
        .metric { text-align: center; padding: 1rem; border-radius: 8px; background: var(--bg); }
        .metric-value { font-size: 1.5rem; font-weight: 700; color: var(--primary); }
        .metric-label { font-size: 0.875rem; color: var(--text-muted); }
        .metric.warning .metric-value { color: var(--warning); }
        table { width: 100%%; border-collapse: collapse; font-size: 0.875rem; }
        th, td { padding: 0.6rem 0.5rem; text-align: right; border-bottom: 1px solid var(--border); }
        th { background: var(--bg); font-weight: 600; }
        th:first-child, td:first-child { text-align: left; }
        tr:hover { background: #f1f5f9; }
        .negative { color: var(--danger); }
        svg { width: 100%%; height: auto; }
        .legend { font-size: 0.8rem; color: var(--text-muted); margin-top: 0.25rem; }
    </style>
</head>
<body>
<div class="container">
    <h1>Cash-Flow &amp; Net-Worth Projection</h1>
    <p class="subtitle">Generated %s · %d-year horizon</p>
`, time.Now().Format("2006-01-02 15:04"), len(projection))

	writeSummaryCards(f, projection, params)
	writeBalanceChart(f, projection)
	writeProjectionTable(f, projection)

	if optimizer != nil {
		fmt.Fprintf(f, `
    <div class="card">
        <h2>Optimal Path (best of sampled trials)</h2>
        <p>Put <strong>%.0f%%</strong> down, move in year <strong>%d</strong>,
           target <strong>%.0f%%</strong> occupancy.
           Terminal balance ≈ <strong>%s</strong>.</p>
    </div>
`, optimizer.DownPaymentPct*100, optimizer.MoveYear, optimizer.Occupancy*100,
			FormatMoney(optimizer.FinalBalance))
	}

	if comparison != nil {
		writeComparisonSection(f, comparison)
	}

	fmt.Fprintln(f, `</div>
</body>
</html>`)

	return nil
}

func writeSummaryCards(f *os.File, projection Projection, params SimulationParams) {
	totalIncome := 0.0
	totalExpenses := 0.0
	for _, y := range projection {
		totalIncome += y.Income
		totalExpenses += y.Expenses
	}

	warningClass := ""
	if projection.HasNegativeCashFlow() {
		warningClass = " warning"
	}

	fmt.Fprintf(f, `
    <div class="card">
        <div class="grid">
            <div class="metric">
                <div class="metric-value">%s</div>
                <div class="metric-label">Terminal Investments</div>
            </div>
            <div class="metric">
                <div class="metric-value">%s</div>
                <div class="metric-label">Total Income</div>
            </div>
            <div class="metric%s">
                <div class="metric-value">%s</div>
                <div class="metric-label">Total Expenses</div>
            </div>
            <div class="metric">
                <div class="metric-value">%.1f%%</div>
                <div class="metric-label">Assumed Return</div>
            </div>
        </div>
    </div>
`, FormatMoney(projection.FinalBalance()), FormatMoney(totalIncome),
		warningClass, FormatMoney(totalExpenses), params.AnnualReturn*100)
}

func seriesMax(values []float64) float64 {
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	return maxVal
}

// chartPoints converts a value series into SVG polyline coordinates,
// scaled against maxVal so overlaid series share an axis
func chartPoints(values []float64, maxVal, width, height, pad float64) string {

	var b strings.Builder
	step := (width - 2*pad) / float64(len(values)-1)
	for i, v := range values {
		x := pad + float64(i)*step
		y := height - pad - (v/maxVal)*(height-2*pad)
		fmt.Fprintf(&b, "%.1f,%.1f ", x, y)
	}
	return strings.TrimSpace(b.String())
}

func writeBalanceChart(f *os.File, projection Projection) {
	values := make([]float64, len(projection))
	for i, y := range projection {
		values[i] = y.InvestmentBalance
	}
	if len(values) < 2 {
		return
	}

	fmt.Fprintf(f, `
    <div class="card">
        <h2>Investment Balance</h2>
        <svg viewBox="0 0 800 300" preserveAspectRatio="xMidYMid meet">
            <polyline points="%s" fill="none" stroke="#2563eb" stroke-width="3"/>
        </svg>
        <p class="legend">Year 1 through %d · peaks at %s</p>
    </div>
`, chartPoints(values, seriesMax(values), 800, 300, 20), len(projection), FormatMoney(projection.FinalBalance()))
}

func writeProjectionTable(f *os.File, projection Projection) {
	fmt.Fprintln(f, `
    <div class="card">
        <h2>Year-by-Year Detail</h2>
        <table>
            <tr><th>Year</th><th>Income</th><th>Expenses</th><th>Surplus</th><th>Investments</th></tr>`)

	for _, y := range projection {
		surplusClass := ""
		if y.Income < y.Expenses {
			surplusClass = ` class="negative"`
		}
		fmt.Fprintf(f, "            <tr><td>%d</td><td>%s</td><td>%s</td><td%s>%s</td><td>%s</td></tr>\n",
			y.Year,
			FormatMoneyFull(y.Income),
			FormatMoneyFull(y.Expenses),
			surplusClass,
			FormatMoneyFull(y.Surplus),
			FormatMoneyFull(y.InvestmentBalance))
	}

	fmt.Fprintln(f, `        </table>
    </div>`)
}

func writeComparisonSection(f *os.File, cmp *ComparisonResult) {
	if len(cmp.With) < 2 {
		return
	}

	withValues := make([]float64, len(cmp.With))
	withoutValues := make([]float64, len(cmp.Without))
	for i := range cmp.With {
		withValues[i] = cmp.With[i].InvestmentBalance
		withoutValues[i] = cmp.Without[i].InvestmentBalance
	}

	maxVal := seriesMax(withValues)
	if m := seriesMax(withoutValues); m > maxVal {
		maxVal = m
	}

	fmt.Fprintf(f, `
    <div class="card">
        <h2>With vs Without %s Contribution</h2>
        <svg viewBox="0 0 800 300" preserveAspectRatio="xMidYMid meet">
            <polyline points="%s" fill="none" stroke="#94a3b8" stroke-width="2"/>
            <polyline points="%s" fill="none" stroke="#16a34a" stroke-width="3"/>
        </svg>
        <p class="legend">Grey: no contribution (%s) · Green: with contribution (%s)</p>
    </div>
`, FormatMoney(cmp.ContributionAmount),
		chartPoints(withoutValues, maxVal, 800, 300, 20),
		chartPoints(withValues, maxVal, 800, 300, 20),
		FormatMoney(cmp.Without.FinalBalance()),
		FormatMoney(cmp.With.FinalBalance()))
}
