package main

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFReport generates a printable plan document for a projection run
type PDFReport struct {
	pdf        *fpdf.Fpdf
	params     SimulationParams
	projection Projection
	optimizer  *OptimizerResult
	comparison *ComparisonResult
}

// GeneratePDFReport writes a PDF plan to filename. Optimizer and comparison
// sections appear only when those results are supplied.
func GeneratePDFReport(projection Projection, params SimulationParams,
	optimizer *OptimizerResult, comparison *ComparisonResult, filename string) error {

	r := &PDFReport{
		pdf:        fpdf.New("P", "mm", "A4", ""),
		params:     params,
		projection: projection,
		optimizer:  optimizer,
		comparison: comparison,
	}

	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)

	r.addTitlePage()
	r.addYearTable()
	if r.optimizer != nil {
		r.addOptimizerSection()
	}
	if r.comparison != nil {
		r.addComparisonSection()
	}

	return r.pdf.OutputFileAndClose(filename)
}

func (r *PDFReport) addTitlePage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 28)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(40)
	r.pdf.CellFormat(contentWidth, 15, "Cash-Flow & Net-Worth Plan", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.Ln(10)
	r.pdf.CellFormat(contentWidth, 8,
		fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")

	// Assumptions box
	r.pdf.Ln(15)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, "Key Assumptions", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)

	lines := []string{
		fmt.Sprintf("Home price %s with %.0f%% down, %.2f%% mortgage over %d years",
			FormatMoneyFull(r.params.HomePrice), r.params.DownPaymentPct*100,
			r.params.MortgageRate*100, r.params.MortgageTermYears),
		fmt.Sprintf("Base salary %s, moving in year %d to %s",
			FormatMoneyFull(r.params.BaseSalary), r.params.MoveYear,
			FormatMoneyFull(r.params.PostMoveSalary)),
		fmt.Sprintf("Rental occupancy %.0f%% at %s / %s per night",
			r.params.Occupancy*100, FormatMoneyFull(r.params.MainNightlyRate),
			FormatMoneyFull(r.params.GuestNightlyRate)),
		fmt.Sprintf("Investment return %.1f%% per year over %d years",
			r.params.AnnualReturn*100, len(r.projection)),
	}
	if r.params.BuildCabin {
		lines = append(lines, fmt.Sprintf("Cabin build %s at %.0f%% occupancy",
			FormatMoneyFull(r.params.CabinCost), r.params.CabinOccupancy*100))
	}
	for _, line := range lines {
		r.pdf.CellFormat(contentWidth, 7, line, "LR", 1, "C", true, 0, "")
	}
	r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", true, 0, "")

	// Headline result
	r.pdf.Ln(15)
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 102, 51)
	r.pdf.CellFormat(contentWidth, 10,
		fmt.Sprintf("Terminal investment balance: %s", FormatMoneyFull(r.projection.FinalBalance())),
		"", 1, "C", false, 0, "")

	if r.projection.HasNegativeCashFlow() {
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(180, 60, 0)
		r.pdf.CellFormat(contentWidth, 8,
			"Warning: at least one year spends more than it earns", "", 1, "C", false, 0, "")
	}
}

func (r *PDFReport) addYearTable() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, "Year-by-Year Projection", "", 1, "L", false, 0, "")
	r.pdf.Ln(3)

	colWidths := []float64{18.0, 40.0, 40.0, 40.0, 42.0}
	headers := []string{"Year", "Income", "Expenses", "Surplus", "Investments"}

	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetFillColor(230, 236, 245)
	r.pdf.SetTextColor(0, 51, 102)
	for i, h := range headers {
		r.pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 10)
	for i, y := range r.projection {
		if i%2 == 0 {
			r.pdf.SetFillColor(255, 255, 255)
		} else {
			r.pdf.SetFillColor(245, 247, 250)
		}
		if y.Income < y.Expenses {
			r.pdf.SetTextColor(180, 0, 0)
		} else {
			r.pdf.SetTextColor(50, 50, 50)
		}

		r.pdf.CellFormat(colWidths[0], 7, fmt.Sprintf("%d", y.Year), "1", 0, "C", true, 0, "")
		r.pdf.CellFormat(colWidths[1], 7, FormatMoneyFull(y.Income), "1", 0, "R", true, 0, "")
		r.pdf.CellFormat(colWidths[2], 7, FormatMoneyFull(y.Expenses), "1", 0, "R", true, 0, "")
		r.pdf.CellFormat(colWidths[3], 7, FormatMoneyFull(y.Surplus), "1", 0, "R", true, 0, "")
		r.pdf.CellFormat(colWidths[4], 7, FormatMoneyFull(y.InvestmentBalance), "1", 0, "R", true, 0, "")
		r.pdf.Ln(-1)
	}
}

func (r *PDFReport) addOptimizerSection() {
	r.pdf.Ln(10)
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, "Recommended Path", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(contentWidth, 7,
		fmt.Sprintf("Put %.0f%% down, move in year %d, target %.0f%% occupancy.",
			r.optimizer.DownPaymentPct*100, r.optimizer.MoveYear, r.optimizer.Occupancy*100),
		"", 1, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth, 7,
		fmt.Sprintf("Best sampled terminal balance: %s", FormatMoneyFull(r.optimizer.FinalBalance)),
		"", 1, "L", false, 0, "")
}

func (r *PDFReport) addComparisonSection() {
	r.pdf.Ln(10)
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10,
		fmt.Sprintf("With vs Without %s Contribution", FormatMoneyFull(r.comparison.ContributionAmount)),
		"", 1, "L", false, 0, "")

	withFinal := r.comparison.With.FinalBalance()
	withoutFinal := r.comparison.Without.FinalBalance()

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(contentWidth, 7,
		fmt.Sprintf("Without contribution: %s", FormatMoneyFull(withoutFinal)), "", 1, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth, 7,
		fmt.Sprintf("With contribution: %s", FormatMoneyFull(withFinal)), "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 102, 51)
	r.pdf.CellFormat(contentWidth, 7,
		fmt.Sprintf("Terminal benefit: %s", FormatMoneyFull(withFinal-withoutFinal)), "", 1, "L", false, 0, "")
}
