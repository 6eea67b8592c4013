package main

import "fmt"

// ContributionTarget represents where a one-time family contribution is applied
type ContributionTarget int

const (
	ContributionToDownPayment ContributionTarget = iota // Reduces the loan principal
	ContributionToInvestment                            // Deposited into the investment account in year 1
)

func (c ContributionTarget) String() string {
	switch c {
	case ContributionToDownPayment:
		return "Down Payment"
	case ContributionToInvestment:
		return "Investment"
	default:
		return "Unknown"
	}
}

// validMortgageTerms are the loan terms the planner accepts
var validMortgageTerms = []int{15, 20, 30}

// SimulationParams holds the complete validated input set for one projection.
// A value is constructed once per run and never mutated during simulation.
type SimulationParams struct {
	// Primary home
	HomePrice      float64
	DownPaymentPct float64 // Buyer's fraction of the price, 0-1
	SellHomeYear6  bool    // Sell the primary home in year 6

	// One-time external contribution
	ContributionAmount float64
	ContributionTarget ContributionTarget

	// Mortgage
	MortgageRate      float64 // Annual rate as decimal (0.069 = 6.9%)
	MortgageTermYears int

	// Relocation
	MoveYear       int     // First year the owner lives at the new location
	PostMoveSalary float64 // Flat W-2 income from the move year onward

	// Pre-move income
	BaseSalary  float64
	RaiseAmount float64 // One-time bump added in each raise year
	RaiseYears  []int

	// Recurring expenses ($/month)
	CoreMonthly          float64
	UtilitiesMonthly     float64
	SubscriptionsMonthly float64

	// Short-term rental, primary home (both units)
	Occupancy        float64 // 0-1
	MainNightlyRate  float64
	GuestNightlyRate float64

	// Second property (cabin)
	BuildCabin        bool
	CabinCost         float64
	CabinOccupancy    float64
	CabinNightlyRate  float64
	CabinSaleYear     int // 0 = keep the cabin for the whole horizon
	CabinSaleProceeds float64

	// Investments
	AnnualReturn float64
}

// BuyerDownPayment returns the buyer-funded part of the down payment for
// a given down-payment fraction.
func (p *SimulationParams) BuyerDownPayment(downPct float64) float64 {
	return p.HomePrice * downPct
}

// ContributionToDown returns the external contribution amount routed to
// the down payment (0 when it goes to the investment account).
func (p *SimulationParams) ContributionToDown() float64 {
	if p.ContributionTarget == ContributionToDownPayment {
		return p.ContributionAmount
	}
	return 0
}

// LoanPrincipal returns the mortgage principal for a given effective
// down-payment fraction.
func (p *SimulationParams) LoanPrincipal(downPct float64) float64 {
	return p.HomePrice - (p.BuyerDownPayment(downPct) + p.ContributionToDown())
}

// raiseApplies reports whether the scripted pre-move raise lands in a year
func (p *SimulationParams) raiseApplies(year int) bool {
	for _, y := range p.RaiseYears {
		if y == year {
			return true
		}
	}
	return false
}

// Validate rejects any parameter outside its documented domain. The engine
// never clamps inputs; a bad value fails here before any simulation runs.
func (p *SimulationParams) Validate() error {
	if p.HomePrice <= 0 {
		return fmt.Errorf("home price must be positive, got %.2f", p.HomePrice)
	}
	if p.DownPaymentPct < 0 || p.DownPaymentPct > 1 {
		return fmt.Errorf("down payment fraction must be within [0, 1], got %.4f", p.DownPaymentPct)
	}
	if p.ContributionAmount < 0 {
		return fmt.Errorf("contribution amount must be non-negative, got %.2f", p.ContributionAmount)
	}
	if principal := p.LoanPrincipal(p.DownPaymentPct); principal < 0 {
		return fmt.Errorf("down payment plus contribution exceeds home price (loan principal %.2f)", principal)
	}
	if p.MortgageRate < 0 {
		return fmt.Errorf("mortgage rate must be non-negative, got %.4f", p.MortgageRate)
	}
	if !isValidTerm(p.MortgageTermYears) {
		return fmt.Errorf("mortgage term must be one of %v years, got %d", validMortgageTerms, p.MortgageTermYears)
	}
	if p.MoveYear < 1 {
		return fmt.Errorf("move year must be a positive year index, got %d", p.MoveYear)
	}
	if p.PostMoveSalary < 0 || p.BaseSalary < 0 || p.RaiseAmount < 0 {
		return fmt.Errorf("income figures must be non-negative")
	}
	if p.CoreMonthly < 0 || p.UtilitiesMonthly < 0 || p.SubscriptionsMonthly < 0 {
		return fmt.Errorf("monthly expenses must be non-negative")
	}
	if p.Occupancy < 0 || p.Occupancy > 1 {
		return fmt.Errorf("occupancy must be within [0, 1], got %.4f", p.Occupancy)
	}
	if p.MainNightlyRate < 0 || p.GuestNightlyRate < 0 {
		return fmt.Errorf("nightly rates must be non-negative")
	}
	if p.BuildCabin {
		if p.CabinCost < 0 || p.CabinNightlyRate < 0 || p.CabinSaleProceeds < 0 {
			return fmt.Errorf("cabin money figures must be non-negative")
		}
		if p.CabinOccupancy < 0 || p.CabinOccupancy > 1 {
			return fmt.Errorf("cabin occupancy must be within [0, 1], got %.4f", p.CabinOccupancy)
		}
		if p.CabinSaleYear < 0 {
			return fmt.Errorf("cabin sale year must be non-negative, got %d", p.CabinSaleYear)
		}
	} else if p.CabinSaleYear != 0 {
		return fmt.Errorf("cabin sale year set but no cabin is built")
	}
	if p.AnnualReturn <= -1 {
		return fmt.Errorf("annual return must be greater than -100%%, got %.4f", p.AnnualReturn)
	}
	return nil
}

func isValidTerm(years int) bool {
	for _, t := range validMortgageTerms {
		if t == years {
			return true
		}
	}
	return false
}

// Overrides replaces selected parameters for a single engine invocation.
// Nil fields fall back to the value in SimulationParams. This is the seam
// the optimizer and comparator use without duplicating engine logic.
type Overrides struct {
	DownPaymentPct *float64
	MoveYear       *int
	Occupancy      *float64
}

// YearResult holds the computed totals for one simulated year
type YearResult struct {
	Year              int     // 1-based year index
	Income            float64 // Salary + rental + one-time inflows
	Expenses          float64 // Living costs + mortgage + cabin repayment
	Surplus           float64 // max(0, income - expenses)
	InvestmentBalance float64 // Compounded balance at year end
}

// Projection is the ordered per-year result sequence for one simulation run.
// Index order is chronological and must be preserved.
type Projection []YearResult

// FinalBalance returns the terminal investment balance
func (p Projection) FinalBalance() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].InvestmentBalance
}

// HasNegativeCashFlow reports whether any year spent more than it earned.
// This inspects income vs expenses before the surplus floor, so a year with
// a zero surplus and a real shortfall is still flagged.
func (p Projection) HasNegativeCashFlow() bool {
	for _, y := range p {
		if y.Income < y.Expenses {
			return true
		}
	}
	return false
}

// OptimizerResult is the single best sampled parameter combination
type OptimizerResult struct {
	DownPaymentPct float64
	MoveYear       int
	Occupancy      float64
	FinalBalance   float64
}

// ComparisonResult pairs two projections of equal horizon: one with the
// external contribution zeroed out, one with it at its configured value.
type ComparisonResult struct {
	ContributionAmount float64
	Without            Projection
	With               Projection
}
