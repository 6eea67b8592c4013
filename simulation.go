package main

import "math"

// DefaultHorizonYears is the number of years projected when no horizon is given
const DefaultHorizonYears = 10

const (
	daysPerYear = 365

	// Platform and management fees take a fixed 20% cut of gross nightly revenue
	rentalFeeRate = 0.20

	// 10% of each year's income is held back as liquidity and never invested
	liquidityReserve = 0.10

	// The cabin construction loan is repaid in fixed installments of cost/1.5
	cabinRepayDivisor = 1.5

	// An optional sale of the primary home happens in this year, netting
	// the price minus 95% of the original loan principal
	homeSaleYear       = 6
	homeSaleLoanFactor = 0.95

	// The cabin starts earning rental income in its second year
	cabinFirstRentalYear = 2
)

// Project runs the year-by-year cash-flow simulation and returns one
// YearResult per year, in chronological order.
//
// The projection is a pure function of its arguments: identical parameters
// and overrides always produce identical results, and no state is shared
// across calls. Callers are expected to pass a validated parameter set.
func Project(params SimulationParams, horizonYears int, ov Overrides) Projection {
	downPct := params.DownPaymentPct
	if ov.DownPaymentPct != nil {
		downPct = *ov.DownPaymentPct
	}
	moveYear := params.MoveYear
	if ov.MoveYear != nil {
		moveYear = *ov.MoveYear
	}
	occupancy := params.Occupancy
	if ov.Occupancy != nil {
		occupancy = *ov.Occupancy
	}

	// The loan derives from the effective down payment, so optimizer
	// overrides change the mortgage payment as well as the rental plan.
	principal := params.LoanPrincipal(downPct)
	mortgageAnnual := AnnualPayment(principal, params.MortgageRate, params.MortgageTermYears)

	balance := 0.0     // Investment account, compounds annually
	pendingCash := 0.0 // One-time inflows realized as income this year
	cabinLoan := 0.0
	cabinInstallment := 0.0
	if params.BuildCabin {
		cabinLoan = params.CabinCost
		cabinInstallment = params.CabinCost / cabinRepayDivisor
	}

	projection := make(Projection, 0, horizonYears)

	for year := 1; year <= horizonYears; year++ {
		// Salary: scripted raises before the move, flat W-2 after.
		// The raises never apply once the owner has relocated.
		salary := params.BaseSalary
		if params.raiseApplies(year) {
			salary += params.RaiseAmount
		}
		if year >= moveYear {
			salary = params.PostMoveSalary
		}

		// Short-term rental income. The primary home only runs as a
		// rental once the owner has moved out.
		rental := 0.0
		if year >= moveYear {
			nightly := params.MainNightlyRate + params.GuestNightlyRate
			rental += nightly * daysPerYear * occupancy * (1 - rentalFeeRate)
		}
		if params.BuildCabin && year >= cabinFirstRentalYear &&
			(params.CabinSaleYear == 0 || year < params.CabinSaleYear) {
			rental += params.CabinNightlyRate * daysPerYear * params.CabinOccupancy * (1 - rentalFeeRate)
		}

		// One-time cash events land in the pending buffer and are
		// realized as income in the same year.
		if params.BuildCabin && params.CabinSaleYear != 0 && year == params.CabinSaleYear {
			pendingCash += params.CabinSaleProceeds
		}
		if params.SellHomeYear6 && year == homeSaleYear {
			pendingCash += params.HomePrice - principal*homeSaleLoanFactor
		}

		income := salary + rental + pendingCash
		if params.ContributionTarget == ContributionToInvestment && year == 1 {
			// One-time injection, not a recurring contribution
			income += params.ContributionAmount
		}
		pendingCash = 0

		expenses := (params.CoreMonthly+params.UtilitiesMonthly+params.SubscriptionsMonthly)*12 + mortgageAnnual
		if cabinLoan > 0 {
			installment := math.Min(cabinInstallment, cabinLoan)
			cabinLoan -= installment
			expenses += installment
		}

		surplus := math.Max(0, income-expenses)
		investable := math.Max(0, surplus-liquidityReserve*income)
		balance = balance*(1+params.AnnualReturn) + investable

		projection = append(projection, YearResult{
			Year:              year,
			Income:            income,
			Expenses:          expenses,
			Surplus:           surplus,
			InvestmentBalance: balance,
		})
	}

	return projection
}
