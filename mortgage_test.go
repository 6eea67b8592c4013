package main

import (
	"math"
	"testing"
)

// Mortgage Calculation Validation Tests
//
// These tests validate fixed-rate amortization against the standard formula:
//
//   M = P × [r(1+r)^n] / [(1+r)^n - 1]
//   Where:
//     M = Monthly payment
//     P = Principal (loan amount)
//     r = Monthly interest rate (annual rate / 12)
//     n = Total number of payments (years × 12)

const mortgageTolerance = 0.50 // $0.50 tolerance for rounding

func assertMortgageEquals(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > mortgageTolerance {
		t.Errorf("%s: expected $%.2f, got $%.2f (diff: $%.2f)",
			description, expected, actual, actual-expected)
	}
}

func TestMortgage_MonthlyPayment(t *testing.T) {
	tests := []struct {
		principal       float64
		interestRate    float64
		termYears       int
		expectedMonthly float64
		description     string
	}{
		{
			principal:       200000,
			interestRate:    0.04,
			termYears:       25,
			expectedMonthly: 1055.67,
			description:     "$200k @ 4% for 25 years",
		},
		{
			principal:       300000,
			interestRate:    0.05,
			termYears:       30,
			expectedMonthly: 1610.46,
			description:     "$300k @ 5% for 30 years",
		},
		{
			principal:       200000,
			interestRate:    0.06,
			termYears:       30,
			expectedMonthly: 1199.10,
			description:     "$200k @ 6% for 30 years",
		},
		{
			principal:       567000,
			interestRate:    0.069,
			termYears:       30,
			expectedMonthly: 3734.26,
			description:     "$567k @ 6.9% for 30 years (90% of a $630k purchase)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			actual := MonthlyPayment(tt.principal, tt.interestRate, tt.termYears)
			assertMortgageEquals(t, tt.expectedMonthly, actual, tt.description)
		})
	}
}

func TestMortgage_ZeroRateDividesEvenly(t *testing.T) {
	// With no interest the payment is principal spread over the term
	actual := MonthlyPayment(100000, 0, 10)
	assertMortgageEquals(t, 833.33, actual, "$100k @ 0% for 10 years")
}

func TestMortgage_NonPositivePrincipal(t *testing.T) {
	if got := MonthlyPayment(0, 0.05, 30); got != 0 {
		t.Errorf("zero principal: expected 0 payment, got %.2f", got)
	}
	if got := MonthlyPayment(-50000, 0.05, 30); got != 0 {
		t.Errorf("negative principal: expected 0 payment, got %.2f", got)
	}
}

func TestMortgage_PaymentPositiveAndCoversInterest(t *testing.T) {
	principals := []float64{50000, 250000, 567000, 1000000}
	rates := []float64{0.01, 0.035, 0.069, 0.10}
	terms := []int{15, 20, 30}

	for _, p := range principals {
		for _, r := range rates {
			for _, term := range terms {
				payment := MonthlyPayment(p, r, term)
				if payment <= 0 {
					t.Errorf("payment for %.0f @ %.3f over %dy not positive: %.2f", p, r, term, payment)
				}
				monthlyInterest := p * r / 12
				if payment <= monthlyInterest {
					t.Errorf("payment %.2f does not cover first month interest %.2f (%.0f @ %.3f over %dy)",
						payment, monthlyInterest, p, r, term)
				}
			}
		}
	}
}

func TestMortgage_AnnualIsTwelveMonthly(t *testing.T) {
	monthly := MonthlyPayment(567000, 0.069, 30)
	annual := AnnualPayment(567000, 0.069, 30)
	assertMortgageEquals(t, monthly*12, annual, "annual payment")
}

func TestMortgage_ShorterTermCostsMorePerMonth(t *testing.T) {
	longer := MonthlyPayment(400000, 0.05, 30)
	shorter := MonthlyPayment(400000, 0.05, 15)
	if shorter <= longer {
		t.Errorf("15-year payment %.2f should exceed 30-year payment %.2f", shorter, longer)
	}
}
