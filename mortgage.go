package main

import "math"

// MonthlyPayment calculates the fixed monthly payment for a repayment loan
// Using formula: M = P * [r(1+r)^n] / [(1+r)^n - 1]
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	if principal <= 0 {
		return 0 // No loan
	}

	monthlyRate := annualRate / 12
	numPayments := float64(termYears * 12)

	if monthlyRate == 0 {
		return principal / numPayments
	}

	factor := math.Pow(1+monthlyRate, numPayments)
	return principal * (monthlyRate * factor) / (factor - 1)
}

// AnnualPayment returns the total payment across twelve months
func AnnualPayment(principal, annualRate float64, termYears int) float64 {
	return MonthlyPayment(principal, annualRate, termYears) * 12
}
