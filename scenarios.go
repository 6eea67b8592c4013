package main

// Compare runs the projection twice: once with the external contribution
// zeroed out and once with it at its configured value. Both runs share the
// same horizon so the two projections pair by year index.
//
// The two runs use independently constructed parameter values rather than
// toggling a shared instance, so there is no ordering hazard if the runs are
// ever executed in parallel.
func Compare(params SimulationParams, horizonYears int) ComparisonResult {
	without := params
	without.ContributionAmount = 0

	return ComparisonResult{
		ContributionAmount: params.ContributionAmount,
		Without:            Project(without, horizonYears, Overrides{}),
		With:               Project(params, horizonYears, Overrides{}),
	}
}
