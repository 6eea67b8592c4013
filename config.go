package main

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// HomeConfig holds the primary home purchase settings
type HomeConfig struct {
	Price          float64 `yaml:"price" json:"price"`
	DownPaymentPct float64 `yaml:"down_payment_pct" json:"down_payment_pct"` // Buyer's fraction, 0-1
	SellInYear6    bool    `yaml:"sell_in_year_6" json:"sell_in_year_6"`
}

// ContributionConfig holds the one-time external contribution settings
type ContributionConfig struct {
	Amount float64 `yaml:"amount" json:"amount"`
	Target string  `yaml:"target" json:"target"` // "down_payment" or "investment"
}

// MortgageConfig holds loan terms for the primary home
type MortgageConfig struct {
	InterestRate float64 `yaml:"interest_rate" json:"interest_rate"` // Annual rate (0.069 = 6.9%)
	TermYears    int     `yaml:"term_years" json:"term_years"`       // 15, 20 or 30
}

// RelocationConfig holds the move settings
type RelocationConfig struct {
	MoveYear       int     `yaml:"move_year" json:"move_year"`
	PostMoveSalary float64 `yaml:"post_move_salary" json:"post_move_salary"`
}

// IncomeConfig holds pre-move income settings
type IncomeConfig struct {
	BaseSalary  float64 `yaml:"base_salary" json:"base_salary"`
	RaiseAmount float64 `yaml:"raise_amount" json:"raise_amount"` // One-time bump in each raise year
	RaiseYears  []int   `yaml:"raise_years" json:"raise_years"`
}

// ExpenseConfig holds recurring monthly expenses
type ExpenseConfig struct {
	CoreMonthly          float64 `yaml:"core_monthly" json:"core_monthly"`
	UtilitiesMonthly     float64 `yaml:"utilities_monthly" json:"utilities_monthly"`
	SubscriptionsMonthly float64 `yaml:"subscriptions_monthly" json:"subscriptions_monthly"`
}

// RentalConfig holds short-term rental settings for the primary home
type RentalConfig struct {
	Occupancy        float64 `yaml:"occupancy" json:"occupancy"` // 0-1
	MainNightlyRate  float64 `yaml:"main_nightly_rate" json:"main_nightly_rate"`
	GuestNightlyRate float64 `yaml:"guest_nightly_rate" json:"guest_nightly_rate"`
}

// CabinConfig holds the optional second property settings
type CabinConfig struct {
	Build        bool    `yaml:"build" json:"build"`
	Cost         float64 `yaml:"cost" json:"cost"`
	Occupancy    float64 `yaml:"occupancy" json:"occupancy"`
	NightlyRate  float64 `yaml:"nightly_rate" json:"nightly_rate"`
	SaleYear     *int    `yaml:"sale_year,omitempty" json:"sale_year,omitempty"` // Omit to keep the cabin
	SaleProceeds float64 `yaml:"sale_proceeds" json:"sale_proceeds"`
}

// InvestmentConfig holds the investment return assumption. The rate can be
// entered directly or sourced from a stock index's historical returns.
type InvestmentConfig struct {
	AnnualReturn      float64 `yaml:"annual_return" json:"annual_return"`
	ReturnSource      string  `yaml:"return_source,omitempty" json:"return_source,omitempty"`             // Index ID (e.g., "sp500"); empty = use annual_return
	ReturnPeriodYears int     `yaml:"return_period_years,omitempty" json:"return_period_years,omitempty"` // Trailing window (5, 10, 25, ...)
}

// SimulationSettings holds run-level settings
type SimulationSettings struct {
	HorizonYears     int `yaml:"horizon_years" json:"horizon_years"`
	OptimizerSamples int `yaml:"optimizer_samples" json:"optimizer_samples"`
}

// Config holds the complete configuration
type Config struct {
	Home         HomeConfig         `yaml:"home" json:"home"`
	Contribution ContributionConfig `yaml:"contribution" json:"contribution"`
	Mortgage     MortgageConfig     `yaml:"mortgage" json:"mortgage"`
	Relocation   RelocationConfig   `yaml:"relocation" json:"relocation"`
	Income       IncomeConfig       `yaml:"income" json:"income"`
	Expenses     ExpenseConfig      `yaml:"expenses" json:"expenses"`
	Rental       RentalConfig       `yaml:"rental" json:"rental"`
	Cabin        CabinConfig        `yaml:"cabin" json:"cabin"`
	Investment   InvestmentConfig   `yaml:"investment" json:"investment"`
	Simulation   SimulationSettings `yaml:"simulation" json:"simulation"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal([]byte(preprocessPercentages(string(data))), &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# Cash-Flow Planner Configuration
#
# Value formats:
#   Percentages: 0.069 or "6.9%" both mean 6.9%
#   Money: plain dollars (630000 = $630k)
#
# Run commands:
#   ./goCashflowPlanner                 Project the configured plan
#   ./goCashflowPlanner -optimize       Search 1000 random parameter paths
#   ./goCashflowPlanner -compare        Compare with/without the contribution
#   ./goCashflowPlanner -html -pdf      Generate reports
#   ./goCashflowPlanner -help           Show all options

`)
	return os.WriteFile(filename, append(header, data...), 0644)
}

// LoadDefaultConfig loads the embedded default configuration.
// It handles percentage format (e.g., "6.9%" -> 0.069).
func LoadDefaultConfig() (*Config, error) {
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// preprocessPercentages converts percentage values like "6.9%" to decimal "0.069"
func preprocessPercentages(content string) string {
	re := regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) >= 3 {
			num, err := strconv.ParseFloat(parts[2], 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num/100.0, 'f', -1, 64)
			}
		}
		return match
	})
}

// HorizonYears returns the configured horizon, defaulting to 10 years
func (c *Config) HorizonYears() int {
	if c.Simulation.HorizonYears > 0 {
		return c.Simulation.HorizonYears
	}
	return DefaultHorizonYears
}

// OptimizerSamples returns the configured trial count, defaulting to 1000
func (c *Config) OptimizerSamples() int {
	if c.Simulation.OptimizerSamples > 0 {
		return c.Simulation.OptimizerSamples
	}
	return DefaultSampleCount
}

// ResolveAnnualReturn returns the investment return assumption, consulting
// the configured stock index when return_source is set.
func (c *Config) ResolveAnnualReturn() (float64, error) {
	if c.Investment.ReturnSource == "" {
		return c.Investment.AnnualReturn, nil
	}
	index := GetStockIndexByID(c.Investment.ReturnSource)
	if index == nil {
		return 0, fmt.Errorf("unknown return source %q", c.Investment.ReturnSource)
	}
	if c.Investment.ReturnPeriodYears > 0 {
		return GetReturnForPeriod(index, c.Investment.ReturnPeriodYears), nil
	}
	return index.DefaultReturn, nil
}

// ToParams builds and validates the immutable parameter set the engine
// consumes. Construction fails fast on any out-of-domain value.
func (c *Config) ToParams() (SimulationParams, error) {
	var target ContributionTarget
	switch c.Contribution.Target {
	case "", "down_payment":
		target = ContributionToDownPayment
	case "investment":
		target = ContributionToInvestment
	default:
		return SimulationParams{}, fmt.Errorf("contribution target must be %q or %q, got %q",
			"down_payment", "investment", c.Contribution.Target)
	}

	annualReturn, err := c.ResolveAnnualReturn()
	if err != nil {
		return SimulationParams{}, err
	}

	if c.Simulation.HorizonYears < 0 {
		return SimulationParams{}, fmt.Errorf("horizon must be a positive year count, got %d", c.Simulation.HorizonYears)
	}

	saleYear := 0
	if c.Cabin.SaleYear != nil {
		saleYear = *c.Cabin.SaleYear
	}

	params := SimulationParams{
		HomePrice:      c.Home.Price,
		DownPaymentPct: c.Home.DownPaymentPct,
		SellHomeYear6:  c.Home.SellInYear6,

		ContributionAmount: c.Contribution.Amount,
		ContributionTarget: target,

		MortgageRate:      c.Mortgage.InterestRate,
		MortgageTermYears: c.Mortgage.TermYears,

		MoveYear:       c.Relocation.MoveYear,
		PostMoveSalary: c.Relocation.PostMoveSalary,

		BaseSalary:  c.Income.BaseSalary,
		RaiseAmount: c.Income.RaiseAmount,
		RaiseYears:  c.Income.RaiseYears,

		CoreMonthly:          c.Expenses.CoreMonthly,
		UtilitiesMonthly:     c.Expenses.UtilitiesMonthly,
		SubscriptionsMonthly: c.Expenses.SubscriptionsMonthly,

		Occupancy:        c.Rental.Occupancy,
		MainNightlyRate:  c.Rental.MainNightlyRate,
		GuestNightlyRate: c.Rental.GuestNightlyRate,

		BuildCabin:        c.Cabin.Build,
		CabinCost:         c.Cabin.Cost,
		CabinOccupancy:    c.Cabin.Occupancy,
		CabinNightlyRate:  c.Cabin.NightlyRate,
		CabinSaleYear:     saleYear,
		CabinSaleProceeds: c.Cabin.SaleProceeds,

		AnnualReturn: annualReturn,
	}

	if err := params.Validate(); err != nil {
		return SimulationParams{}, err
	}
	return params, nil
}
