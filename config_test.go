package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_DefaultsLoadAndValidate(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	params, err := config.ToParams()
	if err != nil {
		t.Fatalf("embedded defaults failed validation: %v", err)
	}

	assertNear(t, 630000, params.HomePrice, "home price")
	assertNear(t, 0.10, params.DownPaymentPct, "down payment fraction")
	assertNear(t, 0.069, params.MortgageRate, "mortgage rate")
	assertNear(t, 0.09, params.AnnualReturn, "annual return")
	if params.MortgageTermYears != 30 {
		t.Errorf("term: expected 30, got %d", params.MortgageTermYears)
	}
	if params.MoveYear != 5 {
		t.Errorf("move year: expected 5, got %d", params.MoveYear)
	}
	if !params.BuildCabin || params.CabinSaleYear != 5 {
		t.Errorf("cabin: expected built with sale year 5, got build=%v sale=%d",
			params.BuildCabin, params.CabinSaleYear)
	}
	if config.HorizonYears() != 10 {
		t.Errorf("horizon: expected 10, got %d", config.HorizonYears())
	}
	if config.OptimizerSamples() != 1000 {
		t.Errorf("samples: expected 1000, got %d", config.OptimizerSamples())
	}
}

func TestConfig_PercentagePreprocessing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"rate: 6.9%", "rate: 0.069"},
		{"occupancy: 65%", "occupancy: 0.65"},
		{"down: 10%", "down: 0.1"},
		{"rate: 0.069", "rate: 0.069"},   // already decimal, untouched
		{"note: 95% sure", "note: 0.95 sure"},
	}

	for _, tt := range tests {
		if got := preprocessPercentages(tt.input); got != tt.expected {
			t.Errorf("preprocessPercentages(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestConfig_LoadFromFileAcceptsPercentSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `home:
  price: 500000
  down_payment_pct: 20%
mortgage:
  interest_rate: 5%
  term_years: 15
relocation:
  move_year: 3
  post_move_salary: 80000
income:
  base_salary: 120000
rental:
  occupancy: 50%
  main_nightly_rate: 200
  guest_nightly_rate: 100
investment:
  annual_return: 7%
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, 0.20, config.Home.DownPaymentPct, "down payment")
	assertNear(t, 0.05, config.Mortgage.InterestRate, "mortgage rate")
	assertNear(t, 0.07, config.Investment.AnnualReturn, "annual return")
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	assertNear(t, original.Home.Price, reloaded.Home.Price, "home price")
	assertNear(t, original.Mortgage.InterestRate, reloaded.Mortgage.InterestRate, "rate")
	if original.Cabin.SaleYear == nil || reloaded.Cabin.SaleYear == nil ||
		*original.Cabin.SaleYear != *reloaded.Cabin.SaleYear {
		t.Error("cabin sale year lost in round trip")
	}
}

func TestConfig_ValidationRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "unsupported mortgage term",
			mutate: func(c *Config) { c.Mortgage.TermYears = 17 },
			want:   "mortgage term",
		},
		{
			name:   "occupancy above 1",
			mutate: func(c *Config) { c.Rental.Occupancy = 1.5 },
			want:   "occupancy",
		},
		{
			name:   "unknown contribution target",
			mutate: func(c *Config) { c.Contribution.Target = "lottery" },
			want:   "contribution target",
		},
		{
			name: "cabin sale year without cabin",
			mutate: func(c *Config) {
				c.Cabin.Build = false
				year := 5
				c.Cabin.SaleYear = &year
			},
			want: "no cabin",
		},
		{
			name: "down payment plus contribution exceeds price",
			mutate: func(c *Config) {
				c.Contribution.Amount = 700000
				c.Contribution.Target = "down_payment"
			},
			want: "exceeds home price",
		},
		{
			name:   "negative home price",
			mutate: func(c *Config) { c.Home.Price = -1 },
			want:   "home price",
		},
		{
			name:   "unknown return source",
			mutate: func(c *Config) { c.Investment.ReturnSource = "ftse100" },
			want:   "return source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadDefaultConfig()
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(config)

			_, err = config.ToParams()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestConfig_ReturnSourceResolvesIndex(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	config.Investment.ReturnSource = "sp500"
	config.Investment.ReturnPeriodYears = 0

	params, err := config.ToParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index := GetStockIndexByID("sp500")
	if index == nil {
		t.Fatal("sp500 index missing")
	}
	assertNear(t, index.DefaultReturn, params.AnnualReturn, "index-sourced return")
}

func TestConfig_ReturnSourceWithPeriod(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	config.Investment.ReturnSource = "sp500"
	config.Investment.ReturnPeriodYears = 10

	params, err := config.ToParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index := GetStockIndexByID("sp500")
	assertNear(t, GetReturnForPeriod(index, 10), params.AnnualReturn, "windowed return")
}

func TestConfig_MissingFileReturnsError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("error should be a not-exist error, got %v", err)
	}
}

func TestConfig_HorizonAndSampleDefaults(t *testing.T) {
	config := &Config{}
	if config.HorizonYears() != DefaultHorizonYears {
		t.Errorf("empty config horizon: expected %d, got %d", DefaultHorizonYears, config.HorizonYears())
	}
	if config.OptimizerSamples() != DefaultSampleCount {
		t.Errorf("empty config samples: expected %d, got %d", DefaultSampleCount, config.OptimizerSamples())
	}
}
