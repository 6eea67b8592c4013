package main

// ReturnPeriod holds the annualized return of an index over one trailing window
type ReturnPeriod struct {
	Years  int     // Window length in years
	Label  string  // Display label (e.g., "10 Year")
	Return float64 // Annualized return as decimal (0.10 = 10%)
}

// StockIndex is a market index whose historical returns can seed the
// investment return assumption instead of a hand-picked rate.
type StockIndex struct {
	ID            string
	Name          string
	Returns       []ReturnPeriod
	DefaultReturn float64 // Long-term return used when no window is selected
	Description   string
}

// StockIndices lists the indices accepted by investment.return_source.
// Data as of end 2024, nominal returns. Past performance is not a forecast.
var StockIndices = []StockIndex{
	{
		ID:   "sp500",
		Name: "S&P 500",
		Returns: []ReturnPeriod{
			{Years: 5, Label: "5 Year", Return: 0.145},
			{Years: 10, Label: "10 Year", Return: 0.128},
			{Years: 25, Label: "25 Year", Return: 0.078},
			{Years: 67, Label: "Since 1957", Return: 0.104},
		},
		DefaultReturn: 0.104,
		Description:   "US large cap - 500 largest companies",
	},
	{
		ID:   "nasdaq",
		Name: "NASDAQ Composite",
		Returns: []ReturnPeriod{
			{Years: 5, Label: "5 Year", Return: 0.188},
			{Years: 10, Label: "10 Year", Return: 0.165},
			{Years: 25, Label: "25 Year", Return: 0.095},
			{Years: 53, Label: "Since 1971", Return: 0.105},
		},
		DefaultReturn: 0.105,
		Description:   "US tech-heavy - higher growth, more volatile",
	},
	{
		ID:   "dowJones",
		Name: "Dow Jones Industrial Average",
		Returns: []ReturnPeriod{
			{Years: 5, Label: "5 Year", Return: 0.105},
			{Years: 10, Label: "10 Year", Return: 0.108},
			{Years: 25, Label: "25 Year", Return: 0.072},
			{Years: 128, Label: "Since 1896", Return: 0.075},
		},
		DefaultReturn: 0.075,
		Description:   "US blue chip - 30 large industrial companies",
	},
	{
		ID:   "msciWorld",
		Name: "MSCI World",
		Returns: []ReturnPeriod{
			{Years: 5, Label: "5 Year", Return: 0.125},
			{Years: 10, Label: "10 Year", Return: 0.102},
			{Years: 25, Label: "25 Year", Return: 0.072},
			{Years: 54, Label: "Since 1970", Return: 0.085},
		},
		DefaultReturn: 0.085,
		Description:   "Developed markets - ~1,500 companies, 23 countries",
	},
}

// GetStockIndexByID returns the index with the given ID, or nil
func GetStockIndexByID(id string) *StockIndex {
	for i := range StockIndices {
		if StockIndices[i].ID == id {
			return &StockIndices[i]
		}
	}
	return nil
}

// GetReturnForPeriod returns the annualized return for a trailing window,
// falling back to the index's long-term default when the window is unknown.
func GetReturnForPeriod(index *StockIndex, years int) float64 {
	for _, r := range index.Returns {
		if r.Years == years {
			return r.Return
		}
	}
	return index.DefaultReturn
}
