package solar

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes how a named quantity is distributed over a year.
type Summary struct {
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Highest      float64 `json:"highest"`
	Percentile75 float64 `json:"percentile_75"`
	Mean         float64 `json:"mean"`
	Percentile25 float64 `json:"percentile_25"`
	Lowest       float64 `json:"lowest"`
	HighestOnDay int     `json:"highest_on_day"`
	LowestOnDay  int     `json:"lowest_on_day"`
}

// AnnualSeries evaluates b on every day of the year.
func AnnualSeries(b Bounds, totalDays, anchorDay int) []float64 {
	series := make([]float64, totalDays)
	for day := range series {
		series[day] = b.ForDay(day, totalDays, anchorDay)
	}
	return series
}

// Summarize reduces a quantity's annual series to the figures of the sun
// information table.
func Summarize(b Bounds, totalDays, anchorDay int) Summary {
	series := AnnualSeries(b, totalDays, anchorDay)
	if len(series) == 0 {
		return Summary{Name: b.Name, Unit: b.Unit}
	}

	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	return Summary{
		Name:         b.Name,
		Unit:         b.Unit,
		Highest:      floats.Max(series),
		Percentile75: stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Mean:         stat.Mean(series, nil),
		Percentile25: stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Lowest:       floats.Min(series),
		HighestOnDay: floats.MaxIdx(series),
		LowestOnDay:  floats.MinIdx(series),
	}
}

// SummarizeAll summarizes every quantity in Quantities.
func SummarizeAll(totalDays, anchorDay int) []Summary {
	out := make([]Summary, 0, len(Quantities))
	for _, q := range Quantities {
		out = append(out, Summarize(q, totalDays, anchorDay))
	}
	return out
}
