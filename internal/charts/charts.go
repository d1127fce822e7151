// Package charts defines the dashboard's four time-series charts.
package charts

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
)

// Kind is how a series is drawn.
type Kind int

const (
	Line Kind = iota
	Bar
)

// Chart is one titled series, in ascending date order.
type Chart struct {
	ID        string
	Title     string
	ValueName string
	Kind      Kind
	Samples   []domain.Sample
}

// Max returns the largest value in the chart, or 0.
func (c Chart) Max() int64 {
	var max int64
	for _, s := range c.Samples {
		if s.Value > max {
			max = s.Value
		}
	}
	return max
}

// Values returns the sample values in order.
func (c Chart) Values() []int64 {
	out := make([]int64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Value
	}
	return out
}

// FromDataset builds the four charts: England cases (cumulative, daily)
// and UK deaths (cumulative, daily).
func FromDataset(ds *domain.Dataset) []Chart {
	england := ds.England()
	uk := ds.UnitedKingdom()

	return []Chart{
		{
			ID:        "total-cases",
			Title:     "Total number of lab-confirmed cases in England by specimen date",
			ValueName: "Total cases",
			Kind:      Line,
			Samples:   uilogic.SortedByDate(england.DailyTotalConfirmedCases),
		},
		{
			ID:        "daily-cases",
			Title:     "Daily number of lab-confirmed cases in England by specimen date",
			ValueName: "Daily cases",
			Kind:      Bar,
			Samples:   uilogic.SortedByDate(england.DailyConfirmedCases),
		},
		{
			ID:        "total-deaths",
			Title:     "Total number of COVID-19 associated UK deaths in hospital by date reported",
			ValueName: "Total deaths",
			Kind:      Line,
			Samples:   uilogic.SortedByDate(uk.DailyTotalDeaths),
		},
		{
			ID:        "daily-deaths",
			Title:     "Daily number of COVID-19 associated UK deaths in hospital by date reported",
			ValueName: "Daily deaths",
			Kind:      Bar,
			Samples:   uilogic.SortedByDate(uk.DailyDeaths),
		},
	}
}

// Downsample reduces values to at most n points by taking the maximum of
// each bucket, so spikes survive narrow terminals.
func Downsample(values []int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	if len(values) <= n {
		return append([]int64(nil), values...)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		lo := i * len(values) / n
		hi := (i + 1) * len(values) / n
		max := values[lo]
		for _, v := range values[lo:hi] {
			if v > max {
				max = v
			}
		}
		out[i] = max
	}
	return out
}
