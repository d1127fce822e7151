package logic

import (
	"sort"
	"strings"
	"time"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

// epochMinimum is the date assigned to samples whose date cannot be read.
var epochMinimum = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

// Layouts tried, in order, after a missing zone designator has been
// supplied.
var sampleLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02Z07:00",
}

// ParseUTC reads an ISO-8601 timestamp. A timestamp without an explicit
// zone is taken to be UTC.
func ParseUTC(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}

	if strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "Z"
	}
	if !strings.HasSuffix(s, "Z") {
		s += "Z"
	}
	for _, layout := range sampleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// sampleTime is the sort key of a sample.
func sampleTime(s domain.Sample) time.Time {
	if t, ok := ParseUTC(s.Date); ok {
		return t
	}
	return epochMinimum
}

// LatestValue returns the value of the most recent sample, or 0 for an
// empty series. Samples sharing the latest date resolve to the first one
// in the series.
func LatestValue(series []domain.Sample) int64 {
	if len(series) == 0 {
		return 0
	}
	best := series[0]
	bestAt := sampleTime(best)
	for _, s := range series[1:] {
		if at := sampleTime(s); at.After(bestAt) {
			best, bestAt = s, at
		}
	}
	return best.Value
}

// LatestDailyDeaths is the headline "latest daily deaths" figure.
func LatestDailyDeaths(ds *domain.Dataset) int64 {
	return LatestValue(ds.UnitedKingdom().DailyDeaths)
}

// SortedByDate returns a copy of series in ascending date order, keeping
// the original order for equal dates.
func SortedByDate(series []domain.Sample) []domain.Sample {
	type dated struct {
		sample domain.Sample
		at     time.Time
	}
	pairs := make([]dated, len(series))
	for i, s := range series {
		pairs[i] = dated{sample: s, at: sampleTime(s)}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].at.Before(pairs[j].at)
	})

	out := make([]domain.Sample, len(pairs))
	for i, p := range pairs {
		out[i] = p.sample
	}
	return out
}
