// Package dataset is the single boundary where untrusted dashboard data
// becomes a well-formed domain.Dataset.
//
// Anything missing or mistyped is replaced with a zero value (0, "" or an
// empty slice) so that the rest of the program never re-checks shapes.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

// ErrNotJSON is returned when the input is not a JSON document at all.
var ErrNotJSON = errors.New("dataset is not valid JSON")

// Top-level keys of the combined document.
const (
	keyOverview      = "overview"
	keyCountries     = "countries"
	keyRegions       = "regions"
	keyUtlas         = "utlas"
	keyLastUpdatedAt = "lastUpdatedAt"
	keyDisclaimer    = "disclaimer"
)

// Parse converts a combined document into a Dataset.
func Parse(data []byte) (*domain.Dataset, error) {
	if !json.Valid(data) {
		return nil, ErrNotJSON
	}

	ds := &domain.Dataset{}
	root, ok := decodeObject(data)
	if !ok {
		return ds, nil
	}

	if raw, ok := root.get(keyOverview); ok {
		ds.Overview = parseAreaSet(raw)
	}
	if raw, ok := root.get(keyCountries); ok {
		ds.Countries = parseAreaSet(raw)
	}
	if raw, ok := root.get(keyRegions); ok {
		ds.Regions = parseAreaSet(raw)
	}
	if raw, ok := root.get(keyUtlas); ok {
		ds.Utlas = parseAreaSet(raw)
	}
	if raw, ok := root.get(keyLastUpdatedAt); ok {
		ds.LastUpdatedAt = asString(raw)
	}
	if raw, ok := root.get(keyDisclaimer); ok {
		ds.Disclaimer = asString(raw)
	}
	return ds, nil
}

// Parts holds the four documents of the split layout.
type Parts struct {
	Overview  []byte
	Countries []byte
	Regions   []byte
	Utlas     []byte
}

// ParseParts converts the split layout into a Dataset. The overview
// document also carries lastUpdatedAt and disclaimer next to its areas.
func ParseParts(p Parts) (*domain.Dataset, error) {
	named := []struct {
		name string
		data []byte
	}{
		{keyOverview, p.Overview},
		{keyCountries, p.Countries},
		{keyRegions, p.Regions},
		{keyUtlas, p.Utlas},
	}
	for _, n := range named {
		if !json.Valid(n.data) {
			return nil, fmt.Errorf("%s: %w", n.name, ErrNotJSON)
		}
	}

	ds := &domain.Dataset{
		Overview:  parseAreaSet(p.Overview),
		Countries: parseAreaSet(p.Countries),
		Regions:   parseAreaSet(p.Regions),
		Utlas:     parseAreaSet(p.Utlas),
	}
	if overview, ok := decodeObject(p.Overview); ok {
		if raw, ok := overview.get(keyLastUpdatedAt); ok {
			ds.LastUpdatedAt = asString(raw)
		}
		if raw, ok := overview.get(keyDisclaimer); ok {
			ds.Disclaimer = asString(raw)
		}
	}
	return ds, nil
}

// parseAreaSet reads a code -> area mapping. Members whose value is not an
// object (metadata such as lastUpdatedAt) are skipped.
func parseAreaSet(raw json.RawMessage) domain.AreaSet {
	set := domain.AreaSet{ByCode: map[string]domain.Area{}}
	obj, ok := decodeObject(raw)
	if !ok {
		return set
	}
	for _, m := range obj {
		fields, ok := decodeObject(m.Value)
		if !ok {
			continue
		}
		set.Put(parseArea(m.Key, fields))
	}
	return set
}

func parseArea(code string, o object) domain.Area {
	a := domain.Area{Code: code}
	if raw, ok := wrappedValue(o, "name"); ok {
		a.Name = asString(raw)
	}
	if raw, ok := wrappedValue(o, "totalCases"); ok {
		a.TotalCases = asInt(raw)
	}
	if raw, ok := wrappedValue(o, "deaths"); ok {
		a.Deaths = asInt(raw)
	}
	if raw, ok := wrappedValue(o, "newCases"); ok {
		a.NewCases = asInt(raw)
	}
	if raw, ok := wrappedValue(o, "recovered"); ok {
		a.Recovered = asInt(raw)
	}
	a.DailyDeaths = parseSeries(o, "dailyDeaths")
	a.DailyTotalDeaths = parseSeries(o, "dailyTotalDeaths")
	a.DailyConfirmedCases = parseSeries(o, "dailyConfirmedCases")
	a.DailyTotalConfirmedCases = parseSeries(o, "dailyTotalConfirmedCases")
	return a
}

// parseSeries reads a [{date, value}] array. Elements that are not objects
// are dropped; a missing date or value becomes "" or 0.
func parseSeries(o object, key string) []domain.Sample {
	raw, ok := o.get(key)
	if !ok {
		return []domain.Sample{}
	}
	items := decodeArray(raw)
	samples := make([]domain.Sample, 0, len(items))
	for _, item := range items {
		fields, ok := decodeObject(item)
		if !ok {
			continue
		}
		var s domain.Sample
		if v, ok := fields.get("date"); ok {
			s.Date = asString(v)
		}
		if v, ok := fields.get("value"); ok {
			s.Value = asInt(v)
		}
		samples = append(samples, s)
	}
	return samples
}
