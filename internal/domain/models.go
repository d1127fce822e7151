package domain

// Well-known area codes used by the headline figures and charts.
const (
	UnitedKingdomCode = "K02000001"
	EnglandCode       = "E92000001"
)

// Sample is one dated point of a daily series.
type Sample struct {
	Date  string // as published, usually ISO-8601 without a zone
	Value int64
}

// Area represents a country, region or upper tier local authority
type Area struct {
	Code       string
	Name       string
	TotalCases int64
	Deaths     int64
	NewCases   int64
	Recovered  int64

	DailyDeaths              []Sample
	DailyTotalDeaths         []Sample
	DailyConfirmedCases      []Sample
	DailyTotalConfirmedCases []Sample
}

// AreaSet is a keyed collection of areas that remembers the order the
// codes appeared in the source document.
type AreaSet struct {
	Codes  []string
	ByCode map[string]Area
}

// NewAreaSet builds an AreaSet from areas in the given order.
// Later duplicates replace earlier ones but keep the first position.
func NewAreaSet(areas ...Area) AreaSet {
	set := AreaSet{ByCode: make(map[string]Area, len(areas))}
	for _, a := range areas {
		set.Put(a)
	}
	return set
}

// Put adds or replaces an area.
func (s *AreaSet) Put(a Area) {
	if s.ByCode == nil {
		s.ByCode = make(map[string]Area)
	}
	if _, exists := s.ByCode[a.Code]; !exists {
		s.Codes = append(s.Codes, a.Code)
	}
	s.ByCode[a.Code] = a
}

// Get returns the area for code and whether it exists.
func (s AreaSet) Get(code string) (Area, bool) {
	a, ok := s.ByCode[code]
	return a, ok
}

// Len returns the number of areas.
func (s AreaSet) Len() int {
	return len(s.Codes)
}

// Dataset is the complete, already validated input of the dashboard.
type Dataset struct {
	Overview      AreaSet
	Countries     AreaSet
	Regions       AreaSet
	Utlas         AreaSet
	LastUpdatedAt string
	Disclaimer    string
}

// UnitedKingdom returns the UK overview record, or a zero Area.
func (d *Dataset) UnitedKingdom() Area {
	if d == nil {
		return Area{}
	}
	a, _ := d.Overview.Get(UnitedKingdomCode)
	return a
}

// England returns the England country record, or a zero Area.
func (d *Dataset) England() Area {
	if d == nil {
		return Area{}
	}
	a, _ := d.Countries.Get(EnglandCode)
	return a
}

// Empty reports whether the dataset carries no areas at all.
func (d *Dataset) Empty() bool {
	return d == nil || d.Overview.Len()+d.Countries.Len()+d.Regions.Len()+d.Utlas.Len() == 0
}
