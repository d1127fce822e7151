package selection

// Kind is the kind of area a selection refers to
type Kind int

const (
	None Kind = iota
	Country
	Region
	LocalAuthority
)

func (k Kind) String() string {
	switch k {
	case Country:
		return "country"
	case Region:
		return "region"
	case LocalAuthority:
		return "localAuthority"
	default:
		return "none"
	}
}

// Selection is the single selected area across every view. The zero value
// selects nothing.
type Selection struct {
	Kind Kind
	ID   string
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s.Kind == None
}

// Event types
type SelectionChangedEvent struct {
	Old Selection
	New Selection
}
