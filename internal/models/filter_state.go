package models

// SortKey selects the order of the project list.
type SortKey string

const (
	SortByRecency    SortKey = "pushed_at"
	SortByPopularity SortKey = "stargazers_count"
	SortByName       SortKey = "name"
)

// SortKeys lists the sort keys in the order the sort dropdown shows them.
var SortKeys = []SortKey{SortByRecency, SortByPopularity, SortByName}

// Label is the human readable name of the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortByRecency:
		return "Recently updated"
	case SortByPopularity:
		return "Most stars"
	case SortByName:
		return "Name (A–Z)"
	default:
		return string(k)
	}
}

// FilterState is the user's current search, language and sort selection.
type FilterState struct {
	Query    string  `json:"query"`
	Language string  `json:"language"`
	Sort     SortKey `json:"sort"`
}

// DefaultFilterState is the state before any user input.
func DefaultFilterState() FilterState {
	return FilterState{Sort: SortByRecency}
}

// ParseSortKey returns the sort key named s. An empty s is the default key.
func ParseSortKey(s string) (SortKey, bool) {
	if s == "" {
		return SortByRecency, true
	}
	for _, key := range SortKeys {
		if string(key) == s {
			return key, true
		}
	}
	return "", false
}
