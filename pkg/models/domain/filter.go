package domain

// FilterSelection holds the allowed values per dimension. An empty set means
// no restriction for that dimension, not "exclude all".
type FilterSelection struct {
	Regions       []string
	Categories    []string
	SubCategories []string
}

func (s FilterSelection) IsEmpty() bool {
	return len(s.Regions) == 0 && len(s.Categories) == 0 && len(s.SubCategories) == 0
}

// FilterOptions lists the distinct selectable values per dimension, sorted
// ascending. Computed from the full Dataset, not a FilteredView.
type FilterOptions struct {
	Regions       []string
	Categories    []string
	SubCategories []string
}

// FilteredView is the subsequence of a Dataset matching a FilterSelection.
// Derived per request and never persisted.
type FilteredView struct {
	Records []Record
}
