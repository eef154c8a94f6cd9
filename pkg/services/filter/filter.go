package filter

import (
	"sort"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
)

// Apply produces the view of ds matching sel. Per dimension, an empty
// selection set applies no constraint; non-empty sets keep member values
// only. Dimensions compose with AND. Never fails: selection values absent
// from the dataset simply match nothing.
func Apply(ds *domain.Dataset, sel domain.FilterSelection) domain.FilteredView {
	return domain.FilteredView{Records: filterRecords(ds.Records, sel)}
}

// Refine re-filters an existing view. Refining by the selection that produced
// the view changes nothing.
func Refine(view domain.FilteredView, sel domain.FilterSelection) domain.FilteredView {
	return domain.FilteredView{Records: filterRecords(view.Records, sel)}
}

func filterRecords(records []domain.Record, sel domain.FilterSelection) []domain.Record {
	regions := toSet(sel.Regions)
	categories := toSet(sel.Categories)
	subCategories := toSet(sel.SubCategories)

	matched := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if !matches(regions, r.Region) {
			continue
		}
		if !matches(categories, r.Category) {
			continue
		}
		if !matches(subCategories, r.SubCategory) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// Options lists the distinct non-empty values per dimension, sorted
// ascending. Computed from the full Dataset so the presenter always offers
// the complete choice set.
func Options(ds *domain.Dataset) domain.FilterOptions {
	regions := make(map[string]struct{})
	categories := make(map[string]struct{})
	subCategories := make(map[string]struct{})

	for _, r := range ds.Records {
		if r.Region != "" {
			regions[r.Region] = struct{}{}
		}
		if r.Category != "" {
			categories[r.Category] = struct{}{}
		}
		if r.SubCategory != "" {
			subCategories[r.SubCategory] = struct{}{}
		}
	}

	return domain.FilterOptions{
		Regions:       sortedKeys(regions),
		Categories:    sortedKeys(categories),
		SubCategories: sortedKeys(subCategories),
	}
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func matches(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
