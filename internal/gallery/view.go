package gallery

import (
	"sort"

	"gallery-app/internal/domain/catalog"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// View is the filter/sort selection driving the displayed subset.
type View struct {
	Category      string // empty = all categories
	AvailableOnly bool
	Sort          catalog.SortOption
}

// Projection is the derived display list plus the counts the gallery header
// shows next to the filters.
type Projection struct {
	Paintings     []catalog.Painting
	TotalCount    int
	FilteredCount int
}

// Project applies the category filter, the availability filter and exactly
// one total order. Sorting is stable: ties keep the input order, so the same
// inputs always produce the same output.
func Project(paintings []catalog.Painting, v View) Projection {
	result := make([]catalog.Painting, 0, len(paintings))
	for _, p := range paintings {
		if v.Category != "" && p.Category != v.Category {
			continue
		}
		if v.AvailableOnly && !p.Available {
			continue
		}
		result = append(result, p)
	}

	switch v.Sort {
	case catalog.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case catalog.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case catalog.SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	case catalog.SortName:
		// collate.Collator is not safe for concurrent use; one per call
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(result, func(i, j int) bool {
			return c.CompareString(result[i].Title, result[j].Title) < 0
		})
	default: // newest
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return Projection{
		Paintings:     result,
		TotalCount:    len(paintings),
		FilteredCount: len(result),
	}
}
