package catalog

import (
	"errors"
	"time"
)

// Painting is the catalog item as the rest of the application sees it:
// nullable table columns are already collapsed to their defaults by the time
// a Painting exists.
type Painting struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Available   bool      `json:"available"`
	Dimensions  string    `json:"dimensions"`
	Medium      string    `json:"medium"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlaceholderImageURL is shown for paintings saved without an image.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=800&h=1000&fit=crop"

// ErrUnknownCategory rejects writes whose category is not in Categories.
var ErrUnknownCategory = errors.New("unknown category")

var Categories = []string{
	"Abstract",
	"Landscape",
	"Portrait",
	"Still Life",
	"Contemporary",
	"Classical",
	"Modern",
	"Impressionist",
}

// ValidCategory reports whether c is one of the fixed set. Matching is
// case-sensitive.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortName      SortOption = "name"
)

// ParseSortOption maps the query-string value to a SortOption.
func ParseSortOption(s string) (SortOption, bool) {
	switch SortOption(s) {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortName:
		return SortOption(s), true
	}
	return SortNewest, false
}

// NewPainting carries the admin-supplied fields of a painting about to be
// inserted. ID and CreatedAt are assigned by the table.
type NewPainting struct {
	Title       string
	Artist      string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Available   bool
	Dimensions  string
	Medium      string
	Year        int
}

// PaintingPatch is a partial update: nil means "leave the column alone",
// a non-nil pointer to the zero value means "set it to empty". Only fields
// present in the patch ever reach the table.
type PaintingPatch struct {
	Title       *string
	Artist      *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
	Available   *bool
	Dimensions  *string
	Medium      *string
	Year        *int
}

// Fields folds the set pointers into the column map sent to the table.
func (p PaintingPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Artist != nil {
		fields["artist"] = *p.Artist
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.Available != nil {
		fields["available"] = *p.Available
	}
	if p.Dimensions != nil {
		fields["dimensions"] = *p.Dimensions
	}
	if p.Medium != nil {
		fields["medium"] = *p.Medium
	}
	if p.Year != nil {
		fields["year"] = *p.Year
	}
	return fields
}
