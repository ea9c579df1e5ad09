package paintings

import (
	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/pricing"
)

// ---------- requests

type CreatePaintingRequest struct {
	Title       string   `json:"title" binding:"required"`
	Artist      string   `json:"artist" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	Available   *bool    `json:"available"`
	Dimensions  string   `json:"dimensions"`
	Medium      string   `json:"medium"`
	Year        int      `json:"year"`
}

func (r CreatePaintingRequest) toNewPainting() catalog.NewPainting {
	available := true // the admin form defaults new paintings to for-sale
	if r.Available != nil {
		available = *r.Available
	}
	return catalog.NewPainting{
		Title:       r.Title,
		Artist:      r.Artist,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   available,
		Dimensions:  r.Dimensions,
		Medium:      r.Medium,
		Year:        r.Year,
	}
}

// UpdatePaintingRequest is a partial update: absent fields stay untouched,
// fields sent as empty values are written as empty.
type UpdatePaintingRequest struct {
	Title       *string  `json:"title"`
	Artist      *string  `json:"artist"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Available   *bool    `json:"available"`
	Dimensions  *string  `json:"dimensions"`
	Medium      *string  `json:"medium"`
	Year        *int     `json:"year"`
}

func (r UpdatePaintingRequest) toPatch() catalog.PaintingPatch {
	return catalog.PaintingPatch{
		Title:       r.Title,
		Artist:      r.Artist,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
		Dimensions:  r.Dimensions,
		Medium:      r.Medium,
		Year:        r.Year,
	}
}

// ---------- responses

type PaintingDTO struct {
	catalog.Painting
	PriceLabel string `json:"price_label"`
}

type GalleryResponse struct {
	Paintings     []PaintingDTO `json:"paintings"`
	TotalCount    int           `json:"total_count"`
	FilteredCount int           `json:"filtered_count"`
	Loading       bool          `json:"loading"`
}

func toDTOs(items []catalog.Painting, prices *pricing.Formatter) []PaintingDTO {
	out := make([]PaintingDTO, 0, len(items))
	for _, p := range items {
		out = append(out, PaintingDTO{Painting: p, PriceLabel: prices.Format(p.Price)})
	}
	return out
}
