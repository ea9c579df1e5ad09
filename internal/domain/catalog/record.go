package catalog

import "time"

// PaintingRecord is the gorm row for the paintings table. Columns the admin
// may leave blank are nullable so rows written by other clients still load.
type PaintingRecord struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string `gorm:"not null"`
	Artist      string `gorm:"not null"`
	Description *string
	Price       float64 `gorm:"not null;default:0"`
	Category    string  `gorm:"not null;index"`
	ImageURL    *string `gorm:"column:image_url"`
	Available   bool    `gorm:"not null;default:true"`
	Dimensions  *string
	Medium      *string
	Year        *int
	CreatedAt   time.Time `gorm:"index"`
}

func (PaintingRecord) TableName() string { return "paintings" }

// ToPainting collapses nullable columns: empty strings for missing text and
// the current year for a missing year.
func (r PaintingRecord) ToPainting() Painting {
	year := time.Now().Year()
	if r.Year != nil {
		year = *r.Year
	}
	return Painting{
		ID:          r.ID,
		Title:       r.Title,
		Artist:      r.Artist,
		Description: strOrEmpty(r.Description),
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    strOrEmpty(r.ImageURL),
		Available:   r.Available,
		Dimensions:  strOrEmpty(r.Dimensions),
		Medium:      strOrEmpty(r.Medium),
		Year:        year,
		CreatedAt:   r.CreatedAt,
	}
}

// RecordFromNew builds the row for an insert; id and created_at are left for
// the table to assign.
func RecordFromNew(p NewPainting) PaintingRecord {
	return PaintingRecord{
		Title:       p.Title,
		Artist:      p.Artist,
		Description: &p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    &p.ImageURL,
		Available:   p.Available,
		Dimensions:  &p.Dimensions,
		Medium:      &p.Medium,
		Year:        &p.Year,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
