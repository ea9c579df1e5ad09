package gallery

import (
	"context"
	"errors"

	"gallery-app/internal/domain/catalog"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id matches no row in the table.
var ErrNotFound = errors.New("painting not found")

// Repository is the remote-table port: the four operations the storefront
// needs from whatever holds the painting rows.
type Repository interface {
	// FetchAll returns every row ordered by creation time descending.
	FetchAll(ctx context.Context) ([]catalog.Painting, error)
	Insert(ctx context.Context, p catalog.NewPainting) (catalog.Painting, error)
	// Update writes only the given columns to the row with the given id.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository wraps the gorm handle in the Repository port.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FetchAll(ctx context.Context) ([]catalog.Painting, error) {
	var rows []catalog.PaintingRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	paintings := make([]catalog.Painting, 0, len(rows))
	for _, row := range rows {
		paintings = append(paintings, row.ToPainting())
	}
	return paintings, nil
}

func (r *gormRepository) Insert(ctx context.Context, p catalog.NewPainting) (catalog.Painting, error) {
	rec := catalog.RecordFromNew(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return catalog.Painting{}, err
	}
	return rec.ToPainting(), nil
}

func (r *gormRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&catalog.PaintingRecord{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&catalog.PaintingRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
