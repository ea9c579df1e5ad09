package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gallery-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRemote = errors.New("remote table unavailable")

// fakeRepo is an in-memory stand-in for the remote table. Newest rows first,
// like the real select-all query.
type fakeRepo struct {
	mu         sync.Mutex
	items      []catalog.Painting
	nextID     int
	clock      time.Time
	failAll    bool
	updates    int
	lastFields map[string]interface{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeRepo) FetchAll(ctx context.Context) ([]catalog.Painting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errRemote
	}
	out := make([]catalog.Painting, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeRepo) Insert(ctx context.Context, p catalog.NewPainting) (catalog.Painting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return catalog.Painting{}, errRemote
	}

	f.nextID++
	f.clock = f.clock.Add(time.Minute)
	created := catalog.Painting{
		ID:          fmt.Sprintf("p-%d", f.nextID),
		Title:       p.Title,
		Artist:      p.Artist,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Available:   p.Available,
		Dimensions:  p.Dimensions,
		Medium:      p.Medium,
		Year:        p.Year,
		CreatedAt:   f.clock,
	}
	f.items = append([]catalog.Painting{created}, f.items...)
	return created, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errRemote
	}
	f.updates++
	f.lastFields = fields

	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "title":
				f.items[i].Title = v.(string)
			case "artist":
				f.items[i].Artist = v.(string)
			case "description":
				f.items[i].Description = v.(string)
			case "price":
				f.items[i].Price = v.(float64)
			case "category":
				f.items[i].Category = v.(string)
			case "image_url":
				f.items[i].ImageURL = v.(string)
			case "available":
				f.items[i].Available = v.(bool)
			case "dimensions":
				f.items[i].Dimensions = v.(string)
			case "medium":
				f.items[i].Medium = v.(string)
			case "year":
				f.items[i].Year = v.(int)
			}
		}
		return nil
	}
	return ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errRemote
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestStore(t *testing.T) (*Store, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	store := NewStore(repo, nil)
	return store, repo
}

func TestStoreStartsLoading(t *testing.T) {
	store, _ := newTestStore(t)
	assert.True(t, store.Loading())

	require.NoError(t, store.Refresh(context.Background()))
	assert.False(t, store.Loading())
}

func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, catalog.NewPainting{Title: "Sunset", Artist: "A", Price: 100, Category: "Landscape"})
	require.NoError(t, err)
	before := store.List()
	require.Len(t, before, 1)

	repo.failAll = true
	err = store.Refresh(ctx)
	require.Error(t, err)

	assert.Equal(t, before, store.List(), "failed refresh leaves the snapshot untouched")
	assert.False(t, store.Loading(), "loading drops even on failure")
}

func TestCreatePopulatesIDAndCreatedAt(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Refresh(ctx))
	before := len(store.List())

	created, err := store.Create(ctx, catalog.NewPainting{
		Title:    "Sunset",
		Artist:   "A. Painter",
		Price:    100,
		Category: "Landscape",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	after := store.List()
	require.Len(t, after, before+1)

	matches := 0
	for _, p := range after {
		if p.Title == "Sunset" && p.Artist == "A. Painter" && p.Price == 100 {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestCreateAppliesFormDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, catalog.NewPainting{
		Title: "Sunset", Artist: "A", Price: 100, Category: "Landscape", Available: true,
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.PlaceholderImageURL, created.ImageURL)
	assert.Equal(t, time.Now().Year(), created.Year)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	store, repo := newTestStore(t)

	_, err := store.Create(context.Background(), catalog.NewPainting{
		Title: "X", Artist: "Y", Price: 1, Category: "Graffiti",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownCategory)
	assert.Empty(t, repo.items, "no remote call is issued for invalid input")
}

func TestCreateFailurePropagates(t *testing.T) {
	store, repo := newTestStore(t)
	require.NoError(t, store.Refresh(context.Background()))
	repo.failAll = true

	_, err := store.Create(context.Background(), catalog.NewPainting{
		Title: "X", Artist: "Y", Price: 1, Category: "Modern",
	})
	assert.ErrorIs(t, err, errRemote)
	assert.Empty(t, store.List(), "no optimistic insert")
}

func TestUpdateSendsOnlyPresentFields(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, catalog.NewPainting{
		Title: "Sunset", Artist: "A. Painter", Description: "dusk", Price: 100,
		Category: "Landscape", ImageURL: "https://example.com/s.jpg",
		Available: true, Dimensions: `24" x 36"`, Medium: "Oil on Canvas", Year: 2020,
	})
	require.NoError(t, err)

	available := false
	require.NoError(t, store.Update(ctx, created.ID, catalog.PaintingPatch{Available: &available}))

	require.Len(t, repo.lastFields, 1)
	assert.Equal(t, false, repo.lastFields["available"])

	got, ok := store.Find(created.ID)
	require.True(t, ok)
	assert.False(t, got.Available)
	assert.Equal(t, "Sunset", got.Title)
	assert.Equal(t, "A. Painter", got.Artist)
	assert.Equal(t, float64(100), got.Price)
	assert.Equal(t, "Landscape", got.Category)
	assert.Equal(t, "https://example.com/s.jpg", got.ImageURL)
	assert.Equal(t, `24" x 36"`, got.Dimensions)
	assert.Equal(t, "Oil on Canvas", got.Medium)
	assert.Equal(t, 2020, got.Year)
}

func TestUpdateEmptyPatchSkipsRemote(t *testing.T) {
	store, repo := newTestStore(t)
	require.NoError(t, store.Update(context.Background(), "whatever", catalog.PaintingPatch{}))
	assert.Zero(t, repo.updates)
}

func TestUpdateNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	title := "New"
	err := store.Update(context.Background(), "missing", catalog.PaintingPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, catalog.NewPainting{Title: "X", Artist: "Y", Price: 1, Category: "Modern"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, ok := store.Find(created.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, store.Delete(ctx, created.ID), ErrNotFound)
}

func TestFindAbsentID(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Refresh(context.Background()))

	_, ok := store.Find("never-loaded")
	assert.False(t, ok)
}

func TestListReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	_, err := store.Create(ctx, catalog.NewPainting{Title: "X", Artist: "Y", Price: 1, Category: "Modern"})
	require.NoError(t, err)

	list := store.List()
	list[0].Title = "mutated"

	fresh := store.List()
	assert.Equal(t, "X", fresh[0].Title)
}
