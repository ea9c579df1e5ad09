package gallery

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"gallery-app/internal/domain/catalog"
)

// Store owns the in-memory painting collection and mediates every read and
// write against the remote table. Reads are served from the last good
// snapshot; every successful mutation triggers a full re-fetch so the
// snapshot always reflects committed server state.
type Store struct {
	repo   Repository
	notify Notifier

	mu        sync.RWMutex
	paintings []catalog.Painting
	loading   bool
}

// NewStore builds a Store in the loading state. Call Refresh once to perform
// the initial load.
func NewStore(repo Repository, notify Notifier) *Store {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &Store{
		repo:      repo,
		notify:    notify,
		paintings: []catalog.Painting{},
		loading:   true,
	}
}

// List returns a copy of the current snapshot. No remote call.
func (s *Store) List() []catalog.Painting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Painting, len(s.paintings))
	copy(out, s.paintings)
	return out
}

// Loading reports whether the initial fetch is still in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Find looks the id up in the snapshot only. ok is false for ids that were
// deleted or never loaded.
func (s *Store) Find(id string) (catalog.Painting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.paintings {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Painting{}, false
}

// Refresh replaces the snapshot with the table's current rows. On failure the
// previous snapshot is kept and the error is reported through the notifier;
// the loading flag drops either way.
func (s *Store) Refresh(ctx context.Context) error {
	rows, err := s.repo.FetchAll(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.paintings = rows
	}
	s.mu.Unlock()

	if err != nil {
		log.Println("Error fetching paintings:", err)
		s.notify.Error("Failed to load paintings")
		return err
	}
	return nil
}

// Create inserts a new painting and re-fetches the collection. The insert
// error propagates to the caller; nothing is added locally first. Blank
// image and year fall back to the placeholder and the current year, the way
// the admin form fills them.
func (s *Store) Create(ctx context.Context, p catalog.NewPainting) (catalog.Painting, error) {
	if !catalog.ValidCategory(p.Category) {
		return catalog.Painting{}, fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, p.Category)
	}
	if p.Price < 0 {
		return catalog.Painting{}, fmt.Errorf("price must not be negative")
	}
	if p.ImageURL == "" {
		p.ImageURL = catalog.PlaceholderImageURL
	}
	if p.Year == 0 {
		p.Year = time.Now().Year()
	}

	created, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.notify.Error("Failed to add painting")
		return catalog.Painting{}, err
	}

	s.Refresh(ctx)
	s.notify.Success("Painting added successfully!")
	return created, nil
}

// Update sends only the fields present in the patch, then re-fetches. The
// remote error propagates; no optimistic patch is applied.
func (s *Store) Update(ctx context.Context, id string, patch catalog.PaintingPatch) error {
	if patch.Category != nil && !catalog.ValidCategory(*patch.Category) {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, *patch.Category)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		s.notify.Error("Failed to update painting")
		return err
	}

	s.Refresh(ctx)
	s.notify.Success("Painting updated successfully!")
	return nil
}

// Delete removes the row by id, then re-fetches. Hard delete, no tombstone.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notify.Error("Failed to delete painting")
		return err
	}

	s.Refresh(ctx)
	s.notify.Success("Painting deleted successfully!")
	return nil
}
