package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/artpar/artistdesk/ports"
)

// ArtistStore is an in-memory implementation of ports.ArtistStore.
type ArtistStore struct {
	mu      sync.RWMutex
	artists map[string]ports.Artist

	// FailCreateBatch forces the next CreateBatch to fail (for testing).
	FailCreateBatch bool
}

// NewArtistStore creates a new in-memory artist store.
func NewArtistStore() *ArtistStore {
	return &ArtistStore{artists: make(map[string]ports.Artist)}
}

// Get retrieves an artist by ID.
func (s *ArtistStore) Get(ctx context.Context, id string) (ports.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artists[id]
	if !ok {
		return ports.Artist{}, ErrNotFound
	}
	return a, nil
}

// GetByUser retrieves the artist owned by a user account.
func (s *ArtistStore) GetByUser(ctx context.Context, userID string) (ports.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.artists {
		if a.UserID != "" && a.UserID == userID {
			return a, nil
		}
	}
	return ports.Artist{}, ErrNotFound
}

// Create stores a new artist.
func (s *ArtistStore) Create(ctx context.Context, a ports.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.artists[a.ID]; exists {
		return ErrDuplicate
	}
	s.artists[a.ID] = a
	return nil
}

// CreateBatch inserts all artists or none.
func (s *ArtistStore) CreateBatch(ctx context.Context, artists []ports.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCreateBatch {
		return ErrDuplicate
	}
	for _, a := range artists {
		if _, exists := s.artists[a.ID]; exists {
			return ErrDuplicate
		}
	}
	for _, a := range artists {
		s.artists[a.ID] = a
	}
	return nil
}

// Update modifies an existing artist.
func (s *ArtistStore) Update(ctx context.Context, a ports.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.artists[a.ID]; !ok {
		return ErrNotFound
	}
	s.artists[a.ID] = a
	return nil
}

// Delete removes an artist.
func (s *ArtistStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.artists[id]; !ok {
		return ErrNotFound
	}
	delete(s.artists, id)
	return nil
}

// List returns artists ordered by name with pagination.
func (s *ArtistStore) List(ctx context.Context, limit, offset int) ([]ports.Artist, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// ListAll returns every artist ordered by name ascending.
func (s *ArtistStore) ListAll(ctx context.Context) ([]ports.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]ports.Artist, 0, len(s.artists))
	for _, a := range s.artists {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// Count returns total artist count.
func (s *ArtistStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.artists), nil
}

// Ensure interface compliance.
var _ ports.ArtistStore = (*ArtistStore)(nil)
