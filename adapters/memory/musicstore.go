package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/artpar/artistdesk/ports"
)

// MusicStore is an in-memory implementation of ports.MusicStore.
type MusicStore struct {
	mu    sync.RWMutex
	songs map[string]ports.Music
	seq   int // insertion sequence for stable ordering
	seqOf map[string]int
}

// NewMusicStore creates a new in-memory music store.
func NewMusicStore() *MusicStore {
	return &MusicStore{
		songs: make(map[string]ports.Music),
		seqOf: make(map[string]int),
	}
}

// Get retrieves a song by ID.
func (s *MusicStore) Get(ctx context.Context, id string) (ports.Music, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.songs[id]
	if !ok {
		return ports.Music{}, ErrNotFound
	}
	return m, nil
}

// Create stores a new song.
func (s *MusicStore) Create(ctx context.Context, m ports.Music) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.songs[m.ID]; exists {
		return ErrDuplicate
	}
	s.seq++
	s.songs[m.ID] = m
	s.seqOf[m.ID] = s.seq
	return nil
}

// Update modifies an existing song.
func (s *MusicStore) Update(ctx context.Context, m ports.Music) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.songs[m.ID]; !ok {
		return ErrNotFound
	}
	s.songs[m.ID] = m
	return nil
}

// Delete removes a song.
func (s *MusicStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.songs[id]; !ok {
		return ErrNotFound
	}
	delete(s.songs, id)
	delete(s.seqOf, id)
	return nil
}

// ListByArtist returns an artist's songs, newest first.
func (s *MusicStore) ListByArtist(ctx context.Context, artistID string, limit, offset int) ([]ports.Music, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var songs []ports.Music
	for _, m := range s.songs {
		if m.ArtistID == artistID {
			songs = append(songs, m)
		}
	}
	sort.Slice(songs, func(i, j int) bool {
		return s.seqOf[songs[i].ID] > s.seqOf[songs[j].ID]
	})

	if offset >= len(songs) {
		return nil, nil
	}
	songs = songs[offset:]
	if limit > 0 && limit < len(songs) {
		songs = songs[:limit]
	}
	return songs, nil
}

// CountByArtist returns the number of songs for an artist.
func (s *MusicStore) CountByArtist(ctx context.Context, artistID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, m := range s.songs {
		if m.ArtistID == artistID {
			count++
		}
	}
	return count, nil
}

// Count returns total song count.
func (s *MusicStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.songs), nil
}

// Ensure interface compliance.
var _ ports.MusicStore = (*MusicStore)(nil)
