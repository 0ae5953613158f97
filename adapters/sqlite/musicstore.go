package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/artpar/artistdesk/ports"
)

// MusicStore implements ports.MusicStore using SQLite.
type MusicStore struct {
	db *DB
}

// NewMusicStore creates a new SQLite music store.
func NewMusicStore(db *DB) *MusicStore {
	return &MusicStore{db: db}
}

const musicColumns = `id, artist_id, title, album_name, genre, created_at, updated_at`

// Get retrieves a song by ID.
func (s *MusicStore) Get(ctx context.Context, id string) (ports.Music, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+musicColumns+`
		FROM music
		WHERE id = ?
	`, id)

	var m ports.Music
	err := row.Scan(&m.ID, &m.ArtistID, &m.Title, &m.AlbumName, &m.Genre,
		&m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Music{}, ErrNotFound
	}
	if err != nil {
		return ports.Music{}, err
	}
	return m, nil
}

// Create stores a new song.
func (s *MusicStore) Create(ctx context.Context, m ports.Music) error {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO music (`+musicColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.ArtistID, m.Title, m.AlbumName, m.Genre, m.CreatedAt, m.UpdatedAt)
	return err
}

// Update modifies an existing song.
func (s *MusicStore) Update(ctx context.Context, m ports.Music) error {
	m.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE music
		SET title = ?, album_name = ?, genre = ?, updated_at = ?
		WHERE id = ?
	`, m.Title, m.AlbumName, m.Genre, m.UpdatedAt, m.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a song.
func (s *MusicStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM music WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByArtist returns an artist's songs, newest first.
func (s *MusicStore) ListByArtist(ctx context.Context, artistID string, limit, offset int) ([]ports.Music, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+musicColumns+`
		FROM music
		WHERE artist_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, artistID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []ports.Music
	for rows.Next() {
		var m ports.Music
		if err := rows.Scan(&m.ID, &m.ArtistID, &m.Title, &m.AlbumName,
			&m.Genre, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		songs = append(songs, m)
	}
	return songs, rows.Err()
}

// CountByArtist returns the number of songs for an artist.
func (s *MusicStore) CountByArtist(ctx context.Context, artistID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM music WHERE artist_id = ?`, artistID).Scan(&count)
	return count, err
}

// Count returns total song count.
func (s *MusicStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM music`).Scan(&count)
	return count, err
}

// Ensure interface compliance.
var _ ports.MusicStore = (*MusicStore)(nil)
