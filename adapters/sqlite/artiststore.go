package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/artpar/artistdesk/ports"
)

// ArtistStore implements ports.ArtistStore using SQLite.
type ArtistStore struct {
	db *DB
}

// NewArtistStore creates a new SQLite artist store.
func NewArtistStore(db *DB) *ArtistStore {
	return &ArtistStore{db: db}
}

const artistColumns = `id, user_id, name, dob, gender, address, first_release_year, no_of_albums, created_at, updated_at`

// Get retrieves an artist by ID.
func (s *ArtistStore) Get(ctx context.Context, id string) (ports.Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE id = ?
	`, id)
	return scanArtist(row)
}

// GetByUser retrieves the artist record owned by a user account.
func (s *ArtistStore) GetByUser(ctx context.Context, userID string) (ports.Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE user_id = ?
	`, userID)
	return scanArtist(row)
}

// Create stores a new artist.
func (s *ArtistStore) Create(ctx context.Context, a ports.Artist) error {
	a = withArtistTimes(a)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO artists (`+artistColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, nullString(a.UserID), a.Name, a.DOB, a.Gender, a.Address,
		a.FirstReleaseYear, a.NoOfAlbums, a.CreatedAt, a.UpdatedAt)
	return err
}

// CreateBatch inserts all artists inside a single transaction. If any
// insert fails nothing is stored.
func (s *ArtistStore) CreateBatch(ctx context.Context, artists []ports.Artist) error {
	if len(artists) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO artists (`+artistColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range artists {
		a = withArtistTimes(a)
		if _, err := stmt.ExecContext(ctx, a.ID, nullString(a.UserID), a.Name,
			a.DOB, a.Gender, a.Address, a.FirstReleaseYear, a.NoOfAlbums,
			a.CreatedAt, a.UpdatedAt); err != nil {
			return fmt.Errorf("insert artist %q: %w", a.Name, err)
		}
	}

	return tx.Commit()
}

// Update modifies an existing artist.
func (s *ArtistStore) Update(ctx context.Context, a ports.Artist) error {
	a.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE artists
		SET name = ?, dob = ?, gender = ?, address = ?,
		    first_release_year = ?, no_of_albums = ?, updated_at = ?
		WHERE id = ?
	`, a.Name, a.DOB, a.Gender, a.Address, a.FirstReleaseYear, a.NoOfAlbums,
		a.UpdatedAt, a.ID)
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

// Delete removes an artist. Song rows cascade via the schema.
func (s *ArtistStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
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

// List returns artists ordered by name ascending with pagination.
func (s *ArtistStore) List(ctx context.Context, limit, offset int) ([]ports.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		ORDER BY name ASC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArtists(rows)
}

// ListAll returns every artist ordered by name ascending.
func (s *ArtistStore) ListAll(ctx context.Context) ([]ports.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArtists(rows)
}

// Count returns total artist count.
func (s *ArtistStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&count)
	return count, err
}

func withArtistTimes(a ports.Artist) ports.Artist {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	return a
}

func collectArtists(rows *sql.Rows) ([]ports.Artist, error) {
	var artists []ports.Artist
	for rows.Next() {
		var a ports.Artist
		var userID sql.NullString
		if err := rows.Scan(&a.ID, &userID, &a.Name, &a.DOB, &a.Gender,
			&a.Address, &a.FirstReleaseYear, &a.NoOfAlbums, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			a.UserID = userID.String
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func scanArtist(row *sql.Row) (ports.Artist, error) {
	var a ports.Artist
	var userID sql.NullString

	err := row.Scan(&a.ID, &userID, &a.Name, &a.DOB, &a.Gender,
		&a.Address, &a.FirstReleaseYear, &a.NoOfAlbums, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Artist{}, ErrNotFound
	}
	if err != nil {
		return ports.Artist{}, err
	}

	if userID.Valid {
		a.UserID = userID.String
	}
	return a, nil
}

// Ensure interface compliance.
var _ ports.ArtistStore = (*ArtistStore)(nil)
