// Package ports defines the interfaces between the application core and
// its adapters. Implementations live under adapters/.
package ports

import (
	"context"
	"time"

	"github.com/artpar/artistdesk/domain/auth"
)

// User is a portal account. Role decides which pages the user can reach.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash []byte
	Phone        string
	DOB          string // YYYY-MM-DD as entered
	Gender       string // "m", "f", "o"
	Address      string
	Role         auth.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the user's display name.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Artist is a managed artist record.
type Artist struct {
	ID               string
	UserID           string // owning account for role "artist", empty otherwise
	Name             string
	DOB              string
	Gender           string
	Address          string
	FirstReleaseYear string
	NoOfAlbums       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Music is a song belonging to an artist.
type Music struct {
	ID        string
	ArtistID  string
	Title     string
	AlbumName string
	Genre     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserStore persists users.
type UserStore interface {
	Get(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]User, error)
	Count(ctx context.Context) (int, error)
}

// ArtistStore persists artists.
type ArtistStore interface {
	Get(ctx context.Context, id string) (Artist, error)
	GetByUser(ctx context.Context, userID string) (Artist, error)
	Create(ctx context.Context, a Artist) error
	// CreateBatch inserts all artists in a single transaction.
	// Either every artist is stored or none are.
	CreateBatch(ctx context.Context, artists []Artist) error
	Update(ctx context.Context, a Artist) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]Artist, error)
	// ListAll returns every artist ordered by name ascending.
	ListAll(ctx context.Context) ([]Artist, error)
	Count(ctx context.Context) (int, error)
}

// MusicStore persists songs.
type MusicStore interface {
	Get(ctx context.Context, id string) (Music, error)
	Create(ctx context.Context, m Music) error
	Update(ctx context.Context, m Music) error
	Delete(ctx context.Context, id string) error
	ListByArtist(ctx context.Context, artistID string, limit, offset int) ([]Music, error)
	CountByArtist(ctx context.Context, artistID string) (int, error)
	Count(ctx context.Context) (int, error)
}

// SessionStore persists login sessions.
type SessionStore interface {
	Create(ctx context.Context, s auth.Session) error
	Get(ctx context.Context, id string) (auth.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(plaintext string) ([]byte, error)
	Compare(hash []byte, plaintext string) bool
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	New() string
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}
