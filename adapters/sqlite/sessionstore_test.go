package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artpar/artistdesk/adapters/sqlite"
	"github.com/artpar/artistdesk/domain/auth"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewSessionStore(db)
	ctx := context.Background()

	sess := auth.GenerateSession("usr_1", "one@example.com", "10.0.0.1", "test-agent", time.Hour)
	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "usr_1" || got.Email != "one@example.com" {
		t.Errorf("got %+v", got)
	}
	if got.IPAddress != "10.0.0.1" || got.UserAgent != "test-agent" {
		t.Errorf("client info not stored: %+v", got)
	}

	if _, err := store.Get(ctx, "sess_missing"); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewSessionStore(db)
	ctx := context.Background()

	sess := auth.GenerateSession("usr_1", "one@example.com", "", "", time.Hour)
	store.Create(ctx, sess)

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, sess.ID); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestSessionStore_DeleteByUser(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewSessionStore(db)
	ctx := context.Background()

	a := auth.GenerateSession("usr_1", "one@example.com", "", "", time.Hour)
	b := auth.GenerateSession("usr_1", "one@example.com", "", "", time.Hour)
	other := auth.GenerateSession("usr_2", "two@example.com", "", "", time.Hour)
	store.Create(ctx, a)
	store.Create(ctx, b)
	store.Create(ctx, other)

	if err := store.DeleteByUser(ctx, "usr_1"); err != nil {
		t.Fatalf("delete by user: %v", err)
	}

	if _, err := store.Get(ctx, a.ID); !errors.Is(err, sqlite.ErrNotFound) {
		t.Error("session a should be gone")
	}
	if _, err := store.Get(ctx, b.ID); !errors.Is(err, sqlite.ErrNotFound) {
		t.Error("session b should be gone")
	}
	if _, err := store.Get(ctx, other.ID); err != nil {
		t.Errorf("other user's session should survive: %v", err)
	}
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewSessionStore(db)
	ctx := context.Background()

	live := auth.GenerateSession("usr_1", "one@example.com", "", "", time.Hour)
	dead1 := auth.GenerateSession("usr_1", "one@example.com", "", "", -time.Minute)
	dead2 := auth.GenerateSession("usr_2", "two@example.com", "", "", -time.Hour)
	store.Create(ctx, live)
	store.Create(ctx, dead1)
	store.Create(ctx, dead2)

	n, err := store.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d sessions, want 2", n)
	}

	if _, err := store.Get(ctx, live.ID); err != nil {
		t.Errorf("live session should survive: %v", err)
	}
}
