package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/artpar/artistdesk/adapters/sqlite"
	"github.com/artpar/artistdesk/domain/auth"
	"github.com/artpar/artistdesk/ports"
)

// setupTestDB creates a migrated database backed by a temp file.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testUser(id, email string) ports.User {
	return ports.User{
		ID:           id,
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: []byte("$2a$10$fakehash"),
		Phone:        "9800000001",
		DOB:          "1990-01-15",
		Gender:       "f",
		Address:      "12 Hill Road",
		Role:         auth.RoleArtistManager,
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestUserStore_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewUserStore(db)
	ctx := context.Background()

	u := testUser("usr_1", "one@example.com")
	if err := store.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, "usr_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "one@example.com" || got.Role != auth.RoleArtistManager {
		t.Errorf("got %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps should be set on create")
	}

	byEmail, err := store.GetByEmail(ctx, "one@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != "usr_1" {
		t.Errorf("GetByEmail returned %s", byEmail.ID)
	}
}

func TestUserStore_GetNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewUserStore(db)

	if _, err := store.Get(context.Background(), "usr_missing"); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetByEmail(context.Background(), "none@example.com"); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewUserStore(db)
	ctx := context.Background()

	if err := store.Create(ctx, testUser("usr_1", "same@example.com")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := store.Create(ctx, testUser("usr_2", "same@example.com"))
	if !errors.Is(err, sqlite.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserStore_Update(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewUserStore(db)
	ctx := context.Background()

	u := testUser("usr_1", "one@example.com")
	if err := store.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	u.FirstName = "Renamed"
	u.Phone = "9811111111"
	if err := store.Update(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := store.Get(ctx, "usr_1")
	if got.FirstName != "Renamed" || got.Phone != "9811111111" {
		t.Errorf("update not applied: %+v", got)
	}

	missing := testUser("usr_missing", "x@example.com")
	if err := store.Update(ctx, missing); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStore_UpdateToTakenEmail(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewUserStore(db)
	ctx := context.Background()

	store.Create(ctx, testUser("usr_1", "one@example.com"))
	store.Create(ctx, testUser("usr_2", "two@example.com"))

	u, _ := store.Get(ctx, "usr_2")
	u.Email = "one@example.com"
	if err := store.Update(ctx, u); !errors.Is(err, sqlite.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserStore_Delete(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewUserStore(db)
	ctx := context.Background()

	store.Create(ctx, testUser("usr_1", "one@example.com"))

	if err := store.Delete(ctx, "usr_1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "usr_1"); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "usr_1"); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestUserStore_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewUserStore(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u := testUser("usr_"+itoa(i), "user"+itoa(i)+"@example.com")
		if err := store.Create(ctx, u); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	users, err := store.List(ctx, 3, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("page 1 len = %d, want 3", len(users))
	}

	users, err = store.List(ctx, 3, 3)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("page 2 len = %d, want 2", len(users))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
