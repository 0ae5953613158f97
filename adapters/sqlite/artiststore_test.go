package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/artpar/artistdesk/adapters/sqlite"
	"github.com/artpar/artistdesk/ports"
)

func testArtist(id, name string) ports.Artist {
	return ports.Artist{
		ID:               id,
		Name:             name,
		DOB:              "1985-03-20",
		Gender:           "m",
		Address:          "44 Ocean Drive",
		FirstReleaseYear: "2004",
		NoOfAlbums:       "7",
	}
}

func TestArtistStore_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewArtistStore(db)
	ctx := context.Background()

	if err := store.Create(ctx, testArtist("art_1", "The Vinyl Club")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, "art_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "The Vinyl Club" || got.FirstReleaseYear != "2004" {
		t.Errorf("got %+v", got)
	}
	if got.UserID != "" {
		t.Errorf("unowned artist should have empty UserID, got %q", got.UserID)
	}

	if _, err := store.Get(ctx, "art_missing"); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestArtistStore_GetByUser(t *testing.T) {
	db := setupTestDB(t)
	users := sqlite.NewUserStore(db)
	store := sqlite.NewArtistStore(db)
	ctx := context.Background()

	if err := users.Create(ctx, testUser("usr_1", "solo@example.com")); err != nil {
		t.Fatalf("create user: %v", err)
	}
	a := testArtist("art_1", "Solo Act")
	a.UserID = "usr_1"
	if err := store.Create(ctx, a); err != nil {
		t.Fatalf("create artist: %v", err)
	}

	got, err := store.GetByUser(ctx, "usr_1")
	if err != nil {
		t.Fatalf("get by user: %v", err)
	}
	if got.ID != "art_1" || got.UserID != "usr_1" {
		t.Errorf("got %+v", got)
	}

	if _, err := store.GetByUser(ctx, "usr_other"); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestArtistStore_CreateBatch(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewArtistStore(db)
	ctx := context.Background()

	batch := []ports.Artist{
		testArtist("art_1", "Alpha"),
		testArtist("art_2", "Beta"),
		testArtist("art_3", "Gamma"),
	}
	if err := store.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("create batch: %v", err)
	}

	count, _ := store.Count(ctx)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestArtistStore_CreateBatchIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewArtistStore(db)
	ctx := context.Background()

	// Second row reuses the first row's primary key, so the whole batch
	// must be rolled back.
	batch := []ports.Artist{
		testArtist("art_1", "Alpha"),
		testArtist("art_1", "Beta"),
	}
	if err := store.CreateBatch(ctx, batch); err == nil {
		t.Fatal("expected batch insert to fail")
	}

	count, _ := store.Count(ctx)
	if count != 0 {
		t.Errorf("count after failed batch = %d, want 0", count)
	}
}

func TestArtistStore_CreateBatchEmpty(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewArtistStore(db)

	if err := store.CreateBatch(context.Background(), nil); err != nil {
		t.Errorf("empty batch should be a no-op, got %v", err)
	}
}

func TestArtistStore_Update(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewArtistStore(db)
	ctx := context.Background()

	store.Create(ctx, testArtist("art_1", "Old Name"))

	a, _ := store.Get(ctx, "art_1")
	a.Name = "New Name"
	a.NoOfAlbums = "9"
	if err := store.Update(ctx, a); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := store.Get(ctx, "art_1")
	if got.Name != "New Name" || got.NoOfAlbums != "9" {
		t.Errorf("update not applied: %+v", got)
	}

	if err := store.Update(ctx, testArtist("art_missing", "X")); !errors.Is(err, sqlite.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestArtistStore_DeleteCascadesToSongs(t *testing.T) {
	db := setupTestDB(t)
	artists := sqlite.NewArtistStore(db)
	songs := sqlite.NewMusicStore(db)
	ctx := context.Background()

	artists.Create(ctx, testArtist("art_1", "Alpha"))
	songs.Create(ctx, ports.Music{ID: "mus_1", ArtistID: "art_1", Title: "One", AlbumName: "A", Genre: "rock"})
	songs.Create(ctx, ports.Music{ID: "mus_2", ArtistID: "art_1", Title: "Two", AlbumName: "A", Genre: "jazz"})

	if err := artists.Delete(ctx, "art_1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	count, _ := songs.CountByArtist(ctx, "art_1")
	if count != 0 {
		t.Errorf("songs remaining after cascade = %d, want 0", count)
	}
}

func TestArtistStore_ListOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	store := sqlite.NewArtistStore(db)
	ctx := context.Background()

	store.Create(ctx, testArtist("art_1", "Zeppelin Tribute"))
	store.Create(ctx, testArtist("art_2", "Abbey Lane"))
	store.Create(ctx, testArtist("art_3", "Midnight Owls"))

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	want := []string{"Abbey Lane", "Midnight Owls", "Zeppelin Tribute"}
	if len(all) != len(want) {
		t.Fatalf("len = %d, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("all[%d].Name = %s, want %s", i, all[i].Name, name)
		}
	}

	page, err := store.List(ctx, 2, 1)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 2 || page[0].Name != "Midnight Owls" {
		t.Errorf("page = %+v", page)
	}
}
