package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/artpar/artistdesk/adapters/clock"
	"github.com/artpar/artistdesk/adapters/idgen"
	"github.com/artpar/artistdesk/adapters/memory"
	"github.com/artpar/artistdesk/adapters/metrics"
	"github.com/artpar/artistdesk/app"
	"github.com/artpar/artistdesk/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var importTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTransferService(t *testing.T) (*app.TransferService, *memory.ArtistStore) {
	t.Helper()
	store := memory.NewArtistStore()
	svc := app.NewTransferService(
		store,
		idgen.NewSequential("art_"),
		clock.NewFake(importTime),
		metrics.NewWithRegistry(prometheus.NewRegistry()),
		zerolog.Nop(),
	)
	return svc, store
}

const validCSV = `name,dob,gender,address,first_release_year,no_of_albums
Abbey Lane,1985-03-20,f,44 Ocean Drive,2004,7
Midnight Owls,1990-11-02,m,9 Elm Street,2012,3
`

func TestImportArtists(t *testing.T) {
	svc, store := newTransferService(t)

	n, err := svc.ImportArtists(context.Background(), strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("inserted = %d, want 2", n)
	}

	all, _ := store.ListAll(context.Background())
	if len(all) != 2 {
		t.Fatalf("stored = %d, want 2", len(all))
	}
	if all[0].Name != "Abbey Lane" || all[0].FirstReleaseYear != "2004" {
		t.Errorf("first artist = %+v", all[0])
	}
	if !all[0].CreatedAt.Equal(importTime) {
		t.Errorf("created at = %v, want %v", all[0].CreatedAt, importTime)
	}
}

func TestImportArtists_ColumnOrderIrrelevant(t *testing.T) {
	svc, store := newTransferService(t)

	csv := `no_of_albums,name,address,gender,dob,first_release_year,extra
7,Abbey Lane,44 Ocean Drive,f,1985-03-20,2004,ignored
`
	n, err := svc.ImportArtists(context.Background(), strings.NewReader(csv))
	if err != nil || n != 1 {
		t.Fatalf("import: n=%d err=%v", n, err)
	}

	all, _ := store.ListAll(context.Background())
	if all[0].NoOfAlbums != "7" || all[0].Address != "44 Ocean Drive" {
		t.Errorf("columns mismapped: %+v", all[0])
	}
}

func TestImportArtists_MissingColumns(t *testing.T) {
	svc, _ := newTransferService(t)

	csv := "name,dob,gender\nAbbey Lane,1985-03-20,f\n"
	_, err := svc.ImportArtists(context.Background(), strings.NewReader(csv))

	var missing *app.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	want := []string{"address", "first_release_year", "no_of_albums"}
	if len(missing.Columns) != len(want) {
		t.Fatalf("columns = %v, want %v", missing.Columns, want)
	}
	for i, col := range want {
		if missing.Columns[i] != col {
			t.Errorf("columns[%d] = %s, want %s", i, missing.Columns[i], col)
		}
	}
}

func TestImportArtists_EmptyFile(t *testing.T) {
	svc, _ := newTransferService(t)

	_, err := svc.ImportArtists(context.Background(), strings.NewReader(""))
	var missing *app.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError for empty file, got %v", err)
	}
	if len(missing.Columns) != 6 {
		t.Errorf("columns = %v, want all six", missing.Columns)
	}
}

func TestImportArtists_SkipsRowsWithoutName(t *testing.T) {
	svc, store := newTransferService(t)

	csv := `name,dob,gender,address,first_release_year,no_of_albums
Abbey Lane,1985-03-20,f,44 Ocean Drive,2004,7
,1990-11-02,m,9 Elm Street,2012,3
   ,1991-01-01,o,1 Low Road,2015,2
Midnight Owls,1990-11-02,m,9 Elm Street,2012,3
`
	n, err := svc.ImportArtists(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("inserted = %d, want 2", n)
	}

	count, _ := store.Count(context.Background())
	if count != 2 {
		t.Errorf("stored = %d, want 2", count)
	}
}

func TestImportArtists_NoValidRecords(t *testing.T) {
	svc, _ := newTransferService(t)

	tests := []struct {
		name string
		csv  string
	}{
		{"header only", "name,dob,gender,address,first_release_year,no_of_albums\n"},
		{"all names empty", "name,dob,gender,address,first_release_year,no_of_albums\n,1990-01-01,m,somewhere,2000,1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ImportArtists(context.Background(), strings.NewReader(tt.csv))
			if !errors.Is(err, app.ErrNoValidRecords) {
				t.Errorf("expected ErrNoValidRecords, got %v", err)
			}
		})
	}
}

func TestImportArtists_StoreFailureInsertsNothing(t *testing.T) {
	svc, store := newTransferService(t)
	store.FailCreateBatch = true

	_, err := svc.ImportArtists(context.Background(), strings.NewReader(validCSV))
	if err == nil {
		t.Fatal("expected error from store")
	}
	count, _ := store.Count(context.Background())
	if count != 0 {
		t.Errorf("stored = %d, want 0", count)
	}
}

func TestExportArtists(t *testing.T) {
	svc, store := newTransferService(t)
	ctx := context.Background()

	store.Create(ctx, ports.Artist{ID: "art_1", Name: "Zeppelin Tribute", DOB: "1970-01-01", Gender: "m", Address: "1 High St", FirstReleaseYear: "1999", NoOfAlbums: "12"})
	store.Create(ctx, ports.Artist{ID: "art_2", Name: "Abbey Lane", DOB: "1985-03-20", Gender: "f", Address: "44 Ocean Drive", FirstReleaseYear: "2004", NoOfAlbums: "7"})

	var buf bytes.Buffer
	if err := svc.ExportArtists(ctx, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "name,dob,gender,address,first_release_year,no_of_albums" {
		t.Errorf("header = %q", lines[0])
	}
	// Ordered by name, no ID column anywhere.
	if !strings.HasPrefix(lines[1], "Abbey Lane,") {
		t.Errorf("first row = %q, want Abbey Lane first", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Zeppelin Tribute,") {
		t.Errorf("second row = %q", lines[2])
	}
	if strings.Contains(buf.String(), "art_") {
		t.Error("export must not contain artist IDs")
	}
}

func TestExportArtists_EmptyStore(t *testing.T) {
	svc, _ := newTransferService(t)

	var buf bytes.Buffer
	if err := svc.ExportArtists(context.Background(), &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "name,dob,gender,address,first_release_year,no_of_albums" {
		t.Errorf("empty export should be header only, got %q", buf.String())
	}
}

func TestImportThenExportRoundTrip(t *testing.T) {
	svc, _ := newTransferService(t)
	ctx := context.Background()

	if _, err := svc.ImportArtists(ctx, strings.NewReader(validCSV)); err != nil {
		t.Fatalf("import: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.ExportArtists(ctx, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if buf.String() != validCSV {
		t.Errorf("round trip mismatch:\ngot:\n%swant:\n%s", buf.String(), validCSV)
	}
}
