// Package app holds application services that sit between the web layer
// and the stores.
package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/artpar/artistdesk/adapters/metrics"
	"github.com/artpar/artistdesk/ports"
	"github.com/rs/zerolog"
)

// importColumns are the header columns a CSV import must carry.
// Extra columns are ignored; order does not matter.
var importColumns = []string{"name", "dob", "gender", "address", "first_release_year", "no_of_albums"}

// ExportHeader is the column order written by ExportArtists.
var ExportHeader = []string{"name", "dob", "gender", "address", "first_release_year", "no_of_albums"}

// MissingColumnsError reports required CSV columns absent from the header.
type MissingColumnsError struct {
	Columns []string // sorted
}

func (e *MissingColumnsError) Error() string {
	return "missing columns: " + strings.Join(e.Columns, ", ")
}

// ErrNoValidRecords is returned when an import has no usable rows.
var ErrNoValidRecords = errors.New("no valid records found")

// TransferService implements bulk CSV import and export of artists.
type TransferService struct {
	artists ports.ArtistStore
	idGen   ports.IDGenerator
	clock   ports.Clock
	metrics *metrics.Collector
	logger  zerolog.Logger
}

// NewTransferService creates a transfer service.
func NewTransferService(artists ports.ArtistStore, idGen ports.IDGenerator, clk ports.Clock, m *metrics.Collector, logger zerolog.Logger) *TransferService {
	return &TransferService{
		artists: artists,
		idGen:   idGen,
		clock:   clk,
		metrics: m,
		logger:  logger,
	}
}

// ImportArtists reads a CSV stream and inserts the surviving rows as one
// batch. Rows with an empty name are skipped silently. Returns the number
// of artists created.
func (s *TransferService) ImportArtists(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows handled per-cell

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		s.metrics.ImportsTotal.WithLabelValues("bad_header").Inc()
		missing := append([]string(nil), importColumns...)
		sort.Strings(missing)
		return 0, &MissingColumnsError{Columns: missing}
	}
	if err != nil {
		s.metrics.ImportsTotal.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		s.metrics.ImportsTotal.WithLabelValues("bad_header").Inc()
		sort.Strings(missing)
		return 0, &MissingColumnsError{Columns: missing}
	}

	now := s.clock.Now().UTC()
	var batch []ports.Artist
	skipped := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.metrics.ImportsTotal.WithLabelValues("error").Inc()
			return 0, fmt.Errorf("read csv row: %w", err)
		}

		cell := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		name := cell("name")
		if name == "" {
			skipped++
			continue
		}

		batch = append(batch, ports.Artist{
			ID:               s.idGen.New(),
			Name:             name,
			DOB:              cell("dob"),
			Gender:           cell("gender"),
			Address:          cell("address"),
			FirstReleaseYear: cell("first_release_year"),
			NoOfAlbums:       cell("no_of_albums"),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	if len(batch) == 0 {
		s.metrics.ImportsTotal.WithLabelValues("no_records").Inc()
		return 0, ErrNoValidRecords
	}

	if err := s.artists.CreateBatch(ctx, batch); err != nil {
		s.metrics.ImportsTotal.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("store artists: %w", err)
	}

	s.metrics.ImportsTotal.WithLabelValues("ok").Inc()
	s.metrics.ImportRows.WithLabelValues("inserted").Add(float64(len(batch)))
	s.metrics.ImportRows.WithLabelValues("skipped").Add(float64(skipped))
	s.logger.Info().
		Int("inserted", len(batch)).
		Int("skipped", skipped).
		Msg("artist csv import complete")

	return len(batch), nil
}

// ExportArtists writes every artist as CSV, ordered by name ascending.
// The output carries no ID column.
func (s *TransferService) ExportArtists(ctx context.Context, w io.Writer) error {
	artists, err := s.artists.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list artists: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range artists {
		row := []string{a.Name, a.DOB, a.Gender, a.Address, a.FirstReleaseYear, a.NoOfAlbums}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.metrics.ExportsTotal.Inc()
	return nil
}
