package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/artpar/artistdesk/app"
	"github.com/artpar/artistdesk/domain/artist"
	"github.com/artpar/artistdesk/ports"
	"github.com/go-chi/chi/v5"
)

// maxImportSize caps uploaded CSV files at 10 MB.
const maxImportSize = 10 << 20

func (h *Handler) ArtistsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r)

	artists, err := h.artists.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		h.serverError(w, err, "failed to list artists")
		return
	}
	total, err := h.artists.Count(ctx)
	if err != nil {
		h.serverError(w, err, "failed to count artists")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderArtistsPage(h.newPageData(r, w, "Artists"), artists, page, total)))
}

func (h *Handler) ArtistNewPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderArtistFormPage(h.newPageData(r, w, "Add Artist"), "Add Artist", "/artists", nil, nil)))
}

func (h *Handler) ArtistCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	data := artistForm(r)
	if errs := artist.Validate(data); len(errs) > 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(h.renderArtistFormPage(h.newPageData(r, w, "Add Artist"), "Add Artist", "/artists", data, errs)))
		return
	}

	a := artistFromForm(data)
	a.ID = h.artistIDs.New()
	if err := h.artists.Create(ctx, a); err != nil {
		h.serverError(w, err, "failed to create artist")
		return
	}

	h.setFlash(w, "success", "Artist created successfully!")
	http.Redirect(w, r, "/artists", http.StatusFound)
}

func (h *Handler) ArtistEditPage(w http.ResponseWriter, r *http.Request) {
	a, err := h.artists.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}

	values := map[string]string{
		"name":               a.Name,
		"dob":                a.DOB,
		"gender":             a.Gender,
		"address":            a.Address,
		"first_release_year": a.FirstReleaseYear,
		"no_of_albums":       a.NoOfAlbums,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderArtistFormPage(h.newPageData(r, w, "Edit Artist"), "Edit Artist", "/artists/"+a.ID, values, nil)))
}

func (h *Handler) ArtistUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.artists.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	data := artistForm(r)
	if errs := artist.Validate(data); len(errs) > 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(h.renderArtistFormPage(h.newPageData(r, w, "Edit Artist"), "Edit Artist", "/artists/"+a.ID, data, errs)))
		return
	}

	a.Name = strings.TrimSpace(data["name"])
	a.DOB = strings.TrimSpace(data["dob"])
	a.Gender = strings.TrimSpace(data["gender"])
	a.Address = strings.TrimSpace(data["address"])
	a.FirstReleaseYear = strings.TrimSpace(data["first_release_year"])
	a.NoOfAlbums = strings.TrimSpace(data["no_of_albums"])
	a.UpdatedAt = time.Now().UTC()

	if err := h.artists.Update(ctx, a); err != nil {
		h.serverError(w, err, "failed to update artist")
		return
	}

	h.setFlash(w, "success", "Artist updated successfully!")
	http.Redirect(w, r, "/artists", http.StatusFound)
}

func (h *Handler) ArtistDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.artists.Delete(r.Context(), id); err != nil {
		h.notFound(w)
		return
	}

	h.logger.Info().Str("artist_id", id).Msg("artist deleted")
	h.setFlash(w, "success", "Artist deleted successfully!")
	http.Redirect(w, r, "/artists", http.StatusFound)
}

// -----------------------------------------------------------------------------
// CSV import / export
// -----------------------------------------------------------------------------

func (h *Handler) ArtistsImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		h.setFlash(w, "error", "Please choose a CSV file to upload.")
		http.Redirect(w, r, "/artists", http.StatusFound)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.setFlash(w, "error", "Please choose a CSV file to upload.")
		http.Redirect(w, r, "/artists", http.StatusFound)
		return
	}
	defer file.Close()

	n, err := h.transfer.ImportArtists(r.Context(), file)
	if err != nil {
		var missing *app.MissingColumnsError
		switch {
		case errors.As(err, &missing):
			h.setFlash(w, "error", "CSV is missing required columns: "+strings.Join(missing.Columns, ", "))
		case errors.Is(err, app.ErrNoValidRecords):
			h.setFlash(w, "error", "No valid records found in the CSV file.")
		default:
			h.logger.Error().Err(err).Msg("artist import failed")
			h.setFlash(w, "error", "Import failed. Please check the file and try again.")
		}
		http.Redirect(w, r, "/artists", http.StatusFound)
		return
	}

	h.setFlash(w, "success", fmt.Sprintf("%d artists created successfully!", n))
	http.Redirect(w, r, "/artists", http.StatusFound)
}

func (h *Handler) ArtistsExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="artists_export.csv"`)

	if err := h.transfer.ExportArtists(r.Context(), w); err != nil {
		h.logger.Error().Err(err).Msg("artist export failed")
	}
}

// -----------------------------------------------------------------------------
// Form helpers
// -----------------------------------------------------------------------------

func artistForm(r *http.Request) map[string]string {
	return map[string]string{
		"name":               r.FormValue("name"),
		"dob":                r.FormValue("dob"),
		"gender":             r.FormValue("gender"),
		"address":            r.FormValue("address"),
		"first_release_year": r.FormValue("first_release_year"),
		"no_of_albums":       r.FormValue("no_of_albums"),
	}
}

func artistFromForm(data map[string]string) ports.Artist {
	now := time.Now().UTC()
	return ports.Artist{
		Name:             strings.TrimSpace(data["name"]),
		DOB:              strings.TrimSpace(data["dob"]),
		Gender:           strings.TrimSpace(data["gender"]),
		Address:          strings.TrimSpace(data["address"]),
		FirstReleaseYear: strings.TrimSpace(data["first_release_year"]),
		NoOfAlbums:       strings.TrimSpace(data["no_of_albums"]),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
