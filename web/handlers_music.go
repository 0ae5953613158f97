package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/artpar/artistdesk/domain/music"
	"github.com/artpar/artistdesk/ports"
	"github.com/go-chi/chi/v5"
)

// -----------------------------------------------------------------------------
// Manager view: songs of a chosen artist
// -----------------------------------------------------------------------------

func (h *Handler) SongsPage(w http.ResponseWriter, r *http.Request) {
	owner, err := h.artists.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}
	h.songsPage(w, r, owner, "/artists/"+owner.ID+"/songs", "/artists")
}

func (h *Handler) SongNewPage(w http.ResponseWriter, r *http.Request) {
	owner, err := h.artists.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}
	base := "/artists/" + owner.ID + "/songs"
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderSongFormPage(h.newPageData(r, w, "Add Song"), "Add Song", base, base, nil, nil)))
}

func (h *Handler) SongCreate(w http.ResponseWriter, r *http.Request) {
	owner, err := h.artists.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}
	h.songCreate(w, r, owner, "/artists/"+owner.ID+"/songs")
}

func (h *Handler) SongEditPage(w http.ResponseWriter, r *http.Request) {
	owner, err := h.artists.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}
	h.songEditPage(w, r, owner, "/artists/"+owner.ID+"/songs")
}

func (h *Handler) SongUpdate(w http.ResponseWriter, r *http.Request) {
	owner, err := h.artists.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}
	h.songUpdate(w, r, owner, "/artists/"+owner.ID+"/songs")
}

func (h *Handler) SongDelete(w http.ResponseWriter, r *http.Request) {
	owner, err := h.artists.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w)
		return
	}
	h.songDelete(w, r, owner, "/artists/"+owner.ID+"/songs")
}

// -----------------------------------------------------------------------------
// Artist self-service view
// -----------------------------------------------------------------------------

// myArtist resolves the artist profile linked to the logged-in account.
func (h *Handler) myArtist(w http.ResponseWriter, r *http.Request) (ports.Artist, bool) {
	user := getUser(r.Context())
	owner, err := h.artists.GetByUser(r.Context(), user.ID)
	if err != nil {
		h.renderError(w, http.StatusNotFound, "No artist profile is linked to your account.")
		return ports.Artist{}, false
	}
	return owner, true
}

func (h *Handler) MySongsPage(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.myArtist(w, r)
	if !ok {
		return
	}
	h.songsPage(w, r, owner, "/my-songs", "")
}

func (h *Handler) MySongNewPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.myArtist(w, r); !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderSongFormPage(h.newPageData(r, w, "Add Song"), "Add Song", "/my-songs", "/my-songs", nil, nil)))
}

func (h *Handler) MySongCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.myArtist(w, r)
	if !ok {
		return
	}
	h.songCreate(w, r, owner, "/my-songs")
}

func (h *Handler) MySongEditPage(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.myArtist(w, r)
	if !ok {
		return
	}
	h.songEditPage(w, r, owner, "/my-songs")
}

func (h *Handler) MySongUpdate(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.myArtist(w, r)
	if !ok {
		return
	}
	h.songUpdate(w, r, owner, "/my-songs")
}

func (h *Handler) MySongDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.myArtist(w, r)
	if !ok {
		return
	}
	h.songDelete(w, r, owner, "/my-songs")
}

// -----------------------------------------------------------------------------
// Shared song logic
// -----------------------------------------------------------------------------

func (h *Handler) songsPage(w http.ResponseWriter, r *http.Request, owner ports.Artist, base, backLink string) {
	ctx := r.Context()
	page := parsePage(r)

	songs, err := h.music.ListByArtist(ctx, owner.ID, perPage, (page-1)*perPage)
	if err != nil {
		h.serverError(w, err, "failed to list songs")
		return
	}
	total, err := h.music.CountByArtist(ctx, owner.ID)
	if err != nil {
		h.serverError(w, err, "failed to count songs")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderSongsPage(h.newPageData(r, w, "Songs"), owner, songs, page, total, base, backLink)))
}

func (h *Handler) songCreate(w http.ResponseWriter, r *http.Request, owner ports.Artist, base string) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	data := songForm(r, owner.ID)
	if errs := music.Validate(data); len(errs) > 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(h.renderSongFormPage(h.newPageData(r, w, "Add Song"), "Add Song", base, base, data, errs)))
		return
	}

	now := time.Now().UTC()
	m := ports.Music{
		ID:        h.musicIDs.New(),
		ArtistID:  owner.ID,
		Title:     strings.TrimSpace(data["title"]),
		AlbumName: strings.TrimSpace(data["album_name"]),
		Genre:     strings.TrimSpace(data["genre"]),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.music.Create(r.Context(), m); err != nil {
		h.serverError(w, err, "failed to create song")
		return
	}

	h.setFlash(w, "success", "Song created successfully!")
	http.Redirect(w, r, base, http.StatusFound)
}

// songOf loads a song and checks it belongs to owner.
func (h *Handler) songOf(r *http.Request, owner ports.Artist) (ports.Music, error) {
	m, err := h.music.Get(r.Context(), chi.URLParam(r, "songID"))
	if err != nil {
		return ports.Music{}, err
	}
	if m.ArtistID != owner.ID {
		return ports.Music{}, errMismatchedArtist
	}
	return m, nil
}

var errMismatchedArtist = errors.New("song does not belong to artist")

func (h *Handler) songEditPage(w http.ResponseWriter, r *http.Request, owner ports.Artist, base string) {
	m, err := h.songOf(r, owner)
	if err != nil {
		h.notFound(w)
		return
	}

	values := map[string]string{
		"title":      m.Title,
		"album_name": m.AlbumName,
		"genre":      m.Genre,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.renderSongFormPage(h.newPageData(r, w, "Edit Song"), "Edit Song", base+"/"+m.ID, base, values, nil)))
}

func (h *Handler) songUpdate(w http.ResponseWriter, r *http.Request, owner ports.Artist, base string) {
	m, err := h.songOf(r, owner)
	if err != nil {
		h.notFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	data := songForm(r, owner.ID)
	if errs := music.Validate(data); len(errs) > 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(h.renderSongFormPage(h.newPageData(r, w, "Edit Song"), "Edit Song", base+"/"+m.ID, base, data, errs)))
		return
	}

	m.Title = strings.TrimSpace(data["title"])
	m.AlbumName = strings.TrimSpace(data["album_name"])
	m.Genre = strings.TrimSpace(data["genre"])
	m.UpdatedAt = time.Now().UTC()

	if err := h.music.Update(r.Context(), m); err != nil {
		h.serverError(w, err, "failed to update song")
		return
	}

	h.setFlash(w, "success", "Song updated successfully!")
	http.Redirect(w, r, base, http.StatusFound)
}

func (h *Handler) songDelete(w http.ResponseWriter, r *http.Request, owner ports.Artist, base string) {
	m, err := h.songOf(r, owner)
	if err != nil {
		h.notFound(w)
		return
	}

	if err := h.music.Delete(r.Context(), m.ID); err != nil {
		h.serverError(w, err, "failed to delete song")
		return
	}

	h.setFlash(w, "success", "Song deleted successfully!")
	http.Redirect(w, r, base, http.StatusFound)
}

func songForm(r *http.Request, artistID string) map[string]string {
	return map[string]string{
		"artist_id":  artistID,
		"title":      r.FormValue("title"),
		"album_name": r.FormValue("album_name"),
		"genre":      r.FormValue("genre"),
	}
}
