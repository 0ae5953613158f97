package web

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/artpar/artistdesk/domain/artist"
	"github.com/artpar/artistdesk/domain/auth"
	"github.com/artpar/artistdesk/domain/music"
	"github.com/artpar/artistdesk/ports"
)

// Portal HTML templates - simple inline templates rendered per page.

func esc(s string) string { return html.EscapeString(s) }

// alertHTML renders the flash message banner, if any.
func alertHTML(flash *FlashMessage) string {
	if flash == nil {
		return ""
	}
	return fmt.Sprintf(`<div class="alert alert-%s">%s</div>`, esc(flash.Type), esc(flash.Message))
}

// fieldError renders the inline error for a single form field.
func fieldError(errors map[string]string, field string) string {
	if msg, ok := errors[field]; ok {
		return fmt.Sprintf(`<small class="field-error">%s</small>`, esc(msg))
	}
	return ""
}

func roleOptions(selected auth.Role) string {
	var b strings.Builder
	for _, role := range auth.Roles {
		sel := ""
		if role == selected {
			sel = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, esc(string(role)), sel, esc(role.Label()))
	}
	return b.String()
}

func genreOptions(selected string) string {
	var b strings.Builder
	for _, g := range music.Genres {
		sel := ""
		if g.Code == selected {
			sel = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, esc(g.Code), sel, esc(g.Label))
	}
	return b.String()
}

func genderOptions(selected string) string {
	var b strings.Builder
	for _, g := range artist.Genders {
		sel := ""
		if g.Code == selected {
			sel = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, esc(g.Code), sel, esc(g.Label))
	}
	return b.String()
}

func (h *Handler) page(title, nav, body string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - %s</title>
    <style>%s</style>
</head>
<body>
    %s
    <main class="main-content">
%s
    </main>
</body>
</html>`, esc(title), esc(h.appName), appCSS, nav, body)
}

func (h *Handler) authPage(title, body string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - %s</title>
    <style>%s</style>
</head>
<body>
    <div class="auth-container">
        <div class="auth-box">
            <div class="auth-header">
                <h1>%s</h1>
                <p>%s</p>
            </div>
%s
        </div>
    </div>
</body>
</html>`, esc(title), esc(h.appName), appCSS, esc(h.appName), esc(title), body)
}

func (h *Handler) renderNav(user *ports.User) string {
	links := ""
	switch user.Role {
	case auth.RoleSuperAdmin:
		links = `<a href="/dashboard">Dashboard</a>
            <a href="/users">Users</a>
            <a href="/artists">Artists</a>`
	case auth.RoleArtistManager:
		links = `<a href="/dashboard">Dashboard</a>
            <a href="/artists">Artists</a>`
	case auth.RoleArtist:
		links = `<a href="/dashboard">Dashboard</a>
            <a href="/my-songs">My Songs</a>`
	}

	return fmt.Sprintf(`
    <nav class="portal-nav">
        <div class="nav-brand">
            <a href="/dashboard">%s</a>
        </div>
        <div class="nav-links">
            %s
        </div>
        <div class="nav-user">
            <span>%s (%s)</span>
            <form method="POST" action="/logout" style="display:inline">
                <button type="submit" class="btn btn-sm">Logout</button>
            </form>
        </div>
    </nav>
`, esc(h.appName), links, esc(user.FullName()), esc(user.Role.Label()))
}

// -----------------------------------------------------------------------------
// Auth pages
// -----------------------------------------------------------------------------

func (h *Handler) renderLoginPage(email, next string, errors map[string]string, flash *FlashMessage) string {
	body := fmt.Sprintf(`            %s
            <form method="POST" action="/login" class="auth-form">
                <input type="hidden" name="next" value="%s">
                <div class="form-group">
                    <label for="email">Email</label>
                    <input type="email" id="email" name="email" value="%s" autofocus>
                    %s
                </div>
                <div class="form-group">
                    <label for="password">Password</label>
                    <input type="password" id="password" name="password">
                    %s
                </div>
                <button type="submit" class="btn btn-primary btn-block">Log In</button>
            </form>
            <div class="auth-footer">
                <p>Don't have an account? <a href="/register">Register</a></p>
            </div>`,
		alertHTML(flash),
		esc(next),
		esc(email),
		fieldError(errors, "email"),
		fieldError(errors, "password"),
	)
	return h.authPage("Log In", body)
}

func (h *Handler) renderRegisterPage(values, errors map[string]string, flash *FlashMessage) string {
	val := func(field string) string { return esc(values[field]) }

	body := fmt.Sprintf(`            %s
            <form method="POST" action="/register" class="auth-form">
                <div class="form-group">
                    <label for="first_name">First Name</label>
                    <input type="text" id="first_name" name="first_name" value="%s" autofocus>
                    %s
                </div>
                <div class="form-group">
                    <label for="last_name">Last Name</label>
                    <input type="text" id="last_name" name="last_name" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="email">Email</label>
                    <input type="email" id="email" name="email" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="password">Password</label>
                    <input type="password" id="password" name="password">
                    %s
                </div>
                <div class="form-group">
                    <label for="c_password">Confirm Password</label>
                    <input type="password" id="c_password" name="c_password">
                    %s
                </div>
                <div class="form-group">
                    <label for="phone">Phone</label>
                    <input type="text" id="phone" name="phone" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="dob">Date of Birth</label>
                    <input type="date" id="dob" name="dob" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="gender">Gender</label>
                    <select id="gender" name="gender">
                        <option value="">Select gender</option>
                        %s
                    </select>
                    %s
                </div>
                <div class="form-group">
                    <label for="address">Address</label>
                    <input type="text" id="address" name="address" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="role">Role</label>
                    <select id="role" name="role">
                        <option value="">Select role</option>
                        %s
                    </select>
                    %s
                </div>
                <button type="submit" class="btn btn-primary btn-block">Create Account</button>
            </form>
            <div class="auth-footer">
                <p>Already have an account? <a href="/login">Log in</a></p>
            </div>`,
		alertHTML(flash),
		val("first_name"), fieldError(errors, "first_name"),
		val("last_name"), fieldError(errors, "last_name"),
		val("email"), fieldError(errors, "email"),
		fieldError(errors, "password"),
		fieldError(errors, "c_password"),
		val("phone"), fieldError(errors, "phone"),
		val("dob"), fieldError(errors, "dob"),
		genderOptions(values["gender"]), fieldError(errors, "gender"),
		val("address"), fieldError(errors, "address"),
		roleOptions(auth.Role(values["role"])), fieldError(errors, "role"),
	)
	return h.authPage("Register", body)
}

// -----------------------------------------------------------------------------
// Dashboard
// -----------------------------------------------------------------------------

type dashboardStats struct {
	UserCount   int
	ArtistCount int
	SongCount   int
}

func (h *Handler) renderDashboardPage(data PageData, stats dashboardStats) string {
	cards := ""
	switch data.User.Role {
	case auth.RoleSuperAdmin:
		cards = fmt.Sprintf(`
            <div class="stat-card">
                <div class="stat-value">%d</div>
                <div class="stat-label">Users</div>
            </div>
            <div class="stat-card">
                <div class="stat-value">%d</div>
                <div class="stat-label">Artists</div>
            </div>
            <div class="stat-card">
                <div class="stat-value">%d</div>
                <div class="stat-label">Songs</div>
            </div>`, stats.UserCount, stats.ArtistCount, stats.SongCount)
	case auth.RoleArtistManager:
		cards = fmt.Sprintf(`
            <div class="stat-card">
                <div class="stat-value">%d</div>
                <div class="stat-label">Artists</div>
            </div>
            <div class="stat-card">
                <div class="stat-value">%d</div>
                <div class="stat-label">Songs</div>
            </div>`, stats.ArtistCount, stats.SongCount)
	case auth.RoleArtist:
		cards = fmt.Sprintf(`
            <div class="stat-card">
                <div class="stat-value">%d</div>
                <div class="stat-label">My Songs</div>
            </div>`, stats.SongCount)
	}

	body := fmt.Sprintf(`        <div class="page-header">
            <h1>Dashboard</h1>
            <p>Welcome back, %s!</p>
        </div>
        %s
        <div class="stats-grid">%s
        </div>`, esc(data.User.FirstName), alertHTML(data.Flash), cards)

	return h.page("Dashboard", h.renderNav(data.User), body)
}

// -----------------------------------------------------------------------------
// Users
// -----------------------------------------------------------------------------

func (h *Handler) renderUsersPage(data PageData, users []ports.User, page, total int) string {
	rows := ""
	for _, u := range users {
		rows += fmt.Sprintf(`
                    <tr>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td class="actions">
                            <a href="/users/%s/edit" class="btn btn-sm">Edit</a>
                            <form method="POST" action="/users/%s/delete" style="display:inline" onsubmit="return confirm('Delete this user?')">
                                <button type="submit" class="btn btn-sm btn-danger">Delete</button>
                            </form>
                        </td>
                    </tr>`, esc(u.FullName()), esc(u.Email), esc(u.Phone), esc(u.Role.Label()), esc(u.ID), esc(u.ID))
	}
	if rows == "" {
		rows = `<tr><td colspan="5" class="text-center">No users yet</td></tr>`
	}

	body := fmt.Sprintf(`        <div class="page-header">
            <h1>Users</h1>
            <a href="/users/new" class="btn btn-primary">Add User</a>
        </div>
        %s
        <div class="card">
            <table class="table">
                <thead>
                    <tr>
                        <th>Name</th>
                        <th>Email</th>
                        <th>Phone</th>
                        <th>Role</th>
                        <th>Actions</th>
                    </tr>
                </thead>
                <tbody>%s
                </tbody>
            </table>
            %s
        </div>`, alertHTML(data.Flash), rows, renderPagination("/users", page, total))

	return h.page("Users", h.renderNav(data.User), body)
}

func (h *Handler) renderUserFormPage(data PageData, action string, values, errors map[string]string, isEdit bool) string {
	title := "Add User"
	passwordFields := fmt.Sprintf(`
                <div class="form-group">
                    <label for="password">Password</label>
                    <input type="password" id="password" name="password">
                    %s
                </div>
                <div class="form-group">
                    <label for="c_password">Confirm Password</label>
                    <input type="password" id="c_password" name="c_password">
                    %s
                </div>`, fieldError(errors, "password"), fieldError(errors, "c_password"))
	roleField := fmt.Sprintf(`
                <div class="form-group">
                    <label for="role">Role</label>
                    <select id="role" name="role">
                        <option value="">Select role</option>
                        %s
                    </select>
                    %s
                </div>`, roleOptions(auth.Role(values["role"])), fieldError(errors, "role"))
	if isEdit {
		title = "Edit User"
		passwordFields = ""
		roleField = ""
	}

	val := func(field string) string { return esc(values[field]) }

	body := fmt.Sprintf(`        <div class="page-header">
            <h1>%s</h1>
            <a href="/users" class="btn">Back</a>
        </div>
        <div class="card">
            <form method="POST" action="%s">
                <div class="form-group">
                    <label for="first_name">First Name</label>
                    <input type="text" id="first_name" name="first_name" value="%s" autofocus>
                    %s
                </div>
                <div class="form-group">
                    <label for="last_name">Last Name</label>
                    <input type="text" id="last_name" name="last_name" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="email">Email</label>
                    <input type="email" id="email" name="email" value="%s">
                    %s
                </div>%s
                <div class="form-group">
                    <label for="phone">Phone</label>
                    <input type="text" id="phone" name="phone" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="dob">Date of Birth</label>
                    <input type="date" id="dob" name="dob" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="gender">Gender</label>
                    <select id="gender" name="gender">
                        <option value="">Select gender</option>
                        %s
                    </select>
                    %s
                </div>
                <div class="form-group">
                    <label for="address">Address</label>
                    <input type="text" id="address" name="address" value="%s">
                    %s
                </div>%s
                <button type="submit" class="btn btn-primary">Save</button>
            </form>
        </div>`,
		title, esc(action),
		val("first_name"), fieldError(errors, "first_name"),
		val("last_name"), fieldError(errors, "last_name"),
		val("email"), fieldError(errors, "email"),
		passwordFields,
		val("phone"), fieldError(errors, "phone"),
		val("dob"), fieldError(errors, "dob"),
		genderOptions(values["gender"]), fieldError(errors, "gender"),
		val("address"), fieldError(errors, "address"),
		roleField,
	)

	return h.page(title, h.renderNav(data.User), body)
}

// -----------------------------------------------------------------------------
// Artists
// -----------------------------------------------------------------------------

func (h *Handler) renderArtistsPage(data PageData, artists []ports.Artist, page, total int) string {
	rows := ""
	for _, a := range artists {
		rows += fmt.Sprintf(`
                    <tr>
                        <td><a href="/artists/%s/songs">%s</a></td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td class="actions">
                            <a href="/artists/%s/songs" class="btn btn-sm">Songs</a>
                            <a href="/artists/%s/edit" class="btn btn-sm">Edit</a>
                            <form method="POST" action="/artists/%s/delete" style="display:inline" onsubmit="return confirm('Delete this artist and all their songs?')">
                                <button type="submit" class="btn btn-sm btn-danger">Delete</button>
                            </form>
                        </td>
                    </tr>`,
			esc(a.ID), esc(a.Name), esc(a.DOB), esc(artist.GenderLabel(a.Gender)),
			esc(a.FirstReleaseYear), esc(a.NoOfAlbums), esc(a.ID), esc(a.ID), esc(a.ID))
	}
	if rows == "" {
		rows = `<tr><td colspan="6" class="text-center">No artists yet</td></tr>`
	}

	body := fmt.Sprintf(`        <div class="page-header">
            <h1>Artists</h1>
            <div class="header-actions">
                <a href="/artists/export" class="btn">Export CSV</a>
                <a href="/artists/new" class="btn btn-primary">Add Artist</a>
            </div>
        </div>
        %s
        <div class="card">
            <h2>Import from CSV</h2>
            <form method="POST" action="/artists/import" enctype="multipart/form-data" class="import-form">
                <input type="file" name="file" accept=".csv">
                <button type="submit" class="btn btn-primary">Import</button>
            </form>
            <small>Required columns: name, dob, gender, address, first_release_year, no_of_albums</small>
        </div>
        <div class="card">
            <table class="table">
                <thead>
                    <tr>
                        <th>Name</th>
                        <th>Date of Birth</th>
                        <th>Gender</th>
                        <th>First Release</th>
                        <th>Albums</th>
                        <th>Actions</th>
                    </tr>
                </thead>
                <tbody>%s
                </tbody>
            </table>
            %s
        </div>`, alertHTML(data.Flash), rows, renderPagination("/artists", page, total))

	return h.page("Artists", h.renderNav(data.User), body)
}

func (h *Handler) renderArtistFormPage(data PageData, title, action string, values, errors map[string]string) string {
	val := func(field string) string { return esc(values[field]) }

	body := fmt.Sprintf(`        <div class="page-header">
            <h1>%s</h1>
            <a href="/artists" class="btn">Back</a>
        </div>
        <div class="card">
            <form method="POST" action="%s">
                <div class="form-group">
                    <label for="name">Name</label>
                    <input type="text" id="name" name="name" value="%s" autofocus>
                    %s
                </div>
                <div class="form-group">
                    <label for="dob">Date of Birth</label>
                    <input type="date" id="dob" name="dob" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="gender">Gender</label>
                    <select id="gender" name="gender">
                        <option value="">Select gender</option>
                        %s
                    </select>
                    %s
                </div>
                <div class="form-group">
                    <label for="address">Address</label>
                    <input type="text" id="address" name="address" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="first_release_year">First Release Year</label>
                    <input type="text" id="first_release_year" name="first_release_year" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="no_of_albums">Number of Albums</label>
                    <input type="text" id="no_of_albums" name="no_of_albums" value="%s">
                    %s
                </div>
                <button type="submit" class="btn btn-primary">Save</button>
            </form>
        </div>`,
		esc(title), esc(action),
		val("name"), fieldError(errors, "name"),
		val("dob"), fieldError(errors, "dob"),
		genderOptions(values["gender"]), fieldError(errors, "gender"),
		val("address"), fieldError(errors, "address"),
		val("first_release_year"), fieldError(errors, "first_release_year"),
		val("no_of_albums"), fieldError(errors, "no_of_albums"),
	)

	return h.page(title, h.renderNav(data.User), body)
}

// -----------------------------------------------------------------------------
// Songs
// -----------------------------------------------------------------------------

func (h *Handler) renderSongsPage(data PageData, owner ports.Artist, songs []ports.Music, page, total int, base, backLink string) string {
	rows := ""
	for _, m := range songs {
		rows += fmt.Sprintf(`
                    <tr>
                        <td>%s</td>
                        <td>%s</td>
                        <td>%s</td>
                        <td class="actions">
                            <a href="%s/%s/edit" class="btn btn-sm">Edit</a>
                            <form method="POST" action="%s/%s/delete" style="display:inline" onsubmit="return confirm('Delete this song?')">
                                <button type="submit" class="btn btn-sm btn-danger">Delete</button>
                            </form>
                        </td>
                    </tr>`, esc(m.Title), esc(m.AlbumName), esc(music.GenreLabel(m.Genre)), base, esc(m.ID), base, esc(m.ID))
	}
	if rows == "" {
		rows = `<tr><td colspan="4" class="text-center">No songs yet</td></tr>`
	}

	back := ""
	if backLink != "" {
		back = fmt.Sprintf(`<a href="%s" class="btn">Back</a>`, backLink)
	}

	body := fmt.Sprintf(`        <div class="page-header">
            <h1>Songs - %s</h1>
            <div class="header-actions">
                %s
                <a href="%s/new" class="btn btn-primary">Add Song</a>
            </div>
        </div>
        %s
        <div class="card">
            <table class="table">
                <thead>
                    <tr>
                        <th>Title</th>
                        <th>Album</th>
                        <th>Genre</th>
                        <th>Actions</th>
                    </tr>
                </thead>
                <tbody>%s
                </tbody>
            </table>
            %s
        </div>`, esc(owner.Name), back, base, alertHTML(data.Flash), rows, renderPagination(base, page, total))

	return h.page("Songs", h.renderNav(data.User), body)
}

func (h *Handler) renderSongFormPage(data PageData, title, action, backLink string, values, errors map[string]string) string {
	val := func(field string) string { return esc(values[field]) }

	body := fmt.Sprintf(`        <div class="page-header">
            <h1>%s</h1>
            <a href="%s" class="btn">Back</a>
        </div>
        <div class="card">
            <form method="POST" action="%s">
                <div class="form-group">
                    <label for="title">Title</label>
                    <input type="text" id="title" name="title" value="%s" autofocus>
                    %s
                </div>
                <div class="form-group">
                    <label for="album_name">Album Name</label>
                    <input type="text" id="album_name" name="album_name" value="%s">
                    %s
                </div>
                <div class="form-group">
                    <label for="genre">Genre</label>
                    <select id="genre" name="genre">
                        <option value="">Select genre</option>
                        %s
                    </select>
                    %s
                </div>
                <button type="submit" class="btn btn-primary">Save</button>
            </form>
        </div>`,
		esc(title), backLink, esc(action),
		val("title"), fieldError(errors, "title"),
		val("album_name"), fieldError(errors, "album_name"),
		genreOptions(values["genre"]), fieldError(errors, "genre"),
	)

	return h.page(title, h.renderNav(data.User), body)
}

// -----------------------------------------------------------------------------
// Shared chrome
// -----------------------------------------------------------------------------

// renderPagination renders prev/next links for a paginated list.
func renderPagination(base string, page, total int) string {
	pages := (total + perPage - 1) / perPage
	if pages <= 1 {
		return ""
	}

	prev := ""
	if page > 1 {
		prev = fmt.Sprintf(`<a href="%s?page=%d" class="btn btn-sm">&laquo; Prev</a>`, base, page-1)
	}
	next := ""
	if page < pages {
		next = fmt.Sprintf(`<a href="%s?page=%d" class="btn btn-sm">Next &raquo;</a>`, base, page+1)
	}

	return fmt.Sprintf(`
            <div class="pagination">
                %s
                <span>Page %d of %d</span>
                %s
            </div>`, prev, page, pages, next)
}

func (h *Handler) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	markup := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error - %s</title>
    <style>%s</style>
</head>
<body>
    <div class="auth-container">
        <div class="auth-box">
            <div class="auth-header">
                <h1>%s</h1>
            </div>
            <div class="alert alert-error">%s</div>
            <div class="auth-footer">
                <p><a href="/dashboard">Back to dashboard</a></p>
            </div>
        </div>
    </div>
</body>
</html>`, esc(h.appName), appCSS, esc(h.appName), esc(message))

	w.Write([]byte(markup))
}

// Portal CSS styles
const appCSS = `
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; color: #333; line-height: 1.6; }

.auth-container { min-height: 100vh; display: flex; align-items: center; justify-content: center; padding: 20px; }
.auth-box { background: white; padding: 40px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); width: 100%; max-width: 440px; }
.auth-header { text-align: center; margin-bottom: 30px; }
.auth-header h1 { color: #007bff; font-size: 24px; margin-bottom: 10px; }
.auth-header p { color: #666; }
.auth-form { margin-bottom: 20px; }
.auth-footer { text-align: center; }
.auth-footer p { margin: 10px 0; color: #666; }
.auth-footer a { color: #007bff; text-decoration: none; }

.form-group { margin-bottom: 20px; }
.form-group label { display: block; margin-bottom: 5px; font-weight: 500; }
.form-group input, .form-group select { width: 100%; padding: 10px 12px; border: 1px solid #ddd; border-radius: 4px; font-size: 16px; }
.form-group input:focus, .form-group select:focus { border-color: #007bff; outline: none; }
.form-group small { display: block; margin-top: 5px; color: #666; font-size: 12px; }
.field-error { color: #dc3545 !important; }

.btn { display: inline-block; padding: 10px 20px; border: none; border-radius: 4px; font-size: 14px; cursor: pointer; text-decoration: none; background: #e9ecef; color: #333; }
.btn-block { width: 100%; }
.btn-primary { background: #007bff; color: white; }
.btn-primary:hover { background: #0056b3; }
.btn-danger { background: #dc3545; color: white; }
.btn-danger:hover { background: #c82333; }
.btn-sm { padding: 5px 10px; font-size: 12px; }

.alert { padding: 15px; border-radius: 4px; margin-bottom: 20px; }
.alert-success { background: #d4edda; color: #155724; border: 1px solid #c3e6cb; }
.alert-error { background: #f8d7da; color: #721c24; border: 1px solid #f5c6cb; }
.alert-warning { background: #fff3cd; color: #856404; border: 1px solid #ffeeba; }
.alert-info { background: #d1ecf1; color: #0c5460; border: 1px solid #bee5eb; }

.portal-nav { background: white; padding: 15px 30px; display: flex; align-items: center; justify-content: space-between; border-bottom: 1px solid #ddd; }
.nav-brand a { font-size: 20px; font-weight: bold; color: #007bff; text-decoration: none; }
.nav-links { display: flex; gap: 20px; }
.nav-links a { color: #333; text-decoration: none; }
.nav-links a:hover { color: #007bff; }
.nav-user { display: flex; align-items: center; gap: 15px; }
.nav-user span { color: #666; }

.main-content { max-width: 1200px; margin: 0 auto; padding: 30px; }
.page-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 30px; }
.page-header h1 { font-size: 28px; }
.page-header p { color: #666; }
.header-actions { display: flex; gap: 10px; }

.card { background: white; padding: 25px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); margin-bottom: 20px; }
.card h2 { font-size: 18px; margin-bottom: 20px; }

.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-bottom: 30px; }
.stat-card { background: white; padding: 25px; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); text-align: center; }
.stat-value { font-size: 32px; font-weight: bold; color: #007bff; }
.stat-label { color: #666; margin-top: 5px; }

.table { width: 100%; border-collapse: collapse; }
.table th, .table td { padding: 12px; text-align: left; border-bottom: 1px solid #eee; }
.table th { background: #f9f9f9; font-weight: 500; }
.text-center { text-align: center; }
.actions { white-space: nowrap; }

.import-form { display: flex; gap: 10px; align-items: center; margin-bottom: 10px; }
.import-form input[type="file"] { flex: 1; }

.pagination { display: flex; gap: 15px; align-items: center; justify-content: center; margin-top: 20px; }
.pagination span { color: #666; font-size: 14px; }

code { background: #f4f4f4; padding: 2px 6px; border-radius: 3px; font-family: monospace; }
`
