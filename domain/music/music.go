// Package music holds the song form rules and genre choices.
package music

import "github.com/artpar/artistdesk/domain/validate"

// Genres are the accepted genre codes with display labels.
var Genres = []struct {
	Code  string
	Label string
}{
	{"rnb", "RnB"},
	{"country", "Country"},
	{"classic", "Classic"},
	{"rock", "Rock"},
	{"jazz", "Jazz"},
}

// GenreLabel returns the display label for a genre code.
func GenreLabel(code string) string {
	for _, g := range Genres {
		if g.Code == code {
			return g.Label
		}
	}
	return code
}

// Rules validates the song create/edit form. The owning artist is
// referenced by id; existence is checked against the store by callers.
var Rules = validate.MustParse(map[string][]string{
	"artist_id":  {"required"},
	"title":      {"required"},
	"album_name": {"required"},
	"genre":      {"required", "in:rnb,country,classic,rock,jazz"},
})

// Validate checks a song form submission (pure function).
func Validate(data map[string]string) map[string]string {
	return Rules.Apply(data)
}
