// Package artist holds the artist form rules and gender choices.
package artist

import "github.com/artpar/artistdesk/domain/validate"

// Genders are the accepted gender codes with display labels.
var Genders = []struct {
	Code  string
	Label string
}{
	{"m", "Male"},
	{"f", "Female"},
	{"o", "Other"},
}

// GenderLabel returns the display label for a gender code.
func GenderLabel(code string) string {
	for _, g := range Genders {
		if g.Code == code {
			return g.Label
		}
	}
	return code
}

// Rules validates the artist create/edit form.
var Rules = validate.MustParse(map[string][]string{
	"name":               {"required", "min_length:3", "max_length:50"},
	"dob":                {"required", "date"},
	"gender":             {"required", "in:m,f,o"},
	"address":            {"required", "min_length:3", "max_length:255"},
	"first_release_year": {"required", "numeric"},
	"no_of_albums":       {"required", "numeric"},
})

// Validate checks an artist form submission (pure function).
func Validate(data map[string]string) map[string]string {
	return Rules.Apply(data)
}
