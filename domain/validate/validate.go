// Package validate provides a rule-driven form validator.
// Rule sets are parsed once at definition time and applied to raw form
// data, producing one error message per failing field.
// This package has NO dependencies on I/O or external packages.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

type ruleKind int

const (
	ruleRequired ruleKind = iota
	ruleMinLength
	ruleMaxLength
	ruleEmail
	ruleMatch
	ruleNumeric
	ruleDate
	ruleIn
)

// Rule is a single parsed validation rule.
type Rule struct {
	kind    ruleKind
	length  int      // min_length / max_length
	other   string   // match
	choices []string // in
}

// Rules maps a field name to its rules in declaration order.
type Rules map[string][]Rule

// MustParse parses a rule definition into a Rules value. Rule tokens:
//
//	required
//	min_length:N
//	max_length:N
//	email
//	match:other_field
//	numeric
//	date
//	in:a,b,c
//
// Definitions are written by the programmer, not the user, so a malformed
// token panics.
func MustParse(def map[string][]string) Rules {
	rules := make(Rules, len(def))
	for field, tokens := range def {
		parsed := make([]Rule, 0, len(tokens))
		for _, token := range tokens {
			parsed = append(parsed, parseToken(field, token))
		}
		rules[field] = parsed
	}
	return rules
}

func parseToken(field, token string) Rule {
	name, param, hasParam := strings.Cut(token, ":")

	switch name {
	case "required":
		return Rule{kind: ruleRequired}
	case "email":
		return Rule{kind: ruleEmail}
	case "numeric":
		return Rule{kind: ruleNumeric}
	case "date":
		return Rule{kind: ruleDate}
	case "min_length", "max_length":
		n, err := strconv.Atoi(param)
		if !hasParam || err != nil || n < 0 {
			panic(fmt.Sprintf("validate: field %q: bad length in rule %q", field, token))
		}
		if name == "min_length" {
			return Rule{kind: ruleMinLength, length: n}
		}
		return Rule{kind: ruleMaxLength, length: n}
	case "match":
		if !hasParam || param == "" {
			panic(fmt.Sprintf("validate: field %q: match rule needs a field name", field))
		}
		return Rule{kind: ruleMatch, other: param}
	case "in":
		if !hasParam || param == "" {
			panic(fmt.Sprintf("validate: field %q: in rule needs choices", field))
		}
		return Rule{kind: ruleIn, choices: strings.Split(param, ",")}
	default:
		panic(fmt.Sprintf("validate: field %q: unknown rule %q", field, token))
	}
}

// Apply validates data against every field in the rule set. Fields absent
// from data are treated as empty. The result maps each failing field to
// its FIRST error message; a valid submission yields an empty map.
func (r Rules) Apply(data map[string]string) map[string]string {
	errs := make(map[string]string)
	for field, rules := range r {
		if msg := applyField(field, rules, data); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// ApplyField validates a single field against its rules. The second
// return value is false when the rule set has no such field.
func (r Rules) ApplyField(field string, data map[string]string) (string, bool) {
	rules, ok := r[field]
	if !ok {
		return "", false
	}
	return applyField(field, rules, data), true
}

// Has reports whether the rule set covers the field.
func (r Rules) Has(field string) bool {
	_, ok := r[field]
	return ok
}

func applyField(field string, rules []Rule, data map[string]string) string {
	value := strings.TrimSpace(data[field])

	for _, rule := range rules {
		switch rule.kind {
		case ruleRequired:
			if value == "" {
				return Label(field) + " is required."
			}
		case ruleMinLength:
			// Lengths are counted in characters, not bytes.
			if value != "" && utf8.RuneCountInString(value) < rule.length {
				return fmt.Sprintf("%s must be at least %d characters.", Label(field), rule.length)
			}
		case ruleMaxLength:
			if value != "" && utf8.RuneCountInString(value) > rule.length {
				return fmt.Sprintf("%s must not exceed %d characters.", Label(field), rule.length)
			}
		case ruleEmail:
			if value != "" && !emailPattern.MatchString(value) {
				return "Invalid email address."
			}
		case ruleMatch:
			// Compare against the other field as submitted, untrimmed.
			if value != data[rule.other] {
				return fmt.Sprintf("%s does not match %s.", Label(field), Label(rule.other))
			}
		case ruleNumeric:
			if value != "" && !isDigits(value) {
				return Label(field) + " must be numeric."
			}
		case ruleDate:
			if value != "" {
				if _, err := time.Parse("2006-01-02", value); err != nil {
					return "Invalid date format (YYYY-MM-DD)."
				}
			}
		case ruleIn:
			if value != "" && !contains(rule.choices, value) {
				return fmt.Sprintf("Invalid %s selected.", Label(field))
			}
		}
	}
	return ""
}

// Deliberately loose: one local part, one @, a dot somewhere in the domain.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// labelOverrides holds display names that title-casing gets wrong.
var labelOverrides = map[string]string{
	"c_password": "Confirm Password",
}

// Label returns the human-readable name of a form field:
// "first_release_year" -> "First Release Year".
func Label(field string) string {
	if label, ok := labelOverrides[field]; ok {
		return label
	}
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
