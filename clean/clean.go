// Package clean normalizes raw field values: Persian text folding and
// punctuation stripping for name columns, digit extraction for code and
// count columns.
//
// Raw census files mix Arabic and Persian codepoints for the same letters
// and are littered with invisible directionality and joining marks; cleaning
// them here keeps every downstream comparison a plain string equality.
package clean

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"census-normalizer/record"
)

// foldRune maps Arabic codepoints onto their Persian equivalents and turns
// the zero-width non-joiner into a plain space.
func foldRune(r rune) rune {
	switch r {
	case 'ي', 'ئ', 'ى':
		return 'ی'
	case 'أ', 'إ':
		return 'ا'
	case 'ؤ':
		return 'و'
	case 'ك':
		return 'ک'
	case 'ۀ', 'ة':
		return 'ه'
	case '‌': // zero-width non-joiner separates words, so it becomes a space
		return ' '
	default:
		return r
	}
}

// foldTransformer folds letters first, then strips the remaining invisible
// format characters (zero-width space, soft hyphen, directionality marks
// and BOM, i.e. Unicode category Cf).
var foldTransformer = transform.Chain(
	runes.Map(foldRune),
	runes.Remove(runes.In(unicode.Cf)),
)

// unwantedSymbols are stray punctuation and typography the source files
// carry inside name fields.
const unwantedSymbols = "\n\r\t…ـ_-•*`\"'«».,;:"

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)
	digitRunRe   = regexp.MustCompile(`\d+`)
)

// Text normalizes a Persian name value.
func Text(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Cf removal cannot fail on valid UTF-8; fall back to the raw value.
		folded = s
	}

	folded = strings.Map(func(r rune) rune {
		if strings.ContainsRune(unwantedSymbols, r) {
			return -1
		}

		return r
	}, folded)

	folded = multiSpaceRe.ReplaceAllString(folded, " ")
	folded = strings.ReplaceAll(folded, "( ", "(")
	folded = strings.ReplaceAll(folded, " )", ")")

	return strings.TrimSpace(folded)
}

// ID keeps only the ASCII digits of a code value.
func ID(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Number extracts the first run of digits, or "" when the value holds none.
func Number(s string) string {
	return digitRunRe.FindString(s)
}

// Count columns carrying integral census figures.
const (
	householdCountColumn = "Household_Count"
	populationColumn     = "Population"
)

// Apply cleans every value of the record in place, routing each column to
// the cleaner its kind needs: name columns through Text, code columns
// through ID, count columns through Number.
func Apply(rec record.Record) {
	for col, val := range rec {
		switch {
		case isCountColumn(col):
			rec[col] = Number(val)
		case isCodeColumn(col):
			rec[col] = ID(val)
		case isNameColumn(col):
			rec[col] = Text(val)
		}
	}
}

// isNameColumn reports whether the column holds Persian text.
func isNameColumn(col string) bool {
	return strings.Contains(col, "Name")
}

// isCodeColumn reports whether the column holds a numeric code.
func isCodeColumn(col string) bool {
	return strings.Contains(col, "ID") || col == "Region_Type" || col == "DIAG"
}

// isCountColumn reports whether the column holds a census count.
func isCountColumn(col string) bool {
	return col == householdCountColumn || col == populationColumn
}
