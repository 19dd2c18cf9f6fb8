package detection

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const maxLabelRunes = 48

// isStrippableMark matches combining accents. Kana voicing marks stay so
// that ビ and パ survive the NFD/NFC round trip.
func isStrippableMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) && r != '\u3099' && r != '\u309A'
}

// foldLabel strips diacritics and folds full/half-width forms.
func foldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isStrippableMark)), width.Fold, norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func allowedRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '/'
}

// SanitizeLabel returns a display-safe label or "" if nothing survives.
func SanitizeLabel(raw string) string {
	folded := foldLabel(strings.TrimSpace(raw))
	mapped := strings.Map(func(r rune) rune {
		if allowedRune(r) {
			return r
		}
		return ' '
	}, folded)

	collapsed := strings.Join(strings.Fields(mapped), " ")
	if collapsed == "" {
		return ""
	}
	if r := []rune(collapsed); len(r) > maxLabelRunes {
		collapsed = strings.TrimSpace(string(r[:maxLabelRunes]))
	}
	return cases.Title(language.Und).String(collapsed)
}
