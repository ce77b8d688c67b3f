package submission

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SanitizeFilename strips diacritics from a filename by decomposing it and
// dropping the combining marks. The remote document store rejects some
// accented filenames, so "café.pdf" must arrive as "cafe.pdf".
func SanitizeFilename(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return out
}
