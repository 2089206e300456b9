package preprocess

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordRegexp = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lower-cases text and joins its words with single spaces. A word is
// a maximal run of Unicode letters, digits and underscores; everything else
// is a separator and is discarded.
func Tokenize(text string) string {
	return strings.Join(wordRegexp.FindAllString(lower(text), -1), " ")
}

// SelectAlphanumericAndSpaces drops every character that is neither an ASCII
// letter or digit nor whitespace. Casing, spacing and order are preserved.
func SelectAlphanumericAndSpaces(text string) string {
	return strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) || isSpace(r) {
			return r
		}
		return -1
	}, text)
}

// RemoveStopWords lower-cases text, splits it on whitespace and drops every
// word found in stopWords. The comparison is case-sensitive against the
// lower-cased words. The remaining words are joined with single spaces.
func RemoveStopWords(text string, stopWords []string) string {
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[w] = struct{}{}
	}

	words := strings.FieldsFunc(lower(text), isSpace)
	kept := words[:0]
	for _, w := range words {
		if _, ok := stop[w]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// lower applies Unicode full case folding to lower case. A Caser is not safe
// for concurrent use, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func isASCIIAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// isSpace matches Unicode white space plus the ASCII information separators
// U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
