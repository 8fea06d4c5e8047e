package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeLabel lowercases a label and strips all whitespace so that
// markup variations of the same phrase compare equal.
func NormalizeLabel(label string) string {
	label = strings.ToLower(label)
	label = strings.Trim(label, " \n\t")
	return whitespaceRegex.ReplaceAllString(label, "")
}

func MatchLabel(label string, matchers []string) bool {
	label = NormalizeLabel(label)
	for _, m := range matchers {
		if strings.Contains(label, m) {
			return true
		}
	}
	return false
}

var digitsRegex = regexp.MustCompile(`\d+`)

// FirstInteger returns the first run of digits in s as an integer.
func FirstInteger(s string) (int, bool) {
	digits := digitsRegex.FindString(s)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntegerAfter returns the first run of digits in s that appears after
// the first occurrence of the given phrase, compared case-insensitively.
func IntegerAfter(s, phrase string) (int, bool) {
	idx := strings.Index(strings.ToLower(s), strings.ToLower(phrase))
	if idx < 0 {
		return 0, false
	}
	return FirstInteger(s[idx+len(phrase):])
}
