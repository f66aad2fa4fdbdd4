package nlu

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,

	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14, "fifteenth": 15,
	"sixteenth": 16, "seventeenth": 17, "eighteenth": 18, "nineteenth": 19, "twentieth": 20,
}

// digitsRe matches a decimal number with an optional ordinal suffix.
var digitsRe = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th)?$`)

// numberPattern is a regexp fragment matching any token parseNumber accepts.
var numberPattern = func() string {
	words := make([]string, 0, len(numberWords))
	for w := range numberWords {
		words = append(words, w)
	}
	// Longest first so "seventeenth" is not cut short by "seven".
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return `\d+(?:st|nd|rd|th)?|` + strings.Join(words, "|")
}()

// parseNumber returns the decimal text of a numeric or ordinal token.
func parseNumber(token string) (string, bool) {
	if m := digitsRe.FindStringSubmatch(token); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return m[1], true
		}
		return strconv.Itoa(n), true
	}
	if n, ok := numberWords[token]; ok {
		return strconv.Itoa(n), true
	}
	return "", false
}
