package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var nonNumericRe = regexp.MustCompile(`[^\d.]`)

// CleanNumeric coerces any money-shaped input into a float64. Currency
// symbols, separators, and spaces are stripped, so "Rs 1,200.50" and "$45"
// normalize to 1200.5 and 45. Anything unparseable, including nil and empty
// strings, normalizes to 0. It never panics.
func CleanNumeric(value any) float64 {
	var s string
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case string:
		s = v
	default:
		s = fmt.Sprintf("%v", v)
	}

	s = nonNumericRe.ReplaceAllString(s, "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sanitizeUTF8 removes invalid UTF-8 sequences from user text before it is
// embedded in a prompt.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}
