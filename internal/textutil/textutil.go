// Package textutil holds the string primitives shared by the resume and job extractors.
package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	fractionRe = regexp.MustCompile(`([0-9]+\.?[0-9]*)\s*/\s*([0-9]+\.?[0-9]*)`)
	decimalRe  = regexp.MustCompile(`[0-9]+\.?[0-9]*`)
	integerRe  = regexp.MustCompile(`[0-9]+`)
)

// LowerTrim returns s trimmed and case folded.
func LowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitMulti splits s on any rune from delims. Pieces are trimmed, empty ones dropped.
func SplitMulti(s, delims string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})

	result := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		result = append(result, f)
	}

	return result
}

// ContainsToken reports whether needle occurs in haystack, ignoring case.
// It is a plain substring test: "java" is found in "javascript".
func ContainsToken(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SplitKeyValue splits a "key: value" line on the first colon, trimming both parts.
// A line without a colon is returned as a key with an empty value.
func SplitKeyValue(line string) (string, string) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(key), strings.TrimSpace(value)
}

// FirstNumber returns the first number in s.
// A fraction "a/b" is preferred over a bare number. Fractions with b > 4 are
// rescaled to a 4.0 scale, otherwise a is returned as is.
func FirstNumber(s string) (float64, bool) {
	if m := fractionRe.FindStringSubmatch(s); m != nil {
		a, errA := strconv.ParseFloat(m[1], 64)
		b, errB := strconv.ParseFloat(m[2], 64)
		if errA == nil && errB == nil && b > 0 {
			if b > 4 {
				return a / b * 4, true
			}
			return a, true
		}
	}

	m := decimalRe.FindString(s)
	if m == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// Integers returns every unsigned integer in s, in order. Values that overflow int are skipped.
func Integers(s string) []int {
	matches := integerRe.FindAllString(s, -1)
	result := make([]int, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Prefix returns the first n runes of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
