// Package frontend holds the presentation layer shared by the command
// binaries: input cleaning, reply texts, JSON shapes and a result cache
// in front of the analyzer.
package frontend

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/cours-de-latin/nganasan"
)

// Clean puts user input into the form the paradigm tables are written
// in: canonically composed, trimmed, without control characters.
func Clean(raw string) string {
	s := norm.NFC.String(raw)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// ParsePOS maps a part-of-speech name to the analyzer tier it selects.
// The empty string and "auto" select the full dispatch.
func ParsePOS(s string) (nganasan.PartOfSpeech, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return "", nil
	case "noun":
		return nganasan.POSNoun, nil
	case "verb":
		return nganasan.POSVerb, nil
	case "pron", "pronoun":
		return nganasan.POSPronoun, nil
	case "num", "numeral":
		return nganasan.POSNumeral, nil
	}
	return "", errors.Errorf("unknown part of speech %q", s)
}

// SafeAnalyze runs fn and converts a panic into an error.
func SafeAnalyze(fn func() nganasan.Result) (r nganasan.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nganasan.Result{POS: nganasan.POSUnknown}
			err = errors.Errorf("analysis failed: %v", rec)
		}
	}()
	return fn(), nil
}
