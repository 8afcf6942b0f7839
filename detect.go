package nganasan

import (
	"regexp"
	"strings"
)

// Heuristics reported alongside an analysis. None of them takes part in
// Analyze.

var (
	// reLongFinal matches stems ending in a long vowel or a diphthong.
	reLongFinal = regexp.MustCompile(`(аа|ээ|ее|ии|оо|уу|ыы|әә|ау|эу|оу|иэ|уо|ыа)$`)
	// reImperfective matches ты/ти/ту followed by an optional person
	// consonant, vowel and glottal stop at the end of the word.
	reImperfective = regexp.MustCompile(`(ты|ти|ту)[мнр]?[ёэыу]?"?$`)
)

var consonantFinals = []string{glottalStop, "м", "н", "р", "й"}

// DetectDeclension guesses the declension of a nominative stem from its
// final sound: consonant stems are 3, stems in a long vowel or diphthong
// are 1, all other stems are 2.
func DetectDeclension(stem string) Declension {
	for _, c := range consonantFinals {
		if strings.HasSuffix(stem, c) {
			return 3
		}
	}
	if reLongFinal.MatchString(stem) {
		return 1
	}
	return 2
}

// VerbAspect returns "imperfective" or "perfective" when the ending of
// word suggests one, and "" otherwise.
func VerbAspect(word string) string {
	switch {
	case reImperfective.MatchString(word):
		return "imperfective"
	case strings.Contains(lastRunes(word, 3), glottalStop):
		return "perfective"
	default:
		return ""
	}
}

// VerbVoice returns "reflexive" for words ending in зэ and "active"
// otherwise.
func VerbVoice(word string) string {
	if strings.HasSuffix(word, "зэ") {
		return "reflexive"
	}
	return "active"
}

// lastRunes returns the last n runes of s.
func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
