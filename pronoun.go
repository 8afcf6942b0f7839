package nganasan

import (
	"slices"
	"strings"
)

// questionMark is the interrogative marker the dispatcher strips.
const questionMark = "?"

// analyzePronoun matches word against the closed pronoun lexicons in the
// order personal, reflexive, demonstrative, interrogative.
func (a *Analyzer) analyzePronoun(word string) Result {
	p := a.paradigms

	for _, n := range Numbers {
		for _, pers := range Persons {
			if word == p.personal[gridCell{n, pers}] {
				return pronounResult(&PronounFeatures{Type: Personal, Person: pers, Number: n})
			}
		}
	}
	for _, n := range Numbers {
		for _, pers := range Persons {
			if word == p.reflexive[gridCell{n, pers}] {
				return pronounResult(&PronounFeatures{Type: Reflexive, Person: pers, Number: n})
			}
		}
	}
	for _, s := range DemonstrativeSubtypes {
		if slices.Contains(p.demonstratives[s], word) {
			return pronounResult(&PronounFeatures{Type: Demonstrative, Subtype: s})
		}
	}
	for _, s := range InterrogativeSubtypes {
		if p.isInterrogative(word, s) {
			return pronounResult(&PronounFeatures{Type: Interrogative, Subtype: s})
		}
	}
	return pronounResult(&PronounFeatures{Type: PronounUnknown})
}

// isInterrogative reports whether word is one of the forms of the given
// interrogative subtype. The lexicon forms end in a question mark; word
// matches with or without it.
func (p *Paradigms) isInterrogative(word, subtype string) bool {
	if word == "" {
		return false
	}
	for _, form := range p.interrogatives[subtype] {
		if word == form || word == strings.TrimSuffix(form, questionMark) {
			return true
		}
	}
	return false
}

func pronounResult(f *PronounFeatures) Result {
	return Result{POS: POSPronoun, Pronoun: f}
}
