package nganasan

import "strings"

// Markers the noun rules test before the paradigm tables.
const (
	nounPluralMarker = `не"`
	nounDativeMarker = "дэне"
	glottalStop      = `"`
)

var nounDualMarkers = []string{"гай", "кай"}

// analyzeNoun runs the noun rule cascade. The first rule that matches
// decides; the default is the nominative singular of the whole word.
func (a *Analyzer) analyzeNoun(word string) Result {
	p := a.paradigms

	// who/what are pronouns even when a caller skips the pronoun tier
	for _, subtype := range []string{"who", "what"} {
		if p.isInterrogative(word, subtype) {
			return Result{
				POS:     POSPronoun,
				Pronoun: &PronounFeatures{Type: Interrogative, Subtype: subtype},
			}
		}
	}

	if stem, ok := strings.CutSuffix(word, nounPluralMarker); ok {
		return nounResult(&NounFeatures{Number: Plural}, stem)
	}
	if stem, ok := strings.CutSuffix(word, nounDativeMarker); ok {
		return nounResult(&NounFeatures{Case: Dative, Number: Singular}, stem)
	}
	for _, m := range nounDualMarkers {
		if stem, ok := strings.CutSuffix(word, m); ok {
			return nounResult(&NounFeatures{Number: Dual}, stem)
		}
	}
	if stem, ok := strings.CutSuffix(word, glottalStop); ok {
		return nounResult(&NounFeatures{Number: Plural}, stem)
	}

	// No preference for the longest suffix: the first cell in scan order wins.
	for _, n := range Numbers {
		for _, pers := range Persons {
			if stem, ok := strings.CutSuffix(word, p.possessives[gridCell{n, pers}]); ok {
				return nounResult(&NounFeatures{
					Possession:      true,
					PossessorNumber: n,
					PossessorPerson: pers,
				}, stem)
			}
		}
	}

	// Only the singular case suffixes take part in matching.
	for _, d := range Declensions {
		for _, c := range ObliqueCases {
			for _, s := range p.nouns[nounCell{d, c, Singular}] {
				if stem, ok := strings.CutSuffix(word, s); ok {
					return nounResult(&NounFeatures{Case: c, Number: Singular, Declension: d}, stem)
				}
			}
		}
	}

	return nounResult(&NounFeatures{Case: Nominative, Number: Singular}, word)
}

func nounResult(f *NounFeatures, stem string) Result {
	return Result{POS: POSNoun, Noun: f, Stem: stem, HasStem: true}
}

// nounAccepted reports whether the dispatcher takes a noun analysis.
func nounAccepted(r Result) bool {
	f := r.Noun
	return f != nil && (f.Case != CaseNone || f.Number != NumberNone || f.Declension != 0)
}
