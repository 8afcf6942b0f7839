package nganasan

import "strings"

// analyzeVerb analyzes word as a finite verb form. A word that contains
// no tense marker, or whose person and number cannot be resolved, is
// UNKN with no features.
func (a *Analyzer) analyzeVerb(word string) Result {
	p := a.paradigms

	tense := p.findTense(word)
	if tense == TenseNone {
		return unknownResult()
	}
	conj := p.findConjugation(word)
	mood := p.findMood(word)

	n, pers := p.findPersonNumber(word, conj, mood, tense)
	if n == NumberNone {
		return unknownResult()
	}

	r := Result{
		POS: POSVerb,
		Verb: &VerbFeatures{
			Tense:       tense,
			Conjugation: conj,
			Mood:        mood,
			Person:      pers,
			Number:      n,
		},
	}
	// The tense gate matches anywhere in the word, so the ending implied
	// by the analysis is not guaranteed to be present.
	if s, ok := p.verbEnding(conj, mood, tense, n, pers); ok {
		if stem, ok := strings.CutSuffix(word, s); ok {
			r.Stem, r.HasStem = stem, true
		}
	}
	return r
}

// findTense returns the tense of the first marker contained anywhere in
// word, scanning tenses then aspects.
func (p *Paradigms) findTense(word string) Tense {
	for _, t := range Tenses {
		for _, asp := range Aspects {
			if strings.Contains(word, p.tenses[tenseCell{t, asp}]) {
				return t
			}
		}
	}
	return TenseNone
}

// findConjugation tries the subjective-objective grids, then the
// subjective-non-objective grid, and falls back to the subjective family.
func (p *Paradigms) findConjugation(word string) Conjugation {
	for _, o := range ObjectClasses {
		for _, n := range Numbers {
			for _, pers := range Persons {
				if strings.HasSuffix(word, p.subjObj[objectCell{o, n, pers}]) {
					return subjectiveObjective(o)
				}
			}
		}
	}
	for _, n := range Numbers {
		for _, pers := range Persons {
			if strings.HasSuffix(word, p.subjNonObj[gridCell{n, pers}]) {
				return SubjectiveNonObjective
			}
		}
	}
	return Subjective
}

// findMood returns the first mood whose ending word carries, skipping
// cells the mood does not have.
func (p *Paradigms) findMood(word string) Mood {
	for _, m := range Moods {
		for _, n := range Numbers {
			for _, pers := range Persons {
				s, ok := p.moods[moodCell{m, n, pers}]
				if ok && strings.HasSuffix(word, s) {
					return m
				}
			}
		}
	}
	return MoodNone
}

// findPersonNumber resolves person and number from the mood grid when a
// mood was found, otherwise from the conjugation grid. The subjective
// grid is read at the given tense.
func (p *Paradigms) findPersonNumber(word string, conj Conjugation, mood Mood, tense Tense) (Number, Person) {
	for _, n := range Numbers {
		for _, pers := range Persons {
			s, ok := p.verbEnding(conj, mood, tense, n, pers)
			if ok && strings.HasSuffix(word, s) {
				return n, pers
			}
		}
	}
	return NumberNone, PersonNone
}

// verbEnding returns the ending of the cell identified by the analysis.
func (p *Paradigms) verbEnding(conj Conjugation, mood Mood, tense Tense, n Number, pers Person) (string, bool) {
	if mood != MoodNone {
		return p.MoodSuffix(mood, n, pers)
	}
	switch conj {
	case SubjectiveObjectiveSg, SubjectiveObjectiveDl, SubjectiveObjectivePl:
		return p.SubjectiveObjective(conj.Object(), n, pers)
	case SubjectiveNonObjective:
		return p.SubjectiveNonObjective(n, pers)
	case Subjective:
		return p.Subjective(tense, n, pers)
	}
	return "", false
}

func unknownResult() Result {
	return Result{POS: POSUnknown}
}

// verbAccepted reports whether the dispatcher takes a verb analysis.
func verbAccepted(r Result) bool {
	f := r.Verb
	return f != nil && (f.Conjugation != ConjugationNone || f.Tense != TenseNone || f.Mood != MoodNone)
}
