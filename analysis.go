package nganasan

import "strconv"

// PartOfSpeech is the word class assigned to a form.
type PartOfSpeech string

const (
	POSNoun    PartOfSpeech = "NOUN"
	POSVerb    PartOfSpeech = "VERB"
	POSPronoun PartOfSpeech = "PRON"
	POSNumeral PartOfSpeech = "NUM"
	POSUnknown PartOfSpeech = "UNKN"
)

// PronounType is the pronoun class.
type PronounType string

const (
	PronounUnknown PronounType = "unknown"
	Personal       PronounType = "personal"
	Reflexive      PronounType = "reflexive"
	Demonstrative  PronounType = "demonstrative"
	Interrogative  PronounType = "interrogative"
)

// NumeralType is the numeral class.
type NumeralType string

const (
	NumeralUnknown NumeralType = "unknown"
	Cardinal       NumeralType = "cardinal"
	Ordinal        NumeralType = "ordinal"
	Distributive   NumeralType = "distributive"
	Collective     NumeralType = "collective"
	Multiplicative NumeralType = "multiplicative"
	Fractional     NumeralType = "fractional"
)

func (t PronounType) String() string { return string(t) }

func (t NumeralType) String() string { return string(t) }

// NounFeatures holds the features the noun rules determined.
// Zero-valued fields were not determined.
type NounFeatures struct {
	Case            Case
	Number          Number
	Declension      Declension
	Possession      bool
	PossessorNumber Number
	PossessorPerson Person
}

// VerbFeatures holds the features of a verb analysis.
type VerbFeatures struct {
	Tense       Tense
	Conjugation Conjugation
	// Mood is MoodNone for the indicative.
	Mood   Mood
	Person Person
	Number Number
}

// PronounFeatures holds the features of a pronoun analysis.
type PronounFeatures struct {
	Type    PronounType
	Subtype string
	Person  Person
	Number  Number
}

// NumeralFeatures holds the features of a numeral analysis.
type NumeralFeatures struct {
	Type  NumeralType
	Value int
}

// Result is the analysis of one word form. Exactly one of the feature
// pointers is set for NOUN, VERB, PRON and NUM results; an UNKN result
// carries none. Results are never modified after they are returned.
type Result struct {
	POS     PartOfSpeech
	Noun    *NounFeatures
	Verb    *VerbFeatures
	Pronoun *PronounFeatures
	Numeral *NumeralFeatures
	// Stem is the form left after the matched suffix was removed.
	// It is meaningful only when HasStem is true.
	Stem    string
	HasStem bool
}

// Feature is a named feature value.
type Feature struct {
	Name  string
	Value string
}

// FeaturePairs returns the determined features in a stable order.
func (r Result) FeaturePairs() []Feature {
	var out []Feature
	add := func(name, value string) {
		if value != "" {
			out = append(out, Feature{name, value})
		}
	}
	switch {
	case r.Noun != nil:
		f := r.Noun
		add("case", f.Case.String())
		add("number", f.Number.String())
		add("declension", f.Declension.String())
		if f.Possession {
			add("possession", "yes")
		}
		add("possessor_number", f.PossessorNumber.String())
		add("possessor_person", f.PossessorPerson.String())
	case r.Verb != nil:
		f := r.Verb
		add("tense", f.Tense.String())
		add("conjugation", f.Conjugation.String())
		add("mood", f.Mood.String())
		add("person", f.Person.String())
		add("number", f.Number.String())
	case r.Pronoun != nil:
		f := r.Pronoun
		add("type", string(f.Type))
		add("subtype", f.Subtype)
		add("person", f.Person.String())
		add("number", f.Number.String())
	case r.Numeral != nil:
		f := r.Numeral
		add("type", string(f.Type))
		if f.Type != NumeralUnknown {
			add("value", strconv.Itoa(f.Value))
		}
	}
	return out
}

// Features returns the determined features keyed by name.
func (r Result) Features() map[string]string {
	pairs := r.FeaturePairs()
	out := make(map[string]string, len(pairs))
	for _, f := range pairs {
		out[f.Name] = f.Value
	}
	return out
}

// TokenResult holds the analysis of a single token of running text.
type TokenResult struct {
	// Token is the word as it appeared in the text.
	Token  string
	Result Result
}
