package frontend

import "github.com/cours-de-latin/nganasan"

// Analysis is the JSON shape of one analysis.
type Analysis struct {
	Word     string            `json:"word"`
	POS      string            `json:"pos"`
	Features map[string]string `json:"features"`
	Stem     *string           `json:"stem,omitempty"`
	// Heuristic guesses; they are not part of the analysis proper.
	DeclensionGuess string `json:"declension_guess,omitempty"`
	Aspect          string `json:"aspect,omitempty"`
	Voice           string `json:"voice,omitempty"`
}

// NewAnalysis converts an analysis of word to its JSON shape.
func NewAnalysis(word string, r nganasan.Result) Analysis {
	out := Analysis{
		Word:     word,
		POS:      string(r.POS),
		Features: r.Features(),
	}
	if r.HasStem {
		stem := r.Stem
		out.Stem = &stem
	}
	switch r.POS {
	case nganasan.POSNoun:
		if r.HasStem && r.Stem != "" {
			out.DeclensionGuess = nganasan.DetectDeclension(r.Stem).String()
		}
	case nganasan.POSVerb:
		out.Aspect = nganasan.VerbAspect(word)
		out.Voice = nganasan.VerbVoice(word)
	}
	return out
}
