package nganasan

import (
	"regexp"
	"strings"
)

// reWord matches a word token of running text: letters, combining marks
// and the glottal stop, with an optional interrogative marker.
var reWord = regexp.MustCompile(`[\p{L}\p{M}"]+\??`)

// stripQuestion removes a single trailing interrogative marker.
func stripQuestion(word string) string {
	return strings.TrimSuffix(word, questionMark)
}

// analyze tries the numeral, pronoun, noun and verb analyzers in that
// order and returns the first analysis one of them claims. When none
// does, the noun analysis is returned, so the result is never UNKN.
func (a *Analyzer) analyze(word string) Result {
	word = stripQuestion(word)

	if r := a.analyzeNumeral(word); r.Numeral.Type != NumeralUnknown {
		return r
	}
	if r := a.analyzePronoun(word); r.Pronoun.Type != PronounUnknown {
		return r
	}
	noun := a.analyzeNoun(word)
	if nounAccepted(noun) {
		return noun
	}
	if r := a.analyzeVerb(word); verbAccepted(r) {
		return r
	}
	return noun
}

// analyzeAs runs a single analyzer on word after stripping the
// interrogative marker. POSUnknown and the empty string select the full
// dispatch.
func (a *Analyzer) analyzeAs(word string, pos PartOfSpeech) Result {
	switch pos {
	case POSNoun:
		return a.analyzeNoun(stripQuestion(word))
	case POSVerb:
		return a.analyzeVerb(stripQuestion(word))
	case POSPronoun:
		return a.analyzePronoun(stripQuestion(word))
	case POSNumeral:
		return a.analyzeNumeral(stripQuestion(word))
	}
	return a.analyze(word)
}

// analyzeText tokenizes text and analyzes each word token.
func (a *Analyzer) analyzeText(text string) []TokenResult {
	tokens := reWord.FindAllString(text, -1)
	results := make([]TokenResult, 0, len(tokens))
	for _, token := range tokens {
		results = append(results, TokenResult{
			Token:  token,
			Result: a.analyze(token),
		})
	}
	return results
}
