// Package nganasan provides rule-based morphological analysis of Nganasan
// word forms. A form is matched against closed paradigm tables of
// inflectional suffixes and pronoun and numeral lexicons; the result is a
// part of speech, the grammatical features the rules determined and the
// residual stem.
//
// Analysis is deterministic: every table is scanned in a fixed order and
// the first matching cell wins. No suffix is preferred for being longer.
package nganasan

import "io"

// Analyzer holds the paradigm tables and provides the public API.
// The tables are read-only after construction, so an Analyzer is safe for
// concurrent use by any number of goroutines.
type Analyzer struct {
	paradigms *Paradigms
}

// New returns an Analyzer over the paradigm data shipped with the package.
func New() (*Analyzer, error) {
	p, err := loadDefaultParadigms()
	if err != nil {
		return nil, err
	}
	return &Analyzer{paradigms: p}, nil
}

// NewFromFile returns an Analyzer over the paradigm data file at path.
func NewFromFile(path string) (*Analyzer, error) {
	p, err := loadParadigmsFile(path)
	if err != nil {
		return nil, err
	}
	return &Analyzer{paradigms: p}, nil
}

// NewFromReader returns an Analyzer over paradigm data read from r.
func NewFromReader(r io.Reader) (*Analyzer, error) {
	p, err := loadParadigms(r)
	if err != nil {
		return nil, err
	}
	return &Analyzer{paradigms: p}, nil
}

// Paradigms returns the analyzer's tables.
func (a *Analyzer) Paradigms() *Paradigms {
	return a.paradigms
}

// Analyze analyzes a single word form. A trailing question mark is
// removed first. Analyze never fails: a form no rule recognizes is
// analyzed as a nominative singular noun.
func (a *Analyzer) Analyze(word string) Result {
	return a.analyze(word)
}

// AnalyzeAs runs only the analyzer for pos, after removing a trailing
// question mark. POSUnknown or "" selects Analyze.
func (a *Analyzer) AnalyzeAs(word string, pos PartOfSpeech) Result {
	return a.analyzeAs(word, pos)
}

// AnalyzeNoun runs the noun rules on word as given.
func (a *Analyzer) AnalyzeNoun(word string) Result {
	return a.analyzeNoun(word)
}

// AnalyzeVerb runs the verb rules on word as given. The result is UNKN
// when word contains no tense marker.
func (a *Analyzer) AnalyzeVerb(word string) Result {
	return a.analyzeVerb(word)
}

// AnalyzePronoun matches word against the pronoun lexicons.
func (a *Analyzer) AnalyzePronoun(word string) Result {
	return a.analyzePronoun(word)
}

// AnalyzeNumeral matches word against the numeral lexicons.
func (a *Analyzer) AnalyzeNumeral(word string) Result {
	return a.analyzeNumeral(word)
}

// AnalyzeText splits text into word tokens and analyzes each one.
func (a *Analyzer) AnalyzeText(text string) []TokenResult {
	return a.analyzeText(text)
}
