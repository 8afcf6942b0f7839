package nganasan

import (
	"maps"
	"reflect"
	"sync"
	"testing"
)

func newAnalyzer(t testing.TB) *Analyzer {
	t.Helper()
	a, err := New()
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	return a
}

func TestNew(t *testing.T) {
	a := newAnalyzer(t)
	p := a.Paradigms()
	t.Logf("Loaded %d cardinals, %d ordinals, %d derivations, %d alternations",
		len(p.Cardinals()), len(p.Ordinals()), len(p.Derivations()), len(p.Alternations()))
	if got := len(p.Cardinals()); got != 17 {
		t.Errorf("len(Cardinals()) = %d, want 17", got)
	}
	if got := len(p.Ordinals()); got != 10 {
		t.Errorf("len(Ordinals()) = %d, want 10", got)
	}
	if got := len(p.Derivations()); got != 4 {
		t.Errorf("len(Derivations()) = %d, want 4", got)
	}
	if got := len(p.Alternations()); got != 17 {
		t.Errorf("len(Alternations()) = %d, want 17", got)
	}
}

func TestAnalyzeScenarios(t *testing.T) {
	a := newAnalyzer(t)
	tests := []struct {
		word     string
		pos      PartOfSpeech
		features map[string]string
		stem     string
		hasStem  bool
	}{
		{"таа", POSNoun, map[string]string{"case": "nom", "number": "sg"}, "таа", true},
		{"таагай", POSNoun, map[string]string{"number": "dl"}, "таа", true},
		{"мәне", POSPronoun, map[string]string{"type": "personal", "person": "1", "number": "sg"}, "", false},
		{"ситти", POSNumeral, map[string]string{"type": "cardinal", "value": "2"}, "", false},
		{"сылы?", POSPronoun, map[string]string{"type": "interrogative", "subtype": "who"}, "", false},
		{"маа?", POSPronoun, map[string]string{"type": "interrogative", "subtype": "what"}, "", false},
		{"кол", POSNoun, map[string]string{"case": "nom", "number": "sg"}, "кол", true},
		{"нонәнте", POSPronoun, map[string]string{"type": "reflexive", "person": "2", "number": "sg"}, "", false},
		{`би"`, POSNumeral, map[string]string{"type": "cardinal", "value": "10"}, "", false},
		{"десьмё", POSNoun, map[string]string{"possession": "yes", "possessor_number": "sg", "possessor_person": "1"}, "десь", true},
		{"тумё", POSVerb, map[string]string{"tense": "pres", "conjugation": "subjective", "mood": "imperative", "person": "3", "number": "sg"}, "тумё", true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			r := a.Analyze(tt.word)
			if r.POS != tt.pos {
				t.Errorf("Analyze(%q).POS = %s, want %s", tt.word, r.POS, tt.pos)
			}
			if got := r.Features(); !maps.Equal(got, tt.features) {
				t.Errorf("Analyze(%q).Features() = %v, want %v", tt.word, got, tt.features)
			}
			if r.HasStem != tt.hasStem || r.Stem != tt.stem {
				t.Errorf("Analyze(%q) stem = %q (%v), want %q (%v)", tt.word, r.Stem, r.HasStem, tt.stem, tt.hasStem)
			}
		})
	}
}

func TestAnalyzePronounBeforeNoun(t *testing.T) {
	a := newAnalyzer(t)
	// "ми" is also the 1st dual possessive suffix.
	if r := a.AnalyzeNoun("ми"); r.Noun == nil || !r.Noun.Possession {
		t.Fatalf("AnalyzeNoun(%q) = %+v, want a possessive noun", "ми", r)
	}
	r := a.Analyze("ми")
	if r.POS != POSPronoun || r.Pronoun.Type != Personal || r.Pronoun.Number != Dual || r.Pronoun.Person != First {
		t.Errorf("Analyze(%q) = %+v %+v, want personal pronoun 1dl", "ми", r, r.Pronoun)
	}
}

func TestAnalyzeNumeralBeforeNoun(t *testing.T) {
	a := newAnalyzer(t)
	// би" ends in the plural glottal stop.
	if r := a.AnalyzeNoun(`би"`); r.Noun == nil || r.Noun.Number != Plural {
		t.Fatalf("AnalyzeNoun(%q) = %+v, want plural noun", `би"`, r)
	}
	if r := a.Analyze(`би"`); r.POS != POSNumeral {
		t.Errorf("Analyze(%q).POS = %s, want NUM", `би"`, r.POS)
	}
}

func TestAnalyzeNeverUnknown(t *testing.T) {
	a := newAnalyzer(t)
	words := []string{"", "?", "??", "...", "abc", "гуом", "буазо", `ту"`, "дуо", `"`, "123", "таа таа"}
	for _, w := range words {
		if r := a.Analyze(w); r.POS == POSUnknown {
			t.Errorf("Analyze(%q).POS = UNKN", w)
		}
	}
}

func TestAnalyzeStripsOneQuestionMark(t *testing.T) {
	a := newAnalyzer(t)
	r := a.Analyze("таа?")
	if r.POS != POSNoun || r.Stem != "таа" {
		t.Errorf("Analyze(%q) = %s %q, want NOUN %q", "таа?", r.POS, r.Stem, "таа")
	}
	r = a.Analyze("таа??")
	if r.Stem != "таа?" {
		t.Errorf("Analyze(%q).Stem = %q, want %q", "таа??", r.Stem, "таа?")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := newAnalyzer(t)
	for _, w := range []string{"таа", "таагай", "мәне", "ситти", "сылы?", "тумё", "ситтимены", ""} {
		first, second := a.Analyze(w), a.Analyze(w)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Analyze(%q) not repeatable: %+v != %+v", w, first, second)
		}
	}
}

func TestAnalyzeAs(t *testing.T) {
	a := newAnalyzer(t)
	tests := []struct {
		word string
		pos  PartOfSpeech
		want PartOfSpeech
	}{
		{"туйсузәм", POSVerb, POSVerb},
		{"таа", POSVerb, POSUnknown},
		{"мәне", POSNoun, POSNoun},
		{"таа", POSNumeral, POSNumeral},
		{"таа", POSPronoun, POSPronoun},
		{"ситти", "", POSNumeral},
		{"ситти", POSUnknown, POSNumeral},
		{"сылы?", POSPronoun, POSPronoun},
	}
	for _, tt := range tests {
		if got := a.AnalyzeAs(tt.word, tt.pos).POS; got != tt.want {
			t.Errorf("AnalyzeAs(%q, %q).POS = %s, want %s", tt.word, tt.pos, got, tt.want)
		}
	}
}

func TestAnalyzeText(t *testing.T) {
	a := newAnalyzer(t)
	results := a.AnalyzeText(`Таа таагай, мәне сылы? би"`)
	want := []struct {
		token string
		pos   PartOfSpeech
	}{
		{"Таа", POSNoun},
		{"таагай", POSNoun},
		{"мәне", POSPronoun},
		{"сылы?", POSPronoun},
		{`би"`, POSNumeral},
	}
	if len(results) != len(want) {
		t.Fatalf("AnalyzeText returned %d tokens, want %d: %+v", len(results), len(want), results)
	}
	for i, w := range want {
		if results[i].Token != w.token || results[i].Result.POS != w.pos {
			t.Errorf("token %d = %q %s, want %q %s", i, results[i].Token, results[i].Result.POS, w.token, w.pos)
		}
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	a := newAnalyzer(t)
	words := []string{"таа", "таагай", "мәне", "ситти", "сылы?", "тумё", "десьмё", "котэны"}
	want := make([]Result, len(words))
	for i, w := range words {
		want[i] = a.Analyze(w)
	}

	const goroutines = 8
	const iterations = 50

	errCh := make(chan string, goroutines*iterations)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				for k, w := range words {
					if got := a.Analyze(w); !reflect.DeepEqual(got, want[k]) {
						errCh <- w
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for w := range errCh {
		t.Errorf("concurrent Analyze(%q) differs from sequential result", w)
	}
}

func TestFeaturesUnknown(t *testing.T) {
	r := Result{POS: POSUnknown}
	if got := r.Features(); len(got) != 0 {
		t.Errorf("UNKN Features() = %v, want empty", got)
	}
	r = Result{POS: POSNumeral, Numeral: &NumeralFeatures{Type: NumeralUnknown}}
	if got := r.Features(); !maps.Equal(got, map[string]string{"type": "unknown"}) {
		t.Errorf("unknown numeral Features() = %v", got)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	a := newAnalyzer(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Analyze("таагай")
		a.Analyze("тумё")
	}
}
