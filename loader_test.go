package nganasan

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// editedData returns the shipped data with old replaced by repl.
func editedData(t *testing.T, old, repl string) []byte {
	t.Helper()
	data := bytes.Replace(defaultData, []byte(old), []byte(repl), 1)
	if bytes.Equal(data, defaultData) {
		t.Fatalf("%q not found in data", old)
	}
	return data
}

// noOrdinals returns the shipped data without its ord lines.
func noOrdinals(t *testing.T) []byte {
	t.Helper()
	var lines [][]byte
	for _, l := range bytes.Split(defaultData, []byte("\n")) {
		if !bytes.HasPrefix(l, []byte("ord:")) {
			lines = append(lines, l)
		}
	}
	data := bytes.Join(lines, []byte("\n"))
	if bytes.Equal(data, defaultData) {
		t.Fatal("no ord lines in data")
	}
	return data
}

func TestLoadParadigmsErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"missing cell", editedData(t, "poss:sg:2:рё", "! poss:sg:2"), "missing poss:sg:2"},
		{"missing derivation", editedData(t, "deriv:fractional:_ хельге", "! fractional"), "missing deriv:fractional"},
		{"no ordinals", noOrdinals(t), "missing ord"},
		{"duplicate", append(slices.Clone(defaultData), "\nposs:sg:1:мё\n"...), "duplicate cell"},
		{"unknown directive", append(slices.Clone(defaultData), "\nverb:sg:1\n"...), `unknown directive "verb"`},
		{"imperative first person", append(slices.Clone(defaultData), "\nmood:imperative:sg:1:м\n"...), "no first person"},
		{"empty tense marker", editedData(t, "tense:pres:dur:ту", "tense:pres:dur:-"), "empty tense marker"},
		{"unknown case", editedData(t, "noun:1:dat:sg:", "noun:1:acc:sg:"), `unknown case "acc"`},
		{"short line", append(slices.Clone(defaultData), "\nsubj:pres:sg\n"...), "want 4 fields"},
		{"bad numeral", append(slices.Clone(defaultData), "\ncard:x:нуой\n"...), "numeral value"},
		{"empty pronoun", editedData(t, "pron:personal:sg:1:мәне", "pron:personal:sg:1:"), "empty personal pronoun"},
		{"unknown subtype", append(slices.Clone(defaultData), "\npron:interrogative:where:кунə?\n"...), "unknown interrogative subtype"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromReader(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatalf("NewFromReader: got nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("NewFromReader error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadParadigmsLineNumber(t *testing.T) {
	_, err := NewFromReader(strings.NewReader("! header\n\nfoo:bar\n"))
	if err == nil || !strings.Contains(err.Error(), "paradigms line 3") {
		t.Errorf("error = %v, want it to name line 3", err)
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paradigms.txt")
	if err := os.WriteFile(path, defaultData, 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile(%q): %v", path, err)
	}
	if r := a.Analyze("таагай"); r.POS != POSNoun {
		t.Errorf("Analyze(%q).POS = %s, want NOUN", "таагай", r.POS)
	}

	_, err = NewFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil || !strings.Contains(err.Error(), "open paradigms") {
		t.Errorf("NewFromFile(missing) error = %v", err)
	}
}

func TestParadigmsAccessors(t *testing.T) {
	p := newAnalyzer(t).Paradigms()

	got := p.NounSuffixes(1, Dative, Singular)
	if want := []string{"те", "дя"}; !slices.Equal(got, want) {
		t.Fatalf("NounSuffixes(1, dat, sg) = %q, want %q", got, want)
	}
	got[0] = "xx"
	if again := p.NounSuffixes(1, Dative, Singular); again[0] != "те" {
		t.Errorf("NounSuffixes returned the table's own slice")
	}
	if s := p.NounSuffixes(1, Nominative, Singular); s != nil {
		t.Errorf("NounSuffixes(1, nom, sg) = %q, want nil", s)
	}

	if s, ok := p.AccusativePlural(3); !ok || s != "й" {
		t.Errorf("AccusativePlural(3) = %q, %v", s, ok)
	}
	if _, ok := p.AccusativePlural(1); ok {
		t.Error("AccusativePlural(1) is set")
	}
	if _, ok := p.MoodSuffix(Imperative, Singular, First); ok {
		t.Error("MoodSuffix(imperative, sg, 1) is set")
	}
	if s, ok := p.MoodSuffix(Imperative, Singular, Third); !ok || s != "" {
		t.Errorf("MoodSuffix(imperative, sg, 3) = %q, %v, want empty suffix", s, ok)
	}
	if s, _ := p.TenseMarker(Future, Momentaneous); s != `"сызэ` {
		t.Errorf("TenseMarker(fut, mom) = %q", s)
	}
	if s, _ := p.Subjective(Present, Singular, First); s != "м" {
		t.Errorf("Subjective(pres, sg, 1) = %q, want %q", s, "м")
	}
	if s, _ := p.SubjectiveObjective(DualObject, Plural, Third); s != "тун" {
		t.Errorf("SubjectiveObjective(dl_obj, pl, 3) = %q, want %q", s, "тун")
	}
	if s, _ := p.Personal(Dual, First); s != "ми" {
		t.Errorf("Personal(dl, 1) = %q, want %q", s, "ми")
	}
	if got := p.Interrogatives("which"); len(got) != 4 || got[0] != "курэди?" {
		t.Errorf("Interrogatives(which) = %q", got)
	}
	if got := p.Demonstratives("remote"); !slices.Equal(got, []string{"такээ"}) {
		t.Errorf("Demonstratives(remote) = %q", got)
	}
}

func TestDerivationApply(t *testing.T) {
	tests := []struct {
		template string
		base     string
		want     string
	}{
		{"_мены", "ситти", "ситтимены"},
		{"_ хельге", "нагур", "нагур хельге"},
		{"мены", "ситти", "ситтимены"},
	}
	for _, tt := range tests {
		d := Derivation{Type: Distributive, Template: tt.template}
		if got := d.Apply(tt.base); got != tt.want {
			t.Errorf("Derivation{%q}.Apply(%q) = %q, want %q", tt.template, tt.base, got, tt.want)
		}
	}
}
