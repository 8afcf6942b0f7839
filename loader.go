package nganasan

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// defaultData is the paradigm data shipped with the package.
//
//go:embed data/paradigms.txt
var defaultData []byte

// loadDefaultParadigms parses the embedded data file.
func loadDefaultParadigms() (*Paradigms, error) {
	return loadParadigms(bytes.NewReader(defaultData))
}

// loadParadigmsFile parses the data file at path.
func loadParadigmsFile(path string) (*Paradigms, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open paradigms")
	}
	defer f.Close()
	return loadParadigms(f)
}

// loadParadigms reads a paradigm data file and checks that every declared
// cell is populated.
// Format: one "directive:key:...:value" cell per line, "!" starts a
// comment line.
func loadParadigms(r io.Reader) (*Paradigms, error) {
	p := newParadigms()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := p.parseLine(line); err != nil {
			return nil, errors.Wrapf(err, "paradigms line %d", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read paradigms")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// parseLine adds the cell described by one data line.
func (p *Paradigms) parseLine(line string) error {
	directive, rest, _ := strings.Cut(line, ":")

	switch directive {
	case "noun":
		f, err := fields(rest, 4)
		if err != nil {
			return err
		}
		d, err := parseLabel("declension", f[0], Declensions)
		if err != nil {
			return err
		}
		c, err := parseLabel("case", f[1], ObliqueCases)
		if err != nil {
			return err
		}
		n, err := parseLabel("number", f[2], Numbers)
		if err != nil {
			return err
		}
		key := nounCell{d, c, n}
		if _, dup := p.nouns[key]; dup {
			return duplicate(line)
		}
		p.nouns[key] = suffixList(f[3])

	case "accpl":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		d, err := parseLabel("declension", f[0], Declensions)
		if err != nil {
			return err
		}
		if _, dup := p.accPlural[d]; dup {
			return duplicate(line)
		}
		p.accPlural[d] = suffix(f[1])

	case "poss", "snobj":
		f, err := fields(rest, 3)
		if err != nil {
			return err
		}
		key, err := parseGridCell(f[0], f[1])
		if err != nil {
			return err
		}
		table := p.possessives
		if directive == "snobj" {
			table = p.subjNonObj
		}
		return putCell(table, key, suffix(f[2]), line)

	case "subj":
		f, err := fields(rest, 4)
		if err != nil {
			return err
		}
		t, err := parseLabel("tense", f[0], Tenses)
		if err != nil {
			return err
		}
		g, err := parseGridCell(f[1], f[2])
		if err != nil {
			return err
		}
		return putCell(p.subjective, subjectiveCell{t, g.n, g.p}, suffix(f[3]), line)

	case "sobj":
		f, err := fields(rest, 4)
		if err != nil {
			return err
		}
		o, err := parseLabel("object class", f[0], ObjectClasses)
		if err != nil {
			return err
		}
		g, err := parseGridCell(f[1], f[2])
		if err != nil {
			return err
		}
		return putCell(p.subjObj, objectCell{o, g.n, g.p}, suffix(f[3]), line)

	case "tense":
		f, err := fields(rest, 3)
		if err != nil {
			return err
		}
		t, err := parseLabel("tense", f[0], Tenses)
		if err != nil {
			return err
		}
		a, err := parseLabel("aspect", f[1], Aspects)
		if err != nil {
			return err
		}
		marker := suffix(f[2])
		if marker == "" {
			// an empty marker would be contained in every word
			return errors.Errorf("empty tense marker for %s %s", t, a)
		}
		return putCell(p.tenses, tenseCell{t, a}, marker, line)

	case "mood":
		f, err := fields(rest, 4)
		if err != nil {
			return err
		}
		m, err := parseLabel("mood", f[0], Moods)
		if err != nil {
			return err
		}
		g, err := parseGridCell(f[1], f[2])
		if err != nil {
			return err
		}
		if m == Imperative && g.p == First {
			return errors.New("the imperative has no first person")
		}
		return putCell(p.moods, moodCell{m, g.n, g.p}, suffix(f[3]), line)

	case "pron":
		return p.parsePronoun(rest, line)

	case "card", "ord":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		v, err := strconv.Atoi(f[0])
		if err != nil {
			return errors.Wrapf(err, "numeral value %q", f[0])
		}
		if f[1] == "" {
			return errors.Errorf("empty numeral form for %d", v)
		}
		list := &p.cardinals
		if directive == "ord" {
			list = &p.ordinals
		}
		for _, nf := range *list {
			if nf.Value == v {
				return duplicate(line)
			}
		}
		*list = append(*list, NumeralForm{Value: v, Form: f[1]})

	case "deriv":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		t, err := parseLabel("derivation", f[0], derivedNumeralTypes)
		if err != nil {
			return err
		}
		for _, d := range p.derivations {
			if d.Type == t {
				return duplicate(line)
			}
		}
		p.derivations = append(p.derivations, Derivation{Type: t, Template: f[1]})

	case "alt":
		f, err := fields(rest, 3)
		if err != nil {
			return err
		}
		for _, a := range p.alternations {
			if a.Name == f[0] {
				return duplicate(line)
			}
		}
		p.alternations = append(p.alternations, Alternation{Name: f[0], Source: f[1], Target: f[2]})

	default:
		return errors.Errorf("unknown directive %q", directive)
	}
	return nil
}

// parsePronoun handles the "pron:" directives.
func (p *Paradigms) parsePronoun(rest, line string) error {
	kind, rest, _ := strings.Cut(rest, ":")
	switch kind {
	case "personal", "reflexive":
		f, err := fields(rest, 3)
		if err != nil {
			return err
		}
		key, err := parseGridCell(f[0], f[1])
		if err != nil {
			return err
		}
		if f[2] == "" {
			return errors.Errorf("empty %s pronoun", kind)
		}
		table := p.personal
		if kind == "reflexive" {
			table = p.reflexive
		}
		return putCell(table, key, f[2], line)

	case "demonstrative", "interrogative":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		table, subtypes := p.demonstratives, DemonstrativeSubtypes
		if kind == "interrogative" {
			table, subtypes = p.interrogatives, InterrogativeSubtypes
		}
		if !slices.Contains(subtypes, f[0]) {
			return errors.Errorf("unknown %s subtype %q", kind, f[0])
		}
		if _, dup := table[f[0]]; dup {
			return duplicate(line)
		}
		forms := suffixList(f[1])
		if slices.Contains(forms, "") {
			return errors.Errorf("empty %s pronoun", kind)
		}
		table[f[0]] = forms

	default:
		return errors.Errorf("unknown pronoun class %q", kind)
	}
	return nil
}

// validate checks that every declared cell has been populated.
func (p *Paradigms) validate() error {
	var missing []string
	miss := func(format string, a ...any) {
		missing = append(missing, fmt.Sprintf(format, a...))
	}

	for _, d := range Declensions {
		for _, c := range ObliqueCases {
			for _, n := range Numbers {
				if _, ok := p.nouns[nounCell{d, c, n}]; !ok {
					miss("noun:%s:%s:%s", d, c, n)
				}
			}
		}
	}
	if _, ok := p.accPlural[3]; !ok {
		miss("accpl:3")
	}
	for _, t := range Tenses {
		for _, a := range Aspects {
			if _, ok := p.tenses[tenseCell{t, a}]; !ok {
				miss("tense:%s:%s", t, a)
			}
		}
	}
	for _, n := range Numbers {
		for _, pers := range Persons {
			g := gridCell{n, pers}
			if _, ok := p.possessives[g]; !ok {
				miss("poss:%s:%s", n, pers)
			}
			if _, ok := p.subjNonObj[g]; !ok {
				miss("snobj:%s:%s", n, pers)
			}
			if _, ok := p.personal[g]; !ok {
				miss("pron:personal:%s:%s", n, pers)
			}
			if _, ok := p.reflexive[g]; !ok {
				miss("pron:reflexive:%s:%s", n, pers)
			}
			for _, t := range Tenses {
				if _, ok := p.subjective[subjectiveCell{t, n, pers}]; !ok {
					miss("subj:%s:%s:%s", t, n, pers)
				}
			}
			for _, o := range ObjectClasses {
				if _, ok := p.subjObj[objectCell{o, n, pers}]; !ok {
					miss("sobj:%s:%s:%s", o, n, pers)
				}
			}
			for _, m := range Moods {
				if m == Imperative && pers == First {
					continue
				}
				if _, ok := p.moods[moodCell{m, n, pers}]; !ok {
					miss("mood:%s:%s:%s", m, n, pers)
				}
			}
		}
	}
	for _, s := range DemonstrativeSubtypes {
		if _, ok := p.demonstratives[s]; !ok {
			miss("pron:demonstrative:%s", s)
		}
	}
	for _, s := range InterrogativeSubtypes {
		if _, ok := p.interrogatives[s]; !ok {
			miss("pron:interrogative:%s", s)
		}
	}
	if len(p.cardinals) == 0 {
		miss("card")
	}
	if len(p.ordinals) == 0 {
		miss("ord")
	}
	for _, t := range derivedNumeralTypes {
		if !slices.ContainsFunc(p.derivations, func(d Derivation) bool { return d.Type == t }) {
			miss("deriv:%s", t)
		}
	}

	if len(missing) > 0 {
		return errors.Errorf("incomplete paradigm tables, missing %s", strings.Join(missing, ", "))
	}
	return nil
}

var derivedNumeralTypes = []NumeralType{Distributive, Collective, Multiplicative, Fractional}

// fields splits rest into exactly n colon-separated fields. The last
// field keeps any further colons.
func fields(rest string, n int) ([]string, error) {
	f := strings.SplitN(rest, ":", n)
	if len(f) != n {
		return nil, errors.Errorf("want %d fields, got %d", n, len(f))
	}
	return f, nil
}

// suffix decodes a single suffix field; "-" is the empty suffix.
func suffix(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

// suffixList decodes a comma-separated list of alternatives.
func suffixList(s string) []string {
	var out []string
	for _, g := range strings.Split(s, ",") {
		out = append(out, suffix(g))
	}
	return out
}

func parseLabel[T fmt.Stringer](kind, s string, all []T) (T, error) {
	for _, v := range all {
		if v.String() == s {
			return v, nil
		}
	}
	var zero T
	return zero, errors.Errorf("unknown %s %q", kind, s)
}

func parseGridCell(number, person string) (gridCell, error) {
	n, err := parseLabel("number", number, Numbers)
	if err != nil {
		return gridCell{}, err
	}
	p, err := parseLabel("person", person, Persons)
	if err != nil {
		return gridCell{}, err
	}
	return gridCell{n, p}, nil
}

func putCell[K comparable](table map[K]string, key K, value, line string) error {
	if _, dup := table[key]; dup {
		return duplicate(line)
	}
	table[key] = value
	return nil
}

func duplicate(line string) error {
	return errors.Errorf("duplicate cell %q", line)
}
