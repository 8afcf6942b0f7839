package nganasan

// Table is a read-only listing of one paradigm, cell by cell.
type Table struct {
	// Name identifies the paradigm, e.g. "declension 1".
	Name string
	// Cells are listed in scan order.
	Cells []Cell
}

// Cell is one cell of a Table.
type Cell struct {
	// Key names the cell, e.g. "dat.sg" or "pl.3".
	Key      string
	Suffixes []string
}

// Suffixes returns every distinct suffix of the table in cell order.
func (t *Table) Suffixes() []string {
	var all []string
	for _, c := range t.Cells {
		all = append(all, c.Suffixes...)
	}
	return unique(all)
}

// DeclensionTable lists the case suffixes of declension d, followed by
// its accusative plural marker when it has one.
func (p *Paradigms) DeclensionTable(d Declension) *Table {
	if d.String() == "" {
		return nil
	}
	t := &Table{Name: "declension " + d.String()}
	for _, c := range ObliqueCases {
		for _, n := range Numbers {
			t.Cells = append(t.Cells, Cell{
				Key:      c.String() + "." + n.String(),
				Suffixes: p.NounSuffixes(d, c, n),
			})
		}
	}
	if s, ok := p.AccusativePlural(d); ok {
		t.Cells = append(t.Cells, Cell{Key: "acc.pl", Suffixes: []string{s}})
	}
	return t
}

// ConjugationTable lists the person/number endings of a conjugation.
// The tense selects the subjective grid and is ignored by the other
// families.
func (p *Paradigms) ConjugationTable(c Conjugation, tense Tense) *Table {
	if c == ConjugationNone || (c == Subjective && tense == TenseNone) {
		return nil
	}
	name := c.String()
	if c == Subjective {
		name += " " + tense.String()
	}
	return p.gridTable(name, func(n Number, pers Person) (string, bool) {
		return p.verbEnding(c, MoodNone, tense, n, pers)
	})
}

// MoodTable lists the person/number endings of mood m.
func (p *Paradigms) MoodTable(m Mood) *Table {
	if m == MoodNone {
		return nil
	}
	return p.gridTable(m.String(), func(n Number, pers Person) (string, bool) {
		return p.MoodSuffix(m, n, pers)
	})
}

// PossessiveTable lists the possessive suffixes.
func (p *Paradigms) PossessiveTable() *Table {
	return p.gridTable("possessive", p.Possessive)
}

func (p *Paradigms) gridTable(name string, cell func(Number, Person) (string, bool)) *Table {
	t := &Table{Name: name}
	for _, n := range Numbers {
		for _, pers := range Persons {
			s, ok := cell(n, pers)
			if !ok {
				continue
			}
			t.Cells = append(t.Cells, Cell{
				Key:      n.String() + "." + pers.String(),
				Suffixes: []string{s},
			})
		}
	}
	return t
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
