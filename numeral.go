package nganasan

// analyzeNumeral matches word against the cardinal and ordinal lexicons,
// then against every derived form of every cardinal.
func (a *Analyzer) analyzeNumeral(word string) Result {
	p := a.paradigms

	for _, nf := range p.cardinals {
		if word == nf.Form {
			return numeralResult(Cardinal, nf.Value)
		}
	}
	for _, nf := range p.ordinals {
		if word == nf.Form {
			return numeralResult(Ordinal, nf.Value)
		}
	}
	for _, base := range p.cardinals {
		for _, d := range p.derivations {
			if word == d.Apply(base.Form) {
				return numeralResult(d.Type, p.cardinalValue(base.Form))
			}
		}
	}
	return Result{POS: POSNumeral, Numeral: &NumeralFeatures{Type: NumeralUnknown}}
}

// cardinalValue returns the value of the first cardinal spelled form.
func (p *Paradigms) cardinalValue(form string) int {
	for _, nf := range p.cardinals {
		if nf.Form == form {
			return nf.Value
		}
	}
	return 0
}

func numeralResult(t NumeralType, value int) Result {
	return Result{POS: POSNumeral, Numeral: &NumeralFeatures{Type: t, Value: value}}
}
