package nganasan

import (
	"slices"
	"strconv"
	"strings"
)

// Number is grammatical number. The zero value means "not determined".
type Number int

const (
	NumberNone Number = iota
	Singular
	Dual
	Plural
)

// Numbers lists the numbers in scan order.
var Numbers = []Number{Singular, Dual, Plural}

func (n Number) String() string {
	switch n {
	case Singular:
		return "sg"
	case Dual:
		return "dl"
	case Plural:
		return "pl"
	}
	return ""
}

// Person is grammatical person, 1 to 3. Zero means "not determined".
type Person int

const (
	PersonNone Person = iota
	First
	Second
	Third
)

// Persons lists the persons in scan order.
var Persons = []Person{First, Second, Third}

func (p Person) String() string {
	if p < First || p > Third {
		return ""
	}
	return strconv.Itoa(int(p))
}

// Case is a noun case.
type Case int

const (
	CaseNone Case = iota
	Nominative
	Dative
	Locative
	Ablative
	Prolative
)

// ObliqueCases lists the suffixed cases in scan order.
var ObliqueCases = []Case{Dative, Locative, Ablative, Prolative}

func (c Case) String() string {
	switch c {
	case Nominative:
		return "nom"
	case Dative:
		return "dat"
	case Locative:
		return "loc"
	case Ablative:
		return "abl"
	case Prolative:
		return "prol"
	}
	return ""
}

// Declension identifies one of the three noun declensions:
// 1 for stems in a long vowel or diphthong, 2 for other vowel stems,
// 3 for consonant stems.
type Declension int

// Declensions lists the declensions in scan order.
var Declensions = []Declension{1, 2, 3}

func (d Declension) String() string {
	if d < 1 || d > 3 {
		return ""
	}
	return strconv.Itoa(int(d))
}

// Tense is a verb tense.
type Tense int

const (
	TenseNone Tense = iota
	Present
	Past
	Future
)

// Tenses lists the tenses in scan order.
var Tenses = []Tense{Present, Past, Future}

func (t Tense) String() string {
	switch t {
	case Present:
		return "pres"
	case Past:
		return "past"
	case Future:
		return "fut"
	}
	return ""
}

// Aspect distinguishes the two tense markers of each tense.
type Aspect int

const (
	AspectNone Aspect = iota
	Durative
	Momentaneous
)

// Aspects lists the aspects in scan order.
var Aspects = []Aspect{Durative, Momentaneous}

func (a Aspect) String() string {
	switch a {
	case Durative:
		return "dur"
	case Momentaneous:
		return "mom"
	}
	return ""
}

// Mood is a non-indicative verb mood. MoodNone stands for the indicative.
type Mood int

const (
	MoodNone Mood = iota
	Imperative
	Optative
	Conditional
)

// Moods lists the moods in scan order.
var Moods = []Mood{Imperative, Optative, Conditional}

func (m Mood) String() string {
	switch m {
	case Imperative:
		return "imperative"
	case Optative:
		return "optative"
	case Conditional:
		return "conditional"
	}
	return ""
}

// ObjectClass is the object number a subjective-objective form agrees with.
type ObjectClass int

const (
	ObjectNone ObjectClass = iota
	SingularObject
	DualObject
	PluralObject
)

// ObjectClasses lists the object classes in scan order.
var ObjectClasses = []ObjectClass{SingularObject, DualObject, PluralObject}

func (o ObjectClass) String() string {
	switch o {
	case SingularObject:
		return "sg_obj"
	case DualObject:
		return "dl_obj"
	case PluralObject:
		return "pl_obj"
	}
	return ""
}

// Conjugation is a verb conjugation family. The subjective-objective
// family is split by object class.
type Conjugation int

const (
	ConjugationNone Conjugation = iota
	Subjective
	SubjectiveObjectiveSg
	SubjectiveObjectiveDl
	SubjectiveObjectivePl
	SubjectiveNonObjective
)

func (c Conjugation) String() string {
	switch c {
	case Subjective:
		return "subjective"
	case SubjectiveObjectiveSg, SubjectiveObjectiveDl, SubjectiveObjectivePl:
		return "subj_obj_" + c.Object().String()
	case SubjectiveNonObjective:
		return "subj_nonobj"
	}
	return ""
}

// Object returns the object class of a subjective-objective conjugation,
// or ObjectNone for the other families.
func (c Conjugation) Object() ObjectClass {
	switch c {
	case SubjectiveObjectiveSg:
		return SingularObject
	case SubjectiveObjectiveDl:
		return DualObject
	case SubjectiveObjectivePl:
		return PluralObject
	}
	return ObjectNone
}

// subjectiveObjective returns the conjugation agreeing with object class o.
func subjectiveObjective(o ObjectClass) Conjugation {
	switch o {
	case SingularObject:
		return SubjectiveObjectiveSg
	case DualObject:
		return SubjectiveObjectiveDl
	case PluralObject:
		return SubjectiveObjectivePl
	}
	return ConjugationNone
}

// Pronoun subtypes.
var (
	DemonstrativeSubtypes = []string{"proximal", "distal", "remote"}
	InterrogativeSubtypes = []string{"who", "what", "which"}
)

// NumeralForm is a numeral lexicon entry.
type NumeralForm struct {
	Value int
	Form  string
}

// Derivation is a derived-numeral template. An underscore in Template
// marks where the cardinal base goes; a template without one is
// appended to the base.
type Derivation struct {
	Type     NumeralType
	Template string
}

// Apply builds the derived form of base.
func (d Derivation) Apply(base string) string {
	if !strings.Contains(d.Template, "_") {
		return base + d.Template
	}
	return strings.ReplaceAll(d.Template, "_", base)
}

// Alternation is a consonant alternation pattern. It is reference data:
// no analysis rule consults it.
type Alternation struct {
	Name   string
	Source string
	Target string
}

type gridCell struct {
	n Number
	p Person
}

type nounCell struct {
	d Declension
	c Case
	n Number
}

type subjectiveCell struct {
	t Tense
	n Number
	p Person
}

type objectCell struct {
	o ObjectClass
	n Number
	p Person
}

type tenseCell struct {
	t Tense
	a Aspect
}

type moodCell struct {
	m Mood
	n Number
	p Person
}

// Paradigms holds the suffix tables and closed lexicons. It is built once
// by the loader and never modified afterwards, so a single value can be
// shared by any number of goroutines.
type Paradigms struct {
	// nouns maps declension × case × number → suffixes in matching order.
	nouns map[nounCell][]string
	// accPlural maps declension → accusative plural marker.
	accPlural map[Declension]string

	possessives map[gridCell]string

	subjective map[subjectiveCell]string
	subjObj    map[objectCell]string
	subjNonObj map[gridCell]string

	tenses map[tenseCell]string
	moods  map[moodCell]string

	personal       map[gridCell]string
	reflexive      map[gridCell]string
	demonstratives map[string][]string
	interrogatives map[string][]string

	// cardinals and ordinals keep data-file order.
	cardinals   []NumeralForm
	ordinals    []NumeralForm
	derivations []Derivation

	alternations []Alternation
}

func newParadigms() *Paradigms {
	return &Paradigms{
		nouns:          make(map[nounCell][]string),
		accPlural:      make(map[Declension]string),
		possessives:    make(map[gridCell]string),
		subjective:     make(map[subjectiveCell]string),
		subjObj:        make(map[objectCell]string),
		subjNonObj:     make(map[gridCell]string),
		tenses:         make(map[tenseCell]string),
		moods:          make(map[moodCell]string),
		personal:       make(map[gridCell]string),
		reflexive:      make(map[gridCell]string),
		demonstratives: make(map[string][]string),
		interrogatives: make(map[string][]string),
	}
}

// NounSuffixes returns the case suffixes of declension d for case c and
// number n, in matching order.
func (p *Paradigms) NounSuffixes(d Declension, c Case, n Number) []string {
	return slices.Clone(p.nouns[nounCell{d, c, n}])
}

// AccusativePlural returns the accusative plural marker of declension d.
// Only the consonant declension has one.
func (p *Paradigms) AccusativePlural(d Declension) (string, bool) {
	s, ok := p.accPlural[d]
	return s, ok
}

// Possessive returns the possessive suffix for a possessor of number n
// and person pers.
func (p *Paradigms) Possessive(n Number, pers Person) (string, bool) {
	s, ok := p.possessives[gridCell{n, pers}]
	return s, ok
}

// Subjective returns the subjective conjugation ending.
func (p *Paradigms) Subjective(t Tense, n Number, pers Person) (string, bool) {
	s, ok := p.subjective[subjectiveCell{t, n, pers}]
	return s, ok
}

// SubjectiveObjective returns the subjective-objective ending agreeing
// with object class o.
func (p *Paradigms) SubjectiveObjective(o ObjectClass, n Number, pers Person) (string, bool) {
	s, ok := p.subjObj[objectCell{o, n, pers}]
	return s, ok
}

// SubjectiveNonObjective returns the subjective-non-objective ending.
func (p *Paradigms) SubjectiveNonObjective(n Number, pers Person) (string, bool) {
	s, ok := p.subjNonObj[gridCell{n, pers}]
	return s, ok
}

// TenseMarker returns the marker of tense t in aspect a.
func (p *Paradigms) TenseMarker(t Tense, a Aspect) (string, bool) {
	s, ok := p.tenses[tenseCell{t, a}]
	return s, ok
}

// MoodSuffix returns the ending of mood m. The imperative has no first
// person cells.
func (p *Paradigms) MoodSuffix(m Mood, n Number, pers Person) (string, bool) {
	s, ok := p.moods[moodCell{m, n, pers}]
	return s, ok
}

// Personal returns the personal pronoun form.
func (p *Paradigms) Personal(n Number, pers Person) (string, bool) {
	s, ok := p.personal[gridCell{n, pers}]
	return s, ok
}

// Reflexive returns the reflexive pronoun form.
func (p *Paradigms) Reflexive(n Number, pers Person) (string, bool) {
	s, ok := p.reflexive[gridCell{n, pers}]
	return s, ok
}

// Demonstratives returns the demonstrative forms of a subtype.
func (p *Paradigms) Demonstratives(subtype string) []string {
	return slices.Clone(p.demonstratives[subtype])
}

// Interrogatives returns the interrogative forms of a subtype, with their
// trailing question mark.
func (p *Paradigms) Interrogatives(subtype string) []string {
	return slices.Clone(p.interrogatives[subtype])
}

// Cardinals returns the cardinal numerals in lexicon order.
func (p *Paradigms) Cardinals() []NumeralForm {
	return slices.Clone(p.cardinals)
}

// Ordinals returns the ordinal numerals in lexicon order.
func (p *Paradigms) Ordinals() []NumeralForm {
	return slices.Clone(p.ordinals)
}

// Derivations returns the derived-numeral templates in matching order.
func (p *Paradigms) Derivations() []Derivation {
	return slices.Clone(p.derivations)
}

// Alternations returns the consonant alternation table.
func (p *Paradigms) Alternations() []Alternation {
	return slices.Clone(p.alternations)
}
