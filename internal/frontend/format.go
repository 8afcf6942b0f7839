package frontend

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/nganasan"
)

type template struct {
	header string
	label  string
}

var templates = map[nganasan.PartOfSpeech]template{
	nganasan.POSNoun:    {"📌 %s - существительное\n", "Граммемы"},
	nganasan.POSVerb:    {"🔧 %s - глагол\n", "Характеристики"},
	nganasan.POSPronoun: {"💬 %s - местоимение\n", "Тип"},
	nganasan.POSNumeral: {"🔢 %s - числительное\n", "Разбор"},
}

var unknownTemplate = template{"❓ %s - не удалось определить часть речи\n", "Найдены признаки"}

// Format renders an analysis as a chat reply. Nouns get a stem line.
func Format(word string, r nganasan.Result) string {
	tpl, ok := templates[r.POS]
	if !ok {
		tpl = unknownTemplate
	}

	var b strings.Builder
	fmt.Fprintf(&b, tpl.header, word)
	if r.POS == nganasan.POSNoun && r.HasStem && r.Stem != "" {
		fmt.Fprintf(&b, "Основа: %s\n", r.Stem)
	}
	if features := FormatFeatures(r); features != "" {
		fmt.Fprintf(&b, "%s: %s", tpl.label, features)
	}
	return b.String()
}

// FormatFeatures lists the determined features as "name: value" pairs.
func FormatFeatures(r nganasan.Result) string {
	pairs := r.FeaturePairs()
	parts := make([]string, 0, len(pairs))
	for _, f := range pairs {
		parts = append(parts, f.Name+": "+f.Value)
	}
	return strings.Join(parts, ", ")
}

// FormatFailure renders the reply for a word whose analysis failed.
func FormatFailure(word string, err error) string {
	return fmt.Sprintf("⚠ Не удалось разобрать слово '%s'\nОшибка: %s", word, err)
}
