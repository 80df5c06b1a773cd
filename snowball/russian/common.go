package russian

import (
	"sort"
	"unicode/utf8"

	"github.com/oarkflow/rustem/snowball/snowballword"
)

// suffixRule is one ending of a suffix class. When afterAYa is set the
// ending only counts if the rune in front of it is "а" or "я" and that
// rune is itself inside RV.
type suffixRule struct {
	suffix   string
	size     int
	afterAYa bool
}

// suffixClass is an ordered rule list: longest endings first, so the first
// rule that matches is the longest ending of the class present in RV.
type suffixClass []suffixRule

func newSuffixClass(plain []string, afterAYa ...string) suffixClass {
	class := make(suffixClass, 0, len(plain)+len(afterAYa))
	for _, s := range plain {
		class = append(class, suffixRule{suffix: s, size: utf8.RuneCountInString(s)})
	}
	for _, s := range afterAYa {
		class = append(class, suffixRule{suffix: s, size: utf8.RuneCountInString(s), afterAYa: true})
	}
	sort.SliceStable(class, func(i, j int) bool {
		return class[i].size > class[j].size
	})
	return class
}

func (c suffixClass) match(w *snowballword.SnowballWord) (suffixRule, bool) {
	for _, rule := range c {
		if !w.FitsInRV(rule.size) || !w.HasSuffixRunes(rule.suffix) {
			continue
		}
		if rule.afterAYa {
			pos := len(w.RS) - rule.size - 1
			if pos < w.RVstart || (w.RS[pos] != 'а' && w.RS[pos] != 'я') {
				continue
			}
		}
		return rule, true
	}
	return suffixRule{}, false
}

// remove strips the longest matching ending and reports whether it did.
func (c suffixClass) remove(w *snowballword.SnowballWord) bool {
	rule, ok := c.match(w)
	if !ok {
		return false
	}
	w.RemoveLastNRunes(rule.size)
	return true
}

var (
	perfectiveGerund = newSuffixClass(
		[]string{"ив", "ивши", "ившись", "ыв", "ывши", "ывшись"},
		"в", "вши", "вшись",
	)

	reflexive = newSuffixClass([]string{"ся", "сь"})

	adjective = newSuffixClass([]string{
		"ее", "ие", "ые", "ое", "ими", "ыми", "ей", "ий", "ый", "ой", "ем", "им", "ым", "ом",
		"его", "ого", "ему", "ому", "их", "ых", "ую", "юю", "ая", "яя", "ою", "ею",
	})

	participle = newSuffixClass(
		[]string{"ивш", "ывш", "ующ"},
		"ем", "нн", "вш", "ющ", "щ",
	)

	verb = newSuffixClass(
		[]string{
			"ила", "ыла", "ена", "ейте", "уйте", "ите", "или", "ыли", "ей", "уй", "ил", "ыл",
			"им", "ым", "ен", "ило", "ыло", "ено", "ят", "ует", "уют", "ит", "ыт", "ены",
			"ить", "ыть", "ишь", "ую", "ю",
		},
		"ла", "на", "ете", "йте", "ли", "й", "л", "ем", "н", "ло", "но", "ет", "ют", "ны",
		"ть", "ешь", "нно",
	)

	noun = newSuffixClass([]string{
		"а", "ев", "ов", "ие", "ье", "е", "иями", "ями", "ами", "еи", "ии", "и", "ией", "ей",
		"ой", "ий", "й", "иям", "ям", "ием", "ем", "ам", "ом", "о", "у", "ах", "иях", "ях",
		"ы", "ь", "ию", "ью", "ю", "ия", "ья", "я",
	})

	superlative = newSuffixClass([]string{"ейше", "ейш"})
)

// Order matters for FirstSuffixIfIn.
var derivational = []string{"ость", "ост"}

func isVowel(r rune) bool {
	switch r {
	case 'а', 'е', 'и', 'о', 'у', 'ы', 'э', 'ю', 'я':
		return true
	}
	return false
}

// findRegions sets RV to start right after the first vowel. R1 starts after
// the first consonant inside RV and R2 after the first vowel following it.
func findRegions(w *snowballword.SnowballWord) {
	n := len(w.RS)
	w.RVstart, w.R1start, w.R2start = n, n, n
	for i, r := range w.RS {
		if isVowel(r) {
			w.RVstart = i + 1
			break
		}
	}
	i := w.RVstart
	for i < n && isVowel(w.RS[i]) {
		i++
	}
	if i == n {
		return
	}
	w.R1start = i + 1
	for i++; i < n; i++ {
		if isVowel(w.RS[i]) {
			w.R2start = i + 1
			return
		}
	}
}
