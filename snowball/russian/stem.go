package russian

import (
	"strings"
	"unicode"

	"github.com/oarkflow/rustem/snowball/snowballword"
)

// Stem a Russian word. The result is lowercase and "ё" is folded into "е".
// Stop words are returned untouched unless stemStopWords is set.
func Stem(word string, stemStopWords bool) string {
	w := snowballword.New(normalize(word))
	if !stemStopWords && IsStopWord(w.String()) {
		return w.String()
	}

	findRegions(w)
	if len(w.RV()) == 0 {
		return w.String()
	}

	step1(w)
	step2(w)
	step3(w)
	step4(w)
	return w.String()
}

func normalize(word string) string {
	return strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if r == 'ё' {
			return 'е'
		}
		return r
	}, word)
}
