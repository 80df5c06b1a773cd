package snowball

import (
	"fmt"

	"github.com/oarkflow/rustem/snowball/russian"
)

const (
	VERSION string = "v0.1.0"
)

var stemmers = map[string]func(string, bool) string{
	"russian": russian.Stem,
	"ru":      russian.Stem,
}

// Stem a word in the specified language.
func Stem(word, language string, stemStopWords bool) (stemmed string, err error) {
	f, ok := stemmers[language]
	if !ok {
		err = fmt.Errorf("unknown language: %s", language)
		return
	}
	stemmed = f(word, stemStopWords)
	return
}

// Languages lists the language names accepted by Stem.
func Languages() []string {
	return []string{"russian", "ru"}
}
