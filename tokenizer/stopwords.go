package tokenizer

import (
	"strings"

	"github.com/oarkflow/rustem/snowball/russian"
)

type StopWords func(string) bool

var stopWords = map[Language]StopWords{
	RUSSIAN: func(word string) bool {
		return russian.IsStopWord(strings.ReplaceAll(word, "ё", "е"))
	},
}

// IsStopWord expects a lowercase word.
func IsStopWord(language Language, word string) bool {
	isStop, ok := stopWords[language]
	return ok && isStop(word)
}
