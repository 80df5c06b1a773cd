package tokenizer

import (
	"github.com/oarkflow/rustem/snowball/russian"
)

type Stem func(string, bool) string

var stems = map[Language]Stem{
	RUSSIAN: russian.Stem,
}
