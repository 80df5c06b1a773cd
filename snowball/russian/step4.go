package russian

import (
	"github.com/oarkflow/rustem/snowball/snowballword"
)

// Step 4 drops a soft sign. When there is none it removes a superlative
// ending and then undoubles a trailing "нн", whether or not the
// superlative was there.
func step4(w *snowballword.SnowballWord) bool {
	if suffix, _ := w.RemoveFirstSuffixIn(w.RVstart, "ь"); suffix != "" {
		return true
	}

	removed := superlative.remove(w)
	if w.FitsInRV(2) && w.ReplaceSuffixRunes("нн", 2, []rune("н"), false) {
		return true
	}
	return removed
}
