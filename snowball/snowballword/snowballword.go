/*
Package snowballword defines the SnowballWord struct that carries the
"state" of a word while it is being stemmed: the runes themselves and
the start of each region the snowball steps are allowed to touch.
*/
package snowballword

import (
	"fmt"
	"unicode/utf8"
)

// SnowballWord represents a word that is going to be stemmed.
type SnowballWord struct {

	// A slice of runes
	RS []rune

	// The index in RS where the R1 region begins
	R1start int

	// The index in RS where the R2 region begins
	R2start int

	// The index in RS where the RV region begins
	RVstart int
}

// New creates a SnowballWord with every region empty.
func New(in string) (word *SnowballWord) {
	word = &SnowballWord{RS: []rune(in)}
	word.R1start = len(word.RS)
	word.R2start = len(word.RS)
	word.RVstart = len(word.RS)
	return
}

// RemoveLastNRunes drops the last `n` runes.
func (w *SnowballWord) RemoveLastNRunes(n int) {
	if n <= 0 {
		return
	}
	if n > len(w.RS) {
		n = len(w.RS)
	}
	w.RS = w.RS[:len(w.RS)-n]
	w.resetRegions()
}

// ReplaceSuffixRunes replaces the last suffixRunesSize runes with
// replacementRunes. If `force` is false the suffix must be present.
func (w *SnowballWord) ReplaceSuffixRunes(suffix string, suffixRunesSize int, replacementRunes []rune, force bool) bool {
	if !force && !w.HasSuffixRunes(suffix) {
		return false
	}
	if suffixRunesSize > len(w.RS) {
		return false
	}
	lenWithoutSuffix := len(w.RS) - suffixRunesSize
	w.RS = append(w.RS[:lenWithoutSuffix], replacementRunes...)
	w.resetRegions()
	return true
}

// Keeps every region start within the bounds of RS.
func (w *SnowballWord) resetRegions() {
	rsLen := len(w.RS)
	if w.R1start > rsLen {
		w.R1start = rsLen
	}
	if w.R2start > rsLen {
		w.R2start = rsLen
	}
	if w.RVstart > rsLen {
		w.RVstart = rsLen
	}
}

// FitsInR2 reports whether `x` trailing runes lie inside R2.
func (w *SnowballWord) FitsInR2(x int) bool {
	return w.R2start <= len(w.RS)-x
}

// FitsInRV reports whether `x` trailing runes lie inside RV.
func (w *SnowballWord) FitsInRV(x int) bool {
	return w.RVstart <= len(w.RS)-x
}

// RV returns the region the steps may change.
func (w *SnowballWord) RV() []rune {
	return w.RS[w.RVstart:]
}

func (w *SnowballWord) String() string {
	return string(w.RS)
}

func (w *SnowballWord) DebugString() string {
	return fmt.Sprintf("{\"%s\", %d, %d, %d}", w.String(), w.R1start, w.R2start, w.RVstart)
}

// HasSuffixRunesIn reports whether `w.RS[startPos:endPos]` ends with `suffix`.
func (w *SnowballWord) HasSuffixRunesIn(startPos, endPos int, suffix string) bool {
	if startPos < 0 {
		startPos = 0
	}
	if endPos > len(w.RS) {
		endPos = len(w.RS)
	}
	if utf8.RuneCountInString(suffix) > endPos-startPos {
		return false
	}
	i := endPos - 1
	for len(suffix) > 0 {
		r, n := utf8.DecodeLastRuneInString(suffix)
		if w.RS[i] != r {
			return false
		}
		suffix = suffix[:len(suffix)-n]
		i--
	}
	return true
}

// HasSuffixRunes reports whether `w` ends with `suffix`.
func (w *SnowballWord) HasSuffixRunes(suffix string) bool {
	return w.HasSuffixRunesIn(0, len(w.RS), suffix)
}

// FirstSuffixIfIn finds the first of `suffixes` that ends at endPos; if it
// starts before startPos nothing is returned. Callers that want the longest
// match must order `suffixes` longest first.
func (w *SnowballWord) FirstSuffixIfIn(startPos, endPos int, suffixes ...string) (suffix string, suffixRunesSize int) {
	for _, suffix = range suffixes {
		if w.HasSuffixRunesIn(0, endPos, suffix) {
			suffixRunesSize = utf8.RuneCountInString(suffix)
			if endPos-suffixRunesSize >= startPos {
				return suffix, suffixRunesSize
			}
			return "", 0
		}
	}
	return "", 0
}

// FirstSuffixIn finds the first of `suffixes` that lies entirely inside
// `w.RS[startPos:endPos]`.
func (w *SnowballWord) FirstSuffixIn(startPos, endPos int, suffixes ...string) (suffix string, suffixRunesSize int) {
	for _, suffix = range suffixes {
		if w.HasSuffixRunesIn(startPos, endPos, suffix) {
			return suffix, utf8.RuneCountInString(suffix)
		}
	}
	return "", 0
}

// RemoveFirstSuffixIn removes the first suffix found in `w.RS[startPos:]`.
func (w *SnowballWord) RemoveFirstSuffixIn(startPos int, suffixes ...string) (suffix string, suffixRunesSize int) {
	suffix, suffixRunesSize = w.FirstSuffixIn(startPos, len(w.RS), suffixes...)
	if suffix != "" {
		w.RemoveLastNRunes(suffixRunesSize)
	}
	return
}

func (w *SnowballWord) FirstSuffix(suffixes ...string) (suffix string, suffixRunesSize int) {
	return w.FirstSuffixIfIn(0, len(w.RS), suffixes...)
}
