package russian

import (
	"github.com/oarkflow/rustem/snowball/snowballword"
)

// Step 1 removes the grammatical ending. A perfective gerund ends the
// step on its own; otherwise a reflexive ending is dropped and then one of
// adjectival, verb or noun endings, in that order.
func step1(w *snowballword.SnowballWord) bool {
	if perfectiveGerund.remove(w) {
		return true
	}

	changed := reflexive.remove(w)
	switch {
	case adjective.remove(w):
		// Adjectival = adjective optionally preceded by a participle.
		participle.remove(w)
		return true
	case verb.remove(w):
		return true
	case noun.remove(w):
		return true
	}
	return changed
}
