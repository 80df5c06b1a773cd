package russian

import (
	"github.com/oarkflow/rustem/snowball/snowballword"
)

// Step 2 is to remove a trailing "и" from RV.
func step2(w *snowballword.SnowballWord) bool {
	suffix, _ := w.RemoveFirstSuffixIn(w.RVstart, "и")
	return suffix != ""
}
