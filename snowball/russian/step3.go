package russian

import (
	"github.com/oarkflow/rustem/snowball/snowballword"
)

// Step 3 deletes a derivational "ость"/"ост" when it lies in R2.
func step3(w *snowballword.SnowballWord) bool {
	suffix, size := w.FirstSuffix(derivational...)
	if suffix == "" || !w.FitsInR2(size) {
		return false
	}
	w.RemoveLastNRunes(size)
	return true
}
