package lib

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

func BM25(tf float64, matchingDocsCount int, fieldLength int, avgFieldLength float64, docsCount int, k float64, b float64, d float64) float64 {
	if avgFieldLength == 0 {
		avgFieldLength = 1
	}
	idf := math.Log(1 + (float64(docsCount-matchingDocsCount)+0.5)/(float64(matchingDocsCount)+0.5))
	return idf * (d + tf*(k+1)) / (tf + k*(1-b+(b*float64(fieldLength))/avgFieldLength))
}

func Paginate(offset int, limit int, sliceLength int) (int, int) {
	if offset > sliceLength {
		offset = sliceLength
	}

	end := offset + limit
	if end > sliceLength {
		end = sliceLength
	}

	return offset, end
}

func Unique[T comparable](slice []T) (result []T) {
	seen := make(map[T]struct{})
	for _, v := range slice {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	clear(seen)
	return result
}

type Pair[K constraints.Ordered, V constraints.Ordered] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// TopN returns the n entries with the highest values, ties broken by key.
// n <= 0 returns every entry.
func TopN[K constraints.Ordered, V constraints.Ordered](m map[K]V, n int) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Key < pairs[j].Key
	})
	if n > 0 && n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}

func CommonPrefixLength(a, b []rune) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// BoundedLevenshtein reports the edit distance between a and b and whether
// it is within tolerance. The computation stops early once every entry of a
// row exceeds tolerance, in which case the distance is -1.
func BoundedLevenshtein(a, b []rune, tolerance int) (int, bool) {
	if diff := len(a) - len(b); diff > tolerance || -diff > tolerance {
		return -1, false
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > tolerance {
			return -1, false
		}
		prev, curr = curr, prev
	}
	distance := prev[len(b)]
	return distance, distance <= tolerance
}
