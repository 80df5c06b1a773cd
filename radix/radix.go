// Package radix holds the set of indexed stems in a compressed trie for
// prefix and fuzzy lookups.
package radix

import (
	"slices"
	"sync"

	"github.com/oarkflow/rustem/lib"
)

type FindParams struct {
	Term string
	// Tolerance is the maximum edit distance between Term and a whole word.
	Tolerance int
	// Prefix matches every word starting with Term. Ignored when Tolerance > 0.
	Prefix bool
}

type Trie struct {
	mu     sync.RWMutex
	root   *node
	length int
}

func New() *Trie {
	return &Trie{root: newNode(nil, 0)}
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.length
}

// Insert adds word. Inserting the same word again increments its count.
func (t *Trie) Insert(word string) {
	runes := []rune(word)
	if len(runes) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	currNode := t.root
	for {
		child, ok := currNode.children[runes[0]]
		if !ok {
			currNode.addChild(newNode(runes, 1))
			t.length++
			return
		}
		common := lib.CommonPrefixLength(child.subword, runes)
		if common < len(child.subword) {
			child.split(common)
		}
		runes = runes[common:]
		if len(runes) == 0 {
			if child.count == 0 {
				t.length++
			}
			child.count++
			return
		}
		currNode = child
	}
}

// Delete decrements the count of word and drops it once the count reaches
// zero. It reports whether the word was present.
func (t *Trie) Delete(word string) bool {
	runes := []rune(word)
	t.mu.Lock()
	defer t.mu.Unlock()
	var parent *node
	currNode := t.root
	for len(runes) > 0 {
		child, ok := currNode.children[runes[0]]
		if !ok || lib.CommonPrefixLength(child.subword, runes) != len(child.subword) {
			return false
		}
		runes = runes[len(child.subword):]
		parent, currNode = currNode, child
	}
	if parent == nil || currNode.count == 0 {
		return false
	}
	currNode.count--
	if currNode.count > 0 {
		return true
	}
	t.length--
	switch len(currNode.children) {
	case 0:
		parent.removeChild(currNode)
		if parent != t.root && parent.count == 0 && len(parent.children) == 1 {
			for _, only := range parent.children {
				mergeNodes(parent, only)
			}
		}
	case 1:
		for _, only := range currNode.children {
			mergeNodes(currNode, only)
		}
	}
	return true
}

// Find returns the matching words in lexical order.
func (t *Trie) Find(params FindParams) []string {
	term := []rune(params.Term)
	t.mu.RLock()
	defer t.mu.RUnlock()
	var results []string
	if params.Tolerance > 0 {
		results = t.fuzzy(t.root, nil, term, params.Tolerance, results)
	} else {
		results = t.find(term, params.Prefix)
	}
	slices.Sort(results)
	return results
}

func (t *Trie) find(term []rune, prefix bool) []string {
	currNode := t.root
	var word []rune
	for len(term) > 0 {
		child, ok := currNode.children[term[0]]
		if !ok {
			return nil
		}
		common := lib.CommonPrefixLength(child.subword, term)
		if common < len(term) && common < len(child.subword) {
			return nil
		}
		if common < len(child.subword) && !prefix {
			return nil
		}
		word = append(word, child.subword...)
		term = term[common:]
		currNode = child
	}
	if !prefix {
		if currNode.count > 0 {
			return []string{string(word)}
		}
		return nil
	}
	return collect(currNode, word, nil)
}

func (t *Trie) fuzzy(n *node, word, term []rune, tolerance int, results []string) []string {
	if len(word) > len(term)+tolerance {
		return results
	}
	if n.count > 0 {
		if _, ok := lib.BoundedLevenshtein(word, term, tolerance); ok {
			results = append(results, string(word))
		}
	}
	for _, child := range n.children {
		results = t.fuzzy(child, append(slices.Clone(word), child.subword...), term, tolerance, results)
	}
	return results
}
