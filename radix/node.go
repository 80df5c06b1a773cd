package radix

import (
	"slices"
)

type node struct {
	subword  []rune
	children map[rune]*node
	// number of live insertions ending at this node; zero for inner nodes
	count int
}

func newNode(subword []rune, count int) *node {
	return &node{
		subword:  subword,
		children: make(map[rune]*node),
		count:    count,
	}
}

func (n *node) addChild(child *node) {
	if len(child.subword) > 0 {
		n.children[child.subword[0]] = child
	}
}

func (n *node) removeChild(child *node) {
	if len(child.subword) > 0 {
		delete(n.children, child.subword[0])
	}
}

// split keeps the first at runes of n and moves the rest into a new child.
func (n *node) split(at int) {
	tail := newNode(slices.Clone(n.subword[at:]), n.count)
	tail.children = n.children
	n.subword = slices.Clone(n.subword[:at])
	n.children = make(map[rune]*node)
	n.count = 0
	n.addChild(tail)
}

func mergeNodes(a *node, b *node) {
	a.subword = append(slices.Clone(a.subword), b.subword...)
	a.count = b.count
	a.children = b.children
}

func collect(n *node, word []rune, results []string) []string {
	if n.count > 0 {
		results = append(results, string(word))
	}
	for _, child := range n.children {
		results = collect(child, append(slices.Clone(word), child.subword...), results)
	}
	return results
}
