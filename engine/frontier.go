package engine

import "container/heap"

// frontier is a max-heap of unexpanded nodes ordered by sortKey; among equal
// keys the node created first comes out first.
type frontier []*SearchNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].sortKey != f[j].sortKey {
		return f[i].sortKey > f[j].sortKey
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*SearchNode)) }

func (f *frontier) Pop() any {
	old := *f
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*f = old[:len(old)-1]
	return n
}

func (f *frontier) push(n *SearchNode) { heap.Push(f, n) }

func (f *frontier) pop() *SearchNode { return heap.Pop(f).(*SearchNode) }

// priority is the frontier key of child under parent, both scored from the
// point of view of the side moving at parent: lines that start well and keep
// improving come first.
func priority(parentScaled, childScaled float64) float64 {
	return parentScaled*10 + (childScaled - parentScaled)
}
