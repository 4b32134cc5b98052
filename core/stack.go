package core

import "github.com/emirpasic/gods/stacks/arraystack"

// PairStack is the integer stack the graph owns for its algorithms: a
// single stack of capacity ≥ 2·arcCapacity, pushed and popped two integers
// at a time, used by preprocessing's iterative DFS, by Walkdown's
// cut-vertex/child-bicomp bookkeeping, by MergeBicomps, and by
// OrientVerticesInBicomp.
//
// The backing store is github.com/emirpasic/gods/stacks/arraystack; capacity
// is tracked only as the declared value preprocessing checks once up front,
// not enforced per push.
type PairStack struct {
	s        *arraystack.Stack
	capacity int // declared capacity, in ints (i.e. 2x the number of pairs)
}

// NewPairStack allocates a PairStack whose declared capacity is capacityInts
// integers (so capacityInts/2 pairs).
func NewPairStack(capacityInts int) *PairStack {
	return &PairStack{s: arraystack.New(), capacity: capacityInts}
}

// Capacity returns the declared capacity in integers.
func (p *PairStack) Capacity() int { return p.capacity }

// Len returns the number of integers currently on the stack.
func (p *PairStack) Len() int { return p.s.Size() }

// NonEmpty reports whether the stack holds at least one pair.
func (p *PairStack) NonEmpty() bool { return !p.s.Empty() }

// Clear empties the stack without changing its declared capacity.
func (p *PairStack) Clear() { p.s.Clear() }

// Push2 pushes the pair (a, b); a later Pop2 returns them in the same order.
func (p *PairStack) Push2(a, b int) {
	p.s.Push(a)
	p.s.Push(b)
}

// Pop2 pops the most recently pushed pair, returning it in (a, b) push order.
// It panics if the stack holds fewer than two integers, which would itself
// be an INTERNAL invariant violation in every caller.
func (p *PairStack) Pop2() (a, b int) {
	bv, ok := p.s.Pop()
	if !ok {
		panic("core: PairStack.Pop2 on empty stack")
	}
	av, ok := p.s.Pop()
	if !ok {
		panic("core: PairStack.Pop2 on odd-length stack")
	}
	return av.(int), bv.(int)
}
