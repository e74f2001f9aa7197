// Package unionfind implements a disjoint-set forest over the elements
// 0 through n-1 using union by size and path compression, giving
// amortized near constant time Find and Unify.
package unionfind

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalSize = errors.New("unionfind: illegal size")
	ErrOutOfRange  = errors.New("unionfind: element out of range")
)

// UnionFind tracks a partition of 0..n-1 into disjoint components
type UnionFind struct {
	parent     []int // parent[i] == i for roots
	size       []int // component size, only valid at roots
	components int
}

// New returns a UnionFind where every element is its own component
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrIllegalSize, n)
	}
	uf := &UnionFind{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf, nil
}

func (uf *UnionFind) check(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, p, len(uf.parent))
	}
	return nil
}

// Find returns the root of the component holding p and compresses the
// path leading to it
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.check(p); err != nil {
		return -1, err
	}
	return uf.find(p), nil
}

func (uf *UnionFind) find(p int) int {
	root := p
	for root != uf.parent[root] {
		root = uf.parent[root]
	}
	for p != root {
		next := uf.parent[p]
		uf.parent[p] = root
		p = next
	}
	return root
}

// Connected reports whether p and q are in the same component
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	rp, err := uf.Find(p)
	if err != nil {
		return false, err
	}
	rq, err := uf.Find(q)
	if err != nil {
		return false, err
	}
	return rp == rq, nil
}

// ComponentSize returns the size of the component holding p
func (uf *UnionFind) ComponentSize(p int) (int, error) {
	root, err := uf.Find(p)
	if err != nil {
		return 0, err
	}
	return uf.size[root], nil
}

// Size returns the number of elements
func (uf *UnionFind) Size() int {
	return len(uf.parent)
}

// Components returns the number of disjoint components
func (uf *UnionFind) Components() int {
	return uf.components
}

// Unify merges the components holding p and q; the smaller component is
// attached under the root of the larger one. It reports whether a merge
// happened.
func (uf *UnionFind) Unify(p, q int) (bool, error) {
	r1, err := uf.Find(p)
	if err != nil {
		return false, err
	}
	r2, err := uf.Find(q)
	if err != nil {
		return false, err
	}
	if r1 == r2 {
		return false, nil
	}
	if uf.size[r1] < uf.size[r2] {
		r1, r2 = r2, r1
	}
	uf.size[r1] += uf.size[r2]
	uf.parent[r2] = r1
	uf.components--
	return true, nil
}
