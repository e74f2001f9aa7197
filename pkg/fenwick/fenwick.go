// Package fenwick implements a Fenwick tree, also known as a binary
// indexed tree. Positions are one based: a tree of length n holds the
// values at indexes 1 through n, and both point updates and prefix sums
// run in O(log n).
package fenwick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrIllegalSize     = errors.New("fenwick: illegal size")
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
	ErrInvalidRange    = errors.New("fenwick: right bound must not be less than left bound")
)

// Tree is a Fenwick tree over int64 values. tree[0] is unused.
type Tree struct {
	tree []int64
}

// New returns a tree of length n with every value set to zero
func New(n int) (*Tree, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrIllegalSize, n)
	}
	return &Tree{tree: make([]int64, n+1)}, nil
}

// FromValues builds a tree in O(n) from a one based slice; values[0] is
// ignored and the tree has length len(values)-1. The slice is copied.
func FromValues(values []int64) (*Tree, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: %d values", ErrIllegalSize, len(values))
	}
	tree := make([]int64, len(values))
	copy(tree, values)
	tree[0] = 0
	for i := 1; i < len(tree); i++ {
		if parent := i + lsb(i); parent < len(tree) {
			tree[parent] += tree[i]
		}
	}
	return &Tree{tree: tree}, nil
}

// lsb isolates the least significant set bit, lsb(108) = lsb(0b1101100) = 4
func lsb(i int) int {
	return i & -i
}

// Len returns the number of positions in the tree
func (t *Tree) Len() int {
	return len(t.tree) - 1
}

func (t *Tree) check(i int) error {
	if i < 1 || i >= len(t.tree) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, i, t.Len())
	}
	return nil
}

// PrefixSum returns the sum of positions 1 through i. PrefixSum(0) is 0.
func (t *Tree) PrefixSum(i int) (int64, error) {
	if i != 0 {
		if err := t.check(i); err != nil {
			return 0, err
		}
	}
	return t.prefixSum(i), nil
}

func (t *Tree) prefixSum(i int) int64 {
	var sum int64
	for i != 0 {
		sum += t.tree[i]
		i &^= lsb(i)
	}
	return sum
}

// Sum returns the sum of positions left through right, both inclusive
func (t *Tree) Sum(left, right int) (int64, error) {
	if right < left {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, left, right)
	}
	if err := t.check(left); err != nil {
		return 0, err
	}
	if err := t.check(right); err != nil {
		return 0, err
	}
	return t.prefixSum(right) - t.prefixSum(left-1), nil
}

// Get returns the value at position i
func (t *Tree) Get(i int) (int64, error) {
	return t.Sum(i, i)
}

// Add adds v to the value at position i
func (t *Tree) Add(i int, v int64) error {
	if err := t.check(i); err != nil {
		return err
	}
	for ; i < len(t.tree); i += lsb(i) {
		t.tree[i] += v
	}
	return nil
}

// Set replaces the value at position i with v
func (t *Tree) Set(i int, v int64) error {
	cur, err := t.Get(i)
	if err != nil {
		return err
	}
	return t.Add(i, v-cur)
}

// String returns the point values at positions 1 through n
func (t *Tree) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 1; i < len(t.tree); i++ {
		if i > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(t.prefixSum(i)-t.prefixSum(i-1), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
