package bst

import "cmp"

type bstNode[T cmp.Ordered] struct {
	left  *bstNode[T]
	right *bstNode[T]
	data  T
}

// Tree is an unbalanced binary search tree holding unique values
type Tree[T cmp.Ordered] struct {
	root  *bstNode[T]
	count int
}

// NewTree creates and returns a new, empty Tree
func NewTree[T cmp.Ordered]() *Tree[T] {
	return new(Tree[T])
}

// Len returns the number of values in the tree
func (t *Tree[T]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no values
func (t *Tree[T]) IsEmpty() bool {
	return t.count == 0
}

// Add inserts data and returns true, or returns false if it was
// already present
func (t *Tree[T]) Add(data T) bool {
	if t.Contains(data) {
		return false
	}
	t.root = t.insert(t.root, data)
	t.count++
	return true
}

func (t *Tree[T]) insert(n *bstNode[T], data T) *bstNode[T] {
	if n == nil {
		return &bstNode[T]{data: data}
	}
	if cmp.Less(data, n.data) {
		n.left = t.insert(n.left, data)
	} else {
		n.right = t.insert(n.right, data)
	}
	return n
}

// Remove deletes data and returns true, or returns false if it was not
// present. A node with two children is replaced by its successor, the
// smallest value of its right subtree.
func (t *Tree[T]) Remove(data T) bool {
	if !t.Contains(data) {
		return false
	}
	t.root = t.delete(t.root, data)
	t.count--
	return true
}

func (t *Tree[T]) delete(n *bstNode[T], data T) *bstNode[T] {
	if n == nil {
		return nil
	}
	switch c := cmp.Compare(data, n.data); {
	case c < 0:
		n.left = t.delete(n.left, data)
	case c > 0:
		n.right = t.delete(n.right, data)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := t.min(n.right)
		n.data = succ.data
		n.right = t.delete(n.right, succ.data)
	}
	return n
}

// Contains reports whether data is in the tree
func (t *Tree[T]) Contains(data T) bool {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(data, n.data); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Height returns the number of nodes on the longest root to leaf path
func (t *Tree[T]) Height() int {
	return t.height(t.root)
}

func (t *Tree[T]) height(n *bstNode[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}

func (t *Tree[T]) min(n *bstNode[T]) *bstNode[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (t *Tree[T]) max(n *bstNode[T]) *bstNode[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest value, or false if the tree is empty
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		return *new(T), false
	}
	return t.min(t.root).data, true
}

// Max returns the largest value, or false if the tree is empty
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		return *new(T), false
	}
	return t.max(t.root).data, true
}
