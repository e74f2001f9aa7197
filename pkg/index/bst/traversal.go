package bst

import "github.com/scottcagno/collections/pkg/list"

// Iterator is called for each visited value; returning false stops the
// traversal
type Iterator[T any] func(data T) bool

// InOrder visits values in ascending order
func (t *Tree[T]) InOrder(iter Iterator[T]) {
	t.inOrder(t.root, iter)
}

func (t *Tree[T]) inOrder(n *bstNode[T], iter Iterator[T]) bool {
	if n == nil {
		return true
	}
	return t.inOrder(n.left, iter) && iter(n.data) && t.inOrder(n.right, iter)
}

// PreOrder visits each node before its subtrees
func (t *Tree[T]) PreOrder(iter Iterator[T]) {
	t.preOrder(t.root, iter)
}

func (t *Tree[T]) preOrder(n *bstNode[T], iter Iterator[T]) bool {
	if n == nil {
		return true
	}
	return iter(n.data) && t.preOrder(n.left, iter) && t.preOrder(n.right, iter)
}

// PostOrder visits each node after its subtrees
func (t *Tree[T]) PostOrder(iter Iterator[T]) {
	t.postOrder(t.root, iter)
}

func (t *Tree[T]) postOrder(n *bstNode[T], iter Iterator[T]) bool {
	if n == nil {
		return true
	}
	return t.postOrder(n.left, iter) && t.postOrder(n.right, iter) && iter(n.data)
}

// LevelOrder visits nodes breadth first, left to right
func (t *Tree[T]) LevelOrder(iter Iterator[T]) {
	if t.root == nil {
		return
	}
	queue := list.NewDoubly[*bstNode[T]]()
	queue.PushBack(t.root)
	for n, ok := queue.PopFront(); ok; n, ok = queue.PopFront() {
		if !iter(n.data) {
			return
		}
		if n.left != nil {
			queue.PushBack(n.left)
		}
		if n.right != nil {
			queue.PushBack(n.right)
		}
	}
}
