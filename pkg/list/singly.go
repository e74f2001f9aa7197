package list

// node is a node in a singly linked list
type node[T any] struct {
	value T
	next  *node[T]
}

// Singly is a singly linked list. New values are pushed at the front.
// The zero value is an empty list ready to use.
type Singly[T any] struct {
	head  *node[T]
	count int
}

// NewSingly returns a new, empty singly linked list
func NewSingly[T any]() *Singly[T] {
	return new(Singly[T])
}

// PushFront adds value at the front of the list
func (l *Singly[T]) PushFront(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.count++
}

// PopFront removes and returns the value at the front of the list, or
// false if the list is empty
func (l *Singly[T]) PopFront() (T, bool) {
	if l.head == nil {
		return *new(T), false
	}
	value := l.head.value
	l.head = l.head.next
	l.count--
	return value, true
}

// Front returns the value at the front of the list without removing it
func (l *Singly[T]) Front() (T, bool) {
	if l.head == nil {
		return *new(T), false
	}
	return l.head.value, true
}

// Find returns the first value (front to back) that match reports true for
func (l *Singly[T]) Find(match func(value T) bool) (T, bool) {
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			return n.value, true
		}
	}
	return *new(T), false
}

// RemoveFunc unlinks the first value that match reports true for and
// returns it. It takes O(n).
func (l *Singly[T]) RemoveFunc(match func(value T) bool) (T, bool) {
	if l.head == nil {
		return *new(T), false
	}
	if match(l.head.value) {
		return l.PopFront()
	}
	previous := l.head
	for previous.next != nil {
		if match(previous.next.value) {
			value := previous.next.value
			previous.next = previous.next.next
			l.count--
			return value, true
		}
		previous = previous.next
	}
	return *new(T), false
}

// Range calls fn for each value from front to back for as long as fn
// returns true
func (l *Singly[T]) Range(fn func(value T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Len returns the number of values in the list
func (l *Singly[T]) Len() int {
	return l.count
}

// Clear drops every value
func (l *Singly[T]) Clear() {
	l.head = nil
	l.count = 0
}
