package list

import "fmt"

// item is an item in a doubly linked list
type item[T any] struct {
	value      T
	prev, next *item[T]
}

func (i *item[T]) String() string {
	return fmt.Sprintf("item[value=%v, prev=%p, next=%p]", i.value, i.prev, i.next)
}

// Doubly is a doubly linked list built around two sentinel items, so
// linking and unlinking never has to special case the ends
type Doubly[T any] struct {
	head, tail *item[T] // sentinels
	count      int
}

// NewDoubly returns a new, empty doubly linked list
func NewDoubly[T any]() *Doubly[T] {
	l := new(Doubly[T])
	l.init()
	return l
}

func (l *Doubly[T]) init() {
	l.head = new(item[T])
	l.tail = new(item[T])
	l.head.next = l.tail
	l.tail.prev = l.head
	l.count = 0
}

// lazyInit makes the zero value usable
func (l *Doubly[T]) lazyInit() {
	if l.head == nil {
		l.init()
	}
}

// link inserts i right after at
func (l *Doubly[T]) link(i, at *item[T]) {
	i.prev = at
	i.next = at.next
	at.next.prev = i
	at.next = i
	l.count++
}

// unlink removes i from the list
func (l *Doubly[T]) unlink(i *item[T]) {
	i.prev.next = i.next
	i.next.prev = i.prev
	i.prev, i.next = nil, nil
	l.count--
}

// PushFront adds value at the front of the list
func (l *Doubly[T]) PushFront(value T) {
	l.lazyInit()
	l.link(&item[T]{value: value}, l.head)
}

// PushBack adds value at the back of the list
func (l *Doubly[T]) PushBack(value T) {
	l.lazyInit()
	l.link(&item[T]{value: value}, l.tail.prev)
}

// PopFront removes and returns the front value, or false if empty
func (l *Doubly[T]) PopFront() (T, bool) {
	if l.count == 0 {
		return *new(T), false
	}
	i := l.head.next
	l.unlink(i)
	return i.value, true
}

// PopBack removes and returns the back value, or false if empty
func (l *Doubly[T]) PopBack() (T, bool) {
	if l.count == 0 {
		return *new(T), false
	}
	i := l.tail.prev
	l.unlink(i)
	return i.value, true
}

// Front returns the front value without removing it
func (l *Doubly[T]) Front() (T, bool) {
	if l.count == 0 {
		return *new(T), false
	}
	return l.head.next.value, true
}

// Back returns the back value without removing it
func (l *Doubly[T]) Back() (T, bool) {
	if l.count == 0 {
		return *new(T), false
	}
	return l.tail.prev.value, true
}

// Range iterates over all values from front to back
func (l *Doubly[T]) Range(iter func(value T) bool) {
	if l.count == 0 {
		return
	}
	for i := l.head.next; i != l.tail; i = i.next {
		if !iter(i.value) {
			return
		}
	}
}

// Reverse iterates over all values from back to front
func (l *Doubly[T]) Reverse(iter func(value T) bool) {
	if l.count == 0 {
		return
	}
	for i := l.tail.prev; i != l.head; i = i.prev {
		if !iter(i.value) {
			return
		}
	}
}

// Len returns the number of values in the list
func (l *Doubly[T]) Len() int {
	return l.count
}

// Clear drops every value
func (l *Doubly[T]) Clear() {
	l.init()
}

func (l *Doubly[T]) String() string {
	l.lazyInit()
	ss := fmt.Sprintf("doubly:\n")
	ss += fmt.Sprintf("\tcount=%d\n", l.count)
	ss += fmt.Sprintf("\thead=%s\n", l.head)
	ss += fmt.Sprintf("\ttail=%s\n", l.tail)
	return ss
}
