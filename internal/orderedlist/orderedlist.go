// Package orderedlist provides a singly linked list that keeps its elements
// in non-decreasing order as they are inserted one at a time.
package orderedlist

import (
	"errors"
	"iter"
	"reflect"
)

// ErrNilValue reports an attempt to insert a nil value.
var ErrNilValue = errors.New("orderedlist: nil value")

// Ordering is the total-order capability an element type must expose.
// Compare returns a negative number, zero, or a positive number when the
// receiver sorts before, equal to, or after other.
type Ordering[T any] interface {
	Compare(other T) int
}

type node[T Ordering[T]] struct {
	value T
	next  *node[T]
}

// List is a chain of exclusively owned nodes in non-decreasing element
// order. The zero value is an empty list ready for use. A List is not safe
// for concurrent mutation; it assumes a single writer performing all
// insertions before any reader walks the chain.
type List[T Ordering[T]] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// New returns an empty list.
func New[T Ordering[T]]() *List[T] {
	return &List[T]{}
}

// Len reports the number of inserted elements.
func (l *List[T]) Len() int {
	return l.count
}

// Insert splices value into the chain immediately before the first element
// that is not strictly less than it, or at the tail when no such element
// exists. Among equal elements the newest insertion therefore comes first:
// equal keys end up in reverse insertion order. Insertion at the true tail
// is O(1); every other position costs a linear scan.
func (l *List[T]) Insert(value T) error {
	if isNil(value) {
		return ErrNilValue
	}

	n := &node[T]{value: value}
	l.count++

	if l.head == nil {
		l.head, l.tail = n, n
		return nil
	}
	if l.tail.value.Compare(value) < 0 {
		l.tail.next = n
		l.tail = n
		return nil
	}
	if l.head.value.Compare(value) >= 0 {
		n.next = l.head
		l.head = n
		return nil
	}

	prev := l.head
	for prev.next != nil && prev.next.value.Compare(value) < 0 {
		prev = prev.next
	}
	n.next = prev.next
	prev.next = n
	if n.next == nil {
		l.tail = n
	}
	return nil
}

// All walks the chain head to tail without mutating it. The sequence is
// restartable: repeated iteration yields identical results as long as no
// further insertions occur.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice copies the elements into a new slice in chain order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// isNil reports whether value is a nil pointer, interface, map, slice,
// func, or channel. Plain value types are never nil.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
