// Package slist contains the implementation of a type-safe, singly linked list.
//
// Each node only links to its successor, so the list can be walked forward
// only. The list tracks both its head and its tail, which makes insertions at
// either end O(1). Removing the last element remains O(n) because the node
// preceding the tail can only be found by walking from the head.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := slist.List[string]{}
//	l.AddLast("B")
//	l.AddFirst("A")
//
//	l.Range(func(s string) bool {
//		...
//		return true
//	})
//
// Ranging over a list never modifies it and may be repeated any number of
// times. Programs that want to take the elements out of the list while
// iterating use Consume or Drain instead.
package slist

import (
	"github.com/emirpasic/gods/containers"

	"github.com/segmentio/sequence/container"
)

type node[T any] struct {
	element T
	next    *node[T]
}

// List is a singly linked list of elements of type T.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *node[T]
	// tail is only meaningful when the list is not empty, it is nil otherwise.
	tail *node[T]
	size int
}

var (
	_ container.Interface[int] = (*List[int])(nil)
	_ containers.Container     = (*List[int])(nil)
)

// New constructs a new, empty list.
func New[T any]() *List[T] { return new(List[T]) }

// Len returns the number of elements in the list.
func (list *List[T]) Len() int { return list.size }

// First returns the element at the head of the list, or an error wrapping
// container.ErrEmptyContainer if the list is empty.
func (list *List[T]) First() (elem T, err error) {
	if list.head == nil {
		return elem, container.EmptyError("slist.First")
	}
	return list.head.element, nil
}

// Last returns the element at the tail of the list, or an error wrapping
// container.ErrEmptyContainer if the list is empty.
func (list *List[T]) Last() (elem T, err error) {
	if list.tail == nil {
		return elem, container.EmptyError("slist.Last")
	}
	return list.tail.element, nil
}

// AddFirst inserts elem at the head of the list.
//
// Complexity: O(1)
func (list *List[T]) AddFirst(elem T) {
	n := &node[T]{element: elem, next: list.head}
	if list.head == nil {
		list.tail = n
	}
	list.head = n
	list.size++
}

// AddLast inserts elem at the tail of the list.
//
// Complexity: O(1)
func (list *List[T]) AddLast(elem T) {
	n := &node[T]{element: elem}
	if list.tail == nil {
		list.head = n
	} else {
		list.tail.next = n
	}
	list.tail = n
	list.size++
}

// RemoveFirst removes the element at the head of the list and returns it, or
// returns an error wrapping container.ErrEmptyContainer if the list was empty.
//
// Complexity: O(1)
func (list *List[T]) RemoveFirst() (elem T, err error) {
	if list.head == nil {
		return elem, container.EmptyError("slist.RemoveFirst")
	}
	return list.removeFirst(), nil
}

// RemoveLast removes the element at the tail of the list and returns it, or
// returns an error wrapping container.ErrEmptyContainer if the list was empty.
//
// Complexity: O(n)
func (list *List[T]) RemoveLast() (elem T, err error) {
	if list.head == nil {
		return elem, container.EmptyError("slist.RemoveLast")
	}
	if list.head == list.tail {
		return list.removeFirst(), nil
	}

	prev := list.head
	for prev.next != list.tail {
		prev = prev.next
	}

	tail := list.tail
	prev.next = nil
	list.tail = prev
	list.size--
	return tail.element, nil
}

// Consume removes the element at the head of the list and returns it. It is
// the destructive counterpart of Range, each call yields the next element and
// takes it out of the list.
//
// The method returns an error wrapping container.ErrEmptyContainer when there
// are no elements left to consume.
func (list *List[T]) Consume() (elem T, err error) {
	if list.head == nil {
		return elem, container.EmptyError("slist.Consume")
	}
	return list.removeFirst(), nil
}

// Drain consumes elements from the head of the list and passes them to f,
// until the list is empty or f returns false. The element on which f returned
// false is removed from the list as well.
//
// The method returns the number of elements removed from the list.
func (list *List[T]) Drain(f func(T) bool) (n int) {
	for list.head != nil {
		n++
		if !f(list.removeFirst()) {
			break
		}
	}
	return n
}

func (list *List[T]) removeFirst() T {
	n := list.head
	list.head = n.next
	n.next = nil
	list.size--

	if list.head == nil {
		list.tail = nil
	}
	return n.element
}

// Range calls f for each element in the list, from head to tail. If f returns
// false, the iteration is stopped.
//
// Complexity: O(n)
func (list *List[T]) Range(f func(T) bool) {
	for n := list.head; n != nil; n = n.next {
		if !f(n.element) {
			break
		}
	}
}

// Slice returns the elements of the list, from head to tail.
func (list *List[T]) Slice() []T {
	elems := make([]T, 0, list.size)
	list.Range(func(elem T) bool {
		elems = append(elems, elem)
		return true
	})
	return elems
}

// Values returns the elements of the list as a slice of empty interfaces.
func (list *List[T]) Values() []interface{} { return container.Values(list.Slice()) }

// Empty returns true if the list holds no elements.
func (list *List[T]) Empty() bool { return list.size == 0 }

// Size is an alias for Len.
func (list *List[T]) Size() int { return list.size }

// Clear removes all elements from the list. The operation runs in constant
// time.
func (list *List[T]) Clear() {
	list.head = nil
	list.tail = nil
	list.size = 0
}

// String returns a human-readable rendering of the list, such as
// "1 -> 2 -> nil".
func (list *List[T]) String() string {
	if list.head == nil {
		return "nil"
	}
	return container.Join[T](list.Range, " -> ") + " -> nil"
}
