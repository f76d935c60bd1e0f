// Package clist contains the implementation of a circular, singly linked list.
//
// The last node of the list links back to the first one, so the chain has no
// end. The list only keeps a reference to its tail, the head is always the
// node following the tail and is therefore reachable in a single step.
//
// A list holding a single element is represented by a node linking to itself.
// Traversals stop when they come back to the node they started from, which is
// detected by comparing nodes, not the elements they hold.
package clist

import (
	"github.com/emirpasic/gods/containers"

	"github.com/segmentio/sequence/container"
)

type node[T any] struct {
	element T
	next    *node[T]
}

// List is a circular singly linked list of elements of type T.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
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

func (list *List[T]) head() *node[T] {
	if list.tail == nil {
		return nil
	}
	return list.tail.next
}

// First returns the element at the head of the list, or an error wrapping
// container.ErrEmptyContainer if the list is empty.
func (list *List[T]) First() (elem T, err error) {
	if list.tail == nil {
		return elem, container.EmptyError("clist.First")
	}
	return list.tail.next.element, nil
}

// Last returns the element at the tail of the list, or an error wrapping
// container.ErrEmptyContainer if the list is empty.
func (list *List[T]) Last() (elem T, err error) {
	if list.tail == nil {
		return elem, container.EmptyError("clist.Last")
	}
	return list.tail.element, nil
}

// AddFirst inserts elem at the head of the list.
//
// Complexity: O(1)
func (list *List[T]) AddFirst(elem T) {
	n := &node[T]{element: elem}
	if list.tail == nil {
		list.tail = n
	} else {
		n.next = list.tail.next
	}
	list.tail.next = n
	list.size++
}

// AddLast inserts elem at the tail of the list.
//
// The new element is first inserted at the head, right after the tail, then
// the tail advances onto it.
//
// Complexity: O(1)
func (list *List[T]) AddLast(elem T) {
	list.AddFirst(elem)
	list.tail = list.tail.next
}

// RemoveFirst removes the element at the head of the list and returns it, or
// returns an error wrapping container.ErrEmptyContainer if the list was empty.
//
// Complexity: O(1)
func (list *List[T]) RemoveFirst() (elem T, err error) {
	if list.tail == nil {
		return elem, container.EmptyError("clist.RemoveFirst")
	}

	head := list.tail.next
	if list.size == 1 {
		list.tail = nil
	} else {
		list.tail.next = head.next
	}
	head.next = nil
	list.size--
	return head.element, nil
}

// Rotate moves the head of the list to its tail: the former head becomes the
// tail, and its successor the new head. No elements are moved or copied.
//
// The method does nothing on an empty list.
//
// Complexity: O(1)
func (list *List[T]) Rotate() {
	if list.tail != nil {
		list.tail = list.tail.next
	}
}

// Range calls f for each element in the list, starting at the head and
// stopping after the tail. If f returns false, the iteration is stopped.
//
// Complexity: O(n)
func (list *List[T]) Range(f func(T) bool) {
	head := list.head()
	if head == nil {
		return
	}
	n := head
	for {
		if !f(n.element) {
			return
		}
		if n = n.next; n == head {
			return
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

// Clear removes all elements from the list.
//
// The link of the former tail is cleared, nodes are not otherwise modified.
//
// Complexity: O(1)
func (list *List[T]) Clear() {
	if list.tail != nil {
		list.tail.next = nil
	}
	list.tail = nil
	list.size = 0
}

// String returns a human-readable rendering of the list from its head, such as
// "2 -> 3 -> 4 -> (loops back)".
func (list *List[T]) String() string {
	if list.tail == nil {
		return "nil"
	}
	return container.Join[T](list.Range, " -> ") + " -> (loops back)"
}
