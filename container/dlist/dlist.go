// Package dlist contains the implementation of a type-safe, doubly linked list
// bounded by sentinel nodes.
//
// Every list owns two permanent placeholder nodes, a header before the first
// element and a trailer after the last one. The elements of the list are
// exactly the nodes strictly between the two sentinels. Because the header
// always has a successor and the trailer always has a predecessor, insertions
// and removals never need to special case the ends of the list, or the empty
// list: all insertions are performed by linking a new node between two
// existing ones, and all removals by linking the two neighbors of a node
// together.
//
// Insertions return a *Node, which programs may retain to later remove the
// element in O(1), or to navigate the list from it:
//
//	l := dlist.New[string]()
//	l.AddLast("A")
//	b := l.AddLast("B")
//	l.AddLast("C")
//
//	for n := l.Front(); n != nil; n = n.Next() {
//		...
//	}
//
//	l.Remove(b)
//
// The sentinels are never exposed, navigation methods return nil when they
// would step on one of them.
package dlist

import (
	"github.com/emirpasic/gods/containers"

	"github.com/segmentio/sequence/container"
)

// Node values hold the elements of a List.
//
// The next link is the owning link of the chain, prev is only a back-reference
// used to walk the list backward.
type Node[T any] struct {
	element T
	prev    *Node[T]
	next    *Node[T]
	// The list that the node belongs to, nil once the node was removed.
	list *List[T]
}

// Value returns the element held by the node. After the node was removed from
// its list, the method returns the zero-value.
func (node *Node[T]) Value() T { return node.element }

// Next returns the node following this one in the list, or nil if it was the
// last node of the list or was removed from it.
func (node *Node[T]) Next() *Node[T] {
	if l := node.list; l != nil && node.next != l.trailer {
		return node.next
	}
	return nil
}

// Prev returns the node preceding this one in the list, or nil if it was the
// first node of the list or was removed from it.
func (node *Node[T]) Prev() *Node[T] {
	if l := node.list; l != nil && node.prev != l.header {
		return node.prev
	}
	return nil
}

// List values are containers of elements which support insertion and removal
// at both ends of the list in O(1), as well as removal at any position in O(1)
// given the node holding the element.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	header  *Node[T]
	trailer *Node[T]
	size    int
}

var (
	_ container.Interface[int] = (*List[int])(nil)
	_ containers.Container     = (*List[int])(nil)
)

// New constructs a new, empty list.
func New[T any]() *List[T] {
	l := new(List[T])
	l.Init()
	return l
}

// Init initializes (or re-initializes) the list, allocating its sentinel
// nodes. Nodes which belonged to the list before the call are detached and
// cannot be used with the list anymore.
//
// Complexity: O(n)
func (list *List[T]) Init() {
	if list.header != nil {
		list.Clear()
		list.header.list = nil
		list.trailer.list = nil
	}
	list.header = &Node[T]{list: list}
	list.trailer = &Node[T]{list: list}
	list.header.next = list.trailer
	list.trailer.prev = list.header
	list.size = 0
}

func (list *List[T]) lazyInit() {
	if list.header == nil {
		list.Init()
	}
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int { return list.size }

// Front returns the first node of the list, or nil if the list is empty.
func (list *List[T]) Front() *Node[T] {
	if list.size == 0 {
		return nil
	}
	return list.header.next
}

// Back returns the last node of the list, or nil if the list is empty.
func (list *List[T]) Back() *Node[T] {
	if list.size == 0 {
		return nil
	}
	return list.trailer.prev
}

// AddFirst inserts elem at the front of the list and returns the node holding
// it.
//
// Complexity: O(1)
func (list *List[T]) AddFirst(elem T) *Node[T] {
	list.lazyInit()
	return list.insertBetween(elem, list.header, list.header.next)
}

// AddLast inserts elem at the back of the list and returns the node holding
// it.
//
// Complexity: O(1)
func (list *List[T]) AddLast(elem T) *Node[T] {
	list.lazyInit()
	return list.insertBetween(elem, list.trailer.prev, list.trailer)
}

// InsertBefore inserts elem right before mark and returns the node holding it.
//
// The method returns an error wrapping container.ErrInvalidNode if mark is not
// an element of the list.
//
// Complexity: O(1)
func (list *List[T]) InsertBefore(elem T, mark *Node[T]) (*Node[T], error) {
	if !list.contains(mark) {
		return nil, container.NodeError("dlist.InsertBefore")
	}
	return list.insertBetween(elem, mark.prev, mark), nil
}

// InsertAfter inserts elem right after mark and returns the node holding it.
//
// The method returns an error wrapping container.ErrInvalidNode if mark is not
// an element of the list.
//
// Complexity: O(1)
func (list *List[T]) InsertAfter(elem T, mark *Node[T]) (*Node[T], error) {
	if !list.contains(mark) {
		return nil, container.NodeError("dlist.InsertAfter")
	}
	return list.insertBetween(elem, mark, mark.next), nil
}

// RemoveFirst removes the first element of the list and returns it, or returns
// an error wrapping container.ErrEmptyContainer if the list was empty.
//
// Complexity: O(1)
func (list *List[T]) RemoveFirst() (elem T, err error) {
	if list.size == 0 {
		return elem, container.EmptyError("dlist.RemoveFirst")
	}
	return list.remove(list.header.next), nil
}

// RemoveLast removes the last element of the list and returns it, or returns an
// error wrapping container.ErrEmptyContainer if the list was empty.
//
// Complexity: O(1)
func (list *List[T]) RemoveLast() (elem T, err error) {
	if list.size == 0 {
		return elem, container.EmptyError("dlist.RemoveLast")
	}
	return list.remove(list.trailer.prev), nil
}

// Remove removes node from the list and returns the element it held.
//
// The method returns an error wrapping container.ErrInvalidNode if node is nil,
// was already removed, or belongs to another list. The list is not modified in
// that case.
//
// Complexity: O(1)
func (list *List[T]) Remove(node *Node[T]) (elem T, err error) {
	if !list.contains(node) {
		return elem, container.NodeError("dlist.Remove")
	}
	return list.remove(node), nil
}

// MoveToFront moves node to the front of the list.
//
// The operation is idempotent, it does nothing if node is already at the front
// of the list. The method returns an error wrapping container.ErrInvalidNode
// if node is not an element of the list.
//
// Complexity: O(1)
func (list *List[T]) MoveToFront(node *Node[T]) error {
	if !list.contains(node) {
		return container.NodeError("dlist.MoveToFront")
	}
	if node != list.header.next {
		list.unlink(node)
		list.link(node, list.header, list.header.next)
	}
	return nil
}

// MoveToBack moves node to the back of the list.
//
// The operation is idempotent, it does nothing if node is already at the back
// of the list. The method returns an error wrapping container.ErrInvalidNode
// if node is not an element of the list.
//
// Complexity: O(1)
func (list *List[T]) MoveToBack(node *Node[T]) error {
	if !list.contains(node) {
		return container.NodeError("dlist.MoveToBack")
	}
	if node != list.trailer.prev {
		list.unlink(node)
		list.link(node, list.trailer.prev, list.trailer)
	}
	return nil
}

func (list *List[T]) contains(node *Node[T]) bool {
	return node != nil && node.list == list && node != list.header && node != list.trailer
}

func (list *List[T]) insertBetween(elem T, predecessor, successor *Node[T]) *Node[T] {
	node := &Node[T]{element: elem, list: list}
	list.link(node, predecessor, successor)
	list.size++
	return node
}

func (list *List[T]) link(node, predecessor, successor *Node[T]) {
	node.prev = predecessor
	node.next = successor
	predecessor.next = node
	successor.prev = node
}

func (list *List[T]) unlink(node *Node[T]) {
	node.prev.next = node.next
	node.next.prev = node.prev
}

func (list *List[T]) remove(node *Node[T]) T {
	var zero T
	list.unlink(node)

	elem := node.element
	node.element = zero
	node.prev = nil
	node.next = nil
	node.list = nil

	list.size--
	return elem
}

// Range calls f for each element in the list, from front to back. If f returns
// false, the iteration is stopped.
//
// Complexity: O(n)
func (list *List[T]) Range(f func(T) bool) {
	if list.header == nil {
		return
	}
	for n := list.header.next; n != list.trailer; n = n.next {
		if !f(n.element) {
			break
		}
	}
}

// RangeReverse calls f for each element in the list, from back to front. If f
// returns false, the iteration is stopped.
//
// Complexity: O(n)
func (list *List[T]) RangeReverse(f func(T) bool) {
	if list.trailer == nil {
		return
	}
	for n := list.trailer.prev; n != list.header; n = n.prev {
		if !f(n.element) {
			break
		}
	}
}

// Slice returns the elements of the list, from front to back.
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
// Nodes previously returned by the list are detached and cannot be used to
// remove elements anymore.
//
// Complexity: O(n)
func (list *List[T]) Clear() {
	if list.header == nil {
		return
	}
	for list.size > 0 {
		list.remove(list.header.next)
	}
}

// String returns a human-readable rendering of the list, such as
// "1 -> 2 -> nil".
func (list *List[T]) String() string {
	if list.size == 0 {
		return "nil"
	}
	return container.Join[T](list.Range, " -> ") + " -> nil"
}
