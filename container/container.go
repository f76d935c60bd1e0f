// Package container contains the definitions shared by the sequence containers
// of this module.
//
// The containers themselves live in sub-packages: array provides a growable
// array, slist a singly linked list, dlist a doubly linked list with sentinel
// nodes, and clist a circular singly linked list. None of them depend on each
// other, programs pick the one matching the access pattern they need.
//
// None of the containers are safe to use concurrently from multiple goroutines.
// Synchronization is left to the application.
package container

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var (
	// ErrIndexOutOfRange is returned when an index argument falls outside of
	// the bounds accepted by an operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyContainer is returned when attempting to read or remove values
	// from a container which holds no elements.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrInvalidNode is returned when a node passed to a list does not belong
	// to it, or is one of its sentinels.
	ErrInvalidNode = errors.New("node does not belong to the list")
)

// Interface is the interface implemented by all containers of this module.
//
// The methods of containers.Container are included so the containers can be
// used where gods containers are expected.
type Interface[T any] interface {
	// Returns the number of elements in the container.
	Len() int

	// Calls f for each element in the container, in sequence order. If f
	// returns false, iteration stops. Ranging never modifies the container.
	Range(f func(T) bool)

	// Returns a newly allocated slice holding the elements of the container.
	Slice() []T

	containers.Container
}

// IndexError returns an error wrapping ErrIndexOutOfRange, reporting that index
// was not within [0,limit) for the operation op.
func IndexError(op string, index, limit int) error {
	return fmt.Errorf("%s: index %d out of range [0,%d): %w", op, index, limit, ErrIndexOutOfRange)
}

// EmptyError returns an error wrapping ErrEmptyContainer for the operation op.
func EmptyError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmptyContainer)
}

// NodeError returns an error wrapping ErrInvalidNode for the operation op.
func NodeError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrInvalidNode)
}

// Values converts a slice of elements to the untyped form returned by the
// Values method of gods containers.
func Values[T any](elems []T) []interface{} {
	values := make([]interface{}, len(elems))
	for i, e := range elems {
		values[i] = e
	}
	return values
}

// Join renders elements produced by rangeFunc, separated by sep.
func Join[T any](rangeFunc func(func(T) bool), sep string) string {
	b := strings.Builder{}
	n := 0
	rangeFunc(func(elem T) bool {
		if n != 0 {
			b.WriteString(sep)
		}
		b.WriteString(utils.ToString(elem))
		n++
		return true
	})
	return b.String()
}
