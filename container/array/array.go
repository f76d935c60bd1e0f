// Package array provides the implementation of an index-addressed sequence
// backed by a contiguous buffer which grows and shrinks as elements are added
// and removed.
//
// The buffer doubles in size when an insertion finds it full, making appends
// O(1) amortized. When pops leave the buffer less than a quarter full, it is
// halved. Growing at full and shrinking at a quarter, rather than at half,
// guarantees that alternating appends and pops at a size boundary never
// trigger a reallocation on every operation.
//
// Unlike Go slices, the capacity of an Array is fully controlled by this
// policy, which makes the amortized cost of operations deterministic.
package array

import (
	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/slices"

	"github.com/segmentio/sequence/container"
)

const (
	// DefaultCapacity is the capacity of the buffer allocated by arrays
	// constructed with the default configuration.
	DefaultCapacity = 1
)

// Config carries the configuration of Array values.
type Config struct {
	Capacity int
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Array instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a configuration option setting the number of slots initially
// allocated by an Array, and the capacity it returns to when cleared.
//
// Values lower than 1 are adjusted to 1.
//
// Default: 1
func Capacity(capacity int) Option {
	return option(func(config *Config) { config.Capacity = capacity })
}

// Array is a growable array of elements of type T.
//
// The zero-value is a valid empty array, its buffer is allocated with the
// default capacity on the first insertion.
type Array[T any] struct {
	count    int
	capacity int
	initial  int
	buffer   []T
}

var (
	_ container.Interface[int] = (*Array[int])(nil)
	_ containers.Container     = (*Array[int])(nil)
)

// New constructs a new Array instance, using the list of options passed as
// arguments to configure it.
func New[T any](options ...Option) *Array[T] {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[T](config)
}

// NewWithConfig is like New but uses a Config instance to pass the array
// configuration instead of a list of options.
func NewWithConfig[T any](config *Config) *Array[T] {
	a := new(Array[T])
	a.Init(config.Capacity)
	return a
}

// Init initializes (or re-initializes) the array, releasing all its elements
// and allocating a new buffer of the given capacity.
//
// Complexity: O(capacity)
func (a *Array[T]) Init(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	a.count = 0
	a.capacity = capacity
	a.initial = capacity
	a.buffer = make([]T, capacity)
}

func (a *Array[T]) lazyInit() {
	if a.buffer == nil {
		a.Init(DefaultCapacity)
	}
}

// Len returns the number of elements in the array.
//
// Complexity: O(1)
func (a *Array[T]) Len() int { return a.count }

// Cap returns the number of slots allocated in the array buffer. The
// zero-value array reports DefaultCapacity, which it allocates on first write.
//
// Complexity: O(1)
func (a *Array[T]) Cap() int {
	if a.buffer == nil {
		return DefaultCapacity
	}
	return a.capacity
}

// Get returns the element at the given index, or an error wrapping
// container.ErrIndexOutOfRange if the index is not in [0,Len()).
//
// Complexity: O(1)
func (a *Array[T]) Get(index int) (elem T, err error) {
	if index < 0 || index >= a.count {
		return elem, container.IndexError("array.Get", index, a.count)
	}
	return a.buffer[index], nil
}

// Set replaces the element at the given index. The method returns an error
// wrapping container.ErrIndexOutOfRange if the index is not in [0,Len()).
//
// Complexity: O(1)
func (a *Array[T]) Set(index int, elem T) error {
	if index < 0 || index >= a.count {
		return container.IndexError("array.Set", index, a.count)
	}
	a.buffer[index] = elem
	return nil
}

// Append adds elem at the end of the array, doubling the buffer capacity first
// if it was full.
//
// Complexity: O(1) amortized, O(n) when the buffer grows
func (a *Array[T]) Append(elem T) {
	a.lazyInit()
	if a.count == a.capacity {
		a.resize(2 * a.capacity)
	}
	a.buffer[a.count] = elem
	a.count++
}

// Insert inserts elem at the given index, shifting the elements at positions
// index and above one slot to the right. An index equal to Len() inserts at
// the end of the array.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if the
// index is not in [0,Len()], in which case the array is not modified.
//
// Complexity: O(n)
func (a *Array[T]) Insert(index int, elem T) error {
	if index < 0 || index > a.count {
		return container.IndexError("array.Insert", index, a.count+1)
	}
	a.lazyInit()
	if a.count == a.capacity {
		a.resize(2 * a.capacity)
	}
	// Walk down from the end so each slot is read before being overwritten.
	for j := a.count; j > index; j-- {
		a.buffer[j] = a.buffer[j-1]
	}
	a.buffer[index] = elem
	a.count++
	return nil
}

// Pop removes the last element of the array and returns it, or returns an
// error wrapping container.ErrEmptyContainer if the array was empty.
//
// After the removal, if less than a quarter of the buffer is in use, the
// capacity is halved.
//
// Complexity: O(1) amortized, O(n) when the buffer shrinks
func (a *Array[T]) Pop() (elem T, err error) {
	if a.count == 0 {
		return elem, container.EmptyError("array.Pop")
	}
	var zero T
	a.count--
	elem, a.buffer[a.count] = a.buffer[a.count], zero

	if a.count < a.capacity/4 {
		a.resize(a.capacity / 2)
	}
	return elem, nil
}

// resize copies the live elements to a new buffer of the given capacity, then
// swaps it in place of the current buffer.
func (a *Array[T]) resize(capacity int) {
	buffer := make([]T, capacity)
	copy(buffer, a.buffer[:a.count])
	a.buffer = buffer
	a.capacity = capacity
}

// Range calls f for each element in the array, in index order. If f returns
// false, the iteration is stopped.
//
// Complexity: O(n)
func (a *Array[T]) Range(f func(T) bool) {
	for _, elem := range a.buffer[:a.count] {
		if !f(elem) {
			break
		}
	}
}

// Slice returns a copy of the elements in the array.
func (a *Array[T]) Slice() []T {
	return slices.Clone(a.buffer[:a.count])
}

// Values returns the elements of the array as a slice of empty interfaces.
func (a *Array[T]) Values() []interface{} {
	return container.Values(a.buffer[:a.count])
}

// Empty returns true if the array holds no elements.
func (a *Array[T]) Empty() bool { return a.count == 0 }

// Size is an alias for Len.
func (a *Array[T]) Size() int { return a.count }

// Clear removes all elements of the array and returns the buffer to the
// capacity it was initialized with.
//
// Complexity: O(capacity)
func (a *Array[T]) Clear() {
	initial := a.initial
	if initial == 0 {
		initial = DefaultCapacity
	}
	a.Init(initial)
}

// String returns a human-readable rendering of the array elements, in index
// order, such as "[1, 5, 2]".
func (a *Array[T]) String() string {
	return "[" + container.Join[T](a.Range, ", ") + "]"
}
