// Package DynArray implements a growable contiguous array.
//
// Logical accesses (Get, Set, Insert, Remove) are checked against the length, raw slot
// accesses (Slot) against the capacity. Slot is what hash tables use: they size the
// array once and address every cell directly without ever appending.
package DynArray

import (
	"iter"

	ET "github.com/CristianoRez/Entangled-Threads"
)

const (
	defaultCap = 10
	NotFound   = -1
)

// DynArray of T. The zero value is an empty array with capacity 0, ready to use.
type DynArray[T any] struct {
	items []T // len(items) is the capacity.
	sz    int
}

// Make an empty array with the default capacity.
func Make[T any]() *DynArray[T] {
	return &DynArray[T]{items: make([]T, defaultCap)}
}

// Sized is New for a capacity that can't be negative.
func Sized[T any](capacity uint) *DynArray[T] {
	return &DynArray[T]{items: make([]T, capacity)}
}

// New empty array with exactly capacity slots.
func New[T any](capacity int) (*DynArray[T], error) {
	if capacity < 0 {
		return nil, ET.CapacityError("DynArray.New", capacity)
	}
	return &DynArray[T]{items: make([]T, capacity)}, nil
}

func (u *DynArray[T]) Len() int {
	return u.sz
}

func (u *DynArray[T]) Cap() int {
	return len(u.items)
}

func (u *DynArray[T]) Empty() bool {
	return u.sz == 0
}

// Get the element at i in [0, Len).
func (u *DynArray[T]) Get(i int) (T, error) {
	if i < 0 || i >= u.sz {
		return *new(T), &ET.IndexError{Op: "DynArray.Get", Index: i, Bound: u.sz}
	}
	return u.items[i], nil
}

// Set the element at i. i may equal Len when there is spare capacity, in which case the array grows by one.
func (u *DynArray[T]) Set(i int, v T) error {
	if i < 0 || i > u.sz || i >= len(u.items) {
		return &ET.IndexError{Op: "DynArray.Set", Index: i, Bound: min(u.sz+1, len(u.items))}
	}
	u.items[i] = v
	if i == u.sz {
		u.sz++
	}
	return nil
}

// Slot returns the address of cell i in [0, Cap) regardless of Len.
// The pointer is invalidated by anything that reallocates: Append, Insert and Resize.
func (u *DynArray[T]) Slot(i int) (*T, error) {
	if i < 0 || i >= len(u.items) {
		return nil, &ET.IndexError{Op: "DynArray.Slot", Index: i, Bound: len(u.items)}
	}
	return &u.items[i], nil
}

// At is Slot without the bounds error: it panics like a slice index would.
// Meant for callers that already keep i below Cap.
func (u *DynArray[T]) At(i int) *T {
	return &u.items[i]
}

func (u *DynArray[T]) grow() {
	if len(u.items) == 0 {
		u.realloc(defaultCap)
	} else {
		u.realloc(len(u.items) << 1)
	}
}

func (u *DynArray[T]) realloc(n int) {
	ni := make([]T, n)
	copy(ni, u.items[:min(u.sz, n)])
	u.items = ni
	u.sz = min(u.sz, n)
}

// Append v at the end. Amortized O(1).
func (u *DynArray[T]) Append(v T) {
	if u.sz == len(u.items) {
		u.grow()
	}
	u.items[u.sz] = v
	u.sz++
}

// Insert v at i in [0, Len], shifting the tail right.
func (u *DynArray[T]) Insert(i int, v T) error {
	if i < 0 || i > u.sz {
		return &ET.IndexError{Op: "DynArray.Insert", Index: i, Bound: u.sz + 1}
	}
	if u.sz == len(u.items) {
		u.grow()
	}
	copy(u.items[i+1:u.sz+1], u.items[i:u.sz])
	u.items[i] = v
	u.sz++
	return nil
}

// Remove and return the element at i in [0, Len), shifting the tail left.
func (u *DynArray[T]) Remove(i int) (T, error) {
	if i < 0 || i >= u.sz {
		return *new(T), &ET.IndexError{Op: "DynArray.Remove", Index: i, Bound: u.sz}
	}
	v := u.items[i]
	copy(u.items[i:u.sz-1], u.items[i+1:u.sz])
	u.sz--
	u.items[u.sz] = *new(T)
	return v, nil
}

// Resize the capacity to exactly n, keeping the first min(Len, n) elements.
func (u *DynArray[T]) Resize(n int) error {
	if n < 0 {
		return ET.CapacityError("DynArray.Resize", n)
	}
	if n != len(u.items) {
		u.realloc(n)
	}
	return nil
}

// IndexFunc returns the first index whose element satisfies f, or NotFound.
func (u *DynArray[T]) IndexFunc(f func(T) bool) int {
	for i := 0; i < u.sz; i++ {
		if f(u.items[i]) {
			return i
		}
	}
	return NotFound
}

// Search for v by equality. Returns NotFound if v isn't present.
func Search[T comparable](u *DynArray[T], v T) int {
	return u.IndexFunc(func(e T) bool { return e == v })
}

// Clear the length to 0 without giving the buffer back.
func (u *DynArray[T]) Clear() {
	clear(u.items[:u.sz])
	u.sz = 0
}

// Clone returns an independent copy with the same length and capacity.
func (u *DynArray[T]) Clone() *DynArray[T] {
	c := &DynArray[T]{items: make([]T, len(u.items)), sz: u.sz}
	copy(c.items, u.items[:u.sz])
	return c
}

// Take moves the buffer into a new array and leaves u empty with capacity 0.
func (u *DynArray[T]) Take() *DynArray[T] {
	t := &DynArray[T]{items: u.items, sz: u.sz}
	u.items, u.sz = nil, 0
	return t
}

// All yields index, element pairs in order.
func (u *DynArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < u.sz; i++ {
			if !yield(i, u.items[i]) {
				return
			}
		}
	}
}

// Values is a view of the first Len elements. It aliases the buffer until the next reallocation.
func (u *DynArray[T]) Values() []T {
	return u.items[:u.sz:u.sz]
}
