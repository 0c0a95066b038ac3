// Package Queues holds FIFO queues. The parser fills one with commands and the registry drains it in input order.
package Queues

import (
	"errors"
	"iter"
)

// ErrEmptyQueue is returned by Pop on an empty queue.
var ErrEmptyQueue = errors.New("queue is empty")

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	// Peek at the oldest item. ok is false on an empty queue.
	Peek() (item T, ok bool)
	Empty() bool
	Size() uint
	// Drain pops items oldest first for as long as the consumer takes them.
	Drain() iter.Seq[T]
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	resize(newLen uint)
}
