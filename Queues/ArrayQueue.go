package Queues

import "iter"

// circArrQ is a ring buffer. When full, head == tail and sz == len(content).
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items. It grows by half when full.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *circArrQ[T]) Size() uint {
	return this.sz
}

// resize to newLen >= sz, unwrapping the items to the front.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.head+this.sz <= uint(len(this.content)) {
		copy(nc, this.content[this.head:this.head+this.sz])
	} else {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.tail])
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(max(this.sz*3/2, this.sz+4))
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (T, error) {
	item, ok := this.Peek()
	if !ok {
		return item, ErrEmptyQueue
	}
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return item, nil
}

func (this *circArrQ[T]) Peek() (item T, ok bool) {
	if this.Empty() {
		return
	}
	return this.content[this.head], true
}

func (this *circArrQ[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !this.Empty() {
			item, _ := this.Pop()
			if !yield(item) {
				return
			}
		}
	}
}
