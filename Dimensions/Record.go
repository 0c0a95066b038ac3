package Dimensions

import (
	"github.com/CristianoRez/Entangled-Threads/Maps/ProbeMap"
)

// Ref is a handle on a record of an Arena.
type Ref uint32

// Nil is the absent record.
const Nil Ref = 0

// LifecycleDim names the dimension holding every record of an arena.
const LifecycleDim = "lifecycle"

// directorySize is the initial table request of a record's directory. Most records sit in a handful of dimensions.
const directorySize = 4

// Links of a record in one dimension.
type Links struct {
	Prev, Next Ref
}

// Record is a payload plus its links in every dimension it belongs to.
type Record[T any] struct {
	Item T
	dims *ProbeMap.ProbeMap[string, Links]
}

func newRecord[T any](item T) Record[T] {
	return Record[T]{Item: item, dims: ProbeMap.MakeString[Links](directorySize)}
}

// List is a handle on one ordered sequence of dimension Dim.
// Head's Prev and Tail's Next are Nil in Dim, and following Next from Head visits Size records ending at Tail.
type List struct {
	Dim        string
	Head, Tail Ref
	Size       int
}

func NewList(dim string) *List {
	return &List{Dim: dim}
}

func (l *List) Empty() bool {
	return l.Tail == Nil
}
