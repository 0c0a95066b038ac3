package Dimensions

import (
	"fmt"
	"iter"
	"slices"

	ET "github.com/CristianoRez/Entangled-Threads"
	"github.com/CristianoRez/Entangled-Threads/Arrays/DynArray"
)

// Arena owns records and hands out Refs to them. Refs stay valid until Teardown.
type Arena[T any] struct {
	recs *DynArray.DynArray[Record[T]] // recs[0] stands for Nil and is never linked.
	life List
}

// NewArena with room for size records before growing.
func NewArena[T any](size uint) *Arena[T] {
	a := &Arena[T]{recs: DynArray.Sized[Record[T]](size + 1), life: List{Dim: LifecycleDim}}
	a.recs.Append(Record[T]{})
	return a
}

// Len is the number of records created since the last Teardown.
func (a *Arena[T]) Len() int {
	return a.recs.Len() - 1
}

// Lifecycle is the list of every record, in creation order. It must not be modified.
func (a *Arena[T]) Lifecycle() *List {
	return &a.life
}

// rec returns nil for Nil and for refs the arena never handed out.
func (a *Arena[T]) rec(r Ref) *Record[T] {
	if r == Nil || int(r) >= a.recs.Len() {
		return nil
	}
	return a.recs.At(int(r))
}

// links of r in dim, created empty if r isn't in dim yet. Only the protocol calls this.
func (a *Arena[T]) links(r Ref, dim string) *Links {
	return a.recs.At(int(r)).dims.GetOrCreate(dim)
}

// Create a record holding item and append it to the lifecycle list.
func (a *Arena[T]) Create(item T) Ref {
	r := Ref(a.recs.Len())
	a.recs.Append(newRecord(item))
	a.append(&a.life, r)
	return r
}

// Item of r.
func (a *Arena[T]) Item(r Ref) (T, bool) {
	if rec := a.rec(r); rec != nil {
		return rec.Item, true
	}
	return *new(T), false
}

// Links of r in dim. ok is false when r isn't linked into dim. Never creates anything.
func (a *Arena[T]) Links(r Ref, dim string) (lk Links, ok bool) {
	if rec := a.rec(r); rec != nil {
		lk, ok = rec.dims.Get(dim)
	}
	return
}

// Dimensions r is linked into, sorted by name.
func (a *Arena[T]) Dimensions(r Ref) []string {
	rec := a.rec(r)
	if rec == nil {
		return nil
	}
	names := make([]string, 0, rec.dims.Size())
	rec.dims.Range(func(dim string, _ Links) bool {
		names = append(names, dim)
		return true
	})
	slices.Sort(names)
	return names
}

// Iterate yields the records of l from head to tail. The sequence can be restarted by ranging over it again.
// l must not be changed while the sequence is being consumed. It ends early at a record that is gone or isn't in
// l.Dim, as with a list kept from before Teardown.
func (a *Arena[T]) Iterate(l *List) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		for r := l.Head; r != Nil; {
			if rec := a.rec(r); rec == nil || rec.dims == nil || !rec.dims.Contains(l.Dim) {
				return
			}
			if !yield(r) {
				return
			}
			lk, _ := a.rec(r).dims.Get(l.Dim)
			r = lk.Next
		}
	}
}

// Collect the records of l in order.
func (a *Arena[T]) Collect(l *List) []Ref {
	return slices.AppendSeq(make([]Ref, 0, l.Size), a.Iterate(l))
}

// Teardown releases every record in one walk of the lifecycle list, calling release (if not nil) on each before
// dropping it, and returns the number of records released. The arena is empty and reusable afterwards, and every
// Ref it handed out is invalid.
// A record reached twice, or a record never reached, means the lifecycle list was corrupted and is reported as
// ErrProtocolMisuse. The arena is emptied in that case too.
func (a *Arena[T]) Teardown(release func(Ref, T)) (n int, err error) {
	seen := ET.NewBitArray(uint(a.recs.Len()))
	for r := a.life.Head; r != Nil; n++ {
		rec := a.rec(r)
		if rec == nil || seen.Get(uint(r)) {
			err = fmt.Errorf("%w: lifecycle list reaches record %d twice or out of the arena", ET.ErrProtocolMisuse, r)
			break
		}
		seen.Set(uint(r))
		lk, _ := rec.dims.Get(LifecycleDim)
		if release != nil {
			release(r, rec.Item)
		}
		*rec = Record[T]{}
		r = lk.Next
	}
	if err == nil && n != a.Len() {
		err = fmt.Errorf("%w: lifecycle list holds %d of %d records", ET.ErrProtocolMisuse, n, a.Len())
	}
	a.recs.Clear()
	a.recs.Append(Record[T]{})
	a.life = List{Dim: LifecycleDim}
	return n, err
}
