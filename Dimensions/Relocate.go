package Dimensions

import (
	"fmt"

	ET "github.com/CristianoRez/Entangled-Threads"
)

// checkNew reports whether nw can be linked into l.
func (a *Arena[T]) checkNew(l *List, nw Ref) error {
	rec := a.rec(nw)
	if rec == nil {
		return fmt.Errorf("%w: record %d doesn't exist", ET.ErrProtocolMisuse, nw)
	}
	if rec.dims.Contains(l.Dim) {
		return fmt.Errorf("%w: record %d is already in dimension %q", ET.ErrProtocolMisuse, nw, l.Dim)
	}
	return nil
}

// checkOld returns the links of old in l, or an error if old isn't linked into l. Constant time: a record with no
// predecessor must be l's head and a record with no successor must be l's tail.
func (a *Arena[T]) checkOld(l *List, old Ref) (Links, error) {
	rec := a.rec(old)
	if rec == nil {
		return Links{}, fmt.Errorf("%w: superseded record %d doesn't exist", ET.ErrProtocolMisuse, old)
	}
	lk, ok := rec.dims.Get(l.Dim)
	if !ok || lk.Prev == Nil && l.Head != old || lk.Next == Nil && l.Tail != old {
		return Links{}, fmt.Errorf("%w: superseded record %d isn't linked into this %q list", ET.ErrProtocolMisuse, old, l.Dim)
	}
	return lk, nil
}

// append nw after l's tail. nw must have passed checkNew.
func (a *Arena[T]) append(l *List, nw Ref) {
	nl := a.links(nw, l.Dim)
	if l.Tail == Nil {
		*nl = Links{}
		l.Head, l.Tail, l.Size = nw, nw, 1
		return
	}
	nl.Prev, nl.Next = l.Tail, Nil
	a.links(l.Tail, l.Dim).Next = nw
	l.Tail = nw
	l.Size++
}

// CheckSupersede reports the error Relocate(l, old, nw, priorCount) would return because of old, for a fresh nw.
// Nothing changes, so a caller relocating one record into several lists can check them all first.
func (a *Arena[T]) CheckSupersede(l *List, old Ref, priorCount int) error {
	if l.Tail == Nil || priorCount <= 1 {
		return nil
	}
	_, err := a.checkOld(l, old)
	return err
}

// AppendOnly links nw at the tail of l.
func (a *Arena[T]) AppendOnly(l *List, nw Ref) error {
	if err := a.checkNew(l, nw); err != nil {
		return err
	}
	a.append(l, nw)
	return nil
}

// Relocate links nw into l on behalf of an entity that already had priorCount occurrences, superseding old, the
// entity's previous latest record, when there is one to supersede:
//
//   - l is empty: nw becomes its only record.
//   - priorCount <= 1: nw is appended. An entity's first record is its anchor and is never moved; its second record
//     starts tracking the entity's latest state.
//   - old is l's tail: nw takes old's place.
//   - otherwise old is unlinked from wherever it is and nw is appended.
//
// When old is superseded it leaves l's dimension and l's size doesn't change. Only old, its neighbours and l's tail
// are touched.
func (a *Arena[T]) Relocate(l *List, old, nw Ref, priorCount int) error {
	if err := a.checkNew(l, nw); err != nil {
		return err
	}
	if l.Tail == Nil || priorCount <= 1 {
		a.append(l, nw)
		return nil
	}
	if old == nw {
		return fmt.Errorf("%w: record %d can't supersede itself", ET.ErrProtocolMisuse, old)
	}
	ol, err := a.checkOld(l, old)
	if err != nil {
		return err
	}
	if ol.Next == Nil {
		a.replace(l, ol, nw)
	} else {
		a.unlink(l, ol)
		a.append(l, nw)
	}
	a.recs.At(int(old)).dims.Erase(l.Dim)
	return nil
}

// replace the tail of l, whose links are ol, with nw.
func (a *Arena[T]) replace(l *List, ol Links, nw Ref) {
	nl := a.links(nw, l.Dim)
	nl.Prev, nl.Next = ol.Prev, Nil
	if ol.Prev == Nil {
		l.Head = nw
	} else {
		a.links(ol.Prev, l.Dim).Next = nw
	}
	l.Tail = nw
}

// unlink the record whose links are ol from l. It must have a successor.
func (a *Arena[T]) unlink(l *List, ol Links) {
	if ol.Prev == Nil {
		l.Head = ol.Next
	} else {
		a.links(ol.Prev, l.Dim).Next = ol.Next
	}
	a.links(ol.Next, l.Dim).Prev = ol.Prev
	l.Size--
}
