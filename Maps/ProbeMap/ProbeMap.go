// Package ProbeMap implements an open addressing hash table with quadratic probing.
//
// The table size is always prime. Probe i for hash h lands on (h + i*i) mod size.
// Erased keys leave tombstones so that later keys on the same probe sequence stay
// reachable; an insert reuses the first tombstone it passes. Occupied slots plus
// tombstones never exceed LoadFactor of the table: crossing it rebuilds the table,
// at the next prime >= twice the size when the live keys need it, or at the same size
// when only tombstones pushed it over.
//
// Insert never overwrites; GetOrCreate is the get-or-insert-zero access.
// A ProbeMap is not safe for concurrent use.
package ProbeMap

import (
	"iter"

	ET "github.com/CristianoRez/Entangled-Threads"
	"github.com/CristianoRez/Entangled-Threads/Arrays/DynArray"
)

const (
	// LoadFactor is the maximum share of slots that may be occupied or tombstoned.
	LoadFactor = 0.7
	loadNum    = 7
	loadDen    = 10

	defaultSize = 3
)

type ProbeMap[K comparable, V any] struct {
	bkt      *DynArray.DynArray[slot[K, V]]
	sz, dead int
	hash     ET.HashFunc[K]
}

// Make a table able to hold about size keys before its first rebuild. size 0 picks a small default.
// The table size is the first prime above size.
func Make[K comparable, V any](size uint, hash ET.HashFunc[K]) *ProbeMap[K, V] {
	if size == 0 {
		size = defaultSize
	}
	return &ProbeMap[K, V]{bkt: DynArray.Sized[slot[K, V]](nextPrime(size)), hash: hash}
}

// New is Make for sizes coming from outside. Negative sizes are rejected.
func New[K comparable, V any](size int, hash ET.HashFunc[K]) (*ProbeMap[K, V], error) {
	if size < 0 {
		return nil, ET.CapacityError("ProbeMap.New", size)
	}
	return Make[K, V](uint(size), hash), nil
}

// MakeString is Make with DJB2 as the hash.
func MakeString[V any](size uint) *ProbeMap[string, V] {
	return Make[string, V](size, ET.DJB2)
}

// Size is the number of stored keys.
func (u *ProbeMap[K, V]) Size() int {
	return u.sz
}

func (u *ProbeMap[K, V]) Empty() bool {
	return u.sz == 0
}

// Capacity is the number of slots in the table.
func (u *ProbeMap[K, V]) Capacity() int {
	return u.bkt.Cap()
}

func overloaded(used, capacity int) bool {
	return used*loadDen > capacity*loadNum
}

// find returns the slot holding key and true, or else the slot an insert of key should take: the first tombstone on
// the probe sequence, or the empty slot that ended it. It returns -1 when the sequence has neither.
func (u *ProbeMap[K, V]) find(key K) (int, bool) {
	n := uint(u.bkt.Cap())
	h, free := u.hash(key)%n, -1
	for i := uint(0); i < n; i++ {
		j := int((h + i*i) % n)
		switch s := u.bkt.At(j); s.st {
		case empty:
			if free < 0 {
				free = j
			}
			return free, false
		case tombstone:
			if free < 0 {
				free = j
			}
		default:
			if s.key == key {
				return j, true
			}
		}
	}
	return free, false
}

// tryRehash moves every stored key into a fresh table of n slots. It fails, leaving u untouched, when some key finds
// no free slot on its probe sequence in the new table.
func (u *ProbeMap[K, V]) tryRehash(n uint) bool {
	M := ProbeMap[K, V]{bkt: DynArray.Sized[slot[K, V]](n), hash: u.hash}
	for i := range u.bkt.Cap() {
		if e := u.bkt.At(i); e.st == occupied {
			j, _ := M.find(e.key)
			if j < 0 {
				return false
			}
			M.bkt.At(j).use(e.key, e.val)
			M.sz++
		}
	}
	u.bkt, u.sz, u.dead = M.bkt, M.sz, 0
	return true
}

// grow to the next prime >= twice the current size, or further if a rebuild fails.
func (u *ProbeMap[K, V]) grow() {
	for n := nextPrime(uint(u.bkt.Cap()) << 1); !u.tryRehash(n); n = nextPrime(n << 1) {
	}
}

// put key into slot i, which find returned for a missing key, rebuilding first when the insert would overload the
// table. Returns the address of the stored value.
func (u *ProbeMap[K, V]) put(i int, key K, val V) *V {
	used := u.sz + u.dead
	if i < 0 || u.bkt.At(i).st != tombstone {
		used++
	}
	if i < 0 || overloaded(used, u.bkt.Cap()) {
		if overloaded(u.sz+1, u.bkt.Cap()) || !u.tryRehash(uint(u.bkt.Cap())) {
			u.grow()
		}
		for i, _ = u.find(key); i < 0; i, _ = u.find(key) {
			u.grow()
		}
	}
	e := u.bkt.At(i)
	if e.st == tombstone {
		u.dead--
	}
	e.use(key, val)
	u.sz++
	return &e.val
}

// Insert key with val. If key is already stored, nothing changes and ErrKeyAlreadyPresent is returned.
func (u *ProbeMap[K, V]) Insert(key K, val V) error {
	i, ok := u.find(key)
	if ok {
		return ET.ErrKeyAlreadyPresent
	}
	u.put(i, key, val)
	return nil
}

// GetOrCreate returns the address of key's value, storing the zero value first when key is missing.
// The address is valid until the next call that can insert, erase or clear.
func (u *ProbeMap[K, V]) GetOrCreate(key K) *V {
	i, ok := u.find(key)
	if ok {
		return &u.bkt.At(i).val
	}
	return u.put(i, key, *new(V))
}

// Get the value of key without modifying the table.
func (u *ProbeMap[K, V]) Get(key K) (V, bool) {
	if i, ok := u.find(key); ok {
		return u.bkt.At(i).val, true
	}
	return *new(V), false
}

// Lookup returns the address of key's value, or nil. Same validity as GetOrCreate.
func (u *ProbeMap[K, V]) Lookup(key K) *V {
	if i, ok := u.find(key); ok {
		return &u.bkt.At(i).val
	}
	return nil
}

func (u *ProbeMap[K, V]) Contains(key K) bool {
	_, ok := u.find(key)
	return ok
}

// Erase key. Returns true if key was stored.
func (u *ProbeMap[K, V]) Erase(key K) bool {
	i, ok := u.find(key)
	if !ok {
		return false
	}
	u.bkt.At(i).bury()
	u.sz--
	u.dead++
	return true
}

// Clear every slot, keeping the table size.
func (u *ProbeMap[K, V]) Clear() {
	for i := range u.bkt.Cap() {
		*u.bkt.At(i) = slot[K, V]{}
	}
	u.sz, u.dead = 0, 0
}

// Range over stored pairs in table order. Stops when f returns false. f must not modify the table.
func (u *ProbeMap[K, V]) Range(f func(K, V) bool) {
	for i := range u.bkt.Cap() {
		if e := u.bkt.At(i); e.st == occupied && !f(e.key, e.val) {
			return
		}
	}
}

// All is Range as an iterator.
func (u *ProbeMap[K, V]) All() iter.Seq2[K, V] {
	return u.Range
}
