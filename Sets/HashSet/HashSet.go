package HashSet

import (
	ET "github.com/CristianoRez/Entangled-Threads"
	"github.com/CristianoRez/Entangled-Threads/Maps/ProbeMap"
)

// New HashSet of type E.
// size is the number of elements the set should hold without rebuilding its table.
func New[E comparable](size uint, hash ET.HashFunc[E]) *HashSet[E] {
	return &HashSet[E]{m: ProbeMap.Make[E, struct{}](size, hash)}
}

// HashSet is a set backed by a ProbeMap. Not safe for concurrent use.
type HashSet[E comparable] struct {
	m *ProbeMap.ProbeMap[E, struct{}]
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return uint(u.m.Size())
}

// Put e into the set. Returns true if e wasn't there before.
func (u *HashSet[E]) Put(e E) bool {
	return u.m.Insert(e, struct{}{}) == nil
}

// Has e in the set.
func (u *HashSet[E]) Has(e E) bool {
	return u.m.Contains(e)
}

// Remove e from the set. Returns true if e was there.
func (u *HashSet[E]) Remove(e E) bool {
	return u.m.Erase(e)
}

// Take an arbitrary element from the set without removing it. Returns the zero value if the set is empty.
func (u *HashSet[E]) Take() (e E) {
	u.m.Range(func(k E, _ struct{}) bool {
		e = k
		return false
	})
	return
}

// Range over elements in table order. Stops when f returns false.
func (u *HashSet[E]) Range(f func(E) bool) {
	u.m.Range(func(k E, _ struct{}) bool {
		return f(k)
	})
}
