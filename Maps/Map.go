// Package Maps holds the key/value tables of the module. ProbeMap is the only implementation.
package Maps

// Map is a hash table that never overwrites on Insert. Addresses returned by GetOrCreate are valid until the next
// call that can insert, erase or clear.
type Map[K comparable, V any] interface {
	Insert(K, V) error
	GetOrCreate(K) *V
	Get(K) (V, bool)
	Contains(K) bool
	Erase(K) bool
	Size() int
	Clear()
	Range(func(K, V) bool)
}
