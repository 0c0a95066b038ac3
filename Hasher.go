package Entangled_Threads

import (
	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
)

// HashFunc maps a key to an unsigned hash. Tables reduce it modulo their capacity, so it doesn't need to be bounded.
type HashFunc[K any] func(K) uint

// DJB2 hashes a string with Bernstein's hash (h*33 + c, seeded with 5381).
func DJB2(s string) uint {
	var h uint = 5381
	for i := 0; i < len(s); i++ {
		h = h<<5 + h + uint(s[i])
	}
	return h
}

// XXString hashes a string with xxhash64. Better spread than DJB2 for long keys that share prefixes.
func XXString(s string) uint {
	return uint(xxhash.Sum64String(s))
}

// IntHash is the identity hash for integer keys. Negative keys wrap around, which is fine under a modulo.
func IntHash[K constraints.Integer](k K) uint {
	return uint(k)
}
