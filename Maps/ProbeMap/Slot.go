package ProbeMap

type state byte

const (
	empty state = iota
	occupied
	tombstone
)

// slot is a cell of the table. A key is stored in at most one occupied slot.
type slot[K comparable, V any] struct {
	key K
	val V
	st  state
}

func (e *slot[K, V]) use(key K, val V) {
	e.key, e.val, e.st = key, val, occupied
}

// bury keeps the slot on probe sequences but drops its contents.
func (e *slot[K, V]) bury() {
	e.key, e.val, e.st = *new(K), *new(V), tombstone
}

func isPrime(n uint) bool {
	if n <= 3 {
		return n > 1
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// nextPrime strictly greater than n.
func nextPrime(n uint) uint {
	if n < 2 {
		return 2
	}
	for n++; !isPrime(n); n++ {
	}
	return n
}
