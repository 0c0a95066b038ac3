package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"

	ET "github.com/CristianoRez/Entangled-Threads"
	"github.com/CristianoRez/Entangled-Threads/Maps/ProbeMap"
)

const benchmarkItemCount = 1024

// compares with https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap on a single goroutine,
// the only way ProbeMap may be used. Both of those are concurrent maps, so they pay for synchronization here.
func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupProbeMap(b *testing.B) *ProbeMap.ProbeMap[uintptr, uintptr] {
	b.Helper()
	m := ProbeMap.Make[uintptr, uintptr](0, ET.IntHash[uintptr])
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		_ = m.Insert(i, i)
	}
	return m
}

func setupGoMap(b *testing.B) map[uintptr]uintptr {
	b.Helper()
	m := make(map[uintptr]uintptr)
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m[i] = i
	}
	return m
}

func BenchmarkReadHashMapUint(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMapUint(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadProbeMapUint(b *testing.B) {
	m := setupProbeMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadGoMapUint(b *testing.B) {
	m := setupGoMap(b)
	b.ResetTimer()
	for range b.N {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			if j := m[i]; j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkWriteHashMapUint(b *testing.B) {
	for range b.N {
		m := hashmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func BenchmarkWriteHaxMapUint(b *testing.B) {
	for range b.N {
		m := haxmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func BenchmarkWriteProbeMapUint(b *testing.B) {
	for range b.N {
		m := ProbeMap.Make[uintptr, uintptr](0, ET.IntHash[uintptr])
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			_ = m.Insert(i, i)
		}
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Erase(i)
		}
	}
}

func BenchmarkWriteGoMapUint(b *testing.B) {
	for range b.N {
		m := make(map[uintptr]uintptr)
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m[i] = i
		}
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			delete(m, i)
		}
	}
}

// TestAgreement checks the three maps end up with the same contents after the same writes.
func TestAgreement(t *testing.T) {
	hm, hx, pm := hashmap.New[uintptr, uintptr](), haxmap.New[uintptr, uintptr](), ProbeMap.Make[uintptr, uintptr](0, ET.IntHash[uintptr])
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		hm.Set(i, i*3)
		hx.Set(i, i*3)
		_ = pm.Insert(i, i*3)
	}
	for i := uintptr(0); i < benchmarkItemCount; i += 3 {
		hm.Del(i)
		hx.Del(i)
		pm.Erase(i)
	}
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		a, ina := hm.Get(i)
		b, inb := hx.Get(i)
		c, inc := pm.Get(i)
		if ina != inc || inb != inc || (inc && (a != c || b != c)) {
			t.Errorf("key %d: hashmap %d %t, haxmap %d %t, ProbeMap %d %t", i, a, ina, b, inb, c, inc)
		}
	}
}
