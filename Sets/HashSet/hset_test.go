package HashSet

import (
	"testing"

	ET "github.com/CristianoRez/Entangled-Threads"
	"github.com/CristianoRez/Entangled-Threads/Sets"
)

var _ Sets.Set[int] = (*HashSet[int])(nil)

func TestHashSet_All(t *testing.T) {
	S := New[int](7, ET.IntHash[int])
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 5 {
		t.Errorf("size is %d, want 5", S.Size())
	}
	if e := S.Take(); e < 5 || e > 9 {
		t.Errorf("take returned %d", e)
	}
	sum := 0
	S.Range(func(e int) bool {
		sum += e
		return true
	})
	if sum != 5+6+7+8+9 {
		t.Errorf("range summed to %d", sum)
	}
}

func TestHashSet_Strings(t *testing.T) {
	S := New[string](0, ET.XXString)
	for _, s := range []string{"ana", "bob", "ana", "carl", "bob"} {
		S.Put(s)
	}
	if S.Size() != 3 {
		t.Errorf("size is %d, want 3", S.Size())
	}
	if New[string](0, ET.DJB2).Take() != "" {
		t.Error("take on an empty set returned an element")
	}
}
