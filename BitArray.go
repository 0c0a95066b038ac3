package Entangled_Threads

import (
	"math/bits"
)

// NewBitArray that can hold at least size bits, all cleared.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size bit set. The zero value holds 0 bits.
type BitArray struct {
	bits []uint
}

// Len is the number of bits the array can hold.
func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of set bits.
func (u BitArray) Count() (n uint) {
	for _, w := range u.bits {
		n += uint(bits.OnesCount(w))
	}
	return
}

// First set bit, or -1 when none is set.
func (u BitArray) First() int {
	for i, w := range u.bits {
		if w != 0 {
			return i*bits.UintSize + bits.TrailingZeros(w)
		}
	}
	return -1
}
