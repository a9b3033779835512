package util

import (
	"hash/fnv"
)

// Clamp01 limits v to the unit interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Hash32 folds the given values into a 32-bit FNV-1a hash. It gives the
// animation modes a cheap deterministic mapping from rune positions to
// pseudo-random values.
func Hash32(vs ...int) uint32 {
	h := fnv.New32a()
	var buf [4]byte
	for _, v := range vs {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		h.Write(buf[:])
	}
	return h.Sum32()
}
