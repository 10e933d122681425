package sha256

import (
	"encoding/binary"
	"math/bits"
)

// State is the running SHA-256 hash value, words a through h.
type State [8]uint32

// Block is one 512-bit message block.
type Block [BlockSize]byte

// Compress applies the SHA-256 compression function to one block and
// returns the next state. This implements the hash computation of
// FIPS 180-4 Section 6.2.2.
//
// Compress has no side effects; s is passed by value and b is only read.
func Compress(s State, b *Block) State {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = smallSigma1(w[i-2]) + w[i-7] + smallSigma0(w[i-15]) + w[i-16]
	}

	a, b1, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

	for i := 0; i < 64; i++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + k[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b1, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b1
		b1 = a
		a = t1 + t2
	}

	s[0] += a
	s[1] += b1
	s[2] += c
	s[3] += d
	s[4] += e
	s[5] += f
	s[6] += g
	s[7] += h
	return s
}

// Logical functions, FIPS 180-4 Section 4.1.2.

func ch(x, y, z uint32) uint32 { return (x & y) ^ (^x & z) }

func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}

func rotr(x uint32, n int) uint32 { return bits.RotateLeft32(x, -n) }
