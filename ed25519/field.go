//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ed25519 implements RFC 8032 Ed25519 signing and verification
// from scratch: ten-limb field arithmetic mod 2^255-19, extended-coordinate
// twisted Edwards group operations, and scalar arithmetic mod the group
// order. No part of this package depends on golang.org/x/crypto/ed25519,
// agl/ed25519, or any other third-party Edwards-curve implementation.
package ed25519

// fieldElement holds an element of GF(2^255-19) as ten signed 32-bit
// limbs in mixed radix (26,25,26,25,26,25,26,25,26,25). Limbs may be
// non-canonical (out of their nominal bit range) between operations;
// fromBytes/toBytes fully reduce.
type fieldElement [10]int32

func feZero() fieldElement { return fieldElement{} }

func feOne() fieldElement { return fieldElement{1} }

func feAdd(f, g fieldElement) fieldElement {
	var h fieldElement
	for i := range h {
		h[i] = f[i] + g[i]
	}
	return h
}

func feSub(f, g fieldElement) fieldElement {
	var h fieldElement
	for i := range h {
		h[i] = f[i] - g[i]
	}
	return h
}

func feNeg(f fieldElement) fieldElement {
	var h fieldElement
	for i := range h {
		h[i] = -f[i]
	}
	return h
}

// feCMove sets f to g, in constant time, if b == 1. b must be 0 or 1.
func feCMove(f *fieldElement, g fieldElement, b int32) {
	mask := -b
	for i := range f {
		f[i] ^= mask & (f[i] ^ g[i])
	}
}

// feCSwap conditionally swaps f and g, in constant time, if b == 1.
func feCSwap(f, g *fieldElement, b int32) {
	mask := -b
	for i := range f {
		t := mask & (f[i] ^ g[i])
		f[i] ^= t
		g[i] ^= t
	}
}

// feIsNegative reports whether f, once reduced, is odd.
func feIsNegative(f fieldElement) byte {
	b := feToBytes(f)
	return b[0] & 1
}

// feIsNonZero reports whether f, once reduced, is non-zero.
func feIsNonZero(f fieldElement) int32 {
	b := feToBytes(f)
	var acc byte
	for _, v := range b {
		acc |= v
	}
	if acc != 0 {
		return 1
	}
	return 0
}

// feCarryPropagate runs the eight-stage alternating 26/25-bit carry
// chain spec.md §4.8 describes, folding the final limb's overflow back
// into limb 0 via the 2^255 ≡ 19 (mod p) identity.
func feCarryPropagate(h *[10]int64) {
	c := func(i, j int, bits uint) {
		var half int64 = 1 << (bits - 1)
		carry := (h[i] + half) >> bits
		h[j] += carry
		h[i] -= carry << bits
	}
	c(0, 1, 26)
	c(4, 5, 26)
	c(1, 2, 25)
	c(5, 6, 25)
	c(2, 3, 26)
	c(6, 7, 26)
	c(3, 4, 25)
	c(7, 8, 25)
	c(4, 5, 26)
	c(8, 9, 26)
	carry9 := (h[9] + (1 << 24)) >> 25
	h[0] += carry9 * 19
	h[9] -= carry9 << 25
	c(0, 1, 26)
}

// feMul computes f*g using the textbook 10x10 expansion with i64
// accumulators and the 19/38 reduction coefficients from spec.md §4.8.
func feMul(f, g fieldElement) fieldElement {
	f0, f1, f2, f3, f4 := int64(f[0]), int64(f[1]), int64(f[2]), int64(f[3]), int64(f[4])
	f5, f6, f7, f8, f9 := int64(f[5]), int64(f[6]), int64(f[7]), int64(f[8]), int64(f[9])
	g0, g1, g2, g3, g4 := int64(g[0]), int64(g[1]), int64(g[2]), int64(g[3]), int64(g[4])
	g5, g6, g7, g8, g9 := int64(g[5]), int64(g[6]), int64(g[7]), int64(g[8]), int64(g[9])

	g1_19 := 19 * g1
	g2_19 := 19 * g2
	g3_19 := 19 * g3
	g4_19 := 19 * g4
	g5_19 := 19 * g5
	g6_19 := 19 * g6
	g7_19 := 19 * g7
	g8_19 := 19 * g8
	g9_19 := 19 * g9
	f1_2 := 2 * f1
	f3_2 := 2 * f3
	f5_2 := 2 * f5
	f7_2 := 2 * f7
	f9_2 := 2 * f9

	var h [10]int64
	h[0] = f0*g0 + f1_2*g9_19 + f2*g8_19 + f3_2*g7_19 + f4*g6_19 + f5_2*g5_19 + f6*g4_19 + f7_2*g3_19 + f8*g2_19 + f9_2*g1_19
	h[1] = f0*g1 + f1*g0 + f2*g9_19 + f3*g8_19 + f4*g7_19 + f5*g6_19 + f6*g5_19 + f7*g4_19 + f8*g3_19 + f9*g2_19
	h[2] = f0*g2 + f1_2*g1 + f2*g0 + f3_2*g9_19 + f4*g8_19 + f5_2*g7_19 + f6*g6_19 + f7_2*g5_19 + f8*g4_19 + f9_2*g3_19
	h[3] = f0*g3 + f1*g2 + f2*g1 + f3*g0 + f4*g9_19 + f5*g8_19 + f6*g7_19 + f7*g6_19 + f8*g5_19 + f9*g4_19
	h[4] = f0*g4 + f1_2*g3 + f2*g2 + f3_2*g1 + f4*g0 + f5_2*g9_19 + f6*g8_19 + f7_2*g7_19 + f8*g6_19 + f9_2*g5_19
	h[5] = f0*g5 + f1*g4 + f2*g3 + f3*g2 + f4*g1 + f5*g0 + f6*g9_19 + f7*g8_19 + f8*g7_19 + f9*g6_19
	h[6] = f0*g6 + f1_2*g5 + f2*g4 + f3_2*g3 + f4*g2 + f5_2*g1 + f6*g0 + f7_2*g9_19 + f8*g8_19 + f9_2*g7_19
	h[7] = f0*g7 + f1*g6 + f2*g5 + f3*g4 + f4*g3 + f5*g2 + f6*g1 + f7*g0 + f8*g9_19 + f9*g8_19
	h[8] = f0*g8 + f1_2*g7 + f2*g6 + f3_2*g5 + f4*g4 + f5_2*g3 + f6*g2 + f7_2*g1 + f8*g0 + f9_2*g9_19
	h[9] = f0*g9 + f1*g8 + f2*g7 + f3*g6 + f4*g5 + f5*g4 + f6*g3 + f7*g2 + f8*g1 + f9*g0

	feCarryPropagate(&h)
	var out fieldElement
	for i := range out {
		out[i] = int32(h[i])
	}
	return out
}

// feSquare computes f*f using the squaring-specific expansion (half the
// multiplications of feMul thanks to the symmetric cross terms).
func feSquare(f fieldElement) fieldElement {
	f0, f1, f2, f3, f4 := int64(f[0]), int64(f[1]), int64(f[2]), int64(f[3]), int64(f[4])
	f5, f6, f7, f8, f9 := int64(f[5]), int64(f[6]), int64(f[7]), int64(f[8]), int64(f[9])

	f0_2 := 2 * f0
	f1_2 := 2 * f1
	f2_2 := 2 * f2
	f3_2 := 2 * f3
	f4_2 := 2 * f4
	f5_2 := 2 * f5
	f6_2 := 2 * f6
	f7_2 := 2 * f7
	f5_38 := 38 * f5
	f6_19 := 19 * f6
	f7_38 := 38 * f7
	f8_19 := 19 * f8
	f9_38 := 38 * f9

	var h [10]int64
	h[0] = f0*f0 + f1_2*f9_38 + f2_2*f8_19 + f3_2*f7_38 + f4_2*f6_19 + f5*f5_38
	h[1] = f0_2*f1 + f2*f9_38 + f3_2*f8_19 + f4*f7_38 + f5_2*f6_19
	h[2] = f0_2*f2 + f1_2*f1 + f3_2*f9_38 + f4_2*f8_19 + f5_2*f7_38 + f6*f6_19
	h[3] = f0_2*f3 + f1_2*f2 + f4*f9_38 + f5_2*f8_19 + f6*f7_38
	h[4] = f0_2*f4 + f1_2*f3_2 + f2*f2 + f5_2*f9_38 + f6_2*f8_19 + f7*f7_38
	h[5] = f0_2*f5 + f1_2*f4 + f2_2*f3 + f6*f9_38 + f7_2*f8_19
	h[6] = f0_2*f6 + f1_2*f5_2 + f2_2*f4 + f3_2*f3 + f7_2*f9_38 + f8*f8_19
	h[7] = f0_2*f7 + f1_2*f6 + f2_2*f5 + f3_2*f4 + f8*f9_38
	h[8] = f0_2*f8 + f1_2*f7_2 + f2_2*f6 + f3_2*f5_2 + f4*f4 + f9*f9_38
	h[9] = f0_2*f9 + f1_2*f8 + f2_2*f7 + f3_2*f6 + f4_2*f5

	feCarryPropagate(&h)
	var out fieldElement
	for i := range out {
		out[i] = int32(h[i])
	}
	return out
}

// mul121666 is the specialized cheap multiplication the Montgomery
// ladder uses for the Curve25519 curve constant (A+2)/4 = 121666.
func mul121666(f fieldElement) fieldElement {
	const k = 121666
	var h [10]int64
	for i, v := range f {
		h[i] = int64(v) * k
	}
	feCarryPropagate(&h)
	var out fieldElement
	for i := range out {
		out[i] = int32(h[i])
	}
	return out
}

// pMinus2Bits and pMinus5Over8Bits are the little-endian byte encodings
// of p-2 and (p-5)/8 for p = 2^255-19, the fixed public exponents
// feInvert and fePow22523 raise a field element to.
var (
	pMinus2Bits = []byte{
		0xeb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
	}
	pMinus5Over8Bits = []byte{
		0xfd, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x0f,
	}
)

// fePow raises f to a small fixed public exponent by left-to-right
// square-and-multiply over its bits. The exponent is always a compile
// time constant (p-2 for inversion, (p-5)/8 for pow22523), so the
// sequence of squarings and multiplies is identical on every call
// regardless of the secret field element f: this keeps the operation
// constant-time without hand-transcribing the optimized addition chain.
func fePow(f fieldElement, exp []byte, bits int) fieldElement {
	result := feOne()
	for i := bits - 1; i >= 0; i-- {
		result = feSquare(result)
		byteIdx := i / 8
		bitIdx := uint(i % 8)
		if exp[byteIdx]>>bitIdx&1 == 1 {
			result = feMul(result, f)
		}
	}
	return result
}

// feInvert computes f^-1 = f^(p-2).
func feInvert(f fieldElement) fieldElement {
	return fePow(f, pMinus2Bits, 255)
}

// fePow22523 computes f^((p-5)/8), the building block for the square
// root used during point decompression.
func fePow22523(f fieldElement) fieldElement {
	return fePow(f, pMinus5Over8Bits, 252)
}

// feFromBytes decodes the 32-byte little-endian canonical encoding of a
// field element, masking off the unused top bit of byte 31 and slicing
// the 255-bit value directly into the ten limb widths.
func feFromBytes(b []byte) fieldElement {
	var buf [32]byte
	copy(buf[:], b)
	buf[31] &= 0x7f

	shifts := [10]uint{0, 26, 51, 77, 102, 128, 153, 179, 204, 230}
	bits := [10]uint{26, 25, 26, 25, 26, 25, 26, 25, 26, 25}

	var out fieldElement
	for i := 0; i < 10; i++ {
		out[i] = int32(extractBits(buf[:], shifts[i], bits[i]))
	}
	return out
}

// extractBits reads a little-endian bitfield [offset, offset+width) out
// of buf as an unsigned integer.
func extractBits(buf []byte, offset, width uint) uint64 {
	var v uint64
	for i := uint(0); i < width; i++ {
		bitPos := offset + i
		byteIdx := bitPos / 8
		if int(byteIdx) >= len(buf) {
			break
		}
		bit := (buf[byteIdx] >> (bitPos % 8)) & 1
		v |= uint64(bit) << i
	}
	return v
}

// feToBytes fully reduces f modulo p and packs it into 32 little-endian
// bytes, following the published ref10 bit-layout schedule (spec.md
// §4.8, "Serialization").
func feToBytes(f fieldElement) [32]byte {
	h := [10]int64{
		int64(f[0]), int64(f[1]), int64(f[2]), int64(f[3]), int64(f[4]),
		int64(f[5]), int64(f[6]), int64(f[7]), int64(f[8]), int64(f[9]),
	}

	q := (19*h[9] + (1 << 24)) >> 25
	q = (h[0] + q) >> 26
	q = (h[1] + q) >> 25
	q = (h[2] + q) >> 26
	q = (h[3] + q) >> 25
	q = (h[4] + q) >> 26
	q = (h[5] + q) >> 25
	q = (h[6] + q) >> 26
	q = (h[7] + q) >> 25
	q = (h[8] + q) >> 26
	q = (h[9] + q) >> 25

	h[0] += 19 * q

	c := func(i, j int, bits uint) int64 {
		carry := h[i] >> bits
		h[j] += carry
		h[i] -= carry << bits
		return carry
	}
	c(0, 1, 26)
	c(1, 2, 25)
	c(2, 3, 26)
	c(3, 4, 25)
	c(4, 5, 26)
	c(5, 6, 25)
	c(6, 7, 26)
	c(7, 8, 25)
	c(8, 9, 26)
	carry9 := h[9] >> 25
	h[9] -= carry9 << 25

	var s [32]byte
	s[0] = byte(h[0] >> 0)
	s[1] = byte(h[0] >> 8)
	s[2] = byte(h[0] >> 16)
	s[3] = byte((h[0] >> 24) | (h[1] << 2))
	s[4] = byte(h[1] >> 6)
	s[5] = byte(h[1] >> 14)
	s[6] = byte((h[1] >> 22) | (h[2] << 3))
	s[7] = byte(h[2] >> 5)
	s[8] = byte(h[2] >> 13)
	s[9] = byte((h[2] >> 21) | (h[3] << 5))
	s[10] = byte(h[3] >> 3)
	s[11] = byte(h[3] >> 11)
	s[12] = byte((h[3] >> 19) | (h[4] << 6))
	s[13] = byte(h[4] >> 2)
	s[14] = byte(h[4] >> 10)
	s[15] = byte(h[4] >> 18)
	s[16] = byte(h[5] >> 0)
	s[17] = byte(h[5] >> 8)
	s[18] = byte(h[5] >> 16)
	s[19] = byte((h[5] >> 24) | (h[6] << 1))
	s[20] = byte(h[6] >> 7)
	s[21] = byte(h[6] >> 15)
	s[22] = byte((h[6] >> 23) | (h[7] << 3))
	s[23] = byte(h[7] >> 5)
	s[24] = byte(h[7] >> 13)
	s[25] = byte((h[7] >> 21) | (h[8] << 4))
	s[26] = byte(h[8] >> 4)
	s[27] = byte(h[8] >> 12)
	s[28] = byte((h[8] >> 20) | (h[9] << 6))
	s[29] = byte(h[9] >> 2)
	s[30] = byte(h[9] >> 10)
	s[31] = byte(h[9] >> 18)
	return s
}
