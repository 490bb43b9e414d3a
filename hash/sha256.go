//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package hash implements the one-shot FIPS 180-4 SHA-256/SHA-512 digests
// and the RFC 7693 BLAKE2b hash (including Argon2's blake2b_long
// construction) from scratch, with no dependency on crypto/sha256,
// crypto/sha512 or golang.org/x/crypto.
package hash

import "encoding/binary"

// sha256K holds the 64 round constants of FIPS 180-4 §4.2.2.
var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256Init holds the eight initial hash words of FIPS 180-4 §5.3.3.
var sha256Init = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func sha256rotr(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

// sha256Block runs the compression function over one 64-byte block,
// updating h in place. w is reused across calls as scratch space for the
// full 64-word message schedule.
func sha256Block(h *[8]uint32, block []byte, w *[64]uint32) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := sha256rotr(w[i-15], 7) ^ sha256rotr(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := sha256rotr(w[i-2], 17) ^ sha256rotr(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < 64; i++ {
		s1 := sha256rotr(e, 6) ^ sha256rotr(e, 11) ^ sha256rotr(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + s1 + ch + sha256K[i] + w[i]
		s0 := sha256rotr(a, 2) ^ sha256rotr(a, 13) ^ sha256rotr(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		hh, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// pad256 appends Merkle-Damgard padding (0x80, zeros, 64-bit big-endian
// bit length) so the result is a multiple of 64 bytes.
func pad256(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8
	padded := append([]byte{}, msg...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], bitLen)
	return append(padded, lenBuf[:]...)
}

// SHA256 returns the 32-byte FIPS 180-4 SHA-256 digest of msg.
func SHA256(msg []byte) [32]byte {
	h := sha256Init
	padded := pad256(msg)

	var w [64]uint32
	for off := 0; off < len(padded); off += 64 {
		sha256Block(&h, padded[off:off+64], &w)
	}

	var out [32]byte
	for i, word := range h {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}
	return out
}
