//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package chacha20 implements the RFC 8439 ChaCha20 block function and
// keystream XOR, shared by the Poly1305 AEAD and the CSPRNG.
package chacha20

import (
	"encoding/binary"
	"math/bits"
)

// KeySize is the ChaCha20 key size in bytes.
const KeySize = 32

// NonceSize is the ChaCha20 nonce size in bytes (RFC 8439 variant).
const NonceSize = 12

// constants holds the four "expand 32-byte k" words (RFC 8439 §2.3).
var constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// Block computes one 64-byte ChaCha20 block for the given key, 32-bit
// counter, and 12-byte nonce (RFC 8439 §2.3).
func Block(key [KeySize]byte, counter uint32, nonce [NonceSize]byte) [64]byte {
	var state [16]uint32
	copy(state[0:4], constants[:])
	for i := 0; i < 8; i++ {
		state[4+i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	state[12] = counter
	for i := 0; i < 3; i++ {
		state[13+i] = binary.LittleEndian.Uint32(nonce[i*4:])
	}

	working := state

	for round := 0; round < 10; round++ {
		working[0], working[4], working[8], working[12] =
			quarterRound(working[0], working[4], working[8], working[12])
		working[1], working[5], working[9], working[13] =
			quarterRound(working[1], working[5], working[9], working[13])
		working[2], working[6], working[10], working[14] =
			quarterRound(working[2], working[6], working[10], working[14])
		working[3], working[7], working[11], working[15] =
			quarterRound(working[3], working[7], working[11], working[15])

		working[0], working[5], working[10], working[15] =
			quarterRound(working[0], working[5], working[10], working[15])
		working[1], working[6], working[11], working[12] =
			quarterRound(working[1], working[6], working[11], working[12])
		working[2], working[7], working[8], working[13] =
			quarterRound(working[2], working[7], working[8], working[13])
		working[3], working[4], working[9], working[14] =
			quarterRound(working[3], working[4], working[9], working[14])
	}

	var out [64]byte
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], working[i]+state[i])
	}
	return out
}

// XOR fills dst with in XORed against the ChaCha20 keystream generated
// from key/nonce starting at the given block counter. dst and in may
// overlap completely (in-place operation) but must be the same length.
func XOR(key [KeySize]byte, nonce [NonceSize]byte, counter uint32, dst, in []byte) {
	for len(in) > 0 {
		block := Block(key, counter, nonce)
		n := len(in)
		if n > 64 {
			n = 64
		}
		for i := 0; i < n; i++ {
			dst[i] = in[i] ^ block[i]
		}
		dst = dst[n:]
		in = in[n:]
		counter++
	}
}
