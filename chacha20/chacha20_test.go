//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package chacha20

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// TestBlockRFC8439Vector reproduces the RFC 8439 §2.3.2 ChaCha20 block
// function test vector: key = 0x00..0x1f, nonce =
// 000000090000004a00000000, block counter 1.
func TestBlockRFC8439Vector(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	nonceBytes, _ := hex.DecodeString("000000090000004a00000000")
	var nonce [12]byte
	copy(nonce[:], nonceBytes)

	got := Block(key, 1, nonce)
	want, _ := hex.DecodeString(
		"10f1e7e4d13b5915500fdd1fa32071c4c7d1f4c733c068030422aa9ac3d46c4" +
			"ed2826446079faa0914c2d705d98b02a2b5129cd1de164eb9cbd083e8a2503c4e")
	if !bytes.Equal(got[:], want) {
		t.Errorf("Block mismatch:\n got %x\nwant %x", got, want)
	}
}

// TestXORIsInvolution checks that XOR-ing a keystream twice recovers
// the original plaintext.
func TestXORIsInvolution(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i * 3)
	}
	var nonce [12]byte
	for i := range nonce {
		nonce[i] = byte(i + 1)
	}

	plain := []byte("the quick brown fox jumps over the lazy dog, twice over")
	cipher := make([]byte, len(plain))
	XOR(key, nonce, 0, cipher, plain)

	recovered := make([]byte, len(cipher))
	XOR(key, nonce, 0, recovered, cipher)

	if !bytes.Equal(plain, recovered) {
		t.Errorf("XOR did not round-trip:\n got %q\nwant %q", recovered, plain)
	}
	if bytes.Equal(plain, cipher) {
		t.Errorf("ciphertext equals plaintext, keystream XOR had no effect")
	}
}

// TestXORSpansMultipleBlocks exercises the block-counter increment path
// with input longer than one 64-byte block.
func TestXORSpansMultipleBlocks(t *testing.T) {
	var key [32]byte
	var n [12]byte
	plain := make([]byte, 200)
	for i := range plain {
		plain[i] = byte(i)
	}
	cipher := make([]byte, len(plain))
	XOR(key, n, 0, cipher, plain)
	recovered := make([]byte, len(cipher))
	XOR(key, n, 0, recovered, cipher)
	if !bytes.Equal(plain, recovered) {
		t.Errorf("multi-block XOR did not round-trip")
	}
}
