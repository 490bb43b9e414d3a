//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package aead implements the RFC 8439 ChaCha20-Poly1305 authenticated
// encryption construction on top of the chacha20 and poly1305 packages.
package aead

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"

	"github.com/markkurossi/nebula/chacha20"
	"github.com/markkurossi/nebula/poly1305"
)

// ErrInvalidLength reports a buffer-size mismatch. Encrypt and Decrypt
// never return it: they allocate their output buffers themselves and
// take the tag as a fixed-size array.
var ErrInvalidLength = errors.New("aead: invalid buffer length")

// ErrAuthenticationFailed is returned by Decrypt when the tag does not
// match; no plaintext is released in this case.
var ErrAuthenticationFailed = errors.New("aead: authentication failed")

func pad16(n int) int {
	if n%16 == 0 {
		return 0
	}
	return 16 - n%16
}

func macData(aad, ciphertext []byte) []byte {
	buf := make([]byte, 0, len(aad)+pad16(len(aad))+len(ciphertext)+pad16(len(ciphertext))+16)
	buf = append(buf, aad...)
	buf = append(buf, make([]byte, pad16(len(aad)))...)
	buf = append(buf, ciphertext...)
	buf = append(buf, make([]byte, pad16(len(ciphertext)))...)

	var lens [16]byte
	binary.LittleEndian.PutUint64(lens[0:8], uint64(len(aad)))
	binary.LittleEndian.PutUint64(lens[8:16], uint64(len(ciphertext)))
	return append(buf, lens[:]...)
}

func oneTimeKey(key [chacha20.KeySize]byte, nonce [chacha20.NonceSize]byte) [poly1305.KeySize]byte {
	block := chacha20.Block(key, 0, nonce)
	var otk [poly1305.KeySize]byte
	copy(otk[:], block[:poly1305.KeySize])
	for i := range block {
		block[i] = 0
	}
	return otk
}

// Encrypt seals plaintext P with associated data A under key k and
// nonce n, returning the ciphertext and the 16-byte authentication tag
// (RFC 8439 §2.8). Reusing (k, n) across two calls breaks the scheme.
func Encrypt(key [chacha20.KeySize]byte, nonce [chacha20.NonceSize]byte, plaintext, aad []byte) ([]byte, [poly1305.TagSize]byte) {
	otk := oneTimeKey(key, nonce)

	ciphertext := make([]byte, len(plaintext))
	chacha20.XOR(key, nonce, 1, ciphertext, plaintext)

	tag := poly1305.Sum(otk, macData(aad, ciphertext))
	for i := range otk {
		otk[i] = 0
	}
	return ciphertext, tag
}

// Decrypt opens ciphertext C against tag T and associated data A under
// key k and nonce n. It returns ErrAuthenticationFailed without writing
// any plaintext if the tag does not match.
func Decrypt(key [chacha20.KeySize]byte, nonce [chacha20.NonceSize]byte, ciphertext []byte, tag [poly1305.TagSize]byte, aad []byte) ([]byte, error) {
	otk := oneTimeKey(key, nonce)
	defer func() {
		for i := range otk {
			otk[i] = 0
		}
	}()

	want := poly1305.Sum(otk, macData(aad, ciphertext))
	if subtle.ConstantTimeCompare(want[:], tag[:]) != 1 {
		return nil, ErrAuthenticationFailed
	}

	plaintext := make([]byte, len(ciphertext))
	chacha20.XOR(key, nonce, 1, plaintext, ciphertext)
	return plaintext, nil
}
