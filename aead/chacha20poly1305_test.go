//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aead

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/markkurossi/nebula/chacha20"
)

// TestEncryptRFC8439Vector reproduces the RFC 8439 §2.8.2 AEAD test
// vector.
func TestEncryptRFC8439Vector(t *testing.T) {
	plaintext := []byte("Ladies and Gentlemen of the class of '99: If I could offer you " +
		"only one tip for the future, sunscreen would be it.")
	aadBytes, _ := hex.DecodeString("50515253c0c1c2c3c4c5c6c7")
	keyBytes, _ := hex.DecodeString(
		"808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9f")
	nonceBytes, _ := hex.DecodeString("070000004041424344454647")

	var key [chacha20.KeySize]byte
	copy(key[:], keyBytes)
	var nonce [chacha20.NonceSize]byte
	copy(nonce[:], nonceBytes)

	ct, tag := Encrypt(key, nonce, plaintext, aadBytes)

	wantCt, _ := hex.DecodeString(
		"d31a8d34648e60db7b86afbc53ef7ec2a4aded51296e08fea9e2b5a736ee62d" +
			"63dbea45e8ca9671282fafb69da92728b1a71de0a9e060b2905d6a5b67ecd3b" +
			"3692ddbd7f2d778b8c9803aee328091b58fab324e4fad675945585808b4831d" +
			"7bc3ff4def08e4b7a9de576d26586cec64b6116")
	wantTag, _ := hex.DecodeString("1ae10b594f09e26a7e902ecbd0600691")

	if !bytes.Equal(ct, wantCt) {
		t.Errorf("ciphertext mismatch:\n got %x\nwant %x", ct, wantCt)
	}
	if !bytes.Equal(tag[:], wantTag) {
		t.Errorf("tag mismatch:\n got %x\nwant %x", tag[:], wantTag)
	}

	pt, err := Decrypt(key, nonce, ct, tag, aadBytes)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Errorf("decrypted plaintext mismatch:\n got %q\nwant %q", pt, plaintext)
	}
}

// TestRoundTrip checks spec.md §8 universal property 2 across a range
// of plaintext/AAD sizes.
func TestRoundTrip(t *testing.T) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i + 100)
	}

	for _, size := range []int{0, 1, 15, 16, 17, 63, 64, 65, 300} {
		plaintext := make([]byte, size)
		for i := range plaintext {
			plaintext[i] = byte(i * 7)
		}
		aad := []byte("associated data")

		ct, tag := Encrypt(key, nonce, plaintext, aad)
		pt, err := Decrypt(key, nonce, ct, tag, aad)
		if err != nil {
			t.Fatalf("size %d: Decrypt: %v", size, err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Errorf("size %d: round trip mismatch:\n got %x\nwant %x", size, pt, plaintext)
		}
	}
}

// TestTamperingDetected checks spec.md §8 universal property 3:
// flipping any bit of the ciphertext or tag must cause authentication
// failure, and no plaintext must be released.
func TestTamperingDetected(t *testing.T) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	for i := range key {
		key[i] = byte(i * 5)
	}
	plaintext := []byte("secret message")
	aad := []byte("header")
	ct, tag := Encrypt(key, nonce, plaintext, aad)

	tamperedCt := append([]byte{}, ct...)
	tamperedCt[0] ^= 0x01
	if pt, err := Decrypt(key, nonce, tamperedCt, tag, aad); err != ErrAuthenticationFailed || pt != nil {
		t.Errorf("tampered ciphertext was not rejected cleanly: pt=%v err=%v", pt, err)
	}

	tamperedTag := tag
	tamperedTag[0] ^= 0x01
	if pt, err := Decrypt(key, nonce, ct, tamperedTag, aad); err != ErrAuthenticationFailed || pt != nil {
		t.Errorf("tampered tag was not rejected cleanly: pt=%v err=%v", pt, err)
	}

	tamperedAad := append([]byte{}, aad...)
	tamperedAad[0] ^= 0x01
	if pt, err := Decrypt(key, nonce, ct, tag, tamperedAad); err != ErrAuthenticationFailed || pt != nil {
		t.Errorf("tampered AAD was not rejected cleanly: pt=%v err=%v", pt, err)
	}
}
