//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package hash

import (
	"encoding/hex"
	"testing"
)

// TestSHA256Abc reproduces the standard FIPS 180-4 test vector.
func TestSHA256Abc(t *testing.T) {
	got := SHA256([]byte("abc"))
	want, _ := hex.DecodeString(
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
		t.Errorf("SHA-256(\"abc\") mismatch:\n got %x\nwant %x", got, want)
	}
}

// TestSHA256EmptyString reproduces the standard FIPS 180-4 empty-string
// test vector.
func TestSHA256EmptyString(t *testing.T) {
	got := SHA256(nil)
	want, _ := hex.DecodeString(
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
		t.Errorf("SHA-256(\"\") mismatch:\n got %x\nwant %x", got, want)
	}
}
