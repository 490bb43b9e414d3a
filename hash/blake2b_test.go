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

// TestBLAKE2bAbc reproduces the standard RFC 7693 64-byte test vector
// for "abc".
func TestBLAKE2bAbc(t *testing.T) {
	got, err := BLAKE2b(64, []byte("abc"))
	if err != nil {
		t.Fatalf("BLAKE2b: %v", err)
	}
	want, _ := hex.DecodeString(
		"ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d" +
			"17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923")
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("BLAKE2b(\"abc\") mismatch:\n got %x\nwant %x", got, want)
	}
}

// TestBLAKE2bEmptyString reproduces the standard RFC 7693 64-byte test
// vector for the empty string.
func TestBLAKE2bEmptyString(t *testing.T) {
	got, err := BLAKE2b(64, nil)
	if err != nil {
		t.Fatalf("BLAKE2b: %v", err)
	}
	want, _ := hex.DecodeString(
		"786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f541" +
			"9d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce")
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("BLAKE2b(\"\") mismatch:\n got %x\nwant %x", got, want)
	}
}

// TestBLAKE2bRejectsOutOfRangeLength checks the documented [1,64] bound.
func TestBLAKE2bRejectsOutOfRangeLength(t *testing.T) {
	if _, err := BLAKE2b(0, nil); err == nil {
		t.Errorf("BLAKE2b(0, ...) should have failed")
	}
	if _, err := BLAKE2b(65, nil); err == nil {
		t.Errorf("BLAKE2b(65, ...) should have failed")
	}
}

// TestBLAKE2bLongMatchesBLAKE2bUnder65 checks that BLAKE2bLong falls
// back to a single BLAKE2b call for outLen <= 64 (with the 4-byte
// little-endian length prefix folded into the message), per its doc
// comment.
func TestBLAKE2bLongMatchesBLAKE2bUnder65(t *testing.T) {
	msg := []byte("Argon2 test input")
	long, err := BLAKE2bLong(32, msg)
	if err != nil {
		t.Fatalf("BLAKE2bLong: %v", err)
	}
	prefixed := append([]byte{32, 0, 0, 0}, msg...)
	direct, err := BLAKE2b(32, prefixed)
	if err != nil {
		t.Fatalf("BLAKE2b: %v", err)
	}
	if hex.EncodeToString(long) != hex.EncodeToString(direct) {
		t.Errorf("BLAKE2bLong(32, msg) != BLAKE2b(32, len32||msg):\n got %x\nwant %x", long, direct)
	}
}

// TestBLAKE2bLongOver64 exercises the chained construction for an
// output length beyond a single BLAKE2b call.
func TestBLAKE2bLongOver64(t *testing.T) {
	out, err := BLAKE2bLong(1024, []byte("kdf block"))
	if err != nil {
		t.Fatalf("BLAKE2bLong: %v", err)
	}
	if len(out) != 1024 {
		t.Fatalf("BLAKE2bLong(1024, ...) returned %d bytes, want 1024", len(out))
	}
	out2, err := BLAKE2bLong(1024, []byte("kdf block"))
	if err != nil {
		t.Fatalf("BLAKE2bLong: %v", err)
	}
	if hex.EncodeToString(out) != hex.EncodeToString(out2) {
		t.Errorf("BLAKE2bLong is not deterministic on equal inputs")
	}
}
