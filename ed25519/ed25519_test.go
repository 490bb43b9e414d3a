//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/markkurossi/nebula/hash"
	"github.com/markkurossi/nebula/rng"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

// TestSignVector1 reproduces an independently computed Ed25519
// signature over sk = 0x00..0x1f, msg = "Hello, world!" (spec.md §8,
// scenario S4).
func TestSignVector1(t *testing.T) {
	sk := mustHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	wantPK := mustHex(t, "03a107bff3ce10be1d70dd18e74bc09967e4d6309ba50d5f1ddc8664125531b8")
	msg := []byte("Hello, world!")
	wantSig := mustHex(t, "2c62a52f1d5e97458a0e39cf8db654fd49337148727afa7470b4ce69dbb689be31932095bd35df6f7b06f59197cc65a3494cee4be33de7f0db11645310c8f800")

	h := hash.SHA512(sk)
	var a [32]byte
	copy(a[:], h[:32])
	clampScalar(&a)
	var priv PrivateKey
	copy(priv[:32], a[:])
	copy(priv[32:], h[32:])
	pub := PublicKey(compress(geScalarMultBase(&a)))

	if !bytes.Equal(pub[:], wantPK) {
		t.Fatalf("public key mismatch:\n got %x\nwant %x", pub[:], wantPK)
	}

	sig := Sign(msg, pub, priv)
	if !bytes.Equal(sig[:], wantSig) {
		t.Fatalf("signature mismatch:\n got %x\nwant %x", sig[:], wantSig)
	}
	if !Verify(sig, msg, pub) {
		t.Fatalf("Verify rejected a valid signature")
	}
}

// TestSignVector2 is the empty-message case, sk = 0xAA repeated.
func TestSignVector2(t *testing.T) {
	var sk [32]byte
	for i := range sk {
		sk[i] = 0xAA
	}
	wantPK := mustHex(t, "e734ea6c2b6257de72355e472aa05a4c487e6b463c029ed306df2f01b5636b58")
	wantSig := mustHex(t, "31e15d0b89342d16935f7c962c461e35db7e9ee101009618d316b1f1aff366a30ed673f0a0ec7e4a53d3cb3445f90c0b66a09106d5c6ebb3e41d93ef8e7c5f0d")

	h := hash.SHA512(sk[:])
	var a [32]byte
	copy(a[:], h[:32])
	clampScalar(&a)
	var priv PrivateKey
	copy(priv[:32], a[:])
	copy(priv[32:], h[32:])
	pub := PublicKey(compress(geScalarMultBase(&a)))

	if !bytes.Equal(pub[:], wantPK) {
		t.Fatalf("public key mismatch:\n got %x\nwant %x", pub[:], wantPK)
	}

	sig := Sign(nil, pub, priv)
	if !bytes.Equal(sig[:], wantSig) {
		t.Fatalf("signature mismatch:\n got %x\nwant %x", sig[:], wantSig)
	}
	if !Verify(sig, nil, pub) {
		t.Fatalf("Verify rejected a valid signature")
	}
}

// TestGenerateSignVerifyRoundTrip exercises the full GenerateKeypair /
// Sign / Verify path and confirms tampering is detected (spec.md §9,
// invariant 6: "Sign/verify correctness").
func TestGenerateSignVerifyRoundTrip(t *testing.T) {
	csprng := rng.FromSeed([32]byte{1, 2, 3})
	for i := 0; i < 10; i++ {
		pub, priv := GenerateKeypair(csprng)
		msg := []byte{byte(i), byte(i * 7), byte(i * 13)}
		sig := Sign(msg, pub, priv)
		if !Verify(sig, msg, pub) {
			t.Fatalf("round %d: valid signature rejected", i)
		}
		tampered := sig
		tampered[0] ^= 0x01
		if Verify(tampered, msg, pub) {
			t.Fatalf("round %d: tampered signature accepted", i)
		}
		if Verify(sig, append(msg, 0), pub) {
			t.Fatalf("round %d: signature verified under wrong message", i)
		}
	}
}

// TestAddScalarBothHalves checks invariant 7: after add_scalar updates
// both the private and public halves with the same n, the new keypair
// still signs and verifies consistently (spec.md §9, invariant 7).
func TestAddScalarBothHalves(t *testing.T) {
	csprng := rng.FromSeed([32]byte{9, 9, 9})
	pub, priv := GenerateKeypair(csprng)

	var n [32]byte
	csprng.FillBytes(n[:])

	newPub, newPriv, err := AddScalar(&pub, &priv, n)
	if err != nil {
		t.Fatalf("AddScalar: %v", err)
	}

	msg := []byte("blinded key test")
	sig := Sign(msg, newPub, newPriv)
	if !Verify(sig, msg, newPub) {
		t.Fatalf("blinded keypair failed to verify its own signature")
	}
}

// TestAddScalarPublicOnlyMatchesPrivate checks that blinding the public
// key alone produces the same public key as blinding both halves
// (spec.md §4.11, "add_scalar").
func TestAddScalarPublicOnlyMatchesPrivate(t *testing.T) {
	csprng := rng.FromSeed([32]byte{4, 5, 6})
	pub, priv := GenerateKeypair(csprng)

	var n [32]byte
	csprng.FillBytes(n[:])

	newPub, _, err := AddScalar(&pub, &priv, n)
	if err != nil {
		t.Fatalf("AddScalar (both): %v", err)
	}

	pubOnly, _, err := AddScalar(&pub, nil, n)
	if err != nil {
		t.Fatalf("AddScalar (public only): %v", err)
	}

	if !bytes.Equal(newPub[:], pubOnly[:]) {
		t.Fatalf("public-only blinding diverged from full blinding:\n got %x\nwant %x", pubOnly[:], newPub[:])
	}
}

// TestVerifyRejectsNonCanonicalS confirms the top-3-bits check in
// Verify (spec.md §4.11, "verify").
func TestVerifyRejectsNonCanonicalS(t *testing.T) {
	csprng := rng.FromSeed([32]byte{2})
	pub, priv := GenerateKeypair(csprng)
	msg := []byte("x")
	sig := Sign(msg, pub, priv)
	sig[63] |= 0xe0
	if Verify(sig, msg, pub) {
		t.Fatalf("Verify accepted a non-canonical S")
	}
}

// TestDecompressRejectsInvalidPoint confirms decompress rejects an
// encoding with no corresponding curve point: y = 2 gives an x^2 that
// is not a square mod p.
func TestDecompressRejectsInvalidPoint(t *testing.T) {
	var s [32]byte
	s[0] = 2
	if _, err := decompress(s); err == nil {
		t.Fatalf("decompress accepted an invalid point encoding")
	}
}

// TestCompressDecompressRoundTrip checks decompress(compress(p)) = p on
// valid points (spec.md §9, round-trip laws).
func TestCompressDecompressRoundTrip(t *testing.T) {
	csprng := rng.FromSeed([32]byte{7})
	for i := 0; i < 5; i++ {
		pub, _ := GenerateKeypair(csprng)
		p, err := decompress(pub)
		if err != nil {
			t.Fatalf("round %d: decompress: %v", i, err)
		}
		if got := compress(p); !bytes.Equal(got[:], pub[:]) {
			t.Fatalf("round %d: compress(decompress(p)) mismatch:\n got %x\nwant %x", i, got[:], pub[:])
		}
	}
}
