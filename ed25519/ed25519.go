//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

import (
	"crypto/subtle"

	"github.com/markkurossi/nebula/hash"
	"github.com/markkurossi/nebula/rng"
)

// PublicKey is a compressed Ed25519 point.
type PublicKey [32]byte

// PrivateKey is the clamped scalar a (first 32 bytes) concatenated with
// the SHA-512 prefix p (last 32 bytes), per spec.md §4.2's "private =
// (scalar a, prefix p)".
type PrivateKey [64]byte

// Signature is R (a compressed point) concatenated with S (a scalar).
type Signature [64]byte

func (k PrivateKey) scalar() [32]byte {
	var a [32]byte
	copy(a[:], k[:32])
	return a
}

func (k PrivateKey) prefix() [32]byte {
	var p [32]byte
	copy(p[:], k[32:])
	return p
}

// GenerateKeypair draws a 32-byte seed from csprng and expands it per
// RFC 8032: SHA-512(seed) splits into the clamped private scalar a and
// the signing prefix p, and the public key is A = a*B (spec.md §4.11).
func GenerateKeypair(csprng *rng.Csprng) (PublicKey, PrivateKey) {
	var seed [32]byte
	csprng.FillBytes(seed[:])

	h := hash.SHA512(seed[:])

	var a [32]byte
	copy(a[:], h[:32])
	clampScalar(&a)

	var priv PrivateKey
	copy(priv[:32], a[:])
	copy(priv[32:], h[32:])

	pub := PublicKey(compress(geScalarMultBase(&a)))
	return pub, priv
}

// Sign computes the RFC 8032 Ed25519 signature of message under priv,
// whose corresponding public key must be pub (spec.md §4.11, "sign").
func Sign(message []byte, pub PublicKey, priv PrivateKey) Signature {
	a := priv.scalar()
	prefix := priv.prefix()

	rh := hash.SHA512(append(append([]byte{}, prefix[:]...), message...))
	r := scReduce(&rh)

	R := compress(geScalarMultBase(&r))

	kInput := append(append(append([]byte{}, R[:]...), pub[:]...), message...)
	kh := hash.SHA512(kInput)
	k := scReduce(&kh)

	S := scMulAdd(&k, &a, &r)

	var sig Signature
	copy(sig[:32], R[:])
	copy(sig[32:], S[:])
	return sig
}

// Verify checks an Ed25519 signature (spec.md §4.11, "verify"). It
// returns false for any malformed or invalid input -- signature
// verification failure is not an exceptional condition.
func Verify(sig Signature, message []byte, pub PublicKey) bool {
	var s [32]byte
	copy(s[:], sig[32:])
	if !scIsCanonical(&s) {
		return false
	}
	// Reject non-canonical S outright: the top three bits of a
	// reduced scalar's top byte are always zero, so a set bit there
	// is proof S was never reduced even before the big.Int comparison.
	if sig[63]&0xe0 != 0 {
		return false
	}

	A, err := decompress(pub)
	if err != nil {
		return false
	}
	// Negate A (X and T) so the double-scalar product below is
	// S*B - k*A, which equals R for a valid signature.
	A.X = feNeg(A.X)
	A.T = feNeg(A.T)

	var R [32]byte
	copy(R[:], sig[:32])

	kInput := append(append(append([]byte{}, R[:]...), pub[:]...), message...)
	kh := hash.SHA512(kInput)
	k := scReduce(&kh)

	checkPoint := geDoubleScalarMultVartime(&k, A, &s)
	RPrime := compressProjective(checkPoint)

	return subtle.ConstantTimeCompare(RPrime[:], R[:]) == 1
}
