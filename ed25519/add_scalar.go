//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

import "github.com/markkurossi/nebula/hash"

// AddScalar implements key blinding (spec.md §4.11, "add_scalar"): n is
// masked to clear its top bit, and then
//   - given both a public and a private key, the scalar is updated as
//     a' = a+n mod ell, the prefix is rederived as the first 32 bytes of
//     SHA-512(prefix || n), and the public key is recomputed as a'*B;
//   - given only a private key, the same scalar+prefix update is made
//     and the public key is likewise returned as a'*B;
//   - given only a public key, the new public key is computed directly
//     as (n*B) + A via mixed-coordinate group addition, without ever
//     touching a private scalar.
//
// Whenever priv is non-nil the private path is taken and pub is
// ignored. Passing both nil panics.
func AddScalar(pub *PublicKey, priv *PrivateKey, n [32]byte) (PublicKey, PrivateKey, error) {
	n[31] &= 0x7f

	if priv != nil {
		a := priv.scalar()
		prefix := priv.prefix()

		aPrime := scAdd(&a, &n)

		ph := hash.SHA512(append(append([]byte{}, prefix[:]...), n[:]...))

		var newPriv PrivateKey
		copy(newPriv[:32], aPrime[:])
		copy(newPriv[32:], ph[:32])

		newPub := PublicKey(compress(geScalarMultBase(&aPrime)))
		return newPub, newPriv, nil
	}

	// Public-key-only path: A' = (n*B) + A, computed as nB - (-A) via
	// mixed addition against the negated decompressed point (negate X
	// and T; Y and Z are unchanged) -- spec.md's key-blinding design
	// note calls for this exact sign convention (see DESIGN.md).
	A, err := decompress(*pub)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}
	negA := extendedGroupElement{
		X: feNeg(A.X),
		Y: A.Y,
		Z: A.Z,
		T: feNeg(A.T),
	}

	nB := geScalarMultBase(&n)
	sum := geSub(nB, negA.toCached()).toExtended()
	return PublicKey(compress(sum)), PrivateKey{}, nil
}
