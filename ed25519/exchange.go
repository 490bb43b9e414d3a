//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

import "github.com/markkurossi/nebula/x25519"

// Exchange computes an X25519 Diffie-Hellman shared secret directly
// from Ed25519 keys, without requiring the caller to hold a separate
// X25519 keypair (spec.md §4.11, "exchange: X25519 via Ed25519
// scalar"). The private scalar is already X25519-compatible (both
// curves clamp identically); the peer's Edwards public key is mapped
// to its Curve25519 u-coordinate via the birational map in package
// x25519 before running the Montgomery ladder.
func Exchange(priv PrivateKey, pub PublicKey) [32]byte {
	a := priv.scalar()
	u := x25519.MontgomeryUFromEdwardsY([32]byte(pub))
	return x25519.Exchange(a, u)
}
