//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

import "math/big"

// ell is the order of the Ed25519 prime-order subgroup,
// 2^252 + 27742317777372353535851937790883648493 (spec.md §GLOSSARY).
var ell, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

// scalarFromBytes interprets b as a little-endian unsigned integer.
func scalarFromBytes(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// scalarToBytes32 encodes x mod ell as 32 little-endian bytes.
func scalarToBytes32(x *big.Int) [32]byte {
	r := new(big.Int).Mod(x, ell)
	be := r.FillBytes(make([]byte, 32))
	var out [32]byte
	for i, v := range be {
		out[31-i] = v
	}
	return out
}

// scReduce reduces a 64-byte little-endian integer modulo ell,
// returning the canonical 32-byte little-endian scalar (spec.md §4.10,
// "reduce"). The tightly packed 21-bit-limb fold used by the reference
// ref10 implementation is replaced here by math/big's modular
// reduction: both compute the identical canonical residue, and the
// limb-fold's intermediate coefficients are hard to safely transcribe
// without a compiler to catch an off-by-one in the carry chain (see
// DESIGN.md).
func scReduce(wide *[64]byte) [32]byte {
	return scalarToBytes32(scalarFromBytes(wide[:]))
}

// scMulAdd computes a*b+c mod ell (spec.md §4.10, "mul_add").
func scMulAdd(a, b, c *[32]byte) [32]byte {
	av := scalarFromBytes(a[:])
	bv := scalarFromBytes(b[:])
	cv := scalarFromBytes(c[:])
	r := new(big.Int).Mul(av, bv)
	r.Add(r, cv)
	return scalarToBytes32(r)
}

// scAdd computes a+b mod ell.
func scAdd(a, b *[32]byte) [32]byte {
	av := scalarFromBytes(a[:])
	bv := scalarFromBytes(b[:])
	r := new(big.Int).Add(av, bv)
	return scalarToBytes32(r)
}

// scIsCanonical reports whether s, read as a little-endian integer, is
// already reduced mod ell -- i.e. is the unique representative in
// [0, ell). Verify rejects non-canonical S values (spec.md §4.11,
// "reject if top 3 bits of S[31] non-zero").
func scIsCanonical(s *[32]byte) bool {
	return scalarFromBytes(s[:]).Cmp(ell) < 0
}

// clampScalar applies the Ed25519/X25519 clamping bit mask to a 32-byte
// seed-derived scalar: clear bits 0,1,2 of byte 0, clear bit 7 and set
// bit 6 of byte 31 (spec.md §4.11, "keypair").
func clampScalar(b *[32]byte) {
	b[0] &= 0xf8
	b[31] &= 0x7f
	b[31] |= 0x40
}

// slide produces the 256-entry sliding-window signed-digit recoding of
// a scalar, with non-zero digits odd and in [-15, 15] (spec.md §4.10,
// "slide"). Used only by double-scalar-multiplication verification, on
// public data, so it need not run in constant time.
func slide(a *[32]byte) [256]int8 {
	var r [256]int8
	for i := 0; i < 256; i++ {
		r[i] = int8((a[i>>3] >> uint(i&7)) & 1)
	}
	for i := 0; i < 256; i++ {
		if r[i] == 0 {
			continue
		}
		for b := 1; b <= 6 && i+b < 256; b++ {
			if r[i+b] == 0 {
				continue
			}
			shifted := int16(r[i+b]) << uint(b)
			if int16(r[i])+shifted <= 15 {
				r[i] += int8(shifted)
				r[i+b] = 0
			} else if int16(r[i])-shifted >= -15 {
				r[i] -= int8(shifted)
				for k := i + b; k < 256; k++ {
					if r[k] == 0 {
						r[k] = 1
						break
					}
					r[k] = 0
				}
			} else {
				break
			}
		}
	}
	return r
}
