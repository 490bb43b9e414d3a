//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package x25519

// ClampScalar applies the X25519/Ed25519 clamping mask: clear bits
// 0,1,2 of byte 0, clear bit 7 and set bit 6 of byte 31 (spec.md §4.12
// step 1). Exported so callers that derive an X25519 scalar from raw
// key material (rather than through Exchange, which clamps internally)
// can apply the identical mask.
func ClampScalar(b *[32]byte) {
	b[0] &= 0xf8
	b[31] &= 0x7f
	b[31] |= 0x40
}

// decodeU interprets b as a little-endian u-coordinate, masking the
// unused top bit per RFC 7748 §5.
func decodeU(b [32]byte) fieldElement {
	b[31] &= 0x7f
	return feFromBytes(b[:])
}

// Exchange computes the X25519 shared secret: clamp(priv) applied via
// the Montgomery ladder to the u-coordinate peerU (spec.md §4.12,
// "exchange"). Peer keys are not validated -- a low-order peerU
// legitimately produces an all-zero result, returned as-is.
func Exchange(priv [32]byte, peerU [32]byte) [32]byte {
	ClampScalar(&priv)
	u := decodeU(peerU)
	return ladder(priv, u)
}

// ladder runs the 255-bit Montgomery ladder (RFC 7748 §5), maintaining
// the pair of projective points (x2:z2) and (x3:z3) with a
// constant-time conditional swap driven by the XOR of successive
// scalar bits, so memory access and arithmetic sequence never depend
// on the secret scalar (spec.md §4.12 step 3).
func ladder(scalar [32]byte, u fieldElement) [32]byte {
	x1 := u
	x2 := feOne()
	var z2 fieldElement
	x3 := u
	z3 := feOne()

	var swap int32
	for pos := 254; pos >= 0; pos-- {
		bit := int32((scalar[pos/8] >> uint(pos%8)) & 1)
		swap ^= bit
		feCSwap(&x2, &x3, swap)
		feCSwap(&z2, &z3, swap)
		swap = bit

		a := feAdd(x2, z2)
		aa := feSquare(a)
		b := feSub(x2, z2)
		bb := feSquare(b)
		e := feSub(aa, bb)
		c := feAdd(x3, z3)
		d := feSub(x3, z3)
		da := feMul(d, a)
		cb := feMul(c, b)
		x3 = feSquare(feAdd(da, cb))
		z3 = feMul(x1, feSquare(feSub(da, cb)))
		x2 = feMul(aa, bb)
		z2 = feMul(e, feAdd(bb, mul121666(e)))
	}
	feCSwap(&x2, &x3, swap)
	feCSwap(&z2, &z3, swap)

	return feToBytes(feMul(x2, feInvert(z2)))
}

// MontgomeryUFromEdwardsY converts a compressed Ed25519 y-coordinate
// (a PublicKey; the sign bit in the top byte is masked off here, so the
// caller may pass the encoding unchanged) into the corresponding
// Curve25519 u-coordinate via the RFC
// 7748 Appendix A birational map u = (1+y)/(1-y), letting
// sig.ed25519.exchange reuse this package's ladder instead of
// duplicating it (spec.md §4.12 step 2, spec.md §4.11 "exchange").
func MontgomeryUFromEdwardsY(yLE [32]byte) [32]byte {
	yLE[31] &= 0x7f
	y := feFromBytes(yLE[:])
	one := feOne()
	num := feAdd(one, y)
	den := feSub(one, y)
	u := feMul(num, feInvert(den))
	return feToBytes(u)
}
