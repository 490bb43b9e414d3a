//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

import "errors"

// ErrInvalidPoint is returned when a 32-byte string does not decode to
// a point on the curve (spec.md §4.9, "Decompression").
var ErrInvalidPoint = errors.New("ed25519: invalid point encoding")

// compress encodes p as 32 bytes: the y-coordinate with the sign of x
// folded into the unused top bit.
func compress(p extendedGroupElement) [32]byte {
	zinv := feInvert(p.Z)
	x := feMul(p.X, zinv)
	y := feMul(p.Y, zinv)
	out := feToBytes(y)
	out[31] ^= feIsNegative(x) << 7
	return out
}

// compressProjective is compress specialized for a projective point
// (X, Y, Z with no T coordinate), used by Verify on the result of
// geDoubleScalarMultVartime.
func compressProjective(p projectiveGroupElement) [32]byte {
	zinv := feInvert(p.Z)
	x := feMul(p.X, zinv)
	y := feMul(p.Y, zinv)
	out := feToBytes(y)
	out[31] ^= feIsNegative(x) << 7
	return out
}

// decompress recovers a point from its 32-byte compressed form
// (spec.md §4.9, "Decompression"): y is the low 255 bits, x is
// recovered via x^2 = (y^2-1)/(d*y^2+1) using pow22523 to extract a
// candidate fourth root, with SQRTM1 correcting the case where the
// candidate is the wrong root, and the top bit of s fixing the sign.
func decompress(s [32]byte) (extendedGroupElement, error) {
	y := feFromBytes(s[:])
	signBit := s[31] >> 7

	y2 := feSquare(y)
	u := feSub(y2, feOne())
	v := feAdd(feMul(fed, y2), feOne())

	v3 := feMul(feSquare(v), v)
	v7 := feMul(feSquare(v3), v)
	candidate := feMul(u, v7)
	candidate = fePow22523(candidate)
	candidate = feMul(candidate, feMul(u, v3))

	vx2 := feMul(v, feSquare(candidate))
	hasRoot := feIsNonZero(feSub(vx2, u)) == 0
	if !hasRoot {
		negU := feNeg(u)
		if feIsNonZero(feSub(vx2, negU)) != 0 {
			return extendedGroupElement{}, ErrInvalidPoint
		}
		candidate = feMul(candidate, feSqrtM1)
	}

	if feIsNegative(candidate) != signBit {
		candidate = feNeg(candidate)
	}

	x := candidate
	return extendedGroupElement{
		X: x,
		Y: y,
		Z: feOne(),
		T: feMul(x, y),
	}, nil
}
