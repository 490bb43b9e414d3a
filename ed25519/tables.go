//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

// baseTable holds 32 groups of 8 precomputed points: baseTable[i][j] =
// (256^i)*(j+1)*B, one group per byte of the scalar. Each byte
// contributes two recoded nibbles (low nibble against group i directly,
// high nibble against group i after a x16 quadrupling of the
// accumulated odd-digit sum), so group i's scale is 16^(2i) = 256^i
// (spec.md §4.9, "Fixed-base scalar multiplication").
//
// The table is a pure function of the curve's base point, so rather
// than transcribe 256 literal points (the error-prone path spec.md's
// design notes warn about -- "any transcription error silently breaks
// signing") it is computed once at package init from the two base
// point coordinates in group_const.go, using the extended-coordinate
// arithmetic in group.go, and verified by this package's tests against
// independently-computed multiples of B.
var baseTable [32][8]precomputedGroupElement

// biTable holds the odd multiples 1B, 3B, 5B, ..., 15B in precomputed
// (affine) form, the {BI} table spec.md §4.9 step 2 uses for
// double-scalar verification.
var biTable [8]precomputedGroupElement

func init() {
	b := basePoint()
	group := b
	for i := 0; i < 32; i++ {
		p := group
		for j := 0; j < 8; j++ {
			baseTable[i][j] = p.toPrecomputed()
			if j < 7 {
				p = geAdd(p, group.toCached()).toExtended()
			}
		}
		// Advance to 256x the current group base (8 doublings) for the
		// next byte.
		for k := 0; k < 8; k++ {
			group = geDoubleExtended(group)
		}
	}

	cur := b
	biTable[0] = cur.toPrecomputed()
	twoB := geDoubleExtended(b)
	for i := 1; i < 8; i++ {
		cur = geAdd(twoB, cur.toCached()).toExtended()
		biTable[i] = cur.toPrecomputed()
	}
}

// selectPrecomputed performs a constant-time table lookup: it sets t to
// group*|digit| (sign-adjusted) chosen from among the 8 entries of
// baseTable[group], using conditional moves across every entry so the
// memory access pattern does not depend on digit.
func selectPrecomputed(group int, digit int8) precomputedGroupElement {
	mask := digit >> 7 // -1 if digit < 0, 0 otherwise
	absDigit := (digit ^ mask) - mask

	t := precomputedGroupElement{yPlusX: feOne(), yMinusX: feOne()}
	for i := 0; i < 8; i++ {
		match := int32(0)
		if int8(i+1) == absDigit {
			match = 1
		}
		feCMove(&t.yPlusX, baseTable[group][i].yPlusX, match)
		feCMove(&t.yMinusX, baseTable[group][i].yMinusX, match)
		feCMove(&t.xy2d, baseTable[group][i].xy2d, match)
	}

	negYPlusX := t.yMinusX
	negYMinusX := t.yPlusX
	negXy2d := feNeg(t.xy2d)

	isNeg := int32(0)
	if mask != 0 {
		isNeg = 1
	}
	feCMove(&t.yPlusX, negYPlusX, isNeg)
	feCMove(&t.yMinusX, negYMinusX, isNeg)
	feCMove(&t.xy2d, negXy2d, isNeg)
	return t
}

// recodeBase64 recodes a 32-byte scalar into 64 signed 4-bit digits in
// [-8, 7] by consuming nibbles left-to-right with a carry pass (spec.md
// §4.9).
func recodeBase64(scalar *[32]byte) [64]int8 {
	var e [64]int8
	for i := 0; i < 32; i++ {
		e[2*i] = int8(scalar[i] & 0xf)
		e[2*i+1] = int8((scalar[i] >> 4) & 0xf)
	}
	var carry int8
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}
	e[63] += carry
	return e
}

// geScalarMultBase computes scalar*B using the fixed-base table.
func geScalarMultBase(scalar *[32]byte) extendedGroupElement {
	digits := recodeBase64(scalar)

	r := identityElement()
	// Interleave: accumulate odd-indexed digits first.
	for i := 1; i < 64; i += 2 {
		t := selectPrecomputed(i/2, digits[i])
		r = geMixedAdd(r, t).toExtended()
	}
	// Quadruple: four doublings multiply the odd-digit partial sum by
	// 16, aligning it with the even-indexed digit windows.
	r2 := geDoubleExtended(r)
	r2 = geDoubleExtended(r2)
	r2 = geDoubleExtended(r2)
	r = geDoubleExtended(r2)

	for i := 0; i < 64; i += 2 {
		t := selectPrecomputed(i/2, digits[i])
		r = geMixedAdd(r, t).toExtended()
	}
	return r
}
