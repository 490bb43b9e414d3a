//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

// Point representations follow spec.md §4.9: extended coordinates for
// general points (X, Y, Z, T with x=X/Z, y=Y/Z, xy=T/Z), a completed
// form used only as an addition/doubling intermediate, a projective
// form for doubling, and two precomputed forms (cached, for point+point
// addition; precomp, for point+fixed-table addition where Z is always
// 1) that store (Y+X, Y-X, ...) so subtraction is a swap, never an
// explicit negation.

type extendedGroupElement struct {
	X, Y, Z, T fieldElement
}

type completedGroupElement struct {
	X, Y, Z, T fieldElement
}

type projectiveGroupElement struct {
	X, Y, Z fieldElement
}

type cachedGroupElement struct {
	yPlusX, yMinusX, Z, T2d fieldElement
}

type precomputedGroupElement struct {
	yPlusX, yMinusX, xy2d fieldElement
}

func identityElement() extendedGroupElement {
	return extendedGroupElement{Y: feOne(), Z: feOne()}
}

func (p extendedGroupElement) toProjective() projectiveGroupElement {
	return projectiveGroupElement{X: p.X, Y: p.Y, Z: p.Z}
}

func (p extendedGroupElement) toCached() cachedGroupElement {
	return cachedGroupElement{
		yPlusX:  feAdd(p.Y, p.X),
		yMinusX: feSub(p.Y, p.X),
		Z:       p.Z,
		T2d:     feMul(p.T, fed2),
	}
}

// toPrecomputed normalizes p to affine (Z=1) and returns its precomp
// form. Only used while building the fixed-base table, so it need not
// be constant-time with respect to p.
func (p extendedGroupElement) toPrecomputed() precomputedGroupElement {
	zinv := feInvert(p.Z)
	x := feMul(p.X, zinv)
	y := feMul(p.Y, zinv)
	xy2d := feMul(feMul(x, y), fed2)
	return precomputedGroupElement{
		yPlusX:  feAdd(y, x),
		yMinusX: feSub(y, x),
		xy2d:    xy2d,
	}
}

func (r completedGroupElement) toExtended() extendedGroupElement {
	return extendedGroupElement{
		X: feMul(r.X, r.T),
		Y: feMul(r.Y, r.Z),
		Z: feMul(r.Z, r.T),
		T: feMul(r.X, r.Y),
	}
}

func (r completedGroupElement) toProjective() projectiveGroupElement {
	return projectiveGroupElement{
		X: feMul(r.X, r.T),
		Y: feMul(r.Y, r.Z),
		Z: feMul(r.Z, r.T),
	}
}

// geAdd implements the complete extended-coordinate addition formula
// (add-2008-hwcd-3) for P3 + Cached (spec.md §4.9).
func geAdd(p extendedGroupElement, q cachedGroupElement) completedGroupElement {
	a := feMul(feSub(p.Y, p.X), q.yMinusX)
	b := feMul(feAdd(p.Y, p.X), q.yPlusX)
	c := feMul(q.T2d, p.T)
	dd := feMul(feAdd(p.Z, p.Z), q.Z)
	e := feSub(b, a)
	f := feSub(dd, c)
	g := feAdd(dd, c)
	h := feAdd(b, a)
	return completedGroupElement{X: e, Y: h, Z: g, T: f}
}

// geSub is geAdd against the negated operand, obtained by swapping
// (Y+X) <-> (Y-X) in the cached operand rather than negating it.
func geSub(p extendedGroupElement, q cachedGroupElement) completedGroupElement {
	a := feMul(feSub(p.Y, p.X), q.yPlusX)
	b := feMul(feAdd(p.Y, p.X), q.yMinusX)
	c := feMul(q.T2d, p.T)
	dd := feMul(feAdd(p.Z, p.Z), q.Z)
	e := feSub(b, a)
	f := feAdd(dd, c)
	g := feSub(dd, c)
	h := feAdd(b, a)
	return completedGroupElement{X: e, Y: h, Z: g, T: f}
}

// geMixedAdd is geAdd specialized for a precomputed operand with Z=1.
func geMixedAdd(p extendedGroupElement, q precomputedGroupElement) completedGroupElement {
	a := feMul(feSub(p.Y, p.X), q.yMinusX)
	b := feMul(feAdd(p.Y, p.X), q.yPlusX)
	c := feMul(q.xy2d, p.T)
	dd := feAdd(p.Z, p.Z)
	e := feSub(b, a)
	f := feSub(dd, c)
	g := feAdd(dd, c)
	h := feAdd(b, a)
	return completedGroupElement{X: e, Y: h, Z: g, T: f}
}

// geMixedSub is the Y+X/Y-X swap of geMixedAdd.
func geMixedSub(p extendedGroupElement, q precomputedGroupElement) completedGroupElement {
	a := feMul(feSub(p.Y, p.X), q.yPlusX)
	b := feMul(feAdd(p.Y, p.X), q.yMinusX)
	c := feMul(q.xy2d, p.T)
	dd := feAdd(p.Z, p.Z)
	e := feSub(b, a)
	f := feAdd(dd, c)
	g := feSub(dd, c)
	h := feAdd(b, a)
	return completedGroupElement{X: e, Y: h, Z: g, T: f}
}

// geDouble uses the dedicated projective doubling formula on a P2 view
// (spec.md §4.9, "Doubling").
func geDouble(p projectiveGroupElement) completedGroupElement {
	a := feSquare(p.X)
	b := feSquare(p.Y)
	c := feSquare(p.Z)
	c = feAdd(c, c)
	h := feAdd(a, b)
	xPlusY := feAdd(p.X, p.Y)
	e := feSub(feSquare(xPlusY), h)
	g := feSub(b, a)
	f := feSub(g, c)
	negH := feNeg(h)
	return completedGroupElement{X: e, Y: negH, Z: g, T: f}
}

func geDoubleExtended(p extendedGroupElement) extendedGroupElement {
	return geDouble(p.toProjective()).toExtended()
}
