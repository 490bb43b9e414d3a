//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ed25519

// Curve constants for the twisted Edwards curve -x^2+y^2 = 1 + d*x^2*y^2
// over GF(2^255-19) (spec.md §4.9, §GLOSSARY).
var (
	// fed is the curve parameter d = -121665/121666.
	fed = fieldElement{56195235, 13857412, 51736253, 6949390, 114729, 24766616, 60832955, 30306712, 48412415, 21499315}
	// fed2 is 2*d, used directly by the extended-coordinate addition
	// formulas.
	fed2 = fieldElement{45281625, 27714825, 36363642, 13898781, 229458, 15978800, 54557047, 27058993, 29715967, 9444199}
	// feSqrtM1 is a square root of -1 mod p, used to pick the correct
	// root during point decompression.
	feSqrtM1 = fieldElement{34513072, 25610706, 9377949, 3500415, 12389472, 33281959, 41962654, 31548777, 326685, 11406482}
	// baseX, baseY are the coordinates of the Ed25519 base point B.
	baseX = fieldElement{52811034, 25909283, 16144682, 17082669, 27570973, 30858332, 40966398, 8378388, 20764389, 8758491}
	baseY = fieldElement{40265304, 26843545, 13421772, 20132659, 26843545, 6710886, 53687091, 13421772, 40265318, 26843545}
)

// basePoint is the Ed25519 base point B in extended coordinates.
func basePoint() extendedGroupElement {
	return extendedGroupElement{
		X: baseX,
		Y: baseY,
		Z: feOne(),
		T: feMul(baseX, baseY),
	}
}
