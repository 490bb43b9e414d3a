//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sss

import (
	"errors"

	"github.com/markkurossi/nebula/rng"
)

// Share is one Shamir share. All shares produced by one Split call carry
// the same Threshold and the same length Data.
type Share struct {
	ID        byte
	Threshold byte
	Data      []byte
}

// Sentinel errors matching the taxonomy this package's callers expect.
var (
	ErrInvalidShare       = errors.New("sss: invalid share")
	ErrInvalidThreshold   = errors.New("sss: invalid threshold")
	ErrNotEnoughShares    = errors.New("sss: not enough shares")
	ErrDuplicateShareID   = errors.New("sss: duplicate share id")
	ErrInconsistentShares = errors.New("sss: inconsistent shares")
)

// Split divides secret into count shares, threshold of which are
// required to reconstruct it. For each byte of secret, a degree
// (threshold-1) polynomial is sampled with that byte as its constant
// term and the remaining coefficients drawn from csprng; share i
// records the polynomial's value at x = i.
func Split(csprng *rng.Csprng, secret []byte, threshold, count int) ([]Share, error) {
	if len(secret) == 0 {
		return nil, ErrInvalidShare
	}
	if threshold <= 0 || threshold > count || count > 255 {
		return nil, ErrInvalidThreshold
	}

	coefficients := make([][]byte, len(secret))
	for k, b := range secret {
		coefficients[k] = make([]byte, threshold)
		coefficients[k][0] = b
		if threshold > 1 {
			csprng.FillBytes(coefficients[k][1:])
		}
	}

	shares := make([]Share, count)
	for i := 0; i < count; i++ {
		id := byte(i + 1)
		data := make([]byte, len(secret))
		for k := range secret {
			data[k] = polyEval(coefficients[k], id)
		}
		shares[i] = Share{ID: id, Threshold: byte(threshold), Data: data}
	}
	return shares, nil
}

func validateShares(shares []Share) (threshold int, dataLen int, err error) {
	if len(shares) == 0 {
		return 0, 0, ErrNotEnoughShares
	}
	threshold = int(shares[0].Threshold)
	dataLen = len(shares[0].Data)
	seen := make(map[byte]bool, len(shares))
	for _, s := range shares {
		if s.ID == 0 {
			return 0, 0, ErrInvalidShare
		}
		if int(s.Threshold) != threshold || len(s.Data) != dataLen {
			return 0, 0, ErrInconsistentShares
		}
		if seen[s.ID] {
			return 0, 0, ErrDuplicateShareID
		}
		seen[s.ID] = true
	}
	if len(shares) < threshold {
		return 0, 0, ErrNotEnoughShares
	}
	return threshold, dataLen, nil
}

// Combine reconstructs the secret from shares using byte-wise Lagrange
// interpolation at x = 0 over the first Threshold of them.
func Combine(shares []Share) ([]byte, error) {
	threshold, dataLen, err := validateShares(shares)
	if err != nil {
		return nil, err
	}
	shares = shares[:threshold]

	xs := make([]byte, threshold)
	for i, s := range shares {
		xs[i] = s.ID
	}

	secret := make([]byte, dataLen)
	ys := make([]byte, threshold)
	for k := 0; k < dataLen; k++ {
		for i, s := range shares {
			ys[i] = s.Data[k]
		}
		secret[k] = lagrangeAtZero(xs, ys)
	}
	return secret, nil
}

// Refresh produces a new set of shares for the same secret without
// reconstructing it. For each byte it samples a degree (threshold-1)
// polynomial g with g(0) = 0 and XORs g(id) into that share's byte;
// since g(0) = 0 the underlying secret is unchanged.
func Refresh(csprng *rng.Csprng, shares []Share) ([]Share, error) {
	threshold, dataLen, err := validateShares(shares)
	if err != nil {
		return nil, err
	}

	coefficients := make([][]byte, dataLen)
	for k := 0; k < dataLen; k++ {
		coefficients[k] = make([]byte, threshold)
		// coefficients[k][0] stays zero: g(0) = 0.
		if threshold > 1 {
			csprng.FillBytes(coefficients[k][1:])
		}
	}

	out := make([]Share, len(shares))
	for i, s := range shares {
		data := make([]byte, dataLen)
		for k := 0; k < dataLen; k++ {
			data[k] = gfAdd(s.Data[k], polyEval(coefficients[k], s.ID))
		}
		out[i] = Share{ID: s.ID, Threshold: s.Threshold, Data: data}
	}
	return out, nil
}
