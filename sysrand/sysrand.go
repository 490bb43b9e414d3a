//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sysrand provides the operating-system entropy primitive that
// the rest of this module treats as an external collaborator: a single
// function that fills a buffer with cryptographically secure randomness
// or aborts the process. It is the only place in this repository that
// leaves the algorithmic layer to ask the OS for anything.
package sysrand

import (
	"crypto/rand"
	"fmt"
)

// Fill fills buf entirely with OS-supplied entropy. It panics if the
// operating system's entropy source cannot be read to completion —
// the hard-abort contract callers such as rng.Csprng rely on.
func Fill(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("sysrand: entropy source failed: %v", err))
	}
}
