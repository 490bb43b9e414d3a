//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kdf

import (
	"encoding/binary"

	"github.com/markkurossi/nebula/hash"
)

const (
	argon2Version = 0x13
	argon2TypeID  = 2
	syncPoints    = 4
	// addressesPerBlock is the number of (J1, J2) reference pairs one
	// address block supplies before Argon2i/id's data-independent path
	// must regenerate it (spec.md §4.7, "Address block generation").
	addressesPerBlock = blockWords
)

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

// buildH0 computes the 64-byte seed H0 from which every lane's first two
// blocks are derived (spec.md §4.7 step 2).
func buildH0(password, salt []byte, p Params, m uint32) ([]byte, error) {
	var buf []byte
	buf = append(buf, le32(p.Lanes)...)
	buf = append(buf, le32(uint32(p.TagLen))...)
	buf = append(buf, le32(m)...)
	buf = append(buf, le32(p.Time)...)
	buf = append(buf, le32(argon2Version)...)
	buf = append(buf, le32(argon2TypeID)...)

	buf = append(buf, le32(uint32(len(password)))...)
	buf = append(buf, password...)
	buf = append(buf, le32(uint32(len(salt)))...)
	buf = append(buf, salt...)
	buf = append(buf, le32(uint32(len(p.Secret)))...)
	buf = append(buf, p.Secret...)
	buf = append(buf, le32(uint32(len(p.AssociatedData)))...)
	buf = append(buf, p.AssociatedData...)

	return hash.BLAKE2b(64, buf)
}

// memory is the Argon2 working memory: lanes rows of laneLen blocks
// each, stored as one contiguous slice indexed by lane*laneLen+column.
type memory struct {
	blocks  []block
	lanes   uint32
	laneLen uint32
}

func newMemory(lanes, laneLen uint32) *memory {
	return &memory{
		blocks:  make([]block, int(lanes)*int(laneLen)),
		lanes:   lanes,
		laneLen: laneLen,
	}
}

func (m *memory) at(lane, col uint32) *block {
	return &m.blocks[lane*m.laneLen+col]
}

func (m *memory) zero() {
	for i := range m.blocks {
		m.blocks[i].zero()
	}
}

// addressInput is the Z block fed to the nested G calls that produce an
// Argon2i/id address block (spec.md §4.7, "Address block generation").
type addressInput struct {
	pass, lane, slice, totalBlocks, time uint32
	counter                              uint64
}

func (a addressInput) block() block {
	var z block
	z[0] = uint64(a.pass)
	z[1] = uint64(a.lane)
	z[2] = uint64(a.slice)
	z[3] = uint64(a.totalBlocks)
	z[4] = uint64(a.time)
	z[5] = argon2TypeID
	z[6] = a.counter
	return z
}

// generateAddressBlock computes addr = G(0, G(0, Z)), the synthetic
// block Argon2i/id uses to pick reference indices without looking at
// any data-dependent content (spec.md §4.7).
func generateAddressBlock(in addressInput) block {
	var zero block
	z := in.block()
	tmp := compressG(&zero, &z)
	return compressG(&zero, &tmp)
}

// Argon2id derives a tag_len-byte key from password and salt using the
// memory-hard Argon2id construction of RFC 9106. salt must be at least
// 8 bytes; params must satisfy Params.Validate.
func Argon2id(password, salt []byte, params Params) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(salt) < 8 {
		return nil, ErrInvalidSalt
	}

	m := params.normalizedMemory()
	laneLen := m / params.Lanes
	segmentLen := laneLen / syncPoints

	h0, err := buildH0(password, salt, params, m)
	if err != nil {
		return nil, err
	}

	mem := newMemory(params.Lanes, laneLen)
	defer mem.zero()

	for lane := uint32(0); lane < params.Lanes; lane++ {
		for col := uint32(0); col < 2; col++ {
			input := append(append([]byte{}, h0...), le32(col)...)
			input = append(input, le32(lane)...)
			b, err := hash.BLAKE2bLong(1024, input)
			if err != nil {
				return nil, err
			}
			*mem.at(lane, col) = blockFromBytes(b)
		}
	}

	for t := uint32(0); t < params.Time; t++ {
		for s := uint32(0); s < syncPoints; s++ {
			for lane := uint32(0); lane < params.Lanes; lane++ {
				fillSegment(mem, params, t, s, lane, laneLen, segmentLen)
			}
		}
	}

	var final block
	for lane := uint32(0); lane < params.Lanes; lane++ {
		final.xorInto(mem.at(lane, laneLen-1))
	}

	return hash.BLAKE2bLong(params.TagLen, final.bytes())
}

// fillSegment fills one (pass, slice, lane) segment of memory,
// implementing the reference-index derivation and BlaMka compression
// described in spec.md §4.7.
func fillSegment(mem *memory, params Params, t, s, lane, laneLen, segmentLen uint32) {
	dataIndependent := t == 0 && s < 2

	var addr block
	var addrCounter uint64
	regenerateAddress := func() {
		addrCounter++
		addr = generateAddressBlock(addressInput{
			pass: t, lane: lane, slice: s,
			totalBlocks: laneLen * params.Lanes, time: params.Time,
			counter: addrCounter,
		})
	}

	startIndex := uint32(0)
	if t == 0 && s == 0 {
		startIndex = 2
	}

	for indexInSegment := startIndex; indexInSegment < segmentLen; indexInSegment++ {
		if dataIndependent && (indexInSegment == startIndex || indexInSegment%addressesPerBlock == 0) {
			regenerateAddress()
		}

		col := s*segmentLen + indexInSegment

		var j1, j2 uint32
		if dataIndependent {
			word := addr[indexInSegment%addressesPerBlock]
			j1 = uint32(word)
			j2 = uint32(word >> 32)
		} else {
			var prevCol uint32
			if col == 0 {
				prevCol = laneLen - 1
			} else {
				prevCol = col - 1
			}
			word := mem.at(lane, prevCol)[0]
			j1 = uint32(word)
			j2 = uint32(word >> 32)
		}

		refLane := lane
		if !(t == 0 && s == 0) {
			refLane = j2 % params.Lanes
		}
		sameLane := refLane == lane

		var windowSize int64
		switch {
		case t == 0 && s == 0:
			windowSize = int64(indexInSegment) - 1
		case t == 0 && sameLane:
			windowSize = int64(s)*int64(segmentLen) + int64(indexInSegment) - 1
		case t == 0:
			windowSize = int64(s) * int64(segmentLen)
			if indexInSegment == 0 {
				windowSize--
			}
		case sameLane:
			windowSize = int64(laneLen) - int64(segmentLen) + int64(indexInSegment) - 1
		default:
			windowSize = int64(laneLen) - int64(segmentLen)
			if indexInSegment == 0 {
				windowSize--
			}
		}

		var refIndex uint32
		if windowSize <= 0 {
			refIndex = 0
		} else {
			w := uint64(windowSize)
			x := (uint64(j1) * uint64(j1)) >> 32
			relative := (w - 1) - ((w * x) >> 32)

			start := uint32(0)
			if !(t == 0 || s == syncPoints-1) {
				start = (s + 1) * segmentLen
			}
			refIndex = (start + uint32(relative)) % laneLen
		}

		var prevCol uint32
		if col == 0 {
			prevCol = laneLen - 1
		} else {
			prevCol = col - 1
		}

		newBlock := compressG(mem.at(lane, prevCol), mem.at(refLane, refIndex))
		if t > 0 {
			newBlock.xorInto(mem.at(lane, col))
		}
		*mem.at(lane, col) = newBlock
	}
}
