// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package capgen

import (
	"errors"

	"filippo.io/edwards25519"
	"github.com/minio/sha256-simd"
)

const (
	MaxSeeds   = 16
	MaxSeedLen = 32
)

const derivedAddressMarker = "ProgramDerivedAddress"

// Seeds is one set of byte strings from which an address is derived under
// a program's address space.
type Seeds [][]byte

// CreateProgramAddress derives the address for seeds under program. The
// result never lies on the ed25519 curve, so no private key can sign for it;
// only the program itself can assert signing authority.
func CreateProgramAddress(seeds Seeds, program Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, ErrMaxSeedsExceeded
	}
	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return Address{}, ErrMaxSeedLenExceeded
		}
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write([]byte(derivedAddressMarker))

	var addr Address
	copy(addr[:], h.Sum(nil))
	if onCurve(addr) {
		return Address{}, ErrInvalidSeeds
	}
	return addr, nil
}

// FindProgramAddress searches bump seeds from 255 down to 1 and returns the
// first derived address that is off the curve, together with its bump.
func FindProgramAddress(seeds Seeds, program Address) (Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return Address{}, 0, ErrMaxSeedsExceeded
	}
	withBump := append(append(Seeds{}, seeds...), []byte{0})
	return searchBump(func(bump uint8) (Address, error) {
		withBump[len(withBump)-1][0] = bump
		return CreateProgramAddress(withBump, program)
	})
}

// Bump 0 is never tried.
func searchBump(derive func(bump uint8) (Address, error)) (Address, uint8, error) {
	for ii := 255; ii >= 1; ii-- {
		addr, err := derive(uint8(ii))
		if err == nil {
			return addr, uint8(ii), nil
		}
		if !errors.Is(err, ErrInvalidSeeds) {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, ErrNoViableBump
}

func onCurve(addr Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err == nil
}
