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
	"fmt"
	"reflect"
)

var (
	ErrInvalidAddress = errors.New("capgen: invalid address")

	ErrMaxSeedsExceeded   = errors.New("capgen: too many seeds")
	ErrMaxSeedLenExceeded = errors.New("capgen: seed too long")
	ErrInvalidSeeds       = errors.New("capgen: derived address lies on the curve")
	ErrNoViableBump       = errors.New("capgen: no viable bump seed")

	ErrTagNotFound  = errors.New("capgen: type tag not found")
	ErrTagMismatch  = errors.New("capgen: type tag mismatch")
	ErrDidNotDecode = errors.New("capgen: failed to decode")

	ErrHandleCountMismatch = errors.New("capgen: descriptor and handle counts differ")
	ErrAddressMismatch     = errors.New("capgen: handle address differs from descriptor")
	ErrMissingSigner       = errors.New("capgen: missing required signature")
	ErrReadOnly            = errors.New("capgen: resource is not writable")
	ErrUnknownProgram      = errors.New("capgen: unknown program")
)

// A DispatchError reports a failed dispatch, naming the resource at fault
// when there is one.
type DispatchError struct {
	Program Address
	Index   int
	Address Address
	Err     error
}

func (err *DispatchError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("dispatch to %s: %v", err.Program, err.Err)
	}
	return fmt.Sprintf(
		"dispatch to %s: resource #%d (%s): %v",
		err.Program, err.Index, err.Address, err.Err,
	)
}

func (err *DispatchError) Unwrap() error {
	return err.Err
}

type TagCollisionError struct {
	Tag         TypeTag
	Existing    reflect.Type
	Conflicting reflect.Type
}

func (err *TagCollisionError) Error() string {
	return fmt.Sprintf(
		"capgen: type tag %v of %v is already registered to %v",
		err.Tag, err.Conflicting, err.Existing,
	)
}
