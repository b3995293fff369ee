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

package simulate

import (
	"go.capgen.dev/capgen"
)

// An Invocation is the view a program has of one call.
type Invocation struct {
	Program  capgen.Address
	Envelope capgen.CallEnvelope
	Handles  []*capgen.ResourceHandle

	rt      *Runtime
	depth   int
	derived map[capgen.Address]bool
}

// Tag returns the type tag at the front of the call data.
func (inv *Invocation) Tag() (capgen.TypeTag, bool) {
	if len(inv.Envelope.Data) < capgen.TypeTagSize {
		return capgen.TypeTag{}, false
	}
	return capgen.TypeTag(inv.Envelope.Data[:capgen.TypeTagSize]), true
}

// Signed reports whether the resource at index ii carries signing
// authority in this call.
func (inv *Invocation) Signed(ii int) bool {
	if ii < 0 || ii >= len(inv.Handles) {
		return false
	}
	return inv.Handles[ii].Signer || inv.derived[inv.Handles[ii].Key]
}

// Invoker returns an invoker for calls made by the executing program.
func (inv *Invocation) Invoker() capgen.Invoker {
	return &invoker{
		rt:     inv.rt,
		caller: inv.Program,
		depth:  inv.depth + 1,
	}
}

func DecodePayload[T capgen.Payload](inv *Invocation, opts ...capgen.CallOption) (T, error) {
	return capgen.DecodeRecord[T](inv.Envelope.Data, opts...)
}

// Transfer moves lamports between two handles of the same call.
func Transfer(from, to *capgen.ResourceHandle, lamports uint64) error {
	if from.Lamports < lamports {
		return ErrInsufficientFunds
	}
	from.Lamports -= lamports
	to.Lamports += lamports
	return nil
}
