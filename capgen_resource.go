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
	"fmt"
)

// A ResourceDescriptor tells the dispatcher which resource a call touches
// and with which access rights.
type ResourceDescriptor struct {
	Address  Address
	Writable bool
	Signer   bool
}

// Writable returns the descriptor of a resource the call may modify.
func Writable(addr Address, signer bool) ResourceDescriptor {
	return ResourceDescriptor{Address: addr, Writable: true, Signer: signer}
}

// ReadOnly returns the descriptor of a resource the call only reads.
func ReadOnly(addr Address, signer bool) ResourceDescriptor {
	return ResourceDescriptor{Address: addr, Signer: signer}
}

func (d ResourceDescriptor) String() string {
	mode := "r"
	if d.Writable {
		mode = "w"
	}
	if d.Signer {
		mode += "s"
	}
	return fmt.Sprintf("%s(%s)", mode, d.Address)
}

// A ResourceHandle is the live view of one resource during a single call.
// Handles are owned by the dispatcher and must not be retained after the
// call returns.
type ResourceHandle struct {
	Key        Address
	Owner      Address
	Lamports   uint64
	Data       []byte
	Writable   bool
	Signer     bool
	Executable bool
}

// Descriptor returns the access rights the handle was granted.
func (h *ResourceHandle) Descriptor() ResourceDescriptor {
	return ResourceDescriptor{
		Address:  h.Key,
		Writable: h.Writable,
		Signer:   h.Signer,
	}
}
