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

type Owned interface {
	Owner() Address
}

type DescriptorSource interface {
	ResourceDescriptors() []ResourceDescriptor
}

type HandleSource interface {
	ResourceHandles() []*ResourceHandle
}

// Accounts is implemented by generated schema structs holding plain
// addresses. LinkedPayload is a marker method binding the schema to its
// payload type P, so mismatched pairs are rejected by the type checker.
type Accounts[P Payload] interface {
	Owned
	DescriptorSource
	LinkedPayload(P)
}

// Bound is implemented by generated "AccountInfos" aggregates holding live
// resource handles. ResourceHandles is index-aligned with
// ResourceDescriptors.
type Bound[P Payload] interface {
	Owned
	DescriptorSource
	HandleSource
	LinkedPayload(P)
}
