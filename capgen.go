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

// Package capgen holds the runtime contracts targeted by code generated
// from capability schemas: addresses, type tags, resource descriptors and
// handles, and the assembly of calls from a bound aggregate and its payload.
package capgen

// ImportPath is the import path of this package. Fields whose type is the
// [Address] of this package are direct resource addresses.
const ImportPath = "go.capgen.dev/capgen"

// Naming convention linking a schema to its derived types. Given a schema
// named "DepositAccounts" the bound aggregate is "DepositAccountInfos" and
// the payload is "DepositData".
const (
	SchemaSuffix = "Accounts"
	BoundSuffix  = "AccountInfos"
	DataSuffix   = "Data"
)
