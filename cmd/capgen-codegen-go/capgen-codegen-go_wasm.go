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

//go:build tinygo

package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"go.capgen.dev/capgen/internal/plugin"
)

var buffers = make(map[*uint8][]uint8)

func main() {}

//go:export capgen_codegen_allocate
func capgenCodegenAllocate(len uint32) *uint8 {
	if len > math.MaxInt32 {
		return nil
	}
	buf := make([]uint8, int(len))
	ptr := unsafe.SliceData(buf)
	buffers[ptr] = buf
	return ptr
}

//go:export capgen_codegen_deallocate
func capgenCodegenDeallocate(ptr *uint8) {
	delete(buffers, ptr)
}

//go:export capgen_codegen_generate
func capgenCodegenGenerate(requestPtr *uint8, responsePtrPtr **uint8) uint8 {
	requestLen := binary.LittleEndian.Uint32(unsafe.Slice(requestPtr, 4))
	requestBuf := unsafe.Slice(requestPtr, requestLen)

	req, err := plugin.DecodeRequest(requestBuf)
	if err != nil {
		return respond(responsePtrPtr, &plugin.Response{
			Error: fmt.Sprintf("DecodeRequest: %v", err),
		})
	}
	return respond(responsePtrPtr, plugin.Handle(req))
}

func respond(responsePtrPtr **uint8, resp *plugin.Response) uint8 {
	var rc uint8
	if resp.Error != "" {
		rc = 1
	}
	response, err := plugin.EncodeResponse(resp)
	if err != nil {
		rc = 1
		response, _ = plugin.EncodeResponse(&plugin.Response{
			Error: fmt.Sprintf("EncodeResponse: %v", err),
		})
	}
	responsePtr := unsafe.SliceData(response)
	buffers[responsePtr] = response
	*responsePtrPtr = responsePtr
	return rc
}
