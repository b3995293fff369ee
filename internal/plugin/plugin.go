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

// Package plugin defines the protocol between capgen and codegen plugins,
// and hosts plugins compiled to WebAssembly.
//
// A plugin exports three functions:
//
//	capgen_codegen_allocate(len u32) ptr
//	capgen_codegen_deallocate(ptr)
//	capgen_codegen_generate(request_ptr, response_ptr_ptr) u8
//
// Requests and responses are CBOR messages prefixed by their length as a
// little-endian u32.
package plugin

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"

	"go.capgen.dev/capgen/codegen"
	"go.capgen.dev/capgen/encoding/capcbor"
	"go.capgen.dev/capgen/schema"
)

const (
	ExportAllocate   = "capgen_codegen_allocate"
	ExportDeallocate = "capgen_codegen_deallocate"
	ExportGenerate   = "capgen_codegen_generate"
)

// OptionOutput names the generated file.
const OptionOutput = "output"

type Request struct {
	Set          *schema.Set       `cbor:"1,keyasint"`
	Dependencies []*schema.Set     `cbor:"2,keyasint,omitempty"`
	Options      map[string]string `cbor:"3,keyasint,omitempty"`
}

type OutputFile struct {
	Path    []string `cbor:"1,keyasint"`
	Content []byte   `cbor:"2,keyasint"`
}

type Response struct {
	Files []OutputFile `cbor:"1,keyasint,omitempty"`
	Error string       `cbor:"2,keyasint,omitempty"`
}

func frame(v any) ([]byte, error) {
	body, err := capcbor.Marshal(v)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 4, 4+len(body))
	binary.LittleEndian.PutUint32(buf, uint32(4+len(body)))
	return append(buf, body...), nil
}

func unframe(buf []byte, v any) error {
	if len(buf) < 4 {
		return fmt.Errorf("plugin: message too short (%d bytes)", len(buf))
	}
	msgLen := binary.LittleEndian.Uint32(buf)
	if msgLen < 4 || int(msgLen) > len(buf) {
		return fmt.Errorf("plugin: invalid message length %d", msgLen)
	}
	return capcbor.Unmarshal(buf[4:msgLen], v)
}

func EncodeRequest(req *Request) ([]byte, error)   { return frame(req) }
func EncodeResponse(resp *Response) ([]byte, error) { return frame(resp) }

func DecodeRequest(buf []byte) (*Request, error) {
	req := &Request{}
	if err := unframe(buf, req); err != nil {
		return nil, err
	}
	if req.Set == nil {
		return nil, fmt.Errorf("plugin: request has no schema set")
	}
	return req, nil
}

func DecodeResponse(buf []byte) (*Response, error) {
	resp := &Response{}
	if err := unframe(buf, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Handle runs the built-in Go generator on a request. It is what the
// reference plugin executes, natively or inside a wasm runtime.
func Handle(req *Request) *Response {
	for _, dep := range req.Dependencies {
		req.Set.AddDependency(dep)
	}
	output := req.Options[OptionOutput]
	if output == "" {
		output = codegen.DefaultOutput
	}
	content, err := codegen.Generate(req.Set)
	if err != nil {
		return &Response{Error: err.Error()}
	}
	return &Response{
		Files: []OutputFile{{
			Path:    strings.Split(output, "/"),
			Content: content,
		}},
	}
}

// OutputPath joins a plugin-provided relative path onto dir, rejecting
// paths that would escape it.
func OutputPath(dir string, parts []string) (string, error) {
	if len(parts) == 0 {
		return "", fmt.Errorf("invalid output path %#v: empty", parts)
	}
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			return "", fmt.Errorf("invalid output path %#v: bad path component %q", parts, part)
		}
		if part[0] == '/' || filepath.IsAbs(part) {
			return "", fmt.Errorf("invalid output path %#v: absolute path component %q", parts, part)
		}
		if strings.ContainsAny(part, `/\`) {
			return "", fmt.Errorf("invalid output path %#v: component %q contains a separator", parts, part)
		}
	}
	return filepath.Join(append([]string{dir}, parts...)...), nil
}
