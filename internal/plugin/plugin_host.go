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

package plugin

import (
	"context"
	"errors"
	"fmt"

	wasm "github.com/tetratelabs/wazero"
	"go.uber.org/zap"
)

const memoryLimitPages = 16384

// A Host runs one compiled plugin. Every Generate call instantiates a
// fresh module, so plugin state never leaks between requests.
type Host struct {
	runtime wasm.Runtime
	module  wasm.CompiledModule
}

func Load(ctx context.Context, pluginBin []byte) (*Host, error) {
	runtimeConfig := wasm.NewRuntimeConfigInterpreter()
	runtimeConfig = runtimeConfig.WithMemoryLimitPages(memoryLimitPages)
	runtime := wasm.NewRuntimeWithConfig(ctx, runtimeConfig)

	module, err := runtime.CompileModule(ctx, pluginBin)
	if err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("plugin: compile: %w", err)
	}
	for _, name := range []string{ExportAllocate, ExportGenerate} {
		if _, ok := module.ExportedFunctions()[name]; !ok {
			runtime.Close(ctx)
			return nil, fmt.Errorf("plugin: missing export %q", name)
		}
	}
	return &Host{runtime: runtime, module: module}, nil
}

func (h *Host) Close(ctx context.Context) error {
	return h.runtime.Close(ctx)
}

func (h *Host) Generate(ctx context.Context, req *Request) (*Response, error) {
	requestBuf, err := EncodeRequest(req)
	if err != nil {
		return nil, err
	}

	moduleConfig := wasm.NewModuleConfig().WithName("")
	plugin, err := h.runtime.InstantiateModule(ctx, h.module, moduleConfig)
	if err != nil {
		return nil, fmt.Errorf("plugin: instantiate: %w", err)
	}
	defer plugin.Close(ctx)
	mem := plugin.Memory()
	if mem == nil {
		return nil, errors.New("plugin: module exports no memory")
	}

	wasmAlloc := plugin.ExportedFunction(ExportAllocate)
	wasmGenerate := plugin.ExportedFunction(ExportGenerate)

	results, err := wasmAlloc.Call(ctx, uint64(len(requestBuf)))
	if err != nil {
		return nil, err
	}
	requestPtr := uint32(results[0])
	if !mem.Write(requestPtr, requestBuf) {
		return nil, errors.New("plugin: failed to write request")
	}

	results, err = wasmAlloc.Call(ctx, 4)
	if err != nil {
		return nil, err
	}
	responsePtrPtr := uint32(results[0])

	results, err = wasmGenerate.Call(ctx, uint64(requestPtr), uint64(responsePtrPtr))
	if err != nil {
		return nil, err
	}
	rc := uint8(results[0])

	responsePtr, ok := mem.ReadUint32Le(responsePtrPtr)
	if !ok {
		return nil, errors.New("plugin: failed to read response pointer")
	}
	responseLen, ok := mem.ReadUint32Le(responsePtr)
	if !ok {
		return nil, errors.New("plugin: failed to read response length")
	}
	responseBuf, ok := mem.Read(responsePtr, responseLen)
	if !ok {
		return nil, errors.New("plugin: failed to read response")
	}
	resp, err := DecodeResponse(responseBuf)
	if err != nil {
		return nil, err
	}

	Logger().Debug("plugin generate",
		zap.Uint8("rc", rc),
		zap.Int("request_bytes", len(requestBuf)),
		zap.Uint32("response_bytes", responseLen),
		zap.Int("files", len(resp.Files)),
	)
	if rc != 0 {
		return resp, fmt.Errorf("plugin: %s", resp.Error)
	}
	if len(resp.Files) == 0 {
		return resp, errors.New("plugin: no output files generated")
	}
	return resp, nil
}
