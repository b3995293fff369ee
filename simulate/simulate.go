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

// Package simulate is an in-process call dispatcher. It enforces the access
// rights declared by resource descriptors and applies every resource
// transition of a call or none of them.
package simulate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"go.capgen.dev/capgen"
)

var (
	ErrDepthExceeded     = errors.New("simulate: call depth exceeded")
	ErrUnbalanced        = errors.New("simulate: lamports not conserved")
	ErrInsufficientFunds = errors.New("simulate: insufficient lamports")
)

const DefaultMaxDepth = 4

type Program interface {
	Execute(ctx context.Context, inv *Invocation) error
}

type ProgramFunc func(ctx context.Context, inv *Invocation) error

func (f ProgramFunc) Execute(ctx context.Context, inv *Invocation) error {
	return f(ctx, inv)
}

type Option interface {
	apply(*Runtime)
}

type option func(*Runtime)

func (f option) apply(rt *Runtime) { f(rt) }

func WithMaxDepth(depth int) Option {
	return option(func(rt *Runtime) {
		rt.maxDepth = depth
	})
}

// A Runtime holds registered programs. Top-level invocations are
// serialized, so no two executing calls share a resource handle.
type Runtime struct {
	mu       sync.Mutex
	programs map[capgen.Address]Program
	maxDepth int
}

func New(opts ...Option) *Runtime {
	rt := &Runtime{
		programs: make(map[capgen.Address]Program),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt.apply(rt)
	}
	return rt
}

func (rt *Runtime) Register(id capgen.Address, program Program) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.programs[id] = program
}

// Invoker returns an invoker dispatching on behalf of caller. Seeds passed
// to Invoke derive signing addresses under caller.
func (rt *Runtime) Invoker(caller capgen.Address) capgen.Invoker {
	return &invoker{rt: rt, caller: caller}
}

type invoker struct {
	rt     *Runtime
	caller capgen.Address
	depth  int
}

func (inv *invoker) Invoke(
	ctx context.Context,
	envelope capgen.CallEnvelope,
	handles []*capgen.ResourceHandle,
	signers []capgen.Seeds,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inv.depth == 0 {
		inv.rt.mu.Lock()
		defer inv.rt.mu.Unlock()
	}
	return inv.rt.invoke(ctx, inv, envelope, handles, signers)
}

func dispatchErr(program capgen.Address, index int, addr capgen.Address, err error) error {
	return &capgen.DispatchError{
		Program: program,
		Index:   index,
		Address: addr,
		Err:     err,
	}
}

func (rt *Runtime) invoke(
	ctx context.Context,
	caller *invoker,
	envelope capgen.CallEnvelope,
	handles []*capgen.ResourceHandle,
	signers []capgen.Seeds,
) error {
	programID := envelope.Program
	if caller.depth >= rt.maxDepth {
		return dispatchErr(programID, -1, capgen.Address{}, ErrDepthExceeded)
	}
	program, ok := rt.programs[programID]
	if !ok {
		return dispatchErr(programID, -1, capgen.Address{}, capgen.ErrUnknownProgram)
	}
	if len(handles) != len(envelope.Descriptors) {
		return dispatchErr(programID, -1, capgen.Address{}, fmt.Errorf(
			"%w: %d descriptors, %d handles",
			capgen.ErrHandleCountMismatch, len(envelope.Descriptors), len(handles),
		))
	}

	derived := make(map[capgen.Address]bool, len(signers))
	for _, seeds := range signers {
		addr, err := capgen.CreateProgramAddress(seeds, caller.caller)
		if err != nil {
			return dispatchErr(programID, -1, capgen.Address{}, err)
		}
		derived[addr] = true
	}

	for ii, desc := range envelope.Descriptors {
		handle := handles[ii]
		switch {
		case handle == nil || handle.Key != desc.Address:
			return dispatchErr(programID, ii, desc.Address, capgen.ErrAddressMismatch)
		case desc.Writable && !handle.Writable:
			return dispatchErr(programID, ii, desc.Address, capgen.ErrReadOnly)
		case desc.Signer && !handle.Signer && !derived[desc.Address]:
			return dispatchErr(programID, ii, desc.Address, capgen.ErrMissingSigner)
		}
	}

	snap := takeSnapshot(handles)
	call := &Invocation{
		Program:  programID,
		Envelope: envelope,
		Handles:  handles,
		rt:       rt,
		depth:    caller.depth,
		derived:  derived,
	}

	log := Logger().With(
		zap.Stringer("program", programID),
		zap.Int("depth", caller.depth),
	)
	log.Debug("invoke", zap.Int("resources", len(handles)))

	err := program.Execute(ctx, call)
	if err == nil {
		err = snap.verify(envelope.Descriptors, handles, programID)
	}
	if err != nil {
		snap.restore()
		log.Debug("invoke failed, state restored", zap.Error(err))
		return err
	}
	return nil
}

type handleState struct {
	handle   *capgen.ResourceHandle
	owner    capgen.Address
	lamports uint64
	data     []byte
}

type snapshot struct {
	states []handleState
	index  map[*capgen.ResourceHandle]int
}

func takeSnapshot(handles []*capgen.ResourceHandle) *snapshot {
	snap := &snapshot{index: make(map[*capgen.ResourceHandle]int, len(handles))}
	for _, handle := range handles {
		if _, seen := snap.index[handle]; seen {
			continue
		}
		snap.index[handle] = len(snap.states)
		snap.states = append(snap.states, handleState{
			handle:   handle,
			owner:    handle.Owner,
			lamports: handle.Lamports,
			data:     bytes.Clone(handle.Data),
		})
	}
	return snap
}

func (snap *snapshot) restore() {
	for _, state := range snap.states {
		state.handle.Owner = state.owner
		state.handle.Lamports = state.lamports
		state.handle.Data = state.data
	}
}

// verify rejects modifications of resources not granted write access and
// any change of the total lamport balance.
func (snap *snapshot) verify(
	descriptors []capgen.ResourceDescriptor,
	handles []*capgen.ResourceHandle,
	program capgen.Address,
) error {
	writable := make(map[*capgen.ResourceHandle]bool, len(handles))
	for ii, handle := range handles {
		if descriptors[ii].Writable {
			writable[handle] = true
		}
	}

	var before, after uint64
	for _, state := range snap.states {
		handle := state.handle
		before += state.lamports
		after += handle.Lamports
		if writable[handle] {
			continue
		}
		changed := handle.Lamports != state.lamports ||
			handle.Owner != state.owner ||
			!bytes.Equal(handle.Data, state.data)
		if changed {
			for ii, h := range handles {
				if h == handle {
					return dispatchErr(program, ii, handle.Key, capgen.ErrReadOnly)
				}
			}
		}
	}
	if before != after {
		return dispatchErr(program, -1, capgen.Address{}, fmt.Errorf(
			"%w: %d before, %d after", ErrUnbalanced, before, after,
		))
	}
	return nil
}
