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
	"context"
	"fmt"

	"go.uber.org/zap"

	"go.capgen.dev/capgen/encoding/borsh"
)

// A Codec encodes payload and record fields. The default codec is borsh.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type CallOption interface {
	apply(*callOptions)
}

type callOption func(*callOptions)

func (f callOption) apply(opts *callOptions) { f(opts) }

type callOptions struct {
	codec Codec
}

func newCallOptions(opts []CallOption) *callOptions {
	callOpts := &callOptions{codec: borsh.Codec{}}
	for _, opt := range opts {
		opt.apply(callOpts)
	}
	return callOpts
}

func WithCodec(codec Codec) CallOption {
	return callOption(func(opts *callOptions) {
		opts.codec = codec
	})
}

// A CallEnvelope is a fully assembled call: the program that handles it,
// the tagged payload bytes and the ordered resource descriptors.
type CallEnvelope struct {
	Program     Address
	Data        []byte
	Descriptors []ResourceDescriptor
}

// An Invoker is the external dispatch mechanism. Invoke must apply every
// resource transition of the call or none of them. Each entry of signers
// is a seed set whose derived address (under the invoking program) is
// granted signing authority for the duration of the call.
type Invoker interface {
	Invoke(
		ctx context.Context,
		envelope CallEnvelope,
		handles []*ResourceHandle,
		signers []Seeds,
	) error
}

// NewInstruction assembles an envelope from plain addresses, for callers
// that construct calls without holding live handles.
func NewInstruction[P Payload](
	accounts Accounts[P],
	payload P,
	opts ...CallOption,
) (CallEnvelope, error) {
	data, err := encodeTagged(newCallOptions(opts).codec, payload)
	if err != nil {
		return CallEnvelope{}, err
	}
	return CallEnvelope{
		Program:     accounts.Owner(),
		Data:        data,
		Descriptors: accounts.ResourceDescriptors(),
	}, nil
}

// A Call pairs a bound aggregate with the payload it is linked to.
type Call[P Payload] struct {
	bound   Bound[P]
	payload P
	codec   Codec
}

func NewCall[P Payload](bound Bound[P], payload P, opts ...CallOption) *Call[P] {
	return &Call[P]{
		bound:   bound,
		payload: payload,
		codec:   newCallOptions(opts).codec,
	}
}

func (c *Call[P]) Payload() P {
	return c.payload
}

func (c *Call[P]) Encode() (CallEnvelope, error) {
	data, err := encodeTagged(c.codec, c.payload)
	if err != nil {
		return CallEnvelope{}, err
	}
	return CallEnvelope{
		Program:     c.bound.Owner(),
		Data:        data,
		Descriptors: c.bound.ResourceDescriptors(),
	}, nil
}

func (c *Call[P]) Dispatch(ctx context.Context, invoker Invoker) error {
	return c.dispatch(ctx, invoker, nil)
}

// DispatchSigned is like Dispatch, additionally asserting signing authority
// for the addresses derived from each seed set.
func (c *Call[P]) DispatchSigned(ctx context.Context, invoker Invoker, seeds ...Seeds) error {
	return c.dispatch(ctx, invoker, seeds)
}

func (c *Call[P]) dispatch(ctx context.Context, invoker Invoker, seeds []Seeds) error {
	envelope, err := c.Encode()
	if err != nil {
		return err
	}
	handles := c.bound.ResourceHandles()
	if len(handles) != len(envelope.Descriptors) {
		return &DispatchError{
			Program: envelope.Program,
			Index:   -1,
			Err: fmt.Errorf(
				"%w: %d descriptors, %d handles",
				ErrHandleCountMismatch, len(envelope.Descriptors), len(handles),
			),
		}
	}

	Logger().Debug("dispatch",
		zap.Stringer("program", envelope.Program),
		zap.Stringer("tag", c.payload.TypeTag()),
		zap.Int("resources", len(handles)),
		zap.Int("signers", len(seeds)),
	)
	return invoker.Invoke(ctx, envelope, handles, seeds)
}

func encodeTagged(codec Codec, v Tagged) ([]byte, error) {
	tag := v.TypeTag()
	body, err := codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("capgen: encode %T: %w", v, err)
	}
	out := make([]byte, 0, TypeTagSize+len(body))
	out = append(out, tag[:]...)
	return append(out, body...), nil
}
