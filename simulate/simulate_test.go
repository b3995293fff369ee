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

package simulate_test

import (
	"context"
	"errors"
	"testing"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/internal/testutil"
	"go.capgen.dev/capgen/simulate"
)

var (
	transferProgram = capgen.Address{0xEE, 1}
	vaultProgram    = capgen.Address{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	}
)

type transferData struct {
	Lamports uint64
}

func (transferData) TypeTag() capgen.TypeTag {
	return capgen.TypeTag{2, 0, 0, 0, 0, 0, 0, 0}
}

// transferAccountInfos moves lamports from From to To. Fee is passed
// read-only.
type transferAccountInfos struct {
	From *capgen.ResourceHandle
	To   *capgen.ResourceHandle
	Fee  *capgen.ResourceHandle
}

func (transferAccountInfos) Owner() capgen.Address { return transferProgram }

func (b transferAccountInfos) ResourceDescriptors() []capgen.ResourceDescriptor {
	return []capgen.ResourceDescriptor{
		capgen.Writable(b.From.Key, true),
		capgen.Writable(b.To.Key, false),
		capgen.ReadOnly(b.Fee.Key, false),
	}
}

func (b transferAccountInfos) ResourceHandles() []*capgen.ResourceHandle {
	return []*capgen.ResourceHandle{b.From, b.To, b.Fee}
}

func (transferAccountInfos) LinkedPayload(transferData) {}

type withdrawData struct {
	Lamports uint64
	Bump     uint8
}

func (withdrawData) TypeTag() capgen.TypeTag {
	return capgen.TypeTag{0xB7, 0x12, 0x46, 0x9C, 0x94, 0x6D, 0xA1, 0x22}
}

type withdrawAccountInfos struct {
	Vault *capgen.ResourceHandle
	User  *capgen.ResourceHandle
	Fee   *capgen.ResourceHandle
}

func (withdrawAccountInfos) Owner() capgen.Address { return vaultProgram }

func (b withdrawAccountInfos) ResourceDescriptors() []capgen.ResourceDescriptor {
	return []capgen.ResourceDescriptor{
		capgen.Writable(b.Vault.Key, false),
		capgen.Writable(b.User.Key, true),
		capgen.ReadOnly(b.Fee.Key, false),
	}
}

func (b withdrawAccountInfos) ResourceHandles() []*capgen.ResourceHandle {
	return []*capgen.ResourceHandle{b.Vault, b.User, b.Fee}
}

func (withdrawAccountInfos) LinkedPayload(withdrawData) {}

var (
	_ capgen.Bound[transferData] = transferAccountInfos{}
	_ capgen.Bound[withdrawData] = withdrawAccountInfos{}
)

func transferExec(ctx context.Context, inv *simulate.Invocation) error {
	data, err := simulate.DecodePayload[transferData](inv)
	if err != nil {
		return err
	}
	return simulate.Transfer(inv.Handles[0], inv.Handles[1], data.Lamports)
}

// withdrawExec moves lamports out of the user's vault address by calling
// the transfer program with the vault's derived signature.
func withdrawExec(ctx context.Context, inv *simulate.Invocation) error {
	data, err := simulate.DecodePayload[withdrawData](inv)
	if err != nil {
		return err
	}
	inner := capgen.NewCall[transferData](transferAccountInfos{
		From: inv.Handles[0],
		To:   inv.Handles[1],
		Fee:  inv.Handles[2],
	}, transferData{Lamports: data.Lamports})
	return inner.DispatchSigned(ctx, inv.Invoker(), capgen.Seeds{
		[]byte("vault"),
		[]byte("user"),
		{data.Bump},
	})
}

func newRuntime(opts ...simulate.Option) *simulate.Runtime {
	rt := simulate.New(opts...)
	rt.Register(transferProgram, simulate.ProgramFunc(transferExec))
	rt.Register(vaultProgram, simulate.ProgramFunc(withdrawExec))
	return rt
}

func newTransfer() transferAccountInfos {
	return transferAccountInfos{
		From: &capgen.ResourceHandle{Key: capgen.Address{1}, Lamports: 5000, Writable: true, Signer: true},
		To:   &capgen.ResourceHandle{Key: capgen.Address{2}, Lamports: 10, Writable: true},
		Fee:  &capgen.ResourceHandle{Key: capgen.Address{3}, Data: []byte{7}},
	}
}

func expectDispatchErr(t *testing.T, err error, index int, want error) {
	t.Helper()
	testutil.ExpectErrorIs(t, want, err)
	var dispatchErr *capgen.DispatchError
	if !errors.As(err, &dispatchErr) {
		t.Errorf("expected *DispatchError, got %T (%v)", err, err)
		return
	}
	testutil.ExpectEq(t, index, dispatchErr.Index)
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	rt := newRuntime()
	accounts := newTransfer()
	call := capgen.NewCall[transferData](accounts, transferData{Lamports: 1200})
	testutil.AssertNoError(t, call.Dispatch(context.Background(), rt.Invoker(capgen.Address{})))

	testutil.ExpectEq(t, uint64(3800), accounts.From.Lamports)
	testutil.ExpectEq(t, uint64(1210), accounts.To.Lamports)
}

func TestDispatchInsufficientFunds(t *testing.T) {
	t.Parallel()

	accounts := newTransfer()
	call := capgen.NewCall[transferData](accounts, transferData{Lamports: 5001})
	err := call.Dispatch(context.Background(), newRuntime().Invoker(capgen.Address{}))
	testutil.ExpectErrorIs(t, simulate.ErrInsufficientFunds, err)
	testutil.ExpectEq(t, uint64(5000), accounts.From.Lamports)
}

func TestDispatchMissingSigner(t *testing.T) {
	t.Parallel()

	accounts := newTransfer()
	accounts.From.Signer = false
	call := capgen.NewCall[transferData](accounts, transferData{Lamports: 1})
	err := call.Dispatch(context.Background(), newRuntime().Invoker(capgen.Address{}))
	expectDispatchErr(t, err, 0, capgen.ErrMissingSigner)
	testutil.ExpectEq(t, uint64(5000), accounts.From.Lamports)
}

func TestDispatchNotWritable(t *testing.T) {
	t.Parallel()

	accounts := newTransfer()
	accounts.To.Writable = false
	call := capgen.NewCall[transferData](accounts, transferData{Lamports: 1})
	err := call.Dispatch(context.Background(), newRuntime().Invoker(capgen.Address{}))
	expectDispatchErr(t, err, 1, capgen.ErrReadOnly)
}

func TestDispatchReadOnlyViolation(t *testing.T) {
	t.Parallel()

	rt := simulate.New()
	rt.Register(transferProgram, simulate.ProgramFunc(func(ctx context.Context, inv *simulate.Invocation) error {
		if err := simulate.Transfer(inv.Handles[0], inv.Handles[1], 100); err != nil {
			return err
		}
		inv.Handles[2].Data[0] = 8
		return nil
	}))

	accounts := newTransfer()
	call := capgen.NewCall[transferData](accounts, transferData{})
	err := call.Dispatch(context.Background(), rt.Invoker(capgen.Address{}))
	expectDispatchErr(t, err, 2, capgen.ErrReadOnly)

	// Every transition of the failed call is reverted.
	testutil.ExpectEq(t, uint64(5000), accounts.From.Lamports)
	testutil.ExpectEq(t, uint64(10), accounts.To.Lamports)
	testutil.ExpectBytesEq(t, []byte{7}, accounts.Fee.Data)
}

func TestDispatchRollback(t *testing.T) {
	t.Parallel()

	failure := errors.New("program failed")
	rt := simulate.New()
	rt.Register(transferProgram, simulate.ProgramFunc(func(ctx context.Context, inv *simulate.Invocation) error {
		if err := simulate.Transfer(inv.Handles[0], inv.Handles[1], 700); err != nil {
			return err
		}
		inv.Handles[1].Data = []byte("partial")
		return failure
	}))

	accounts := newTransfer()
	call := capgen.NewCall[transferData](accounts, transferData{})
	err := call.Dispatch(context.Background(), rt.Invoker(capgen.Address{}))
	testutil.ExpectErrorIs(t, failure, err)
	testutil.ExpectEq(t, uint64(5000), accounts.From.Lamports)
	testutil.ExpectEq(t, uint64(10), accounts.To.Lamports)
	testutil.ExpectTrue(t, accounts.To.Data == nil)
}

func TestDispatchUnbalanced(t *testing.T) {
	t.Parallel()

	rt := simulate.New()
	rt.Register(transferProgram, simulate.ProgramFunc(func(ctx context.Context, inv *simulate.Invocation) error {
		inv.Handles[1].Lamports += 1
		return nil
	}))

	accounts := newTransfer()
	call := capgen.NewCall[transferData](accounts, transferData{})
	err := call.Dispatch(context.Background(), rt.Invoker(capgen.Address{}))
	expectDispatchErr(t, err, -1, simulate.ErrUnbalanced)
	testutil.ExpectEq(t, uint64(10), accounts.To.Lamports)
}

func TestDispatchUnknownProgram(t *testing.T) {
	t.Parallel()

	call := capgen.NewCall[transferData](newTransfer(), transferData{})
	err := call.Dispatch(context.Background(), simulate.New().Invoker(capgen.Address{}))
	expectDispatchErr(t, err, -1, capgen.ErrUnknownProgram)
}

func TestInvokeAddressMismatch(t *testing.T) {
	t.Parallel()

	accounts := newTransfer()
	envelope, err := capgen.NewCall[transferData](accounts, transferData{}).Encode()
	testutil.AssertNoError(t, err)

	handles := accounts.ResourceHandles()
	handles[1] = &capgen.ResourceHandle{Key: capgen.Address{9}, Writable: true}
	err = newRuntime().Invoker(capgen.Address{}).Invoke(context.Background(), envelope, handles, nil)
	expectDispatchErr(t, err, 1, capgen.ErrAddressMismatch)

	err = newRuntime().Invoker(capgen.Address{}).Invoke(context.Background(), envelope, handles[:2], nil)
	expectDispatchErr(t, err, -1, capgen.ErrHandleCountMismatch)
}

func TestInvokeCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	call := capgen.NewCall[transferData](newTransfer(), transferData{Lamports: 1})
	err := call.Dispatch(ctx, newRuntime().Invoker(capgen.Address{}))
	testutil.ExpectErrorIs(t, context.Canceled, err)
}

func TestNestedDispatchSigned(t *testing.T) {
	t.Parallel()

	vault, bump, err := capgen.FindProgramAddress(
		capgen.Seeds{[]byte("vault"), []byte("user")},
		vaultProgram,
	)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "2z13YEFMXXLxSkj7HyVYPHgWGQXVvMtNK6QmNWg8whKo", vault.String())
	testutil.ExpectEq(t, uint8(255), bump)

	accounts := withdrawAccountInfos{
		Vault: &capgen.ResourceHandle{Key: vault, Lamports: 900, Writable: true},
		User:  &capgen.ResourceHandle{Key: capgen.Address{4}, Writable: true, Signer: true},
		Fee:   &capgen.ResourceHandle{Key: capgen.Address{5}},
	}
	rt := newRuntime()

	call := capgen.NewCall[withdrawData](accounts, withdrawData{Lamports: 400, Bump: bump})
	testutil.AssertNoError(t, call.Dispatch(context.Background(), rt.Invoker(capgen.Address{})))
	testutil.ExpectEq(t, uint64(500), accounts.Vault.Lamports)
	testutil.ExpectEq(t, uint64(400), accounts.User.Lamports)

	// A wrong bump derives a different address, which carries no signature.
	call = capgen.NewCall[withdrawData](accounts, withdrawData{Lamports: 100, Bump: bump - 1})
	err = call.Dispatch(context.Background(), rt.Invoker(capgen.Address{}))
	testutil.AssertError(t, err)
	testutil.ExpectEq(t, uint64(500), accounts.Vault.Lamports)
}

func TestDepthExceeded(t *testing.T) {
	t.Parallel()

	rt := simulate.New(simulate.WithMaxDepth(2))
	var calls int
	var recurse simulate.ProgramFunc
	recurse = func(ctx context.Context, inv *simulate.Invocation) error {
		calls++
		return inv.Invoker().Invoke(ctx, inv.Envelope, inv.Handles, nil)
	}
	rt.Register(transferProgram, recurse)

	accounts := newTransfer()
	call := capgen.NewCall[transferData](accounts, transferData{})
	err := call.Dispatch(context.Background(), rt.Invoker(capgen.Address{}))
	testutil.ExpectErrorIs(t, simulate.ErrDepthExceeded, err)
	testutil.ExpectEq(t, 2, calls)
}

func TestInvocationHelpers(t *testing.T) {
	t.Parallel()

	rt := simulate.New()
	rt.Register(transferProgram, simulate.ProgramFunc(func(ctx context.Context, inv *simulate.Invocation) error {
		tag, ok := inv.Tag()
		testutil.ExpectTrue(t, ok)
		testutil.ExpectEq(t, transferData{}.TypeTag(), tag)
		testutil.ExpectTrue(t, inv.Signed(0))
		testutil.ExpectFalse(t, inv.Signed(1))
		testutil.ExpectFalse(t, inv.Signed(3))
		testutil.ExpectEq(t, transferProgram, inv.Program)
		return nil
	}))
	call := capgen.NewCall[transferData](newTransfer(), transferData{})
	testutil.AssertNoError(t, call.Dispatch(context.Background(), rt.Invoker(capgen.Address{})))
}
