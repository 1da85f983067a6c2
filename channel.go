// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo

// Channel is the typed handle to one endpoint of a session. C is the
// caller's context type, E is the compile-time loop-environment stack
// (see peano.go), and S is the current session type. Only transport
// and ctx exist at runtime; E and S are phantom and exist purely to
// constrain which free function below can be called next.
//
// Every operation on a Channel consumes it by value and returns a new
// Channel parameterised by the successor state, the same way each
// Cont combinator in monad.go consumes one continuation and produces
// another: there is no method set to speak of, because Go forbids a
// method receiver that names a partial instantiation of a generic
// type's parameters (e.g. a receiver fixed to S = Send[T, S']) — so,
// exactly as nemo's Bind/Map/Then are free functions pattern-matching
// on Cont's type arguments, every Channel operation here is a free
// function pattern-matching on Channel's S argument.
type Channel[C, E, S any] struct {
	transport Transport
	ctx       C
}

// Ctx returns the channel's user-supplied context, mutably borrowed
// for the duration of the handler's step the way §5 of the design
// requires.
func (ch Channel[C, E, S]) Ctx() C { return ch.ctx }

// Rebind reinterprets a channel at a Goto[A]/GotoDual[A] state as a
// channel at the unfolded body state Target, with no wire traffic.
// This is the Goto/GotoDual transition itself; alias-specific EnterX
// functions (see the atm package for a worked example) call Rebind
// once per alias with concrete type arguments standing in for the
// type-level Alias(A) lookup Go cannot express directly.
func Rebind[C, E, S, Target any](ch Channel[C, E, S]) Channel[C, E, Target] {
	return Channel[C, E, Target]{transport: ch.transport, ctx: ch.ctx}
}

// NewChannel builds the initial Channel for one endpoint of a fresh
// session, at the top-level environment and the protocol's starting
// state.
func NewChannel[C, S any](transport Transport, ctx C) Channel[C, struct{}, S] {
	return Channel[C, struct{}, S]{transport: transport, ctx: ctx}
}

// Send transmits v and advances to S.
//
// A non-nil error means the transport could not guarantee the send
// was atomic; the channel is considered poisoned from that point and
// the caller should treat it the way step treats a fatal error (see
// defer.go), not retry it.
func Send[C, E, T, S any](ch Channel[C, E, Send[T, S]], v T) (Channel[C, E, S], error) {
	if err := ch.transport.SendValue(v); err != nil {
		return Channel[C, E, S]{}, err
	}
	return Channel[C, E, S]{transport: ch.transport, ctx: ch.ctx}, nil
}

// RecvOutcome is the payload of a successful Recv: either a received
// value with the advanced channel (Ready), or notice that the
// transport had nothing queued yet (not Ready, retry later).
type RecvOutcome[C, E, T, S any] struct {
	Ready bool
	Value T
	Next  Channel[C, E, S]
}

// Recv attempts to receive a value of type T.
//
// The Either's Left carries a fatal peer-violation error; its Right
// carries a RecvOutcome, whose Ready flag distinguishes a delivered
// value from a transient not-ready. The second return is the original
// Recv-state channel, valid only when the caller should retry —
// exactly the "return the channel unchanged so the caller may defer"
// policy the algebra requires, expressed with the same Either this
// package's ambient error effect already uses (see error.go) instead
// of a bespoke result type.
func Recv[C, E, T, S any](ch Channel[C, E, Recv[T, S]]) (Either[error, RecvOutcome[C, E, T, S]], Channel[C, E, Recv[T, S]]) {
	raw, ok, err := ch.transport.RecvValue()
	if err != nil {
		return Left[error, RecvOutcome[C, E, T, S]](err), ch
	}
	if !ok {
		return Right[error, RecvOutcome[C, E, T, S]](RecvOutcome[C, E, T, S]{Ready: false}), ch
	}
	return Right[error, RecvOutcome[C, E, T, S]](RecvOutcome[C, E, T, S]{
		Ready: true,
		Value: raw.(T),
		Next:  Channel[C, E, S]{transport: ch.transport, ctx: ch.ctx},
	}), Channel[C, E, Recv[T, S]]{}
}

// Enter pushes S onto the environment, the Nest operation.
func Enter[C, E, S any](ch Channel[C, E, Nest[S]]) Channel[C, Env[S, E], S] {
	return Channel[C, Env[S, E], S]{transport: ch.transport, ctx: ch.ctx}
}

// ChooseBranch sends the discriminant proved by w and advances to
// Target.
func ChooseBranch[C, E, S, Q, Target any](ch Channel[C, E, Choose[S, Q]], w Choice[Choose[S, Q], Target]) (Channel[C, E, Target], error) {
	if err := ch.transport.SendDiscriminant(w.index); err != nil {
		return Channel[C, E, Target]{}, err
	}
	return Channel[C, E, Target]{transport: ch.transport, ctx: ch.ctx}, nil
}

// Accept receives a discriminant and dispatches through table,
// producing the Defer the matched branch's handler suspends into.
//
// A nil *Defer with a nil error and the returned channel unchanged
// means the discriminant had not arrived yet; the caller should defer
// and call Accept again later, mirroring Recv's not-ready policy.
func Accept[C, E, S, Q any](ch Channel[C, E, Accept[S, Q]], table AcceptTable[C]) (*Defer[C], Channel[C, E, Accept[S, Q]], error) {
	idx, ok, err := ch.transport.RecvDiscriminant()
	if err != nil {
		return nil, ch, err
	}
	if !ok {
		return nil, ch, nil
	}
	return table.Dispatch(idx, ch.transport, ch.ctx), Channel[C, E, Accept[S, Q]]{}, nil
}

// Close releases the transport and returns a Defer that fails loudly
// if stepped again, the terminal point of every session.
func Close[C, E any](ch Channel[C, E, End]) *Defer[C] {
	if err := ch.transport.Close(); err != nil {
		panic("nemo: transport close failed: " + err.Error())
	}
	return closedDefer[C]()
}
