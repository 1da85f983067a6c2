// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo

// SessionHandler is the per-(context, environment, state) definition
// of what to do when a session suspends in state S. It is the analogue
// of this package's effect Handler (see effect.go), but dispatches on
// a session's static state instead of a dynamic effect operation, so
// it is named distinctly to avoid colliding with that type.
type SessionHandler[C, E, S any] interface {
	With(Channel[C, E, S]) *Defer[C]
}

// SessionHandlerFunc adapts a plain function to SessionHandler, the
// same adapter shape effect.go's HandleFunc gives Handler.
type SessionHandlerFunc[C, E, S any] func(Channel[C, E, S]) *Defer[C]

// With calls f.
func (f SessionHandlerFunc[C, E, S]) With(ch Channel[C, E, S]) *Defer[C] {
	return f(ch)
}

// Defer is a suspended session: a single concrete type, independent of
// whatever state is currently in flight, so a driver loop can hold one
// reference and repeatedly call Step. The state is smuggled inside
// cont's closure, the same erase-to-a-single-type trick Suspension (see
// step.go) uses to let an external driver resume a computation without
// naming its internal type.
type Defer[C any] struct {
	transport Transport
	ctx       C
	cont      func(Transport, C) *Defer[C]
	open      bool
}

// SuspendSession packages ch and h into a Defer: stepping it runs h
// against a freshly reconstructed Channel[C, E, S]. Named distinctly
// from this package's own Suspend (see cont.go), which builds a Cont
// from a raw CPS function and serves an unrelated purpose.
func SuspendSession[C, E, S any](ch Channel[C, E, S], h SessionHandler[C, E, S]) *Defer[C] {
	return &Defer[C]{
		transport: ch.transport,
		ctx:       ch.ctx,
		cont: func(t Transport, c C) *Defer[C] {
			return h.With(Channel[C, E, S]{transport: t, ctx: c})
		},
		open: true,
	}
}

// closedDefer is the sentinel a closed session settles into: any
// attempt to step it again is a programmer error, so it panics loudly
// rather than silently doing nothing.
func closedDefer[C any]() *Defer[C] {
	return &Defer[C]{
		cont: func(Transport, C) *Defer[C] {
			panic("nemo: step invoked on a closed session")
		},
	}
}

// Open reports whether further steps are legal.
func (d *Defer[C]) Open() bool { return d.open }

// Step runs the current continuation once, advancing the session by
// exactly one suspension point, and reports whether the session
// remains open. Calling Step after it has returned false panics.
func (d *Defer[C]) Step() bool {
	if !d.open {
		panic("nemo: step invoked on a closed session")
	}
	next := d.cont(d.transport, d.ctx)
	d.transport = next.transport
	d.ctx = next.ctx
	d.cont = next.cont
	d.open = next.open
	return d.open
}
