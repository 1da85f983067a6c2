// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo

// Session types: the closed set of state markers a Channel may be
// parameterised by. Every constructor is a zero-sized tag; none of
// them carry runtime state, and none of them are constructed directly
// by callers — they exist only to appear as Channel's S type parameter.

// End is the terminal session state.
type End struct{}

// Send[T, S] sends a value of type T, then continues as S.
type Send[T, S any] struct{}

// Recv[T, S] receives a value of type T, then continues as S.
type Recv[T, S any] struct{}

// Nest[S] pushes a new loop frame whose body is S.
type Nest[S any] struct{}

// Escape[N] pops N loop frames and continues as the body of the
// popped frame. See peano.go for the bounded Pop0..Pop3 family that
// resolves this for N = 0..3.
type Escape[N any] struct{}

// Choose[S, Q] is a non-terminal node of a branch list: the chooser
// may pick S (index 0 of this node) or defer to the rest of the list, Q.
type Choose[S, Q any] struct{}

// Accept[S, Q] is Choose's dual: the acceptor may be dispatched into S
// (index 0) or into the rest of the list, Q.
type Accept[S, Q any] struct{}

// Finally[S] terminates a Choose/Accept list: every remaining index,
// including out-of-range ones, resolves to S.
type Finally[S any] struct{}

// Goto[A] continues as the body named by the alias A. A is a distinct
// marker type per alias (see DESIGN.md for why Go resolves aliases via
// explicit per-alias unfold functions rather than an automatic
// type-level lookup).
type Goto[A any] struct{}

// GotoDual[A] is Goto[A]'s dual: it continues as the dual of the body
// named by A.
type GotoDual[A any] struct{}
