// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo

// Unary natural numbers at the type level, used to index Escape frames.
// Z is zero; Succ[N] is the successor of N.
type Z struct{}

// Succ is the type-level successor of N.
type Succ[N any] struct{}

// Env is a loop-body environment frame: Head is the body of the innermost
// Nest, Tail is the stack of enclosing frames. Nest pushes a frame by
// wrapping the current environment in Env[S, E]; Escape<N> pops N frames.
//
// Pop is bounded rather than expressed as a single recursive relation,
// because Go has no type-level recursion: Pop0..Pop3 give the same
// family of instances the reference macro expansion generates up to a
// fixed depth. See Pop0, Pop1, Pop2, Pop3.
type Env[Head, Tail any] struct{}

// Pop0 resolves Escape[Z]: it re-pushes Head so the popped frame remains
// available for another iteration ("continue" semantics), yielding a
// channel at the frame's own body state.
func Pop0[C, Head, Tail any](ch Channel[C, Env[Head, Tail], Escape[Z]]) Channel[C, Env[Head, Tail], Head] {
	return Channel[C, Env[Head, Tail], Head]{transport: ch.transport, ctx: ch.ctx}
}

// Pop1 resolves Escape[Succ[Z]]: pop one frame, then apply Pop0 to what
// remains, landing on the second frame from the top.
func Pop1[C, Head, Head2, Tail2 any](ch Channel[C, Env[Head, Env[Head2, Tail2]], Escape[Succ[Z]]]) Channel[C, Env[Head2, Tail2], Head2] {
	return Channel[C, Env[Head2, Tail2], Head2]{transport: ch.transport, ctx: ch.ctx}
}

// Pop2 resolves Escape[Succ[Succ[Z]]], landing on the third frame from
// the top.
func Pop2[C, Head, Head2, Head3, Tail3 any](ch Channel[C, Env[Head, Env[Head2, Env[Head3, Tail3]]], Succ2]) Channel[C, Env[Head3, Tail3], Head3] {
	return Channel[C, Env[Head3, Tail3], Head3]{transport: ch.transport, ctx: ch.ctx}
}

// Pop3 resolves Escape[Succ[Succ[Succ[Z]]]], landing on the fourth frame
// from the top.
func Pop3[C, Head, Head2, Head3, Head4, Tail4 any](ch Channel[C, Env[Head, Env[Head2, Env[Head3, Env[Head4, Tail4]]]], Succ3]) Channel[C, Env[Head4, Tail4], Head4] {
	return Channel[C, Env[Head4, Tail4], Head4]{transport: ch.transport, ctx: ch.ctx}
}

// Succ2 and Succ3 name the two and three-deep Escape indices so call
// sites read Escape depth directly instead of nesting Succ by hand.
type Succ2 = Escape[Succ[Succ[Z]]]
type Succ3 = Escape[Succ[Succ[Succ[Z]]]]
