// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo

// NotSame is a zero-sized witness that A and B are distinct types. It
// plays the role the original crate's negative trait bound
// `where (S, P): NotSame` plays on its Chooser impl
// (original_source/src/session_types/choose.rs): Go has no negative
// reasoning and no general compile-time type-equality check, so instead
// of deriving disequality automatically, every pair of constructors
// that can legitimately disagree gets an explicit NotSame constructor
// below. There is no constructor for NotSame[X, X] for any X — that
// omission, not a runtime check, is what makes constructing a NotSame
// for identical types impossible without lying about it.
//
// This is necessarily a closed, finite relation: it covers every pair
// of the ten session constructors, each constructor recursed on its own
// distinct-parameter case, Peano index disequality, and the ground
// (leaf) types this repository's own protocols send or accept as
// payloads or alias markers. A new protocol introducing a ground type
// not listed here must add its own NotSame constructors the same way
// atm.go adds NotSame constructors for its own alias markers
// (Deposit/Withdraw/GetBalance) — the same boilerplate-per-protocol
// shape as atm.go's own EnterX/EnterXDual alias unfolds.
type NotSame[A, B any] struct{}

// FlipNotSame witnesses that if A and B are not the same, neither are
// B and A.
func FlipNotSame[A, B any](NotSame[A, B]) NotSame[B, A] {
	return NotSame[B, A]{}
}

// Cross-constructor-kind disequality: any two of the ten session
// constructors are trivially distinct from each other, regardless of
// their parameters, because a generic struct instantiated from one
// named type is never identical to one instantiated from another.
// Every unordered pair among {End, Send, Recv, Nest, Escape, Choose,
// Accept, Finally, Goto, GotoDual} appears here exactly once; the
// reverse direction is available via FlipNotSame.

func NotSameEndSend[T, S any]() NotSame[End, Send[T, S]]         { return NotSame[End, Send[T, S]]{} }
func NotSameEndRecv[T, S any]() NotSame[End, Recv[T, S]]         { return NotSame[End, Recv[T, S]]{} }
func NotSameEndNest[S any]() NotSame[End, Nest[S]]               { return NotSame[End, Nest[S]]{} }
func NotSameEndEscape[N any]() NotSame[End, Escape[N]]           { return NotSame[End, Escape[N]]{} }
func NotSameEndChoose[S, Q any]() NotSame[End, Choose[S, Q]]     { return NotSame[End, Choose[S, Q]]{} }
func NotSameEndAccept[S, Q any]() NotSame[End, Accept[S, Q]]     { return NotSame[End, Accept[S, Q]]{} }
func NotSameEndFinally[S any]() NotSame[End, Finally[S]]         { return NotSame[End, Finally[S]]{} }
func NotSameEndGoto[A any]() NotSame[End, Goto[A]]               { return NotSame[End, Goto[A]]{} }
func NotSameEndGotoDual[A any]() NotSame[End, GotoDual[A]]       { return NotSame[End, GotoDual[A]]{} }

func NotSameSendRecv[T1, S1, T2, S2 any]() NotSame[Send[T1, S1], Recv[T2, S2]] {
	return NotSame[Send[T1, S1], Recv[T2, S2]]{}
}
func NotSameSendNest[T1, S1, S2 any]() NotSame[Send[T1, S1], Nest[S2]] {
	return NotSame[Send[T1, S1], Nest[S2]]{}
}
func NotSameSendEscape[T1, S1, N any]() NotSame[Send[T1, S1], Escape[N]] {
	return NotSame[Send[T1, S1], Escape[N]]{}
}
func NotSameSendChoose[T1, S1, S2, Q2 any]() NotSame[Send[T1, S1], Choose[S2, Q2]] {
	return NotSame[Send[T1, S1], Choose[S2, Q2]]{}
}
func NotSameSendAccept[T1, S1, S2, Q2 any]() NotSame[Send[T1, S1], Accept[S2, Q2]] {
	return NotSame[Send[T1, S1], Accept[S2, Q2]]{}
}
func NotSameSendFinally[T1, S1, S2 any]() NotSame[Send[T1, S1], Finally[S2]] {
	return NotSame[Send[T1, S1], Finally[S2]]{}
}
func NotSameSendGoto[T1, S1, A any]() NotSame[Send[T1, S1], Goto[A]] {
	return NotSame[Send[T1, S1], Goto[A]]{}
}
func NotSameSendGotoDual[T1, S1, A any]() NotSame[Send[T1, S1], GotoDual[A]] {
	return NotSame[Send[T1, S1], GotoDual[A]]{}
}

func NotSameRecvNest[T1, S1, S2 any]() NotSame[Recv[T1, S1], Nest[S2]] {
	return NotSame[Recv[T1, S1], Nest[S2]]{}
}
func NotSameRecvEscape[T1, S1, N any]() NotSame[Recv[T1, S1], Escape[N]] {
	return NotSame[Recv[T1, S1], Escape[N]]{}
}
func NotSameRecvChoose[T1, S1, S2, Q2 any]() NotSame[Recv[T1, S1], Choose[S2, Q2]] {
	return NotSame[Recv[T1, S1], Choose[S2, Q2]]{}
}
func NotSameRecvAccept[T1, S1, S2, Q2 any]() NotSame[Recv[T1, S1], Accept[S2, Q2]] {
	return NotSame[Recv[T1, S1], Accept[S2, Q2]]{}
}
func NotSameRecvFinally[T1, S1, S2 any]() NotSame[Recv[T1, S1], Finally[S2]] {
	return NotSame[Recv[T1, S1], Finally[S2]]{}
}
func NotSameRecvGoto[T1, S1, A any]() NotSame[Recv[T1, S1], Goto[A]] {
	return NotSame[Recv[T1, S1], Goto[A]]{}
}
func NotSameRecvGotoDual[T1, S1, A any]() NotSame[Recv[T1, S1], GotoDual[A]] {
	return NotSame[Recv[T1, S1], GotoDual[A]]{}
}

func NotSameNestEscape[S1, N any]() NotSame[Nest[S1], Escape[N]] {
	return NotSame[Nest[S1], Escape[N]]{}
}
func NotSameNestChoose[S1, S2, Q2 any]() NotSame[Nest[S1], Choose[S2, Q2]] {
	return NotSame[Nest[S1], Choose[S2, Q2]]{}
}
func NotSameNestAccept[S1, S2, Q2 any]() NotSame[Nest[S1], Accept[S2, Q2]] {
	return NotSame[Nest[S1], Accept[S2, Q2]]{}
}
func NotSameNestFinally[S1, S2 any]() NotSame[Nest[S1], Finally[S2]] {
	return NotSame[Nest[S1], Finally[S2]]{}
}
func NotSameNestGoto[S1, A any]() NotSame[Nest[S1], Goto[A]] { return NotSame[Nest[S1], Goto[A]]{} }
func NotSameNestGotoDual[S1, A any]() NotSame[Nest[S1], GotoDual[A]] {
	return NotSame[Nest[S1], GotoDual[A]]{}
}

func NotSameEscapeChoose[N, S2, Q2 any]() NotSame[Escape[N], Choose[S2, Q2]] {
	return NotSame[Escape[N], Choose[S2, Q2]]{}
}
func NotSameEscapeAccept[N, S2, Q2 any]() NotSame[Escape[N], Accept[S2, Q2]] {
	return NotSame[Escape[N], Accept[S2, Q2]]{}
}
func NotSameEscapeFinally[N, S2 any]() NotSame[Escape[N], Finally[S2]] {
	return NotSame[Escape[N], Finally[S2]]{}
}
func NotSameEscapeGoto[N, A any]() NotSame[Escape[N], Goto[A]] {
	return NotSame[Escape[N], Goto[A]]{}
}
func NotSameEscapeGotoDual[N, A any]() NotSame[Escape[N], GotoDual[A]] {
	return NotSame[Escape[N], GotoDual[A]]{}
}

func NotSameChooseAccept[S1, Q1, S2, Q2 any]() NotSame[Choose[S1, Q1], Accept[S2, Q2]] {
	return NotSame[Choose[S1, Q1], Accept[S2, Q2]]{}
}
func NotSameChooseFinally[S1, Q1, S2 any]() NotSame[Choose[S1, Q1], Finally[S2]] {
	return NotSame[Choose[S1, Q1], Finally[S2]]{}
}
func NotSameChooseGoto[S1, Q1, A any]() NotSame[Choose[S1, Q1], Goto[A]] {
	return NotSame[Choose[S1, Q1], Goto[A]]{}
}
func NotSameChooseGotoDual[S1, Q1, A any]() NotSame[Choose[S1, Q1], GotoDual[A]] {
	return NotSame[Choose[S1, Q1], GotoDual[A]]{}
}

func NotSameAcceptFinally[S1, Q1, S2 any]() NotSame[Accept[S1, Q1], Finally[S2]] {
	return NotSame[Accept[S1, Q1], Finally[S2]]{}
}
func NotSameAcceptGoto[S1, Q1, A any]() NotSame[Accept[S1, Q1], Goto[A]] {
	return NotSame[Accept[S1, Q1], Goto[A]]{}
}
func NotSameAcceptGotoDual[S1, Q1, A any]() NotSame[Accept[S1, Q1], GotoDual[A]] {
	return NotSame[Accept[S1, Q1], GotoDual[A]]{}
}

func NotSameFinallyGoto[S1, A any]() NotSame[Finally[S1], Goto[A]] {
	return NotSame[Finally[S1], Goto[A]]{}
}
func NotSameFinallyGotoDual[S1, A any]() NotSame[Finally[S1], GotoDual[A]] {
	return NotSame[Finally[S1], GotoDual[A]]{}
}

func NotSameGotoGotoDual[A1, A2 any]() NotSame[Goto[A1], GotoDual[A2]] {
	return NotSame[Goto[A1], GotoDual[A2]]{}
}

// Same-constructor, distinct-parameter disequality: two instances of
// the same session constructor are distinct if any one of their type
// parameters is. Each helper recurses on exactly one parameter
// position; callers supply whichever position actually differs.

func NotSameSendT[T1, T2, S1, S2 any](NotSame[T1, T2]) NotSame[Send[T1, S1], Send[T2, S2]] {
	return NotSame[Send[T1, S1], Send[T2, S2]]{}
}
func NotSameSendS[T1, T2, S1, S2 any](NotSame[S1, S2]) NotSame[Send[T1, S1], Send[T2, S2]] {
	return NotSame[Send[T1, S1], Send[T2, S2]]{}
}
func NotSameRecvT[T1, T2, S1, S2 any](NotSame[T1, T2]) NotSame[Recv[T1, S1], Recv[T2, S2]] {
	return NotSame[Recv[T1, S1], Recv[T2, S2]]{}
}
func NotSameRecvS[T1, T2, S1, S2 any](NotSame[S1, S2]) NotSame[Recv[T1, S1], Recv[T2, S2]] {
	return NotSame[Recv[T1, S1], Recv[T2, S2]]{}
}
func NotSameNestS[S1, S2 any](NotSame[S1, S2]) NotSame[Nest[S1], Nest[S2]] {
	return NotSame[Nest[S1], Nest[S2]]{}
}
func NotSameEscapeN[N1, N2 any](NotSame[N1, N2]) NotSame[Escape[N1], Escape[N2]] {
	return NotSame[Escape[N1], Escape[N2]]{}
}
func NotSameChooseS[S1, Q1, S2, Q2 any](NotSame[S1, S2]) NotSame[Choose[S1, Q1], Choose[S2, Q2]] {
	return NotSame[Choose[S1, Q1], Choose[S2, Q2]]{}
}
func NotSameChooseQ[S1, Q1, S2, Q2 any](NotSame[Q1, Q2]) NotSame[Choose[S1, Q1], Choose[S2, Q2]] {
	return NotSame[Choose[S1, Q1], Choose[S2, Q2]]{}
}
func NotSameAcceptS[S1, Q1, S2, Q2 any](NotSame[S1, S2]) NotSame[Accept[S1, Q1], Accept[S2, Q2]] {
	return NotSame[Accept[S1, Q1], Accept[S2, Q2]]{}
}
func NotSameAcceptQ[S1, Q1, S2, Q2 any](NotSame[Q1, Q2]) NotSame[Accept[S1, Q1], Accept[S2, Q2]] {
	return NotSame[Accept[S1, Q1], Accept[S2, Q2]]{}
}
func NotSameFinallyS[S1, S2 any](NotSame[S1, S2]) NotSame[Finally[S1], Finally[S2]] {
	return NotSame[Finally[S1], Finally[S2]]{}
}
func NotSameGotoA[A1, A2 any](NotSame[A1, A2]) NotSame[Goto[A1], Goto[A2]] {
	return NotSame[Goto[A1], Goto[A2]]{}
}
func NotSameGotoDualA[A1, A2 any](NotSame[A1, A2]) NotSame[GotoDual[A1], GotoDual[A2]] {
	return NotSame[GotoDual[A1], GotoDual[A2]]{}
}

// Peano index disequality, grounded the same way peano.go's Z/Succ
// are: Z is never Succ[N] of anything, and two Succ towers differ
// exactly when their predecessors do.

func NotSameZSucc[N any]() NotSame[Z, Succ[N]] { return NotSame[Z, Succ[N]]{} }

func NotSameSuccN[N1, N2 any](NotSame[N1, N2]) NotSame[Succ[N1], Succ[N2]] {
	return NotSame[Succ[N1], Succ[N2]]{}
}

// Ground (leaf) type disequality. This is the one place the relation
// is genuinely open-ended — Go cannot derive "these two concrete types
// differ" for arbitrary A, B — so it is enumerated for the concrete
// payload types this repository's own protocols actually send or
// receive. One direction is given per pair; FlipNotSame covers the
// reverse.

func NotSameStringInt() NotSame[string, int]     { return NotSame[string, int]{} }
func NotSameStringBool() NotSame[string, bool]   { return NotSame[string, bool]{} }
func NotSameStringUint() NotSame[string, uint]   { return NotSame[string, uint]{} }
func NotSameStringUint64() NotSame[string, uint64] { return NotSame[string, uint64]{} }
func NotSameIntBool() NotSame[int, bool]         { return NotSame[int, bool]{} }
func NotSameIntUint() NotSame[int, uint]         { return NotSame[int, uint]{} }
func NotSameIntUint64() NotSame[int, uint64]     { return NotSame[int, uint64]{} }
func NotSameBoolUint() NotSame[bool, uint]       { return NotSame[bool, uint]{} }
func NotSameBoolUint64() NotSame[bool, uint64]   { return NotSame[bool, uint64]{} }
func NotSameUintUint64() NotSame[uint, uint64]   { return NotSame[uint, uint64]{} }
