// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo

// Duality is encoded as a witness value rather than a type-level
// function: Go has no associated types, so Dual[S, D] stands in for
// "D is proved to be the dual of S". Witnesses are zero-sized; building
// one costs nothing at runtime, and the smart constructors below are
// the only way to build one, so a well-typed Dual[S, D] is a proof
// that D really is dual(S) by structural recursion on S.
type Dual[S, D any] struct{}

// DualEnd witnesses dual(End) = End.
func DualEnd() Dual[End, End] { return Dual[End, End]{} }

// DualSend witnesses dual(Send[T, S]) = Recv[T, D] given dual(S) = D.
func DualSend[T, S, D any](_ Dual[S, D]) Dual[Send[T, S], Recv[T, D]] {
	return Dual[Send[T, S], Recv[T, D]]{}
}

// DualRecv witnesses dual(Recv[T, S]) = Send[T, D] given dual(S) = D.
func DualRecv[T, S, D any](_ Dual[S, D]) Dual[Recv[T, S], Send[T, D]] {
	return Dual[Recv[T, S], Send[T, D]]{}
}

// DualNest witnesses dual(Nest[S]) = Nest[D] given dual(S) = D.
func DualNest[S, D any](_ Dual[S, D]) Dual[Nest[S], Nest[D]] {
	return Dual[Nest[S], Nest[D]]{}
}

// DualEscape witnesses dual(Escape[N]) = Escape[N]: Escape is
// self-dual for every depth N.
func DualEscape[N any]() Dual[Escape[N], Escape[N]] {
	return Dual[Escape[N], Escape[N]]{}
}

// DualChoose witnesses dual(Choose[S, Q]) = Accept[D, QD] given
// dual(S) = D and dual(Q) = QD.
func DualChoose[S, D, Q, QD any](_ Dual[S, D], _ Dual[Q, QD]) Dual[Choose[S, Q], Accept[D, QD]] {
	return Dual[Choose[S, Q], Accept[D, QD]]{}
}

// DualAccept witnesses dual(Accept[S, Q]) = Choose[D, QD] given
// dual(S) = D and dual(Q) = QD.
func DualAccept[S, D, Q, QD any](_ Dual[S, D], _ Dual[Q, QD]) Dual[Accept[S, Q], Choose[D, QD]] {
	return Dual[Accept[S, Q], Choose[D, QD]]{}
}

// DualFinally witnesses dual(Finally[S]) = Finally[D] given dual(S) = D.
func DualFinally[S, D any](_ Dual[S, D]) Dual[Finally[S], Finally[D]] {
	return Dual[Finally[S], Finally[D]]{}
}

// DualGoto witnesses dual(Goto[A]) = GotoDual[A]. The body of A is
// dualised lazily at the point a concrete unfold function is called,
// never here, so alias cycles never force infinite recursion.
func DualGoto[A any]() Dual[Goto[A], GotoDual[A]] {
	return Dual[Goto[A], GotoDual[A]]{}
}

// DualGotoDual witnesses dual(GotoDual[A]) = Goto[A].
func DualGotoDual[A any]() Dual[GotoDual[A], Goto[A]] {
	return Dual[GotoDual[A], Goto[A]]{}
}

// Flip turns a proof that D is dual(S) into a proof that S is
// dual(D). Because Dual is zero-sized, Flip is always constructible;
// that Flip(Flip(w)) type-checks back to Dual[S, D] is the compiled-in
// witness that duality is involutive.
func Flip[S, D any](_ Dual[S, D]) Dual[D, S] {
	return Dual[D, S]{}
}
