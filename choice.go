// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo

// Choice is a witness that Target occurs in the Choose/Accept/Finally
// list R at position index, built left-to-right by ChooseHere,
// ChooseNext, and ChooseFinal. It is the Chooser relation from the
// session-type algebra: the index is computed once, at the call site
// that assembles the witness, and carried at runtime only to be
// written onto the transport's discriminant channel.
type Choice[R, Target any] struct {
	index int
}

// ChooseHere witnesses that S is at index 0 of Choose[S, Q].
func ChooseHere[S, Q any]() Choice[Choose[S, Q], S] {
	return Choice[Choose[S, Q], S]{index: 0}
}

// ChooseNext witnesses that, given Target is at index i of Q, Target
// is at index i+1 of Choose[S, Q]. Chaining ChooseHere/ChooseNext calls
// walks the branch list exactly the way the Chooser relation does. The
// NotSame[Target, S] argument is the disequality obligation between
// Target and the branch being skipped (S): it has no constructor when
// Target and S are the same type, so a caller cannot build a Choice
// witness for a branch type that also occurs earlier in the same list
// — the compile error the source algebra's `where (S, P): NotSame`
// bound produces (original_source/src/session_types/choose.rs).
func ChooseNext[S, Q, Target any](rest Choice[Q, Target], _ NotSame[Target, S]) Choice[Choose[S, Q], Target] {
	return Choice[Choose[S, Q], Target]{index: rest.index + 1}
}

// ChooseFinal witnesses that S is the (only) reachable branch of a
// terminal Finally[S] node.
func ChooseFinal[S any]() Choice[Finally[S], S] {
	return Choice[Finally[S], S]{index: 0}
}

// AcceptTable is the runtime counterpart of the Acceptor relation: a
// positional table of branch dispatchers built to mirror the shape of
// a Choose/Accept/Finally list. Unlike Choice, which only proves a
// static fact, AcceptTable must act at runtime on a discriminant that
// arrived over the wire, so branch dispatchers are type-erased
// closures captured at table-construction time, one per SessionHandler.
type AcceptTable[C any] struct {
	branches []func(Transport, C) *Defer[C]
}

// AcceptBranch prepends the handler for index 0 of an Accept[S, Q]
// node onto a table already built for Q, producing the table for the
// whole Accept[S, Q] node.
func AcceptBranch[C, E, S, Q any](handler SessionHandler[C, E, S], rest AcceptTable[C]) AcceptTable[C] {
	branches := make([]func(Transport, C) *Defer[C], 0, len(rest.branches)+1)
	branches = append(branches, func(t Transport, ctx C) *Defer[C] {
		return handler.With(Channel[C, E, S]{transport: t, ctx: ctx})
	})
	branches = append(branches, rest.branches...)
	return AcceptTable[C]{branches: branches}
}

// AcceptFinal builds the one-entry table for a terminal Finally[S]
// node: every index, in range or not, dispatches to this handler.
func AcceptFinal[C, E, S any](handler SessionHandler[C, E, S]) AcceptTable[C] {
	return AcceptTable[C]{branches: []func(Transport, C) *Defer[C]{
		func(t Transport, ctx C) *Defer[C] {
			return handler.With(Channel[C, E, S]{transport: t, ctx: ctx})
		},
	}}
}

// Dispatch runs the branch at idx, clamping any out-of-range index
// (including negative ones, which a conforming transport never
// produces) to the last entry — the Finally branch. This is the exact
// behaviour scenario F exercises: an accept fed a discriminant beyond
// the last real branch still dispatches deterministically.
func (t AcceptTable[C]) Dispatch(idx int, transport Transport, ctx C) *Defer[C] {
	if idx < 0 || idx >= len(t.branches) {
		idx = len(t.branches) - 1
	}
	return t.branches[idx](transport, ctx)
}
