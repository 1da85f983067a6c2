// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo_test

import (
	"testing"

	"github.com/ebfull/nemo"
	"github.com/ebfull/nemo/queue"
)

// Scenario A: linear send/recv. Protocol Send<usize, Recv<usize, End>>.
func TestLinearSendRecv(t *testing.T) {
	ta, tb := queue.NewBlockingPair(1)

	type proto1 = nemo.Send[int, nemo.Recv[int, nemo.End]]
	type proto2 = nemo.Recv[int, nemo.Send[int, nemo.End]]

	ch1 := nemo.NewChannel[struct{}, proto1](ta, struct{}{})
	ch2 := nemo.NewChannel[struct{}, proto2](tb, struct{}{})

	var d1, d2 *nemo.Defer[struct{}]
	d1 = nemo.SuspendSession[struct{}, struct{}, proto1](ch1, nemo.SessionHandlerFunc[struct{}, struct{}, proto1](func(ch nemo.Channel[struct{}, struct{}, proto1]) *nemo.Defer[struct{}] {
		next, err := nemo.Send(ch, 10)
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		return nemo.SuspendSession[struct{}, struct{}, nemo.Recv[int, nemo.End]](next, nemo.SessionHandlerFunc[struct{}, struct{}, nemo.Recv[int, nemo.End]](func(ch nemo.Channel[struct{}, struct{}, nemo.Recv[int, nemo.End]]) *nemo.Defer[struct{}] {
			outcome, retry := nemo.Recv[struct{}, struct{}, int, nemo.End](ch)
			return nemo.MatchEither(outcome, func(err error) *nemo.Defer[struct{}] {
				t.Fatalf("recv: %v", err)
				return nil
			}, func(r nemo.RecvOutcome[struct{}, struct{}, int, nemo.End]) *nemo.Defer[struct{}] {
				if !r.Ready {
					return nemo.SuspendSession[struct{}, struct{}, nemo.Recv[int, nemo.End]](retry, nil)
				}
				if r.Value != 20 {
					t.Fatalf("expected 20, got %d", r.Value)
				}
				return nemo.Close(r.Next)
			})
		}))
	}))

	d2 = nemo.SuspendSession[struct{}, struct{}, proto2](ch2, nemo.SessionHandlerFunc[struct{}, struct{}, proto2](func(ch nemo.Channel[struct{}, struct{}, proto2]) *nemo.Defer[struct{}] {
		outcome, retry := nemo.Recv[struct{}, struct{}, int, nemo.Send[int, nemo.End]](ch)
		return nemo.MatchEither(outcome, func(err error) *nemo.Defer[struct{}] {
			t.Fatalf("recv: %v", err)
			return nil
		}, func(r nemo.RecvOutcome[struct{}, struct{}, int, nemo.Send[int, nemo.End]]) *nemo.Defer[struct{}] {
			if !r.Ready {
				return nemo.SuspendSession[struct{}, struct{}, proto2](retry, nil)
			}
			if r.Value != 10 {
				t.Fatalf("expected 10, got %d", r.Value)
			}
			next, err := nemo.Send(r.Next, 20)
			if err != nil {
				t.Fatalf("send: %v", err)
			}
			return nemo.Close(next)
		})
	}))

	steps1, steps2 := 0, 0
	for d1.Open() || d2.Open() {
		if d1.Open() {
			d1.Step()
			steps1++
		}
		if d2.Open() {
			d2.Step()
			steps2++
		}
	}
	if steps1 != 2 {
		t.Fatalf("endpoint 1 expected 2 steps to close, got %d", steps1)
	}
	if steps2 != 1 {
		t.Fatalf("endpoint 2 expected 1 step to close, got %d", steps2)
	}
}

// Scenario B: choose with three branches. Only the chosen branch's
// handler runs; the others must be unreachable.
func TestChooseThreeBranches(t *testing.T) {
	ta, tb := queue.NewBlockingPair(1)

	// Three genuinely distinct payload types (string/uint/int), matching
	// spec.md's own scenario text (String/usize/isize) — a Choose list
	// with a repeated branch type is exactly what the NotSame
	// obligation on ChooseNext rejects at compile time.
	type serverProto = nemo.Choose[nemo.Send[string, nemo.End], nemo.Choose[nemo.Send[uint, nemo.End], nemo.Finally[nemo.Send[int, nemo.End]]]]
	type clientProto = nemo.Accept[nemo.Recv[string, nemo.End], nemo.Accept[nemo.Recv[uint, nemo.End], nemo.Finally[nemo.Recv[int, nemo.End]]]]

	chooser := nemo.NewChannel[struct{}, serverProto](ta, struct{}{})
	acceptor := nemo.NewChannel[struct{}, clientProto](tb, struct{}{})

	thirdBranch := nemo.ChooseNext[nemo.Send[string, nemo.End]](nemo.ChooseNext[nemo.Send[uint, nemo.End]](nemo.ChooseFinal[nemo.Send[int, nemo.End]](),
		nemo.NotSameSendT[int, uint, nemo.End, nemo.End](nemo.NotSameIntUint())),
		nemo.NotSameSendT[int, string, nemo.End, nemo.End](nemo.FlipNotSame(nemo.NotSameStringInt())))
	picked, err := nemo.ChooseBranch(chooser, thirdBranch)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	sent, err := nemo.Send(picked, -7)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	nemo.Close(sent)

	var stringRan, uintRan, finalRan bool
	table := nemo.AcceptBranch[struct{}, struct{}, nemo.Recv[string, nemo.End], nemo.Accept[nemo.Recv[uint, nemo.End], nemo.Finally[nemo.Recv[int, nemo.End]]]](
		nemo.SessionHandlerFunc[struct{}, struct{}, nemo.Recv[string, nemo.End]](func(nemo.Channel[struct{}, struct{}, nemo.Recv[string, nemo.End]]) *nemo.Defer[struct{}] {
			stringRan = true
			return nil
		}),
		nemo.AcceptBranch[struct{}, struct{}, nemo.Recv[uint, nemo.End], nemo.Finally[nemo.Recv[int, nemo.End]]](
			nemo.SessionHandlerFunc[struct{}, struct{}, nemo.Recv[uint, nemo.End]](func(nemo.Channel[struct{}, struct{}, nemo.Recv[uint, nemo.End]]) *nemo.Defer[struct{}] {
				uintRan = true
				return nil
			}),
			nemo.AcceptFinal[struct{}, struct{}, nemo.Recv[int, nemo.End]](
				nemo.SessionHandlerFunc[struct{}, struct{}, nemo.Recv[int, nemo.End]](func(ch nemo.Channel[struct{}, struct{}, nemo.Recv[int, nemo.End]]) *nemo.Defer[struct{}] {
					finalRan = true
					outcome, _ := nemo.Recv[struct{}, struct{}, int, nemo.End](ch)
					r, _ := outcome.GetRight()
					if r.Value != -7 {
						t.Fatalf("expected -7, got %d", r.Value)
					}
					return nemo.Close(r.Next)
				}),
			),
		),
	)

	d, _, err := nemo.Accept(acceptor, table)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if d == nil {
		t.Fatal("accept returned no Defer; discriminant should have been ready")
	}
	for d.Open() {
		d.Step()
	}
	if stringRan || uintRan {
		t.Fatal("unreachable branch handler ran")
	}
	if !finalRan {
		t.Fatal("the chosen (Finally) branch handler never ran")
	}
}

// Scenario F: wrong index accepted. An out-of-range discriminant
// clamps to the Finally branch, never to undefined behaviour.
func TestAcceptClampsOutOfRangeIndex(t *testing.T) {
	ta, tb := queue.NewBlockingPair(1)

	acceptor := nemo.NewChannel[struct{}, nemo.Accept[nemo.End, nemo.Finally[nemo.End]]](tb, struct{}{})

	var finalRan bool
	table := nemo.AcceptBranch[struct{}, struct{}, nemo.End, nemo.Finally[nemo.End]](
		nemo.SessionHandlerFunc[struct{}, struct{}, nemo.End](func(ch nemo.Channel[struct{}, struct{}, nemo.End]) *nemo.Defer[struct{}] {
			t.Fatal("index-0 branch should not run for an out-of-range discriminant")
			return nemo.Close(ch)
		}),
		nemo.AcceptFinal[struct{}, struct{}, nemo.End](
			nemo.SessionHandlerFunc[struct{}, struct{}, nemo.End](func(ch nemo.Channel[struct{}, struct{}, nemo.End]) *nemo.Defer[struct{}] {
				finalRan = true
				return nemo.Close(ch)
			}),
		),
	)

	if err := ta.SendDiscriminant(99); err != nil {
		t.Fatalf("send discriminant: %v", err)
	}
	d, _, err := nemo.Accept(acceptor, table)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	for d.Open() {
		d.Step()
	}
	if !finalRan {
		t.Fatal("discriminant 99 did not dispatch to the Finally branch")
	}
}

// Scenario E: peer drop. Closing one endpoint mid-session must
// surface as a fatal error on the other endpoint's next Recv, not as
// not-ready or silent failure.
func TestPeerDropIsFatal(t *testing.T) {
	ta, tb := queue.NewBlockingPair(1)

	ch := nemo.NewChannel[struct{}, nemo.Recv[int, nemo.End]](ta, struct{}{})
	if err := tb.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	outcome, _ := nemo.Recv[struct{}, struct{}, int, nemo.End](ch)
	if outcome.IsRight() {
		t.Fatal("expected a fatal Left after the peer closed, got Right")
	}
}

// Property 6: stepping a closed Defer panics deterministically.
func TestStepAfterCloseIsAProgrammerError(t *testing.T) {
	ta, tb := queue.NewBlockingPair(1)
	_ = tb
	ch := nemo.NewChannel[struct{}, nemo.End](ta, struct{}{})
	d := nemo.Close(ch)
	if d.Open() {
		t.Fatal("a just-closed Defer must report Open() == false")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("stepping a closed Defer should have panicked")
		}
	}()
	d.Step()
}
