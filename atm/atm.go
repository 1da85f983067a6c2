// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atm is a worked example of a named, mutually recursive
// protocol: a cash machine menu that loops between deposit, withdraw,
// and balance-inquiry sub-protocols until the client ends the session.
// It is the Go rendition of the reference crate's atm.rs/better-atm.rs
// examples, and exercises nemo's alias/Goto machinery end to end.
package atm

import "github.com/ebfull/nemo"

// AtmMenu, Deposit, Withdraw, and GetBalance are alias markers — each
// names a session-type body that nemo.Goto/nemo.GotoDual refer to
// without re-expanding it inline. Go has no type-level function to
// look up "the body of A" automatically, so each alias gets the pair
// of explicit unfold functions below (EnterX for the Goto side, the
// server, and EnterXDual for the GotoDual side, the client) instead of
// an automatic Alias relation.
// NotSameWithdrawDeposit, NotSameGetBalanceWithdraw, and
// NotSameGetBalanceDeposit are this protocol's own ground-type
// disequality witnesses, in the same spirit as nemo's own leaf
// constructors (disequality.go): Go cannot derive that two named
// struct types differ, so the package introducing the types supplies
// the proof, the same boilerplate-per-protocol shape as EnterX/
// EnterXDual below. ClientMenu's Choose list needs these three to
// build a Choice witness for each of its branches.
func NotSameWithdrawDeposit() nemo.NotSame[Withdraw, Deposit] { return nemo.NotSame[Withdraw, Deposit]{} }
func NotSameGetBalanceWithdraw() nemo.NotSame[GetBalance, Withdraw] {
	return nemo.NotSame[GetBalance, Withdraw]{}
}
func NotSameGetBalanceDeposit() nemo.NotSame[GetBalance, Deposit] {
	return nemo.NotSame[GetBalance, Deposit]{}
}

type (
	AtmMenu    struct{}
	Deposit    struct{}
	Withdraw   struct{}
	GetBalance struct{}
)

// ServerMenu is the body of AtmMenu as seen by the server: on each
// loop iteration it accepts a choice of Deposit, Withdraw, GetBalance,
// or ending the session.
type ServerMenu = nemo.Accept[nemo.Goto[Deposit], nemo.Accept[nemo.Goto[Withdraw], nemo.Accept[nemo.Goto[GetBalance], nemo.Finally[nemo.End]]]]

// ClientMenu is ServerMenu's dual, as seen by the client.
type ClientMenu = nemo.Choose[nemo.GotoDual[Deposit], nemo.Choose[nemo.GotoDual[Withdraw], nemo.Choose[nemo.GotoDual[GetBalance], nemo.Finally[nemo.End]]]]

// ServerDeposit receives an amount, replies with the new balance, then
// loops back to the menu.
type ServerDeposit = nemo.Recv[uint64, nemo.Send[uint64, nemo.Goto[AtmMenu]]]
type ClientDeposit = nemo.Send[uint64, nemo.Recv[uint64, nemo.GotoDual[AtmMenu]]]

// ServerWithdraw receives an amount, replies whether it succeeded, then
// loops back to the menu.
type ServerWithdraw = nemo.Recv[uint64, nemo.Send[bool, nemo.Goto[AtmMenu]]]
type ClientWithdraw = nemo.Send[uint64, nemo.Recv[bool, nemo.GotoDual[AtmMenu]]]

// ServerGetBalance replies with the current balance, then loops back
// to the menu.
type ServerGetBalance = nemo.Send[uint64, nemo.Goto[AtmMenu]]
type ClientGetBalance = nemo.Recv[uint64, nemo.GotoDual[AtmMenu]]

// EnterAtmMenu unfolds Goto[AtmMenu] into the server's menu body.
func EnterAtmMenu[C, E any](ch nemo.Channel[C, E, nemo.Goto[AtmMenu]]) nemo.Channel[C, E, ServerMenu] {
	return nemo.Rebind[C, E, nemo.Goto[AtmMenu], ServerMenu](ch)
}

// EnterAtmMenuDual unfolds GotoDual[AtmMenu] into the client's menu body.
func EnterAtmMenuDual[C, E any](ch nemo.Channel[C, E, nemo.GotoDual[AtmMenu]]) nemo.Channel[C, E, ClientMenu] {
	return nemo.Rebind[C, E, nemo.GotoDual[AtmMenu], ClientMenu](ch)
}

// EnterDeposit unfolds Goto[Deposit] into the server's deposit body.
func EnterDeposit[C, E any](ch nemo.Channel[C, E, nemo.Goto[Deposit]]) nemo.Channel[C, E, ServerDeposit] {
	return nemo.Rebind[C, E, nemo.Goto[Deposit], ServerDeposit](ch)
}

// EnterDepositDual unfolds GotoDual[Deposit] into the client's deposit body.
func EnterDepositDual[C, E any](ch nemo.Channel[C, E, nemo.GotoDual[Deposit]]) nemo.Channel[C, E, ClientDeposit] {
	return nemo.Rebind[C, E, nemo.GotoDual[Deposit], ClientDeposit](ch)
}

// EnterWithdraw unfolds Goto[Withdraw] into the server's withdraw body.
func EnterWithdraw[C, E any](ch nemo.Channel[C, E, nemo.Goto[Withdraw]]) nemo.Channel[C, E, ServerWithdraw] {
	return nemo.Rebind[C, E, nemo.Goto[Withdraw], ServerWithdraw](ch)
}

// EnterWithdrawDual unfolds GotoDual[Withdraw] into the client's withdraw body.
func EnterWithdrawDual[C, E any](ch nemo.Channel[C, E, nemo.GotoDual[Withdraw]]) nemo.Channel[C, E, ClientWithdraw] {
	return nemo.Rebind[C, E, nemo.GotoDual[Withdraw], ClientWithdraw](ch)
}

// EnterGetBalance unfolds Goto[GetBalance] into the server's balance body.
func EnterGetBalance[C, E any](ch nemo.Channel[C, E, nemo.Goto[GetBalance]]) nemo.Channel[C, E, ServerGetBalance] {
	return nemo.Rebind[C, E, nemo.Goto[GetBalance], ServerGetBalance](ch)
}

// EnterGetBalanceDual unfolds GotoDual[GetBalance] into the client's balance body.
func EnterGetBalanceDual[C, E any](ch nemo.Channel[C, E, nemo.GotoDual[GetBalance]]) nemo.Channel[C, E, ClientGetBalance] {
	return nemo.Rebind[C, E, nemo.GotoDual[GetBalance], ClientGetBalance](ch)
}

// Account is the server-side context: the ledger a running ATM session
// mutates across every trip around the menu loop.
type Account struct {
	Balance     uint64
	MaxWithdraw uint64
	Audit       []string
}

// deposit runs the ledger update for a deposit as a State+Writer
// computation (see state.go, writer.go). The computation is assembled
// in closure-based Cont form, then handed to bridge.go's Reify to
// convert it to the defunctionalized Expr representation before
// running it through compose.go's RunStateWriterExpr: a defunctionalized
// session handler's own computations (built once per request, run once,
// never replayed) have nothing to gain from the closure form's laziness,
// so this path takes the same allocation-free evaluation loop the
// stepping boundary (step.go) uses internally.
func deposit(balance uint64, amount uint64) (newBalance uint64, audit []string) {
	comp := nemo.ModifyState(func(b uint64) uint64 { return b + amount }, func(b uint64) nemo.Cont[nemo.Resumed, uint64] {
		return nemo.TellWriter[string](auditLine("deposit", amount, b), nemo.Return[nemo.Resumed](b))
	})
	newBalance, _, audit = nemo.RunStateWriterExpr[uint64, string](balance, nemo.Reify(comp))
	return newBalance, audit
}

// withdraw runs the ledger update for a withdrawal as a Reader+State+Error
// computation (see reader.go, state.go, error.go): the configured
// MaxWithdraw limit is read, the balance is checked, and an
// insufficient-funds condition throws instead of mutating the balance.
// Reified to Expr and run through RunReaderStateErrorExpr, the same
// defunctionalized path deposit above uses.
func withdraw(balance, maxWithdraw, amount uint64) (ok bool, newBalance uint64) {
	comp := nemo.AskReader(func(limit uint64) nemo.Cont[nemo.Resumed, bool] {
		return nemo.GetState(func(b uint64) nemo.Cont[nemo.Resumed, bool] {
			if amount > limit || amount > b {
				return nemo.ThrowError[string, bool]("insufficient funds or over limit")
			}
			return nemo.ModifyState(func(b uint64) uint64 { return b - amount }, func(uint64) nemo.Cont[nemo.Resumed, bool] {
				return nemo.Return[nemo.Resumed](true)
			})
		})
	})
	result, finalBalance := nemo.RunReaderStateErrorExpr[uint64, uint64, string, bool](maxWithdraw, balance, nemo.Reify(comp))
	ok, _ = result.GetRight()
	return ok, finalBalance
}

func auditLine(op string, amount, balance uint64) string {
	return op + ": amount=" + itoa(amount) + " balance=" + itoa(balance)
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// DepositHandler implements nemo.SessionHandler for ServerDeposit.
type DepositHandler struct{}

func (DepositHandler) With(ch nemo.Channel[*Account, struct{}, ServerDeposit]) *nemo.Defer[*Account] {
	outcome, retry := nemo.Recv[*Account, struct{}, uint64, nemo.Send[uint64, nemo.Goto[AtmMenu]]](ch)
	return nemo.MatchEither(outcome, func(err error) *nemo.Defer[*Account] {
		panic("nemo/atm: deposit recv failed: " + err.Error())
	}, func(r nemo.RecvOutcome[*Account, struct{}, uint64, nemo.Send[uint64, nemo.Goto[AtmMenu]]]) *nemo.Defer[*Account] {
		if !r.Ready {
			return nemo.SuspendSession[*Account, struct{}, ServerDeposit](retry, DepositHandler{})
		}
		acct := r.Next.Ctx()
		newBalance, audit := deposit(acct.Balance, r.Value)
		acct.Balance = newBalance
		acct.Audit = append(acct.Audit, audit...)
		next, err := nemo.Send(r.Next, newBalance)
		if err != nil {
			panic("nemo/atm: deposit send failed: " + err.Error())
		}
		return nemo.SuspendSession[*Account, struct{}, ServerMenu](EnterAtmMenu(next), ServerMenuHandler{})
	})
}

// WithdrawHandler implements nemo.SessionHandler for ServerWithdraw.
type WithdrawHandler struct{}

func (WithdrawHandler) With(ch nemo.Channel[*Account, struct{}, ServerWithdraw]) *nemo.Defer[*Account] {
	outcome, retry := nemo.Recv[*Account, struct{}, uint64, nemo.Send[bool, nemo.Goto[AtmMenu]]](ch)
	return nemo.MatchEither(outcome, func(err error) *nemo.Defer[*Account] {
		panic("nemo/atm: withdraw recv failed: " + err.Error())
	}, func(r nemo.RecvOutcome[*Account, struct{}, uint64, nemo.Send[bool, nemo.Goto[AtmMenu]]]) *nemo.Defer[*Account] {
		if !r.Ready {
			return nemo.SuspendSession[*Account, struct{}, ServerWithdraw](retry, WithdrawHandler{})
		}
		acct := r.Next.Ctx()
		ok, newBalance := withdraw(acct.Balance, acct.MaxWithdraw, r.Value)
		acct.Balance = newBalance
		acct.Audit = append(acct.Audit, auditLine("withdraw", r.Value, newBalance))
		next, err := nemo.Send(r.Next, ok)
		if err != nil {
			panic("nemo/atm: withdraw send failed: " + err.Error())
		}
		return nemo.SuspendSession[*Account, struct{}, ServerMenu](EnterAtmMenu(next), ServerMenuHandler{})
	})
}

// GetBalanceHandler implements nemo.SessionHandler for ServerGetBalance.
type GetBalanceHandler struct{}

func (GetBalanceHandler) With(ch nemo.Channel[*Account, struct{}, ServerGetBalance]) *nemo.Defer[*Account] {
	balance := ch.Ctx().Balance
	next, err := nemo.Send(ch, balance)
	if err != nil {
		panic("nemo/atm: get-balance send failed: " + err.Error())
	}
	return nemo.SuspendSession[*Account, struct{}, ServerMenu](EnterAtmMenu(next), ServerMenuHandler{})
}

// EndHandler implements nemo.SessionHandler for nemo.End, closing the
// session and flushing the audit log through Bracket so the "session
// closed" line is appended whether or not the flush itself reports an
// error, instead of being skipped on an early return.
type EndHandler struct{}

func (EndHandler) With(ch nemo.Channel[*Account, struct{}, nemo.End]) *nemo.Defer[*Account] {
	acct := ch.Ctx()
	comp := nemo.Bracket[string, *Account, struct{}](
		nemo.Return[nemo.Resumed](acct),
		func(a *Account) nemo.Cont[nemo.Resumed, struct{}] {
			a.Audit = append(a.Audit, "session closed")
			return nemo.Return[nemo.Resumed](struct{}{})
		},
		func(a *Account) nemo.Cont[nemo.Resumed, struct{}] {
			return nemo.Return[nemo.Resumed](struct{}{})
		},
	)
	// Drive the bracketed cleanup through the same stepping boundary a
	// non-blocking runtime would use, rather than invoking comp as a
	// bare one-shot function: acquire/use/release never themselves
	// suspend, so this always resolves in a single Step, but a future
	// audit hook that performs a real effect (e.g. Tell) gets external
	// suspension for free instead of a second ad hoc driver.
	_, susp := nemo.Step(comp)
	for susp != nil {
		_, susp = susp.Resume(nil)
	}
	return nemo.Close(ch)
}

// ServerMenuHandler implements nemo.SessionHandler for ServerMenu,
// accepting the client's choice of sub-protocol.
type ServerMenuHandler struct{}

func (ServerMenuHandler) With(ch nemo.Channel[*Account, struct{}, ServerMenu]) *nemo.Defer[*Account] {
	table := nemo.AcceptBranch[*Account, struct{}, nemo.Goto[Deposit], nemo.Accept[nemo.Goto[Withdraw], nemo.Accept[nemo.Goto[GetBalance], nemo.Finally[nemo.End]]]](
		gotoDepositHandler{}, nemo.AcceptBranch[*Account, struct{}, nemo.Goto[Withdraw], nemo.Accept[nemo.Goto[GetBalance], nemo.Finally[nemo.End]]](
			gotoWithdrawHandler{}, nemo.AcceptBranch[*Account, struct{}, nemo.Goto[GetBalance], nemo.Finally[nemo.End]](
				gotoGetBalanceHandler{}, nemo.AcceptFinal[*Account, struct{}, nemo.End](EndHandler{}),
			),
		),
	)
	d, retry, err := nemo.Accept(ch, table)
	if err != nil {
		panic("nemo/atm: menu accept failed: " + err.Error())
	}
	if d == nil {
		return nemo.SuspendSession[*Account, struct{}, ServerMenu](retry, ServerMenuHandler{})
	}
	return d
}

type gotoDepositHandler struct{}

func (gotoDepositHandler) With(ch nemo.Channel[*Account, struct{}, nemo.Goto[Deposit]]) *nemo.Defer[*Account] {
	return DepositHandler{}.With(EnterDeposit(ch))
}

type gotoWithdrawHandler struct{}

func (gotoWithdrawHandler) With(ch nemo.Channel[*Account, struct{}, nemo.Goto[Withdraw]]) *nemo.Defer[*Account] {
	return WithdrawHandler{}.With(EnterWithdraw(ch))
}

type gotoGetBalanceHandler struct{}

func (gotoGetBalanceHandler) With(ch nemo.Channel[*Account, struct{}, nemo.Goto[GetBalance]]) *nemo.Defer[*Account] {
	return GetBalanceHandler{}.With(EnterGetBalance(ch))
}

// NewServer builds the initial server-side Defer for a fresh ATM
// session over transport, starting at the menu.
func NewServer(transport nemo.Transport, acct *Account) *nemo.Defer[*Account] {
	ch := nemo.NewChannel[*Account, ServerMenu](transport, acct)
	return nemo.SuspendSession[*Account, struct{}, ServerMenu](ch, ServerMenuHandler{})
}
