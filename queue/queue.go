// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue implements nemo.Transport over a pair of in-process
// Go channels, one FIFO per direction for discriminants and one for
// values. It is the in-process analogue of the reference crate's
// mpsc-backed blocking and non-blocking transports.
package queue

import (
	"errors"
	"sync"

	"github.com/ebfull/nemo"
)

// ErrPeerClosed is the fatal error RecvDiscriminant/RecvValue return
// once the peer has closed its sending half. A transport observing
// this after Close is not an error condition the algebra needs to
// know about; only an unexpected close — one the protocol's type did
// not already predict via End — reaches a handler as Left(err).
var ErrPeerClosed = errors.New("nemo/queue: peer closed the transport")

// queueTransport implements nemo.Transport over two paired channel
// sets. blocking selects whether RecvDiscriminant/RecvValue wait for
// data (Blocking) or return not-ready immediately when none is queued
// (NonBlocking).
type queueTransport struct {
	sendDisc chan int
	recvDisc chan int
	sendVal  chan any
	recvVal  chan any

	blocking bool

	closeOnce sync.Once
}

// NewBlockingPair returns two transports, each the other's peer, whose
// Recv operations block until a value is available or the peer closes.
// capacity sizes the internal buffering; 0 makes sends and receives
// rendezvous directly, matching an unbuffered channel.
func NewBlockingPair(capacity int) (a, b nemo.Transport) {
	return newPair(capacity, true)
}

// NewNonBlockingPair returns two transports, each the other's peer,
// whose Recv operations return immediately with ok=false when nothing
// is queued, so a driver loop can defer and retry.
func NewNonBlockingPair(capacity int) (a, b nemo.Transport) {
	return newPair(capacity, false)
}

func newPair(capacity int, blocking bool) (nemo.Transport, nemo.Transport) {
	discAB := make(chan int, capacity)
	discBA := make(chan int, capacity)
	valAB := make(chan any, capacity)
	valBA := make(chan any, capacity)

	a := &queueTransport{sendDisc: discAB, recvDisc: discBA, sendVal: valAB, recvVal: valBA, blocking: blocking}
	b := &queueTransport{sendDisc: discBA, recvDisc: discAB, sendVal: valBA, recvVal: valAB, blocking: blocking}
	return a, b
}

// Close closes the channels this endpoint sends on. It is idempotent:
// repeated calls after the first are no-ops.
func (t *queueTransport) Close() error {
	t.closeOnce.Do(func() {
		close(t.sendDisc)
		close(t.sendVal)
	})
	return nil
}

func (t *queueTransport) SendDiscriminant(idx int) error {
	t.sendDisc <- idx
	return nil
}

func (t *queueTransport) RecvDiscriminant() (int, bool, error) {
	if t.blocking {
		idx, ok := <-t.recvDisc
		if !ok {
			return 0, false, ErrPeerClosed
		}
		return idx, true, nil
	}
	select {
	case idx, ok := <-t.recvDisc:
		if !ok {
			return 0, false, ErrPeerClosed
		}
		return idx, true, nil
	default:
		return 0, false, nil
	}
}

func (t *queueTransport) SendValue(v any) error {
	t.sendVal <- v
	return nil
}

func (t *queueTransport) RecvValue() (any, bool, error) {
	if t.blocking {
		v, ok := <-t.recvVal
		if !ok {
			return nil, false, ErrPeerClosed
		}
		return v, true, nil
	}
	select {
	case v, ok := <-t.recvVal:
		if !ok {
			return nil, false, ErrPeerClosed
		}
		return v, true, nil
	default:
		return nil, false, nil
	}
}
