// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nemo

// Transport is the abstract capability a Channel is built on: a base
// capability (Close, discriminant send/recv for Choose/Accept) plus a
// type-erased value transfer capability shared by every Send/Recv
// state in the protocol. Concrete transports live outside this
// package (see the queue subpackage for an in-process implementation);
// the algebra depends only on this interface.
//
// SendValue/RecvValue erase the message type to any, the same way the
// reference implementation erases a continuation pointer through a
// state-erased Defer: the erasure is undone by a type assertion at the
// single call site that statically knows the expected T (Send/Recv in
// channel.go). A transport that hands back a value of the wrong
// dynamic type is a transport bug, not a session-type violation, and
// the resulting assertion panic is treated like any other poisoned
// transport.
//
// RecvValue and RecvDiscriminant report three outcomes: a ready value
// (ok=true, err=nil), a transient not-ready (ok=false, err=nil) for
// non-blocking transports to signal "call again later", and a fatal
// peer violation (err non-nil) once the transport can prove the peer
// will never produce anything more.
type Transport interface {
	Close() error
	SendDiscriminant(idx int) error
	RecvDiscriminant() (idx int, ok bool, err error)
	SendValue(v any) error
	RecvValue() (v any, ok bool, err error)
}
