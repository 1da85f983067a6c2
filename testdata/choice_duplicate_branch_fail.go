//go:build ignore

// This file must NOT compile. It demonstrates property 2 (spec.md §8):
// a Choose list with the same branch type at two positions is rejected
// at compile time, the Go rendition of the original crate's
// `where (S, P): NotSame` bound on its Chooser impl
// (original_source/src/session_types/choose.rs).
//
// To check: copy this file's body into a real _test.go (dropping the
// build tag) and confirm `go build` fails — there is no nemo.NotSameIntInt
// (or any other constructor in disequality.go) producing
// nemo.NotSame[int, int], because int is never disequal from itself.
// Every legitimate two-distinct-type call (TestChooseThreeBranches,
// TestChooserIndicesMatchPosition) reaches for a real NotSame*
// constructor the same way this file tries to; here none exists.
package testdata

import "github.com/ebfull/nemo"

type dupBranch = nemo.Send[int, nemo.End]

var _ = nemo.ChooseNext[dupBranch](
	nemo.ChooseHere[dupBranch, nemo.Finally[dupBranch]](),
	nemo.NotSameSendT[int, int, nemo.End, nemo.End](nemo.NotSameIntInt()),
)
