// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell_test

import (
	"testing"

	"code.hybscloud.com/tokcell"
)

type benchKind struct{}
type benchLeaseKind struct{}

// BenchmarkTryBorrow measures the checked read path.
func BenchmarkTryBorrow(b *testing.B) {
	tok, _ := tokcell.NewCounter[benchKind]()
	cell := tokcell.NewCell(42, tok)

	for b.Loop() {
		v, _ := cell.TryBorrow(tok)
		allocSink = *v
	}
}

// BenchmarkBorrowMut measures the checked write path.
func BenchmarkBorrowMut(b *testing.B) {
	tok, _ := tokcell.NewCounter[benchKind]()
	cell := tokcell.NewCell(0, tok)

	for b.Loop() {
		*cell.BorrowMut(tok)++
	}
}

// BenchmarkGetMut measures the capability-free path.
func BenchmarkGetMut(b *testing.B) {
	tok, _ := tokcell.NewCounter[benchKind]()
	cell := tokcell.NewCell(0, tok)

	for b.Loop() {
		*cell.GetMut()++
	}
}

// BenchmarkUncheckedBorrow measures the escape-hatch read path.
func BenchmarkUncheckedBorrow(b *testing.B) {
	tok, _ := tokcell.NewUnchecked[benchKind]()
	cell := tokcell.NewCell(42, tok)

	for b.Loop() {
		allocSink = *cell.Borrow(tok)
	}
}

// BenchmarkMapApply measures deferred construction plus application.
func BenchmarkMapApply(b *testing.B) {
	tok, _ := tokcell.NewCounter[benchKind]()
	cell := tokcell.NewCell(21, tok)

	for b.Loop() {
		m := tokcell.Map(cell, func(g tokcell.Guard[int, *tokcell.CounterToken[benchKind]]) int {
			return g.Value() * 2
		})
		allocSink = m.Apply(tok)
	}
}

// BenchmarkNewCounter measures counter token construction.
func BenchmarkNewCounter(b *testing.B) {
	for b.Loop() {
		tok, _ := tokcell.NewCounter[benchKind]()
		allocSink = int(tok.Identifier())
	}
}

// BenchmarkLeaseAcquireRelease measures a full lease cycle.
func BenchmarkLeaseAcquireRelease(b *testing.B) {
	for b.Loop() {
		tok, _ := tokcell.NewLease[benchLeaseKind]()
		tok.Release()
	}
}
