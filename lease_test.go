// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/tokcell"
)

type leaseKind struct{}
type leaseWithKind struct{}
type leaseRaceKind struct{}
type leaseReleaseKind struct{}

func TestLeaseSingleton(t *testing.T) {
	first, err := tokcell.NewLease[leaseKind]()
	if err != nil {
		t.Fatalf("first NewLease: %v", err)
	}

	// A second construction while the first instance is live must fail.
	if _, err := tokcell.NewLease[leaseKind](); !errors.Is(err, tokcell.ErrLeaseUnavailable) {
		t.Fatalf("got %v, want ErrLeaseUnavailable", err)
	}

	first.Release()
	second, err := tokcell.NewLease[leaseKind]()
	if err != nil {
		t.Fatalf("NewLease after release: %v", err)
	}
	second.Release()
}

func TestLeaseCellAccess(t *testing.T) {
	tok, err := tokcell.NewLease[leaseReleaseKind]()
	if err != nil {
		t.Fatalf("NewLease: %v", err)
	}
	cell := tokcell.NewCell(10, tok)

	*cell.BorrowMut(tok) = 20
	if got := *cell.Borrow(tok); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
	tok.Release()

	// Uniqueness, not identity, is the lease guarantee: the next instance
	// of the kind unlocks cells keyed to the previous one.
	next, err := tokcell.NewLease[leaseReleaseKind]()
	if err != nil {
		t.Fatalf("NewLease after release: %v", err)
	}
	defer next.Release()
	if got := *cell.Borrow(next); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestLeaseDoubleRelease(t *testing.T) {
	tok, err := tokcell.NewLease[leaseKind]()
	if err != nil {
		t.Fatalf("NewLease: %v", err)
	}
	tok.Release()
	tok.Release() // no-op

	// The slot must be claimable exactly once after the double release.
	again, err := tokcell.NewLease[leaseKind]()
	if err != nil {
		t.Fatalf("NewLease after double release: %v", err)
	}
	defer again.Release()
	if _, err := tokcell.NewLease[leaseKind](); !errors.Is(err, tokcell.ErrLeaseUnavailable) {
		t.Fatalf("got %v, want ErrLeaseUnavailable", err)
	}
}

func TestLeaseWith(t *testing.T) {
	got, err := tokcell.WithLease(func(tok *tokcell.LeaseToken[leaseWithKind]) int {
		// Nested acquisition of the same kind must fail while the scope runs.
		if _, err := tokcell.NewLease[leaseWithKind](); !errors.Is(err, tokcell.ErrLeaseUnavailable) {
			t.Errorf("got %v, want ErrLeaseUnavailable", err)
		}
		cell := tokcell.NewCell(3, tok)
		return *cell.Borrow(tok)
	})
	if err != nil {
		t.Fatalf("WithLease: %v", err)
	}
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}

	// WithLease released the token on return.
	tok, err := tokcell.NewLease[leaseWithKind]()
	if err != nil {
		t.Fatalf("NewLease after WithLease: %v", err)
	}
	tok.Release()
}

func TestLeaseWithUnavailable(t *testing.T) {
	held, err := tokcell.NewLease[leaseKind]()
	if err != nil {
		t.Fatalf("NewLease: %v", err)
	}
	defer held.Release()

	ran := false
	_, err = tokcell.WithLease(func(tok *tokcell.LeaseToken[leaseKind]) int {
		ran = true
		return 0
	})
	if !errors.Is(err, tokcell.ErrLeaseUnavailable) {
		t.Fatalf("got %v, want ErrLeaseUnavailable", err)
	}
	if ran {
		t.Fatal("body ran despite unavailable lease")
	}
}

func TestLeaseConcurrentSingleWinner(t *testing.T) {
	const goroutines = 64

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tokcell.NewLease[leaseRaceKind](); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Fatalf("got %d lease winners, want 1", got)
	}
}
