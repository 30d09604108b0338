// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// leaseSlots maps a kind's reflect.Type to its held flag. Slots are created
// on first construction attempt and never torn down; a flag set true means
// an instance of that kind is live.
var leaseSlots sync.Map // reflect.Type -> *atomic.Bool

func leaseSlot[K any]() *atomic.Bool {
	key := reflect.TypeFor[K]()
	if v, ok := leaseSlots.Load(key); ok {
		return v.(*atomic.Bool)
	}
	v, _ := leaseSlots.LoadOrStore(key, new(atomic.Bool))
	return v.(*atomic.Bool)
}

// LeaseToken is the singleton-lease strategy: at most one live instance per
// kind. Construction atomically claims the kind's slot and fails with
// [ErrLeaseUnavailable] while another instance holds it; [LeaseToken.Release]
// frees the slot so a future instance can be constructed.
//
// Uniqueness, not per-instance identity, is the guarantee: comparison always
// succeeds, and a cell keyed to one lease instance accepts the next instance
// constructed after a release.
type LeaseToken[K any] struct {
	slot     *atomic.Bool
	released atomic.Bool
}

// NewLease constructs a lease token of kind K, failing with
// [ErrLeaseUnavailable] if another instance of kind K is live. Construction
// is never retried internally: callers that need to wait must loop
// themselves.
func NewLease[K any]() (*LeaseToken[K], error) {
	slot := leaseSlot[K]()
	if !slot.CompareAndSwap(false, true) {
		return nil, ErrLeaseUnavailable
	}
	return &LeaseToken[K]{slot: slot}, nil
}

// WithLease constructs a lease token of kind K, passes it to body, and
// releases it when body returns. Fails with [ErrLeaseUnavailable] if
// another instance of kind K is live; body is not run in that case.
func WithLease[K, R any](body func(*LeaseToken[K]) R) (R, error) {
	tok, err := NewLease[K]()
	if err != nil {
		var zero R
		return zero, err
	}
	defer tok.Release()
	return body(tok), nil
}

// Release frees the kind's slot so a future instance can be constructed.
// The token must not be used afterwards. Releasing twice is a no-op.
func (t *LeaseToken[K]) Release() {
	if t.released.CompareAndSwap(false, true) {
		t.slot.Store(false)
	}
}

// Identifier returns zero: lease identity is the unit value.
func (t *LeaseToken[K]) Identifier() Identifier {
	return 0
}

// Compare always succeeds: the lease, not the identity, is the guarantee.
func (t *LeaseToken[K]) Compare(Identifier) error {
	return nil
}
