// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

import (
	"errors"
	"fmt"
)

// MismatchError reports that a token was presented to a cell created under
// a different token of the same kind. It carries both identities: Cell is
// the identity stored in the cell, Token the identity of the presented
// token. Only counter-backed strategies can produce it.
//
// A mismatch is a programming error, not a data race: the cell was keyed to
// one instance and unlocked with another.
type MismatchError struct {
	Cell  Identifier
	Token Identifier
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("tokcell: token identifier mismatch (cell %d, token %d)", e.Cell, e.Token)
}

// ErrLeaseUnavailable is returned by [NewLease] and [WithLease] while
// another instance of the same kind is live.
var ErrLeaseUnavailable = errors.New("tokcell: singleton lease unavailable")

// ErrOutsideScope is returned by [NewScoped]: scoped tokens are
// constructible only through [WithScoped].
var ErrOutsideScope = errors.New("tokcell: scoped token constructible only via WithScoped")

// ErrConsumed is returned by TryApply on a deferred map that has already
// been applied or discarded.
var ErrConsumed = errors.New("tokcell: deferred map already consumed")
