// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

import "sync/atomic"

// Identifier is the identity a token carries and a [Cell] snapshots at
// construction. Counter-issued tokens carry the issued integer; strategies
// with structural or lease-based uniqueness carry zero and never compare it.
type Identifier uint64

// Token is implemented by every token strategy. Possession of a token value
// — not acquisition of a lock — is what grants access to the cells created
// under it.
//
// Identifier returns the identity snapshot a cell stores at construction.
// Compare reports whether a cell's stored identity matches this token:
// nil on match, a typed error on mismatch. Strategies whose uniqueness is
// structural (scoped by construction, lease-enforced, or caller-guaranteed)
// compare trivially and never fail.
type Token interface {
	Identifier() Identifier
	Compare(Identifier) error
}

// counter issues process-wide unique identities. Shared by all counter
// kinds and scopes: uniqueness holds across kinds, which is strictly
// stronger than the per-kind uniqueness the comparison relies on.
// Relaxed ordering would suffice; each issued value only has to be unique.
var counter atomic.Uint64

func nextIdentifier() Identifier {
	return Identifier(counter.Add(1) - 1)
}
