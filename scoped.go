// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

// ScopedToken is the scope-bound strategy: an instance exists only inside a
// [WithScoped] invocation, which structurally guarantees a single live
// instance per scope — there is no other constructor, and [NewScoped] fails
// unconditionally.
//
// Go has no compile-time scope branding, so each scope's token carries a
// distinct counter identity and cross-scope presentation is rejected at
// runtime with a [MismatchError], at the cost of one integer comparison per
// access.
type ScopedToken[K any] struct {
	id Identifier
}

// NewScoped always fails with [ErrOutsideScope]: scoped tokens are
// constructible only through [WithScoped]. It exists for surface uniformity
// with the other strategies.
func NewScoped[K any]() (*ScopedToken[K], error) {
	return nil, ErrOutsideScope
}

// WithScoped constructs a fresh scoped token of kind K and passes it to
// body, returning body's result. The token must not be retained beyond
// body's execution. The error is always nil.
func WithScoped[K, R any](body func(*ScopedToken[K]) R) (R, error) {
	return body(&ScopedToken[K]{id: nextIdentifier()}), nil
}

// Identifier returns the identity issued to this scope.
func (t *ScopedToken[K]) Identifier() Identifier {
	return t.id
}

// Compare reports whether id belongs to this scope.
func (t *ScopedToken[K]) Compare(id Identifier) error {
	if id != t.id {
		return &MismatchError{Cell: id, Token: t.id}
	}
	return nil
}
