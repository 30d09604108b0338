// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

// UncheckedToken is the escape hatch: construction always succeeds,
// comparison always succeeds, and no runtime state is kept. The caller is
// responsible for not mixing instances — for example by holding exactly one
// token per exclusive-access domain, where uniqueness is guaranteed
// externally. Every access through the wrong instance that the other
// strategies would reject goes undetected here.
type UncheckedToken[K any] struct{}

// NewUnchecked constructs an unchecked token of kind K. It never fails.
func NewUnchecked[K any]() (*UncheckedToken[K], error) {
	return &UncheckedToken[K]{}, nil
}

// WithUnchecked constructs an unchecked token of kind K and passes it to
// body, returning body's result. The error is always nil.
func WithUnchecked[K, R any](body func(*UncheckedToken[K]) R) (R, error) {
	tok, _ := NewUnchecked[K]()
	return body(tok), nil
}

// Identifier returns zero: unchecked identity is the unit value.
func (t *UncheckedToken[K]) Identifier() Identifier {
	return 0
}

// Compare always succeeds; instance discipline is the caller's contract.
func (t *UncheckedToken[K]) Compare(Identifier) error {
	return nil
}
