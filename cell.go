// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tokcell

// Cell shifts the management of access permissions to its inner value onto a
// token. It stores the value together with the identity snapshot of the
// token it was created under; it never owns a token, so cell lifetime is
// independent of token lifetime — only the identity comparison links them.
//
// The zero Cell is keyed to identity 0; construct cells with [NewCell].
//
// A Cell may be shared across goroutines for reading even though it permits
// interior mutation: mutation is gated on a token the caller must hold
// exclusively, so the token discipline, not the cell, prevents concurrent
// mutation. See the package documentation for the full contract.
type Cell[T any, Tok Token] struct {
	id    Identifier
	value T
}

// NewCell pairs value with tok's identity. Only tokens comparing equal to
// tok — for counter-backed strategies, tok itself — unlock the cell.
func NewCell[T any, Tok Token](value T, tok Tok) *Cell[T, Tok] {
	return &Cell[T, Tok]{id: tok.Identifier(), value: value}
}

// TryGuard compares tok against the cell's stored identity and, on success,
// returns a [Guard] carrying read access to the value and the token itself.
func (c *Cell[T, Tok]) TryGuard(tok Tok) (Guard[T, Tok], error) {
	if err := tok.Compare(c.id); err != nil {
		return Guard[T, Tok]{}, err
	}
	return Guard[T, Tok]{cell: c, token: tok}, nil
}

// TryGuardMut compares tok against the cell's stored identity and, on
// success, returns a [GuardMut] carrying write access to the value and the
// token itself. The caller must hold tok exclusively for the guard's
// lifetime.
func (c *Cell[T, Tok]) TryGuardMut(tok Tok) (GuardMut[T, Tok], error) {
	if err := tok.Compare(c.id); err != nil {
		return GuardMut[T, Tok]{}, err
	}
	return GuardMut[T, Tok]{cell: c, token: tok}, nil
}

// TryBorrow compares tok against the cell's stored identity and, on success,
// returns the value. The returned pointer is for reading; use
// [Cell.TryBorrowMut] for mutation.
func (c *Cell[T, Tok]) TryBorrow(tok Tok) (*T, error) {
	if err := tok.Compare(c.id); err != nil {
		return nil, err
	}
	return &c.value, nil
}

// TryBorrowMut compares tok against the cell's stored identity and, on
// success, returns the value for mutation. The caller must hold tok
// exclusively while the returned pointer is in use.
func (c *Cell[T, Tok]) TryBorrowMut(tok Tok) (*T, error) {
	if err := tok.Compare(c.id); err != nil {
		return nil, err
	}
	return &c.value, nil
}

// Borrow is [Cell.TryBorrow], panicking if the wrong token was used as key.
func (c *Cell[T, Tok]) Borrow(tok Tok) *T {
	v, err := c.TryBorrow(tok)
	if err != nil {
		panic("tokcell: borrow with wrong token: " + err.Error())
	}
	return v
}

// BorrowMut is [Cell.TryBorrowMut], panicking if the wrong token was used
// as key.
func (c *Cell[T, Tok]) BorrowMut(tok Tok) *T {
	v, err := c.TryBorrowMut(tok)
	if err != nil {
		panic("tokcell: borrow with wrong token: " + err.Error())
	}
	return v
}

// GetMut returns the value without any token check. While cells are
// typically shared, a caller with exclusive access to the cell itself has
// already proven exclusive access to the value; this is the cheapest path
// and should be preferred whenever that exclusivity holds.
func (c *Cell[T, Tok]) GetMut() *T {
	return &c.value
}

// IntoInner unwraps the value from the cell. Full ownership of the cell is
// sufficient proof that the inner value can be recovered; the cell must not
// be used afterwards.
func (c *Cell[T, Tok]) IntoInner() T {
	return c.value
}
