// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt

import "golang.org/x/exp/constraints"

// Stock wrapper vocabulary.
//
// Each wrapper is a single-field struct over its payload, so For accepts
// the pair and the combinators apply. Wrappers whose identity element is
// representable in the payload implement [Monoid]; the rest implement only
// [Semigroup] and fold with [Concat1].

// Numeric constrains the payloads of [Sum] and [Product].
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Sum tags a numeric payload with addition as the combine operation.
type Sum[N Numeric] struct{ Value N }

// Empty returns the additive identity.
func (Sum[N]) Empty() Sum[N] { return Sum[N]{} }

// Combine adds.
func (s Sum[N]) Combine(t Sum[N]) Sum[N] { return Sum[N]{s.Value + t.Value} }

// Product tags a numeric payload with multiplication as the combine
// operation.
type Product[N Numeric] struct{ Value N }

// Empty returns the multiplicative identity.
func (Product[N]) Empty() Product[N] { return Product[N]{1} }

// Combine multiplies.
func (p Product[N]) Combine(q Product[N]) Product[N] { return Product[N]{p.Value * q.Value} }

// Any tags a bool with logical OR as the combine operation.
type Any struct{ Value bool }

// Empty returns false, the OR identity.
func (Any) Empty() Any { return Any{} }

// Combine ORs.
func (a Any) Combine(b Any) Any { return Any{a.Value || b.Value} }

// All tags a bool with logical AND as the combine operation.
type All struct{ Value bool }

// Empty returns true, the AND identity.
func (All) Empty() All { return All{true} }

// Combine ANDs.
func (a All) Combine(b All) All { return All{a.Value && b.Value} }

// Min tags an ordered payload with minimum as the combine operation.
// Min has no identity element, so it is a [Semigroup].
type Min[T constraints.Ordered] struct{ Value T }

// Combine keeps the smaller value.
func (m Min[T]) Combine(n Min[T]) Min[T] {
	if n.Value < m.Value {
		return n
	}
	return m
}

// Max tags an ordered payload with maximum as the combine operation.
// Max has no identity element, so it is a [Semigroup].
type Max[T constraints.Ordered] struct{ Value T }

// Combine keeps the larger value.
func (m Max[T]) Combine(n Max[T]) Max[T] {
	if n.Value > m.Value {
		return n
	}
	return m
}

// First tags a payload with keep-the-first as the combine operation.
type First[T any] struct{ Value T }

// Combine keeps the receiver.
func (f First[T]) Combine(First[T]) First[T] { return f }

// Last tags a payload with keep-the-last as the combine operation.
type Last[T any] struct{ Value T }

// Combine keeps the argument.
func (Last[T]) Combine(m Last[T]) Last[T] { return m }
