// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt

import (
	"reflect"
	"unsafe"
)

// Iso is a witness that the wrapper type W and the payload type P occupy
// identical memory layout. Holding an Iso[W, P] entitles the holder to
// reinterpret values of either type as the other at zero cost.
//
// The zero value of Iso is not a valid witness: witnesses are obtained from
// [For] (which verifies the layout relation and panics if it does not hold)
// or derived from already-verified witnesses via [Iso.Flip], [Trans],
// [SliceOf], [PtrOf], [MapOf], and [ChanOf]. Every coercion path checks the
// witness and panics on a forged zero value, so a false equality cannot be
// smuggled in by constructing the struct literal directly.
type Iso[W, P any] struct {
	ok bool
}

// For constructs the witness that W and P are representationally equal.
//
// The relation is verified structurally: W and P must be identical, or one
// must be a single-field struct whose field is representationally equal to
// the other (applied recursively, so wrappers of wrappers are accepted), or
// both must be built from representationally equal components by the same
// type constructor. See the package documentation for the full rule set.
//
// For panics with a diagnostic naming both types when the relation does not
// hold. Witnesses are typically constructed once in package variables, so a
// layout violation fails at program start rather than at a use site.
func For[W, P any]() Iso[W, P] {
	w := reflect.TypeOf((*W)(nil)).Elem()
	p := reflect.TypeOf((*P)(nil)).Elem()
	if !layoutEqual(w, p, make(map[typePair]bool)) {
		layoutMismatch(w, p)
	}
	return Iso[W, P]{ok: true}
}

// Refl is the reflexive witness: every type is representationally equal to
// itself. No validation is needed.
func Refl[T any]() Iso[T, T] {
	return Iso[T, T]{ok: true}
}

// Flip reverses the direction of the witness. Representational equality is
// symmetric, so the flipped witness needs no re-validation.
func (i Iso[W, P]) Flip() Iso[P, W] {
	i.check()
	return Iso[P, W]{ok: true}
}

// Trans composes two witnesses transitively: if A and B share layout and B
// and C share layout, then A and C do.
func Trans[A, B, C any](ab Iso[A, B], bc Iso[B, C]) Iso[A, C] {
	ab.check()
	bc.check()
	return Iso[A, C]{ok: true}
}

// Wrap reinterprets a payload value as the wrapper type.
// No copy beyond the move of the value itself, no validation, no failure.
func (i Iso[W, P]) Wrap(p P) W {
	i.check()
	return coerce[W](p)
}

// Unwrap reinterprets a wrapper value as the payload type.
// The inverse of [Iso.Wrap]; Unwrap(Wrap(x)) is x bit for bit.
func (i Iso[W, P]) Unwrap(w W) P {
	i.check()
	return coerce[P](w)
}

// check guards every coercion path against forged zero-value witnesses.
func (i Iso[W, P]) check() {
	if !i.ok {
		panic("newt: use of unvalidated Iso witness; construct with For")
	}
}

// coerce reinterprets v as To without copying or validating. Every caller
// must hold a checked witness covering the two layouts; this is the single
// primitive all combinators route through.
func coerce[To, From any](v From) To {
	return *(*To)(unsafe.Pointer(&v))
}
