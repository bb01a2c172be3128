// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt

import "reflect"

// Structural layout equality. This file is the soundness core of the
// package: a witness exists exactly when layoutEqual accepts the pair, and
// every unsafe reinterpretation in the package is guarded by such a witness.
//
// The rules are deliberately conservative. Two types are layout-equal when
// they are identical, when one is a single-field struct over something
// layout-equal to the other (the newtype rule), or when both are built by
// the same type constructor from layout-equal components. Pairs that merely
// happen to have the same size and alignment are rejected.

// layoutMismatch panics with a diagnostic naming both types.
func layoutMismatch(a, b reflect.Type) {
	panic("newt: " + a.String() + " is not representationally equal to " + b.String())
}

// typePair keys the visited set for recursive type graphs.
type typePair struct {
	a, b reflect.Type
}

// layoutEqual reports whether a and b occupy identical memory layout.
//
// seen holds type pairs currently under comparison. A revisited pair is
// treated as equal: the pair can only be falsified by a component mismatch,
// and any mismatch on the cycle is found on the first pass through it.
func layoutEqual(a, b reflect.Type, seen map[typePair]bool) bool {
	if a == b {
		return true
	}
	if a.Size() != b.Size() || a.Align() != b.Align() {
		return false
	}
	pair := typePair{a, b}
	if seen[pair] {
		return true
	}
	seen[pair] = true

	// Newtype rule: a single-field struct shares layout with its field.
	// Applied on either side so wrapper-to-wrapper pairs reduce too.
	if a.Kind() == reflect.Struct && a.NumField() == 1 {
		return layoutEqual(a.Field(0).Type, b, seen)
	}
	if b.Kind() == reflect.Struct && b.NumField() == 1 {
		return layoutEqual(a, b.Field(0).Type, seen)
	}

	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Uintptr, reflect.UnsafePointer:
		// Kind determines layout for scalar and string kinds.
		return true
	case reflect.Pointer, reflect.Slice:
		return layoutEqual(a.Elem(), b.Elem(), seen)
	case reflect.Array:
		return a.Len() == b.Len() && layoutEqual(a.Elem(), b.Elem(), seen)
	case reflect.Chan:
		return a.ChanDir() == b.ChanDir() && layoutEqual(a.Elem(), b.Elem(), seen)
	case reflect.Map:
		// Go's runtime hasher and equality are structural, so layout-equal
		// keys hash and compare identically; no nominal key restriction is
		// needed.
		return layoutEqual(a.Key(), b.Key(), seen) && layoutEqual(a.Elem(), b.Elem(), seen)
	case reflect.Func:
		if a.NumIn() != b.NumIn() || a.NumOut() != b.NumOut() || a.IsVariadic() != b.IsVariadic() {
			return false
		}
		for i := 0; i < a.NumIn(); i++ {
			if !layoutEqual(a.In(i), b.In(i), seen) {
				return false
			}
		}
		for i := 0; i < a.NumOut(); i++ {
			if !layoutEqual(a.Out(i), b.Out(i), seen) {
				return false
			}
		}
		return true
	case reflect.Struct:
		// Multi-field structs: same field count, same offsets, layout-equal
		// field types. Field names and tags are irrelevant to layout.
		if a.NumField() != b.NumField() {
			return false
		}
		for i := 0; i < a.NumField(); i++ {
			fa, fb := a.Field(i), b.Field(i)
			if fa.Offset != fb.Offset || !layoutEqual(fa.Type, fb.Type, seen) {
				return false
			}
		}
		return true
	case reflect.Interface:
		// Distinct interface types carry distinct method tables; only
		// identical interfaces (handled by a == b above) are accepted.
		return false
	}
	return false
}
