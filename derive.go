// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt

// Derived container witnesses.
//
// Representational equality composes through type constructors applied
// identically to both sides: if W and P share layout, so do []W and []P,
// *W and *P, and so on. The element witness is already proven, so these
// derivations skip re-validation. Containers not covered here (arrays,
// multi-parameter shapes) go through [For], which validates the composite
// pair structurally.

// SliceOf derives the slice-level witness from an element witness.
// Coercing a slice reinterprets the whole slice header; the backing array
// is shared and no element is visited.
func SliceOf[W, P any](i Iso[W, P]) Iso[[]W, []P] {
	i.check()
	return Iso[[]W, []P]{ok: true}
}

// PtrOf derives the pointer-level witness from an element witness.
// The coerced pointer aliases the original value.
func PtrOf[W, P any](i Iso[W, P]) Iso[*W, *P] {
	i.check()
	return Iso[*W, *P]{ok: true}
}

// MapOf derives the map-level witness from a value witness. The key type
// is shared. The coerced map aliases the original: writes through one are
// visible through the other.
//
// K cannot be inferred from the argument; call sites name it explicitly,
// e.g. MapOf[string](iso).
func MapOf[K comparable, W, P any](i Iso[W, P]) Iso[map[K]W, map[K]P] {
	i.check()
	return Iso[map[K]W, map[K]P]{ok: true}
}

// ChanOf derives the channel-level witness from an element witness.
// The coerced channel is the same channel: sends on one side are received
// on the other, reinterpreted element-wise for free.
func ChanOf[W, P any](i Iso[W, P]) Iso[chan W, chan P] {
	i.check()
	return Iso[chan W, chan P]{ok: true}
}
