// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package newt

// Monoid is the F-bounded constraint for combining types: a type M
// satisfies Monoid[M] when it can produce its identity element and combine
// with another M. The zero value must be able to produce the identity, so
// wrapper types implement Empty on the value receiver.
type Monoid[M any] interface {
	Empty() M
	Combine(M) M
}

// Semigroup is the combine-only constraint for types whose identity element
// is not representable in the payload (e.g. [Min], [First]). Fold these
// with [Concat1], which requires a seed.
type Semigroup[M any] interface {
	Combine(M) M
}

// FoldMap maps each element through f and combines the results, starting
// from the monoid identity. Its shape matches the hof parameter of [Lift]:
// FoldMap[A, M] is a func(func(A) M, []A) M.
func FoldMap[A any, M Monoid[M]](f func(A) M, xs []A) M {
	var zero M
	acc := zero.Empty()
	for _, x := range xs {
		acc = acc.Combine(f(x))
	}
	return acc
}

// Concat combines a slice of monoid values, starting from the identity.
func Concat[M Monoid[M]](xs []M) M {
	var zero M
	acc := zero.Empty()
	for _, x := range xs {
		acc = acc.Combine(x)
	}
	return acc
}

// Concat1 combines a non-empty sequence of semigroup values, seeded with
// the first element.
func Concat1[M Semigroup[M]](x M, xs ...M) M {
	acc := x
	for _, y := range xs {
		acc = acc.Combine(y)
	}
	return acc
}
