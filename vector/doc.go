// Package vector implements Vector[T], a fixed-length sequence of scalars
// with in-place arithmetic, the dot product, the three classic norms, and
// multi-vector operations (linear combination, angle cosine, cross product).
//
// Length is fixed at construction. Operations on mismatched lengths return
// ErrDimensionMismatch instead of truncating.
package vector
