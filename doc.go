// Package ordering implements a total-order comparison gadget for native
// field elements.
//
// A prime field has no order beyond equality: reduction modulo the field
// order makes "less than" meaningless at the level of field arithmetic. This
// package defines the order of the canonical representatives, i.e. a < b
// holds iff the integer representative of a in [0, P) is smaller than the one
// of b, where P is the order of the native field.
//
// The gadget splits each operand into two 128-bit limbs, proves the split is
// canonical (it recomposes to the operand exactly, not merely modulo P), and
// compares the limb pairs as 256-bit integers with a single non-deterministic
// borrow bit and two range checks. Range checking is delegated to
// [github.com/consensys/gnark/std/rangecheck], which picks the cheapest
// strategy the backend supports.
//
// All comparison methods work for any two field elements; unlike
// [github.com/consensys/gnark/std/math/cmp.BoundedComparator], no bound on
// the difference of the operands is required. The price is the canonical
// decomposition of each operand, which makes these methods considerably more
// expensive; when a difference bound is known, prefer the cmp package.
package ordering
