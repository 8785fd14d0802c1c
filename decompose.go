package ordering

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// limbBits is the width of one limb of the 256-bit split representation.
const limbBits = 128

var (
	// limbRadix is 2^128, the weight of the high limb.
	limbRadix = new(big.Int).Lsh(big.NewInt(1), limbBits)
	// limbMask is 2^128 - 1.
	limbMask = new(big.Int).Sub(limbRadix, big.NewInt(1))
)

// limbPair is the split representation of a 256-bit integer: lo + hi*2^128,
// with both limbs in [0, 2^128).
type limbPair struct {
	lo, hi frontend.Variable
}

// Decompose splits x into its low and high 128-bit limbs and proves that the
// decomposition is canonical: lo and hi fit in 128 bits each and
// lo + hi*2^128 equals the representative of x in [0, P) over the integers,
// not merely modulo P.
//
// When x is a constant, the limbs are computed in place and no constraints
// are added.
func (c *Comparator) Decompose(x frontend.Variable) (lo, hi frontend.Variable) {
	if cx, ok := c.api.Compiler().ConstantValue(x); ok {
		clo, chi := decomposeBig(cx)
		return clo, chi
	}
	res, err := c.api.Compiler().NewHint(decomposeHint, 2, x)
	if err != nil {
		panic(fmt.Sprintf("error in calling decomposeHint: %v", err))
	}
	c.assertCanonical(x, res[0], res[1])
	return res[0], res[1]
}

// assertCanonical constrains (lo, hi) to be the canonical decomposition of x.
// Soundness of every comparison rests on the last step: without the
// strict bound by the modulus limbs, a malicious prover could supply limbs
// recomposing to x + k*P for some k > 0 and reverse the outcome of any
// comparison of x.
func (c *Comparator) assertCanonical(x, lo, hi frontend.Variable) {
	c.checker.Check(lo, limbBits)
	c.checker.Check(hi, limbBits)
	c.api.AssertIsEqual(x, c.api.Add(lo, c.api.Mul(hi, limbRadix)))
	c.assertGtLimbs(limbPair{c.pLo, c.pHi}, limbPair{lo, hi})
}

// assertGtLimbs proves a > b as 256-bit integers, for canonical limb pairs a
// and b. The borrow bit of the low-limb subtraction is obtained as a hint and
// its correctness is enforced by the two range checks in
// assertGtLimbsWithBorrow.
func (c *Comparator) assertGtLimbs(a, b limbPair) {
	res, err := c.api.Compiler().NewHint(borrowHint, 1, a.lo, b.lo)
	if err != nil {
		panic(fmt.Sprintf("error in calling borrowHint: %v", err))
	}
	c.assertGtLimbsWithBorrow(a, b, res[0])
}

// assertGtLimbsWithBorrow proves a > b given a candidate borrow bit.
//
// When borrow == 0, the range checks force
//
//	0 <= a.lo - b.lo - 1 < 2^128  and  0 <= a.hi - b.hi < 2^128,
//
// i.e. a.lo > b.lo and a.hi >= b.hi. When borrow == 1, they force
//
//	0 <= a.lo - b.lo - 1 + 2^128 < 2^128  and  0 <= a.hi - b.hi - 1 < 2^128,
//
// i.e. a.lo <= b.lo and a.hi > b.hi. For any pair with a > b exactly one
// borrow value satisfies both checks, and for a <= b neither does.
func (c *Comparator) assertGtLimbsWithBorrow(a, b limbPair, borrow frontend.Variable) {
	c.api.AssertIsBoolean(borrow)
	rLo := c.api.Sub(c.api.Add(a.lo, c.api.Mul(borrow, limbRadix)), b.lo, 1)
	rHi := c.api.Sub(a.hi, b.hi, borrow)
	c.checker.Check(rLo, limbBits)
	c.checker.Check(rHi, limbBits)
}
