package ordering

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/std/rangecheck"
)

// Comparator provides methods for comparing two arbitrary field elements,
// ordered by their canonical representatives in [0, P), where P is the order
// of the native field. Unlike bounded comparators, no assumption on the
// operands is needed; every method is sound for any pair of field elements.
//
// The methods emit constraints only when at least one operand is a
// non-constant variable. On constants they evaluate natively, so the same
// comparator works unchanged in witness-only evaluation.
type Comparator struct {
	api     frontend.API
	checker frontend.Rangechecker

	// pLo, pHi are the 128-bit limbs of the field order: pLo + pHi*2^128 == P
	// over the integers. They act as the strict upper bound of canonical limb
	// pairs.
	pLo, pHi *big.Int
}

// NewComparator creates a Comparator for the native field of api.
//
// The modulus of the native field must be at least 2^129 and smaller than
// 2^256. The lower bound guarantees that a negative limb difference cannot
// alias a 128-bit value after reduction, which the borrow-bit argument of
// assertGtLimbsWithBorrow relies on; the upper bound is what makes two
// 128-bit limbs enough. NewComparator panics when the field is out of range,
// as this is a programming error and not a provable statement.
func NewComparator(api frontend.API) *Comparator {
	p := api.Compiler().Field()
	if p.BitLen() < limbBits+2 {
		panic("ordering: field modulus is too small for a 128-bit limb split")
	}
	if p.BitLen() > 2*limbBits {
		panic("ordering: field modulus does not fit in two 128-bit limbs")
	}
	pLo, pHi := decomposeBig(p)

	log := logger.Logger().With().Str("gadget", "ordering").Logger()
	log.Debug().Int("modulusBits", p.BitLen()).Msg("new field comparator")

	return &Comparator{
		api:     api,
		checker: rangecheck.New(api),
		pLo:     pLo,
		pHi:     pHi,
	}
}

// constInputs returns the constant values of a and b when both are known at
// constraint-generation time. This is the native evaluation shortcut: the
// test engine resolves every variable to a constant, so on that path the
// comparison is computed directly and nothing is emitted.
func (c *Comparator) constInputs(a, b frontend.Variable) (x, y *big.Int, ok bool) {
	x, ok = c.api.Compiler().ConstantValue(a)
	if !ok {
		return nil, nil, false
	}
	y, ok = c.api.Compiler().ConstantValue(b)
	if !ok {
		return nil, nil, false
	}
	return x, y, true
}

// AssertIsGreater defines constraints that are satisfiable only when a > b.
func (c *Comparator) AssertIsGreater(a, b frontend.Variable) {
	if x, y, ok := c.constInputs(a, b); ok {
		if x.Cmp(y) != 1 {
			panic(fmt.Sprintf("ordering: AssertIsGreater failed on constants %s and %s", x, y))
		}
		return
	}
	aLo, aHi := c.Decompose(a)
	bLo, bHi := c.Decompose(b)
	c.assertGtLimbs(limbPair{aLo, aHi}, limbPair{bLo, bHi})
}

// AssertIsLess defines constraints that are satisfiable only when a < b.
func (c *Comparator) AssertIsLess(a, b frontend.Variable) {
	c.AssertIsGreater(b, a)
}

// AssertIsLessEq defines constraints that are satisfiable only when a <= b.
func (c *Comparator) AssertIsLessEq(a, b frontend.Variable) {
	if x, y, ok := c.constInputs(a, b); ok {
		if x.Cmp(y) == 1 {
			panic(fmt.Sprintf("ordering: AssertIsLessEq failed on constants %s and %s", x, y))
		}
		return
	}
	// a <= b is b > a unless a == b. A strict proof cannot be skipped, so on
	// equal operands it is redirected to the trivially true 1 > 0.
	eq := c.api.IsZero(c.api.Sub(a, b))
	u := c.api.Select(eq, 1, b)
	v := c.api.Select(eq, 0, a)
	uLo, uHi := c.Decompose(u)
	vLo, vHi := c.Decompose(v)
	c.assertGtLimbs(limbPair{uLo, uHi}, limbPair{vLo, vHi})
}

// AssertIsGreaterEq defines constraints that are satisfiable only when a >= b.
func (c *Comparator) AssertIsGreaterEq(a, b frontend.Variable) {
	c.AssertIsLessEq(b, a)
}

// IsLess returns 1 if a < b, and returns 0 if a >= b.
//
// The comparison direction is obtained as a hint and then proved: only the
// claimed direction is decomposed and compared, so the cost is one equality
// test plus a single strict limb comparison.
func (c *Comparator) IsLess(a, b frontend.Variable) frontend.Variable {
	if x, y, ok := c.constInputs(a, b); ok {
		if x.Cmp(y) == -1 {
			return 1
		}
		return 0
	}
	res, err := c.api.Compiler().NewHint(isLessHint, 1, a, b)
	if err != nil {
		panic(fmt.Sprintf("error in calling isLessHint: %v", err))
	}
	indicator := res[0]
	c.api.AssertIsBoolean(indicator)

	eq := c.api.IsZero(c.api.Sub(a, b))
	// on equal operands the only consistent indicator is 0
	c.api.AssertIsEqual(c.api.Mul(indicator, eq), 0)

	// prove the claimed direction; equal operands take the vacuous 1 > 0
	u := c.api.Select(eq, 1, c.api.Select(indicator, b, a))
	v := c.api.Select(eq, 0, c.api.Select(indicator, a, b))
	uLo, uHi := c.Decompose(u)
	vLo, vHi := c.Decompose(v)
	c.assertGtLimbs(limbPair{uLo, uHi}, limbPair{vLo, vHi})

	return indicator
}

// IsGreater returns 1 if a > b, and returns 0 if a <= b.
func (c *Comparator) IsGreater(a, b frontend.Variable) frontend.Variable {
	return c.IsLess(b, a)
}

// IsLessEq returns 1 if a <= b, and returns 0 if a > b.
func (c *Comparator) IsLessEq(a, b frontend.Variable) frontend.Variable {
	return c.api.Sub(1, c.IsLess(b, a))
}

// IsGreaterEq returns 1 if a >= b, and returns 0 if a < b.
func (c *Comparator) IsGreaterEq(a, b frontend.Variable) frontend.Variable {
	return c.api.Sub(1, c.IsLess(a, b))
}

// IsEqual returns 1 if a == b, and returns 0 otherwise. Field equality is
// already order-consistent, so no decomposition is performed.
func (c *Comparator) IsEqual(a, b frontend.Variable) frontend.Variable {
	if x, y, ok := c.constInputs(a, b); ok {
		if x.Cmp(y) == 0 {
			return 1
		}
		return 0
	}
	return c.api.IsZero(c.api.Sub(a, b))
}

// Min returns the smaller of a and b.
func (c *Comparator) Min(a, b frontend.Variable) frontend.Variable {
	return c.api.Select(c.IsLess(a, b), a, b)
}

// Max returns the larger of a and b.
func (c *Comparator) Max(a, b frontend.Variable) frontend.Variable {
	return c.api.Select(c.IsLess(a, b), b, a)
}
