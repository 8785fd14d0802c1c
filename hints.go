package ordering

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	// register hints
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hint functions used in this package. This method is
// useful for registering all hints in the solver.
func GetHints() []solver.Hint {
	return []solver.Hint{decomposeHint, isLessHint, borrowHint}
}

// decomposeBig splits x into its low and high 128-bit limbs, such that
// x == lo + hi*2^128 over the integers.
func decomposeBig(x *big.Int) (lo, hi *big.Int) {
	lo = new(big.Int).And(x, limbMask)
	hi = new(big.Int).Rsh(x, limbBits)
	return lo, hi
}

// decomposeHint outputs the two 128-bit limbs of inputs[0]. The outputs are
// not constrained here; [Comparator.Decompose] range-checks them and proves
// that they recompose to a canonical representative.
func decomposeHint(_ *big.Int, inputs, results []*big.Int) error {
	if len(inputs) != 1 {
		return fmt.Errorf("expecting one input")
	}
	if len(results) != 2 {
		return fmt.Errorf("expecting two outputs")
	}
	lo, hi := decomposeBig(inputs[0])
	results[0].Set(lo)
	results[1].Set(hi)
	return nil
}

// isLessHint outputs 1 when inputs[0] < inputs[1] and 0 otherwise, comparing
// the canonical representatives as integers. The output is only a proposal of
// the comparison direction; the caller proves it with a limb comparison.
func isLessHint(_ *big.Int, inputs, results []*big.Int) error {
	if len(inputs) != 2 {
		return fmt.Errorf("expecting two inputs")
	}
	if len(results) != 1 {
		return fmt.Errorf("expecting one output")
	}
	if inputs[0].Cmp(inputs[1]) == -1 {
		results[0].SetUint64(1)
	} else {
		results[0].SetUint64(0)
	}
	return nil
}

// borrowHint outputs the borrow bit of the 256-bit subtraction a - b, given
// the low limbs of a and b: 1 when inputs[0] <= inputs[1], 0 otherwise.
func borrowHint(_ *big.Int, inputs, results []*big.Int) error {
	if len(inputs) != 2 {
		return fmt.Errorf("expecting two inputs")
	}
	if len(results) != 1 {
		return fmt.Errorf("expecting one output")
	}
	if inputs[0].Cmp(inputs[1]) != 1 {
		results[0].SetUint64(1)
	} else {
		results[0].SetUint64(0)
	}
	return nil
}
