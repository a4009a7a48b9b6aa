package coconut

import (
	"math/big"
)

// polyEval evaluates a polynomial with the given coefficients (lowest
// degree first) at x, mod o: sum_j coeffs[j] * x^j.
func polyEval(coeffs []*big.Int, x int64) *big.Int {
	result := big.NewInt(0)
	xb := big.NewInt(x)
	power := big.NewInt(1)
	for _, c := range coeffs {
		term := mulMod(c, power)
		result = addMod(result, term)
		power = mulMod(power, xb)
	}
	return result
}

// samplePolynomial draws t uniformly random coefficients mod o,
// coeffs[0] being the constant term (the shared secret for Shamir sharing).
func samplePolynomial(t int) ([]*big.Int, error) {
	coeffs := make([]*big.Int, t)
	for i := range coeffs {
		c, err := RandomScalar()
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// lagrangeBasis computes the Lagrange coefficients, evaluated at x=0, for
// interpolating the constant term of a polynomial from its values at the
// given 1-based, pairwise-distinct, nonzero indices:
//
//	l_i = prod_{j != i} (-x_j) * (x_i - x_j)^-1   mod o
//
// Indices must be distinct mod o; a 0-based index (or any index congruent
// to 0 mod o) is a protocol break and is rejected.
func lagrangeBasis(indices []int) ([]*big.Int, error) {
	n := len(indices)
	if n == 0 {
		return nil, ErrDegenerateShares
	}

	seen := make(map[int]bool, n)
	for _, idx := range indices {
		if idx == 0 {
			return nil, ErrDegenerateShares
		}
		if seen[idx] {
			return nil, ErrDegenerateShares
		}
		seen[idx] = true
	}

	coeffs := make([]*big.Int, n)
	for i, xi := range indices {
		xiB := big.NewInt(int64(xi))
		num := big.NewInt(1)
		den := big.NewInt(1)
		for j, xj := range indices {
			if i == j {
				continue
			}
			xjB := big.NewInt(int64(xj))
			num = mulMod(num, negMod(xjB))
			den = mulMod(den, subMod(xiB, xjB))
		}
		denInv := new(big.Int).ModInverse(den, Order)
		if denInv == nil {
			return nil, ErrDegenerateShares
		}
		coeffs[i] = mulMod(num, denInv)
	}
	return coeffs, nil
}
