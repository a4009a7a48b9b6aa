package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// The group arithmetic in this package is expressed as scalar
// multiplications and sums of G1/G2 points. gnark-crypto's affine types
// don't expose a direct affine addition, so every accumulation goes
// through the Jacobian form and converts back once at the end -- the same
// pattern the BBS+ reference code in the retrieval pack uses throughout
// (G1Jac.FromAffine / AddAssign / ScalarMultiplication, then ToAffine).

// scalarMulG1 returns scalar*base.
func scalarMulG1(base bls12381.G1Affine, scalar *big.Int) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.ScalarMultiplication(&base, modOrder(scalar))
	var out bls12381.G1Affine
	out.FromJacobian(&jac)
	return out
}

// sumG1 returns the sum of points, or the G1 identity if points is empty.
func sumG1(points ...bls12381.G1Affine) bls12381.G1Affine {
	var acc bls12381.G1Jac
	for _, p := range points {
		var pj bls12381.G1Jac
		pj.FromAffine(&p)
		acc.AddAssign(&pj)
	}
	var out bls12381.G1Affine
	out.FromJacobian(&acc)
	return out
}

// weightedSumG1 returns sum_i scalars[i]*points[i]. Panics if the slices
// have different lengths -- a programmer error, never caller-controlled.
func weightedSumG1(points []bls12381.G1Affine, scalars []*big.Int) bls12381.G1Affine {
	if len(points) != len(scalars) {
		panic("coconut: weightedSumG1: length mismatch")
	}
	var acc bls12381.G1Jac
	for i, p := range points {
		var pj bls12381.G1Jac
		pj.ScalarMultiplication(&p, modOrder(scalars[i]))
		acc.AddAssign(&pj)
	}
	var out bls12381.G1Affine
	out.FromJacobian(&acc)
	return out
}

// scalarMulG2 returns scalar*base.
func scalarMulG2(base bls12381.G2Affine, scalar *big.Int) bls12381.G2Affine {
	var jac bls12381.G2Jac
	jac.ScalarMultiplication(&base, modOrder(scalar))
	var out bls12381.G2Affine
	out.FromJacobian(&jac)
	return out
}

// sumG2 returns the sum of points, or the G2 identity if points is empty.
func sumG2(points ...bls12381.G2Affine) bls12381.G2Affine {
	var acc bls12381.G2Jac
	for _, p := range points {
		var pj bls12381.G2Jac
		pj.FromAffine(&p)
		acc.AddAssign(&pj)
	}
	var out bls12381.G2Affine
	out.FromJacobian(&acc)
	return out
}

// weightedSumG2 returns sum_i scalars[i]*points[i].
func weightedSumG2(points []bls12381.G2Affine, scalars []*big.Int) bls12381.G2Affine {
	if len(points) != len(scalars) {
		panic("coconut: weightedSumG2: length mismatch")
	}
	var acc bls12381.G2Jac
	for i, p := range points {
		var pj bls12381.G2Jac
		pj.ScalarMultiplication(&p, modOrder(scalars[i]))
		acc.AddAssign(&pj)
	}
	var out bls12381.G2Affine
	out.FromJacobian(&acc)
	return out
}
