package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// AuthorityKeyShare is one signing authority's share of a (t, n) threshold
// key, produced by TTPKeyGen or held privately after a distributed setup.
// Index is the authority's 1-based evaluation point, matching the index
// used for Lagrange interpolation in AggregateVerificationKeys and
// AggregateCredentials.
type AuthorityKeyShare struct {
	Index int
	X     *big.Int
	Y     []*big.Int
}

// VerificationKey is the public counterpart of an AuthorityKeyShare:
// vk = (g2, x*g2, [y_j*g2]). Index mirrors the corresponding
// AuthorityKeyShare.Index; it is 0 for a non-threshold or aggregated key,
// which carries no single evaluation point.
type VerificationKey struct {
	Index int
	Alpha bls12381.G2Affine
	Beta  []bls12381.G2Affine
}

// TTPKeyGen runs a trusted dealer's threshold key generation for a (t, n)
// Coconut credential scheme: 1+q independent degree-(t-1) polynomials (one
// for x, one per attribute slot) are sampled, and each of the n
// authorities receives its evaluation at a distinct non-zero point. The
// dealer's own random polynomial coefficients are
// discarded once shares are derived -- nothing beyond the n shares and
// verification keys survives the call.
//
// Each secret (x and every y_j) is Shamir-shared independently: sample a
// random degree-(t-1) polynomial, evaluate it at each participant's index,
// and publish a Feldman commitment to the evaluation (here, the point's
// image under scalar multiplication by g2) alongside the share itself.
func TTPKeyGen(t, n int, params *Params) ([]AuthorityKeyShare, []VerificationKey, error) {
	if t < 1 || n < 1 || t > n || params == nil || params.Q < 1 {
		return nil, nil, ErrInvalidParameters
	}

	xCoeffs, err := samplePolynomial(t)
	if err != nil {
		return nil, nil, err
	}
	yCoeffs := make([][]*big.Int, params.Q)
	for j := range yCoeffs {
		if yCoeffs[j], err = samplePolynomial(t); err != nil {
			return nil, nil, err
		}
	}

	shares := make([]AuthorityKeyShare, n)
	vks := make([]VerificationKey, n)
	for i := 0; i < n; i++ {
		idx := i + 1
		x := polyEval(xCoeffs, int64(idx))
		y := make([]*big.Int, params.Q)
		beta := make([]bls12381.G2Affine, params.Q)
		for j := 0; j < params.Q; j++ {
			y[j] = polyEval(yCoeffs[j], int64(idx))
			beta[j] = scalarMulG2(params.G2, y[j])
		}
		shares[i] = AuthorityKeyShare{Index: idx, X: x, Y: y}
		vks[i] = VerificationKey{Index: idx, Alpha: scalarMulG2(params.G2, x), Beta: beta}
	}

	zeroizeScalars(xCoeffs...)
	for _, c := range yCoeffs {
		zeroizeScalars(c...)
	}

	return shares, vks, nil
}

// KeyGen generates a single, non-threshold signing key: equivalent to
// TTPKeyGen(1, 1, ...) but without the threshold bookkeeping. The returned
// share's Index is 0, signaling it is not part of a threshold set.
func KeyGen(params *Params) (AuthorityKeyShare, VerificationKey, error) {
	if params == nil || params.Q < 1 {
		return AuthorityKeyShare{}, VerificationKey{}, ErrInvalidParameters
	}
	x, err := RandomScalar()
	if err != nil {
		return AuthorityKeyShare{}, VerificationKey{}, err
	}
	y := make([]*big.Int, params.Q)
	beta := make([]bls12381.G2Affine, params.Q)
	for j := 0; j < params.Q; j++ {
		if y[j], err = RandomScalar(); err != nil {
			return AuthorityKeyShare{}, VerificationKey{}, err
		}
		beta[j] = scalarMulG2(params.G2, y[j])
	}
	share := AuthorityKeyShare{Index: 0, X: x, Y: y}
	vk := VerificationKey{Index: 0, Alpha: scalarMulG2(params.G2, x), Beta: beta}
	return share, vk, nil
}
