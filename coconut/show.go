package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Presentation is Theta: a re-randomized credential plus the pi_v proof
// that it was honestly derived from a signature held by the prover,
// bundled for transmission to a verifier alongside the aggregated
// verification key it was shown against.
type Presentation struct {
	Kappa    bls12381.G2Affine
	Nu       bls12381.G1Affine
	SigPrime Signature
	Proof    *ShowProof
}

// ProveCredential runs prove_cred: it re-randomizes sig under a fresh r'
// (so repeated shows of the same credential are unlinkable) and builds a
// pi_v proof of knowledge of the blinding scalar r and the private
// attributes, without revealing either. extra may be nil.
func ProveCredential(
	params *Params,
	avk VerificationKey,
	sig Signature,
	privateM []*big.Int,
	extra ProverExtraProof,
) (*Presentation, error) {
	if len(privateM) > len(avk.Beta) {
		return nil, ErrTooManyAttributes
	}

	rPrime, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	sigPrime := Signature{
		H: scalarMulG1(sig.H, rPrime),
		S: scalarMulG1(sig.S, rPrime),
	}
	zeroizeScalars(rPrime)

	r, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	kappa := sumG2(scalarMulG2(params.G2, r), avk.Alpha, weightedSumG2(avk.Beta[:len(privateM)], privateM))
	nu := scalarMulG1(sigPrime.H, r)

	proof, err := proveShow(params, avk, sigPrime.H, r, privateM, extra)
	zeroizeScalars(r)
	if err != nil {
		return nil, err
	}

	return &Presentation{Kappa: kappa, Nu: nu, SigPrime: sigPrime, Proof: proof}, nil
}

// VerifyCredential runs verify_cred: it checks pi_v, folds the publicly
// supplied attributes into the verification key's beta terms the proof
// left uncommitted, and checks the pairing equation e(h', kappa + aggr) =
// e(s'+nu, g2). The number of private attributes the presentation
// committed to is read off the proof's response vector length, not passed
// separately: it is public metadata, even though the attribute values
// themselves are hidden.
func VerifyCredential(
	params *Params,
	avk VerificationKey,
	pres *Presentation,
	publicM []*big.Int,
	extra VerifierExtraProof,
) bool {
	if pres == nil || pres.Proof == nil {
		return false
	}
	if pres.SigPrime.H.IsInfinity() {
		return false
	}

	if !verifyShow(params, avk, pres.SigPrime.H, pres.Nu, pres.Kappa, pres.Proof, extra) {
		return false
	}

	k := len(pres.Proof.Rm)
	if k+len(publicM) > len(avk.Beta) {
		return false
	}
	var aggr bls12381.G2Affine
	if len(publicM) > 0 {
		aggr = weightedSumG2(avk.Beta[k:k+len(publicM)], publicM)
	}

	lhsG2 := sumG2(pres.Kappa, aggr)
	rhsG1 := sumG1(pres.SigPrime.S, pres.Nu)

	lhs, err := bls12381.Pair([]bls12381.G1Affine{pres.SigPrime.H}, []bls12381.G2Affine{lhsG2})
	if err != nil {
		return false
	}
	rhs, err := bls12381.Pair([]bls12381.G1Affine{rhsG1}, []bls12381.G2Affine{params.G2})
	if err != nil {
		return false
	}

	return lhs.Equal(&rhs)
}
