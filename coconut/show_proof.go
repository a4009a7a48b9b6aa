package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ShowProof is pi_v: the non-interactive proof of knowledge of a
// randomized credential's blinding factor and private attributes,
// produced at show time.
type ShowProof struct {
	C              *big.Int
	Rm             []*big.Int
	Rt             *big.Int
	ExtraResponses []*big.Int
}

// proveShow builds pi_v for kappa = t*g2 + alpha + sum m_i*beta[i] and
// nu = t*h, witnessing the blinding scalar t and the private attributes
// m (in the same order as beta's first len(m) entries). extra may be nil.
func proveShow(
	params *Params,
	avk VerificationKey,
	h bls12381.G1Affine,
	t *big.Int,
	privateM []*big.Int,
	extra ProverExtraProof,
) (*ShowProof, error) {
	if extra == nil {
		extra = NoopExtraProof{}
	}
	if len(privateM) > len(avk.Beta) {
		return nil, ErrTooManyAttributes
	}

	wt, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	wm := make([]*big.Int, len(privateM))
	for i := range wm {
		if wm[i], err = RandomScalar(); err != nil {
			return nil, err
		}
	}

	a := sumG2(scalarMulG2(params.G2, wt), avk.Alpha, weightedSumG2(avk.Beta[:len(wm)], wm))
	b := scalarMulG1(h, wt)

	tr := &transcript{}
	tr.addG1(params.G1)
	tr.addG2(params.G2, avk.Alpha)
	tr.addG2(a)
	tr.addG1(b)
	tr.addG1(params.Hs[:len(avk.Beta)]...)
	tr.addG2(avk.Beta...)
	tr.addPoints(extra.WitnessCommits())
	tr.addPoints(extra.BasePoints())
	c := tr.challenge()

	rt := subMod(wt, mulMod(c, t))
	rm := make([]*big.Int, len(privateM))
	for i := range rm {
		rm[i] = subMod(wm[i], mulMod(c, privateM[i]))
	}

	zeroizeScalars(wt)
	zeroizeScalars(wm...)

	return &ShowProof{
		C:              c,
		Rm:             rm,
		Rt:             rt,
		ExtraResponses: extra.ComputeResponses(c),
	}, nil
}

// verifyShow checks pi_v against a randomized credential's kappa and nu.
// It is a total boolean function; extra may be nil.
func verifyShow(
	params *Params,
	avk VerificationKey,
	h, nu bls12381.G1Affine,
	kappa bls12381.G2Affine,
	proof *ShowProof,
	extra VerifierExtraProof,
) bool {
	if extra == nil {
		extra = NoopExtraProof{}
	}
	if proof == nil || len(proof.Rm) > len(avk.Beta) {
		return false
	}

	oneMinusC := subMod(big.NewInt(1), proof.C)
	aw := sumG2(
		scalarMulG2(kappa, proof.C),
		scalarMulG2(params.G2, proof.Rt),
		scalarMulG2(avk.Alpha, oneMinusC),
		weightedSumG2(avk.Beta[:len(proof.Rm)], proof.Rm),
	)
	bw := sumG1(scalarMulG1(nu, proof.C), scalarMulG1(h, proof.Rt))

	extraWitness := extra.RecomputeWitness(proof.C, proof.ExtraResponses)

	tr := &transcript{}
	tr.addG1(params.G1)
	tr.addG2(params.G2, avk.Alpha)
	tr.addG2(aw)
	tr.addG1(bw)
	tr.addG1(params.Hs[:len(avk.Beta)]...)
	tr.addG2(avk.Beta...)
	tr.addPoints(extraWitness)
	tr.addPoints(extra.BasePoints())
	recomputed := tr.challenge()

	return recomputed.Cmp(proof.C) == 0
}
