package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// IssuanceProof is pi_s: the non-interactive proof that a commitment cm
// and its accompanying ElGamal ciphertexts are well-formed with respect to
// a set of committed attributes.
type IssuanceProof struct {
	C              *big.Int
	Rk             []*big.Int
	Rm             []*big.Int
	Rr             *big.Int
	ExtraResponses []*big.Int
}

// proveIssuance builds pi_s for a commitment cm = r*g1 + sum attr_i*hs[i]
// and a list of ElGamal ciphertexts of the private attributes under gamma
// with base h, using the given randomizers k (one per private attribute,
// in the same order as the ciphertexts) and r. attributes must be
// private||public, matching the order cm was built with. extra may be nil
// (treated as NoopExtraProof).
func proveIssuance(
	params *Params,
	gamma bls12381.G1Affine,
	ciphertexts []ElGamalCiphertext,
	cm bls12381.G1Affine,
	h bls12381.G1Affine,
	k []*big.Int,
	r *big.Int,
	attributes []*big.Int,
	numPrivate int,
	extra ProverExtraProof,
) (*IssuanceProof, error) {
	if extra == nil {
		extra = NoopExtraProof{}
	}
	if len(ciphertexts) != len(k) || len(ciphertexts) != numPrivate {
		return nil, ErrLengthMismatch
	}

	wr, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	wk := make([]*big.Int, len(k))
	for i := range wk {
		if wk[i], err = RandomScalar(); err != nil {
			return nil, err
		}
	}
	wm := make([]*big.Int, len(attributes))
	for i := range wm {
		if wm[i], err = RandomScalar(); err != nil {
			return nil, err
		}
	}

	aw := make([]bls12381.G1Affine, len(wk))
	for i := range wk {
		aw[i] = scalarMulG1(params.G1, wk[i])
	}
	bw := make([]bls12381.G1Affine, numPrivate)
	for i := 0; i < numPrivate; i++ {
		bw[i] = sumG1(scalarMulG1(gamma, wk[i]), scalarMulG1(h, wm[i]))
	}
	cw := sumG1(scalarMulG1(params.G1, wr), weightedSumG1(params.Hs[:len(attributes)], wm))

	tr := &transcript{}
	tr.addG1(params.G1)
	tr.addG2(params.G2)
	tr.addG1(cm, h, cw)
	tr.addG1(params.Hs...)
	tr.addG1(aw...)
	tr.addG1(bw...)
	tr.addPoints(extra.WitnessCommits())
	tr.addPoints(extra.BasePoints())
	c := tr.challenge()

	rr := subMod(wr, mulMod(c, r))
	rk := make([]*big.Int, len(k))
	for i := range rk {
		rk[i] = subMod(wk[i], mulMod(c, k[i]))
	}
	rm := make([]*big.Int, len(attributes))
	for i := range rm {
		rm[i] = subMod(wm[i], mulMod(c, attributes[i]))
	}

	zeroizeScalars(wr)
	zeroizeScalars(wk...)
	zeroizeScalars(wm...)

	return &IssuanceProof{
		C:              c,
		Rk:             rk,
		Rm:             rm,
		Rr:             rr,
		ExtraResponses: extra.ComputeResponses(c),
	}, nil
}

// verifyIssuance checks pi_s against a commitment cm and its ciphertexts.
// It is a total boolean function; extra may be nil (treated as
// NoopExtraProof).
func verifyIssuance(
	params *Params,
	gamma bls12381.G1Affine,
	ciphertexts []ElGamalCiphertext,
	cm bls12381.G1Affine,
	proof *IssuanceProof,
	extra VerifierExtraProof,
) bool {
	if extra == nil {
		extra = NoopExtraProof{}
	}
	if proof == nil || len(ciphertexts) != len(proof.Rk) {
		return false
	}
	if len(proof.Rm) == 0 || len(proof.Rm) < len(ciphertexts) || len(proof.Rm) > len(params.Hs) {
		return false
	}

	h, err := params.MessageBase(cm)
	if err != nil {
		return false
	}

	aw := make([]bls12381.G1Affine, len(ciphertexts))
	bw := make([]bls12381.G1Affine, len(ciphertexts))
	for i, ct := range ciphertexts {
		aw[i] = sumG1(scalarMulG1(ct.A, proof.C), scalarMulG1(params.G1, proof.Rk[i]))
		bw[i] = sumG1(
			scalarMulG1(ct.B, proof.C),
			scalarMulG1(gamma, proof.Rk[i]),
			scalarMulG1(h, proof.Rm[i]),
		)
	}
	cw := sumG1(
		scalarMulG1(cm, proof.C),
		scalarMulG1(params.G1, proof.Rr),
		weightedSumG1(params.Hs[:len(proof.Rm)], proof.Rm),
	)

	extraWitness := extra.RecomputeWitness(proof.C, proof.ExtraResponses)

	tr := &transcript{}
	tr.addG1(params.G1)
	tr.addG2(params.G2)
	tr.addG1(cm, h, cw)
	tr.addG1(params.Hs...)
	tr.addG1(aw...)
	tr.addG1(bw...)
	tr.addPoints(extraWitness)
	tr.addPoints(extra.BasePoints())
	recomputed := tr.challenge()

	return recomputed.Cmp(proof.C) == 0
}
