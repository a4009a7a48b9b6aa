package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BlindSignRequest is Lambda: a blinded attribute commitment, the ElGamal
// ciphertexts of its private attributes, and the pi_s proof that they are
// well-formed with respect to one another.
type BlindSignRequest struct {
	Cm          bls12381.G1Affine
	Ciphertexts []ElGamalCiphertext
	Proof       *IssuanceProof
}

// PrepareBlindSign builds a blind-signature request for the attribute
// vector private_m||public_m under the requester's ElGamal public key
// gamma. extra may be nil. The commitment randomizer and
// per-ciphertext randomizers are zeroized before returning; only Lambda
// survives the call.
func PrepareBlindSign(
	params *Params,
	gamma bls12381.G1Affine,
	privateM, publicM []*big.Int,
	extra ProverExtraProof,
) (*BlindSignRequest, error) {
	total := len(privateM) + len(publicM)
	if total == 0 || total > params.Q {
		return nil, ErrTooManyAttributes
	}

	attrs := make([]*big.Int, 0, total)
	attrs = append(attrs, privateM...)
	attrs = append(attrs, publicM...)

	r, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	cm := sumG1(scalarMulG1(params.G1, r), weightedSumG1(params.Hs[:total], attrs))

	h, err := params.MessageBase(cm)
	if err != nil {
		return nil, err
	}

	ciphertexts := make([]ElGamalCiphertext, len(privateM))
	ks := make([]*big.Int, len(privateM))
	for i, m := range privateM {
		ct, k, err := ElGamalEncrypt(params, gamma, m, h)
		if err != nil {
			zeroizeScalars(r)
			zeroizeScalars(ks[:i]...)
			return nil, err
		}
		ciphertexts[i], ks[i] = ct, k
	}

	proof, err := proveIssuance(params, gamma, ciphertexts, cm, h, ks, r, attrs, len(privateM), extra)
	zeroizeScalars(r)
	zeroizeScalars(ks...)
	if err != nil {
		return nil, err
	}

	return &BlindSignRequest{Cm: cm, Ciphertexts: ciphertexts, Proof: proof}, nil
}

// BlindSign is one authority's contribution to a blind signature: it
// verifies the request's pi_s, then folds the authority's key share and
// the publicly supplied attributes into a partial signature over the
// full attribute vector. extra may be nil.
//
// The y_j coefficients of the authority's key share are consumed in
// attribute order -- private attributes (matched one-for-one against the
// request's ciphertexts) followed by public attributes -- mirroring the
// reference implementation's blind_sign exactly; reordering these breaks
// interoperability silently.
func BlindSign(
	params *Params,
	share AuthorityKeyShare,
	gamma bls12381.G1Affine,
	req *BlindSignRequest,
	publicM []*big.Int,
	extra VerifierExtraProof,
) (*PartialSignature, error) {
	if !verifyIssuance(params, gamma, req.Ciphertexts, req.Cm, req.Proof, extra) {
		return nil, ErrInvalidRequestProof
	}

	h, err := params.MessageBase(req.Cm)
	if err != nil {
		return nil, err
	}

	numPrivate := len(req.Ciphertexts)
	if numPrivate+len(publicM) > len(share.Y) {
		return nil, ErrTooManyAttributes
	}

	t1 := make([]bls12381.G1Affine, len(publicM))
	for j, m := range publicM {
		t1[j] = scalarMulG1(h, m)
	}

	aTerms := make([]bls12381.G1Affine, numPrivate)
	for i, ct := range req.Ciphertexts {
		aTerms[i] = ct.A
	}
	aTilde := weightedSumG1(aTerms, share.Y[:numPrivate])

	bTerms := make([]bls12381.G1Affine, 0, numPrivate+len(publicM))
	bWeights := make([]*big.Int, 0, numPrivate+len(publicM))
	for i, ct := range req.Ciphertexts {
		bTerms = append(bTerms, ct.B)
		bWeights = append(bWeights, share.Y[i])
	}
	for j, p := range t1 {
		bTerms = append(bTerms, p)
		bWeights = append(bWeights, share.Y[numPrivate+j])
	}
	bTilde := sumG1(scalarMulG1(h, share.X), weightedSumG1(bTerms, bWeights))

	return &PartialSignature{H: h, A: aTilde, B: bTilde}, nil
}
