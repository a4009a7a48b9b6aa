package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Signature is an unblinded Coconut credential (or a combination thereof):
// sigma = (h, s).
type Signature struct {
	H bls12381.G1Affine
	S bls12381.G1Affine
}

// PartialSignature is the blind signature sigma~ = (h, (a~, b~)) an
// authority returns from BlindSign, still under the requester's ElGamal
// key and awaiting Unblind.
type PartialSignature struct {
	H bls12381.G1Affine
	A bls12381.G1Affine
	B bls12381.G1Affine
}

// Unblind removes the ElGamal blinding from a partial signature using the
// requester's private key d, yielding sigma = (h, b~ - d*a~).
func Unblind(sig PartialSignature, d *big.Int) Signature {
	da := scalarMulG1(sig.A, d)
	var daNeg bls12381.G1Affine
	daNeg.Neg(&da)
	return Signature{H: sig.H, S: sumG1(sig.B, daNeg)}
}
