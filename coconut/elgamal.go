package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ElGamalKeyPair is a requester's ElGamal keypair over G1, used to blind
// private attributes during issuance.
type ElGamalKeyPair struct {
	D     *big.Int // private key
	Gamma bls12381.G1Affine // public key, D*g1
}

// ElGamalKeyGen samples a fresh ElGamal keypair.
func ElGamalKeyGen(params *Params) (*ElGamalKeyPair, error) {
	d, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	return &ElGamalKeyPair{
		D:     d,
		Gamma: scalarMulG1(params.G1, d),
	}, nil
}

// ElGamalCiphertext is an ElGamal ciphertext of a scalar message m under a
// public key gamma, with respect to a message base h.
type ElGamalCiphertext struct {
	A bls12381.G1Affine
	B bls12381.G1Affine
}

// ElGamalEncrypt encrypts m under gamma with base h, returning the
// ciphertext and the randomizer k used. The randomizer must be kept only
// long enough to build the accompanying issuance proof, then zeroized.
func ElGamalEncrypt(params *Params, gamma bls12381.G1Affine, m *big.Int, h bls12381.G1Affine) (ElGamalCiphertext, *big.Int, error) {
	k, err := RandomScalar()
	if err != nil {
		return ElGamalCiphertext{}, nil, err
	}
	a := scalarMulG1(params.G1, k)
	b := sumG1(scalarMulG1(gamma, k), scalarMulG1(h, m))
	return ElGamalCiphertext{A: a, B: b}, k, nil
}

// ElGamalDecrypt recovers m*h from a ciphertext encrypted under the
// keypair holding private key d: b - d*a.
func ElGamalDecrypt(d *big.Int, ct ElGamalCiphertext) bls12381.G1Affine {
	da := scalarMulG1(ct.A, d)
	var daNeg bls12381.G1Affine
	daNeg.Neg(&da)
	return sumG1(ct.B, daNeg)
}
