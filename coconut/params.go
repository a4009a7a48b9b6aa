package coconut

import (
	"fmt"
	"strconv"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Domain separation tags for the two hash-to-G1 call sites. Both use the
// RFC 9380 BLS12381G1_XMD:SHA-256_SSWU_RO_ suite provided by gnark-crypto's
// G1.HashToG1. These strings are part of the wire contract: changing them
// is an interoperability-breaking hard fork.
const (
	dstAttributeBases = "COCONUT_BLS12381G1_XMD:SHA-256_SSWU_RO_BASES_"
	dstMessageBase     = "COCONUT_BLS12381G1_XMD:SHA-256_SSWU_RO_MSGBASE_"
)

// Order is the prime order o of the BLS12-381 G1/G2/GT groups, i.e. the
// modulus for every scalar in this package (attributes, randomizers,
// witnesses, responses, Lagrange coefficients).
var Order = fr.Modulus()

// Params holds the public parameters of a deployment: the pairing group
// handle (implicit in the gnark-crypto package-level functions), the
// generators g1 and g2, and a vector of q independent hash-to-G1 bases
// used to commit to attributes. Params is immutable after Setup and safe
// for concurrent use by any number of goroutines.
type Params struct {
	Q  int
	G1 bls12381.G1Affine
	G2 bls12381.G2Affine
	Hs []bls12381.G1Affine
}

// Setup generates the public parameters for a deployment supporting up to
// q attributes. q must be at least 1. The bases hs[i] are derived
// deterministically as hash_to_G1("h"+i), so two independent calls to
// Setup with the same q always agree.
func Setup(q int) (*Params, error) {
	if q < 1 {
		return nil, fmt.Errorf("%w: q must be >= 1, got %d", ErrInvalidParameters, q)
	}

	_, _, g1, g2 := bls12381.Generators()

	hs := make([]bls12381.G1Affine, q)
	for i := 0; i < q; i++ {
		h, err := bls12381.HashToG1([]byte("h"+strconv.Itoa(i)), []byte(dstAttributeBases))
		if err != nil {
			return nil, fmt.Errorf("coconut: deriving base hs[%d]: %w", i, err)
		}
		hs[i] = h
	}

	return &Params{
		Q:  q,
		G1: g1,
		G2: g2,
		Hs: hs,
	}, nil
}

// MessageBase deterministically derives the shared base h = hash_to_G1(cm)
// from the canonical compressed encoding of a commitment. Both the request
// preparer and the signing authority derive h this way; it is never
// transmitted.
func (p *Params) MessageBase(cm bls12381.G1Affine) (bls12381.G1Affine, error) {
	enc := cm.Bytes()
	h, err := bls12381.HashToG1(enc[:], []byte(dstMessageBase))
	if err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("coconut: deriving message base: %w", err)
	}
	return h, nil
}
