package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ExtraPoint carries exactly one of a G1 or G2 point, letting an
// ExtraProof contribute to either group's portion of a Fiat-Shamir
// transcript. Exactly one field is ever non-nil.
type ExtraPoint struct {
	G1 *bls12381.G1Affine
	G2 *bls12381.G2Affine
}

// G1Point wraps a G1 point as an ExtraPoint.
func G1Point(p bls12381.G1Affine) ExtraPoint { return ExtraPoint{G1: &p} }

// G2Point wraps a G2 point as an ExtraPoint.
func G2Point(p bls12381.G2Affine) ExtraPoint { return ExtraPoint{G2: &p} }

func (t *transcript) addPoints(points []ExtraPoint) {
	for _, p := range points {
		switch {
		case p.G1 != nil:
			t.addG1(*p.G1)
		case p.G2 != nil:
			t.addG2(*p.G2)
		}
	}
}

// ProverExtraProof is the prover-side half of a caller-supplied
// Schnorr-style sub-proof composed into pi_s or pi_v. A
// fresh instance must be constructed per issuance/show call: because it
// holds per-call witnesses, sharing one across calls is undefined
// behavior.
type ProverExtraProof interface {
	// WitnessCommits returns the extra witness commitments to fold into
	// the Fiat-Shamir transcript, in a fixed order.
	WitnessCommits() []ExtraPoint
	// BasePoints returns auxiliary bases transcribed alongside the
	// witness commitments, letting the verifier reconstruct them.
	BasePoints() []ExtraPoint
	// ComputeResponses returns the extra Schnorr responses for challenge
	// c, appended after the main proof's response vector.
	ComputeResponses(c *big.Int) []*big.Int
}

// VerifierExtraProof is the verifier-side half of a caller-supplied
// sub-proof. It must reconstruct the same witness commitments the prover
// transcribed, from the challenge and the extra responses.
type VerifierExtraProof interface {
	BasePoints() []ExtraPoint
	RecomputeWitness(c *big.Int, responses []*big.Int) []ExtraPoint
}

// NoopExtraProof is the default, no-op ExtraProof: empty witness/base
// point lists and an empty response vector. It implements both
// ProverExtraProof and VerifierExtraProof. A no-op hook
// must produce byte-identical transcripts to omitting the hook entirely;
// every prove/verify function in this package treats a nil ExtraProof the
// same as a NoopExtraProof for exactly that reason.
type NoopExtraProof struct{}

func (NoopExtraProof) WitnessCommits() []ExtraPoint                        { return nil }
func (NoopExtraProof) BasePoints() []ExtraPoint                            { return nil }
func (NoopExtraProof) ComputeResponses(c *big.Int) []*big.Int              { return nil }
func (NoopExtraProof) RecomputeWitness(c *big.Int, r []*big.Int) []ExtraPoint { return nil }
