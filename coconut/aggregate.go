package coconut

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// CredentialShare is one authority's unblinded partial credential,
// indexed the same way as its AuthorityKeyShare. A nil *CredentialShare
// in the slice passed to AggregateCredentials represents a share that
// never arrived.
type CredentialShare struct {
	Index int
	Sig   Signature
}

func presentVKIndices(vks []*VerificationKey) ([]int, []*VerificationKey) {
	indices := make([]int, 0, len(vks))
	present := make([]*VerificationKey, 0, len(vks))
	for _, vk := range vks {
		if vk == nil {
			continue
		}
		indices = append(indices, vk.Index)
		present = append(present, vk)
	}
	return indices, present
}

// AggregateVerificationKeys computes agg_key from a (possibly sparse) set
// of per-authority verification keys: missing shares are nil entries.
// threshold selects Lagrange-weighted combination over the present
// indices; non-threshold combination uses a uniform weight of 1 for every
// present share. The returned key's Index is always 0,
// since an aggregate is not itself a single evaluation point.
func AggregateVerificationKeys(vks []*VerificationKey, threshold bool) (VerificationKey, error) {
	indices, present := presentVKIndices(vks)
	if len(present) == 0 {
		return VerificationKey{}, ErrDegenerateShares
	}

	weights, err := aggregationWeights(indices, threshold)
	if err != nil {
		return VerificationKey{}, err
	}

	q := len(present[0].Beta)
	alphas := make([]bls12381.G2Affine, len(present))
	betaCols := make([][]bls12381.G2Affine, q)
	for j := range betaCols {
		betaCols[j] = make([]bls12381.G2Affine, len(present))
	}
	for i, vk := range present {
		if len(vk.Beta) != q {
			return VerificationKey{}, ErrLengthMismatch
		}
		alphas[i] = vk.Alpha
		for j := 0; j < q; j++ {
			betaCols[j][i] = vk.Beta[j]
		}
	}

	beta := make([]bls12381.G2Affine, q)
	for j := range beta {
		beta[j] = weightedSumG2(betaCols[j], weights)
	}

	return VerificationKey{
		Index: 0,
		Alpha: weightedSumG2(alphas, weights),
		Beta:  beta,
	}, nil
}

// AggregateCredentials computes agg_cred from a (possibly sparse) set of
// unblinded partial credentials: missing shares are nil entries. h is
// taken from the first present share; callers must
// ensure every honest partial was derived from the same commitment.
func AggregateCredentials(sigs []*CredentialShare, threshold bool) (Signature, error) {
	indices := make([]int, 0, len(sigs))
	present := make([]*CredentialShare, 0, len(sigs))
	for _, s := range sigs {
		if s == nil {
			continue
		}
		indices = append(indices, s.Index)
		present = append(present, s)
	}
	if len(present) == 0 {
		return Signature{}, ErrDegenerateShares
	}

	weights, err := aggregationWeights(indices, threshold)
	if err != nil {
		return Signature{}, err
	}

	ss := make([]bls12381.G1Affine, len(present))
	for i, s := range present {
		ss[i] = s.Sig.S
	}

	return Signature{
		H: present[0].Sig.H,
		S: weightedSumG1(ss, weights),
	}, nil
}

func aggregationWeights(indices []int, threshold bool) ([]*big.Int, error) {
	if threshold {
		return lagrangeBasis(indices)
	}
	weights := make([]*big.Int, len(indices))
	for i := range weights {
		weights[i] = big.NewInt(1)
	}
	return weights, nil
}
