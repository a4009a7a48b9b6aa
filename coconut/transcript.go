package coconut

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// transcript accumulates the ordered list of group elements fed into a
// Fiat-Shamir challenge, matching the reference implementation's
// to_challenge(elements): hex-encode each point's compressed form and join
// with ",", SHA-256 the result, and read the digest as a big-endian
// integer reduced mod o. Preserving this exact transcript format (rather
// than, say, hashing raw bytes or using a different separator) is required
// for wire compatibility.
type transcript struct {
	parts [][]byte
}

// addG1 appends the compressed encoding of a G1 point to the transcript.
func (t *transcript) addG1(points ...bls12381.G1Affine) {
	for _, p := range points {
		enc := p.Bytes()
		t.parts = append(t.parts, []byte(hex.EncodeToString(enc[:])))
	}
}

// addG2 appends the compressed encoding of a G2 point to the transcript.
func (t *transcript) addG2(points ...bls12381.G2Affine) {
	for _, p := range points {
		enc := p.Bytes()
		t.parts = append(t.parts, []byte(hex.EncodeToString(enc[:])))
	}
}

// challenge finalizes the transcript into a Fiat-Shamir challenge scalar.
func (t *transcript) challenge() *big.Int {
	joined := bytes.Join(t.parts, []byte(","))
	digest := sha256.Sum256(joined)
	c := new(big.Int).SetBytes(digest[:])
	return modOrder(c)
}
