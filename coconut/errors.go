package coconut

import "errors"

// Sentinel errors returned by construction primitives. Verification
// primitives (verifyIssuance, verifyShow, VerifyCredential) never
// return an error: they are total functions returning a bool.
var (
	// ErrInvalidParameters is returned for q<1, t<1, n<1 or t>n. Too many
	// attributes is reported as ErrTooManyAttributes instead.
	ErrInvalidParameters = errors.New("coconut: invalid parameters")

	// ErrLengthMismatch is returned when the ciphertext and randomizer
	// counts given to the issuance prover disagree, or when verification
	// keys being aggregated carry different numbers of beta entries.
	ErrLengthMismatch = errors.New("coconut: length mismatch")

	// ErrTooManyAttributes is returned when |private_m|+|public_m| > q.
	ErrTooManyAttributes = errors.New("coconut: too many attributes")

	// ErrInvalidRequestProof is returned by BlindSign when the issuance
	// proof pi_s attached to a blind-signature request does not verify.
	ErrInvalidRequestProof = errors.New("coconut: invalid request proof")

	// ErrDegenerateShares is returned by aggregation when there are zero
	// present shares, and by threshold aggregation when present indices are
	// duplicated or zero. Non-threshold aggregation does not check indices.
	ErrDegenerateShares = errors.New("coconut: degenerate shares")
)
