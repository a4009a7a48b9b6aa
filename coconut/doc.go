// Package coconut implements the cryptographic core of a threshold
// anonymous credential system: bilinear-pairing group setup, Shamir-based
// threshold key generation and aggregation, ElGamal-blinded issuance,
// partial-signature unblinding, credential aggregation and
// re-randomization, and the two non-interactive zero-knowledge proofs used
// to issue and show a credential.
//
// The package is stateless and pure: every operation is a function of its
// arguments, drawing randomness from crypto/rand internally via
// gnark-crypto's field-element sampling, with no shared mutable state and
// no I/O. Transport, persistence, policy decisions (double-spend tables,
// replay caches) and the CLI live outside this package.
package coconut
