package zkvm

import (
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/stark"
)

// Verifier checks Proofs produced by a Prover.
type Verifier struct {
	inner *stark.Verifier
}

// NewVerifier creates a Verifier using the security level named in config.
// The hash function recorded in config is accepted for API symmetry with
// NewProver but is not consulted: the toy verifier checks shape and
// arithmetic invariants, not a hash-bound commitment opening.
func NewVerifier(config *VerifierConfig) (*Verifier, error) {
	if config == nil {
		config = DefaultVerifierConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, wrapErr(ErrInvalidConfig, "invalid verifier config", err)
	}

	inner := stark.NewVerifier()
	inner.SecurityLevel = config.SecurityLevel

	return &Verifier{inner: inner}, nil
}

// Verify reports whether proof passes the checks the toy STARK construction
// can express, against the given public inputs.
func (v *Verifier) Verify(proof *Proof, publicInputs []byte) (bool, error) {
	ok, err := v.inner.Verify(proof, publicInputs)
	if err != nil {
		return false, wrapErr(ErrProofDeserialization, "failed to verify proof", err)
	}
	return ok, nil
}
