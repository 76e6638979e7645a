package stark

import "fmt"

// Verifier checks a Proof against the four conditions the toy STARK
// construction can actually establish: well-formed encoding, a non-zero
// trace commitment, all-zero constraint evaluations, and non-degenerate
// FRI layers. Public inputs are accepted but not bound to the checked
// predicate.
type Verifier struct {
	SecurityLevel uint32
}

// NewVerifier returns a Verifier with the default security level (80).
func NewVerifier() *Verifier {
	return &Verifier{SecurityLevel: 80}
}

// Verify returns true iff proof deserializes, its trace commitment is
// non-zero, every constraint evaluation is zero, and the FRI layer is
// non-degenerate (non-empty commitments and final polynomial).
// publicInputs is accepted for interface symmetry with a production
// verifier but not yet checked against the proof.
func (v *Verifier) Verify(proof *Proof, publicInputs []byte) (bool, error) {
	starkProof, err := Decode(proof.Witness)
	if err != nil {
		return false, fmt.Errorf("failed to deserialize: %w", err)
	}

	if starkProof.TraceCommitment.IsZero() {
		return false, nil
	}

	for _, eval := range starkProof.ConstraintEvaluations {
		if eval != 0 {
			return false, nil
		}
	}

	if len(starkProof.FRI.Commitments) == 0 || len(starkProof.FRI.FinalPolynomial) == 0 {
		return false, nil
	}

	return true, nil
}
