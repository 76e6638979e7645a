package stark

import (
	"testing"

	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/hashing"
)

func TestVerifyAcceptsAGenuineProof(t *testing.T) {
	tr := buildTrace(t, 4)
	prover := NewProver(hashing.ToyHash{})
	proof, err := prover.Prove(tr)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}

	verifier := NewVerifier()
	ok, err := verifier.Verify(proof, nil)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("Verify should accept a genuine proof")
	}
}

func TestVerifyRejectsMalformedWitness(t *testing.T) {
	verifier := NewVerifier()
	proof := &Proof{TraceCommitment: make([]byte, 32), Witness: []byte{0x01}}

	if _, err := verifier.Verify(proof, nil); err == nil {
		t.Error("Verify should fail to deserialize a malformed witness")
	}
}

func TestVerifyRejectsZeroTraceCommitment(t *testing.T) {
	starkProof := &StarkProof{
		TraceCommitment:       hashing.Digest{},
		ConstraintEvaluations: []uint32{0},
		FRI: FRIProof{
			Commitments:     []hashing.Digest{hashing.ToyHash{}.Hash([]byte("x"))},
			FinalPolynomial: []uint32{1},
		},
	}
	proof := &Proof{Witness: starkProof.Encode()}

	verifier := NewVerifier()
	ok, err := verifier.Verify(proof, nil)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("Verify should reject a zero trace commitment")
	}
}

func TestVerifyRejectsUnsatisfiedConstraint(t *testing.T) {
	starkProof := &StarkProof{
		TraceCommitment:       hashing.ToyHash{}.Hash([]byte("commit")),
		ConstraintEvaluations: []uint32{0, 1},
		FRI: FRIProof{
			Commitments:     []hashing.Digest{hashing.ToyHash{}.Hash([]byte("x"))},
			FinalPolynomial: []uint32{1},
		},
	}
	proof := &Proof{Witness: starkProof.Encode()}

	verifier := NewVerifier()
	ok, err := verifier.Verify(proof, nil)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("Verify should reject a non-zero constraint evaluation")
	}
}

func TestVerifyRejectsDegenerateFRI(t *testing.T) {
	starkProof := &StarkProof{
		TraceCommitment:       hashing.ToyHash{}.Hash([]byte("commit")),
		ConstraintEvaluations: []uint32{0},
		FRI:                   FRIProof{},
	}
	proof := &Proof{Witness: starkProof.Encode()}

	verifier := NewVerifier()
	ok, err := verifier.Verify(proof, nil)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("Verify should reject an empty FRI layer")
	}
}
