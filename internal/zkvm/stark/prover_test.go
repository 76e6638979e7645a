package stark

import (
	"testing"

	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/hashing"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/trace"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/vm"
)

func buildTrace(t *testing.T, steps int) *trace.ExecutionTrace {
	t.Helper()
	state := vm.NewVMState(256)
	state.Registers[1] = 1
	state.Registers[2] = 1

	// Rather than a JUMP loop, chain distinct ADDs writing to rotating
	// registers so trace.Generate(state, steps) executes exactly `steps`
	// straight-line words.
	for i := 0; i < steps; i++ {
		rd := uint8(3 + i%20)
		word := (uint32(rd) << 7) | (uint32(1) << 15) | (uint32(2) << 20) | 0x33
		if err := state.Memory.WriteWord(uint32(i*4), word); err != nil {
			t.Fatalf("WriteWord failed: %v", err)
		}
	}

	tr, err := trace.Generate(state, steps)
	if err != nil {
		t.Fatalf("trace.Generate failed: %v", err)
	}
	return tr
}

func TestProveProducesNonZeroTraceCommitment(t *testing.T) {
	tr := buildTrace(t, 4)
	prover := NewProver(hashing.ToyHash{})

	proof, err := prover.Prove(tr)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}

	commitment := hashing.DigestFromBytes(proof.TraceCommitment)
	if commitment.IsZero() {
		t.Error("trace commitment should not be zero for a non-empty trace")
	}
}

func TestProveRejectsEmptyTrace(t *testing.T) {
	prover := NewProver(hashing.ToyHash{})
	if _, err := prover.Prove(&trace.ExecutionTrace{}); err == nil {
		t.Error("Prove should reject an empty trace")
	}
}

func TestProveEncodesSatisfiedConstraints(t *testing.T) {
	tr := buildTrace(t, 3)
	prover := NewProver(hashing.ToyHash{})

	proof, err := prover.Prove(tr)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}

	decoded, err := Decode(proof.Witness)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, eval := range decoded.ConstraintEvaluations {
		if eval != 0 {
			t.Errorf("ConstraintEvaluations[%d] = %d, want 0 (satisfied)", i, eval)
		}
	}
}

func TestFRICommitFoldsDownToFour(t *testing.T) {
	fri := friCommit(hashing.ToyHash{}, []uint32{1, 2, 3, 4, 5, 6, 7, 8})
	if len(fri.FinalPolynomial) > 4 {
		t.Errorf("final polynomial length = %d, want <= 4", len(fri.FinalPolynomial))
	}
	if len(fri.Commitments) == 0 {
		t.Error("expected at least one FRI commitment")
	}
}
