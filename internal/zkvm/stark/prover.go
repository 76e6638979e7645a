package stark

import (
	"fmt"

	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/constraints"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/hashing"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/trace"
)

// Prover composes the four proving phases over a hash capability, so a
// real hash can be substituted without touching call sites.
type Prover struct {
	Hash            hashing.HashFunc
	SecurityLevel   uint32
	ExpansionFactor uint32
}

// NewProver returns a Prover with the given hash and default tuning knobs
// (security_level 80, expansion_factor 4 — reserved and unused by the toy
// FRI). Neither knob is written into the binary proof frame.
func NewProver(hash hashing.HashFunc) *Prover {
	return &Prover{Hash: hash, SecurityLevel: 80, ExpansionFactor: 4}
}

// interpolateColumns produces 33 columns (PC-before, then registers
// 0..31), each of length equal to the number of steps.
func interpolateColumns(t *trace.ExecutionTrace) [][]uint32 {
	columns := make([][]uint32, 33)
	for i := range columns {
		columns[i] = make([]uint32, len(t.Steps))
	}
	for stepIdx, step := range t.Steps {
		columns[0][stepIdx] = step.PCBefore
		for r := 0; r < 32; r++ {
			columns[r+1][stepIdx] = step.RegistersBefore[r]
		}
	}
	return columns
}

// commitToColumns concatenates column words little-endian, chunks the byte
// stream into 4-byte leaves, and builds a Merkle tree over them.
func commitToColumns(hash hashing.HashFunc, columns [][]uint32) *hashing.MerkleTree {
	var allBytes []byte
	for _, col := range columns {
		for _, v := range col {
			allBytes = append(allBytes, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
		}
	}

	leaves := make([][]byte, 0, len(allBytes)/4)
	for i := 0; i+4 <= len(allBytes); i += 4 {
		leaves = append(leaves, allBytes[i:i+4])
	}

	return hashing.NewMerkleTree(hash, leaves)
}

// evaluateConstraints builds a constraint system from trace, materializes
// the witness, and returns one u32 per constraint: 0 if satisfied, 1 if
// not. This is the "constraint polynomial evaluations" vector — the name
// is historical; these are booleans, not polynomial evaluations.
func evaluateConstraints(t *trace.ExecutionTrace) []uint32 {
	system := constraints.New()
	system.GenerateForTrace(t)
	witness := constraints.WitnessFromTrace(t)

	evaluations := make([]uint32, len(system.Constraints))
	for i, c := range system.Constraints {
		if constraints.VerifyConstraint(c, witness) {
			evaluations[i] = 0
		} else {
			evaluations[i] = 1
		}
	}
	return evaluations
}

// friCommit runs the toy FRI folding: commit to p0, then while the layer
// has more than 4 entries, fold pairwise by integer average and commit
// again. Not a valid field fold — (a+b)/2 over u32 preserves proof shape,
// not soundness (see package doc for the prover's overall toy status).
func friCommit(hash hashing.HashFunc, polynomial []uint32) FRIProof {
	var commitments []hashing.Digest
	current := append([]uint32(nil), polynomial...)

	tree := commitToColumns(hash, [][]uint32{current})
	commitments = append(commitments, tree.Root())

	for len(current) > 4 {
		next := make([]uint32, len(current)/2)
		for i := range next {
			next[i] = (current[2*i] + current[2*i+1]) / 2
		}
		tree := commitToColumns(hash, [][]uint32{next})
		commitments = append(commitments, tree.Root())
		current = next
	}

	var firstValue uint32
	if len(current) > 0 {
		firstValue = current[0]
	}

	queryProofs := []QueryProof{{Index: 0, Value: firstValue}}

	return FRIProof{
		Commitments:     commitments,
		FinalPolynomial: current,
		QueryProofs:     queryProofs,
	}
}

// Prove assembles the full Proof for an already-generated trace: column
// interpolation, Merkle commitment, constraint evaluation, and FRI
// folding over the constraint evaluation vector.
func (p *Prover) Prove(t *trace.ExecutionTrace) (*Proof, error) {
	if len(t.Steps) == 0 {
		return nil, fmt.Errorf("cannot prove an empty trace")
	}

	columns := interpolateColumns(t)
	tree := commitToColumns(p.Hash, columns)
	traceCommitment := tree.Root()

	constraintEvaluations := evaluateConstraints(t)
	fri := friCommit(p.Hash, constraintEvaluations)

	starkProof := &StarkProof{
		TraceCommitment:       traceCommitment,
		ConstraintEvaluations: constraintEvaluations,
		MerkleProof:           nil,
		FRI:                   fri,
	}

	return &Proof{
		TraceCommitment: traceCommitment.Bytes(),
		Witness:         starkProof.Encode(),
	}, nil
}
