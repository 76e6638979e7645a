package zkvm

import (
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/hashing"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/stark"
)

// Proof is the serialized output of a Prover: a trace commitment and the
// encoded STARK witness.
type Proof = stark.Proof

// Prover generates a Proof from an ExecutionTrace.
type Prover struct {
	inner *stark.Prover
}

// NewProver creates a Prover using the hash function and security level
// named in config.
func NewProver(config *ProverConfig) (*Prover, error) {
	if config == nil {
		config = DefaultProverConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, wrapErr(ErrInvalidConfig, "invalid prover config", err)
	}

	inner := stark.NewProver(hashing.ByName(config.HashFunction))
	inner.SecurityLevel = config.SecurityLevel
	inner.ExpansionFactor = config.ExpansionFactor

	return &Prover{inner: inner}, nil
}

// Prove produces a Proof for the given execution trace.
func (p *Prover) Prove(t *ExecutionTrace) (*Proof, error) {
	proof, err := p.inner.Prove(t)
	if err != nil {
		return nil, wrapErr(ErrProofSerialization, "failed to generate proof", err)
	}
	return proof, nil
}
