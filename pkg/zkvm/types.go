package zkvm

import (
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/isa"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/trace"
)

// Opcode mirrors the VM's internal opcode enum for public consumption.
type Opcode = isa.Opcode

// Re-exported opcode constants.
const (
	OpAdd    = isa.Add
	OpSub    = isa.Sub
	OpMul    = isa.Mul
	OpDiv    = isa.Div
	OpLoad   = isa.Load
	OpStore  = isa.Store
	OpBranch = isa.Branch
	OpJump   = isa.Jump
	OpNop    = isa.Nop
)

// Instruction is a decoded instruction word.
type Instruction = isa.Instruction

// NewInstruction constructs an Instruction.
func NewInstruction(opcode Opcode, rd, rs1, rs2 uint8, imm int32) Instruction {
	return isa.New(opcode, rd, rs1, rs2, imm)
}

// DecodeInstruction decodes a 32-bit instruction word.
func DecodeInstruction(word uint32) (Instruction, error) {
	inst, err := isa.Decode(word)
	if err != nil {
		return Instruction{}, wrapErr(ErrUnknownInstruction, "failed to decode instruction", err)
	}
	return inst, nil
}

// ExecutionTrace is the algebraic witness produced by running a program with
// trace capture: the ordered per-step snapshots plus the initial and final
// VM state.
type ExecutionTrace = trace.ExecutionTrace

// TraceStep is a single recorded step of an ExecutionTrace.
type TraceStep = trace.TraceStep
