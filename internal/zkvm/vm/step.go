package vm

import "github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/isa"

// MemoryRead records a single word read performed during a step.
type MemoryRead struct {
	Addr  uint32
	Value uint32
}

// MemoryWrite records a single word write performed during a step.
type MemoryWrite struct {
	Addr     uint32
	OldValue uint32
	NewValue uint32
}

// ExecutionStep is the immutable record produced by a traced step. Register
// snapshots are value copies, never aliases of the live VM state.
type ExecutionStep struct {
	PCBefore           uint32
	PCAfter            uint32
	RegistersBefore    [32]uint32
	RegistersAfter     [32]uint32
	Instruction        isa.Instruction
	MemoryReads        []MemoryRead
	MemoryWrites       []MemoryWrite
	IntermediateValues []uint32
}
