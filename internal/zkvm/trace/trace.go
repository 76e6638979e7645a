// Package trace builds the algebraic witness — an ExecutionTrace — from a
// bounded VM run, and owns the per-step snapshot types the constraint
// system and prover consume.
package trace

import (
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/isa"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/vm"
)

// MemoryAccess merges a step's reads and writes into a single record,
// tagged by direction.
type MemoryAccess struct {
	Addr        uint32
	ValueBefore uint32
	ValueAfter  uint32
	IsWrite     bool
}

// TraceStep is a per-step snapshot augmented with its index in the trace
// and the merged memory accesses for that step.
type TraceStep struct {
	StepIndex          int
	PCBefore           uint32
	PCAfter            uint32
	RegistersBefore    [32]uint32
	RegistersAfter     [32]uint32
	Instruction        isa.Instruction
	MemoryAccesses     []MemoryAccess
	IntermediateValues []uint32
}

// ExecutionTrace is the ordered sequence of TraceSteps plus a clone of the
// VM state before the first step and after the last one.
//
// Invariant: for all i, steps[i].PCAfter == steps[i+1].PCBefore and
// steps[i].RegistersAfter == steps[i+1].RegistersBefore.
type ExecutionTrace struct {
	Steps        []TraceStep
	InitialState *vm.VMState
	FinalState   *vm.VMState
}

// Generate runs vmState for maxSteps instructions with trace capture and
// assembles the resulting ExecutionTrace. The trace is owned by the
// caller; vmState is mutated in place as usual.
func Generate(vmState *vm.VMState, maxSteps int) (*ExecutionTrace, error) {
	initialState := vmState.Clone()

	execSteps, err := vmState.RunWithTrace(maxSteps)
	if err != nil {
		return nil, err
	}

	finalState := vmState.Clone()

	steps := make([]TraceStep, len(execSteps))
	for i, es := range execSteps {
		var accesses []MemoryAccess
		for _, r := range es.MemoryReads {
			accesses = append(accesses, MemoryAccess{Addr: r.Addr, ValueBefore: r.Value, ValueAfter: r.Value, IsWrite: false})
		}
		for _, w := range es.MemoryWrites {
			accesses = append(accesses, MemoryAccess{Addr: w.Addr, ValueBefore: w.OldValue, ValueAfter: w.NewValue, IsWrite: true})
		}

		steps[i] = TraceStep{
			StepIndex:          i,
			PCBefore:           es.PCBefore,
			PCAfter:            es.PCAfter,
			RegistersBefore:    es.RegistersBefore,
			RegistersAfter:     es.RegistersAfter,
			Instruction:        es.Instruction,
			MemoryAccesses:     accesses,
			IntermediateValues: es.IntermediateValues,
		}
	}

	return &ExecutionTrace{Steps: steps, InitialState: initialState, FinalState: finalState}, nil
}
