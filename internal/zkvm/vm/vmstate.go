// Package vm implements the register VM: state, per-instruction semantics,
// and the bounded run loop, with and without trace capture.
package vm

import (
	"fmt"

	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/isa"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/memory"
)

// VMState is the VM's mutable state: 32 general-purpose registers (register
// 0 hard-wired to 0), the program counter, and memory. It is owned
// exclusively by its caller; nothing here synchronizes access.
type VMState struct {
	Registers [32]uint32
	PC        uint32
	Memory    *memory.Memory
}

// NewVMState creates a VM with freshly zeroed registers and PC, and memory
// bounded to memorySize bytes.
func NewVMState(memorySize uint64) *VMState {
	return &VMState{Memory: memory.New(memorySize)}
}

// Clone returns a value copy of v, including a copy of the underlying
// memory map, so a snapshot never aliases the live state.
func (v *VMState) Clone() *VMState {
	return &VMState{Registers: v.Registers, PC: v.PC, Memory: v.Memory.Clone()}
}

func sext(imm int32) uint32 {
	return uint32(imm)
}

// ExecuteInstruction mutates registers, PC, and memory according to inst's
// opcode, then normalizes: registers[0] = 0, and pc += 4 unless the
// instruction returned early (Branch taken, Jump).
func (v *VMState) ExecuteInstruction(inst isa.Instruction) error {
	switch inst.Opcode {
	case isa.Add:
		v.Registers[inst.Rd] = v.Registers[inst.Rs1] + v.Registers[inst.Rs2]
	case isa.Sub:
		v.Registers[inst.Rd] = v.Registers[inst.Rs1] - v.Registers[inst.Rs2]
	case isa.Mul:
		v.Registers[inst.Rd] = v.Registers[inst.Rs1] * v.Registers[inst.Rs2]
	case isa.Div:
		divisor := v.Registers[inst.Rs2]
		if divisor == 0 {
			return fmt.Errorf("division by zero")
		}
		v.Registers[inst.Rd] = v.Registers[inst.Rs1] / divisor
	case isa.Load:
		addr := v.Registers[inst.Rs1] + sext(inst.Imm)
		value, err := v.Memory.ReadWord(addr)
		if err != nil {
			return err
		}
		v.Registers[inst.Rd] = value
	case isa.Store:
		addr := v.Registers[inst.Rs1] + sext(inst.Imm)
		if err := v.Memory.WriteWord(addr, v.Registers[inst.Rs2]); err != nil {
			return err
		}
	case isa.Branch:
		if v.Registers[inst.Rs1] == v.Registers[inst.Rs2] {
			v.PC += sext(inst.Imm)
			return nil
		}
	case isa.Jump:
		v.PC += sext(inst.Imm)
		return nil
	case isa.Nop:
		// no state change
	}

	v.Registers[0] = 0
	v.PC += 4
	return nil
}

// ExecuteWithTrace performs the same transitions as ExecuteInstruction but
// additionally records an ExecutionStep, including the per-opcode
// intermediate values in the fixed order constraint authors depend on:
// Add/Sub/Mul/Div record rs1, rs2, result; Load/Store record base, imm,
// addr, value; Branch records rs1, rs2, equal flag; Jump and Nop record none.
func (v *VMState) ExecuteWithTrace(inst isa.Instruction) (ExecutionStep, error) {
	pcBefore := v.PC
	registersBefore := v.Registers

	var reads []MemoryRead
	var writes []MemoryWrite
	var intermediates []uint32

	finish := func() ExecutionStep {
		return ExecutionStep{
			PCBefore:           pcBefore,
			PCAfter:            v.PC,
			RegistersBefore:    registersBefore,
			RegistersAfter:     v.Registers,
			Instruction:        inst,
			MemoryReads:        reads,
			MemoryWrites:       writes,
			IntermediateValues: intermediates,
		}
	}

	switch inst.Opcode {
	case isa.Add, isa.Sub, isa.Mul:
		val1 := v.Registers[inst.Rs1]
		val2 := v.Registers[inst.Rs2]
		var result uint32
		switch inst.Opcode {
		case isa.Add:
			result = val1 + val2
		case isa.Sub:
			result = val1 - val2
		case isa.Mul:
			result = val1 * val2
		}
		intermediates = append(intermediates, val1, val2, result)
		v.Registers[inst.Rd] = result
	case isa.Div:
		val1 := v.Registers[inst.Rs1]
		val2 := v.Registers[inst.Rs2]
		if val2 == 0 {
			return ExecutionStep{}, fmt.Errorf("division by zero")
		}
		result := val1 / val2
		intermediates = append(intermediates, val1, val2, result)
		v.Registers[inst.Rd] = result
	case isa.Load:
		base := v.Registers[inst.Rs1]
		immU32 := sext(inst.Imm)
		addr := base + immU32
		value, err := v.Memory.ReadWord(addr)
		if err != nil {
			return ExecutionStep{}, err
		}
		intermediates = append(intermediates, base, immU32, addr, value)
		reads = append(reads, MemoryRead{Addr: addr, Value: value})
		v.Registers[inst.Rd] = value
	case isa.Store:
		base := v.Registers[inst.Rs1]
		immU32 := sext(inst.Imm)
		addr := base + immU32
		value := v.Registers[inst.Rs2]
		intermediates = append(intermediates, base, immU32, addr, value)
		oldValue, _ := v.Memory.ReadWord(addr)
		if err := v.Memory.WriteWord(addr, value); err != nil {
			return ExecutionStep{}, err
		}
		writes = append(writes, MemoryWrite{Addr: addr, OldValue: oldValue, NewValue: value})
	case isa.Branch:
		val1 := v.Registers[inst.Rs1]
		val2 := v.Registers[inst.Rs2]
		equal := val1 == val2
		var equalFlag uint32
		if equal {
			equalFlag = 1
		}
		intermediates = append(intermediates, val1, val2, equalFlag)
		if equal {
			v.PC += sext(inst.Imm)
			return finish(), nil
		}
	case isa.Jump:
		v.PC += sext(inst.Imm)
		return finish(), nil
	case isa.Nop:
		// no state change, no intermediates
	}

	v.Registers[0] = 0
	v.PC += 4
	return finish(), nil
}

// Run fetches, decodes, and executes up to maxSteps instructions, stopping
// at the first error. There is no HALT opcode; the caller bounds iteration.
func (v *VMState) Run(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		word, err := v.Memory.ReadWord(v.PC)
		if err != nil {
			return err
		}
		inst, err := isa.Decode(word)
		if err != nil {
			return err
		}
		if err := v.ExecuteInstruction(inst); err != nil {
			return err
		}
	}
	return nil
}

// RunWithTrace behaves like Run but returns the ordered list of
// ExecutionSteps, propagating the first failure.
func (v *VMState) RunWithTrace(maxSteps int) ([]ExecutionStep, error) {
	steps := make([]ExecutionStep, 0, maxSteps)
	for i := 0; i < maxSteps; i++ {
		word, err := v.Memory.ReadWord(v.PC)
		if err != nil {
			return nil, err
		}
		inst, err := isa.Decode(word)
		if err != nil {
			return nil, err
		}
		step, err := v.ExecuteWithTrace(inst)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}
