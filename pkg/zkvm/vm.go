package zkvm

import (
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/trace"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/vm"
)

// VM runs programs against the register machine and, on request, records the
// execution trace a Prover later consumes.
type VM struct {
	state    *vm.VMState
	maxSteps int
}

// NewVM creates a VM with the memory bound and step limit from config.
func NewVM(config *ProverConfig) (*VM, error) {
	if config == nil {
		config = DefaultProverConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, wrapErr(ErrInvalidConfig, "invalid prover config", err)
	}

	return &VM{
		state:    vm.NewVMState(config.MemorySize),
		maxSteps: config.MaxSteps,
	}, nil
}

// LoadProgram writes program into memory starting at startAddr.
func (v *VM) LoadProgram(program []byte, startAddr uint32) error {
	if err := v.state.Memory.LoadProgram(program, startAddr); err != nil {
		return wrapErr(ErrMemoryOutOfBounds, "failed to load program", err)
	}
	return nil
}

// Registers returns a snapshot of the VM's 32 general-purpose registers.
func (v *VM) Registers() [32]uint32 {
	return v.state.Registers
}

// PC returns the current program counter.
func (v *VM) PC() uint32 {
	return v.state.PC
}

// Run executes up to the configured step limit without recording a trace.
func (v *VM) Run() error {
	if err := v.state.Run(v.maxSteps); err != nil {
		return wrapErr(ErrVMExecution, "vm execution failed", err)
	}
	return nil
}

// RunWithTrace executes up to the configured step limit and returns the
// resulting ExecutionTrace.
func (v *VM) RunWithTrace() (*ExecutionTrace, error) {
	t, err := trace.Generate(v.state, v.maxSteps)
	if err != nil {
		return nil, wrapErr(ErrVMExecution, "vm execution failed", err)
	}
	return t, nil
}
