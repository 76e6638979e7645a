package constraints

import (
	"fmt"

	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/isa"
	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/trace"
)

// System holds the constraints synthesized for a trace along with the
// names of the witness and public columns they're stated over.
type System struct {
	Constraints    []Constraint
	WitnessColumns []string
	PublicColumns  []string
}

// New returns an empty constraint system.
func New() *System {
	return &System{}
}

func (s *System) addWitnessColumn(name string) {
	s.WitnessColumns = append(s.WitnessColumns, name)
}

func (s *System) addPublicColumn(name string) {
	s.PublicColumns = append(s.PublicColumns, name)
}

func (s *System) addConstraint(c Constraint) {
	s.Constraints = append(s.Constraints, c)
}

// GenerateForTrace emits the standard witness/public columns and, for
// every step, the constraints described in the VM's opcode semantics:
// PC progression for non-branch/jump steps, the arithmetic relation for
// Add/Sub/Mul, a MemoryConsistency constraint per memory access on
// Load/Store, and the always-present reg_0 and range-check constraints.
func (s *System) GenerateForTrace(t *trace.ExecutionTrace) {
	s.addWitnessColumn("step")
	s.addWitnessColumn("pc_before")
	s.addWitnessColumn("pc_after")
	for i := 0; i < 32; i++ {
		s.addWitnessColumn(fmt.Sprintf("reg_%d_before", i))
		s.addWitnessColumn(fmt.Sprintf("reg_%d_after", i))
	}

	s.addPublicColumn("initial_pc")
	s.addPublicColumn("final_pc")

	for stepIdx, step := range t.Steps {
		s.generateForStep(step, stepIdx)
	}
}

func (s *System) generateForStep(step trace.TraceStep, stepIdx int) {
	pcBefore := Var(fmt.Sprintf("pc_before_%d", stepIdx))
	pcAfter := Var(fmt.Sprintf("pc_after_%d", stepIdx))

	switch step.Instruction.Opcode {
	case isa.Branch, isa.Jump:
		// PC is updated by the opcode itself; no fixed +4 relation.
	default:
		s.addConstraint(Equality(pcAfter, Add(pcBefore, Const(4))))
	}

	switch step.Instruction.Opcode {
	case isa.Add:
		rs1 := Var(fmt.Sprintf("reg_%d_before_%d", step.Instruction.Rs1, stepIdx))
		rs2 := Var(fmt.Sprintf("reg_%d_before_%d", step.Instruction.Rs2, stepIdx))
		rd := Var(fmt.Sprintf("reg_%d_after_%d", step.Instruction.Rd, stepIdx))
		s.addConstraint(Equality(rd, Add(rs1, rs2)))
	case isa.Sub:
		rs1 := Var(fmt.Sprintf("reg_%d_before_%d", step.Instruction.Rs1, stepIdx))
		rs2 := Var(fmt.Sprintf("reg_%d_before_%d", step.Instruction.Rs2, stepIdx))
		rd := Var(fmt.Sprintf("reg_%d_after_%d", step.Instruction.Rd, stepIdx))
		s.addConstraint(Equality(rd, Sub(rs1, rs2)))
	case isa.Mul:
		rs1 := Var(fmt.Sprintf("reg_%d_before_%d", step.Instruction.Rs1, stepIdx))
		rs2 := Var(fmt.Sprintf("reg_%d_before_%d", step.Instruction.Rs2, stepIdx))
		rd := Var(fmt.Sprintf("reg_%d_after_%d", step.Instruction.Rd, stepIdx))
		s.addConstraint(Equality(rd, Mul(rs1, rs2)))
	case isa.Load, isa.Store:
		for _, access := range step.MemoryAccesses {
			s.addConstraint(MemoryConsistency(
				Const(access.Addr),
				Const(access.ValueBefore),
				Const(access.ValueAfter),
			))
		}
	}

	s.addConstraint(Equality(Var(fmt.Sprintf("reg_0_after_%d", stepIdx)), Const(0)))

	for i := 0; i < 32; i++ {
		s.addConstraint(RangeCheck(Var(fmt.Sprintf("reg_%d_after_%d", i, stepIdx)), 32))
	}
}

// WitnessFromTrace materializes a Witness mapping step-qualified variable
// names to the concrete before/after values recorded in t.
func WitnessFromTrace(t *trace.ExecutionTrace) Witness {
	w := make(Witness, len(t.Steps)*66)
	for stepIdx, step := range t.Steps {
		w[fmt.Sprintf("pc_before_%d", stepIdx)] = step.PCBefore
		w[fmt.Sprintf("pc_after_%d", stepIdx)] = step.PCAfter
		for i := 0; i < 32; i++ {
			w[fmt.Sprintf("reg_%d_before_%d", i, stepIdx)] = step.RegistersBefore[i]
			w[fmt.Sprintf("reg_%d_after_%d", i, stepIdx)] = step.RegistersAfter[i]
		}
	}
	return w
}
