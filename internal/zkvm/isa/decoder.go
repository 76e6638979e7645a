package isa

import "fmt"

// Major opcode field values (word & 0x7f).
const (
	majorRType  = 0x33
	majorLoad   = 0x03
	majorStore  = 0x23
	majorBranch = 0x63
	majorJump   = 0x6f
)

// funct7 values distinguishing Add/Sub within the R-type major opcode.
const (
	funct7AddSub = 0x00
	funct7Sub    = 0x20
	funct7MExt   = 0x01
)

// funct3 values distinguishing Mul/Div within the M-extension funct7.
const (
	funct3Mul = 0x0
	funct3Div = 0x4
)

// Decode recovers an Instruction from a 32-bit instruction word. Any
// undecodable major opcode maps to Nop; only the R-type subspace (major
// opcode 0x33) can fail to decode.
func Decode(word uint32) (Instruction, error) {
	opcodeBits := word & 0x7f
	rd := uint8((word >> 7) & 0x1f)
	rs1 := uint8((word >> 15) & 0x1f)
	rs2 := uint8((word >> 20) & 0x1f)
	imm := int32(word) >> 20

	var opcode Opcode
	switch opcodeBits {
	case majorRType:
		funct7 := (word >> 25) & 0x7f
		switch funct7 {
		case funct7AddSub:
			opcode = Add
		case funct7Sub:
			opcode = Sub
		case funct7MExt:
			switch (word >> 12) & 0x7 {
			case funct3Mul:
				opcode = Mul
			case funct3Div:
				opcode = Div
			default:
				return Instruction{}, fmt.Errorf("unknown R/M-extension instruction: word 0x%08x", word)
			}
		default:
			return Instruction{}, fmt.Errorf("unknown R/M-extension instruction: word 0x%08x", word)
		}
	case majorLoad:
		opcode = Load
	case majorStore:
		opcode = Store
	case majorBranch:
		opcode = Branch
	case majorJump:
		opcode = Jump
	default:
		opcode = Nop
	}

	return New(opcode, rd, rs1, rs2, imm), nil
}
