// Package zkvm provides a small, deterministic zero-knowledge virtual
// machine: a RISC-style register VM, an execution-trace recorder, a toy
// constraint system and STARK-style prover, and a matching verifier.
//
// # Features
//
// - Deterministic 32-register integer VM with sparse byte-addressable memory
// - Execution trace capture for every instruction, memory access included
// - Algebraic constraint synthesis over the trace (equality, range check,
// memory consistency)
// - Merkle-committed column interpolation and a toy FRI folding scheme
// - A deterministic, length-prefixed binary proof frame
//
// # Quick Start
//
// Running a program and proving it:
//
//	vm, err := zkvm.NewVM(zkvm.DefaultProverConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := vm.LoadProgram(program, 0); err != nil {
//		log.Fatal(err)
//	}
//
//	trace, err := vm.RunWithTrace()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	prover, err := zkvm.NewProver(zkvm.DefaultProverConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	proof, err := prover.Prove(trace)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Verifying it:
//
//	verifier, err := zkvm.NewVerifier(zkvm.DefaultVerifierConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	ok, err := verifier.Verify(proof, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		fmt.Println("proof accepted")
//	}
//
// # Architecture
//
//   - pkg/zkvm/: public API (this package)
//   - internal/zkvm/: private implementation (memory, isa, vm, trace,
//     constraints, hashing, stark), not importable outside this module
//
// # Toy status
//
// The constraint system, Merkle commitment, and FRI folding here are
// pedagogical: the FRI fold is an integer average rather than a field
// operation, and the verifier does not bind public inputs to the proof.
// Treat this package as a teaching aid for the STARK pipeline's shape, not
// as a cryptographically sound proving system.
package zkvm
