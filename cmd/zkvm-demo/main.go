// Command zkvm-demo runs a hex-encoded program for -max-steps steps, proves the
// resulting trace, verifies the proof, and prints the proof as hex on
// stdout. It exists to exercise the public API end to end; it is not part
// of the library surface.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/nullifier-labs/zkvm-from-scratch/pkg/zkvm"
)

func main() {
	maxSteps := flag.Int("max-steps", 16, "maximum instructions to execute")
	hashName := flag.String("hash", "toy", "hash function: toy, sha3, or blake3")
	flag.Parse()

	program, err := readProgram()
	if err != nil {
		fatal(fmt.Sprintf("failed to read program: %v", err))
	}

	proverConfig := zkvm.DefaultProverConfig().
		WithMaxSteps(*maxSteps).
		WithHashFunction(*hashName)

	logStderr("creating vm...")
	vm, err := zkvm.NewVM(proverConfig)
	if err != nil {
		fatal(fmt.Sprintf("failed to create vm: %v", err))
	}

	if err := vm.LoadProgram(program, 0); err != nil {
		fatal(fmt.Sprintf("failed to load program: %v", err))
	}

	logStderr("executing program...")
	trace, err := vm.RunWithTrace()
	if err != nil {
		fatal(fmt.Sprintf("execution failed: %v", err))
	}
	logStderr(fmt.Sprintf("executed %d steps", len(trace.Steps)))

	logStderr("generating proof...")
	prover, err := zkvm.NewProver(proverConfig)
	if err != nil {
		fatal(fmt.Sprintf("failed to create prover: %v", err))
	}
	proof, err := prover.Prove(trace)
	if err != nil {
		fatal(fmt.Sprintf("proof generation failed: %v", err))
	}

	verifierConfig := zkvm.DefaultVerifierConfig()
	verifierConfig.HashFunction = *hashName
	verifier, err := zkvm.NewVerifier(verifierConfig)
	if err != nil {
		fatal(fmt.Sprintf("failed to create verifier: %v", err))
	}

	logStderr("verifying proof...")
	ok, err := verifier.Verify(proof, nil)
	if err != nil {
		fatal(fmt.Sprintf("verification failed: %v", err))
	}
	logStderr(fmt.Sprintf("proof valid: %v", ok))

	fmt.Println(zkvm.EncodeHex(proof.Witness))
}

// readProgram reads a single hex-encoded line from stdin and decodes it.
func readProgram() ([]byte, error) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	if !scanner.Scan() {
		return nil, fmt.Errorf("no input on stdin")
	}
	return zkvm.DecodeHex(scanner.Text())
}

func logStderr(msg string) {
	fmt.Fprintf(os.Stderr, "[zkvm-demo] %s\n", msg)
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "[zkvm-demo] fatal: %s\n", msg)
	os.Exit(1)
}
