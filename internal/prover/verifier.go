package prover

import (
	"fmt"

	"github.com/consensys/gnark/backend/groth16"

	"zk-proving-service/internal/keycache"
	"zk-proving-service/internal/program"
)

// Verifier checks execution blobs against the verifying key of the program
// function that claims to have produced them.
type Verifier struct {
	cache *keycache.SynthesisCache
}

func NewVerifier(cache *keycache.SynthesisCache) *Verifier {
	return &Verifier{cache: cache}
}

// VerifyExecution reconstructs the blob and verifies its proof. The blob must
// reference the supplied program: a checksum mismatch fails before any
// cryptographic work.
func (v *Verifier) VerifyExecution(prog *program.ProgramDefinition, function string, serialized []byte) (*ExecutionResult, error) {
	result, err := ReconstructExecution(serialized)
	if err != nil {
		return nil, err
	}

	if result.ProgramChecksum != prog.Checksum() {
		return nil, fmt.Errorf(
			"execution was produced by program %s, not %s",
			result.ProgramChecksum, prog.Checksum(),
		)
	}
	if result.Function != function {
		return nil, fmt.Errorf(
			"execution was produced by function '%s', not '%s'",
			result.Function, function,
		)
	}

	entry, err := v.cache.Keys(prog, function)
	if err != nil {
		return nil, fmt.Errorf("resolve verifying key: %w", err)
	}

	if err := groth16.Verify(result.Proof, entry.VerifyingKey, result.PublicWitness); err != nil {
		return nil, fmt.Errorf("proof verification failed: %w", err)
	}

	return result, nil
}
