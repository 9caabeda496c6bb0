package prover

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"

	"zk-proving-service/internal/keycache"
	"zk-proving-service/internal/program"
	"zk-proving-service/pkg/logger"
)

// ExecutionResult is the outcome of an offline execution: the proof, the
// public witness it binds to, and the extracted public outputs in circuit
// order.
type ExecutionResult struct {
	ProgramID       string
	ProgramChecksum string
	Function        string
	Proof           groth16.Proof
	PublicWitness   witness.Witness
	PublicOutputs   []string
}

// Executor runs program functions offline: parse → bind inputs → witness →
// prove → extract outputs. Key material comes from the synthesis cache, so
// the first execution of a function pays for setup and later ones do not.
type Executor struct {
	cache *keycache.SynthesisCache
}

func NewExecutor(cache *keycache.SynthesisCache) *Executor {
	return &Executor{cache: cache}
}

func (e *Executor) Execute(prog *program.ProgramDefinition, function string, inputs map[string]interface{}) (*ExecutionResult, error) {
	fn, err := prog.Function(function)
	if err != nil {
		return nil, err
	}

	entry, err := e.cache.Keys(prog, function)
	if err != nil {
		return nil, fmt.Errorf("synthesize keys: %w", err)
	}

	circuit, err := program.NewFunctionCircuit(fn)
	if err != nil {
		return nil, err
	}

	assignment := circuit.Clone()
	if err := assignment.AssignValues(inputs); err != nil {
		return nil, fmt.Errorf("bind inputs: %w", err)
	}

	fullWitness, err := frontend.NewWitness(assignment, program.CurveID.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("new witness: %w", err)
	}

	publicWitness, err := fullWitness.Public()
	if err != nil {
		return nil, fmt.Errorf("public witness: %w", err)
	}

	started := time.Now()
	proof, err := groth16.Prove(entry.ConstraintSystem, entry.ProvingKey, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("groth16 prove: %w", err)
	}
	logger.Default().Debugf("Proved %s/%s in %s", prog.Checksum(), function, time.Since(started))

	outputs, err := ExtractPublicOutputs(publicWitness)
	if err != nil {
		return nil, err
	}

	return &ExecutionResult{
		ProgramID:       prog.ProgramID,
		ProgramChecksum: prog.Checksum(),
		Function:        function,
		Proof:           proof,
		PublicWitness:   publicWitness,
		PublicOutputs:   outputs,
	}, nil
}

// ExtractPublicOutputs renders the public witness as decimal field elements.
func ExtractPublicOutputs(publicWitness witness.Witness) ([]string, error) {
	vector, ok := publicWitness.Vector().(fr.Vector)
	if !ok {
		return nil, fmt.Errorf("unexpected witness vector type %T", publicWitness.Vector())
	}

	outputs := make([]string, len(vector))
	for i := range vector {
		outputs[i] = vector[i].String()
	}
	return outputs, nil
}
