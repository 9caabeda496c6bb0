package prover

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/near/borsh-go"

	"zk-proving-service/internal/program"
)

// executionBlob is the borsh wire form of an execution. The same layout is
// written to the ledger, so local verification and on-chain storage share one
// format.
type executionBlob struct {
	ProgramID       string `borsh:"program_id"`
	ProgramChecksum string `borsh:"program_checksum"`
	Function        string `borsh:"function"`
	Proof           []byte `borsh:"proof"`
	PublicWitness   []byte `borsh:"public_witness"`
}

func (r *ExecutionResult) SerializeBorsh() ([]byte, error) {
	var proofBuf bytes.Buffer
	if _, err := r.Proof.WriteTo(&proofBuf); err != nil {
		return nil, fmt.Errorf("serialize proof: %w", err)
	}

	var witnessBuf bytes.Buffer
	if _, err := r.PublicWitness.WriteTo(&witnessBuf); err != nil {
		return nil, fmt.Errorf("serialize public witness: %w", err)
	}

	return borsh.Serialize(executionBlob{
		ProgramID:       r.ProgramID,
		ProgramChecksum: r.ProgramChecksum,
		Function:        r.Function,
		Proof:           proofBuf.Bytes(),
		PublicWitness:   witnessBuf.Bytes(),
	})
}

// ReconstructExecution decodes an execution blob back into proof and public
// witness objects, recomputing the public outputs from the witness.
func ReconstructExecution(serialized []byte) (*ExecutionResult, error) {
	var blob executionBlob
	if err := borsh.Deserialize(&blob, serialized); err != nil {
		return nil, fmt.Errorf("deserialize execution blob: %w", err)
	}

	proof := groth16.NewProof(program.CurveID)
	if _, err := proof.ReadFrom(bytes.NewReader(blob.Proof)); err != nil {
		return nil, fmt.Errorf("read proof: %w", err)
	}

	publicWitness, err := witness.New(program.CurveID.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("new witness: %w", err)
	}
	if _, err := publicWitness.ReadFrom(bytes.NewReader(blob.PublicWitness)); err != nil {
		return nil, fmt.Errorf("read public witness: %w", err)
	}

	outputs, err := ExtractPublicOutputs(publicWitness)
	if err != nil {
		return nil, err
	}

	return &ExecutionResult{
		ProgramID:       blob.ProgramID,
		ProgramChecksum: blob.ProgramChecksum,
		Function:        blob.Function,
		Proof:           proof,
		PublicWitness:   publicWitness,
		PublicOutputs:   outputs,
	}, nil
}
