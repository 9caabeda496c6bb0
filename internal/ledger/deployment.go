package ledger

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"

	"zk-proving-service/internal/program"
)

// ProgramDeployment is the borsh payload stored in the program account on the
// ledger: the canonical program source, its checksum, and the verifying key
// of every function so anyone can verify executions against the chain.
type ProgramDeployment struct {
	ProgramID       string            `borsh:"program_id"`
	ProgramChecksum string            `borsh:"program_checksum"`
	Source          []byte            `borsh:"source"`
	VerifyingKeys   map[string][]byte `borsh:"verifying_keys"`
}

func NewProgramDeployment(prog *program.ProgramDefinition, source []byte, verifyingKeys map[string]groth16.VerifyingKey) (*ProgramDeployment, error) {
	if len(verifyingKeys) == 0 {
		return nil, fmt.Errorf("deployment requires at least one verifying key")
	}

	encoded := make(map[string][]byte, len(verifyingKeys))
	for fnName, vk := range verifyingKeys {
		if _, err := prog.Function(fnName); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if _, err := vk.WriteTo(&buf); err != nil {
			return nil, fmt.Errorf("serialize verifying key for '%s': %w", fnName, err)
		}
		encoded[fnName] = buf.Bytes()
	}

	return &ProgramDeployment{
		ProgramID:       prog.ProgramID,
		ProgramChecksum: prog.Checksum(),
		Source:          source,
		VerifyingKeys:   encoded,
	}, nil
}

func (d *ProgramDeployment) SerializeBorsh() ([]byte, error) {
	return borsh.Serialize(*d)
}

func DeserializeDeployment(data []byte) (*ProgramDeployment, error) {
	var d ProgramDeployment
	if err := borsh.Deserialize(&d, data); err != nil {
		return nil, fmt.Errorf("deserialize deployment: %w", err)
	}
	return &d, nil
}

// DeploymentReference locates a published deployment on the ledger.
type DeploymentReference struct {
	Account   solana.PublicKey
	Signature solana.Signature
	Fee       FeeEstimate
}
