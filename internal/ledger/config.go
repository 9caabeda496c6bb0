package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"zk-proving-service/pkg/logger"
)

type Keys struct {
	RegistryProgramKey solana.PublicKey
	PayerPublicKey     solana.PublicKey
	PayerPrivateKey    solana.PrivateKey
}

type SharedLedgerConfig struct {
	Mu   sync.Mutex
	Keys *Keys
}

// LoadLedgerKeys resolves the on-chain program registry id and the payer
// keypair from the environment.
func LoadLedgerKeys() (*SharedLedgerConfig, error) {
	programIDStr := os.Getenv("REGISTRY_PROGRAM_ID")
	if programIDStr == "" {
		return nil, fmt.Errorf("REGISTRY_PROGRAM_ID env var is not set (use your deployed registry program id)")
	}
	programID, err := solana.PublicKeyFromBase58(programIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REGISTRY_PROGRAM_ID %q: %w", programIDStr, err)
	}

	keypairPath := os.Getenv("PAYER_KEYPAIR_PATH")
	if keypairPath == "" {
		homeDir, _ := os.UserHomeDir()
		keypairPath = filepath.Join(homeDir, ".zkpconfig", "solana", "id.json")
	}
	payerPriv, err := solana.PrivateKeyFromSolanaKeygenFile(keypairPath)
	if err != nil {
		return nil, fmt.Errorf("reading payer keypair from %s failed: %w", keypairPath, err)
	}

	cfg := &Keys{
		RegistryProgramKey: programID,
		PayerPublicKey:     payerPriv.PublicKey(),
		PayerPrivateKey:    payerPriv,
	}

	logger.Default().Debugf("Registry program id: %s", cfg.RegistryProgramKey.String())
	logger.Default().Debugf("Payer: %s", cfg.PayerPublicKey.String())

	return &SharedLedgerConfig{
		Mu:   sync.Mutex{},
		Keys: cfg,
	}, nil
}

// ValidateRegistryExecutable checks that the configured registry key really
// points at a deployed program.
func (c *SharedLedgerConfig) ValidateRegistryExecutable(ctx context.Context, rpcClient *rpc.Client) error {
	acc, err := rpcClient.GetAccountInfo(ctx, c.Keys.RegistryProgramKey)
	if err != nil {
		return fmt.Errorf("GetAccountInfo(registry) failed: %w", err)
	}
	if acc == nil || acc.Value == nil || !acc.Value.Executable {
		return fmt.Errorf("RegistryProgramKey %s is not an executable account", c.Keys.RegistryProgramKey)
	}
	return nil
}
