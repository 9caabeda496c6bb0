package ledger

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"

	"zk-proving-service/pkg/logger"
)

// Client publishes program deployments to the ledger and accounts for their
// fees.
type Client struct {
	Config    *SharedLedgerConfig
	RpcClient *rpc.Client
}

func NewClient(config *SharedLedgerConfig, rpcEndpoint string) *Client {
	return &Client{
		Config:    config,
		RpcClient: rpc.New(rpcEndpoint),
	}
}

// EstimateDeploymentFee prices a deployment without sending anything: rent
// for an account sized to the payload plus the flat transaction fee.
func (c *Client) EstimateDeploymentFee(ctx context.Context, payload []byte) (FeeEstimate, error) {
	space := RequiredAccountSpace(payload)

	rent, err := c.RpcClient.GetMinimumBalanceForRentExemption(
		ctx,
		space,
		rpc.CommitmentFinalized,
	)
	if err != nil {
		return FeeEstimate{}, fmt.Errorf("rent exemption query: %w", err)
	}

	return newFeeEstimate(space, rent), nil
}

// PublishDeployment creates a new account owned by the registry program,
// writes the deployment payload into it, and reports the reference or error
// on the supplied channels.
func (c *Client) PublishDeployment(deployment *ProgramDeployment, errCh chan error, refCh chan DeploymentReference) {
	payload, err := deployment.SerializeBorsh()
	if err != nil {
		errCh <- err
		return
	}

	ledgerLogger := logger.Default()
	ledgerLogger.Infof("Serialized deployment payload size: %d bytes", len(payload))

	c.createAndPopulateProgramAccount(payload, errCh, refCh)
}

// creates new account and stores the deployment payload for future retrieval
func (c *Client) createAndPopulateProgramAccount(payload []byte, errCh chan error, refCh chan DeploymentReference) {
	ledgerLogger := logger.Default()
	fee, err := c.EstimateDeploymentFee(context.Background(), payload)
	if err != nil {
		errCh <- err
		return
	}
	ledgerLogger.Infof("Deployment fee: %d lamports (%d rent + %d base)", fee.TotalLamports, fee.RentLamports, fee.BaseFeeLamports)

	newAccount, err := solana.NewRandomPrivateKey()
	if err != nil {
		errCh <- err
		return
	}
	ledgerLogger.Infof("Generated new program account: %s", newAccount.PublicKey().String())

	// mutex lock to read correct values at current time
	c.Config.Mu.Lock()

	createAccountInstruction := system.NewCreateAccountInstruction(
		fee.RentLamports,
		fee.AccountSpace,
		c.Config.Keys.RegistryProgramKey,
		c.Config.Keys.PayerPublicKey,
		newAccount.PublicKey(),
	).Build()

	accounts := []*solana.AccountMeta{
		solana.NewAccountMeta(newAccount.PublicKey(), true, true),
	}

	deployInstruction := solana.NewInstruction(
		c.Config.Keys.RegistryProgramKey,
		accounts,
		payload,
	)

	payer := c.Config.Keys.PayerPublicKey
	payerPriv := c.Config.Keys.PayerPrivateKey

	c.Config.Mu.Unlock()

	latest, err := c.RpcClient.GetLatestBlockhash(context.Background(), rpc.CommitmentFinalized)
	if err != nil {
		errCh <- err
		return
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{createAccountInstruction, deployInstruction},
		latest.Value.Blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		errCh <- err
		return
	}

	_, err = tx.Sign(func(pk solana.PublicKey) *solana.PrivateKey {
		if pk.Equals(payer) {
			return &payerPriv
		}
		if pk.Equals(newAccount.PublicKey()) {
			return &newAccount
		}
		return nil
	})
	if err != nil {
		errCh <- err
		return
	}

	transactionSignature, err := c.RpcClient.SendTransactionWithOpts(
		context.Background(),
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		ledgerLogger.Errorf(err, "Failed to send deployment transaction")
		ledgerLogger.Debugf("Payload size: %d bytes, allocated space: %d bytes", len(payload), fee.AccountSpace)
		errCh <- err
		return
	}

	ledgerLogger.Infof("Successfully sent deployment transaction: %s", transactionSignature)
	refCh <- DeploymentReference{
		Account:   newAccount.PublicKey(),
		Signature: transactionSignature,
		Fee:       fee,
	}
}

// FetchDeployment reads a published deployment back from its ledger account.
func (c *Client) FetchDeployment(ctx context.Context, accountKey solana.PublicKey) (*ProgramDeployment, error) {
	acc, err := c.RpcClient.GetAccountInfo(ctx, accountKey)
	if err != nil {
		return nil, fmt.Errorf("GetAccountInfo(%s): %w", accountKey, err)
	}
	if acc == nil || acc.Value == nil {
		return nil, fmt.Errorf("account %s does not exist", accountKey)
	}

	return DeserializeDeployment(acc.Value.Data.GetBinary())
}
