package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/google/uuid"

	"zk-proving-service/internal/account"
	"zk-proving-service/internal/deployments"
	"zk-proving-service/internal/keycache"
	"zk-proving-service/internal/ledger"
	"zk-proving-service/internal/messages"
	"zk-proving-service/internal/program"
	"zk-proving-service/internal/prover"
	"zk-proving-service/internal/record"
	"zk-proving-service/pkg/logger"
	"zk-proving-service/pkg/rabbitmq"
	"zk-proving-service/pkg/utilities"
)

const deployRequestPublisherAlias rabbitmq.PublisherAlias = "DeploymentRequestsPublisher"

// ProvingService backs the REST surface. Deployment is asynchronous: the
// request is queued for the deployment worker and tracked in the repository.
type ProvingService struct {
	cache      *keycache.SynthesisCache
	executor   *prover.Executor
	verifier   *prover.Verifier
	ledger     *ledger.Client
	repository *deployments.Repository
}

func NewProvingService(
	cache *keycache.SynthesisCache,
	executor *prover.Executor,
	verifier *prover.Verifier,
	ledgerClient *ledger.Client,
	repository *deployments.Repository,
) *ProvingService {
	return &ProvingService{
		cache:      cache,
		executor:   executor,
		verifier:   verifier,
		ledger:     ledgerClient,
		repository: repository,
	}
}

func (s *ProvingService) RequestDeployment(in DeployIn) (DeployOut, error) {
	prog, err := program.Parse([]byte(in.ProgramSource))
	if err != nil {
		return DeployOut{}, err
	}

	eventId := uuid.NewString()
	if _, err := s.repository.CreatePending(eventId, prog.ProgramID, prog.Checksum()); err != nil {
		return DeployOut{}, err
	}

	request := messages.DeploymentRequestDto{
		EventId:       eventId,
		ProgramSource: in.ProgramSource,
	}
	if err := rabbitmq.GetPublisher(deployRequestPublisherAlias).Publish(request); err != nil {
		return DeployOut{}, fmt.Errorf("queue deployment request: %w", err)
	}

	return DeployOut{
		EventId:         eventId,
		ProgramID:       prog.ProgramID,
		ProgramChecksum: prog.Checksum(),
		Status:          deployments.StatusPending,
	}, nil
}

func (s *ProvingService) DeploymentStatus(eventId string) (DeploymentStatusOut, error) {
	record, err := s.repository.FindByEventId(eventId)
	if err != nil {
		return DeploymentStatusOut{}, err
	}
	return DeploymentStatusOut{
		EventId:         record.EventId,
		ProgramID:       record.ProgramID,
		ProgramChecksum: record.ProgramChecksum,
		Status:          record.Status,
		LedgerAccount:   record.LedgerAccount,
		LedgerSignature: record.LedgerSignature,
		FeeLamports:     record.FeeLamports,
		FailureReason:   record.FailureReason,
	}, nil
}

func (s *ProvingService) ListDeployments(checksum string) (DeploymentListOut, error) {
	records, err := s.repository.ListByProgram(checksum)
	if err != nil {
		return DeploymentListOut{}, err
	}

	return DeploymentListOut{
		ProgramChecksum: checksum,
		Deployments: utilities.Map(records, func(record deployments.DeploymentRecord) DeploymentStatusOut {
			return DeploymentStatusOut{
				EventId:         record.EventId,
				ProgramID:       record.ProgramID,
				ProgramChecksum: record.ProgramChecksum,
				Status:          record.Status,
				LedgerAccount:   record.LedgerAccount,
				LedgerSignature: record.LedgerSignature,
				FeeLamports:     record.FeeLamports,
				FailureReason:   record.FailureReason,
			}
		}),
	}, nil
}

func (s *ProvingService) ListExecutions(checksum, function string) (ExecutionListOut, error) {
	records, err := s.repository.ListExecutions(checksum, function)
	if err != nil {
		return ExecutionListOut{}, err
	}

	return ExecutionListOut{
		ProgramChecksum: checksum,
		Function:        function,
		Executions: utilities.Map(records, func(record deployments.ExecutionRecord) ExecutionOut {
			var outputs []string
			_ = json.Unmarshal([]byte(record.PublicOutputs), &outputs)
			return ExecutionOut{
				EventId:       record.EventId,
				Function:      record.Function,
				PublicOutputs: outputs,
				Verified:      record.Verified,
			}
		}),
	}, nil
}

// EstimateDeploymentFee prices the full deployment payload, including the
// verifying keys, so the quote matches what the worker will actually publish.
func (s *ProvingService) EstimateDeploymentFee(ctx context.Context, in FeeEstimateIn) (FeeEstimateOut, error) {
	prog, err := program.Parse([]byte(in.ProgramSource))
	if err != nil {
		return FeeEstimateOut{}, err
	}

	verifyingKeys := make(map[string]groth16.VerifyingKey, len(prog.Functions))
	for _, fnName := range prog.FunctionNames() {
		entry, err := s.cache.Keys(prog, fnName)
		if err != nil {
			return FeeEstimateOut{}, err
		}
		verifyingKeys[fnName] = entry.VerifyingKey
	}

	deployment, err := ledger.NewProgramDeployment(prog, []byte(in.ProgramSource), verifyingKeys)
	if err != nil {
		return FeeEstimateOut{}, err
	}
	payload, err := deployment.SerializeBorsh()
	if err != nil {
		return FeeEstimateOut{}, err
	}

	fee, err := s.ledger.EstimateDeploymentFee(ctx, payload)
	if err != nil {
		return FeeEstimateOut{}, err
	}

	return FeeEstimateOut{
		ProgramChecksum: prog.Checksum(),
		AccountSpace:    fee.AccountSpace,
		RentLamports:    fee.RentLamports,
		BaseFeeLamports: fee.BaseFeeLamports,
		TotalLamports:   fee.TotalLamports,
	}, nil
}

func (s *ProvingService) SynthesizeKeys(in SynthesizeIn) (SynthesizeOut, error) {
	prog, err := program.Parse([]byte(in.ProgramSource))
	if err != nil {
		return SynthesizeOut{}, err
	}

	entry, err := s.cache.Keys(prog, in.Function)
	if err != nil {
		return SynthesizeOut{}, err
	}

	return SynthesizeOut{Keys: entry.Describe()}, nil
}

func (s *ProvingService) Execute(in ExecuteIn) (ExecuteOut, error) {
	prog, err := program.Parse([]byte(in.ProgramSource))
	if err != nil {
		return ExecuteOut{}, err
	}

	result, err := s.executor.Execute(prog, in.Function, in.Inputs)
	if err != nil {
		return ExecuteOut{}, err
	}

	blob, err := result.SerializeBorsh()
	if err != nil {
		return ExecuteOut{}, err
	}

	outputsJSON, err := json.Marshal(result.PublicOutputs)
	if err == nil {
		if err := s.repository.RecordExecution(uuid.NewString(), result.ProgramChecksum, result.Function, string(outputsJSON), false); err != nil {
			logger.Default().Errorf(err, "Failed to record execution of %s/%s", result.ProgramChecksum, result.Function)
		}
	}

	return ExecuteOut{
		ProgramID:        result.ProgramID,
		ProgramChecksum:  result.ProgramChecksum,
		Function:         result.Function,
		PublicOutputs:    result.PublicOutputs,
		ExecutionBlobB64: base64.StdEncoding.EncodeToString(blob),
	}, nil
}

func (s *ProvingService) VerifyExecution(in VerifyIn) (VerifyOut, error) {
	prog, err := program.Parse([]byte(in.ProgramSource))
	if err != nil {
		return VerifyOut{}, err
	}

	blob, err := base64.StdEncoding.DecodeString(in.ExecutionBlobB64)
	if err != nil {
		return VerifyOut{}, fmt.Errorf("decode execution blob: %w", err)
	}

	result, err := s.verifier.VerifyExecution(prog, in.Function, blob)
	if err != nil {
		return VerifyOut{OK: false, Error: err.Error()}, nil
	}

	outputsJSON, marshalErr := json.Marshal(result.PublicOutputs)
	if marshalErr == nil {
		if err := s.repository.RecordExecution(uuid.NewString(), result.ProgramChecksum, result.Function, string(outputsJSON), true); err != nil {
			logger.Default().Errorf(err, "Failed to record verified execution of %s/%s", result.ProgramChecksum, result.Function)
		}
	}

	return VerifyOut{OK: true, PublicOutputs: result.PublicOutputs}, nil
}

func (s *ProvingService) ParseRecord(in RecordParseIn) (RecordParseOut, error) {
	rec, err := record.Parse(in.Record)
	if err != nil {
		return RecordParseOut{}, err
	}

	return RecordParseOut{
		Owner:     rec.Owner,
		Gates:     rec.Gates,
		Nonce:     rec.Nonce,
		Canonical: rec.String(),
	}, nil
}

func (s *ProvingService) RecordSerialNumber(in SerialNumberIn) (SerialNumberOut, error) {
	rec, err := record.Parse(in.Record)
	if err != nil {
		return SerialNumberOut{}, err
	}

	acct, err := account.FromString(in.PrivateKey)
	if err != nil {
		return SerialNumberOut{}, err
	}

	serialNumber, err := rec.SerialNumber(acct, in.ProgramID, in.RecordName)
	if err != nil {
		return SerialNumberOut{}, err
	}
	return SerialNumberOut{SerialNumber: serialNumber}, nil
}

func (s *ProvingService) NewAccount(in NewAccountIn) (AccountOut, error) {
	var (
		acct *account.Account
		err  error
	)

	if in.SeedB64 != "" {
		seed, decodeErr := base64.StdEncoding.DecodeString(in.SeedB64)
		if decodeErr != nil {
			return AccountOut{}, fmt.Errorf("decode seed: %w", decodeErr)
		}
		acct, err = account.FromSeed(seed)
	} else {
		acct, err = account.New()
	}
	if err != nil {
		return AccountOut{}, err
	}

	out := AccountOut{
		ViewKey: acct.ViewKey(),
		Address: acct.Address(),
	}

	if in.Secret != "" {
		ciphertext, err := account.EncryptPrivateKey(acct, in.Secret)
		if err != nil {
			return AccountOut{}, err
		}
		out.Ciphertext = ciphertext
	} else {
		out.PrivateKey = acct.String()
	}

	return out, nil
}

func (s *ProvingService) DecryptAccount(in DecryptAccountIn) (AccountOut, error) {
	acct, err := account.DecryptPrivateKey(in.Ciphertext, in.Secret)
	if err != nil {
		return AccountOut{}, err
	}
	return AccountOut{
		PrivateKey: acct.String(),
		ViewKey:    acct.ViewKey(),
		Address:    acct.Address(),
	}, nil
}

func (s *ProvingService) Sign(in SignIn) (SignOut, error) {
	acct, err := account.FromString(in.PrivateKey)
	if err != nil {
		return SignOut{}, err
	}

	message, err := base64.StdEncoding.DecodeString(in.MessageB64)
	if err != nil {
		return SignOut{}, fmt.Errorf("decode message: %w", err)
	}

	sig, err := acct.Sign(message)
	if err != nil {
		return SignOut{}, err
	}

	return SignOut{
		Address:      acct.Address(),
		SignatureB64: base64.StdEncoding.EncodeToString(sig),
	}, nil
}

func (s *ProvingService) VerifySignature(in VerifySignatureIn) (VerifySignatureOut, error) {
	message, err := base64.StdEncoding.DecodeString(in.MessageB64)
	if err != nil {
		return VerifySignatureOut{}, fmt.Errorf("decode message: %w", err)
	}
	sig, err := base64.StdEncoding.DecodeString(in.SignatureB64)
	if err != nil {
		return VerifySignatureOut{}, fmt.Errorf("decode signature: %w", err)
	}

	ok, err := account.VerifySignature(in.Address, message, sig)
	if err != nil {
		return VerifySignatureOut{}, err
	}
	return VerifySignatureOut{OK: ok}, nil
}
