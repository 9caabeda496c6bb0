package handlers

import (
	"fmt"
	"os"
	"testing"

	"zk-proving-service/internal/account"
	"zk-proving-service/internal/deployments"
	"zk-proving-service/internal/keycache"
	"zk-proving-service/internal/prover"
	"zk-proving-service/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	os.Exit(m.Run())
}

const serviceTestProgram = `{
	"program_id": "scores.zk",
	"version": "1.0.0",
	"functions": [
		{
			"name": "prove_above_threshold",
			"inputs": [
				{"name": "score", "type": "integer", "required": true},
				{"name": "threshold", "type": "integer", "required": true, "public": true}
			],
			"constraints": [
				{"type": "comparison", "fields": ["score", "threshold"], "operator": "greater_equal"}
			]
		}
	]
}`

func newTestService(t *testing.T) *ProvingService {
	t.Helper()

	db, err := deployments.ConnectToDatabase("file::memory:?cache=private")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	repository := deployments.NewRepository(db)

	cache := keycache.NewSynthesisCache(nil)
	return NewProvingService(cache, prover.NewExecutor(cache), prover.NewVerifier(cache), nil, repository)
}

func TestExecuteRecordsHistory(t *testing.T) {
	service := newTestService(t)

	out, err := service.Execute(ExecuteIn{
		ProgramSource: serviceTestProgram,
		Function:      "prove_above_threshold",
		Inputs:        map[string]interface{}{"score": 85, "threshold": 50},
	})
	if err != nil {
		t.Fatalf("Failed to execute: %v", err)
	}
	if out.ExecutionBlobB64 == "" {
		t.Fatal("Execution should return a serialized blob")
	}

	history, err := service.ListExecutions(out.ProgramChecksum, out.Function)
	if err != nil {
		t.Fatalf("Failed to list executions: %v", err)
	}
	if len(history.Executions) != 1 {
		t.Fatalf("Expected 1 recorded execution, got %d", len(history.Executions))
	}
	if history.Executions[0].Verified {
		t.Error("A local execution must not be marked verified")
	}

	verified, err := service.VerifyExecution(VerifyIn{
		ProgramSource:    serviceTestProgram,
		Function:         out.Function,
		ExecutionBlobB64: out.ExecutionBlobB64,
	})
	if err != nil {
		t.Fatalf("Failed to verify execution: %v", err)
	}
	if !verified.OK {
		t.Fatalf("Verification should succeed: %s", verified.Error)
	}

	history, err = service.ListExecutions(out.ProgramChecksum, out.Function)
	if err != nil {
		t.Fatalf("Failed to list executions after verify: %v", err)
	}
	if len(history.Executions) != 2 {
		t.Fatalf("Verification must add a second history entry, got %d", len(history.Executions))
	}

	sawVerified := false
	for _, execution := range history.Executions {
		if execution.Verified {
			sawVerified = true
		}
	}
	if !sawVerified {
		t.Error("Verified execution must be recorded as verified")
	}
}

func TestRecordOperations(t *testing.T) {
	service := newTestService(t)

	acct, err := account.New()
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	plaintext := fmt.Sprintf("{ owner: %s.private, gates: 42u64.public, _nonce: 7group.public }", acct.Address())

	parsed, err := service.ParseRecord(RecordParseIn{Record: plaintext})
	if err != nil {
		t.Fatalf("Failed to parse record: %v", err)
	}
	if parsed.Gates != 42 || parsed.Owner != acct.Address() {
		t.Errorf("Unexpected record contents: %+v", parsed)
	}
	if parsed.Canonical == "" {
		t.Error("Canonical form should not be empty")
	}

	serial, err := service.RecordSerialNumber(SerialNumberIn{
		Record:     plaintext,
		PrivateKey: acct.String(),
		ProgramID:  "token.zk",
		RecordName: "token",
	})
	if err != nil {
		t.Fatalf("Failed to derive serial number: %v", err)
	}
	if serial.SerialNumber == "" {
		t.Error("Serial number should not be empty")
	}

	if _, err := service.RecordSerialNumber(SerialNumberIn{
		Record:     plaintext,
		PrivateKey: "PrivateKey1garbage",
		ProgramID:  "token.zk",
		RecordName: "token",
	}); err == nil {
		t.Error("Expected error for an invalid private key")
	}
}
