package prover

import (
	"testing"

	"zk-proving-service/internal/keycache"
	"zk-proving-service/internal/program"
)

func executeAndSerialize(t *testing.T) (*Verifier, *program.ProgramDefinition, []byte) {
	t.Helper()

	cache := keycache.NewSynthesisCache(nil)
	prog, err := program.Parse([]byte(proverTestProgram))
	if err != nil {
		t.Fatalf("Failed to parse program: %v", err)
	}

	result, err := NewExecutor(cache).Execute(prog, "prove_above_threshold", map[string]interface{}{
		"score":     85,
		"threshold": 50,
	})
	if err != nil {
		t.Fatalf("Failed to execute: %v", err)
	}

	serialized, err := result.SerializeBorsh()
	if err != nil {
		t.Fatalf("Failed to serialize execution: %v", err)
	}

	return NewVerifier(cache), prog, serialized
}

func TestVerifyExecutionRoundTrip(t *testing.T) {
	verifier, prog, serialized := executeAndSerialize(t)

	result, err := verifier.VerifyExecution(prog, "prove_above_threshold", serialized)
	if err != nil {
		t.Fatalf("Expected verification to pass: %v", err)
	}

	if result.Function != "prove_above_threshold" {
		t.Errorf("Unexpected function in reconstructed execution: %s", result.Function)
	}
	if len(result.PublicOutputs) == 0 || result.PublicOutputs[0] != "50" {
		t.Errorf("Reconstructed outputs should match the execution, got %v", result.PublicOutputs)
	}
}

func TestVerifyExecutionRejectsWrongFunction(t *testing.T) {
	verifier, prog, serialized := executeAndSerialize(t)

	if _, err := verifier.VerifyExecution(prog, "some_other_function", serialized); err == nil {
		t.Error("Verification must reject a function name mismatch")
	}
}

func TestVerifyExecutionRejectsWrongProgram(t *testing.T) {
	verifier, _, serialized := executeAndSerialize(t)

	other, err := program.Parse([]byte(`{
		"program_id": "scores.zk",
		"version": "2.0.0",
		"functions": [
			{
				"name": "prove_above_threshold",
				"inputs": [
					{"name": "score", "type": "integer", "required": true},
					{"name": "threshold", "type": "integer", "required": true, "public": true}
				],
				"constraints": [
					{"type": "comparison", "fields": ["score", "threshold"], "operator": "greater_than"}
				]
			}
		]
	}`))
	if err != nil {
		t.Fatalf("Failed to parse program: %v", err)
	}

	if _, err := verifier.VerifyExecution(other, "prove_above_threshold", serialized); err == nil {
		t.Error("Verification must reject a program checksum mismatch")
	}
}

func TestVerifyExecutionRejectsTamperedBlob(t *testing.T) {
	verifier, prog, serialized := executeAndSerialize(t)

	tampered := append([]byte(nil), serialized...)
	tampered[len(tampered)-1] ^= 0xff

	if _, err := verifier.VerifyExecution(prog, "prove_above_threshold", tampered); err == nil {
		t.Error("Verification must reject a tampered blob")
	}
}

func TestReconstructExecutionRejectsGarbage(t *testing.T) {
	if _, err := ReconstructExecution([]byte{0x01, 0x02, 0x03}); err == nil {
		t.Error("Expected error for malformed blob")
	}
}
