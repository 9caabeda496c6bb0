package prover

import (
	"os"
	"testing"

	"zk-proving-service/internal/keycache"
	"zk-proving-service/internal/program"
	"zk-proving-service/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	os.Exit(m.Run())
}

const proverTestProgram = `{
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

func newTestExecutor(t *testing.T) (*Executor, *program.ProgramDefinition) {
	t.Helper()
	prog, err := program.Parse([]byte(proverTestProgram))
	if err != nil {
		t.Fatalf("Failed to parse program: %v", err)
	}
	return NewExecutor(keycache.NewSynthesisCache(nil)), prog
}

func TestExecuteProducesVerifiableProof(t *testing.T) {
	executor, prog := newTestExecutor(t)

	result, err := executor.Execute(prog, "prove_above_threshold", map[string]interface{}{
		"score":     85,
		"threshold": 50,
	})
	if err != nil {
		t.Fatalf("Failed to execute: %v", err)
	}

	if result.ProgramChecksum != prog.Checksum() {
		t.Error("Result must reference the executed program")
	}
	if len(result.PublicOutputs) == 0 {
		t.Fatal("Execution should expose public outputs")
	}
	if result.PublicOutputs[0] != "50" {
		t.Errorf("Expected public threshold 50, got %s", result.PublicOutputs[0])
	}
}

func TestExecuteFailsOnUnsatisfiedConstraint(t *testing.T) {
	executor, prog := newTestExecutor(t)

	_, err := executor.Execute(prog, "prove_above_threshold", map[string]interface{}{
		"score":     30,
		"threshold": 50,
	})
	if err == nil {
		t.Error("Proving with a score below the threshold must fail")
	}
}

const ageTestProgram = `{
	"program_id": "credentials.zk",
	"version": "1.0.0",
	"functions": [
		{
			"name": "prove_adult",
			"inputs": [
				{"name": "birth_year", "type": "integer", "required": true},
				{"name": "birth_month", "type": "integer", "required": true},
				{"name": "birth_day", "type": "integer", "required": true},
				{"name": "current_year", "type": "integer", "required": true, "public": true},
				{"name": "current_month", "type": "integer", "required": true, "public": true},
				{"name": "current_day", "type": "integer", "required": true, "public": true}
			],
			"constraints": [
				{
					"type": "age_verification",
					"fields": ["birth_year", "birth_month", "birth_day", "current_year", "current_month", "current_day"],
					"value": 18
				}
			]
		}
	]
}`

func TestExecuteAgeVerificationBoundary(t *testing.T) {
	prog, err := program.Parse([]byte(ageTestProgram))
	if err != nil {
		t.Fatalf("Failed to parse program: %v", err)
	}
	executor := NewExecutor(keycache.NewSynthesisCache(nil))

	ageInputs := func(birthYear, birthMonth, birthDay int) map[string]interface{} {
		return map[string]interface{}{
			"birth_year":    birthYear,
			"birth_month":   birthMonth,
			"birth_day":     birthDay,
			"current_year":  2030,
			"current_month": 6,
			"current_day":   15,
		}
	}

	// Turned 18 exactly on the current date.
	if _, err := executor.Execute(prog, "prove_adult", ageInputs(2012, 6, 15)); err != nil {
		t.Errorf("Birthday on the current date must prove: %v", err)
	}

	// Comfortably over the age in the boundary year.
	if _, err := executor.Execute(prog, "prove_adult", ageInputs(2012, 1, 31)); err != nil {
		t.Errorf("Earlier birthday in the boundary year must prove: %v", err)
	}

	// One day short: same month, born the day after.
	if _, err := executor.Execute(prog, "prove_adult", ageInputs(2012, 6, 16)); err == nil {
		t.Error("Proving one day before the 18th birthday must fail")
	}

	// One month short in the boundary year.
	if _, err := executor.Execute(prog, "prove_adult", ageInputs(2012, 7, 15)); err == nil {
		t.Error("Proving one month before the 18th birthday must fail")
	}

	// Year after the boundary year fails regardless of month and day.
	if _, err := executor.Execute(prog, "prove_adult", ageInputs(2013, 1, 1)); err == nil {
		t.Error("Proving a year short of the minimum age must fail")
	}
}

func TestExecuteUnknownFunction(t *testing.T) {
	executor, prog := newTestExecutor(t)

	_, err := executor.Execute(prog, "missing", map[string]interface{}{"score": 85})
	if err == nil {
		t.Error("Expected error for unknown function")
	}
}
