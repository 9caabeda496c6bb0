package program

import (
	"math/big"
	"testing"
)

func adultFunction(t *testing.T) *FunctionDefinition {
	t.Helper()
	prog, err := Parse([]byte(sampleProgram))
	if err != nil {
		t.Fatalf("Failed to parse program: %v", err)
	}
	fn, err := prog.Function("prove_adult")
	if err != nil {
		t.Fatalf("Failed to look up function: %v", err)
	}
	return fn
}

func TestNewFunctionCircuitLayout(t *testing.T) {
	circuit, err := NewFunctionCircuit(adultFunction(t))
	if err != nil {
		t.Fatalf("Failed to build circuit: %v", err)
	}

	if len(circuit.SecretInputs) != 3 {
		t.Errorf("Expected 3 secret variables, got %d", len(circuit.SecretInputs))
	}
	if len(circuit.PublicInputs) != 3 {
		t.Errorf("Expected 3 public variables, got %d", len(circuit.PublicInputs))
	}

	if _, err := NewFunctionCircuit(nil); err == nil {
		t.Error("Expected error for nil function")
	}
}

func TestAssignValues(t *testing.T) {
	circuit, err := NewFunctionCircuit(adultFunction(t))
	if err != nil {
		t.Fatalf("Failed to build circuit: %v", err)
	}

	assignment := circuit.Clone()
	err = assignment.AssignValues(map[string]interface{}{
		"birth_year":    1990,
		"birth_month":   7,
		"birth_day":     15,
		"current_year":  2026,
		"current_month": 8,
		"current_day":   29,
	})
	if err != nil {
		t.Fatalf("Failed to assign values: %v", err)
	}

	if assignment.SecretInputs[0] == nil {
		t.Error("Secret variable should be assigned")
	}
	if assignment.PublicInputs[0] == nil {
		t.Error("Public variable should be assigned")
	}
}

func TestAssignValuesRejectsMissingRequired(t *testing.T) {
	circuit, err := NewFunctionCircuit(adultFunction(t))
	if err != nil {
		t.Fatalf("Failed to build circuit: %v", err)
	}

	err = circuit.Clone().AssignValues(map[string]interface{}{
		"birth_year": 1990,
	})
	if err == nil {
		t.Error("Expected error for missing required inputs")
	}
}

func TestAssignValuesRejectsUnknownInput(t *testing.T) {
	circuit, err := NewFunctionCircuit(adultFunction(t))
	if err != nil {
		t.Fatalf("Failed to build circuit: %v", err)
	}

	err = circuit.Clone().AssignValues(map[string]interface{}{
		"not_an_input": 1,
	})
	if err == nil {
		t.Error("Expected error for unknown input")
	}
}

func TestDateValueEncoding(t *testing.T) {
	field := FieldDefinition{Name: "issued", Type: FieldTypeDate}

	variable, err := convertToVariable(field, "2024-03-09")
	if err != nil {
		t.Fatalf("Failed to convert date: %v", err)
	}
	if variable != int64(20240309) {
		t.Errorf("Expected 20240309, got %v", variable)
	}

	if _, err := convertToVariable(field, "not-a-date"); err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestStringValueHashesIntoField(t *testing.T) {
	field := FieldDefinition{Name: "country", Type: FieldTypeString}

	variable, err := convertToVariable(field, "PL")
	if err != nil {
		t.Fatalf("Failed to convert string: %v", err)
	}
	hashed, ok := variable.(*big.Int)
	if !ok {
		t.Fatalf("Expected *big.Int, got %T", variable)
	}

	if hashed.Cmp(HashStringToFieldElement("PL")) != 0 {
		t.Error("Same string must map to the same field element")
	}
	if hashed.Cmp(HashStringToFieldElement("DE")) == 0 {
		t.Error("Different strings should map to different field elements")
	}
}
