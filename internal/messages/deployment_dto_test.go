package messages

import (
	"encoding/json"
	"errors"
	"testing"

	"zk-proving-service/pkg/reasoncodes"
)

func TestFailureFactoryStampsEventAndPayload(t *testing.T) {
	payload := []byte(`{"event_id": "evt-9"}`)
	factory := NewFailureFactory("evt-9", payload)

	dto := factory.CreateErrorDto(errors.New("boom"), reasoncodes.ErrProgramParse)
	if dto.EventId != "evt-9" {
		t.Errorf("Expected event id evt-9, got %s", dto.EventId)
	}
	if dto.ReasonCode != reasoncodes.ErrProgramParse {
		t.Errorf("Unexpected reason code: %v", dto.ReasonCode)
	}
	if dto.Error != "boom" {
		t.Errorf("Expected error message 'boom', got '%s'", dto.Error)
	}
	if string(dto.RawPayload) != string(payload) {
		t.Error("Raw payload should be carried for debugging")
	}

	nilErr := factory.CreateErrorDto(nil, reasoncodes.ErrLedger)
	if nilErr.Error != "" {
		t.Error("Nil error should serialize as empty message")
	}
}

func TestDeploymentRequestSerialization(t *testing.T) {
	dto := DeploymentRequestDto{EventId: "evt-1", ProgramSource: `{"program_id":"p"}`}

	data, err := dto.Serialize()
	if err != nil {
		t.Fatalf("Failed to serialize request: %v", err)
	}

	var decoded DeploymentRequestDto
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode request: %v", err)
	}
	if decoded.EventId != dto.EventId || decoded.ProgramSource != dto.ProgramSource {
		t.Error("Serialized request should round-trip")
	}
}
