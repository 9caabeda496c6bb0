package messages

import (
	"zk-proving-service/pkg/reasoncodes"
	"zk-proving-service/pkg/utilities"
)

// DeploymentRequestDto asks the worker to publish a program. ProgramSource is
// the raw program JSON.
type DeploymentRequestDto struct {
	EventId       string `json:"event_id"`
	ProgramSource string `json:"program_source"`
}

func (d DeploymentRequestDto) Serialize() ([]byte, error) {
	return utilities.Serialize[DeploymentRequestDto](d)
}

type DeploymentResultDto struct {
	EventId         string `json:"event_id"`
	ProgramID       string `json:"program_id"`
	ProgramChecksum string `json:"program_checksum"`
	LedgerAccount   string `json:"ledger_account"`
	LedgerSignature string `json:"ledger_signature"`
	FeeLamports     uint64 `json:"fee_lamports"`
}

func (d DeploymentResultDto) Serialize() ([]byte, error) {
	return utilities.Serialize[DeploymentResultDto](d)
}

type DeploymentFailureDto struct {
	EventId    string                 `json:"event_id"`
	ReasonCode reasoncodes.ReasonCode `json:"reason_code"`
	Error      string                 `json:"error"`
	RawPayload []byte                 `json:"raw_payload,omitempty"`
}

func (d DeploymentFailureDto) Serialize() ([]byte, error) {
	return utilities.Serialize[DeploymentFailureDto](d)
}

// FailureFactory stamps failures with the originating event and payload so
// dead-lettered messages stay debuggable.
type FailureFactory struct {
	eventId    string
	rawPayload []byte
}

func NewFailureFactory(eventId string, rawPayload []byte) FailureFactory {
	return FailureFactory{eventId: eventId, rawPayload: rawPayload}
}

func (f FailureFactory) CreateErrorDto(err error, code reasoncodes.ReasonCode) DeploymentFailureDto {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return DeploymentFailureDto{
		EventId:    f.eventId,
		ReasonCode: code,
		Error:      msg,
		RawPayload: f.rawPayload,
	}
}
