package handlers

import "zk-proving-service/internal/keycache"

type DeployIn struct {
	ProgramSource string `json:"program_source" binding:"required"`
}

type DeployOut struct {
	EventId         string `json:"event_id"`
	ProgramID       string `json:"program_id"`
	ProgramChecksum string `json:"program_checksum"`
	Status          string `json:"status"`
}

type DeploymentStatusOut struct {
	EventId         string `json:"event_id"`
	ProgramID       string `json:"program_id"`
	ProgramChecksum string `json:"program_checksum"`
	Status          string `json:"status"`
	LedgerAccount   string `json:"ledger_account,omitempty"`
	LedgerSignature string `json:"ledger_signature,omitempty"`
	FeeLamports     uint64 `json:"fee_lamports,omitempty"`
	FailureReason   string `json:"failure_reason,omitempty"`
}

type DeploymentListOut struct {
	ProgramChecksum string                `json:"program_checksum"`
	Deployments     []DeploymentStatusOut `json:"deployments"`
}

type ExecutionOut struct {
	EventId       string   `json:"event_id"`
	Function      string   `json:"function"`
	PublicOutputs []string `json:"public_outputs"`
	Verified      bool     `json:"verified"`
}

type ExecutionListOut struct {
	ProgramChecksum string         `json:"program_checksum"`
	Function        string         `json:"function"`
	Executions      []ExecutionOut `json:"executions"`
}

type FeeEstimateIn struct {
	ProgramSource string `json:"program_source" binding:"required"`
}

type FeeEstimateOut struct {
	ProgramChecksum string `json:"program_checksum"`
	AccountSpace    uint64 `json:"account_space"`
	RentLamports    uint64 `json:"rent_lamports"`
	BaseFeeLamports uint64 `json:"base_fee_lamports"`
	TotalLamports   uint64 `json:"total_lamports"`
}

type SynthesizeIn struct {
	ProgramSource string `json:"program_source" binding:"required"`
	Function      string `json:"function" binding:"required"`
}

type SynthesizeOut struct {
	Keys keycache.Metadata `json:"keys"`
}

type ExecuteIn struct {
	ProgramSource string                 `json:"program_source" binding:"required"`
	Function      string                 `json:"function" binding:"required"`
	Inputs        map[string]interface{} `json:"inputs"`
}

type ExecuteOut struct {
	ProgramID        string   `json:"program_id"`
	ProgramChecksum  string   `json:"program_checksum"`
	Function         string   `json:"function"`
	PublicOutputs    []string `json:"public_outputs"`
	ExecutionBlobB64 string   `json:"execution_blob_b64"`
}

type VerifyIn struct {
	ProgramSource    string `json:"program_source" binding:"required"`
	Function         string `json:"function" binding:"required"`
	ExecutionBlobB64 string `json:"execution_blob_b64" binding:"required"`
}

type VerifyOut struct {
	OK            bool     `json:"ok"`
	PublicOutputs []string `json:"public_outputs,omitempty"`
	Error         string   `json:"error,omitempty"`
}

type RecordParseIn struct {
	Record string `json:"record" binding:"required"`
}

type RecordParseOut struct {
	Owner     string `json:"owner"`
	Gates     uint64 `json:"gates"`
	Nonce     string `json:"nonce"`
	Canonical string `json:"canonical"`
}

type SerialNumberIn struct {
	Record     string `json:"record" binding:"required"`
	PrivateKey string `json:"private_key" binding:"required"`
	ProgramID  string `json:"program_id" binding:"required"`
	RecordName string `json:"record_name" binding:"required"`
}

type SerialNumberOut struct {
	SerialNumber string `json:"serial_number"`
}

type NewAccountIn struct {
	SeedB64 string `json:"seed_b64,omitempty"`
	Secret  string `json:"secret,omitempty"`
}

type AccountOut struct {
	PrivateKey string `json:"private_key,omitempty"`
	ViewKey    string `json:"view_key"`
	Address    string `json:"address"`
	Ciphertext string `json:"ciphertext,omitempty"`
}

type DecryptAccountIn struct {
	Ciphertext string `json:"ciphertext" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
}

type SignIn struct {
	PrivateKey string `json:"private_key" binding:"required"`
	MessageB64 string `json:"message_b64" binding:"required"`
}

type SignOut struct {
	Address      string `json:"address"`
	SignatureB64 string `json:"signature_b64"`
}

type VerifySignatureIn struct {
	Address      string `json:"address" binding:"required"`
	MessageB64   string `json:"message_b64" binding:"required"`
	SignatureB64 string `json:"signature_b64" binding:"required"`
}

type VerifySignatureOut struct {
	OK bool `json:"ok"`
}
