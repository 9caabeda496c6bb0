package reasoncodes

type ReasonCode string

const (
	ErrUnmarshal       ReasonCode = "UnmarshalError"
	ErrProgramParse    ReasonCode = "ProgramParseError"
	ErrKeySynthesis    ReasonCode = "KeySynthesisError"
	ErrProofGeneration ReasonCode = "ProofGenerationError"
	ErrLedger          ReasonCode = "LedgerError"
	ErrPersistence     ReasonCode = "PersistenceError"
)
