package ledger

import "zk-proving-service/pkg/logger"

// Flat fee charged per signature by the ledger. A deployment transaction
// carries two signatures: the payer and the new program account.
const (
	lamportsPerSignature   = 5000
	deploymentSignatures   = 2
	minimumAccountSpace    = 2048
	accountSpaceAlignment  = 8
	largePayloadThreshold  = 10000
	mediumPayloadThreshold = 1000
	largePayloadGrowth     = 1.5
	mediumPayloadHeadroom  = 2048
	smallPayloadHeadroom   = 1024
)

// FeeEstimate itemizes the cost of publishing a payload: rent for the sized
// account plus the flat transaction fee.
type FeeEstimate struct {
	AccountSpace    uint64 `json:"account_space"`
	RentLamports    uint64 `json:"rent_lamports"`
	BaseFeeLamports uint64 `json:"base_fee_lamports"`
	TotalLamports   uint64 `json:"total_lamports"`
}

// RequiredAccountSpace sizes the ledger account for a payload, leaving enough
// headroom for metadata. Deterministic for a given payload length.
func RequiredAccountSpace(data []byte) uint64 {
	dataSize := len(data)

	var totalSize int
	if dataSize > largePayloadThreshold {
		totalSize = int(float64(dataSize) * largePayloadGrowth)
	} else if dataSize > mediumPayloadThreshold {
		totalSize = dataSize + mediumPayloadHeadroom
	} else {
		totalSize = dataSize + smallPayloadHeadroom
	}

	// round to 8 bytes
	if totalSize%accountSpaceAlignment != 0 {
		totalSize += accountSpaceAlignment - (totalSize % accountSpaceAlignment)
	}

	if totalSize < minimumAccountSpace {
		totalSize = minimumAccountSpace
	}

	logger.Default().Debugf("Data size: %d, calculated space: %d", dataSize, totalSize)
	return uint64(totalSize)
}

// BaseTransactionFee is the signature fee portion of a deployment.
func BaseTransactionFee() uint64 {
	return lamportsPerSignature * deploymentSignatures
}

func newFeeEstimate(space, rent uint64) FeeEstimate {
	base := BaseTransactionFee()
	return FeeEstimate{
		AccountSpace:    space,
		RentLamports:    rent,
		BaseFeeLamports: base,
		TotalLamports:   rent + base,
	}
}
