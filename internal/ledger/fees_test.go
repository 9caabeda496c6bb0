package ledger

import (
	"bytes"
	"os"
	"testing"

	"zk-proving-service/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	os.Exit(m.Run())
}

func TestRequiredAccountSpace(t *testing.T) {
	cases := []struct {
		name     string
		dataLen  int
		expected uint64
	}{
		{"empty payload gets minimum", 0, 2048},
		{"small payload gets minimum", 10, 2048},
		{"medium payload gets headroom", 1500, 3552},
		{"aligned medium payload", 3000, 5048},
		{"large payload grows by half", 20000, 30000},
	}

	for _, tc := range cases {
		got := RequiredAccountSpace(bytes.Repeat([]byte{0xab}, tc.dataLen))
		if got != tc.expected {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.expected, got)
		}
		if got%8 != 0 {
			t.Errorf("%s: account space must be 8-byte aligned, got %d", tc.name, got)
		}
	}
}

func TestRequiredAccountSpaceIsDeterministic(t *testing.T) {
	payload := bytes.Repeat([]byte{0x01}, 4321)
	first := RequiredAccountSpace(payload)
	second := RequiredAccountSpace(payload)
	if first != second {
		t.Errorf("Space must be deterministic for the same payload: %d vs %d", first, second)
	}
}

func TestFeeEstimateTotals(t *testing.T) {
	if BaseTransactionFee() != 10000 {
		t.Errorf("Expected 10000 lamports base fee, got %d", BaseTransactionFee())
	}

	estimate := newFeeEstimate(2048, 15000)
	if estimate.TotalLamports != estimate.RentLamports+estimate.BaseFeeLamports {
		t.Error("Total must be rent plus base fee")
	}
	if estimate.TotalLamports != 25000 {
		t.Errorf("Expected 25000 lamports total, got %d", estimate.TotalLamports)
	}
}
