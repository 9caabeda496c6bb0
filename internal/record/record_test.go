package record

import (
	"fmt"
	"strings"
	"testing"

	"zk-proving-service/internal/account"
)

func testOwner(t *testing.T) *account.Account {
	t.Helper()
	seed := make([]byte, account.SeedLength)
	copy(seed, []byte("record-test-seed"))
	acct, err := account.FromSeed(seed)
	if err != nil {
		t.Fatalf("Failed to derive account: %v", err)
	}
	return acct
}

func testRecordString(acct *account.Account) string {
	return fmt.Sprintf("{ owner: %s.private, gates: 99u64.public, _nonce: 0group.public }", acct.Address())
}

func TestParseAndStringRoundTrip(t *testing.T) {
	acct := testOwner(t)

	rec, err := Parse(testRecordString(acct))
	if err != nil {
		t.Fatalf("Failed to parse record: %v", err)
	}

	expected := fmt.Sprintf("{\n  owner: %s.private,\n  gates: 99u64.public,\n  _nonce: 0group.public\n}", acct.Address())
	if rec.String() != expected {
		t.Errorf("Canonical form mismatch:\n%s\nvs\n%s", rec.String(), expected)
	}

	// The canonical multiline form must parse back to the same record.
	again, err := Parse(rec.String())
	if err != nil {
		t.Fatalf("Failed to re-parse canonical form: %v", err)
	}
	if again.String() != expected {
		t.Error("Round trip through the canonical form must be stable")
	}
}

func TestGates(t *testing.T) {
	acct := testOwner(t)

	rec, err := Parse(testRecordString(acct))
	if err != nil {
		t.Fatalf("Failed to parse record: %v", err)
	}
	if rec.Gates != 99 {
		t.Errorf("Expected 99 gates, got %d", rec.Gates)
	}
	if rec.Owner != acct.Address() {
		t.Errorf("Expected owner %s, got %s", acct.Address(), rec.Owner)
	}
}

func TestSerialNumberIsDeterministic(t *testing.T) {
	acct := testOwner(t)

	rec, err := Parse(testRecordString(acct))
	if err != nil {
		t.Fatalf("Failed to parse record: %v", err)
	}

	first, err := rec.SerialNumber(acct, "token.zk", "token")
	if err != nil {
		t.Fatalf("Failed to derive serial number: %v", err)
	}
	if first == "" {
		t.Fatal("Serial number should not be empty")
	}

	second, err := rec.SerialNumber(acct, "token.zk", "token")
	if err != nil {
		t.Fatalf("Failed to derive serial number again: %v", err)
	}
	if first != second {
		t.Errorf("Serial number must be stable for the same key: %s vs %s", first, second)
	}

	other, err := rec.SerialNumber(acct, "token.zk", "credits")
	if err != nil {
		t.Fatalf("Failed to derive serial number for other record name: %v", err)
	}
	if other == first {
		t.Error("Serial number must depend on the record name")
	}
}

func TestSerialNumberRequiresOwnership(t *testing.T) {
	acct := testOwner(t)

	rec, err := Parse(testRecordString(acct))
	if err != nil {
		t.Fatalf("Failed to parse record: %v", err)
	}

	stranger, err := account.New()
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	if _, err := rec.SerialNumber(stranger, "token.zk", "token"); err == nil {
		t.Error("A non-owner must not derive the serial number")
	}

	if _, err := rec.SerialNumber(acct, "bad program!", "token"); err == nil {
		t.Error("Expected error for invalid program id")
	}
	if _, err := rec.SerialNumber(acct, "token.zk", ""); err == nil {
		t.Error("Expected error for empty record name")
	}
}

func TestParseRejectsBadRecords(t *testing.T) {
	acct := testOwner(t)
	addr := acct.Address()

	cases := []struct {
		name string
		src  string
	}{
		{"not a record", "just a string"},
		{"empty braces", "{ }"},
		{"missing owner", "{ gates: 99u64.public, _nonce: 0group.public }"},
		{"missing gates", fmt.Sprintf("{ owner: %s.private, _nonce: 0group.public }", addr)},
		{"missing nonce", fmt.Sprintf("{ owner: %s.private, gates: 99u64.public }", addr)},
		{"bad owner address", "{ owner: addr1notbase58!!.private, gates: 99u64.public, _nonce: 0group.public }"},
		{"wrong owner prefix", strings.Replace(testRecordString(acct), account.AddressPrefix, "xyz1", 1)},
		{"gates without suffix", fmt.Sprintf("{ owner: %s.private, gates: 99.public, _nonce: 0group.public }", addr)},
		{"nonce without suffix", fmt.Sprintf("{ owner: %s.private, gates: 99u64.public, _nonce: 0.public }", addr)},
		{"missing visibility", fmt.Sprintf("{ owner: %s, gates: 99u64.public, _nonce: 0group.public }", addr)},
		{"unknown visibility", fmt.Sprintf("{ owner: %s.hidden, gates: 99u64.public, _nonce: 0group.public }", addr)},
		{"unknown entry", fmt.Sprintf("{ owner: %s.private, gates: 99u64.public, _nonce: 0group.public, extra: 1u64.public }", addr)},
		{"duplicate entry", fmt.Sprintf("{ owner: %s.private, owner: %s.private, gates: 99u64.public, _nonce: 0group.public }", addr, addr)},
	}

	for _, tc := range cases {
		if _, err := Parse(tc.src); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}
