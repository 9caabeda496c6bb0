package record

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"zk-proving-service/internal/account"
)

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// Record is the plaintext form of a spendable ledger record. The string form
// is `{ owner: <address>.<vis>, gates: <n>u64.<vis>, _nonce: <n>group.<vis> }`
// and parsing tolerates arbitrary whitespace and newlines between entries.
type Record struct {
	Owner string
	Gates uint64
	Nonce string

	ownerVisibility Visibility
	gatesVisibility Visibility
	nonceVisibility Visibility
}

// Parse reads a record from its plaintext string.
func Parse(plaintext string) (*Record, error) {
	body := strings.TrimSpace(plaintext)
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		return nil, errors.New("record must be enclosed in braces")
	}
	body = strings.TrimSpace(body[1 : len(body)-1])
	if body == "" {
		return nil, errors.New("record has no entries")
	}

	rec := &Record{}
	seen := make(map[string]struct{}, 3)

	for _, entry := range strings.Split(body, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, value, found := strings.Cut(entry, ":")
		if !found {
			return nil, fmt.Errorf("malformed record entry '%s'", entry)
		}
		key = strings.TrimSpace(key)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate record entry '%s'", key)
		}
		seen[key] = struct{}{}

		payload, visibility, err := splitVisibility(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("entry '%s': %w", key, err)
		}

		switch key {
		case "owner":
			if _, err := account.ParseAddress(payload); err != nil {
				return nil, fmt.Errorf("record owner: %w", err)
			}
			rec.Owner = payload
			rec.ownerVisibility = visibility
		case "gates":
			gates, err := parseGates(payload)
			if err != nil {
				return nil, err
			}
			rec.Gates = gates
			rec.gatesVisibility = visibility
		case "_nonce":
			nonce, err := parseNonce(payload)
			if err != nil {
				return nil, err
			}
			rec.Nonce = nonce
			rec.nonceVisibility = visibility
		default:
			return nil, fmt.Errorf("unknown record entry '%s'", key)
		}
	}

	for _, required := range []string{"owner", "gates", "_nonce"} {
		if _, ok := seen[required]; !ok {
			return nil, fmt.Errorf("record missing entry '%s'", required)
		}
	}

	return rec, nil
}

// String renders the canonical multiline plaintext. Parsing the result yields
// an identical record.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  owner: %s.%s,\n", r.Owner, r.ownerVisibility)
	fmt.Fprintf(&sb, "  gates: %du64.%s,\n", r.Gates, r.gatesVisibility)
	fmt.Fprintf(&sb, "  _nonce: %sgroup.%s\n", r.Nonce, r.nonceVisibility)
	sb.WriteString("}")
	return sb.String()
}

// Commitment binds the record to the program and record type it belongs to,
// reduced into the scalar field.
func (r *Record) Commitment(programID, recordName string) ([]byte, error) {
	if err := validateIdentifier("program id", programID); err != nil {
		return nil, err
	}
	if err := validateIdentifier("record name", recordName); err != nil {
		return nil, err
	}

	h := sha256.New()
	h.Write([]byte(programID))
	h.Write([]byte{0})
	h.Write([]byte(recordName))
	h.Write([]byte{0})
	h.Write([]byte(r.String()))

	var elem fr.Element
	elem.SetBytes(h.Sum(nil))
	raw := elem.Bytes()
	return raw[:], nil
}

// SerialNumber derives the record's spend marker for the owning account. A
// ledger that has seen the serial number before knows the record is spent.
func (r *Record) SerialNumber(acct *account.Account, programID, recordName string) (string, error) {
	if acct == nil {
		return "", errors.New("account is required for serial number derivation")
	}
	if acct.Address() != r.Owner {
		return "", errors.New("account does not own this record")
	}

	commitment, err := r.Commitment(programID, recordName)
	if err != nil {
		return "", err
	}
	return acct.DeriveSerialNumber(commitment), nil
}

func splitVisibility(value string) (string, Visibility, error) {
	payload, suffix, found := strings.Cut(value, ".")
	if !found {
		return "", "", fmt.Errorf("value '%s' missing visibility suffix", value)
	}
	switch Visibility(suffix) {
	case VisibilityPrivate:
		return payload, VisibilityPrivate, nil
	case VisibilityPublic:
		return payload, VisibilityPublic, nil
	default:
		return "", "", fmt.Errorf("unknown visibility '%s'", suffix)
	}
}

func parseGates(payload string) (uint64, error) {
	digits, ok := strings.CutSuffix(payload, "u64")
	if !ok {
		return 0, fmt.Errorf("gates value '%s' must carry the u64 suffix", payload)
	}
	gates, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid gates value '%s': %w", digits, err)
	}
	return gates, nil
}

func parseNonce(payload string) (string, error) {
	value, ok := strings.CutSuffix(payload, "group")
	if !ok {
		return "", fmt.Errorf("nonce value '%s' must carry the group suffix", payload)
	}
	if value == "" {
		return "", errors.New("empty nonce value")
	}
	if _, err := strconv.ParseUint(value, 10, 64); err != nil {
		var elem fr.Element
		if _, err := elem.SetString(value); err != nil {
			return "", fmt.Errorf("invalid nonce value '%s'", value)
		}
	}
	return value, nil
}

func validateIdentifier(what, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", what)
	}
	for _, r := range value {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '.' {
			continue
		}
		return fmt.Errorf("%s '%s' contains invalid character '%c'", what, value, r)
	}
	return nil
}
