package account

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/mr-tron/base58"
)

const (
	PrivateKeyPrefix = "PrivateKey1"
	ViewKeyPrefix    = "ViewKey1"
	AddressPrefix    = "addr1"

	SeedLength = 32
)

// Account is an EdDSA key pair on the BN254 twisted Edwards curve. The
// private key signs executions and deployments; the address is the base58
// form of the public key and the view key is a stable read-only identifier
// derived from the private key.
type Account struct {
	key *eddsa.PrivateKey
}

// New generates a fresh account from the system entropy source.
func New() (*Account, error) {
	key, err := eddsa.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &Account{key: key}, nil
}

// FromSeed derives an account deterministically from a 32-byte seed. The same
// seed always yields the same account.
func FromSeed(seed []byte) (*Account, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("seed must be exactly %d bytes, got %d", SeedLength, len(seed))
	}

	key, err := eddsa.GenerateKey(newSeedStream(seed))
	if err != nil {
		return nil, fmt.Errorf("derive key from seed: %w", err)
	}
	return &Account{key: key}, nil
}

// FromString restores an account from its private key string.
func FromString(privateKey string) (*Account, error) {
	if !strings.HasPrefix(privateKey, PrivateKeyPrefix) {
		return nil, fmt.Errorf("private key must start with %s", PrivateKeyPrefix)
	}

	raw, err := base58.Decode(strings.TrimPrefix(privateKey, PrivateKeyPrefix))
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}

	return accountFromRawKey(raw)
}

func accountFromRawKey(raw []byte) (*Account, error) {
	key := new(eddsa.PrivateKey)
	if _, err := key.SetBytes(raw); err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &Account{key: key}, nil
}

// String renders the private key. Handle with care: this is the plaintext
// secret.
func (a *Account) String() string {
	return PrivateKeyPrefix + base58.Encode(a.key.Bytes())
}

// Address is the public identity of the account.
func (a *Account) Address() string {
	return AddressPrefix + base58.Encode(a.key.PublicKey.Bytes())
}

// ViewKey derives the account's read-only identifier: the private key hashed
// and reduced into the scalar field.
func (a *Account) ViewKey() string {
	digest := sha256.Sum256(a.key.Bytes())
	var elem fr.Element
	elem.SetBytes(digest[:])
	raw := elem.Bytes()
	return ViewKeyPrefix + base58.Encode(raw[:])
}

// DeriveSerialNumber binds a record commitment to this account's private key.
// The result is stable for a given key and commitment, so a ledger can detect
// a double spend without learning which account produced the serial number.
func (a *Account) DeriveSerialNumber(commitment []byte) string {
	h := sha256.New()
	h.Write(a.key.Bytes())
	h.Write(commitment)
	var elem fr.Element
	elem.SetBytes(h.Sum(nil))
	return elem.String()
}

// Sign signs a message with the private key using MiMC as the inner hash.
func (a *Account) Sign(message []byte) ([]byte, error) {
	sig, err := a.key.Sign(message, mimc.NewMiMC())
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// ParseAddress decodes an address string back into the public key it encodes.
func ParseAddress(address string) (*eddsa.PublicKey, error) {
	if !strings.HasPrefix(address, AddressPrefix) {
		return nil, fmt.Errorf("address must start with %s", AddressPrefix)
	}

	raw, err := base58.Decode(strings.TrimPrefix(address, AddressPrefix))
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}

	pub := new(eddsa.PublicKey)
	if _, err := pub.SetBytes(raw); err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}
	return pub, nil
}

// VerifySignature checks a signature against the address that claims to have
// produced it.
func VerifySignature(address string, message, sig []byte) (bool, error) {
	pub, err := ParseAddress(address)
	if err != nil {
		return false, err
	}

	ok, err := pub.Verify(sig, message, mimc.NewMiMC())
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	return ok, nil
}

// seedStream expands a fixed seed into an unbounded deterministic byte stream
// so key generation consumes as much material as it needs.
type seedStream struct {
	seed    [SeedLength]byte
	counter uint64
	buf     []byte
}

func newSeedStream(seed []byte) io.Reader {
	s := &seedStream{}
	copy(s.seed[:], seed)
	return s
}

func (s *seedStream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.buf) == 0 {
			var block [SeedLength + 8]byte
			copy(block[:], s.seed[:])
			binary.BigEndian.PutUint64(block[SeedLength:], s.counter)
			s.counter++
			sum := sha256.Sum256(block[:])
			s.buf = sum[:]
		}
		copied := copy(p[n:], s.buf)
		s.buf = s.buf[copied:]
		n += copied
	}
	return n, nil
}
