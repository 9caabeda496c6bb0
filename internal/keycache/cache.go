package keycache

import (
	"fmt"
	"sync"
	"time"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"golang.org/x/sync/singleflight"

	"zk-proving-service/internal/program"
	"zk-proving-service/pkg/logger"
)

// CacheKey addresses key material by program content and function name.
type CacheKey struct {
	ProgramChecksum string
	Function        string
}

func (k CacheKey) String() string {
	return k.ProgramChecksum + "/" + k.Function
}

// Entry holds the synthesized material for one program function.
type Entry struct {
	Key              CacheKey
	ConstraintSystem constraint.ConstraintSystem
	ProvingKey       groth16.ProvingKey
	VerifyingKey     groth16.VerifyingKey
	SynthesizedAt    time.Time
	LoadedFromDisk   bool
}

// Metadata is the wire-friendly description of a cache entry.
type Metadata struct {
	ProgramChecksum string `json:"program_checksum"`
	Function        string `json:"function"`
	Constraints     int    `json:"constraints"`
	PublicInputs    int    `json:"public_inputs"`
	SecretInputs    int    `json:"secret_inputs"`
	LoadedFromDisk  bool   `json:"loaded_from_disk"`
}

func (e *Entry) Describe() Metadata {
	return Metadata{
		ProgramChecksum: e.Key.ProgramChecksum,
		Function:        e.Key.Function,
		Constraints:     e.ConstraintSystem.GetNbConstraints(),
		PublicInputs:    e.ConstraintSystem.GetNbPublicVariables(),
		SecretInputs:    e.ConstraintSystem.GetNbSecretVariables(),
		LoadedFromDisk:  e.LoadedFromDisk,
	}
}

// SynthesisCache guarantees at most one synthesis per (checksum, function):
// concurrent callers of Keys for the same pair share a single compile+setup
// through singleflight, and the result is kept in memory and on disk.
type SynthesisCache struct {
	mu      sync.RWMutex
	entries map[CacheKey]*Entry
	group   singleflight.Group
	store   *ArtifactStore
}

// NewSynthesisCache builds a cache backed by store. A nil store keeps the
// cache memory-only.
func NewSynthesisCache(store *ArtifactStore) *SynthesisCache {
	return &SynthesisCache{
		entries: make(map[CacheKey]*Entry),
		store:   store,
	}
}

// Keys returns the key material for the function, synthesizing it if no
// in-memory or on-disk entry exists yet.
func (c *SynthesisCache) Keys(prog *program.ProgramDefinition, function string) (*Entry, error) {
	if prog == nil {
		return nil, fmt.Errorf("program cannot be nil")
	}
	fn, err := prog.Function(function)
	if err != nil {
		return nil, err
	}

	key := CacheKey{ProgramChecksum: prog.Checksum(), Function: fn.Name}

	if entry := c.lookup(key); entry != nil {
		return entry, nil
	}

	result, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		// A racing caller may have populated the entry before this flight
		// started.
		if entry := c.lookup(key); entry != nil {
			return entry, nil
		}

		if c.store != nil && c.store.Has(key) {
			entry, err := c.loadFromDisk(key)
			if err == nil {
				c.insert(entry)
				return entry, nil
			}
			logger.Default().Warnf("Stored artifacts for %s unreadable, re-synthesizing: %v", key, err)
		}

		entry, err := c.synthesize(key, fn)
		if err != nil {
			return nil, err
		}

		if c.store != nil {
			if err := c.store.Save(key, entry.ConstraintSystem, entry.ProvingKey, entry.VerifyingKey); err != nil {
				logger.Default().Errorf(err, "Failed to persist key artifacts for %s", key)
			}
		}

		c.insert(entry)
		return entry, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Entry), nil
}

// Contains reports whether key material is already available without
// triggering a synthesis.
func (c *SynthesisCache) Contains(key CacheKey) bool {
	if c.lookup(key) != nil {
		return true
	}
	return c.store != nil && c.store.Has(key)
}

// Evict drops the in-memory entry and its disk artifacts.
func (c *SynthesisCache) Evict(key CacheKey) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	if c.store != nil {
		return c.store.Delete(key)
	}
	return nil
}

func (c *SynthesisCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *SynthesisCache) lookup(key CacheKey) *Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key]
}

func (c *SynthesisCache) insert(entry *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entry.Key] = entry
}

func (c *SynthesisCache) loadFromDisk(key CacheKey) (*Entry, error) {
	ccs, pk, vk, err := c.store.Load(key)
	if err != nil {
		return nil, err
	}
	return &Entry{
		Key:              key,
		ConstraintSystem: ccs,
		ProvingKey:       pk,
		VerifyingKey:     vk,
		SynthesizedAt:    time.Now().UTC(),
		LoadedFromDisk:   true,
	}, nil
}

func (c *SynthesisCache) synthesize(key CacheKey, fn *program.FunctionDefinition) (*Entry, error) {
	synthLogger := logger.Default()
	synthLogger.Infof("Synthesizing keys for %s", key)
	started := time.Now()

	circuit, err := program.NewFunctionCircuit(fn)
	if err != nil {
		return nil, err
	}

	ccs, err := frontend.Compile(
		program.CurveID.ScalarField(),
		r1cs.NewBuilder,
		circuit,
	)
	if err != nil {
		return nil, fmt.Errorf("compile circuit for %s: %w", key, err)
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup for %s: %w", key, err)
	}

	synthLogger.Infof("Synthesized %s: %d constraints in %s", key, ccs.GetNbConstraints(), time.Since(started))

	return &Entry{
		Key:              key,
		ConstraintSystem: ccs,
		ProvingKey:       pk,
		VerifyingKey:     vk,
		SynthesizedAt:    time.Now().UTC(),
	}, nil
}
