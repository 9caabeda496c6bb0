package keycache

import (
	"os"
	"sync"
	"testing"

	"zk-proving-service/internal/program"
	"zk-proving-service/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	os.Exit(m.Run())
}

const cacheTestProgram = `{
	"program_id": "scores.zk",
	"version": "1.0.0",
	"functions": [
		{
			"name": "prove_passing",
			"inputs": [{"name": "score", "type": "integer", "required": true}],
			"constraints": [{"type": "range_check", "fields": ["score"], "value": [50, 100]}]
		},
		{
			"name": "prove_any",
			"inputs": [{"name": "score", "type": "integer", "required": true}],
			"constraints": [{"type": "range_check", "fields": ["score"], "value": [0, 100]}]
		}
	]
}`

func parseCacheTestProgram(t *testing.T) *program.ProgramDefinition {
	t.Helper()
	prog, err := program.Parse([]byte(cacheTestProgram))
	if err != nil {
		t.Fatalf("Failed to parse program: %v", err)
	}
	return prog
}

func TestKeysSynthesizesOnce(t *testing.T) {
	prog := parseCacheTestProgram(t)
	cache := NewSynthesisCache(nil)

	first, err := cache.Keys(prog, "prove_passing")
	if err != nil {
		t.Fatalf("Failed to synthesize keys: %v", err)
	}
	if first.ProvingKey == nil || first.VerifyingKey == nil || first.ConstraintSystem == nil {
		t.Fatal("Entry must carry constraint system and both keys")
	}
	if first.LoadedFromDisk {
		t.Error("Fresh synthesis must not be marked as loaded from disk")
	}

	second, err := cache.Keys(prog, "prove_passing")
	if err != nil {
		t.Fatalf("Failed on cached lookup: %v", err)
	}
	if first != second {
		t.Error("Second lookup must return the cached entry")
	}
	if cache.Len() != 1 {
		t.Errorf("Expected one cache entry, got %d", cache.Len())
	}
}

func TestKeysConcurrentCallersShareOneSynthesis(t *testing.T) {
	prog := parseCacheTestProgram(t)
	cache := NewSynthesisCache(nil)

	const callers = 8
	entries := make([]*Entry, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			entries[idx], errs[idx] = cache.Keys(prog, "prove_passing")
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("Caller %d failed: %v", i, errs[i])
		}
		if entries[i] != entries[0] {
			t.Error("Concurrent callers must share a single synthesized entry")
		}
	}
	if cache.Len() != 1 {
		t.Errorf("Expected one cache entry, got %d", cache.Len())
	}
}

func TestKeysDistinguishesFunctions(t *testing.T) {
	prog := parseCacheTestProgram(t)
	cache := NewSynthesisCache(nil)

	a, err := cache.Keys(prog, "prove_passing")
	if err != nil {
		t.Fatalf("Failed to synthesize: %v", err)
	}
	b, err := cache.Keys(prog, "prove_any")
	if err != nil {
		t.Fatalf("Failed to synthesize: %v", err)
	}

	if a == b {
		t.Error("Different functions must have separate entries")
	}
	if cache.Len() != 2 {
		t.Errorf("Expected two cache entries, got %d", cache.Len())
	}
}

func TestKeysUnknownFunction(t *testing.T) {
	prog := parseCacheTestProgram(t)
	cache := NewSynthesisCache(nil)

	if _, err := cache.Keys(prog, "missing"); err == nil {
		t.Error("Expected error for unknown function")
	}
	if _, err := cache.Keys(nil, "prove_passing"); err == nil {
		t.Error("Expected error for nil program")
	}
}

func TestDiskRoundTrip(t *testing.T) {
	prog := parseCacheTestProgram(t)
	store, err := NewArtifactStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open artifact store: %v", err)
	}

	warm := NewSynthesisCache(store)
	entry, err := warm.Keys(prog, "prove_passing")
	if err != nil {
		t.Fatalf("Failed to synthesize: %v", err)
	}

	key := CacheKey{ProgramChecksum: prog.Checksum(), Function: "prove_passing"}
	if !store.Has(key) {
		t.Fatal("Artifacts should be persisted after synthesis")
	}

	// Fresh cache over the same store must come up from disk, not re-setup.
	cold := NewSynthesisCache(store)
	if !cold.Contains(key) {
		t.Error("Cold cache backed by populated store should report the key")
	}

	reloaded, err := cold.Keys(prog, "prove_passing")
	if err != nil {
		t.Fatalf("Failed to load from disk: %v", err)
	}
	if !reloaded.LoadedFromDisk {
		t.Error("Entry restored from store must be marked as loaded from disk")
	}
	if reloaded.ConstraintSystem.GetNbConstraints() != entry.ConstraintSystem.GetNbConstraints() {
		t.Error("Reloaded constraint system should match the synthesized one")
	}
}

func TestEvict(t *testing.T) {
	prog := parseCacheTestProgram(t)
	store, err := NewArtifactStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open artifact store: %v", err)
	}
	cache := NewSynthesisCache(store)

	if _, err := cache.Keys(prog, "prove_passing"); err != nil {
		t.Fatalf("Failed to synthesize: %v", err)
	}

	key := CacheKey{ProgramChecksum: prog.Checksum(), Function: "prove_passing"}
	if err := cache.Evict(key); err != nil {
		t.Fatalf("Failed to evict: %v", err)
	}

	if cache.Len() != 0 {
		t.Error("Evicted entry should be removed from memory")
	}
	if store.Has(key) {
		t.Error("Evicted entry should be removed from disk")
	}
}

func TestEntryDescribe(t *testing.T) {
	prog := parseCacheTestProgram(t)
	cache := NewSynthesisCache(nil)

	entry, err := cache.Keys(prog, "prove_passing")
	if err != nil {
		t.Fatalf("Failed to synthesize: %v", err)
	}

	meta := entry.Describe()
	if meta.ProgramChecksum != prog.Checksum() || meta.Function != "prove_passing" {
		t.Error("Metadata must carry the cache key")
	}
	if meta.Constraints <= 0 {
		t.Error("Range constraint should produce at least one circuit constraint")
	}
}
