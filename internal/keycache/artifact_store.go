package keycache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"

	"zk-proving-service/internal/program"
)

const (
	provingKeyFile   = "proving.key"
	verifyingKeyFile = "verifying.key"
	constraintsFile  = "circuit.r1cs"
	artifactDirPerm  = 0o755
)

// ArtifactStore persists synthesized key material on disk, addressed by the
// program checksum and function name. Artifacts survive restarts so a warm
// cache never repeats a setup.
type ArtifactStore struct {
	root string
}

func NewArtifactStore(root string) (*ArtifactStore, error) {
	if root == "" {
		return nil, fmt.Errorf("artifact store root cannot be empty")
	}
	if err := os.MkdirAll(root, artifactDirPerm); err != nil {
		return nil, fmt.Errorf("create artifact root %s: %w", root, err)
	}
	return &ArtifactStore{root: root}, nil
}

func (s *ArtifactStore) entryDir(key CacheKey) string {
	return filepath.Join(s.root, key.ProgramChecksum, key.Function)
}

func (s *ArtifactStore) Has(key CacheKey) bool {
	for _, name := range []string{provingKeyFile, verifyingKeyFile, constraintsFile} {
		if _, err := os.Stat(filepath.Join(s.entryDir(key), name)); err != nil {
			return false
		}
	}
	return true
}

func (s *ArtifactStore) Save(key CacheKey, ccs constraint.ConstraintSystem, pk groth16.ProvingKey, vk groth16.VerifyingKey) error {
	dir := s.entryDir(key)
	if err := os.MkdirAll(dir, artifactDirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	if err := writeArtifact(filepath.Join(dir, constraintsFile), ccs); err != nil {
		return err
	}
	if err := writeArtifact(filepath.Join(dir, provingKeyFile), pk); err != nil {
		return err
	}
	if err := writeArtifact(filepath.Join(dir, verifyingKeyFile), vk); err != nil {
		return err
	}
	return nil
}

func (s *ArtifactStore) Load(key CacheKey) (constraint.ConstraintSystem, groth16.ProvingKey, groth16.VerifyingKey, error) {
	dir := s.entryDir(key)

	ccs := groth16.NewCS(program.CurveID)
	if err := readArtifact(filepath.Join(dir, constraintsFile), ccs); err != nil {
		return nil, nil, nil, err
	}

	pk := groth16.NewProvingKey(program.CurveID)
	if err := readArtifact(filepath.Join(dir, provingKeyFile), pk); err != nil {
		return nil, nil, nil, err
	}

	vk := groth16.NewVerifyingKey(program.CurveID)
	if err := readArtifact(filepath.Join(dir, verifyingKeyFile), vk); err != nil {
		return nil, nil, nil, err
	}

	return ccs, pk, vk, nil
}

// Delete removes the on-disk artifacts for a key. Missing entries are not an
// error.
func (s *ArtifactStore) Delete(key CacheKey) error {
	dir := s.entryDir(key)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove %s: %w", dir, err)
	}
	return nil
}

func writeArtifact(path string, artifact io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := artifact.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readArtifact(path string, artifact io.ReaderFrom) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := artifact.ReadFrom(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
