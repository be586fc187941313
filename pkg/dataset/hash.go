package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Algorithm identifies a supported checksum algorithm.
type Algorithm string

const (
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmBLAKE3 Algorithm = "blake3"
)

// NewHasher returns a hasher for the algorithm, defaulting to sha256.
func (a Algorithm) NewHasher() hash.Hash {
	switch a {
	case AlgorithmBLAKE3:
		return blake3.New()
	default:
		return sha256.New()
	}
}

// verifyData checks in-memory data against the file entry's declared
// checksum and size. Entries without a checksum are checked by size only.
func verifyData(data []byte, f File) error {
	if f.Size > 0 && int64(len(data)) != f.Size {
		return fmt.Errorf("%s: size %d, expected %d", f.Path, len(data), f.Size)
	}

	algorithm, expected, ok := f.Algorithm()
	if !ok {
		return nil
	}

	hasher := algorithm.NewHasher()
	_, _ = hasher.Write(data)
	actual := hex.EncodeToString(hasher.Sum(nil))
	if actual != expected {
		return fmt.Errorf("%s: %s checksum mismatch", f.Path, algorithm)
	}
	return nil
}

// verifyFile checks a file on disk the same way verifyData checks a buffer.
func verifyFile(path string, f File) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if f.Size > 0 && info.Size() != f.Size {
		return fmt.Errorf("%s: size %d, expected %d", f.Path, info.Size(), f.Size)
	}

	algorithm, expected, ok := f.Algorithm()
	if !ok {
		return nil
	}

	file, err := os.Open(path) //nolint:gosec // path is under the user's own data directory
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	hasher := algorithm.NewHasher()
	if _, err := io.Copy(hasher, file); err != nil {
		return err
	}
	actual := hex.EncodeToString(hasher.Sum(nil))
	if actual != expected {
		return fmt.Errorf("%s: %s checksum mismatch", f.Path, algorithm)
	}
	return nil
}
