// Package workshopfile loads the labcheck.yaml workshop definition.
// The file enumerates everything the verifier needs: where the data
// lives, which tools must be installed, and how to obtain the sample
// dataset. Keeping the list in a file lets each workshop edition change
// its requirements without a new labcheck release.
package workshopfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultName is the file name Find looks for when no explicit path is given.
const DefaultName = "labcheck.yaml"

// File is the parsed workshop definition.
type File struct {
	// DataDir is where the sample dataset is stored. May start with ~.
	DataDir string `yaml:"data_dir"`

	// MinFree is the free-space floor for the data directory,
	// human-readable ("2GB"). Empty disables the check.
	MinFree string `yaml:"min_free"`

	// Dependencies are the tools that must be installed.
	Dependencies []Dependency `yaml:"dependencies"`

	// Dataset describes the sample dataset to fetch. Optional.
	Dataset *Dataset `yaml:"dataset"`
}

// Dependency names one required tool and its optional version gate.
type Dependency struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint"`
	VersionCmd string `yaml:"version_cmd"`
	Match      string `yaml:"match"`
}

// Dataset points at a remote manifest, or lists the files inline.
type Dataset struct {
	ManifestURL string        `yaml:"manifest_url"`
	Files       []DatasetFile `yaml:"files"`
}

// DatasetFile mirrors a dataset manifest entry.
type DatasetFile struct {
	Path   string `yaml:"path"`
	URL    string `yaml:"url"`
	Size   int64  `yaml:"size"`
	SHA256 string `yaml:"sha256"`
	BLAKE3 string `yaml:"blake3"`
}

// Find locates the workshop file. An explicit path wins; otherwise the
// search walks up from startDir, stopping at the home directory, a .git
// boundary, or the filesystem root.
func Find(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("workshop file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, DefaultName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(DefaultName + " not found")
}

// Load reads and validates a workshop file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the workshop file
	if err != nil {
		return nil, fmt.Errorf("failed to read workshop file: %w", err)
	}

	var wf File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&wf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := wf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &wf, nil
}

// Validate checks the definition for the mistakes workshop organizers
// actually make: forgotten fields, not type errors (yaml handles those).
func (f *File) Validate() error {
	if f.DataDir == "" {
		return errors.New("data_dir is required")
	}
	for i, d := range f.Dependencies {
		if d.Name == "" {
			return fmt.Errorf("dependencies[%d]: name is required", i)
		}
	}
	if f.Dataset != nil {
		if f.Dataset.ManifestURL == "" && len(f.Dataset.Files) == 0 {
			return errors.New("dataset: manifest_url or files is required")
		}
		for i, df := range f.Dataset.Files {
			if df.Path == "" {
				return fmt.Errorf("dataset.files[%d]: path is required", i)
			}
			if df.URL == "" {
				return fmt.Errorf("dataset.files[%d]: url is required", i)
			}
		}
	}
	return nil
}
