package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Manifest describes the files that make up a sample dataset.
type Manifest struct {
	Name    string
	Version string
	Files   []File
}

// File is a single dataset file entry.
type File struct {
	Path   string // relative path under the data directory
	URL    string // download location
	Size   int64  // expected size in bytes (0 = unknown)
	SHA256 string // lowercase hex checksum
	BLAKE3 string // lowercase hex checksum
}

// Algorithm returns the checksum algorithm declared for the file,
// preferring blake3 when both are present. Returns false when the entry
// carries no checksum at all.
func (f File) Algorithm() (Algorithm, string, bool) {
	if f.BLAKE3 != "" {
		return AlgorithmBLAKE3, f.BLAKE3, true
	}
	if f.SHA256 != "" {
		return AlgorithmSHA256, f.SHA256, true
	}
	return "", "", false
}

// ParseManifest parses a JSON dataset manifest of the form:
//
//	{
//	  "name": "fsaverage-lite",
//	  "version": "1.0",
//	  "files": [
//	    {"path": "bem/src.fif", "url": "https://...", "size": 123, "sha256": "..."}
//	  ]
//	}
func ParseManifest(data []byte) (Manifest, error) {
	if !gjson.ValidBytes(data) {
		return Manifest{}, fmt.Errorf("manifest is not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	m := Manifest{
		Name:    doc.Get("name").String(),
		Version: doc.Get("version").String(),
	}

	files := doc.Get("files")
	if !files.IsArray() || len(files.Array()) == 0 {
		return Manifest{}, fmt.Errorf("manifest has no files")
	}

	for _, f := range files.Array() {
		entry := File{
			Path:   f.Get("path").String(),
			URL:    f.Get("url").String(),
			Size:   f.Get("size").Int(),
			SHA256: strings.ToLower(f.Get("sha256").String()),
			BLAKE3: strings.ToLower(f.Get("blake3").String()),
		}
		if entry.Path == "" {
			return Manifest{}, fmt.Errorf("manifest entry missing path")
		}
		// Paths are joined under the data directory; reject anything
		// that could escape it.
		if filepath.IsAbs(entry.Path) || strings.Contains(entry.Path, "..") {
			return Manifest{}, fmt.Errorf("manifest entry %q: path must be relative", entry.Path)
		}
		if entry.URL == "" {
			return Manifest{}, fmt.Errorf("manifest entry %q missing url", entry.Path)
		}
		m.Files = append(m.Files, entry)
	}

	return m, nil
}
