package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	data := []byte(`{
		"name": "fsaverage-lite",
		"version": "1.0",
		"files": [
			{"path": "bem/src.fif", "url": "https://example.com/src.fif", "size": 42, "sha256": "ABCD"},
			{"path": "montage.json", "url": "https://example.com/montage.json", "blake3": "1234"}
		]
	}`)

	m, err := ParseManifest(data)
	require.NoError(t, err)

	assert.Equal(t, "fsaverage-lite", m.Name)
	assert.Equal(t, "1.0", m.Version)
	require.Len(t, m.Files, 2)

	assert.Equal(t, "bem/src.fif", m.Files[0].Path)
	assert.Equal(t, int64(42), m.Files[0].Size)
	assert.Equal(t, "abcd", m.Files[0].SHA256) // checksums are normalized to lowercase
	assert.Equal(t, "1234", m.Files[1].BLAKE3)
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid JSON", `{"name": `},
		{"no files key", `{"name": "x"}`},
		{"empty files", `{"files": []}`},
		{"files not an array", `{"files": {"path": "a"}}`},
		{"entry missing path", `{"files": [{"url": "https://example.com/a"}]}`},
		{"entry missing url", `{"files": [{"path": "a"}]}`},
		{"absolute path", `{"files": [{"path": "/etc/passwd", "url": "https://example.com/a"}]}`},
		{"parent traversal", `{"files": [{"path": "../escape", "url": "https://example.com/a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestFileAlgorithm(t *testing.T) {
	_, _, ok := File{}.Algorithm()
	assert.False(t, ok)

	algorithm, sum, ok := File{SHA256: "aa"}.Algorithm()
	require.True(t, ok)
	assert.Equal(t, AlgorithmSHA256, algorithm)
	assert.Equal(t, "aa", sum)

	// blake3 wins when both are declared
	algorithm, sum, ok = File{SHA256: "aa", BLAKE3: "bb"}.Algorithm()
	require.True(t, ok)
	assert.Equal(t, AlgorithmBLAKE3, algorithm)
	assert.Equal(t, "bb", sum)
}
