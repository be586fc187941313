package depcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain triple", "1.7.0", "1.7.0", false},
		{"v prefix", "v2.1.3", "2.1.3", false},
		{"embedded in banner", "mne-tools 1.7.2 (linux-amd64)", "1.7.2", false},
		{"major.minor only", "tool 1.7", "1.7.0", false},
		{"major only", "version 18", "18.0.0", false},
		{"multiline output", "simulator\nbuild 3.4.1\ncopyright", "3.4.1", false},
		{"no version", "no digits here", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
