package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "minbool.dev/pkg/minbool/internal/model"
)

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    m.ExportFormat
		wantErr bool
	}{
		{"csv", "csv", m.FormatCSV, false},
		{"latex", "latex", m.FormatLaTeX, false},
		{"text", "text", m.FormatText, false},
		{"unknown", "pdf", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExportFormat(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
