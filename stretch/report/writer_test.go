package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_AppendsRowsWithSingleHeader(t *testing.T) {
	// GIVEN a fresh output file and two summaries
	path := filepath.Join(t.TempDir(), "summaries.csv")
	w := NewWriter(path)

	first := foundSummary()
	second := foundSummary()
	second.Model = "serp-w0.45"

	// WHEN both are appended in separate calls
	assert.NoError(t, w.Append(first))
	assert.NoError(t, w.Append(second))

	// THEN the file parses as one header plus two rows
	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	if assert.Len(t, records, 3) {
		assert.Equal(t, Header(), records[0])
		assert.Equal(t, Row(first), records[1])
		assert.Equal(t, Row(second), records[2])
	}
}

func TestWriter_UnwritablePath_ReturnsError(t *testing.T) {
	// GIVEN a path whose parent directory does not exist
	w := NewWriter(filepath.Join(t.TempDir(), "missing", "out.csv"))

	// THEN appending fails instead of silently dropping the row
	assert.Error(t, w.Append(foundSummary()))
}
