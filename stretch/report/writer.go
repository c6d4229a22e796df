package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Misty02600/abq-substrate-serpentine/stretch"
)

// Writer appends summary rows to a CSV file. The header is written only
// when the file is new or empty, so repeated batch runs against the same
// output file keep accumulating rows.
type Writer struct {
	path string
}

// NewWriter targets the given CSV file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Append writes one flattened summary row, creating the file and header
// as needed.
func (w *Writer) Append(s stretch.Summary) error {
	file, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open summary csv %s: %w", w.path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat summary csv %s: %w", w.path, err)
	}

	cw := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := cw.Write(Header()); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	if err := cw.Write(Row(s)); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
