package parquetwrite

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/rxreimb/internal/model"
)

// Writer wraps a parquet GenericWriter for streaming ReimbursementRow
// records to an export file.
type Writer struct {
	file   *os.File
	writer *parquet.GenericWriter[model.ReimbursementRow]
}

// Create opens the export file at path, truncating any existing file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create parquet file: %w", err)
	}
	return &Writer{
		file:   f,
		writer: parquet.NewGenericWriter[model.ReimbursementRow](f),
	}, nil
}

// Write appends rows to the export file.
func (w *Writer) Write(rows []model.ReimbursementRow) (int, error) {
	n, err := w.writer.Write(rows)
	if err != nil {
		return n, fmt.Errorf("write parquet rows: %w", err)
	}
	return n, nil
}

// Close flushes remaining row groups and releases all resources.
func (w *Writer) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return w.file.Close()
}
