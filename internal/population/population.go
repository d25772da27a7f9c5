package population

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexkarev/rowaudit/internal/auditor"
)

var (
	// ErrEmptyFile is returned when the CSV has no header row.
	ErrEmptyFile = errors.New("csv contains no rows")

	// ErrNoDataRows is returned when the CSV has a header but no data.
	ErrNoDataRows = errors.New("csv contains a header but no data rows")
)

// FromCSV reads a CSV with a header row and builds a population from the
// named label column. Records are emitted in file order.
func FromCSV(r io.Reader, labelColumn string) (auditor.Population, error) {
	reader := csv.NewReader(r)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	col, err := findColumn(rows[0], labelColumn)
	if err != nil {
		return nil, err
	}

	if len(rows) == 1 {
		return nil, ErrNoDataRows
	}

	pop := make(auditor.Population, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// csv.ReadAll already enforces a uniform field count, so the
		// column index is safe here.
		pop = append(pop, auditor.Record{Label: row[col]})
	}

	return pop, nil
}

// LoadFile opens path and delegates to FromCSV.
func LoadFile(path, labelColumn string) (auditor.Population, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open population file: %w", err)
	}
	defer f.Close()

	return FromCSV(f, labelColumn)
}

func findColumn(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("label column %q not found in header %v", name, header)
}
