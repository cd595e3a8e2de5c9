package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/nyskytigers/stocktagger/internal/models"
)

var shutterstockHeader = []string{
	"Filename", "Description", "Keywords", "Categories", "Editorial", "Mature content", "Illustration",
}

// Shutterstock serializes records into the Shutterstock content upload CSV:
// one row per record in input order, keywords comma-joined inside a single
// column, flags rendered as yes/no. Fields containing commas or quotes are
// escaped per CSV quoting rules.
func Shutterstock(records []*models.MetadataRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(shutterstockHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Filename,
			rec.Caption,
			strings.Join(rec.Keywords, ","),
			strings.Join(rec.Categories, ","),
			yesNo(rec.Editorial),
			yesNo(rec.Mature),
			yesNo(rec.Illustration),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row for %s: %w", rec.ImageID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
