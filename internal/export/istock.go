package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nyskytigers/stocktagger/internal/models"
)

var istockHeader = []string{"file name", "description", "country", "title", "keywords", "color"}

// IStockZip serializes records for iStock, which wants one CSV per image.
// The CSVs are bundled into a single ZIP archive, each named after the
// image it describes. Title mirrors the description, country is left
// empty, color is always yes.
func IStockZip(records []*models.MetadataRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, rec := range records {
		base := strings.TrimSuffix(rec.Filename, filepath.Ext(rec.Filename))

		f, err := zw.Create(base + ".csv")
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry for %s: %w", rec.ImageID, err)
		}

		w := csv.NewWriter(f)
		row := []string{
			epsName(rec.Filename),
			rec.Caption,
			"",
			rec.Caption,
			strings.Join(rec.Keywords, ","),
			"yes",
		}
		if err := w.WriteAll([][]string{istockHeader, row}); err != nil {
			return nil, fmt.Errorf("failed to write csv for %s: %w", rec.ImageID, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}

	return buf.Bytes(), nil
}
