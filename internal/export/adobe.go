package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/nyskytigers/stocktagger/internal/models"
)

var adobeHeader = []string{"Filename", "Title", "Keywords", "Category", "Releases"}

// AdobeStock serializes records into the Adobe Stock upload CSV. Adobe
// takes a single numeric category id and an optional releases list, both
// shared across the batch, and expects .eps filenames.
func AdobeStock(records []*models.MetadataRecord, category, releases string) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	categoryID := ""
	if id := models.AdobeCategoryID(category); id > 0 {
		categoryID = strconv.Itoa(id)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(adobeHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			epsName(rec.Filename),
			rec.Caption,
			strings.Join(rec.Keywords, ","),
			categoryID,
			strings.TrimSpace(releases),
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
