package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/nyskytigers/stocktagger/internal/models"
)

// parquetRecord is the archival row schema. Unlike the marketplace CSVs
// it keeps the full record, warnings included.
type parquetRecord struct {
	ImageID      string   `parquet:"image_id"`
	Filename     string   `parquet:"filename"`
	Caption      string   `parquet:"caption"`
	Keywords     []string `parquet:"keywords,list"`
	Categories   []string `parquet:"categories,list"`
	Editorial    bool     `parquet:"editorial"`
	Mature       bool     `parquet:"mature"`
	Illustration bool     `parquet:"illustration"`
	Width        int32    `parquet:"width"`
	Height       int32    `parquet:"height"`
	Warnings     []string `parquet:"warnings,list"`
	CreatedAt    int64    `parquet:"created_at"` // unix millis
}

// Parquet serializes the full record set into a Parquet file for archival
// or later analysis, one row per record in input order.
func Parquet(records []*models.MetadataRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	rows := make([]parquetRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, parquetRecord{
			ImageID:      rec.ImageID,
			Filename:     rec.Filename,
			Caption:      rec.Caption,
			Keywords:     rec.Keywords,
			Categories:   rec.Categories,
			Editorial:    rec.Editorial,
			Mature:       rec.Mature,
			Illustration: rec.Illustration,
			Width:        int32(rec.Width),
			Height:       int32(rec.Height),
			Warnings:     rec.Warnings,
			CreatedAt:    rec.CreatedAt.UnixMilli(),
		})
	}

	var buf bytes.Buffer
	writer := parquet.NewGenericWriter[parquetRecord](&buf)

	if _, err := writer.Write(rows); err != nil {
		return nil, fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return buf.Bytes(), nil
}

// ReadParquet loads records back from a Parquet archive produced by
// Parquet. Used by tests and by contributors re-importing an archived
// session.
func ReadParquet(data []byte) ([]*models.MetadataRecord, error) {
	pf, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[parquetRecord](pf)
	defer reader.Close()

	var records []*models.MetadataRecord
	rows := make([]parquetRecord, 64)
	for {
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			records = append(records, &models.MetadataRecord{
				ImageID:      row.ImageID,
				Filename:     row.Filename,
				Caption:      row.Caption,
				Keywords:     row.Keywords,
				Categories:   row.Categories,
				Editorial:    row.Editorial,
				Mature:       row.Mature,
				Illustration: row.Illustration,
				Width:        int(row.Width),
				Height:       int(row.Height),
				Warnings:     row.Warnings,
				CreatedAt:    time.UnixMilli(row.CreatedAt),
			})
		}
		if err != nil {
			break
		}
	}

	return records, nil
}
