// Package ingest turns uploaded image bytes into metadata records,
// bridging the caption and keyword model providers to the record store.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nyskytigers/stocktagger/internal/keywords"
	"github.com/nyskytigers/stocktagger/internal/models"
	"github.com/nyskytigers/stocktagger/internal/providers"
	"github.com/nyskytigers/stocktagger/internal/storage"
)

// DefaultTopK is how many keywords are requested per caption.
const DefaultTopK = 25

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Options carries the batch-level settings applied to every record
// created during one ingestion run.
type Options struct {
	Categories   []string
	Editorial    bool
	Mature       bool
	Illustration bool
}

// Adapter ingests images: it computes the record identity, calls the
// caption and keyword providers, and stores the resulting record. A
// provider failure degrades the record instead of aborting the batch.
type Adapter struct {
	captioner providers.Captioner
	keyworder providers.Keyworder
	topK      int
	dups      *dupFilter
}

func NewAdapter(captioner providers.Captioner, keyworder providers.Keyworder, topK int) *Adapter {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Adapter{
		captioner: captioner,
		keyworder: keyworder,
		topK:      topK,
		dups:      newDupFilter(),
	}
}

// Ingest creates one record for the given image. The caption provider is
// called once on the image bytes, the keyword provider once on the
// resulting caption text. When a provider fails, the record is still
// created with the affected fields empty and a warning recorded, so one
// bad image never blocks the rest of the batch.
func (a *Adapter) Ingest(ctx context.Context, store *storage.RecordStore, data []byte, filename string, opts Options) (*models.MetadataRecord, error) {
	rec := &models.MetadataRecord{
		ImageID:      imageID(filename, data),
		Filename:     filename,
		Categories:   opts.Categories,
		Editorial:    opts.Editorial,
		Mature:       opts.Mature,
		Illustration: opts.Illustration,
		CreatedAt:    time.Now(),
	}

	width, height, err := imageDimensions(data)
	if err != nil {
		slog.Warn("Failed to get image dimensions", "filename", filename, "error", err)
	}
	rec.Width, rec.Height = width, height

	if dupOf := a.dups.check(rec.ImageID, data); dupOf != "" {
		rec.AddWarning("perceptual duplicate of " + dupOf)
		slog.Warn("Image looks like a duplicate", "image_id", rec.ImageID, "duplicate_of", dupOf)
	}

	caption, err := a.captioner.Caption(ctx, data)
	if err != nil {
		rec.AddWarning("caption generation failed: " + err.Error())
		slog.Warn("Caption provider failed, creating degraded record", "image_id", rec.ImageID, "error", err)
		// A shipped EXIF/IPTC description beats an empty caption.
		caption = exifDescription(data)
	}
	rec.Caption = keywords.RefineCaption(caption)

	var kws []string
	if rec.Caption != "" {
		kws, err = a.keyworder.Keywords(ctx, rec.Caption, a.topK)
		if err != nil {
			rec.AddWarning("keyword extraction failed: " + err.Error())
			slog.Warn("Keyword provider failed, creating degraded record", "image_id", rec.ImageID, "error", err)
			kws = nil
		}
	}
	// Selected categories double as keywords, same as the upload form did.
	rec.Keywords = keywords.Merge(kws, opts.Categories)

	if err := store.Create(rec); err != nil {
		return nil, fmt.Errorf("failed to store record for %s: %w", filename, err)
	}

	slog.Info("Image ingested", "image_id", rec.ImageID, "keywords", len(rec.Keywords), "warnings", len(rec.Warnings))
	return rec, nil
}

// IngestDir ingests every supported image in dir (jpg, jpeg, png, gif,
// webp), in filename order. Unreadable files are skipped with a warning.
func (a *Adapter) IngestDir(ctx context.Context, store *storage.RecordStore, dir string, opts Options) ([]*models.MetadataRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var records []*models.MetadataRecord
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("Failed to read image file, skipping", "filename", name, "error", err)
			continue
		}

		rec, err := a.Ingest(ctx, store, data, name, opts)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}

	slog.Info("Ingestion finished", "dir", dir, "records", len(records))
	return records, nil
}
