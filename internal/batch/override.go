package batch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nyskytigers/stocktagger/internal/models"
	"github.com/nyskytigers/stocktagger/internal/storage"
)

// ErrNoOverride is returned when a request sets neither a master caption
// nor master keywords.
var ErrNoOverride = errors.New("override request has no master fields")

// Result reports how a batch override was applied.
type Result struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

// Apply writes the request's master caption and/or master keywords onto
// every target record present in the store. Replacement is total: the
// previous per-image value is discarded, which is what distinguishes
// "apply to all" from incremental editing. Categories and flags are never
// touched. Targets absent from the store are skipped and counted.
//
// Applying the same request twice leaves the store unchanged after the
// first application.
func Apply(store *storage.RecordStore, req models.BatchOverrideRequest) (Result, error) {
	if req.MasterCaption == nil && req.MasterKeywords == nil {
		return Result{}, ErrNoOverride
	}

	targets := req.Targets
	if targets == nil {
		for _, rec := range store.All() {
			targets = append(targets, rec.ImageID)
		}
	}

	upd := storage.RecordUpdate{
		Caption:  req.MasterCaption,
		Keywords: req.MasterKeywords,
	}

	var result Result
	for _, id := range targets {
		if _, err := store.Update(id, upd); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				slog.Warn("Override target not in store, skipping", "image_id", id)
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("failed to apply override to %s: %w", id, err)
		}
		result.Applied++
	}

	slog.Info("Batch override applied", "applied", result.Applied, "skipped", result.Skipped)
	return result, nil
}
