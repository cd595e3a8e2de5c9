package models

import "time"

// MetadataRecord is the per-image metadata unit for one editing session.
// Captions and keywords start out model-generated and stay user-editable
// until export.
type MetadataRecord struct {
	ImageID      string    `json:"image_id"`
	Filename     string    `json:"filename"`
	Caption      string    `json:"caption"`
	Keywords     []string  `json:"keywords"`
	Categories   []string  `json:"categories"`
	Editorial    bool      `json:"editorial"`
	Mature       bool      `json:"mature"`
	Illustration bool      `json:"illustration"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	Warnings     []string  `json:"warnings,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddWarning records a non-fatal problem encountered while building the record.
func (r *MetadataRecord) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// BatchOverrideRequest applies a master caption and/or keyword list to a
// set of records. Nil fields are left alone; nil Targets means every
// record in the store.
type BatchOverrideRequest struct {
	MasterCaption  *string
	MasterKeywords *[]string
	Targets        []string
}
