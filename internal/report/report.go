package report

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/nyskytigers/stocktagger/internal/models"
)

// SessionConfig records how the batch was produced.
type SessionConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	Timestamp string `yaml:"timestamp"`
}

// RecordSummary is the per-image section of the report.
type RecordSummary struct {
	ImageID  string   `yaml:"imageid"`
	Filename string   `yaml:"filename"`
	Caption  string   `yaml:"caption"`
	Keywords []string `yaml:"keywords"`
	Warnings []string `yaml:"warnings,omitempty"`
}

// Session is the complete YAML session report.
type Session struct {
	ID       string          `yaml:"id"`
	Config   SessionConfig   `yaml:"config"`
	Records  int             `yaml:"records"`
	Warnings int             `yaml:"warnings"`
	Items    []RecordSummary `yaml:"items"`
}

// Write saves a YAML report of the ingestion session to path. The report
// is the audit trail for degraded records: every provider failure shows up
// here as a warning on its image.
func Write(path, provider, model string, records []*models.MetadataRecord) error {
	session := Session{
		ID: uuid.NewString(),
		Config: SessionConfig{
			Provider:  provider,
			Model:     model,
			Timestamp: time.Now().Format("2006-01-02_15-04-05"),
		},
		Records: len(records),
		Items:   make([]RecordSummary, 0, len(records)),
	}

	for _, rec := range records {
		session.Warnings += len(rec.Warnings)
		session.Items = append(session.Items, RecordSummary{
			ImageID:  rec.ImageID,
			Filename: rec.Filename,
			Caption:  rec.Caption,
			Keywords: rec.Keywords,
			Warnings: rec.Warnings,
		})
	}

	data, err := yaml.Marshal(&session)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
