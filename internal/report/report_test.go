package report

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/nyskytigers/stocktagger/internal/models"
)

func TestWrite(t *testing.T) {
	records := []*models.MetadataRecord{
		{
			ImageID:  "a.jpg_deadbeef",
			Filename: "a.jpg",
			Caption:  "A cat",
			Keywords: []string{"cat"},
		},
		{
			ImageID:  "b.jpg_cafebabe",
			Filename: "b.jpg",
			Warnings: []string{"caption generation failed: model unavailable"},
		},
	}

	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := Write(path, "ollama", "llava:13b", records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		t.Fatalf("report is not valid YAML: %v", err)
	}

	if session.ID == "" {
		t.Error("session id is empty")
	}
	if session.Config.Provider != "ollama" || session.Config.Model != "llava:13b" {
		t.Errorf("config = %+v", session.Config)
	}
	if session.Records != 2 {
		t.Errorf("records = %d, want 2", session.Records)
	}
	if session.Warnings != 1 {
		t.Errorf("warnings = %d, want 1", session.Warnings)
	}
	if len(session.Items) != 2 || session.Items[1].Warnings == nil {
		t.Errorf("items = %+v", session.Items)
	}
}
