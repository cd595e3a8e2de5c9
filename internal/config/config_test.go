package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Provider.Name != "ollama" {
		t.Errorf("default provider = %s, want ollama", cfg.Provider.Name)
	}
	if cfg.Export.Output != "shutterstock_content_upload.csv" {
		t.Errorf("default output = %s", cfg.Export.Output)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocktagger.toml")
	content := `
[provider]
name = "gemini"
model = "gemini-1.5-pro"
temperature = 0.2

[keywords]
top_k = 10

[defaults]
categories = ["Nature", "Animals/Wildlife"]
illustration = true

[export]
format = "adobe"
output = "adobe.csv"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Provider.Name != "gemini" || cfg.Provider.Model != "gemini-1.5-pro" {
		t.Errorf("provider = %+v", cfg.Provider)
	}
	if cfg.Keywords.TopK != 10 {
		t.Errorf("top_k = %d, want 10", cfg.Keywords.TopK)
	}
	if len(cfg.Defaults.Categories) != 2 || !cfg.Defaults.Illustration {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Export.Format != "adobe" || cfg.Export.Output != "adobe.csv" {
		t.Errorf("export = %+v", cfg.Export)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.toml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("STOCKTAGGER_PROVIDER", "openai")
	t.Setenv("STOCKTAGGER_MODEL", "gpt-4o-mini")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Provider.Name != "openai" {
		t.Errorf("provider = %s, want openai", cfg.Provider.Name)
	}
	if cfg.Provider.Model != "gpt-4o-mini" {
		t.Errorf("model = %s, want gpt-4o-mini", cfg.Provider.Model)
	}
}

func TestApplyEnvDefaultModel(t *testing.T) {
	t.Setenv("STOCKTAGGER_PROVIDER", "openai")
	t.Setenv("STOCKTAGGER_MODEL", "")
	t.Setenv("OPENAI_MODEL", "")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Provider.Model != "gpt-4o" {
		t.Errorf("model = %s, want provider default gpt-4o", cfg.Provider.Model)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown provider", func(c *Config) { c.Provider.Name = "bard" }},
		{"unknown export format", func(c *Config) { c.Export.Format = "xml" }},
		{"zero top_k", func(c *Config) { c.Keywords.TopK = 0 }},
		{"unknown category", func(c *Config) { c.Defaults.Categories = []string{"Cats"} }},
		{"too many categories", func(c *Config) {
			c.Defaults.Categories = []string{"Nature", "People", "Arts"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
