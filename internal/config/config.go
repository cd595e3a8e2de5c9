package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/nyskytigers/stocktagger/internal/ingest"
	"github.com/nyskytigers/stocktagger/internal/models"
)

type ProviderConfig struct {
	Name        string  `toml:"name"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	BaseURL     string  `toml:"base_url"`
}

type KeywordsConfig struct {
	TopK int `toml:"top_k"`
}

// DefaultsConfig holds the batch-level metadata applied to every ingested
// image, mirroring the controls the upload form exposed.
type DefaultsConfig struct {
	Categories   []string `toml:"categories"`
	Editorial    bool     `toml:"editorial"`
	Mature       bool     `toml:"mature"`
	Illustration bool     `toml:"illustration"`
}

type ExportConfig struct {
	Format string `toml:"format"`
	Output string `toml:"output"`
}

type Config struct {
	Provider ProviderConfig `toml:"provider"`
	Keywords KeywordsConfig `toml:"keywords"`
	Defaults DefaultsConfig `toml:"defaults"`
	Export   ExportConfig   `toml:"export"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:        "ollama",
			Temperature: 0.1, // Low temperature for consistent, factual output
		},
		Keywords: KeywordsConfig{TopK: ingest.DefaultTopK},
		Export: ExportConfig{
			Format: "shutterstock",
			Output: "shutterstock_content_upload.csv",
		},
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables onto the config. API keys are
// read by the providers themselves and never live in the config file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("STOCKTAGGER_PROVIDER"); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv("STOCKTAGGER_MODEL"); v != "" {
		c.Provider.Model = v
	}
	if c.Provider.Model == "" {
		c.Provider.Model = DefaultModel(c.Provider.Name)
	}
}

// DefaultModel picks a vision-capable default per provider.
func DefaultModel(provider string) string {
	switch provider {
	case "openai":
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			return model
		}
		return "gpt-4o"
	case "ollama":
		if model := os.Getenv("OLLAMA_MODEL"); model != "" {
			return model
		}
		return "llava:13b"
	case "gemini":
		return "gemini-1.5-flash"
	case "anthropic":
		return "claude-3-5-sonnet-20241022"
	default:
		return ""
	}
}

func (c *Config) Validate() error {
	switch c.Provider.Name {
	case "ollama", "openai", "gemini", "anthropic":
	default:
		return fmt.Errorf("unsupported provider: %s", c.Provider.Name)
	}

	switch c.Export.Format {
	case "shutterstock", "adobe", "istock", "parquet":
	default:
		return fmt.Errorf("unsupported export format: %s", c.Export.Format)
	}

	if c.Keywords.TopK <= 0 {
		return fmt.Errorf("keywords.top_k must be positive, got %d", c.Keywords.TopK)
	}

	if len(c.Defaults.Categories) > models.MaxCategories {
		return fmt.Errorf("at most %d categories allowed, got %d", models.MaxCategories, len(c.Defaults.Categories))
	}
	for _, cat := range c.Defaults.Categories {
		if !models.IsShutterstockCategory(cat) {
			return fmt.Errorf("unknown category: %s", cat)
		}
	}

	return nil
}
