package cmd

import (
	"fmt"

	"github.com/nyskytigers/stocktagger/internal/anthropic"
	"github.com/nyskytigers/stocktagger/internal/config"
	"github.com/nyskytigers/stocktagger/internal/gemini"
	"github.com/nyskytigers/stocktagger/internal/ollama"
	"github.com/nyskytigers/stocktagger/internal/openai"
	"github.com/nyskytigers/stocktagger/internal/providers"
)

// newProviders resolves the configured provider name into caption and
// keyword backends. Every backend implements both faces.
func newProviders(cfg *config.Config) (providers.Captioner, providers.Keyworder, error) {
	pc := providers.Config{
		Name:        cfg.Provider.Name,
		Model:       cfg.Provider.Model,
		Temperature: cfg.Provider.Temperature,
		BaseURL:     cfg.Provider.BaseURL,
	}

	switch pc.Name {
	case "ollama":
		p := ollama.New(pc)
		return p, p, nil
	case "openai":
		p := openai.New(pc)
		return p, p, nil
	case "gemini":
		p := gemini.New(pc)
		return p, p, nil
	case "anthropic":
		p := anthropic.New(pc)
		return p, p, nil
	default:
		return nil, nil, fmt.Errorf("unsupported provider: %s", pc.Name)
	}
}
