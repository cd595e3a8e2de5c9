package providers

import (
	"context"
	"errors"
)

var (
	// ErrModelUnavailable indicates the provider cannot serve requests,
	// usually a missing API key or unreachable endpoint.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrDecode indicates the provider could not make sense of the image.
	ErrDecode = errors.New("image decode failed")
)

// Config represents the configuration for a model provider
type Config struct {
	Name        string
	Model       string
	Temperature float64
	BaseURL     string
}

// Captioner produces a natural-language caption for an image.
type Captioner interface {
	Caption(ctx context.Context, image []byte) (string, error)
}

// Keyworder extracts a ranked list of keyword phrases from text.
// Keyword extraction operates on the generated caption, not raw pixels.
type Keyworder interface {
	Keywords(ctx context.Context, text string, topK int) ([]string, error)
}
