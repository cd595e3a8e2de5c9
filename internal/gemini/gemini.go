package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/nyskytigers/stocktagger/internal/providers"
	"google.golang.org/api/option"
)

// Gemini is a caption and keyword provider backed by Google Gemini.
type Gemini struct {
	model       string
	temperature float32
}

// New returns a new Gemini provider
func New(cfg providers.Config) *Gemini {
	return &Gemini{
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}
}

// Caption generates a stock-photo description for the given image bytes.
func (g *Gemini) Caption(ctx context.Context, image []byte) (string, error) {
	parts := []genai.Part{
		genai.ImageData(imageFormat(image), image),
		genai.Text(providers.CaptionPrompt()),
	}
	return g.generate(ctx, parts)
}

// Keywords extracts up to topK ranked keywords from the given caption text.
func (g *Gemini) Keywords(ctx context.Context, text string, topK int) ([]string, error) {
	response, err := g.generate(ctx, []genai.Part{genai.Text(providers.KeywordPrompt(text, topK))})
	if err != nil {
		return nil, err
	}
	return providers.ParseKeywordList(response, topK), nil
}

func (g *Gemini) generate(ctx context.Context, parts []genai.Part) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY environment variable not set", providers.ErrModelUnavailable)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(g.temperature)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrModelUnavailable, err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return string(txt), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}

// imageFormat maps sniffed content type to the format label genai expects.
func imageFormat(image []byte) string {
	contentType := http.DetectContentType(image)
	format := strings.TrimPrefix(contentType, "image/")
	if format == contentType {
		return "jpeg"
	}
	return format
}
