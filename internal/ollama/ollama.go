package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/nyskytigers/stocktagger/internal/providers"
)

// Ollama is a caption and keyword provider backed by a local Ollama server
// running a vision-capable model.
type Ollama struct {
	model       string
	temperature float64
	baseURL     string
}

// New returns a new Ollama provider
func New(cfg providers.Config) *Ollama {
	return &Ollama{
		model:       cfg.Model,
		temperature: cfg.Temperature,
		baseURL:     cfg.BaseURL,
	}
}

// Caption generates a stock-photo description for the given image bytes.
func (o *Ollama) Caption(ctx context.Context, image []byte) (string, error) {
	base64Image := base64.StdEncoding.EncodeToString(image)

	requestBody := map[string]interface{}{
		"model":  o.model,
		"prompt": providers.CaptionPrompt(),
		"images": []string{base64Image},
		"stream": false,
		"options": map[string]interface{}{
			"temperature": o.temperature,
		},
	}

	return o.generate(ctx, requestBody)
}

// Keywords extracts up to topK ranked keywords from the given caption text.
func (o *Ollama) Keywords(ctx context.Context, text string, topK int) ([]string, error) {
	requestBody := map[string]interface{}{
		"model":  o.model,
		"prompt": providers.KeywordPrompt(text, topK),
		"stream": false,
		"options": map[string]interface{}{
			"temperature": o.temperature,
		},
		"format": "json", // Request JSON format
	}

	response, err := o.generate(ctx, requestBody)
	if err != nil {
		return nil, err
	}
	return providers.ParseKeywordList(response, topK), nil
}

func (o *Ollama) generate(ctx context.Context, requestBody map[string]interface{}) (string, error) {
	url := o.host() + "/api/generate"

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: ollama returned status %d - %s", providers.ErrModelUnavailable, resp.StatusCode, string(body))
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	return response.Response, nil
}

func (o *Ollama) host() string {
	if o.baseURL != "" {
		return o.baseURL
	}
	if url := os.Getenv("OLLAMA_URL"); url != "" {
		return url
	}
	if url := os.Getenv("OLLAMA_HOST"); url != "" {
		return url
	}
	return "http://localhost:11434"
}
