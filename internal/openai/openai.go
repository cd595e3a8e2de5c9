package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nyskytigers/stocktagger/internal/providers"
)

// OpenAI is a caption and keyword provider backed by the OpenAI chat API.
type OpenAI struct {
	model       string
	temperature float32
	baseURL     string
}

// New returns a new OpenAI provider
func New(cfg providers.Config) *OpenAI {
	return &OpenAI{
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		baseURL:     cfg.BaseURL,
	}
}

// Caption generates a stock-photo description for the given image bytes.
func (o *OpenAI) Caption(ctx context.Context, image []byte) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s",
		http.DetectContentType(image),
		base64.StdEncoding.EncodeToString(image))

	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: providers.CaptionPrompt(),
				},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
				},
			},
		},
	}

	return o.chat(ctx, messages)
}

// Keywords extracts up to topK ranked keywords from the given caption text.
func (o *OpenAI) Keywords(ctx context.Context, text string, topK int) ([]string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: providers.KeywordPrompt(text, topK),
		},
	}

	response, err := o.chat(ctx, messages)
	if err != nil {
		return nil, err
	}
	return providers.ParseKeywordList(response, topK), nil
}

func (o *OpenAI) chat(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("%w: OPENAI_API_KEY environment variable not set", providers.ErrModelUnavailable)
	}

	config := openai.DefaultConfig(apiKey)
	if o.baseURL != "" {
		config.BaseURL = o.baseURL
	}
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: o.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrModelUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
