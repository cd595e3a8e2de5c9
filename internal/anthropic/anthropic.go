package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"os"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/nyskytigers/stocktagger/internal/providers"
)

const maxTokens = 1024

// Anthropic is a caption and keyword provider backed by the Claude API.
type Anthropic struct {
	model   string
	baseURL string
}

// New returns a new Anthropic provider
func New(cfg providers.Config) *Anthropic {
	return &Anthropic{
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
	}
}

// Caption generates a stock-photo description for the given image bytes.
func (a *Anthropic) Caption(ctx context.Context, image []byte) (string, error) {
	content := []anthropic.MessageContent{
		anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
			anthropic.MessagesContentSourceTypeBase64,
			http.DetectContentType(image),
			image,
		)),
		anthropic.NewTextMessageContent(providers.CaptionPrompt()),
	}
	return a.createMessage(ctx, content)
}

// Keywords extracts up to topK ranked keywords from the given caption text.
func (a *Anthropic) Keywords(ctx context.Context, text string, topK int) ([]string, error) {
	content := []anthropic.MessageContent{
		anthropic.NewTextMessageContent(providers.KeywordPrompt(text, topK)),
	}

	response, err := a.createMessage(ctx, content)
	if err != nil {
		return nil, err
	}
	return providers.ParseKeywordList(response, topK), nil
}

func (a *Anthropic) createMessage(ctx context.Context, content []anthropic.MessageContent) (string, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("%w: ANTHROPIC_API_KEY environment variable not set", providers.ErrModelUnavailable)
	}

	var opts []anthropic.ClientOption
	if a.baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(a.baseURL))
	}
	client := anthropic.NewClient(apiKey, opts...)

	resp, err := client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(a.model),
		Messages: []anthropic.Message{
			{
				Role:    anthropic.RoleUser,
				Content: content,
			},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", providers.ErrModelUnavailable, err)
	}

	if len(resp.Content) > 0 && resp.Content[0].Text != nil {
		return *resp.Content[0].Text, nil
	}
	return "", fmt.Errorf("no response content from Anthropic")
}
