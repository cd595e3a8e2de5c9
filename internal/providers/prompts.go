package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nyskytigers/stocktagger/internal/keywords"
)

// CaptionPrompt builds the instruction sent alongside an image to produce
// a stock-photo description.
func CaptionPrompt() string {
	return `You are a professional stock photography editor. Write a single factual, literal description of the image, suitable as a Shutterstock description.

RULES:
1. One sentence, at most 150 characters.
2. Describe only what is visible. Do not invent context, emotion, or brand names.
3. No quotes, no markdown, no trailing punctuation commentary.

Respond with ONLY the description text.`
}

// KeywordPrompt builds the instruction for extracting SEO keywords from a
// caption.
func KeywordPrompt(text string, topK int) string {
	return fmt.Sprintf(`You are a stock photography SEO specialist. Extract the %d most relevant search keywords and two-word keyphrases for the image described below, ordered from most to least relevant.

Image description: %s

RULES:
1. Lowercase single words or two-word phrases.
2. No duplicates, no stop words on their own, no hashtags.
3. Order by relevance, most relevant first.

OUTPUT FORMAT:
Respond with ONLY a JSON array of strings, e.g. ["cat", "feline portrait", "pet"].`, topK, text)
}

// ParseKeywordList extracts a keyword list from a model response. It
// expects a JSON array of strings, tolerating markdown code fences and a
// {"keywords": [...]} wrapper. As a last resort the response is split on
// commas and newlines. The result is normalized and capped at topK.
func ParseKeywordList(response string, topK int) []string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	var list []string
	if err := json.Unmarshal([]byte(response), &list); err != nil {
		var wrapped struct {
			Keywords []string `json:"keywords"`
		}
		if err := json.Unmarshal([]byte(response), &wrapped); err == nil && len(wrapped.Keywords) > 0 {
			list = wrapped.Keywords
		} else {
			list = splitLoose(response)
		}
	}

	list = keywords.Normalize(list)
	if topK > 0 && len(list) > topK {
		list = list[:topK]
	}
	return list
}

// splitLoose is the fallback for models that answer with plain text
// instead of JSON.
func splitLoose(response string) []string {
	fields := strings.FieldsFunc(response, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(strings.TrimSpace(f), `"'[]-`)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
