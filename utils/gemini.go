package utils

import (
	"encoding/json"
	"fmt"
	"lms/config"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
)

// GeminiGenerationConfig controls sampling for a generation request
type GeminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig GeminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateGeminiContent sends a single-turn prompt to the Gemini API and
// returns the raw candidate text. The model is asked for pure JSON but
// replies may still arrive wrapped in markdown code fences; callers
// should run the result through StripCodeFences before parsing.
func GenerateGeminiContent(prompt string, genConfig GeminiGenerationConfig) (string, error) {
	apiKey := config.AppConfig.GeminiApiKey
	if apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	reqBody := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: genConfig,
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", apiKey).
		SetBody(reqBody).
		Post(config.AppConfig.GeminiApiUrl)
	if err != nil {
		log.Printf("Failed to call Gemini API: %v", err)
		return "", fmt.Errorf("failed to call Gemini API: %v", err)
	}

	if resp.StatusCode() != 200 {
		log.Printf("Gemini API full error response: %s", resp.String())
		return "", fmt.Errorf("Gemini API error: %d %s", resp.StatusCode(), resp.Status())
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(resp.Body(), &geminiResp); err != nil {
		return "", fmt.Errorf("invalid Gemini response: %v", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty Gemini response")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// StripCodeFences removes markdown code-fence wrapping (```json ... ```
// or plain ``` ... ```) that the model sometimes adds around JSON replies
func StripCodeFences(content string) string {
	cleaned := strings.TrimSpace(content)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}
