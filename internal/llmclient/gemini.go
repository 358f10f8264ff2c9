package llmclient

import (
	"context"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client. It only
// focuses on the API call itself; the conversation session decides what to
// do with failures.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient creates a Gemini-backed client.
// The genai client reads GEMINI_API_KEY from the environment; the apiKey
// parameter is kept for a consistent factory signature.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	_ = apiKey

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// GenerateText sends the prior turns plus the new message as chat contents
// with the system instruction attached, and returns the reply text.
func (g *GeminiClient) GenerateText(ctx context.Context, systemInstruction string, history []Turn, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		var role genai.Role = genai.RoleUser
		if t.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyReply
	}
	txt := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(txt) == "" {
		return "", ErrEmptyReply
	}
	return txt, nil
}
