package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"campaign_pulse/internal/domain"
)

const (
	sentimentSystemPromptFmt = `Voce e um analista de sentimento para comentarios de eleitores em %s. Classifique o comentario como 'positive', 'negative' ou 'neutral'. Responda APENAS em JSON: {"label": "positive|negative|neutral", "confidence": 0.0-1.0}`

	themeSystemPromptFmt = `Voce e um classificador de temas para comentarios de eleitores em %s. Classifique o comentario em exatamente um destes temas: saude, seguranca, educacao, economia, infraestrutura, corrupcao, emprego, meio_ambiente, outros. Responda APENAS em JSON: {"theme": "...", "confidence": 0.0-1.0}`

	suggestionsSystemPromptFmt = `Voce e um estrategista de campanha eleitoral. A partir do resumo de dados fornecido, gere de 3 a 5 sugestoes acionaveis em %s. Responda APENAS em JSON: {"suggestions": [{"title": "...", "description": "...", "supporting_data": "...", "priority": "high|medium|low"}]}`

	classifyTemperature    = 0.1
	classifyMaxTokens      = 50
	suggestionsTemperature = 0.8
	suggestionsMaxTokens   = 4000
	suggestionsTimeout     = 90 * time.Second

	maxSummaryLength = 8000
)

// Config holds chat completion provider configuration.
type Config struct {
	BaseURL  string
	APIKey   string
	Model    string
	Language string
	Timeout  time.Duration
}

// Client calls an OpenAI-compatible chat completion endpoint.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	model           string
	timeout         time.Duration
	sentimentPrompt string
	themePrompt     string
	suggestPrompt   string
	logger          *slog.Logger
}

// New creates a new chat completion client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient:      &http.Client{},
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:          cfg.APIKey,
		model:           cfg.Model,
		timeout:         cfg.Timeout,
		sentimentPrompt: fmt.Sprintf(sentimentSystemPromptFmt, cfg.Language),
		themePrompt:     fmt.Sprintf(themeSystemPromptFmt, cfg.Language),
		suggestPrompt:   fmt.Sprintf(suggestionsSystemPromptFmt, cfg.Language),
		logger:          logger.With("provider", "llm"),
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// ClassifySentiment asks the provider for a sentiment label. The answer is
// normalized: unknown labels become neutral and the confidence is clamped
// to [0, 1].
func (c *Client) ClassifySentiment(ctx context.Context, text string) (*domain.Classification, error) {
	content, err := c.chat(ctx, c.sentimentPrompt, fmt.Sprintf("Classifique o sentimento: %q", text), classifyTemperature, classifyMaxTokens, c.timeout)
	if err != nil {
		return nil, err
	}

	result, err := parseClassification(content)
	if err != nil {
		return nil, err
	}
	result.Model = c.model

	return result, nil
}

// SuggestTheme asks the provider for a theme. Unknown themes are rejected.
func (c *Client) SuggestTheme(ctx context.Context, text string) (*domain.Classification, error) {
	content, err := c.chat(ctx, c.themePrompt, fmt.Sprintf("Classifique o tema: %q", text), classifyTemperature, classifyMaxTokens, c.timeout)
	if err != nil {
		return nil, err
	}

	result, err := parseTheme(content)
	if err != nil {
		return nil, err
	}
	result.Model = c.model

	return result, nil
}

// GenerateSuggestions turns an analytics snapshot into campaign suggestions.
func (c *Client) GenerateSuggestions(ctx context.Context, snapshot []byte) ([]domain.Suggestion, error) {
	summary := truncate(string(snapshot), maxSummaryLength)

	content, err := c.chat(ctx, c.suggestPrompt, "Dados da campanha:\n"+summary, suggestionsTemperature, suggestionsMaxTokens, suggestionsTimeout)
	if err != nil {
		return nil, err
	}

	return parseSuggestions(content)
}

func (c *Client) chat(ctx context.Context, system, user string, temperature float64, maxTokens int, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: execute request: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty chat response")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func parseClassification(content string) (*domain.Classification, error) {
	var parsed struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil {
		return nil, fmt.Errorf("parse classification: %w", err)
	}

	label := parsed.Label
	switch domain.SentimentLabel(label) {
	case domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral:
	default:
		label = string(domain.SentimentNeutral)
	}

	return &domain.Classification{
		Label:      label,
		Confidence: clampConfidence(parsed.Confidence),
	}, nil
}

func parseTheme(content string) (*domain.Classification, error) {
	var parsed struct {
		Theme      string  `json:"theme"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	if !domain.KnownTheme(parsed.Theme) {
		return nil, fmt.Errorf("unknown theme %q", parsed.Theme)
	}

	return &domain.Classification{
		Label:      parsed.Theme,
		Confidence: clampConfidence(parsed.Confidence),
	}, nil
}

func parseSuggestions(content string) ([]domain.Suggestion, error) {
	var parsed struct {
		Suggestions []domain.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}

	for i := range parsed.Suggestions {
		switch parsed.Suggestions[i].Priority {
		case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		default:
			parsed.Suggestions[i].Priority = domain.PriorityMedium
		}
	}

	return parsed.Suggestions, nil
}

// stripCodeFence removes markdown code fences the model sometimes wraps its
// JSON answer in.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
