package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign_pulse/internal/domain"
)

func TestParseClassification(t *testing.T) {
	result, err := parseClassification(`{"label": "positive", "confidence": 0.85}`)
	require.NoError(t, err)

	assert.Equal(t, "positive", result.Label)
	assert.Equal(t, 0.85, result.Confidence)
}

func TestParseClassification_UnknownLabelBecomesNeutral(t *testing.T) {
	result, err := parseClassification(`{"label": "mixed", "confidence": 0.9}`)
	require.NoError(t, err)

	assert.Equal(t, "neutral", result.Label)
}

func TestParseClassification_ClampsConfidence(t *testing.T) {
	high, err := parseClassification(`{"label": "negative", "confidence": 1.7}`)
	require.NoError(t, err)
	assert.Equal(t, 1.0, high.Confidence)

	low, err := parseClassification(`{"label": "negative", "confidence": -0.3}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, low.Confidence)
}

func TestParseClassification_FencedJSON(t *testing.T) {
	content := "```json\n{\"label\": \"negative\", \"confidence\": 0.72}\n```"

	result, err := parseClassification(content)
	require.NoError(t, err)

	assert.Equal(t, "negative", result.Label)
	assert.Equal(t, 0.72, result.Confidence)
}

func TestParseClassification_Garbage(t *testing.T) {
	_, err := parseClassification("desculpe, nao posso ajudar")
	require.Error(t, err)
}

func TestParseTheme(t *testing.T) {
	result, err := parseTheme(`{"theme": "infraestrutura", "confidence": 0.8}`)
	require.NoError(t, err)

	assert.Equal(t, "infraestrutura", result.Label)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestParseTheme_UnknownTheme(t *testing.T) {
	_, err := parseTheme(`{"theme": "esportes", "confidence": 0.9}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestParseSuggestions(t *testing.T) {
	content := `{"suggestions": [
		{"title": "Focar em saude", "description": "...", "supporting_data": "45% dos comentarios", "priority": "high"},
		{"title": "Responder criticas", "description": "...", "priority": "urgent"}
	]}`

	suggestions, err := parseSuggestions(content)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, domain.PriorityHigh, suggestions[0].Priority)
	// invalid priorities are normalized
	assert.Equal(t, domain.PriorityMedium, suggestions[1].Priority)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripCodeFence("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFence("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFence(`{"a": 1}`))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, strings.Repeat("ã", 5), truncate(strings.Repeat("ã", 50), 5))
}
