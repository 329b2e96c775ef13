package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign_pulse/internal/domain"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"folds case and accents", "A Saúde NÃO vai BEM", []string{"saude", "bem"}},
		{"strips punctuation and digits", "top10 candidato!!! 💪", []string{"top", "candidato"}},
		{"drops stopwords and short fragments", "eu já fui de um ao rio", []string{"fui", "rio"}},
		{"empty input", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenize(tc.text))
		})
	}
}

func TestBuildWordCloud_PhrasesRankFirst(t *testing.T) {
	texts := []string{
		"saude publica precisa melhorar",
		"saude publica precisa melhorar",
	}

	cloud := buildWordCloud(texts, 10)

	require.Len(t, cloud.Words, 3)
	assert.Equal(t, "precisa melhorar", cloud.Words[0].Word)
	assert.Equal(t, "publica precisa", cloud.Words[1].Word)
	assert.Equal(t, "saude publica", cloud.Words[2].Word)
	for _, entry := range cloud.Words {
		assert.Equal(t, 2, entry.Count)
	}
	assert.Equal(t, 3, cloud.Total)
}

func TestBuildWordCloud_SingleWordsFillRemainingSlots(t *testing.T) {
	texts := []string{
		"hospital lotado",
		"hospital cheio",
		"hospital parado",
	}

	cloud := buildWordCloud(texts, 10)

	// No phrase repeats, and only "hospital" clears the repeat threshold.
	require.Len(t, cloud.Words, 1)
	assert.Equal(t, domain.WordEntry{Word: "hospital", Count: 3}, cloud.Words[0])
}

func TestBuildWordCloud_SkipsWordsCoveredByPhrases(t *testing.T) {
	texts := []string{
		"saude publica boa",
		"saude publica ruim",
	}

	cloud := buildWordCloud(texts, 10)

	// "saude publica" repeats, so its parts never reappear as single words.
	require.Len(t, cloud.Words, 1)
	assert.Equal(t, domain.WordEntry{Word: "saude publica", Count: 2}, cloud.Words[0])
}

func TestBuildWordCloud_RespectsLimit(t *testing.T) {
	texts := []string{
		"hospital lotado", "hospital lotado",
		"transito parado", "transito parado",
		"obra atrasada", "obra atrasada",
	}

	cloud := buildWordCloud(texts, 2)

	require.Len(t, cloud.Words, 2)
	assert.Equal(t, "hospital lotado", cloud.Words[0].Word)
	assert.Equal(t, "obra atrasada", cloud.Words[1].Word)
	assert.Equal(t, 2, cloud.Total)
}

func TestBuildWordCloud_Empty(t *testing.T) {
	cloud := buildWordCloud(nil, 10)

	assert.NotNil(t, cloud.Words)
	assert.Empty(t, cloud.Words)
	assert.Zero(t, cloud.Total)
}
