package domain

import (
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeSaude          Theme = "saude"
	ThemeSeguranca      Theme = "seguranca"
	ThemeEducacao       Theme = "educacao"
	ThemeEconomia       Theme = "economia"
	ThemeInfraestrutura Theme = "infraestrutura"
	ThemeCorrupcao      Theme = "corrupcao"
	ThemeEmprego        Theme = "emprego"
	ThemeMeioAmbiente   Theme = "meio_ambiente"
	ThemeOutros         Theme = "outros"
)

// Themes lists every theme in a fixed order, the catch-all last.
var Themes = []Theme{
	ThemeSaude,
	ThemeSeguranca,
	ThemeEducacao,
	ThemeEconomia,
	ThemeInfraestrutura,
	ThemeCorrupcao,
	ThemeEmprego,
	ThemeMeioAmbiente,
	ThemeOutros,
}

func KnownTheme(s string) bool {
	for _, t := range Themes {
		if Theme(s) == t {
			return true
		}
	}
	return false
}

type ThemeMethod string

const (
	MethodKeyword       ThemeMethod = "keyword"
	MethodProbabilistic ThemeMethod = "probabilistic"
)

// ThemeTag assigns one theme to one comment. A comment may carry several tags,
// but at most one per (theme, method) pair.
type ThemeTag struct {
	ID         uuid.UUID   `db:"id"`
	CommentID  uuid.UUID   `db:"comment_id"`
	Theme      Theme       `db:"theme"`
	Confidence float64     `db:"confidence"`
	Method     ThemeMethod `db:"method"`
	CreatedAt  time.Time   `db:"created_at"`
}
