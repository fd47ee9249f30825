package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple list", "go, sql, react", []string{"go", "sql", "react"}},
		{"empty string", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"duplicates removed case-insensitively", "Go, go, GO, sql", []string{"Go", "sql"}},
		{"whitespace trimmed", "  go ,  docker  ", []string{"go", "docker"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkillList(tt.raw))
		})
	}
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{" Go ", "go", "", "Postgres"})
	assert.Equal(t, []string{"Go", "Postgres"}, got)
}
