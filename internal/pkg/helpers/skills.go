package helpers

import (
	"strings"
)

// ParseSkillList splits a comma-separated skill string into a trimmed,
// empty-filtered list, deduplicated case-insensitively. The first spelling
// of a duplicate wins.
func ParseSkillList(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, s)
	}

	return skills
}

// NormalizeSkills trims and deduplicates an already-split skill list.
func NormalizeSkills(raw []string) []string {
	return ParseSkillList(strings.Join(raw, ","))
}
