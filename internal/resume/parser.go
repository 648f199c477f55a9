// Package resume extracts a candidate draft from plain resume text.
// Callers are expected to hand over already-extracted text; binary formats
// (PDF, DOCX) are out of scope here.
package resume

import (
	"regexp"
	"strings"

	"hirex/internal/domain/matching"

	"github.com/google/uuid"
)

var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(python|java|javascript|typescript|react|angular|vue|node\.?js|express|django|flask|fastapi|go|golang)\b`),
	regexp.MustCompile(`(?i)\b(sql|postgresql|mysql|mongodb|redis|elasticsearch|nosql)\b`),
	regexp.MustCompile(`(?i)\b(aws|azure|gcp|docker|kubernetes|git|jenkins|terraform|ansible)\b`),
	regexp.MustCompile(`(?i)\b(html|css|rest|grpc|microservices|agile|scrum|devops)\b`),
	regexp.MustCompile(`(?i)\b(machine learning|data science|analytics|pandas|numpy)\b`),
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*in\b`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*working`),
	regexp.MustCompile(`(?i)experience[:\s]+(\d+)\s*years?`),
}

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z\s\-'.]+$`)

// Parse builds a candidate draft from resume text. The draft gets a fresh
// short id; salary, locations and industries stay empty for the caller to
// fill in.
func Parse(text string) matching.Candidate {
	return matching.Candidate{
		ID:              "cand-" + uuid.NewString()[:8],
		FullName:        extractName(text),
		YearsExperience: extractYears(text),
		Skills:          extractSkills(text),
		OpenToRemote:    true,
	}
}

func extractName(text string) string {
	for _, line := range strings.SplitN(strings.TrimSpace(text), "\n", 6) {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) < 2 {
			continue
		}
		if namePattern.MatchString(line) {
			return line
		}
	}
	return "Unknown Candidate"
}

func extractYears(text string) int {
	best := 0
	for _, re := range experiencePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v := atoiSafe(m[1]); v > best {
				best = v
			}
		}
		if best > 0 {
			return best
		}
	}
	return best
}

func extractSkills(text string) []string {
	out := make([]string, 0, 15)
	seen := map[string]struct{}{}

	add := func(skill string) {
		skill = strings.TrimSpace(skill)
		if skill == "" || len(skill) >= 30 {
			return
		}
		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, titleCase(key))
	}

	for _, re := range skillPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}

	if len(out) == 0 {
		for _, skill := range skillsSection(text) {
			add(skill)
		}
	}

	if len(out) > 15 {
		out = out[:15]
	}
	return out
}

// skillsSection falls back to a dedicated "Skills:" block when no known
// keyword matched.
func skillsSection(text string) []string {
	var out []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		if !inSection {
			if strings.Contains(lower, "skills") || strings.Contains(lower, "technologies") {
				inSection = true
			}
			continue
		}
		if strings.HasPrefix(lower, "experience") || strings.HasPrefix(lower, "education") || strings.HasPrefix(lower, "projects") {
			break
		}
		for _, part := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == '|'
		}) {
			part = strings.TrimSpace(part)
			if len(part) > 1 && len(part) < 30 {
				out = append(out, part)
			}
		}
	}
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
		if n > 80 {
			return 80
		}
	}
	return n
}
