package resume

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
Senior Backend Engineer

Summary
8+ years of experience building APIs with Python, FastAPI and PostgreSQL.
Comfortable with Docker, Kubernetes and AWS.

Education
BSc Computer Science
`

func TestParse_ExtractsNameYearsAndSkills(t *testing.T) {
	c := Parse(sampleResume)

	if c.FullName != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %q", c.FullName)
	}
	if c.YearsExperience != 8 {
		t.Fatalf("expected 8 years, got %d", c.YearsExperience)
	}
	if !strings.HasPrefix(c.ID, "cand-") {
		t.Fatalf("expected generated id, got %q", c.ID)
	}

	want := map[string]bool{"Python": false, "Fastapi": false, "Postgresql": false, "Docker": false, "Kubernetes": false, "Aws": false}
	for _, s := range c.Skills {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for skill, found := range want {
		if !found {
			t.Fatalf("expected skill %q in %v", skill, c.Skills)
		}
	}
}

func TestParse_SkillsSectionFallback(t *testing.T) {
	text := `John Smith

Skills
Kafka, Cassandra; Erlang
Education
`
	c := Parse(text)
	if len(c.Skills) != 3 {
		t.Fatalf("expected 3 skills from section fallback, got %v", c.Skills)
	}
}

func TestParse_EmptyText(t *testing.T) {
	c := Parse("")
	if c.FullName != "Unknown Candidate" {
		t.Fatalf("expected fallback name, got %q", c.FullName)
	}
	if c.YearsExperience != 0 {
		t.Fatalf("expected 0 years, got %d", c.YearsExperience)
	}
	if len(c.Skills) != 0 {
		t.Fatalf("expected no skills, got %v", c.Skills)
	}
}
