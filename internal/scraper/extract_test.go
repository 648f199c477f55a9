package scraper

import (
	"testing"
)

const sampleDescription = `Backend Engineer

Required qualifications:
5+ years of experience building services with Go and PostgreSQL.
Strong SQL and Docker knowledge.

Nice to have:
Experience with Kubernetes and Terraform.

We are a fast growing fintech company. Salary range $120,000 - $150,000.
This role is fully remote.`

func TestExtractSkills_SectionedDescription(t *testing.T) {
	required, nice := extractSkills(sampleDescription)

	wantRequired := map[string]bool{"Postgresql": false, "Sql": false, "Docker": false}
	for _, s := range required {
		if _, ok := wantRequired[s]; ok {
			wantRequired[s] = true
		}
	}
	for skill, found := range wantRequired {
		if !found {
			t.Fatalf("expected required skill %q, got %v", skill, required)
		}
	}

	wantNice := map[string]bool{"Kubernetes": false, "Terraform": false}
	for _, s := range nice {
		if _, ok := wantNice[s]; ok {
			wantNice[s] = true
		}
	}
	for skill, found := range wantNice {
		if !found {
			t.Fatalf("expected nice-to-have skill %q, got %v", skill, nice)
		}
	}
}

func TestExtractSkills_NoKeywords(t *testing.T) {
	required, nice := extractSkills("We sell flowers and need a florist.")
	if len(required) != 0 || len(nice) != 0 {
		t.Fatalf("expected no skills, got %v / %v", required, nice)
	}
}

func TestExtractMinYears(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"5+ years of experience required", 5},
		{"minimum of 3 years in the field", 3},
		{"2 to 4 years in backend roles", 2},
		{"no requirement listed", 0},
	}
	for _, tc := range cases {
		if got := extractMinYears(tc.text); got != tc.want {
			t.Fatalf("extractMinYears(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestExtractSalary(t *testing.T) {
	min, max := extractSalary(sampleDescription)
	if min == nil || max == nil {
		t.Fatalf("expected salary range, got %v %v", min, max)
	}
	if *min != 120000 || *max != 150000 {
		t.Fatalf("expected 120000-150000, got %d-%d", *min, *max)
	}

	min, max = extractSalary("competitive compensation")
	if min != nil || max != nil {
		t.Fatalf("expected no salary, got %v %v", min, max)
	}
}

func TestExtractSalary_SwappedBounds(t *testing.T) {
	min, max := extractSalary("$150,000 - $120,000")
	if min == nil || max == nil || *min != 120000 || *max != 150000 {
		t.Fatalf("expected normalized 120000-150000, got %v %v", min, max)
	}
}

func TestExtractRemote(t *testing.T) {
	if !extractRemote(sampleDescription, "") {
		t.Fatal("expected remote from description")
	}
	if !extractRemote("onsite role", "Remote, US") {
		t.Fatal("expected remote from location")
	}
	if extractRemote("onsite in Berlin", "Berlin, Germany") {
		t.Fatal("expected not remote")
	}
}

func TestExtractIndustries(t *testing.T) {
	got := extractIndustries(sampleDescription)
	if len(got) != 1 || got[0] != "Fintech" {
		t.Fatalf("expected [Fintech], got %v", got)
	}
	if out := extractIndustries("a generic software shop"); len(out) != 0 {
		t.Fatalf("expected no industries, got %v", out)
	}
}
