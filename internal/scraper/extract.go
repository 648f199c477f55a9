package scraper

import (
	"regexp"
	"sort"
	"strings"
)

// Keyword table shared by every source; postings rarely label their stack,
// so extraction scans the whole description for known technology names.
var skillKeywords = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node.js", "express", "django", "flask", "fastapi", "spring", "sql",
	"postgresql", "mysql", "mongodb", "redis", "aws", "azure", "gcp",
	"docker", "kubernetes", "git", "jenkins", "terraform", "ansible",
	"html", "css", "rest", "api", "microservices", "agile", "scrum",
	"machine learning", "ml", "ai", "data science", "analytics",
}

var requiredSectionHints = []string{"required", "must have", "essential", "qualifications"}
var niceToHaveSectionHints = []string{"preferred", "nice to have", "bonus", "plus"}

var experienceRequirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`minimum\s*(?:of\s*)?(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\s*to\s*\d+\s*years?`),
	regexp.MustCompile(`(\d+)\s*-\s*\d+\s*years?`),
}

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*)\s*-\s*\$(\d{1,3}(?:,\d{3})*)`),
	regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*)\s*to\s*\$(\d{1,3}(?:,\d{3})*)`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*-\s*(\d{1,3}(?:,\d{3})*)\s*(?:USD|dollars?)`),
}

var remoteIndicators = []string{
	"remote", "work from home", "telecommute", "distributed",
	"anywhere", "location independent",
}

var industryKeywords = map[string][]string{
	"Fintech":     {"fintech", "financial technology", "banking", "finance"},
	"Saas":        {"saas", "software as a service", "cloud software"},
	"Healthcare":  {"healthcare", "medical", "health tech", "biotech"},
	"E-Commerce":  {"e-commerce", "ecommerce", "retail", "marketplace"},
	"Education":   {"education", "edtech", "learning", "university"},
	"Gaming":      {"gaming", "games", "entertainment"},
	"Automotive":  {"automotive", "transportation", "mobility"},
	"Real Estate": {"real estate", "property", "housing"},
}

// extractSkills splits the keywords found in a description into required and
// nice-to-have buckets by tracking which labelled section each mention falls
// under. Without labelled sections the first half counts as required.
func extractSkills(description string) (required []string, niceToHave []string) {
	lower := strings.ToLower(description)

	var found []string
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, titleWords(kw))
		}
	}
	if len(found) == 0 {
		return nil, nil
	}

	sectionRequired := true
	for _, line := range strings.Split(description, "\n") {
		lineLower := strings.ToLower(line)
		if containsAny(lineLower, requiredSectionHints) {
			sectionRequired = true
		} else if containsAny(lineLower, niceToHaveSectionHints) {
			sectionRequired = false
		}
		for _, skill := range found {
			if !strings.Contains(lineLower, strings.ToLower(skill)) {
				continue
			}
			if sectionRequired {
				required = append(required, skill)
			} else {
				niceToHave = append(niceToHave, skill)
			}
		}
	}

	if len(required) == 0 && len(niceToHave) == 0 {
		mid := len(found) / 2
		if mid == 0 {
			if len(found) > 3 {
				return dedupe(found[:3]), nil
			}
			return dedupe(found), nil
		}
		return dedupe(found[:mid]), dedupe(found[mid:])
	}

	return dedupe(required), dedupe(niceToHave)
}

func extractMinYears(description string) int {
	lower := strings.ToLower(description)
	for _, re := range experienceRequirementPatterns {
		if m := re.FindStringSubmatch(lower); len(m) > 1 {
			return atoiCapped(m[1], 60)
		}
	}
	return 0
}

func extractSalary(description string) (min *int, max *int) {
	for _, re := range salaryPatterns {
		m := re.FindStringSubmatch(description)
		if len(m) < 3 {
			continue
		}
		lo := atoiCapped(strings.ReplaceAll(m[1], ",", ""), 10_000_000)
		hi := atoiCapped(strings.ReplaceAll(m[2], ",", ""), 10_000_000)
		if lo == 0 && hi == 0 {
			continue
		}
		if hi < lo {
			lo, hi = hi, lo
		}
		return &lo, &hi
	}
	return nil, nil
}

func extractRemote(description, location string) bool {
	lower := strings.ToLower(description)
	locLower := strings.ToLower(location)
	for _, ind := range remoteIndicators {
		if strings.Contains(lower, ind) || strings.Contains(locLower, ind) {
			return true
		}
	}
	return false
}

func extractIndustries(description string) []string {
	lower := strings.ToLower(description)
	var out []string
	for industry, keywords := range industryKeywords {
		if containsAny(lower, keywords) {
			out = append(out, industry)
		}
	}
	sort.Strings(out)
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func atoiCapped(s string, limit int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
		if n > limit {
			return limit
		}
	}
	return n
}
