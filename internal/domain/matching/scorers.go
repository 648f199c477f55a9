package matching

import (
	"math"
	"strings"
)

// Tunable defaults for the skill split and the salary decay. These are
// heuristics, not protocol; see DESIGN.md.
const (
	requiredSkillShare   = 0.7
	niceToHaveSkillShare = 0.3
	salaryWidthFraction  = 0.25
	minSalaryRangeWidth  = 1.0
)

// Each scorer returns a score in [0,1] plus a flag telling whether the
// underlying data was present. Absent components are excluded from the
// weighted total rather than scored as zero.

func scoreSkills(c Candidate, j Job) (float64, bool) {
	candSet := normalizedSet(c.Skills)
	reqSet := normalizedSet(j.RequiredSkills)
	niceSet := normalizedSet(j.NiceToHaveSkills)

	present := len(candSet) > 0 || len(reqSet) > 0
	if !present {
		return 0, false
	}

	reqRatio := 1.0
	if len(reqSet) > 0 {
		reqRatio = float64(intersectionCount(candSet, reqSet)) / float64(len(reqSet))
	}

	if len(niceSet) == 0 {
		return reqRatio, true
	}
	niceRatio := float64(intersectionCount(candSet, niceSet)) / float64(len(niceSet))
	return requiredSkillShare*reqRatio + niceToHaveSkillShare*niceRatio, true
}

func scoreExperience(c Candidate, j Job) (float64, bool) {
	if j.MinimumYearsExperience <= 0 {
		return 1, true
	}
	years := c.YearsExperience
	if years < 0 {
		years = 0
	}
	return math.Min(1, float64(years)/float64(j.MinimumYearsExperience)), true
}

func scoreSalary(c Candidate, j Job) (float64, bool) {
	if c.DesiredSalary == nil || (j.SalaryMin == nil && j.SalaryMax == nil) {
		return 0, false
	}

	desired := float64(*c.DesiredSalary)
	if (j.SalaryMin == nil || desired >= float64(*j.SalaryMin)) &&
		(j.SalaryMax == nil || desired <= float64(*j.SalaryMax)) {
		return 1, true
	}

	var distance float64
	if j.SalaryMin != nil && desired < float64(*j.SalaryMin) {
		distance = float64(*j.SalaryMin) - desired
	} else {
		distance = desired - float64(*j.SalaryMax)
	}

	width := minSalaryRangeWidth
	if j.SalaryMin != nil && j.SalaryMax != nil {
		width = math.Max(width, float64(*j.SalaryMax)-float64(*j.SalaryMin))
	}
	if j.SalaryMin != nil {
		width = math.Max(width, salaryWidthFraction*float64(*j.SalaryMin))
	} else if j.SalaryMax != nil {
		width = math.Max(width, salaryWidthFraction*float64(*j.SalaryMax))
	}

	return math.Max(0, 1-distance/width), true
}

func scoreLocation(c Candidate, j Job) (float64, bool) {
	loc := strings.ToLower(strings.TrimSpace(j.Location))
	if loc == "" {
		return 0, false
	}
	if j.RemoteAllowed && c.OpenToRemote {
		return 1, true
	}
	if _, ok := normalizedSet(c.PreferredLocations)[loc]; ok {
		return 1, true
	}
	return 0, true
}

func scoreIndustry(c Candidate, j Job) (float64, bool) {
	jobSet := normalizedSet(j.Industries)
	if len(jobSet) == 0 {
		return 0, false
	}
	candSet := normalizedSet(c.Industries)
	return float64(intersectionCount(candSet, jobSet)) / float64(len(jobSet)), true
}
