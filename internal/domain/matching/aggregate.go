package matching

import "math"

type component struct {
	score   float64
	present bool
	weight  float64
}

// scoreJob computes the full breakdown for one candidate/job pair.
// The total is the weighted sum over components with data, renormalized by
// the sum of their weights. If no component has data the total is 0.
func scoreJob(c Candidate, j Job, w Weights) ScoreBreakdown {
	skills, skillsOK := scoreSkills(c, j)
	exp, expOK := scoreExperience(c, j)
	salary, salaryOK := scoreSalary(c, j)
	loc, locOK := scoreLocation(c, j)
	ind, indOK := scoreIndustry(c, j)

	components := [5]component{
		{skills, skillsOK, w.Skills},
		{exp, expOK, w.Experience},
		{salary, salaryOK, w.Salary},
		{loc, locOK, w.Location},
		{ind, indOK, w.Industry},
	}

	var weighted, weightSum float64
	var applied [5]float64
	for i, cmp := range components {
		if !cmp.present {
			continue
		}
		weighted += cmp.weight * cmp.score
		weightSum += cmp.weight
		applied[i] = cmp.weight
	}

	total := 0.0
	if weightSum > 0 {
		total = round4(weighted / weightSum)
	}

	return ScoreBreakdown{
		Skills:     ComponentScore{Score: skills, Weight: applied[0]},
		Experience: ComponentScore{Score: exp, Weight: applied[1]},
		Salary:     ComponentScore{Score: salary, Weight: applied[2]},
		Location:   ComponentScore{Score: loc, Weight: applied[3]},
		Industry:   ComponentScore{Score: ind, Weight: applied[4]},
		Total:      total,
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
