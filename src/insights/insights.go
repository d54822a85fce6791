package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/strata-hq/teamforge/src/traits"
)

// Config carries the strength/risk cutoffs so tests can override them
// without process-wide state.
type Config struct {
	GoodCutoff float64
	PoorCutoff float64
}

func DefaultConfig() Config {
	return Config{GoodCutoff: 0.75, PoorCutoff: 0.45}
}

// Explainer turns the numeric scores of a grouping into human-readable
// strengths and risks. Pure threshold rules, no side effects.
type Explainer struct {
	cfg Config
}

func NewExplainer(cfg Config) *Explainer {
	if cfg.GoodCutoff == 0 && cfg.PoorCutoff == 0 {
		cfg = DefaultConfig()
	}
	return &Explainer{cfg: cfg}
}

// Explain derives strength and risk strings for one scored grouping.
func (e *Explainer) Explain(g traits.TeamGrouping, members map[string]traits.TeamMember) (strengths, risks []string) {
	type dim struct {
		score    float64
		strength string
		risk     string
	}
	dims := []dim{
		{g.SkillCoverage,
			"strong coverage of the required skill set",
			"required skills are not fully covered"},
		{g.CompatibilityScore,
			"high interpersonal compatibility across the team",
			"low pairwise compatibility may cause friction"},
		{g.DiversityScore,
			"diverse personality mix supports balanced decision making",
			"homogeneous personalities raise groupthink risk"},
		{g.EstimatedVelocity,
			"experience and availability support a high delivery pace",
			"limited experience or availability will slow delivery"},
	}
	for _, d := range dims {
		if d.score >= e.cfg.GoodCutoff {
			strengths = append(strengths, d.strength)
		} else if d.score < e.cfg.PoorCutoff {
			risks = append(risks, d.risk)
		}
	}

	if roles := distinctRoles(g.MemberIDs, members); len(roles) >= 3 {
		strengths = append(strengths, fmt.Sprintf("broad role coverage (%s)", strings.Join(roles, ", ")))
	}
	return strengths, risks
}

// ResultNotes builds the result-level insights and warnings from the
// top-ranked grouping.
func (e *Explainer) ResultNotes(top traits.TeamGrouping, req traits.ProjectRequirements, members map[string]traits.TeamMember) (notes, warnings []string) {
	if top.SkillCoverage >= 1 {
		notes = append(notes, "recommended team covers every required skill")
	} else {
		missing := missingSkills(top.MemberIDs, req.RequiredSkills, members)
		warnings = append(warnings, fmt.Sprintf("skill gap: %s not covered by the recommended team", strings.Join(missing, ", ")))
	}

	if top.DiversityScore < 0.3 {
		warnings = append(warnings, "low personality diversity in the recommended team (groupthink risk)")
	}
	if top.CompatibilityScore >= e.cfg.GoodCutoff {
		notes = append(notes, "pairwise compatibility is high across the recommended team")
	}

	if avail := meanAvailability(top.MemberIDs, members); avail > 0 && avail < 0.5 {
		warnings = append(warnings, fmt.Sprintf("mean availability is only %.0f%%; delivery estimates assume partial allocation", avail*100))
	}
	return notes, warnings
}

func distinctRoles(ids []string, members map[string]traits.TeamMember) []string {
	seen := map[string]bool{}
	var roles []string
	for _, id := range ids {
		m, ok := members[id]
		if !ok {
			continue
		}
		r := string(m.Role)
		if r != "" && !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}
	sort.Strings(roles)
	return roles
}

func missingSkills(ids []string, required []string, members map[string]traits.TeamMember) []string {
	covered := map[string]bool{}
	for _, id := range ids {
		for _, s := range members[id].Skills {
			covered[s] = true
		}
	}
	var missing []string
	for _, s := range required {
		if !covered[s] {
			missing = append(missing, s)
		}
	}
	sort.Strings(missing)
	return missing
}

func meanAvailability(ids []string, members map[string]traits.TeamMember) float64 {
	if len(ids) == 0 {
		return 0
	}
	total, n := 0.0, 0
	for _, id := range ids {
		if m, ok := members[id]; ok {
			total += m.Availability
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
