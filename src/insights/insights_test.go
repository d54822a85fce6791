package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-hq/teamforge/src/traits"
)

func grouping(coverage, compatibility, diversity, velocity float64, ids ...string) traits.TeamGrouping {
	return traits.TeamGrouping{
		MemberIDs:          ids,
		SkillCoverage:      coverage,
		CompatibilityScore: compatibility,
		DiversityScore:     diversity,
		EstimatedVelocity:  velocity,
	}
}

func TestExplainStrongTeam(t *testing.T) {
	e := NewExplainer(DefaultConfig())
	strengths, risks := e.Explain(grouping(1.0, 0.9, 0.8, 0.85), nil)
	assert.Len(t, strengths, 4)
	assert.Empty(t, risks)
}

func TestExplainWeakTeam(t *testing.T) {
	e := NewExplainer(DefaultConfig())
	strengths, risks := e.Explain(grouping(0.3, 0.2, 0.1, 0.4), nil)
	assert.Empty(t, strengths)
	assert.Len(t, risks, 4)
}

func TestExplainMiddlingScoresSayNothing(t *testing.T) {
	e := NewExplainer(DefaultConfig())
	strengths, risks := e.Explain(grouping(0.6, 0.6, 0.6, 0.6), nil)
	assert.Empty(t, strengths)
	assert.Empty(t, risks)
}

func TestExplainCutoffsAreConfigurable(t *testing.T) {
	e := NewExplainer(Config{GoodCutoff: 0.55, PoorCutoff: 0.1})
	strengths, risks := e.Explain(grouping(0.6, 0.6, 0.6, 0.6), nil)
	assert.Len(t, strengths, 4)
	assert.Empty(t, risks)
}

func TestExplainNotesRoleSpread(t *testing.T) {
	e := NewExplainer(DefaultConfig())
	members := map[string]traits.TeamMember{
		"a": {ID: "a", Role: traits.RoleDeveloper},
		"b": {ID: "b", Role: traits.RoleDesigner},
		"c": {ID: "c", Role: traits.RolePM},
	}
	strengths, _ := e.Explain(grouping(0.6, 0.6, 0.6, 0.6, "a", "b", "c"), members)
	require.Len(t, strengths, 1)
	assert.Contains(t, strengths[0], "role coverage")
}

func TestResultNotesSkillGapWarning(t *testing.T) {
	e := NewExplainer(DefaultConfig())
	members := map[string]traits.TeamMember{
		"a": {ID: "a", Skills: []string{"go"}, Availability: 1},
		"b": {ID: "b", Skills: []string{"sql"}, Availability: 1},
	}
	req := traits.ProjectRequirements{RequiredSkills: []string{"go", "sql", "rust", "k8s"}}

	g := grouping(0.5, 0.8, 0.5, 0.5, "a", "b")
	notes, warnings := e.ResultNotes(g, req, members)

	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "k8s, rust")
	assert.NotEmpty(t, notes, "high compatibility still earns a note")
}

func TestResultNotesLowDiversityAndAvailability(t *testing.T) {
	e := NewExplainer(DefaultConfig())
	members := map[string]traits.TeamMember{
		"a": {ID: "a", Skills: []string{"go"}, Availability: 0.3},
		"b": {ID: "b", Skills: []string{"go"}, Availability: 0.4},
	}
	req := traits.ProjectRequirements{RequiredSkills: []string{"go"}}

	g := grouping(1.0, 0.5, 0.1, 0.5, "a", "b")
	notes, warnings := e.ResultNotes(g, req, members)

	assert.Contains(t, notes[0], "every required skill")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "diversity")
	assert.Contains(t, warnings[1], "availability")
}
