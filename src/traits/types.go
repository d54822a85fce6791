package traits

import "time"

// Framework identifies one personality-assessment methodology.
type Framework string

const (
	FrameworkMBTI            Framework = "mbti"
	FrameworkBigFive         Framework = "big_five"
	FrameworkEnneagram       Framework = "enneagram"
	FrameworkPredictiveIndex Framework = "predictive_index"
	FrameworkStrengthsFinder Framework = "strengths_finder"
	FrameworkSocialStyles    Framework = "social_styles"
)

// AllFrameworks lists every supported framework.
var AllFrameworks = []Framework{
	FrameworkMBTI,
	FrameworkBigFive,
	FrameworkEnneagram,
	FrameworkPredictiveIndex,
	FrameworkStrengthsFinder,
	FrameworkSocialStyles,
}

func (f Framework) Valid() bool {
	for _, known := range AllFrameworks {
		if f == known {
			return true
		}
	}
	return false
}

// FrameworkResult is one raw assessment outcome as submitted by the
// assessment-taking flow. The core never mutates it.
type FrameworkResult struct {
	Framework  Framework              `json:"framework"`
	Raw        map[string]interface{} `json:"raw"`
	Confidence float64                `json:"confidence"`
	TakenAt    time.Time              `json:"taken_at,omitempty"`
}

// CanonicalTraitVector is the fixed seven-dimension trait space every
// framework is normalized into. All values live in [0,1].
type CanonicalTraitVector struct {
	Openness            float64 `json:"openness"`
	Conscientiousness   float64 `json:"conscientiousness"`
	Extraversion        float64 `json:"extraversion"`
	Agreeableness       float64 `json:"agreeableness"`
	Neuroticism         float64 `json:"neuroticism"`
	LeadershipPotential float64 `json:"leadership_potential"`
	CollaborationIndex  float64 `json:"collaboration_index"`
}

// Dimensions returns the vector components in canonical order.
func (v CanonicalTraitVector) Dimensions() []float64 {
	return []float64{
		v.Openness,
		v.Conscientiousness,
		v.Extraversion,
		v.Agreeableness,
		v.Neuroticism,
		v.LeadershipPotential,
		v.CollaborationIndex,
	}
}

// Clamped returns a copy with every dimension forced into [0,1].
func (v CanonicalTraitVector) Clamped() CanonicalTraitVector {
	return CanonicalTraitVector{
		Openness:            Clamp01(v.Openness),
		Conscientiousness:   Clamp01(v.Conscientiousness),
		Extraversion:        Clamp01(v.Extraversion),
		Agreeableness:       Clamp01(v.Agreeableness),
		Neuroticism:         Clamp01(v.Neuroticism),
		LeadershipPotential: Clamp01(v.LeadershipPotential),
		CollaborationIndex:  Clamp01(v.CollaborationIndex),
	}
}

// Clamp01 forces x into [0,1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// SynthesizedProfile is the reconciled view of one member across all
// frameworks they have completed. per_framework_weight values sum to 1
// and only name frameworks present in contributing_frameworks.
type SynthesizedProfile struct {
	MemberID               string                `json:"member_id"`
	Vector                 CanonicalTraitVector  `json:"vector"`
	Confidence             float64               `json:"confidence"`
	ContributingFrameworks []Framework           `json:"contributing_frameworks"`
	PerFrameworkWeight     map[Framework]float64 `json:"per_framework_weight"`
}

// Role is a member's primary project role.
type Role string

const (
	RoleDeveloper     Role = "developer"
	RoleDesigner      Role = "designer"
	RolePM            Role = "pm"
	RoleQA            Role = "qa"
	RoleDevOps        Role = "devops"
	RoleDataScientist Role = "data_scientist"
	RoleArchitect     Role = "architect"
	RoleScrumMaster   Role = "scrum_master"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDeveloper, RoleDesigner, RolePM, RoleQA,
		RoleDevOps, RoleDataScientist, RoleArchitect, RoleScrumMaster:
		return true
	}
	return false
}

// TeamMember is one candidate supplied by the caller per optimization
// request. Never mutated by the core.
type TeamMember struct {
	ID              string             `json:"id"`
	Name            string             `json:"name,omitempty"`
	Role            Role               `json:"role"`
	Profile         SynthesizedProfile `json:"profile"`
	Skills          []string           `json:"skills"`
	ExperienceYears float64            `json:"experience_years"`
	Availability    float64            `json:"availability"`
}

// Complexity grades project difficulty.
type Complexity string

const (
	ComplexityLow      Complexity = "low"
	ComplexityMedium   Complexity = "medium"
	ComplexityHigh     Complexity = "high"
	ComplexityCritical Complexity = "critical"
)

// ProjectRequirements describe the project a team is assembled for.
type ProjectRequirements struct {
	ProjectType    string     `json:"project_type"`
	DurationWeeks  int        `json:"duration_weeks"`
	Complexity     Complexity `json:"complexity"`
	RequiredSkills []string   `json:"required_skills"`
	TeamSizeMin    int        `json:"team_size_min"`
	TeamSizeMax    int        `json:"team_size_max"`
	RemoteFriendly bool       `json:"remote_friendly"`
}

// Goal is the caller's primary optimization intent.
type Goal string

const (
	GoalMaximizePerformance   Goal = "maximize_performance"
	GoalMinimizeConflicts     Goal = "minimize_conflicts"
	GoalBalanceDiversity      Goal = "balance_diversity"
	GoalOptimizeCollaboration Goal = "optimize_collaboration"
)

// Objective feature names understood by the optimizer.
const (
	FeatureSkillMatch    = "skill_match"
	FeatureCompatibility = "compatibility"
	FeatureDiversity     = "diversity"
	FeatureVelocity      = "velocity"
)

// OptimizationObjective weights the grouping sub-scores. Weights must be
// non-negative and sum to 1; a nil/empty map falls back to the preset
// for PrimaryGoal.
type OptimizationObjective struct {
	PrimaryGoal Goal               `json:"primary_goal"`
	Weights     map[string]float64 `json:"weights,omitempty"`
}

// DefaultWeights returns the preset mix for a primary goal.
func DefaultWeights(goal Goal) map[string]float64 {
	switch goal {
	case GoalMinimizeConflicts:
		return map[string]float64{
			FeatureSkillMatch:    0.20,
			FeatureCompatibility: 0.50,
			FeatureDiversity:     0.10,
			FeatureVelocity:      0.20,
		}
	case GoalBalanceDiversity:
		return map[string]float64{
			FeatureSkillMatch:    0.25,
			FeatureCompatibility: 0.20,
			FeatureDiversity:     0.40,
			FeatureVelocity:      0.15,
		}
	case GoalOptimizeCollaboration:
		return map[string]float64{
			FeatureSkillMatch:    0.20,
			FeatureCompatibility: 0.40,
			FeatureDiversity:     0.15,
			FeatureVelocity:      0.25,
		}
	default: // maximize_performance
		return map[string]float64{
			FeatureSkillMatch:    0.35,
			FeatureCompatibility: 0.25,
			FeatureDiversity:     0.10,
			FeatureVelocity:      0.30,
		}
	}
}

// TeamGrouping is one candidate subset of the pool with its scores.
// Ephemeral: generated and ranked per optimization call.
type TeamGrouping struct {
	MemberIDs          []string `json:"member_ids"`
	OverallScore       float64  `json:"overall_score"`
	CompatibilityScore float64  `json:"compatibility_score"`
	SkillCoverage      float64  `json:"skill_coverage"`
	DiversityScore     float64  `json:"diversity_score"`
	EstimatedVelocity  float64  `json:"estimated_velocity"`
	Strengths          []string `json:"strengths"`
	Risks              []string `json:"risks"`
}

// OptimizationMetrics report how the search ran.
type OptimizationMetrics struct {
	CandidatesEvaluated int     `json:"candidates_evaluated"`
	ElapsedTime         float64 `json:"elapsed_time"` // seconds
	ConfidenceScore     float64 `json:"confidence_score"`
	AlgorithmUsed       string  `json:"algorithm_used"`
	Iterations          int     `json:"iterations"`
}

// OptimizationResult is the ranked outcome of one optimize call.
type OptimizationResult struct {
	RecommendedTeams []TeamGrouping      `json:"recommended_teams"`
	OverallScore     float64             `json:"overall_score"`
	Metrics          OptimizationMetrics `json:"metrics"`
	Insights         []string            `json:"insights"`
	Warnings         []string            `json:"warnings"`
}
