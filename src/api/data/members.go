package data

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/strata-hq/teamforge/src/api/types"
	"github.com/strata-hq/teamforge/src/synthesis"
	"github.com/strata-hq/teamforge/src/traits"
)

// LoadAssessments returns a member's stored framework results, newest
// first per framework (only the latest row per framework is kept).
func LoadAssessments(db *gorm.DB, memberID string) ([]traits.FrameworkResult, error) {
	var rows []types.AssessmentResult
	if err := db.Where("member_id = ?", memberID).Order("taken_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var results []traits.FrameworkResult
	for _, row := range rows {
		if seen[row.Framework] {
			continue
		}
		seen[row.Framework] = true

		raw := map[string]interface{}{}
		if err := json.Unmarshal([]byte(row.Raw), &raw); err != nil {
			return nil, fmt.Errorf("assessment %d: %w", row.ID, err)
		}
		results = append(results, traits.FrameworkResult{
			Framework:  traits.Framework(row.Framework),
			Raw:        raw,
			Confidence: row.Confidence,
			TakenAt:    row.TakenAt,
		})
	}
	return results, nil
}

// LoadMembers assembles TeamMember records for an optimization pool:
// member rows, their skills, and a synthesized profile built from their
// stored assessments.
func LoadMembers(db *gorm.DB, ids []string) ([]traits.TeamMember, error) {
	var rows []types.Member
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) != len(ids) {
		return nil, fmt.Errorf("%w: %d of %d requested members exist", traits.ErrInsufficientCandidates, len(rows), len(ids))
	}

	var skillRows []types.MemberSkill
	if err := db.Where("member_id IN ?", ids).Find(&skillRows).Error; err != nil {
		return nil, err
	}
	skills := map[string][]string{}
	for _, s := range skillRows {
		skills[s.MemberID] = append(skills[s.MemberID], s.Skill)
	}

	members := make([]traits.TeamMember, 0, len(rows))
	for _, row := range rows {
		results, err := LoadAssessments(db, row.ID)
		if err != nil {
			return nil, err
		}
		profile, err := synthesis.NormalizeAndSynthesize(row.ID, results)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", row.ID, err)
		}
		members = append(members, traits.TeamMember{
			ID:              row.ID,
			Name:            row.Name,
			Role:            traits.Role(row.Role),
			Profile:         profile,
			Skills:          skills[row.ID],
			ExperienceYears: row.ExperienceYears,
			Availability:    row.Availability,
		})
	}
	return members, nil
}
