package types

import "time"

// Members of the organization; the candidate pool for optimizations.
type Member struct {
	ID              string `gorm:"primaryKey;size:64"`
	Name            string `gorm:"size:128;not null"`
	Role            string `gorm:"size:32;not null"`
	ExperienceYears float64
	Availability    float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Skills claimed per member.
type MemberSkill struct {
	MemberID string `gorm:"primaryKey;size:64;index"`
	Skill    string `gorm:"primaryKey;size:64"`
}

// Raw assessment submissions, one row per member per framework per
// taking. Raw holds the framework's native fields as JSON.
type AssessmentResult struct {
	ID         uint64 `gorm:"primaryKey"`
	MemberID   string `gorm:"size:64;index;not null"`
	Framework  string `gorm:"size:32;not null"`
	Raw        string `gorm:"type:text;not null"`
	Confidence float64
	TakenAt    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Settings
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null"`
	Value string `gorm:"size:256;not null"`
}

// Optimization run audit trail (results themselves stay ephemeral).
type OptimizationRun struct {
	ID           string `gorm:"primaryKey;size:36"`
	ProjectType  string `gorm:"size:64"`
	PoolSize     int
	TeamSizeMin  int
	TeamSizeMax  int
	Algorithm    string `gorm:"size:32"`
	OverallScore float64
	CreatedAt    time.Time
}
