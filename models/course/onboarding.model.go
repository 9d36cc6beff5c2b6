package course

import "gorm.io/gorm"

// OnboardingSession holds one user's progress through the chat wizard
// that collects the roadmap parameters. Step values live in the
// onboarding controller package.
type OnboardingSession struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Step       int    `json:"step" gorm:"default:0"`
	Topic      string `json:"topic"`
	Duration   string `json:"duration"`
	Preference string `json:"preference"`
	SkillLevel string `json:"skill_level"`
	Goal       string `json:"goal"`
	IsDeleted  bool   `gorm:"default:false"`
}
