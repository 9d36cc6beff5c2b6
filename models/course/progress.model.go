package course

import (
	"time"

	"gorm.io/gorm"
)

// Progress statuses. For one course the completed milestones always
// form a prefix of the order_index ordering, with at most one active
// milestone directly after it.
const (
	ProgressLocked    = "locked"
	ProgressActive    = "active"
	ProgressCompleted = "completed"
)

// Progress tracks a user's state on a single milestone
type Progress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_milestone"`
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	MilestoneID uint       `json:"milestone_id" gorm:"index;not null;uniqueIndex:idx_user_milestone"`
	Status      string     `json:"status" gorm:"default:'locked'"` // locked, active, completed
	QuizScore   *float64   `json:"quiz_score"`                     // 0-100, set on completion
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
