package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Milestone is one step of a course roadmap. OrderIndex is 1-based and
// defines the unlock order. Rows are immutable after generation.
type Milestone struct {
	gorm.Model
	CourseID   uint           `json:"course_id" gorm:"index;not null"`
	Title      string         `json:"title"`
	OrderIndex int            `json:"order_index" gorm:"default:0"`
	Resources  datatypes.JSON `json:"resources"` // links/videos/articles bundle
	Quiz       datatypes.JSON `json:"quiz"`      // array of QuizQuestion
	IsDeleted  bool           `gorm:"default:false"`
}

// QuizQuestion is the decoded form of one entry of Milestone.Quiz.
// Correct is the zero-based index into Options.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}
