package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course statuses. A course is created active and flips to completed
// exactly once, when its last milestone is passed.
const (
	CourseActive    = "active"
	CourseCompleted = "completed"
)

// Course represents a generated learning roadmap owned by a single user
type Course struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Name        string         `json:"name"`
	Duration    string         `json:"duration"`                         // duration label, e.g. "2 weeks"
	Status      string         `json:"status" gorm:"default:'active'"`   // active, completed
	RoadmapJSON datatypes.JSON `json:"roadmap_json"`                     // raw generator output, kept for display/audit
	IsDeleted   bool           `gorm:"default:false"`
}
