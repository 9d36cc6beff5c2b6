package roadmapController

import "errors"

// Persistence failures surfaced verbatim to the caller
var (
	errFailedToCreateCourse     = errors.New("Failed to create course")
	errFailedToCreateMilestones = errors.New("Failed to create milestones")
	errFailedToCreateProgress   = errors.New("Failed to create progress records")
)
