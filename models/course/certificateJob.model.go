package course

import "gorm.io/gorm"

// Certificate job statuses
const (
	JobPending    = "PENDING"
	JobProcessing = "PROCESSING"
	JobDone       = "DONE"
	JobFailed     = "FAILED"
)

// MaxCertJobAttempts is how many times the worker retries a job before
// marking it FAILED.
const MaxCertJobAttempts = 5

// CertificateJob queues certificate issuance triggered by course
// completion, so the quiz response never waits on (or fails with) it.
type CertificateJob struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'PENDING'"` // PENDING, PROCESSING, DONE, FAILED
	Attempts  int    `json:"attempts" gorm:"default:0"`
	LastError string `json:"last_error"`
	IsDeleted bool   `gorm:"default:false"`
}
