package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Certificate is an issued course-completion certificate. The composite
// unique index on (user_id, course_id) makes double issuance lose at
// the database rather than at an application check.
type Certificate struct {
	gorm.Model
	UserID            uint           `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course_cert"`
	CourseID          uint           `json:"course_id" gorm:"index;not null;uniqueIndex:idx_user_course_cert"`
	CertificateNumber string         `json:"certificate_number" gorm:"unique"`
	CertificateData   datatypes.JSON `json:"certificate_data"`
	IssuedAt          time.Time      `json:"issued_at"`
	IsDeleted         bool           `gorm:"default:false"`
}

// CertificateData is the document stored in Certificate.CertificateData
type CertificateData struct {
	RecipientName  string `json:"recipientName"`
	CourseName     string `json:"courseName"`
	Duration       string `json:"duration"`
	CompletionDate string `json:"completionDate"` // ISO date, YYYY-MM-DD
	CertificateID  string `json:"certificateId"`
	Issuer         string `json:"issuer"`
}
