package utils

import (
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/models"
	courseModels "lms/models/course"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueCertificate creates the certificate for a (user, course) pair, or
// returns the existing one. Issuance is idempotent: the existence check
// is backed by the composite unique index on certificates, so a
// concurrent duplicate insert loses at the database and is returned as
// the already-issued row.
func IssueCertificate(db *gorm.DB, userID uint, courseID uint) (*courseModels.Certificate, bool, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).First(&course).Error; err != nil {
		return nil, false, fmt.Errorf("course not found")
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, false, fmt.Errorf("user profile not found")
	}

	// Return the existing certificate if one was already issued
	var existing courseModels.Certificate
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return &existing, true, nil
	}

	certData := courseModels.CertificateData{
		RecipientName:  user.Name,
		CourseName:     course.Name,
		Duration:       course.Duration,
		CompletionDate: time.Now().UTC().Format("2006-01-02"),
		CertificateID:  uuid.New().String(),
		Issuer:         config.AppConfig.CertIssuer,
	}

	dataJSON, err := json.Marshal(certData)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build certificate data")
	}

	certificate := courseModels.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: certData.CertificateID,
		CertificateData:   dataJSON,
		IssuedAt:          time.Now(),
	}

	if err := db.Create(&certificate).Error; err != nil {
		// Lost a race against a concurrent issuance: the unique index
		// rejected the insert, so hand back the winner's row.
		if isDuplicateErr(err) {
			if err2 := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err2 == nil {
				return &existing, true, nil
			}
		}
		return nil, false, fmt.Errorf("failed to generate certificate")
	}

	return &certificate, false, nil
}

// isDuplicateErr reports whether err is a unique-constraint violation
func isDuplicateErr(err error) bool {
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
