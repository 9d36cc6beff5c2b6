package utils

import (
	"encoding/json"
	"lms/config"
	"lms/models"
	courseModels "lms/models/course"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t testing.TB) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Certificate{},
		&courseModels.CertificateJob{},
	))

	config.AppConfig = &config.Config{CertIssuer: "AI Learning Platform"}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedCompletedCourse(t testing.TB, db *gorm.DB) (models.User, courseModels.Course) {
	user := models.User{Name: "Asha Rao", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{
		UserID:   user.ID,
		Name:     "Learn Go",
		Duration: "2 weeks",
		Status:   courseModels.CourseCompleted,
	}
	require.NoError(t, db.Create(&course).Error)

	return user, course
}

func TestIssueCertificateData(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedCompletedCourse(t, db)

	certificate, alreadyIssued, err := IssueCertificate(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, alreadyIssued)

	var data courseModels.CertificateData
	require.NoError(t, json.Unmarshal(certificate.CertificateData, &data))

	assert.Equal(t, "Asha Rao", data.RecipientName)
	assert.Equal(t, "Learn Go", data.CourseName)
	assert.Equal(t, "2 weeks", data.Duration)
	assert.Equal(t, "AI Learning Platform", data.Issuer)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), data.CompletionDate)

	_, err = uuid.Parse(data.CertificateID)
	assert.NoError(t, err)
	assert.Equal(t, data.CertificateID, certificate.CertificateNumber)
}

func TestIssueCertificateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedCompletedCourse(t, db)

	first, alreadyIssued, err := IssueCertificate(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, alreadyIssued)

	second, alreadyIssued, err := IssueCertificate(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, alreadyIssued)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)

	var count int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestIssueCertificateMissingCourse(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedCompletedCourse(t, db)

	_, _, err := IssueCertificate(db, user.ID, 9999)
	assert.EqualError(t, err, "course not found")
}

func TestIssueCertificateWrongUser(t *testing.T) {
	db := setupTestDB(t)
	_, course := seedCompletedCourse(t, db)

	other := models.User{Name: "Ben", Email: "ben@example.com", Password: "x"}
	require.NoError(t, db.Create(&other).Error)

	// Courses are per user; another user's id does not match the course owner
	_, _, err := IssueCertificate(db, other.ID, course.ID)
	assert.EqualError(t, err, "course not found")
}

func TestCertificateJobRetriesThenFails(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedCompletedCourse(t, db)

	// Job pointing at a missing course keeps failing
	require.NoError(t, EnqueueCertificateJob(db, user.ID, 9999))

	for i := 0; i < courseModels.MaxCertJobAttempts; i++ {
		ProcessCertificateJobs(db)
	}

	var job courseModels.CertificateJob
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&job).Error)
	assert.Equal(t, courseModels.JobFailed, job.Status)
	assert.Equal(t, courseModels.MaxCertJobAttempts, job.Attempts)
	assert.Equal(t, "course not found", job.LastError)
}

func TestEnqueueCertificateJobDeduplicates(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedCompletedCourse(t, db)

	require.NoError(t, EnqueueCertificateJob(db, user.ID, course.ID))
	require.NoError(t, EnqueueCertificateJob(db, user.ID, course.ID))

	var count int64
	db.Model(&courseModels.CertificateJob{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
