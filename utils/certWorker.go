package utils

import (
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logCertWorker logs certificate worker events with timestamp
func logCertWorker(message string) {
	log.Printf("[CERT-WORKER %s] %s", time.Now().Format(time.RFC3339), message)
}

// EnqueueCertificateJob records that a certificate should be issued for
// a completed course. Safe to call from inside a transaction; the
// worker picks the job up on its next sweep.
func EnqueueCertificateJob(db *gorm.DB, userID uint, courseID uint) error {
	// One pending job per pair is enough
	var existing courseModels.CertificateJob
	if err := db.Where("user_id = ? AND course_id = ? AND status IN ? AND is_deleted = ?",
		userID, courseID, []string{courseModels.JobPending, courseModels.JobProcessing}, false).
		First(&existing).Error; err == nil {
		return nil
	}

	job := courseModels.CertificateJob{
		UserID:   userID,
		CourseID: courseID,
		Status:   courseModels.JobPending,
	}
	return db.Create(&job).Error
}

// ProcessCertificateJobs issues certificates for all pending jobs.
// Failures keep the job pending until the attempt cap, then mark it
// FAILED; the synchronous certificate endpoint stays available either way.
func ProcessCertificateJobs(db *gorm.DB) {
	var jobs []courseModels.CertificateJob
	if err := db.Where("status = ? AND is_deleted = ?", courseModels.JobPending, false).Find(&jobs).Error; err != nil {
		logCertWorker("Error fetching pending jobs: " + err.Error())
		return
	}

	for _, job := range jobs {
		job.Status = courseModels.JobProcessing
		job.Attempts++
		db.Save(&job)

		certificate, alreadyIssued, err := IssueCertificate(db, job.UserID, job.CourseID)
		if err != nil {
			job.LastError = err.Error()
			if job.Attempts >= courseModels.MaxCertJobAttempts {
				job.Status = courseModels.JobFailed
				logCertWorker("Job gave up after max attempts: " + err.Error())
			} else {
				job.Status = courseModels.JobPending
				logCertWorker("Job failed, will retry: " + err.Error())
			}
			db.Save(&job)
			continue
		}

		job.Status = courseModels.JobDone
		job.LastError = ""
		db.Save(&job)

		if alreadyIssued {
			continue
		}

		// Completion email is best effort
		var user models.User
		var course courseModels.Course
		if db.First(&user, job.UserID).Error == nil && db.First(&course, job.CourseID).Error == nil {
			if err := SendCertificateEmail(user.Name, user.Email, course.Name, certificate.CertificateNumber); err != nil {
				logCertWorker("Certificate email failed: " + err.Error())
			}
		}
	}
}

// StartCertificateWorker schedules the certificate job sweep
func StartCertificateWorker() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 1m", func() {
		ProcessCertificateJobs(database.Database.Db)
	})
	if err != nil {
		log.Fatalf("Failed to schedule certificate worker: %v", err)
	}

	c.Start()
	logCertWorker("Certificate worker started")
	return c
}
