package quizController

import (
	"errors"
	courseModels "lms/models/course"
	"lms/utils"
	"log"
	"time"

	"gorm.io/gorm"
)

// PassThreshold is the minimum score (percent) needed to pass a quiz
const PassThreshold = 75.0

// Progression failures surfaced to the caller
var (
	ErrMilestoneLocked    = errors.New("Milestone is locked!")
	ErrMilestoneCompleted = errors.New("Milestone already completed!")
	ErrProgressNotFound   = errors.New("Progress record not found!")
)

// GradeQuiz scores an answer sheet against a quiz. Answers are compared
// by exact option index; there is no partial credit.
func GradeQuiz(quiz []courseModels.QuizQuestion, answers []int) (correctAnswers int, score float64, passed bool) {
	for i, question := range quiz {
		if i < len(answers) && answers[i] == question.Correct {
			correctAnswers++
		}
	}

	score = float64(correctAnswers) / float64(len(quiz)) * 100
	passed = score >= PassThreshold
	return correctAnswers, score, passed
}

// AdvanceProgress applies a passing submission to the progression state
// machine in one transaction:
//
//  1. the invoking milestone goes active -> completed, stamped with the
//     score and a completion time;
//  2. the successor by order_index, if any, goes locked -> active;
//  3. with no successor the course goes active -> completed and a
//     certificate job is enqueued.
//
// Step 1 is a conditional update: anything but an active milestone
// (already completed, still locked, or a lost race against a concurrent
// submission) matches zero rows and is rejected without side effects.
// Steps 2 and 3 are best effort - their failures are logged, never
// surfaced.
//
// Returns whether the course was completed by this submission.
func AdvanceProgress(db *gorm.DB, userID, courseID, milestoneID uint, score float64) (bool, error) {
	courseCompleted := false

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		result := tx.Model(&courseModels.Progress{}).
			Where("user_id = ? AND course_id = ? AND milestone_id = ? AND status = ? AND is_deleted = ?",
				userID, courseID, milestoneID, courseModels.ProgressActive, false).
			Updates(map[string]interface{}{
				"status":       courseModels.ProgressCompleted,
				"quiz_score":   score,
				"completed_at": now,
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// Not active: report why
			var progress courseModels.Progress
			if err := tx.Where("user_id = ? AND course_id = ? AND milestone_id = ? AND is_deleted = ?",
				userID, courseID, milestoneID, false).First(&progress).Error; err != nil {
				return ErrProgressNotFound
			}
			if progress.Status == courseModels.ProgressCompleted {
				return ErrMilestoneCompleted
			}
			return ErrMilestoneLocked
		}

		// Find the successor milestone by unlock order
		var milestones []courseModels.Milestone
		if err := tx.Where("course_id = ? AND is_deleted = ?", courseID, false).
			Order("order_index asc").Find(&milestones).Error; err != nil {
			return err
		}

		currentIndex := -1
		for i, m := range milestones {
			if m.ID == milestoneID {
				currentIndex = i
				break
			}
		}
		if currentIndex == -1 {
			return ErrProgressNotFound
		}

		if currentIndex+1 < len(milestones) {
			next := milestones[currentIndex+1]
			if err := tx.Model(&courseModels.Progress{}).
				Where("user_id = ? AND course_id = ? AND milestone_id = ? AND status = ? AND is_deleted = ?",
					userID, courseID, next.ID, courseModels.ProgressLocked, false).
				Update("status", courseModels.ProgressActive).Error; err != nil {
				log.Printf("Error activating next milestone %d: %v", next.ID, err)
			}
			return nil
		}

		// Last milestone: complete the course and queue the certificate
		courseCompleted = true
		if err := tx.Model(&courseModels.Course{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).
			Update("status", courseModels.CourseCompleted).Error; err != nil {
			log.Printf("Error marking course %d as completed: %v", courseID, err)
		}

		if err := utils.EnqueueCertificateJob(tx, userID, courseID); err != nil {
			log.Printf("Error enqueueing certificate job for course %d: %v", courseID, err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return courseCompleted, nil
}
