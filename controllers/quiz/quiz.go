package quizController

import (
	"encoding/json"
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz grades a milestone quiz submission and, on a pass,
// advances the progression state machine. A failed submission changes
// nothing and can be retried indefinitely.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	milestoneID := c.Locals("milestoneID").(int)
	answers := c.Locals("validatedAnswers").([]int)

	// Milestone must belong to the course
	var milestone courseModels.Milestone
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", milestoneID, courseID, false).First(&milestone).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Milestone not found!", nil)
	}

	var quiz []courseModels.QuizQuestion
	if err := json.Unmarshal(milestone.Quiz, &quiz); err != nil || len(quiz) == 0 {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Milestone quiz not found!", nil)
	}

	// Every question needs an answer; reject before grading
	if len(answers) != len(quiz) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer all questions before submitting!", nil)
	}

	correctAnswers, score, passed := GradeQuiz(quiz, answers)
	courseCompleted := false

	if passed {
		var err error
		courseCompleted, err = AdvanceProgress(db, userID, uint(courseID), uint(milestoneID), score)
		if err != nil {
			if errors.Is(err, ErrMilestoneCompleted) || errors.Is(err, ErrMilestoneLocked) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
			}
			log.Printf("Error advancing progress: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	} else {
		log.Printf("Quiz failed for milestone %d with score %.1f", milestoneID, score)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"success":         true,
		"passed":          passed,
		"score":           score,
		"correctAnswers":  correctAnswers,
		"totalQuestions":  len(quiz),
		"courseCompleted": passed && courseCompleted,
	})
}
