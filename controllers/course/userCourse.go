package courseController

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetUserCourses lists the current user's courses with a progress
// rollup for the dashboard
func GetUserCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var courses []courseModels.Course
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseWithProgress struct {
		courseModels.Course
		TotalMilestones     int64   `json:"total_milestones"`
		CompletedMilestones int64   `json:"completed_milestones"`
		Progress            float64 `json:"progress"`
	}

	result := make([]CourseWithProgress, len(courses))
	for i, course := range courses {
		var total int64
		var completed int64

		db.Model(&courseModels.Milestone{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&total)
		db.Model(&courseModels.Progress{}).Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
			userID, course.ID, courseModels.ProgressCompleted, false).Count(&completed)

		progress := float64(0)
		if total > 0 {
			progress = float64(completed) / float64(total) * 100
		}

		result[i] = CourseWithProgress{
			Course:              course,
			TotalMilestones:     total,
			CompletedMilestones: completed,
			Progress:            progress,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
		"total":   len(result),
	})
}

// GetCourseDetail returns a course with its ordered milestones joined
// against the user's progress rows. Quiz questions are stripped of the
// correct option index; grading is server-side only.
func GetCourseDetail(c *fiber.Ctx) error {
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

	var course courseModels.Course
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var milestones []courseModels.Milestone
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&milestones).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch milestones!", nil)
	}

	var progressRecords []courseModels.Progress
	db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&progressRecords)

	progressByMilestone := make(map[uint]courseModels.Progress, len(progressRecords))
	for _, p := range progressRecords {
		progressByMilestone[p.MilestoneID] = p
	}

	type QuizQuestionView struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
	}

	type MilestoneWithProgress struct {
		ID         uint                  `json:"id"`
		Title      string                `json:"title"`
		OrderIndex int                   `json:"order_index"`
		Resources  json.RawMessage       `json:"resources"`
		Quiz       []QuizQuestionView    `json:"quiz"`
		Progress   courseModels.Progress `json:"progress"`
	}

	result := make([]MilestoneWithProgress, len(milestones))
	for i, m := range milestones {
		var quiz []courseModels.QuizQuestion
		_ = json.Unmarshal(m.Quiz, &quiz)

		questions := make([]QuizQuestionView, len(quiz))
		for j, q := range quiz {
			questions[j] = QuizQuestionView{Question: q.Question, Options: q.Options}
		}

		result[i] = MilestoneWithProgress{
			ID:         m.ID,
			Title:      m.Title,
			OrderIndex: m.OrderIndex,
			Resources:  json.RawMessage(m.Resources),
			Quiz:       questions,
			Progress:   progressByMilestone[m.ID],
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":     course,
		"milestones": result,
	})
}
