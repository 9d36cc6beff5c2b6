package courseValidator

import (
	roadmapController "lms/controllers/roadmap"
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// validCourseID parses and validates a course id route param
func validCourseID(c *fiber.Ctx, param string) (int, bool) {
	courseIDStr := strings.TrimSpace(c.Params(param))
	if courseIDStr == "" {
		return 0, false
	}

	courseID, err := strconv.Atoi(courseIDStr)
	if err != nil || courseID <= 0 {
		return 0, false
	}
	return courseID, true
}

// GenerateRoadmap validates the roadmap generation request body
func GenerateRoadmap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(roadmapController.RoadmapRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Topic
		if strings.TrimSpace(reqData.Topic) == "" {
			errors["topic"] = "Topic is required!"
		} else if len(strings.TrimSpace(reqData.Topic)) < 2 {
			errors["topic"] = "Topic must be at least 2 characters long!"
		}

		// Validate Duration
		if strings.TrimSpace(reqData.Duration) == "" {
			errors["duration"] = "Duration is required!"
		}

		// Validate Goal
		if strings.TrimSpace(reqData.Goal) == "" {
			errors["goal"] = "Goal is required!"
		}

		// Validate SkillLevel
		if strings.TrimSpace(reqData.SkillLevel) == "" {
			errors["skillLevel"] = "Skill level is required!"
		}

		// Validate Preference
		if strings.TrimSpace(reqData.Preference) == "" {
			errors["preference"] = "Preference is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoadmap", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates the quiz submission route params and body.
// Incomplete answer sheets (missing or -1 entries) are rejected here,
// before any grading or state change.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := validCourseID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		milestoneIDStr := strings.TrimSpace(c.Params("milestone_id"))
		milestoneID, err := strconv.Atoi(milestoneIDStr)
		if err != nil || milestoneID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Milestone ID!", nil)
		}

		reqData := new(struct {
			Answers []int `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Answers) == 0 {
			errors["answers"] = "Answers are required!"
		}
		for _, answer := range reqData.Answers {
			if answer < 0 {
				errors["answers"] = "Please answer all questions before submitting!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("milestoneID", milestoneID)
		c.Locals("validatedAnswers", reqData.Answers)
		return c.Next()
	}
}

// GetCourseDetail validates the course detail route param
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := validCourseID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// GenerateCertificate validates the certificate route param
func GenerateCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := validCourseID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
