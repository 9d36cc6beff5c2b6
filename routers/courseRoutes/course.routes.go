package courseRoutes

import (
	certificateController "lms/controllers/certificate"
	courseController "lms/controllers/course"
	quizController "lms/controllers/quiz"
	roadmapController "lms/controllers/roadmap"
	suggestionController "lms/controllers/suggestion"
	"lms/middleware"
	validators "lms/validators/course"
	suggestionValidator "lms/validators/suggestion"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course, roadmap, and certificate routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Roadmap generation (creates course + milestones + progress)
	courseGroup.Post("/generate", middleware.JWTMiddleware, validators.GenerateRoadmap(), roadmapController.GenerateRoadmap)

	// Dashboard and course view
	courseGroup.Get("/list", middleware.JWTMiddleware, courseController.GetUserCourses)
	courseGroup.Get("/:course_id", middleware.JWTMiddleware, validators.GetCourseDetail(), courseController.GetCourseDetail)

	// Quiz submission and progression
	courseGroup.Post("/:course_id/milestone/:milestone_id/quiz/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), quizController.SubmitQuiz)

	// Certificate issuance
	courseGroup.Post("/:course_id/certificate", middleware.JWTMiddleware, validators.GenerateCertificate(), certificateController.GenerateCertificate)

	// Next-course suggestions
	courseGroup.Post("/suggest-next", middleware.JWTMiddleware, suggestionValidator.SuggestNextCourse(), suggestionController.SuggestNextCourse)

	// User certificates
	userGroup := app.Group("/user")
	userGroup.Get("/certificates", middleware.JWTMiddleware, certificateController.GetUserCertificates)
}
