package onboardingRoutes

import (
	onboardingController "lms/controllers/onboarding"
	"lms/middleware"
	onboardingValidator "lms/validators/onboarding"

	"github.com/gofiber/fiber/v2"
)

// SetupOnboardingRoutes sets up the onboarding chat wizard routes
func SetupOnboardingRoutes(app *fiber.App) {
	onboardingGroup := app.Group("/onboarding")

	onboardingGroup.Post("/start", middleware.JWTMiddleware, onboardingController.StartOnboarding)
	onboardingGroup.Post("/:session_id/message", middleware.JWTMiddleware, onboardingValidator.SendMessage(), onboardingController.SendMessage)
}
