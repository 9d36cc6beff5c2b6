package suggestionValidator

import (
	suggestionController "lms/controllers/suggestion"
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SuggestNextCourse validates the suggestion request body
func SuggestNextCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(suggestionController.SuggestionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CompletedCourse) == "" {
			errors["completedCourse"] = "Completed course name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSuggestion", reqData)
		return c.Next()
	}
}
