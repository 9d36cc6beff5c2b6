package onboardingValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SendMessage validates the onboarding chat message request
func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionIDStr := strings.TrimSpace(c.Params("session_id"))
		sessionID, err := strconv.Atoi(sessionIDStr)
		if err != nil || sessionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Session ID!", nil)
		}

		reqData := new(struct {
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		message := strings.TrimSpace(reqData.Message)
		if message == "" {
			errors["message"] = "Message is required!"
		} else if len(message) > 500 {
			errors["message"] = "Message must be at most 500 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sessionID", sessionID)
		c.Locals("validatedMessage", message)
		return c.Next()
	}
}
