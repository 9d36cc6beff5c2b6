package onboardingController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// StartOnboarding opens a fresh wizard session and returns the greeting
func StartOnboarding(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	session := courseModels.OnboardingSession{
		UserID: userID,
		Step:   int(StepTopic),
	}

	if err := db.Create(&session).Error; err != nil {
		log.Printf("Error creating onboarding session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start onboarding!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Onboarding started!", fiber.Map{
		"session_id": session.ID,
		"reply":      Greeting,
	})
}

// SendMessage advances a session one step with the user's answer. Once
// the last step is answered the reply carries the collected profile,
// ready to post to the roadmap generator.
func SendMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	sessionID := c.Locals("sessionID").(int)
	message := c.Locals("validatedMessage").(string)

	var session courseModels.OnboardingSession
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", sessionID, userID, false).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Onboarding session not found!", nil)
	}

	step := Step(session.Step)

	transition, err := Advance(step, message)
	if err != nil {
		if err == ErrSessionComplete {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	// Record the answer against the field this step asked about
	switch step {
	case StepTopic:
		session.Topic = message
	case StepDuration:
		session.Duration = message
	case StepPreference:
		session.Preference = message
	case StepSkillLevel:
		session.SkillLevel = message
	case StepGoal:
		session.Goal = message
	}
	session.Step = int(transition.Next)

	if err := db.Save(&session).Error; err != nil {
		log.Printf("Error saving onboarding session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save your answer!", nil)
	}

	data := fiber.Map{
		"reply":   transition.Reply,
		"options": transition.Options,
		"done":    transition.Next == StepDone,
	}

	if transition.Next == StepDone {
		data["profile"] = fiber.Map{
			"topic":      session.Topic,
			"duration":   session.Duration,
			"preference": session.Preference,
			"skillLevel": session.SkillLevel,
			"goal":       session.Goal,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message received!", data)
}
