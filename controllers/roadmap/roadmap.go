package roadmapController

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GeneratedRoadmap is the JSON document the generator is expected to return
type GeneratedRoadmap struct {
	CourseName string               `json:"courseName"`
	Duration   string               `json:"duration"`
	Milestones []GeneratedMilestone `json:"milestones"`
}

// GeneratedMilestone is one milestone of a generated roadmap
type GeneratedMilestone struct {
	Title     string          `json:"title"`
	Order     int             `json:"order"`
	Resources json.RawMessage `json:"resources"`
	Quiz      json.RawMessage `json:"quiz"`
}

// GenerateRoadmap builds a personalized course from the onboarding
// answers: asks the generator for a roadmap document, then creates the
// course, its milestones, and the initial progress rows (first active,
// rest locked) in a single transaction
func GenerateRoadmap(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedRoadmap").(*RoadmapRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	log.Printf("Generating roadmap for user %d: topic=%q duration=%q", userID, reqData.Topic, reqData.Duration)

	content, err := utils.GenerateGeminiContent(BuildRoadmapPrompt(*reqData), utils.GeminiGenerationConfig{
		Temperature:     0.7,
		MaxOutputTokens: 2000,
	})
	if err != nil {
		log.Printf("Roadmap generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	cleaned := utils.StripCodeFences(content)

	var roadmap GeneratedRoadmap
	if err := json.Unmarshal([]byte(cleaned), &roadmap); err != nil {
		log.Printf("Failed to parse roadmap JSON: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Invalid JSON response from AI", nil)
	}

	if roadmap.CourseName == "" || len(roadmap.Milestones) == 0 {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Invalid JSON response from AI", nil)
	}

	course, milestones, err := PersistRoadmap(userID, roadmap, []byte(cleaned))
	if err != nil {
		log.Printf("Failed to persist roadmap: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmap generated successfully!", fiber.Map{
		"success":    true,
		"course":     course,
		"milestones": milestones,
	})
}

// PersistRoadmap inserts the course, its milestones, and one progress
// row per milestone. Everything runs in one transaction: a failed step
// never leaves a course without milestones or milestones without
// progress rows.
func PersistRoadmap(userID uint, roadmap GeneratedRoadmap, rawRoadmap []byte) (*courseModels.Course, []courseModels.Milestone, error) {
	db := database.Database.Db

	course := courseModels.Course{
		UserID:      userID,
		Name:        roadmap.CourseName,
		Duration:    roadmap.Duration,
		Status:      courseModels.CourseActive,
		RoadmapJSON: rawRoadmap,
	}

	var milestones []courseModels.Milestone

	tx := db.Begin()
	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()
		return nil, nil, errFailedToCreateCourse
	}

	for i, m := range roadmap.Milestones {
		orderIndex := m.Order
		if orderIndex == 0 {
			orderIndex = i + 1 // generator omitted the order field
		}
		milestones = append(milestones, courseModels.Milestone{
			CourseID:   course.ID,
			Title:      m.Title,
			OrderIndex: orderIndex,
			Resources:  []byte(m.Resources),
			Quiz:       []byte(m.Quiz),
		})
	}

	if err := tx.Create(&milestones).Error; err != nil {
		tx.Rollback()
		return nil, nil, errFailedToCreateMilestones
	}

	progressRecords := make([]courseModels.Progress, len(milestones))
	for i, m := range milestones {
		status := courseModels.ProgressLocked
		if i == 0 {
			status = courseModels.ProgressActive
		}
		progressRecords[i] = courseModels.Progress{
			UserID:      userID,
			CourseID:    course.ID,
			MilestoneID: m.ID,
			Status:      status,
		}
	}

	if err := tx.Create(&progressRecords).Error; err != nil {
		tx.Rollback()
		return nil, nil, errFailedToCreateProgress
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, errFailedToCreateCourse
	}

	return &course, milestones, nil
}
