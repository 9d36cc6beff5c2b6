package suggestionController

import (
	"encoding/json"
	"fmt"
	"lms/middleware"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SuggestionRequest names the course the suggestions follow from
type SuggestionRequest struct {
	CompletedCourse string `json:"completedCourse"`
	UserPreferences string `json:"userPreferences"`
}

// buildSuggestionPrompt asks for a strict-JSON "what's next" document
func buildSuggestionPrompt(completedCourse string) string {
	return fmt.Sprintf(`Based on the completed course "%s", provide structured suggestions in the following JSON format:

{
  "currentOpportunities": {
    "title": "What You Can Do Now",
    "items": ["Career opportunity 1", "Project idea 1", "Skill application 1"]
  },
  "nextSteps": {
    "title": "Recommended Next Steps",
    "items": [
      {
        "name": "Course/Skill Name",
        "description": "Why this is impactful",
        "impact": "Career impact description"
      }
    ]
  },
  "careerPaths": {
    "title": "Career Opportunities",
    "items": ["Career path 1", "Career path 2", "Career path 3"]
  }
}

Provide exactly 3 items for currentOpportunities and careerPaths, and 2-3 items for nextSteps.
Make suggestions specific, actionable, and motivational. Return ONLY valid JSON.`, completedCourse)
}

// fallbackSuggestions is returned when the model reply fails to parse.
// Availability wins over fidelity here: the completion page always gets
// something to show.
func fallbackSuggestions() map[string]interface{} {
	return map[string]interface{}{
		"currentOpportunities": map[string]interface{}{
			"title": "What You Can Do Now",
			"items": []string{
				"Apply your new skills in real projects",
				"Build a portfolio showcasing your knowledge",
				"Network with professionals in your field",
			},
		},
		"nextSteps": map[string]interface{}{
			"title": "Recommended Next Steps",
			"items": []map[string]string{
				{
					"name":        "Advanced Topics",
					"description": "Deepen your expertise with advanced concepts",
					"impact":      "Stand out as an expert in your field",
				},
			},
		},
		"careerPaths": map[string]interface{}{
			"title": "Career Opportunities",
			"items": []string{
				"Freelance opportunities",
				"Full-time positions",
				"Consulting roles",
			},
		},
	}
}

// SuggestNextCourse asks the generator what to learn after a completed
// course. Upstream failures are fatal; an unparseable reply degrades to
// the static fallback document instead.
func SuggestNextCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSuggestion").(*SuggestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	log.Printf("Suggesting next course after %q", reqData.CompletedCourse)

	content, err := utils.GenerateGeminiContent(buildSuggestionPrompt(reqData.CompletedCourse), utils.GeminiGenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	})
	if err != nil {
		log.Printf("Suggestion generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	var suggestions map[string]interface{}
	if err := json.Unmarshal([]byte(utils.StripCodeFences(content)), &suggestions); err != nil {
		log.Printf("Failed to parse suggestions JSON, using fallback: %v", err)
		suggestions = fallbackSuggestions()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Suggestions generated!", fiber.Map{
		"success":     true,
		"suggestions": suggestions,
	})
}
