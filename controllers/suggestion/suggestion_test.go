package suggestionController

import (
	"bytes"
	"encoding/json"
	"lms/config"
	suggestionValidator "lms/validators/suggestion"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestionApp() *fiber.App {
	app := fiber.New()
	app.Post("/course/suggest-next", suggestionValidator.SuggestNextCourse(), SuggestNextCourse)
	return app
}

func stubGemini(t *testing.T, status int, text string) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, text, status)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				}},
			},
		})
	}))
	t.Cleanup(server.Close)

	config.AppConfig = &config.Config{
		GeminiApiKey: "test-key",
		GeminiApiUrl: server.URL,
	}
}

func postSuggestion(t *testing.T, app *fiber.App, body interface{}) (*http.Response, map[string]interface{}) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/course/suggest-next", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestSuggestNextCoursePassesThroughReply(t *testing.T) {
	stubGemini(t, http.StatusOK, `{"currentOpportunities":{"title":"What You Can Do Now","items":["Build a CLI"]}}`)

	app := newSuggestionApp()
	resp, envelope := postSuggestion(t, app, fiber.Map{"completedCourse": "Learn Go"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	suggestions := data["suggestions"].(map[string]interface{})
	opportunities := suggestions["currentOpportunities"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Build a CLI"}, opportunities["items"])
}

func TestSuggestNextCourseFallbackOnBadJSON(t *testing.T) {
	stubGemini(t, http.StatusOK, "I'd recommend learning Kubernetes next!")

	app := newSuggestionApp()
	resp, envelope := postSuggestion(t, app, fiber.Map{"completedCourse": "Learn Go"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Parse failure is absorbed by the static fallback, never surfaced
	data := envelope["data"].(map[string]interface{})
	suggestions := data["suggestions"].(map[string]interface{})

	opportunities := suggestions["currentOpportunities"].(map[string]interface{})
	assert.Equal(t, "What You Can Do Now", opportunities["title"])
	assert.Len(t, opportunities["items"], 3)

	careerPaths := suggestions["careerPaths"].(map[string]interface{})
	assert.Len(t, careerPaths["items"], 3)
}

func TestSuggestNextCourseUpstreamFailure(t *testing.T) {
	stubGemini(t, http.StatusServiceUnavailable, "overloaded")

	app := newSuggestionApp()
	resp, envelope := postSuggestion(t, app, fiber.Map{"completedCourse": "Learn Go"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, envelope["message"], "Gemini API error")
}

func TestSuggestNextCourseValidation(t *testing.T) {
	app := newSuggestionApp()
	resp, _ := postSuggestion(t, app, fiber.Map{"userPreferences": "videos"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
