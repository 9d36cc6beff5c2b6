package onboardingController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	onboardingValidator "lms/validators/onboarding"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t testing.TB) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.OnboardingSession{},
	))

	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newOnboardingApp(userID uint) *fiber.App {
	stubAuth := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}

	app := fiber.New()
	app.Post("/onboarding/start", stubAuth, StartOnboarding)
	app.Post("/onboarding/:session_id/message", stubAuth, onboardingValidator.SendMessage(), SendMessage)
	return app
}

func postMessage(t *testing.T, app *fiber.App, sessionID uint, message string) (*http.Response, map[string]interface{}) {
	payload, err := json.Marshal(fiber.Map{"message": message})
	require.NoError(t, err)

	url := fmt.Sprintf("/onboarding/%d/message", sessionID)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestOnboardingConversation(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	app := newOnboardingApp(user.ID)

	req := httptest.NewRequest(http.MethodPost, "/onboarding/start", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data := envelope["data"].(map[string]interface{})
	assert.Contains(t, data["reply"], "What would you like to learn")

	sessionID := uint(data["session_id"].(float64))

	answers := []string{"Web Development", "2 weeks", "Videos", "Beginner", "Project"}
	var last map[string]interface{}
	for _, answer := range answers {
		resp, envelope := postMessage(t, app, sessionID, answer)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		last = envelope["data"].(map[string]interface{})
	}

	assert.Equal(t, true, last["done"])

	profile := last["profile"].(map[string]interface{})
	assert.Equal(t, "Web Development", profile["topic"])
	assert.Equal(t, "2 weeks", profile["duration"])
	assert.Equal(t, "Videos", profile["preference"])
	assert.Equal(t, "Beginner", profile["skillLevel"])
	assert.Equal(t, "Project", profile["goal"])

	// The session is complete; further messages conflict
	resp2, _ := postMessage(t, app, sessionID, "one more thing")
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)

	// Collected answers are persisted on the session row
	var session courseModels.OnboardingSession
	require.NoError(t, db.First(&session, sessionID).Error)
	assert.Equal(t, int(StepDone), session.Step)
	assert.Equal(t, "Web Development", session.Topic)
}

func TestOnboardingUnknownSession(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	app := newOnboardingApp(user.ID)
	resp, _ := postMessage(t, app, 42, "Go")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
