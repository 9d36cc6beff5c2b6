package quizController

import (
	"bytes"
	"encoding/json"
	"fmt"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newQuizApp wires the submit route the way the router does, with the
// JWT middleware replaced by a stub that injects the user id
func newQuizApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/course/:course_id/milestone/:milestone_id/quiz/submit",
		func(c *fiber.Ctx) error {
			c.Locals("userId", userID)
			return c.Next()
		},
		courseValidator.SubmitQuiz(),
		SubmitQuiz,
	)
	return app
}

func submitQuiz(t *testing.T, app *fiber.App, courseID, milestoneID uint, body interface{}) (*http.Response, map[string]interface{}) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	url := fmt.Sprintf("/course/%d/milestone/%d/quiz/submit", courseID, milestoneID)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestSubmitQuizPassResponse(t *testing.T) {
	db := setupTestDB(t)
	user, course, milestones := seedCourse(t, db, 2)
	app := newQuizApp(user.ID)

	resp, envelope := submitQuiz(t, app, course.ID, milestones[0].ID, fiber.Map{"answers": []int{1, 2, 0}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["passed"])
	assert.Equal(t, 100.0, data["score"])
	assert.Equal(t, 3.0, data["correctAnswers"])
	assert.Equal(t, 3.0, data["totalQuestions"])
	assert.Equal(t, false, data["courseCompleted"])
}

func TestSubmitQuizFailMutatesNothing(t *testing.T) {
	db := setupTestDB(t)
	user, course, milestones := seedCourse(t, db, 2)
	app := newQuizApp(user.ID)

	resp, envelope := submitQuiz(t, app, course.ID, milestones[0].ID, fiber.Map{"answers": []int{1, 0, 1}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, false, data["passed"])
	assert.InDelta(t, 33.3, data["score"].(float64), 0.1)
	assert.Equal(t, false, data["courseCompleted"])

	var first courseModels.Progress
	require.NoError(t, db.Where("milestone_id = ?", milestones[0].ID).First(&first).Error)
	assert.Equal(t, courseModels.ProgressActive, first.Status)
	assert.Nil(t, first.QuizScore)
}

func TestSubmitQuizLastMilestoneCompletesCourse(t *testing.T) {
	db := setupTestDB(t)
	user, course, milestones := seedCourse(t, db, 1)
	app := newQuizApp(user.ID)

	resp, envelope := submitQuiz(t, app, course.ID, milestones[0].ID, fiber.Map{"answers": []int{1, 2, 0}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["passed"])
	assert.Equal(t, true, data["courseCompleted"])

	var gotCourse courseModels.Course
	require.NoError(t, db.First(&gotCourse, course.ID).Error)
	assert.Equal(t, courseModels.CourseCompleted, gotCourse.Status)
}

func TestSubmitQuizRejectsIncompleteAnswers(t *testing.T) {
	db := setupTestDB(t)
	user, course, milestones := seedCourse(t, db, 1)
	app := newQuizApp(user.ID)

	// -1 means unanswered and is rejected before grading
	resp, _ := submitQuiz(t, app, course.ID, milestones[0].ID, fiber.Map{"answers": []int{1, -1, 0}})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Short answer sheets are rejected too
	resp, _ = submitQuiz(t, app, course.ID, milestones[0].ID, fiber.Map{"answers": []int{1, 2}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// No progress mutation either way
	var first courseModels.Progress
	require.NoError(t, db.Where("milestone_id = ?", milestones[0].ID).First(&first).Error)
	assert.Equal(t, courseModels.ProgressActive, first.Status)
}

func TestSubmitQuizResubmissionConflict(t *testing.T) {
	db := setupTestDB(t)
	user, course, milestones := seedCourse(t, db, 2)
	app := newQuizApp(user.ID)

	resp, _ := submitQuiz(t, app, course.ID, milestones[0].ID, fiber.Map{"answers": []int{1, 2, 0}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = submitQuiz(t, app, course.ID, milestones[0].ID, fiber.Map{"answers": []int{1, 2, 0}})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitQuizUnknownMilestone(t *testing.T) {
	db := setupTestDB(t)
	user, course, _ := seedCourse(t, db, 1)
	app := newQuizApp(user.ID)

	resp, _ := submitQuiz(t, app, course.ID, 9999, fiber.Map{"answers": []int{1, 2, 0}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
