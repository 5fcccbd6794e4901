package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fittrack/gym-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdviceTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewAdviceHandler(service.NewAdviceService())
	router.POST("/advice/injury", handler.InjuryAdvice)
	router.POST("/advice/workout", handler.WorkoutPlan)
	router.POST("/advice/diet", handler.DietPlan)
	router.POST("/chatbot", handler.Chat)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInjuryEndpoint(t *testing.T) {
	router := newAdviceTestRouter()

	rec := postJSON(t, router, "/advice/injury", `{"text":"my knee hurts"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		BodyPart string `json:"bodyPart"`
		Group    string `json:"group"`
		Plan     struct {
			Avoid     []string `json:"avoid"`
			Replace   []string `json:"replace"`
			Warmup    []string `json:"warmup"`
			Intensity string   `json:"intensity"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "knee", resp.BodyPart)
	assert.Equal(t, "lower_limb", resp.Group)
	assert.NotEmpty(t, resp.Plan.Avoid)
	assert.NotEmpty(t, resp.Plan.Intensity)
}

func TestInjuryEndpoint_Invalid(t *testing.T) {
	router := newAdviceTestRouter()

	rec := postJSON(t, router, "/advice/injury", `{"text":"xyz123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valid human body part")

	rec = postJSON(t, router, "/advice/injury", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkoutEndpoint(t *testing.T) {
	router := newAdviceTestRouter()

	rec := postJSON(t, router, "/advice/workout", `{"goal":"Muscle Gain","level":"Intermediate","days":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var plan map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.Len(t, plan, 5)
	for day, exercises := range plan {
		assert.NotEmptyf(t, exercises, "day %s has no exercises", day)
	}
}

func TestWorkoutEndpoint_InvalidDays(t *testing.T) {
	router := newAdviceTestRouter()

	rec := postJSON(t, router, "/advice/workout", `{"goal":"Strength","level":"Beginner","days":4}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "days must be 3, 5 or 6")
}

func TestDietEndpoint(t *testing.T) {
	router := newAdviceTestRouter()

	rec := postJSON(t, router, "/advice/diet", `{"height":175,"weight":80,"goal":"Weight Loss","preference":"Non-Veg"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Calories int    `json:"calories"`
		Protein  string `json:"protein"`
		Meals    []struct {
			Title string   `json:"title"`
			Items []string `json:"items"`
		} `json:"meals"`
		Note string `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1800, resp.Calories)
	require.Len(t, resp.Meals, 4)
	assert.Contains(t, resp.Meals[1].Items[0], "chicken")
	assert.NotEmpty(t, resp.Note)
}

func TestDietEndpoint_MissingFields(t *testing.T) {
	router := newAdviceTestRouter()

	rec := postJSON(t, router, "/advice/diet", `{"height":175,"goal":"Weight Loss"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatbotEndpoint(t *testing.T) {
	router := newAdviceTestRouter()

	rec := postJSON(t, router, "/chatbot", `{"message":"when does the gym open?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "6 AM")
}
