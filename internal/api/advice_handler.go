package api

import (
	"errors"
	"fmt"
	"net/http"

	"fittrack/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AdviceHandler exposes the rule-based generators over HTTP.
type AdviceHandler struct {
	adviceService service.AdviceService
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(adviceService service.AdviceService) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService}
}

// --- Request Structs ---

type InjuryRequest struct {
	Text string `json:"text" binding:"required"`
}

type WorkoutRequest struct {
	Goal  string `json:"goal" binding:"required"`
	Level string `json:"level" binding:"required"`
	Days  int    `json:"days" binding:"required"`
}

type DietRequest struct {
	Height     float64 `json:"height" binding:"required"`
	Weight     float64 `json:"weight" binding:"required"`
	Goal       string  `json:"goal" binding:"required"`
	Preference string  `json:"preference" binding:"required"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- Handler Methods ---

// InjuryAdvice maps a free-text injury description to a body part and
// safety plan.
func (h *AdviceHandler) InjuryAdvice(c *gin.Context) {
	var req InjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Field 'text' is required")
		return
	}

	result, err := h.adviceService.InjuryAdvice(req.Text)
	if err != nil {
		if errors.Is(err, service.ErrBodyPartNotFound) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not generate injury advice")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// WorkoutPlan builds a weekly training split.
func (h *AdviceHandler) WorkoutPlan(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.adviceService.WorkoutPlan(req.Goal, req.Level, req.Days)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDays) || errors.Is(err, service.ErrMissingFields) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not generate workout plan")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DietPlan builds calorie/macro targets and a meal list.
func (h *AdviceHandler) DietPlan(c *gin.Context) {
	var req DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "height, weight, goal and preference are required")
		return
	}

	plan, err := h.adviceService.DietPlan(req.Height, req.Weight, req.Goal, req.Preference)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not generate diet plan")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Chat answers a chatbot message from the keyword rule table.
func (h *AdviceHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Field 'message' is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": h.adviceService.ChatReply(req.Message)})
}
