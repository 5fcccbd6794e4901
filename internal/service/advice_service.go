package service

import (
	"errors"

	"fittrack/gym-app/internal/advice"
)

// --- Error Definitions ---
var (
	ErrBodyPartNotFound = errors.New("please enter a valid human body part")
	ErrMissingFields    = errors.New("all fields are required")
	ErrInvalidDays      = errors.New("days must be 3, 5 or 6")
)

// InjuryAdvice is the response of the injury endpoint.
type InjuryAdvice struct {
	BodyPart string                `json:"bodyPart"`
	Group    string                `json:"group"`
	Plan     advice.PrecautionPlan `json:"plan"`
}

// AdviceService exposes the rule-based generators: injury precautions,
// workout plans, diet plans and the chatbot. All of them are pure table
// lookups, safe for any number of concurrent callers.
type AdviceService interface {
	InjuryAdvice(text string) (*InjuryAdvice, error)
	WorkoutPlan(goal, level string, days int) (map[string][]string, error)
	DietPlan(heightCm, weightKg float64, goal, preference string) (*advice.DietPlan, error)
	ChatReply(message string) string
}

type adviceService struct{}

// NewAdviceService creates a new instance of adviceService.
func NewAdviceService() AdviceService {
	return adviceService{}
}

// InjuryAdvice resolves a free-text injury description to a body part and
// its precaution plan.
func (adviceService) InjuryAdvice(text string) (*InjuryAdvice, error) {
	part, ok := advice.ResolveBodyPart(text)
	if !ok {
		return nil, ErrBodyPartNotFound
	}
	return &InjuryAdvice{
		BodyPart: part.Name,
		Group:    string(part.Group),
		Plan:     advice.PlanFor(part),
	}, nil
}

// WorkoutPlan builds a weekly split. Unknown goals and levels fall back
// gracefully inside the generator; only an unsupported days value errors.
func (adviceService) WorkoutPlan(goal, level string, days int) (map[string][]string, error) {
	if goal == "" || level == "" {
		return nil, ErrMissingFields
	}
	plan, err := advice.GenerateWorkoutPlan(goal, level, days)
	if err != nil {
		return nil, ErrInvalidDays
	}
	return plan, nil
}

// DietPlan builds a meal plan. Height and weight are required inputs but
// the macro numbers are keyed on goal alone.
func (adviceService) DietPlan(heightCm, weightKg float64, goal, preference string) (*advice.DietPlan, error) {
	if heightCm <= 0 || weightKg <= 0 || goal == "" || preference == "" {
		return nil, ErrMissingFields
	}
	plan := advice.GenerateDietPlan(goal, preference)
	return &plan, nil
}

// ChatReply answers a chatbot message from the keyword rule table.
func (adviceService) ChatReply(message string) string {
	return advice.ChatReply(message)
}
