package advice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWorkoutPlan_AllCombinations(t *testing.T) {
	goals := []Goal{GoalWeightLoss, GoalMuscleGain, GoalStrength, GoalGeneralFitness}
	levels := []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

	for _, goal := range goals {
		for _, level := range levels {
			for _, days := range []int{3, 5, 6} {
				name := fmt.Sprintf("%s/%s/%d", goal, level, days)
				t.Run(name, func(t *testing.T) {
					plan, err := GenerateWorkoutPlan(string(goal), string(level), days)
					require.NoError(t, err)
					require.Len(t, plan, days)
					for i := 1; i <= days; i++ {
						key := fmt.Sprintf("day%d", i)
						assert.NotEmptyf(t, plan[key], "missing or empty %s", key)
					}
				})
			}
		}
	}
}

func TestGenerateWorkoutPlan_UnknownInputsFallBack(t *testing.T) {
	plan, err := GenerateWorkoutPlan("Unknown", "Unknown", 5)
	require.NoError(t, err)

	want, err := GenerateWorkoutPlan(string(GoalGeneralFitness), string(LevelBeginner), 5)
	require.NoError(t, err)
	assert.Equal(t, want, plan)
}

func TestGenerateWorkoutPlan_InvalidDays(t *testing.T) {
	for _, days := range []int{0, 1, 2, 4, 7, -3} {
		_, err := GenerateWorkoutPlan(string(GoalStrength), string(LevelBeginner), days)
		assert.Errorf(t, err, "days=%d should be rejected", days)
	}
}

func TestSplitPatterns(t *testing.T) {
	assert.Equal(t, []DayType{DayPush, DayPull, DayLegs}, splitPatterns[3])
	assert.Equal(t, []DayType{DayPush, DayPull, DayLegs, DayUpper, DayLower}, splitPatterns[5])
	// The 6-day split repeats Push/Pull/Legs, it does not add Upper/Lower.
	assert.Equal(t, []DayType{DayPush, DayPull, DayLegs, DayPush, DayPull, DayLegs}, splitPatterns[6])
}

func TestTemplateTableComplete(t *testing.T) {
	dayTypes := []DayType{DayPush, DayPull, DayLegs, DayUpper, DayLower}
	for goal, byLevel := range workoutTemplates {
		require.Lenf(t, byLevel, 3, "goal %s must define all three levels", goal)
		for level, byDay := range byLevel {
			for _, dt := range dayTypes {
				assert.NotEmptyf(t, byDay[dt], "%s/%s missing %s day", goal, level, dt)
			}
		}
	}
}
