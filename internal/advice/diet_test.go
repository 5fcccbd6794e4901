package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDietPlan_MacrosByGoal(t *testing.T) {
	tests := []struct {
		goal     string
		calories int
	}{
		{"Weight Loss", 1800},
		{"Muscle Gain", 2400},
		{"Strength", 2100},
		{"General Fitness", 2100},
		{"Something Else", 2100},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			plan := GenerateDietPlan(tt.goal, "Mixed")
			assert.Equal(t, tt.calories, plan.Calories)
			assert.NotEmpty(t, plan.Protein)
			assert.NotEmpty(t, plan.Carbs)
			assert.NotEmpty(t, plan.Fats)
			assert.NotEmpty(t, plan.Note)
		})
	}
}

func TestResolveMealKey_Precedence(t *testing.T) {
	tests := []struct {
		preference string
		want       mealKey
	}{
		// "Non-Veg" contains "veg" as a substring; the "non" branch must
		// be checked first or it would be classified vegetarian.
		{"Non-Veg", mealsNonVeg},
		{"non vegetarian", mealsNonVeg},
		{"NON-VEGETARIAN", mealsNonVeg},
		{"veg", mealsVeg},
		{"Vegetarian", mealsVeg},
		{"Mixed", mealsMixed},
		{"Something Random", mealsMixed},
		{"", mealsMixed},
	}

	for _, tt := range tests {
		t.Run(tt.preference, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveMealKey(tt.preference))
		})
	}
}

func TestGenerateDietPlan_Meals(t *testing.T) {
	plan := GenerateDietPlan("Weight Loss", "Non-Veg")
	require.Len(t, plan.Meals, 4)
	assert.Equal(t, "Breakfast", plan.Meals[0].Title)
	assert.Equal(t, "Dinner", plan.Meals[3].Title)
	assert.Equal(t, mealTables[mealsNonVeg], plan.Meals)

	plan = GenerateDietPlan("Muscle Gain", "veg")
	assert.Equal(t, mealTables[mealsVeg], plan.Meals)
}
