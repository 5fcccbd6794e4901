package advice

import "strings"

// Meal is one entry of a daily meal plan.
type Meal struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// DietPlan bundles macro targets, the meal list and the disclaimer note.
// Generated per request, never persisted.
type DietPlan struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fats     string `json:"fats"`
	Meals    []Meal `json:"meals"`
	Note     string `json:"note"`
}

const dietNote = "This plan is a general guideline, not medical advice. " +
	"Consult a dietitian before making major changes to your diet."

// macroTargets is keyed by goal; Strength and General Fitness share the
// default row. Height and weight are collected from the member but do not
// feed the macro numbers, which are goal-only by design.
type macroRow struct {
	calories int
	protein  string
	carbs    string
	fats     string
}

var macroDefault = macroRow{2100, "130-150 g", "200-240 g", "50-60 g"}

var macroTargets = map[Goal]macroRow{
	GoalWeightLoss: {1800, "120-140 g", "150-180 g", "40-50 g"},
	GoalMuscleGain: {2400, "150-180 g", "250-300 g", "60-70 g"},
}

type mealKey string

const (
	mealsVeg    mealKey = "veg"
	mealsNonVeg mealKey = "nonveg"
	mealsMixed  mealKey = "mixed"
)

// resolveMealKey classifies a free-text dietary preference. The rules are
// evaluated strictly top to bottom: "non" must be checked before "veg",
// otherwise "Non-Veg" would match the vegetarian branch via its "veg"
// substring. Anything else falls through to mixed.
func resolveMealKey(preference string) mealKey {
	p := strings.ToLower(strings.TrimSpace(preference))
	switch {
	case strings.Contains(p, "non"):
		return mealsNonVeg
	case strings.Contains(p, "veg"):
		return mealsVeg
	default:
		return mealsMixed
	}
}

var mealTables = map[mealKey][]Meal{
	mealsVeg: {
		{Title: "Breakfast", Items: []string{"Vegetable poha", "Sprouts salad", "A glass of milk"}},
		{Title: "Lunch", Items: []string{"2 rotis", "Dal tadka", "Paneer bhurji", "Cucumber salad"}},
		{Title: "Snack", Items: []string{"Roasted chana", "Seasonal fruit", "Buttermilk"}},
		{Title: "Dinner", Items: []string{"Vegetable khichdi", "Curd", "Steamed greens"}},
	},
	mealsNonVeg: {
		{Title: "Breakfast", Items: []string{"3 egg whites omelette", "Whole-wheat toast", "A glass of milk"}},
		{Title: "Lunch", Items: []string{"Grilled chicken breast", "Brown rice", "Mixed vegetable salad"}},
		{Title: "Snack", Items: []string{"Boiled eggs", "Peanuts", "Green tea"}},
		{Title: "Dinner", Items: []string{"Fish curry", "2 rotis", "Sauteed vegetables"}},
	},
	mealsMixed: {
		{Title: "Breakfast", Items: []string{"Oats with milk", "Banana", "Handful of almonds"}},
		{Title: "Lunch", Items: []string{"2 rotis", "Chicken curry or dal", "Green salad"}},
		{Title: "Snack", Items: []string{"Fruit bowl", "Roasted makhana", "Buttermilk"}},
		{Title: "Dinner", Items: []string{"Paneer or egg curry", "Brown rice", "Steamed vegetables"}},
	},
}

// GenerateDietPlan builds a diet plan for the given goal and dietary
// preference. Unknown goals get the default 2100 kcal row.
func GenerateDietPlan(goal, preference string) DietPlan {
	row, ok := macroTargets[ResolveGoal(goal)]
	if !ok {
		row = macroDefault
	}
	return DietPlan{
		Calories: row.calories,
		Protein:  row.protein,
		Carbs:    row.carbs,
		Fats:     row.fats,
		Meals:    mealTables[resolveMealKey(preference)],
		Note:     dietNote,
	}
}
