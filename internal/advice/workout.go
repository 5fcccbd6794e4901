package advice

import "fmt"

// Goal is a supported training goal.
type Goal string

const (
	GoalWeightLoss     Goal = "Weight Loss"
	GoalMuscleGain     Goal = "Muscle Gain"
	GoalStrength       Goal = "Strength"
	GoalGeneralFitness Goal = "General Fitness"
)

// Level is a supported experience level.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// DayType is one slot in a weekly split.
type DayType string

const (
	DayPush  DayType = "Push"
	DayPull  DayType = "Pull"
	DayLegs  DayType = "Legs"
	DayUpper DayType = "Upper"
	DayLower DayType = "Lower"
)

// splitPatterns maps training frequency to the ordered day-type sequence.
// The 6-day split deliberately repeats Push/Pull/Legs instead of mixing in
// Upper/Lower days.
var splitPatterns = map[int][]DayType{
	3: {DayPush, DayPull, DayLegs},
	5: {DayPush, DayPull, DayLegs, DayUpper, DayLower},
	6: {DayPush, DayPull, DayLegs, DayPush, DayPull, DayLegs},
}

// ResolveGoal maps arbitrary input to a known goal, defaulting to General
// Fitness. The fallback is explicit so callers never hit a missing map key.
func ResolveGoal(input string) Goal {
	switch Goal(input) {
	case GoalWeightLoss, GoalMuscleGain, GoalStrength, GoalGeneralFitness:
		return Goal(input)
	}
	return GoalGeneralFitness
}

// ResolveLevel maps arbitrary input to a known level, defaulting to Beginner.
func ResolveLevel(input string) Level {
	switch Level(input) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return Level(input)
	}
	return LevelBeginner
}

// ValidDays reports whether the requested training frequency is supported.
func ValidDays(days int) bool {
	_, ok := splitPatterns[days]
	return ok
}

// GenerateWorkoutPlan builds a weekly plan keyed day1..dayN. Unknown goals
// and levels degrade to General Fitness / Beginner rather than erroring;
// only a structurally invalid days value is rejected.
func GenerateWorkoutPlan(goal, level string, days int) (map[string][]string, error) {
	split, ok := splitPatterns[days]
	if !ok {
		return nil, fmt.Errorf("days must be 3, 5 or 6, got %d", days)
	}

	g := ResolveGoal(goal)
	l := ResolveLevel(level)

	plan := make(map[string][]string, len(split))
	for i, dayType := range split {
		exercises, ok := workoutTemplates[g][l][dayType]
		if !ok {
			// Safety default; every (goal, level) defines all five day
			// types, but a gap must not surface as an empty day.
			exercises = workoutTemplates[g][l][DayPush]
		}
		plan[fmt.Sprintf("day%d", i+1)] = exercises
	}
	return plan, nil
}

// workoutTemplates is the static exercise-prescription table. Every
// (goal, level) pair defines all five day types.
var workoutTemplates = map[Goal]map[Level]map[DayType][]string{
	GoalWeightLoss: {
		LevelBeginner: {
			DayPush:  {"Incline Push-up 3x12", "Dumbbell Shoulder Press 3x12", "Machine Chest Press 3x15", "Triceps Rope Pushdown 3x15", "15 min incline walk"},
			DayPull:  {"Lat Pulldown 3x15", "Seated Cable Row 3x12", "Face Pull 3x15", "Dumbbell Curl 3x12", "15 min bike intervals"},
			DayLegs:  {"Goblet Squat 3x15", "Leg Press 3x15", "Walking Lunge 3x10 per leg", "Standing Calf Raise 3x20", "20 min brisk treadmill walk"},
			DayUpper: {"Machine Chest Press 3x15", "Lat Pulldown 3x15", "Lateral Raise 3x15", "Cable Curl 3x12", "Triceps Pushdown 3x12"},
			DayLower: {"Leg Press 3x15", "Leg Curl 3x15", "Leg Extension 3x15", "Calf Raise 3x20", "10 min stair climber"},
		},
		LevelIntermediate: {
			DayPush:  {"Bench Press 4x12", "Incline Dumbbell Press 3x12", "Arnold Press 3x12", "Cable Fly 3x15", "Triceps Dips 3x12", "12 min HIIT rower"},
			DayPull:  {"Pull-up (assisted) 4x8", "Barbell Row 4x12", "Single-arm Dumbbell Row 3x12", "Rear Delt Fly 3x15", "Hammer Curl 3x12"},
			DayLegs:  {"Back Squat 4x12", "Romanian Deadlift 3x12", "Bulgarian Split Squat 3x10 per leg", "Leg Curl 3x15", "15 min bike intervals"},
			DayUpper: {"Bench Press 4x12", "Barbell Row 4x12", "Seated Shoulder Press 3x12", "Lat Pulldown 3x12", "Superset: Curl + Pushdown 3x15"},
			DayLower: {"Front Squat 4x10", "Hip Thrust 3x12", "Walking Lunge 3x12 per leg", "Seated Calf Raise 4x15", "Sled Push 5x20m"},
		},
		LevelAdvanced: {
			DayPush:  {"Bench Press 5x10", "Incline Dumbbell Press 4x12", "Military Press 4x10", "Giant set: Fly/Push-up/Dip 3 rounds", "15 min HIIT assault bike"},
			DayPull:  {"Weighted Pull-up 4x8", "Pendlay Row 4x10", "T-Bar Row 3x12", "Cable Pullover 3x15", "21s Biceps Curl 3 rounds"},
			DayLegs:  {"Back Squat 5x10", "Deadlift 4x8", "Front Foot Elevated Lunge 3x12 per leg", "Nordic Curl 3x8", "20 min stair climber intervals"},
			DayUpper: {"Bench Press 5x10", "Weighted Pull-up 4x8", "Push Press 4x8", "Meadows Row 3x12", "Arm superset circuit 4 rounds"},
			DayLower: {"Deadlift 4x8", "Hack Squat 4x12", "Hip Thrust 4x12", "Leg Curl 4x15", "Farmer Carry 4x40m"},
		},
	},
	GoalMuscleGain: {
		LevelBeginner: {
			DayPush:  {"Machine Chest Press 3x10", "Dumbbell Shoulder Press 3x10", "Incline Dumbbell Press 3x10", "Lateral Raise 3x12", "Triceps Pushdown 3x12"},
			DayPull:  {"Lat Pulldown 3x10", "Seated Cable Row 3x10", "Dumbbell Shrug 3x12", "Dumbbell Curl 3x10", "Face Pull 3x15"},
			DayLegs:  {"Leg Press 3x10", "Goblet Squat 3x10", "Leg Curl 3x12", "Leg Extension 3x12", "Standing Calf Raise 3x15"},
			DayUpper: {"Machine Chest Press 3x10", "Lat Pulldown 3x10", "Shoulder Press 3x10", "Cable Curl 3x12", "Overhead Triceps Extension 3x12"},
			DayLower: {"Leg Press 3x10", "Romanian Deadlift 3x10", "Leg Extension 3x12", "Seated Calf Raise 3x15", "Plank 3x45s"},
		},
		LevelIntermediate: {
			DayPush:  {"Bench Press 4x8", "Incline Dumbbell Press 4x10", "Seated Shoulder Press 3x10", "Cable Fly 3x12", "Skullcrusher 3x10"},
			DayPull:  {"Pull-up 4x8", "Barbell Row 4x8", "Chest-supported Row 3x10", "Barbell Curl 3x10", "Rear Delt Fly 3x15"},
			DayLegs:  {"Back Squat 4x8", "Romanian Deadlift 4x10", "Leg Press 3x12", "Leg Curl 3x12", "Standing Calf Raise 4x12"},
			DayUpper: {"Bench Press 4x8", "Barbell Row 4x8", "Incline Press 3x10", "Lat Pulldown 3x10", "Superset: Curl + Skullcrusher 3x10"},
			DayLower: {"Front Squat 4x8", "Hip Thrust 4x10", "Bulgarian Split Squat 3x10 per leg", "Leg Extension 3x12", "Calf Raise 4x15"},
		},
		LevelAdvanced: {
			DayPush:  {"Bench Press 5x6-8", "Incline Barbell Press 4x8", "Dumbbell Shoulder Press 4x8", "Weighted Dip 3x10", "Cable Fly drop set 3 rounds", "Lateral Raise 4x15"},
			DayPull:  {"Weighted Pull-up 5x6", "Pendlay Row 4x8", "Seal Row 4x10", "Cable Pullover 3x12", "Incline Curl 4x10", "Hammer Curl 3x12"},
			DayLegs:  {"Back Squat 5x6-8", "Deadlift 4x6", "Hack Squat 4x10", "Nordic Curl 3x8", "Standing Calf Raise 5x12"},
			DayUpper: {"Bench Press 5x6-8", "Weighted Pull-up 5x6", "Push Press 4x6", "Meadows Row 4x10", "Arm superset 4 rounds"},
			DayLower: {"Deadlift 4x6", "Front Squat 4x8", "Hip Thrust 4x10", "Glute-Ham Raise 3x10", "Seated Calf Raise 5x15"},
		},
	},
	GoalStrength: {
		LevelBeginner: {
			DayPush:  {"Bench Press 5x5", "Overhead Press 3x5", "Close-grip Push-up 3x8", "Plank 3x45s"},
			DayPull:  {"Barbell Row 5x5", "Lat Pulldown 3x8", "Dumbbell Curl 3x8", "Dead Hang 3x30s"},
			DayLegs:  {"Back Squat 5x5", "Romanian Deadlift 3x5", "Leg Press 3x8", "Standing Calf Raise 3x10"},
			DayUpper: {"Bench Press 5x5", "Barbell Row 5x5", "Overhead Press 3x5", "Chin-up (assisted) 3x5"},
			DayLower: {"Deadlift 3x5", "Back Squat 3x5", "Walking Lunge 3x8 per leg", "Hanging Knee Raise 3x10"},
		},
		LevelIntermediate: {
			DayPush:  {"Bench Press 5x3", "Overhead Press 4x5", "Incline Bench Press 3x6", "Weighted Dip 3x6"},
			DayPull:  {"Deadlift 5x3", "Weighted Chin-up 4x5", "Barbell Row 4x6", "Face Pull 3x12"},
			DayLegs:  {"Back Squat 5x3", "Front Squat 3x5", "Romanian Deadlift 3x6", "Weighted Plank 3x45s"},
			DayUpper: {"Bench Press 5x3", "Weighted Chin-up 4x5", "Push Press 4x3", "Pendlay Row 4x5"},
			DayLower: {"Deadlift 5x3", "Paused Squat 3x3", "Good Morning 3x8", "Ab Wheel 3x10"},
		},
		LevelAdvanced: {
			DayPush:  {"Bench Press work up to 1-3RM", "Spoto Press 3x3", "Overhead Press 5x3", "Board Press 3x2", "Heavy Triceps Extension 4x6"},
			DayPull:  {"Deadlift work up to 1-3RM", "Deficit Deadlift 3x3", "Weighted Pull-up 5x3", "Heavy Barbell Row 4x5"},
			DayLegs:  {"Back Squat work up to 1-3RM", "Pause Squat 3x2", "Front Squat 4x3", "Glute-Ham Raise 4x8"},
			DayUpper: {"Bench Press 6x2 @ 85%", "Weighted Pull-up 5x3", "Push Press 5x2", "Pendlay Row 5x3"},
			DayLower: {"Deadlift 6x2 @ 85%", "Safety Bar Squat 4x3", "Romanian Deadlift 4x6", "Heavy Carry 4x30m"},
		},
	},
	GoalGeneralFitness: {
		LevelBeginner: {
			DayPush:  {"Push-up 3x10", "Dumbbell Shoulder Press 3x10", "Machine Chest Press 3x12", "10 min easy cycling"},
			DayPull:  {"Lat Pulldown 3x12", "Seated Cable Row 3x12", "Dumbbell Curl 3x10", "10 min rowing"},
			DayLegs:  {"Bodyweight Squat 3x15", "Leg Press 3x12", "Step-up 3x10 per leg", "15 min brisk walk"},
			DayUpper: {"Push-up 3x10", "Lat Pulldown 3x12", "Lateral Raise 3x12", "Triceps Pushdown 3x12"},
			DayLower: {"Leg Press 3x12", "Leg Curl 3x12", "Standing Calf Raise 3x15", "10 min easy cycling"},
		},
		LevelIntermediate: {
			DayPush:  {"Bench Press 3x10", "Incline Dumbbell Press 3x10", "Shoulder Press 3x10", "Triceps Dips 3x10", "10 min intervals"},
			DayPull:  {"Pull-up 3x8", "Barbell Row 3x10", "Face Pull 3x12", "Hammer Curl 3x10", "10 min rowing intervals"},
			DayLegs:  {"Back Squat 3x10", "Romanian Deadlift 3x10", "Walking Lunge 3x10 per leg", "Calf Raise 3x15", "Farmer Carry 3x30m"},
			DayUpper: {"Bench Press 3x10", "Pull-up 3x8", "Shoulder Press 3x10", "Cable Row 3x10", "Core circuit 2 rounds"},
			DayLower: {"Back Squat 3x10", "Hip Thrust 3x10", "Leg Curl 3x12", "Calf Raise 3x15", "Sled Push 4x20m"},
		},
		LevelAdvanced: {
			DayPush:  {"Bench Press 4x8", "Push Press 4x6", "Weighted Dip 3x10", "Handstand Hold 4x20s", "Assault bike sprints 8x15s"},
			DayPull:  {"Weighted Pull-up 4x6", "Barbell Row 4x8", "Power Clean 4x3", "Kettlebell Swing 4x15", "Rower sprints 8x250m"},
			DayLegs:  {"Back Squat 4x8", "Deadlift 3x5", "Box Jump 4x5", "Walking Lunge 4x12 per leg", "Hill sprints 6x30s"},
			DayUpper: {"Bench Press 4x8", "Weighted Pull-up 4x6", "Push Press 4x6", "Renegade Row 3x10", "Battle ropes 6x30s"},
			DayLower: {"Deadlift 3x5", "Front Squat 4x6", "Hip Thrust 4x10", "Nordic Curl 3x8", "Sled work 10 min"},
		},
	},
}
