package advice

import (
	"fmt"
	"strings"
)

// PrecautionGroup is one of the coarse anatomical clusters that share a
// precaution rule set.
type PrecautionGroup string

const (
	GroupHeadNeck  PrecautionGroup = "head_neck"
	GroupUpperLimb PrecautionGroup = "upper_limb"
	GroupChest     PrecautionGroup = "chest"
	GroupSpineCore PrecautionGroup = "spine_core"
	GroupHipPelvis PrecautionGroup = "hip_pelvis"
	GroupLowerLimb PrecautionGroup = "lower_limb"
	GroupOther     PrecautionGroup = "other"
)

// BodyPart is a resolved canonical body part and its precaution group.
type BodyPart struct {
	Name  string          `json:"name"`
	Group PrecautionGroup `json:"group"`
}

// PrecautionPlan is the safety advice generated for a resolved body part.
// It is built per request and never persisted.
type PrecautionPlan struct {
	Avoid     []string `json:"avoid"`
	Replace   []string `json:"replace"`
	Warmup    []string `json:"warmup"`
	Intensity string   `json:"intensity"`
}

// canonicalParts maps every canonical body part to exactly one group.
// Multi-word parts are matched before single tokens during resolution.
var canonicalParts = map[string]PrecautionGroup{
	"head": GroupHeadNeck,
	"neck": GroupHeadNeck,
	"face": GroupHeadNeck,
	"eye":  GroupHeadNeck,
	"ear":  GroupHeadNeck,
	"jaw":  GroupHeadNeck,

	"shoulder":  GroupUpperLimb,
	"arm":       GroupUpperLimb,
	"upper arm": GroupUpperLimb,
	"forearm":   GroupUpperLimb,
	"elbow":     GroupUpperLimb,
	"wrist":     GroupUpperLimb,
	"hand":      GroupUpperLimb,
	"finger":    GroupUpperLimb,
	"thumb":     GroupUpperLimb,
	"bicep":     GroupUpperLimb,
	"tricep":    GroupUpperLimb,

	"chest":   GroupChest,
	"rib":     GroupChest,
	"sternum": GroupChest,

	"back":       GroupSpineCore,
	"upper back": GroupSpineCore,
	"lower back": GroupSpineCore,
	"spine":      GroupSpineCore,
	"abdomen":    GroupSpineCore,
	"stomach":    GroupSpineCore,
	"core":       GroupSpineCore,
	"oblique":    GroupSpineCore,

	"hip":     GroupHipPelvis,
	"pelvis":  GroupHipPelvis,
	"groin":   GroupHipPelvis,
	"glute":   GroupHipPelvis,
	"buttock": GroupHipPelvis,

	"leg":       GroupLowerLimb,
	"thigh":     GroupLowerLimb,
	"quad":      GroupLowerLimb,
	"hamstring": GroupLowerLimb,
	"knee":      GroupLowerLimb,
	"shin":      GroupLowerLimb,
	"calf":      GroupLowerLimb,
	"ankle":     GroupLowerLimb,
	"foot":      GroupLowerLimb,
	"toe":       GroupLowerLimb,
	"heel":      GroupLowerLimb,
}

// partAliases maps common plurals, abbreviations and typos to canonical
// parts. Compacted forms ("lowerback") cover inputs typed without spaces.
var partAliases = map[string]string{
	"knees":      "knee",
	"shoulders":  "shoulder",
	"arms":       "arm",
	"elbows":     "elbow",
	"wrists":     "wrist",
	"hands":      "hand",
	"fingers":    "finger",
	"biceps":     "bicep",
	"triceps":    "tricep",
	"ribs":       "rib",
	"eyes":       "eye",
	"ears":       "ear",
	"legs":       "leg",
	"thighs":     "thigh",
	"quads":      "quad",
	"hamstrings": "hamstring",
	"hams":       "hamstring",
	"shins":      "shin",
	"calves":     "calf",
	"ankles":     "ankle",
	"feet":       "foot",
	"toes":       "toe",
	"heels":      "heel",
	"hips":       "hip",
	"glutes":     "glute",
	"butt":       "buttock",
	"abs":        "abdomen",
	"ab":         "abdomen",
	"tummy":      "stomach",
	"belly":      "stomach",
	"lumbar":     "lower back",
	"cervical":   "neck",
	"achilles":   "heel",
	"lowerback":  "lower back",
	"upperback":  "upper back",
	"upperarm":   "upper arm",
	"midback":    "back",
	"kne":        "knee",
	"sholder":    "shoulder",
}

// noiseWords are complaint vocabulary and filler, not body parts. They are
// stripped token-wise so "knee pain" resolves exactly like "knee".
var noiseWords = map[string]bool{
	"pain": true, "pains": true, "painful": true,
	"injury": true, "injuries": true, "injured": true,
	"ache": true, "aches": true, "aching": true,
	"hurt": true, "hurts": true, "hurting": true,
	"sore": true, "soreness": true,
	"problem": true, "problems": true,
	"issue": true, "issues": true,
	"swollen": true, "swelling": true,
	"my": true, "in": true, "on": true, "the": true, "a": true, "an": true,
	"of": true, "is": true, "i": true, "have": true, "has": true, "got": true,
	"left": true, "right": true, "both": true,
	"severe": true, "mild": true, "slight": true, "chronic": true,
	"really": true, "very": true, "bad": true,
}

// multiWordParts lists the canonical parts containing spaces, checked by
// substring containment before any single-token lookup so that e.g.
// "upper back" wins over "back".
var multiWordParts = []string{"lower back", "upper back", "upper arm"}

// ResolveBodyPart maps a free-text injury description to a canonical body
// part. It returns ok=false when nothing in the text names a known part.
func ResolveBodyPart(freeText string) (BodyPart, bool) {
	text := normalizeInjuryText(freeText)
	if text == "" {
		return BodyPart{}, false
	}

	// Multi-word parts first; a plain token scan would let "back" shadow
	// "upper back".
	for _, part := range multiWordParts {
		if strings.Contains(text, part) {
			return BodyPart{Name: part, Group: canonicalParts[part]}, true
		}
	}

	for _, token := range strings.Fields(text) {
		if group, ok := canonicalParts[token]; ok {
			return BodyPart{Name: token, Group: group}, true
		}
		if canonical, ok := partAliases[token]; ok {
			return BodyPart{Name: canonical, Group: canonicalParts[canonical]}, true
		}
	}

	// Last resort for concatenated inputs like "lowerback".
	compacted := strings.ReplaceAll(text, " ", "")
	if canonical, ok := partAliases[compacted]; ok {
		return BodyPart{Name: canonical, Group: canonicalParts[canonical]}, true
	}

	return BodyPart{}, false
}

// normalizeInjuryText lowercases, turns separators into spaces, drops
// punctuation and noise tokens, and collapses whitespace.
func normalizeInjuryText(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r == ' ' {
			b.WriteRune(r)
		}
	}

	kept := make([]string, 0, 8)
	for _, token := range strings.Fields(b.String()) {
		if !noiseWords[token] {
			kept = append(kept, token)
		}
	}
	return strings.Join(kept, " ")
}

// groupPlans holds the fixed precaution rule set per group. Parts in the
// "other" group get the generic templated plan from genericPlan instead.
var groupPlans = map[PrecautionGroup]PrecautionPlan{
	GroupHeadNeck: {
		Avoid:     []string{"High-impact jumping and bouncing", "Inverted positions and headstands", "Heavy overhead loading"},
		Replace:   []string{"Brisk walking", "Stationary cycling at an easy pace", "Light mobility work"},
		Warmup:    []string{"Slow neck rotations", "Shoulder shrugs", "5 minutes of easy walking"},
		Intensity: "Low. Stop immediately on dizziness or headache.",
	},
	GroupUpperLimb: {
		Avoid:     []string{"Push-ups and dips", "Overhead presses", "Heavy rows and pull-ups"},
		Replace:   []string{"Lower-body machines", "Walking or cycling", "Floor core work that spares the arms"},
		Warmup:    []string{"Wrist circles", "Gentle elbow bends and straightens", "Band pull-aparts with the lightest band"},
		Intensity: "Low to moderate. Nothing that loads the injured arm.",
	},
	GroupChest: {
		Avoid:     []string{"Bench press and chest flys", "Push-ups", "Deep chest stretches"},
		Replace:   []string{"Leg press", "Bodyweight squats", "Easy stationary cycling"},
		Warmup:    []string{"Arm swings within a pain-free range", "5 minutes of easy cardio"},
		Intensity: "Moderate, lower body only.",
	},
	GroupSpineCore: {
		Avoid:     []string{"Deadlifts and barbell squats", "Sit-ups and crunches", "Twisting under load"},
		Replace:   []string{"Bird-dogs", "Glute bridges", "Short supported walks"},
		Warmup:    []string{"Cat-camel stretches", "Pelvic tilts", "A short easy walk"},
		Intensity: "Low. Stop on any pain that radiates into the legs.",
	},
	GroupHipPelvis: {
		Avoid:     []string{"Deep squats and lunges", "High-impact running", "Heavy hip hinges"},
		Replace:   []string{"Swimming", "Upper-body machines", "Seated resistance work"},
		Warmup:    []string{"Hip circles", "Light glute activation", "Easy cycling"},
		Intensity: "Low to moderate, pain-free range only.",
	},
	GroupLowerLimb: {
		Avoid:     []string{"Running and jumping", "Weighted squats and lunges", "Step-ups"},
		Replace:   []string{"Seated upper-body training", "Swimming", "Arm ergometer intervals"},
		Warmup:    []string{"Ankle pumps", "Gentle range-of-motion work", "Easy upper-body cardio"},
		Intensity: "Low on the injured leg, normal for the upper body.",
	},
}

// PlanFor returns the precaution plan for a resolved body part.
func PlanFor(part BodyPart) PrecautionPlan {
	if plan, ok := groupPlans[part.Group]; ok {
		return plan
	}
	return genericPlan(part.Name)
}

func genericPlan(partName string) PrecautionPlan {
	return PrecautionPlan{
		Avoid: []string{
			fmt.Sprintf("Movements that load or jar the %s", partName),
			fmt.Sprintf("Any exercise that reproduces the %s pain", partName),
		},
		Replace:   []string{"Easy walking", "Light mobility work away from the affected area"},
		Warmup:    []string{fmt.Sprintf("Gentle pain-free movement of the %s", partName), "5 minutes of easy cardio"},
		Intensity: "Low until cleared by a professional.",
	}
}
