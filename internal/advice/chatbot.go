package advice

import "strings"

// chatRule pairs trigger keywords with a canned reply. Rules are evaluated
// top to bottom and the first keyword hit wins, so more specific topics
// must sit above broader ones.
type chatRule struct {
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{
		keywords: []string{"zumba"},
		reply:    "Zumba sessions run on the studio floor; check the schedule page for upcoming classes. Opted-in members get a reminder email an hour before each session.",
	},
	{
		keywords: []string{"timing", "hours", "open", "close"},
		reply:    "The gym is open 6 AM to 10 PM Monday through Saturday, and 7 AM to 1 PM on Sundays.",
	},
	{
		keywords: []string{"plan", "membership", "price", "fee", "cost"},
		reply:    "We offer monthly, quarterly and annual memberships. You can compare plans and upgrade from the Plans page of your account.",
	},
	{
		keywords: []string{"trainer", "coach"},
		reply:    "Certified trainers are available on the floor during all open hours. Personal training slots can be booked at the front desk.",
	},
	{
		keywords: []string{"diet", "nutrition", "food", "meal"},
		reply:    "Try the diet planner under Advice - it builds a meal plan around your goal and dietary preference.",
	},
	{
		keywords: []string{"workout", "exercise", "routine", "split"},
		reply:    "The workout planner under Advice builds a weekly split from your goal, experience level and training days.",
	},
	{
		keywords: []string{"injury", "pain", "hurt"},
		reply:    "Sorry to hear that. Use the injury advice tool to get safe exercise substitutions, and see a doctor if the pain persists.",
	},
	{
		keywords: []string{"payment", "invoice", "receipt"},
		reply:    "Payment history and receipts are available under the Payments section of your account.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hi! Ask me about timings, membership plans, trainers, diet, workouts or Zumba sessions.",
	},
}

const chatFallback = "I didn't catch that. Try asking about timings, plans, trainers, diet, workouts or Zumba sessions."

// ChatReply returns the canned answer for the first rule whose keyword
// appears in the message, or a fallback prompt.
func ChatReply(message string) string {
	m := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(m, kw) {
				return rule.reply
			}
		}
	}
	return chatFallback
}
