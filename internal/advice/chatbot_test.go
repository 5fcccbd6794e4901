package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatReply(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"zumba", "when is the next zumba class?", "Zumba"},
		{"timings", "what are your timings?", "6 AM"},
		{"plans", "how much does a membership cost", "memberships"},
		{"diet", "can you suggest food for me", "diet planner"},
		{"injury", "I hurt my knee yesterday", "injury advice"},
		{"greeting", "hello there", "Ask me about"},
		{"fallback", "qwerty asdf", "didn't catch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, ChatReply(tt.message), tt.contains)
		})
	}
}
