package models

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single entry in a chat conversation. Turns are value types and
// never mutated after they are appended to a conversation.
type Turn struct {
	Role    Role
	Content string
}

// LatestUserText returns the content of the most recent user turn, or an
// empty string when the conversation has no user turn.
func LatestUserText(conv []Turn) string {
	for i := len(conv) - 1; i >= 0; i-- {
		if conv[i].Role == RoleUser {
			return conv[i].Content
		}
	}
	return ""
}
