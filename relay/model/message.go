// Package model defines the unified value objects exchanged between the
// caller and the per-family Bedrock codecs.
package model

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat conversation in the unified shape.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationParams carries the family-agnostic sampling parameters of a
// completion request. Extra holds family-specific key/value pairs that
// are passed through to the native request body verbatim.
type GenerationParams struct {
	Temperature float64
	MaxTokens   int
	TopP        *float64
	Stop        []string
	Extra       map[string]any
}

// SystemPrompt merges the content of every non-empty system message into
// a single instruction block, preserving order. Families that model the
// system prompt out-of-band consume this; the remaining messages keep
// their original relative order.
func SystemPrompt(messages []Message) string {
	var merged string
	for _, msg := range messages {
		if msg.Role != RoleSystem || msg.Content == "" {
			continue
		}
		if merged != "" {
			merged += "\n\n"
		}
		merged += msg.Content
	}
	return merged
}

// WithoutSystem returns the messages with every system-role entry removed.
func WithoutSystem(messages []Message) []Message {
	filtered := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			continue
		}
		filtered = append(filtered, msg)
	}
	return filtered
}
