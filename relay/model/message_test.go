package model

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
)

func TestSystemPrompt(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "First rule."},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleSystem, Content: ""},
		{Role: RoleSystem, Content: "Second rule."},
	}

	require.Equal(t, "First rule.\n\nSecond rule.", SystemPrompt(messages))
	require.Empty(t, SystemPrompt([]Message{{Role: RoleUser, Content: "hi"}}))
	require.Empty(t, SystemPrompt(nil))
}

func TestWithoutSystem(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "rules"},
		{Role: RoleUser, Content: "question"},
		{Role: RoleAssistant, Content: "answer"},
	}

	rest := WithoutSystem(messages)
	require.Equal(t, []Message{
		{Role: RoleUser, Content: "question"},
		{Role: RoleAssistant, Content: "answer"},
	}, rest)

	// The input slice is not mutated.
	require.Len(t, messages, 3)
	require.Equal(t, RoleSystem, messages[0].Role)
}

func TestNewUsage(t *testing.T) {
	usage := NewUsage(7, 5)
	require.Equal(t, Usage{PromptTokens: 7, CompletionTokens: 5, TotalTokens: 12}, usage)

	require.Equal(t, Usage{}, NewUsage(0, 0))
}

func TestErrorChunk(t *testing.T) {
	chunk := ErrorChunk(errors.New("stream cut"))
	require.True(t, chunk.Terminal)
	require.Equal(t, FinishError, chunk.FinishReason)
	require.Contains(t, chunk.ErrorText, "stream cut")

	clean := TerminalChunk()
	require.True(t, clean.Terminal)
	require.Equal(t, FinishStop, clean.FinishReason)
	require.Empty(t, clean.ErrorText)
}
