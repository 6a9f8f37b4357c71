package bedrock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

func TestEstimateTokens(t *testing.T) {
	require.Zero(t, EstimateTokens(""))

	short := EstimateTokens("Hello, world!")
	require.Positive(t, short)

	long := EstimateTokens(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20))
	require.Greater(t, long, short)
}

func TestEstimateMessageTokens(t *testing.T) {
	messages := []relaymodel.Message{
		{Role: relaymodel.RoleSystem, Content: "You are terse."},
		{Role: relaymodel.RoleUser, Content: "Summarize this repository."},
	}

	total := EstimateMessageTokens(messages)
	require.Equal(t, EstimateTokens(messages[0].Content)+EstimateTokens(messages[1].Content), total)
	require.Positive(t, total)

	require.Zero(t, EstimateMessageTokens(nil))
}
