package anthropic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

func TestConvertRequestMergesSystemMessages(t *testing.T) {
	messages := []relaymodel.Message{
		{Role: relaymodel.RoleSystem, Content: "be terse"},
		{Role: relaymodel.RoleUser, Content: "hello"},
		{Role: relaymodel.RoleSystem, Content: "answer in English"},
		{Role: relaymodel.RoleAssistant, Content: "hi"},
	}

	req := ConvertRequest(messages, relaymodel.GenerationParams{Temperature: 0.2, MaxTokens: 100})

	require.Equal(t, AnthropicVersion, req.AnthropicVersion)
	require.Equal(t, "be terse\n\nanswer in English", req.System)
	require.Equal(t, []Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi"},
	}, req.Messages)
	require.Equal(t, 100, req.MaxTokens)
	require.InEpsilon(t, 0.2, req.Temperature, 1e-9)
}

func TestConvertRequestEmptyMessages(t *testing.T) {
	req := ConvertRequest(nil, relaymodel.GenerationParams{MaxTokens: 10})

	require.NotNil(t, req.Messages)
	require.Empty(t, req.Messages)
	require.Empty(t, req.System)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	require.Contains(t, string(body), `"messages":[]`)
}

func TestConvertRequestDefaultsMaxTokens(t *testing.T) {
	req := ConvertRequest(nil, relaymodel.GenerationParams{})
	require.Positive(t, req.MaxTokens)
}

func TestParseResponse(t *testing.T) {
	body := []byte(`{
		"content": [{"type": "text", "text": "hi"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 3, "output_tokens": 2}
	}`)

	resp, err := ParseResponse("anthropic.claude-3-haiku-20240307-v1:0", body)
	require.NoError(t, err)

	require.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", resp.Model)
	require.Equal(t, "hi", resp.Text)
	require.Equal(t, "end_turn", resp.FinishReason)
	require.Equal(t, relaymodel.Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5}, resp.Usage)
}

func TestParseResponseDegradesGracefully(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantText   string
		wantFinish string
	}{
		{"missing fields", `{}`, "", "stop"},
		{"empty content list", `{"content": []}`, "", "stop"},
		{"string content", `{"content": "plain text", "stop_reason": "end_turn"}`, "plain text", "end_turn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseResponse("anthropic.claude-3-haiku-20240307-v1:0", []byte(tt.body))
			require.NoError(t, err)
			require.Equal(t, tt.wantText, resp.Text)
			require.Equal(t, tt.wantFinish, resp.FinishReason)
			require.Equal(t, relaymodel.Usage{}, resp.Usage)
		})
	}
}

func TestParseResponseRejectsMalformedJSON(t *testing.T) {
	_, err := ParseResponse("anthropic.claude-3-haiku-20240307-v1:0", []byte("not json"))
	require.Error(t, err)
}

func TestParseChunk(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"content block delta", `{"type":"content_block_delta","delta":{"type":"text_delta","text":"hel"}}`, "hel"},
		{"content block start", `{"type":"content_block_start"}`, ""},
		{"message delta", `{"type":"message_delta","delta":{"type":"message_delta"}}`, ""},
		{"legacy completion", `{"completion":"lo "}`, "lo "},
		{"bare delta text", `{"delta":{"text":"wor"}}`, "wor"},
		{"bare text", `{"text":"ld"}`, "ld"},
		{"unknown event", `{"type":"ping"}`, ""},
		{"invalid payload", `not json`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk := ParseChunk([]byte(tt.payload))
			require.Equal(t, tt.want, chunk.Delta)
			require.False(t, chunk.Terminal)
		})
	}
}
