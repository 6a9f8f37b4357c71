package llama

import (
	"testing"

	"github.com/stretchr/testify/require"

	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

func TestConvertRequestRendersChatTemplate(t *testing.T) {
	messages := []relaymodel.Message{
		{Role: relaymodel.RoleSystem, Content: "be terse"},
		{Role: relaymodel.RoleUser, Content: "hello"},
		{Role: relaymodel.RoleAssistant, Content: "hi"},
	}

	req := ConvertRequest(messages, relaymodel.GenerationParams{Temperature: 0.7, MaxTokens: 256})

	want := "<|begin_of_text|><|start_header_id|>system<|end_header_id|>\nbe terse<|eot_id|>" +
		"<|start_header_id|>user<|end_header_id|>\nhello<|eot_id|>" +
		"<|start_header_id|>assistant<|end_header_id|>\nhi<|eot_id|>" +
		"<|start_header_id|>assistant<|end_header_id|>\n"
	require.Equal(t, want, req.Prompt)
	require.Equal(t, 256, req.MaxGenLen)
	require.InEpsilon(t, 0.7, req.Temperature, 1e-9)
	require.InEpsilon(t, 0.9, req.TopP, 1e-9)
}

func TestConvertRequestDefaults(t *testing.T) {
	topP := 0.3
	req := ConvertRequest(nil, relaymodel.GenerationParams{TopP: &topP})

	require.Equal(t, "<|start_header_id|>assistant<|end_header_id|>\n", req.Prompt)
	require.Positive(t, req.MaxGenLen)
	require.InEpsilon(t, 0.3, req.TopP, 1e-9)
}

func TestParseResponse(t *testing.T) {
	body := []byte(`{
		"generation": "sure thing",
		"stop_reason": "length",
		"prompt_token_count": 7,
		"generation_token_count": 5
	}`)

	resp, err := ParseResponse("meta.llama3-8b-instruct-v1:0", body)
	require.NoError(t, err)

	require.Equal(t, "meta.llama3-8b-instruct-v1:0", resp.Model)
	require.Equal(t, "sure thing", resp.Text)
	require.Equal(t, "length", resp.FinishReason)
	require.Equal(t, relaymodel.Usage{PromptTokens: 7, CompletionTokens: 5, TotalTokens: 12}, resp.Usage)
}

func TestParseResponseDefaultsFinishReason(t *testing.T) {
	resp, err := ParseResponse("meta.llama3-8b-instruct-v1:0", []byte(`{"generation": "x"}`))
	require.NoError(t, err)
	require.Equal(t, relaymodel.FinishStop, resp.FinishReason)
	require.Equal(t, relaymodel.Usage{}, resp.Usage)
}

func TestParseChunk(t *testing.T) {
	chunk := ParseChunk([]byte(`{"generation": "frag"}`))
	require.Equal(t, "frag", chunk.Delta)
	require.False(t, chunk.Terminal)

	chunk = ParseChunk([]byte(`garbage`))
	require.Empty(t, chunk.Delta)
}
