package titan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

func TestConvertRequestFlattensMessages(t *testing.T) {
	messages := []relaymodel.Message{
		{Role: relaymodel.RoleSystem, Content: "be terse"},
		{Role: relaymodel.RoleUser, Content: "hello"},
		{Role: relaymodel.RoleAssistant, Content: "hi"},
		{Role: relaymodel.RoleUser, Content: "more"},
	}

	req := ConvertRequest(messages, relaymodel.GenerationParams{Temperature: 0.5, MaxTokens: 128})

	want := "System: be terse\n\nHuman: hello\n\nAssistant: hi\n\nHuman: more\n\nAssistant: "
	require.Equal(t, want, req.InputText)
	require.Equal(t, 128, req.TextGenerationConfig.MaxTokenCount)
	require.InEpsilon(t, 0.5, req.TextGenerationConfig.Temperature, 1e-9)
}

func TestConvertRequestDefaults(t *testing.T) {
	req := ConvertRequest(nil, relaymodel.GenerationParams{})

	require.Equal(t, "Assistant: ", req.InputText)
	require.Positive(t, req.TextGenerationConfig.MaxTokenCount)
	require.InEpsilon(t, 0.9, req.TextGenerationConfig.TopP, 1e-9)
	require.NotNil(t, req.TextGenerationConfig.StopSequences)
	require.Empty(t, req.TextGenerationConfig.StopSequences)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	require.Contains(t, string(body), `"stopSequences":[]`)
}

func TestConvertRequestOverrides(t *testing.T) {
	topP := 0.4
	req := ConvertRequest(nil, relaymodel.GenerationParams{
		MaxTokens: 64,
		TopP:      &topP,
		Stop:      []string{"END"},
	})

	require.InEpsilon(t, 0.4, req.TextGenerationConfig.TopP, 1e-9)
	require.Equal(t, []string{"END"}, req.TextGenerationConfig.StopSequences)
}

func TestParseResponse(t *testing.T) {
	body := []byte(`{"results": [{"outputText": "hello there", "completionReason": "FINISH"}]}`)

	resp, err := ParseResponse("amazon.titan-text-express-v1", body)
	require.NoError(t, err)

	require.Equal(t, "amazon.titan-text-express-v1", resp.Model)
	require.Equal(t, "hello there", resp.Text)
	require.Equal(t, relaymodel.FinishStop, resp.FinishReason)
	// Titan never reports usage.
	require.Equal(t, relaymodel.Usage{}, resp.Usage)
}

func TestParseResponseEmptyResults(t *testing.T) {
	resp, err := ParseResponse("amazon.titan-text-express-v1", []byte(`{"results": []}`))
	require.NoError(t, err)
	require.Empty(t, resp.Text)
	require.Equal(t, relaymodel.FinishStop, resp.FinishReason)
}

func TestParseChunk(t *testing.T) {
	chunk := ParseChunk([]byte(`{"outputText": "frag"}`))
	require.Equal(t, "frag", chunk.Delta)
	require.False(t, chunk.Terminal)

	chunk = ParseChunk([]byte(`{}`))
	require.Empty(t, chunk.Delta)

	chunk = ParseChunk([]byte(`garbage`))
	require.Empty(t, chunk.Delta)
}
