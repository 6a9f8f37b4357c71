// Package llama converts between the unified request/response shape and
// the native Meta Llama chat-markup wire format.
package llama

import (
	"encoding/json"
	"strings"

	"github.com/Laisky/errors/v2"

	"github.com/codefind-ai/bedrock-gateway/common/config"
	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

const defaultTopP = 0.9

// ConvertRequest builds the native request body. Messages are rendered
// into the Llama 3 chat template with per-role header/footer tokens and
// an open assistant header for the model to continue from.
func ConvertRequest(messages []relaymodel.Message, params relaymodel.GenerationParams) *Request {
	var prompt strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case relaymodel.RoleSystem:
			prompt.WriteString("<|begin_of_text|><|start_header_id|>system<|end_header_id|>\n" + msg.Content + "<|eot_id|>")
		case relaymodel.RoleUser:
			prompt.WriteString("<|start_header_id|>user<|end_header_id|>\n" + msg.Content + "<|eot_id|>")
		case relaymodel.RoleAssistant:
			prompt.WriteString("<|start_header_id|>assistant<|end_header_id|>\n" + msg.Content + "<|eot_id|>")
		}
	}
	prompt.WriteString("<|start_header_id|>assistant<|end_header_id|>\n")

	req := &Request{
		Prompt:      prompt.String(),
		MaxGenLen:   params.MaxTokens,
		Temperature: params.Temperature,
		TopP:        defaultTopP,
	}
	if req.MaxGenLen <= 0 {
		req.MaxGenLen = config.DefaultMaxTokens
	}
	if params.TopP != nil {
		req.TopP = *params.TopP
	}
	return req
}

// ParseResponse maps the native response body to the unified shape.
func ParseResponse(modelID string, body []byte) (*relaymodel.Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "unmarshal llama response")
	}

	finishReason := resp.StopReason
	if finishReason == "" {
		finishReason = relaymodel.FinishStop
	}

	return &relaymodel.Response{
		Model:        modelID,
		Text:         resp.Generation,
		FinishReason: finishReason,
		Usage:        relaymodel.NewUsage(resp.PromptTokenCount, resp.GenerationTokenCount),
	}, nil
}

// ParseChunk maps one decoded stream event to a unified chunk.
func ParseChunk(payload []byte) relaymodel.Chunk {
	var event StreamEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return relaymodel.Chunk{}
	}
	return relaymodel.Chunk{Delta: event.Generation}
}
