// Package titan converts between the unified request/response shape and
// the native Amazon Titan text-generation wire format.
package titan

import (
	"encoding/json"
	"strings"

	"github.com/Laisky/errors/v2"

	"github.com/codefind-ai/bedrock-gateway/common/config"
	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

const defaultTopP = 0.9

// ConvertRequest builds the native request body. Titan has no message
// structure, so every message is flattened into one prompt with
// line-prefixed role labels in original order, ending with an open
// assistant cue.
func ConvertRequest(messages []relaymodel.Message, params relaymodel.GenerationParams) *Request {
	var prompt strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case relaymodel.RoleSystem:
			prompt.WriteString("System: " + msg.Content + "\n\n")
		case relaymodel.RoleUser:
			prompt.WriteString("Human: " + msg.Content + "\n\n")
		case relaymodel.RoleAssistant:
			prompt.WriteString("Assistant: " + msg.Content + "\n\n")
		}
	}
	prompt.WriteString("Assistant: ")

	cfg := TextGenerationConfig{
		MaxTokenCount: params.MaxTokens,
		Temperature:   params.Temperature,
		TopP:          defaultTopP,
		StopSequences: []string{},
	}
	if cfg.MaxTokenCount <= 0 {
		cfg.MaxTokenCount = config.DefaultMaxTokens
	}
	if params.TopP != nil {
		cfg.TopP = *params.TopP
	}
	if len(params.Stop) > 0 {
		cfg.StopSequences = params.Stop
	}

	return &Request{
		InputText:            prompt.String(),
		TextGenerationConfig: cfg,
	}
}

// ParseResponse maps the native response body to the unified shape.
// Titan reports no token usage; the unified usage is always zero. An
// empty result list degrades to empty text.
func ParseResponse(modelID string, body []byte) (*relaymodel.Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "unmarshal titan response")
	}

	var text string
	if len(resp.Results) > 0 {
		text = resp.Results[0].OutputText
	}

	return &relaymodel.Response{
		Model:        modelID,
		Text:         text,
		FinishReason: relaymodel.FinishStop,
		Usage:        relaymodel.Usage{},
	}, nil
}

// ParseChunk maps one decoded stream event to a unified chunk.
func ParseChunk(payload []byte) relaymodel.Chunk {
	var event StreamEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return relaymodel.Chunk{}
	}
	return relaymodel.Chunk{Delta: event.OutputText}
}
