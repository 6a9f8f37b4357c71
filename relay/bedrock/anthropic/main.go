// Package anthropic converts between the unified request/response shape
// and the native Anthropic messages-API wire format on Bedrock.
package anthropic

import (
	"encoding/json"
	"strings"

	"github.com/Laisky/errors/v2"

	"github.com/codefind-ai/bedrock-gateway/common/config"
	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

// ConvertRequest builds the native request body. System messages are
// merged into the out-of-band system field; the remaining messages keep
// their original order. An empty message list yields a minimal valid
// body with no messages.
func ConvertRequest(messages []relaymodel.Message, params relaymodel.GenerationParams) *Request {
	converted := make([]Message, 0, len(messages))
	for _, msg := range relaymodel.WithoutSystem(messages) {
		converted = append(converted, Message{Role: msg.Role, Content: msg.Content})
	}

	req := &Request{
		AnthropicVersion: AnthropicVersion,
		Messages:         converted,
		System:           relaymodel.SystemPrompt(messages),
		MaxTokens:        params.MaxTokens,
		Temperature:      params.Temperature,
		TopP:             params.TopP,
		StopSequences:    params.Stop,
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = config.DefaultMaxTokens
	}
	return req
}

// ParseResponse maps the native response body to the unified shape.
// Missing fields degrade to empty text / zero usage rather than failing.
func ParseResponse(modelID string, body []byte) (*relaymodel.Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "unmarshal anthropic response")
	}

	finishReason := resp.StopReason
	if finishReason == "" {
		finishReason = relaymodel.FinishStop
	}

	var usage relaymodel.Usage
	if resp.Usage != nil {
		usage = relaymodel.NewUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}

	return &relaymodel.Response{
		Model:        modelID,
		Text:         contentText(resp.Content),
		FinishReason: finishReason,
		Usage:        usage,
	}, nil
}

// contentText extracts the text of the first content block, falling back
// to the stringified raw content when the field is not list-shaped.
func contentText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var blocks []ContentBlock
	if err := json.Unmarshal(raw, &blocks); err == nil {
		if len(blocks) == 0 {
			return ""
		}
		return blocks[0].Text
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return strings.TrimSpace(string(raw))
}

// ParseChunk maps one decoded stream event to a unified chunk. Events
// that carry no text (block starts, message metadata, unknown types)
// yield an empty-delta non-terminal chunk; this never fails, a payload
// that does not decode is treated as a control event.
func ParseChunk(payload []byte) relaymodel.Chunk {
	var event StreamEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return relaymodel.Chunk{}
	}

	switch event.Type {
	case "content_block_delta":
		if event.Delta != nil {
			return relaymodel.Chunk{Delta: event.Delta.Text}
		}
		return relaymodel.Chunk{}
	case "content_block_start", "message_delta":
		return relaymodel.Chunk{}
	}

	// Legacy shapes kept for protocol variants: a bare completion field,
	// a bare delta.text, or a top-level text field.
	if event.Completion != "" {
		return relaymodel.Chunk{Delta: event.Completion}
	}
	if event.Delta != nil && event.Delta.Text != "" {
		return relaymodel.Chunk{Delta: event.Delta.Text}
	}
	if event.Text != "" {
		return relaymodel.Chunk{Delta: event.Text}
	}
	return relaymodel.Chunk{}
}
