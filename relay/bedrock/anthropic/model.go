package anthropic

import "encoding/json"

// AnthropicVersion is the fixed protocol version Bedrock expects for
// Anthropic models.
const AnthropicVersion = "bedrock-2023-05-31"

// Request is the native Anthropic messages-API body for InvokeModel.
// https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-anthropic-claude-messages.html
type Request struct {
	AnthropicVersion string    `json:"anthropic_version"`
	Messages         []Message `json:"messages"`
	System           string    `json:"system,omitempty"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	TopP             *float64  `json:"top_p,omitempty"`
	StopSequences    []string  `json:"stop_sequences,omitempty"`
}

// Message is one conversation turn in Anthropic wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response is the native non-streaming response body. Content is kept
// raw because protocol variants ship it either as a block list or as a
// bare value.
type Response struct {
	Content    json.RawMessage `json:"content"`
	StopReason string          `json:"stop_reason"`
	Usage      *UsageInfo      `json:"usage"`
}

// ContentBlock is one element of the regular list-shaped content field.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// UsageInfo reports native token accounting.
type UsageInfo struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// StreamEvent is one decoded event payload of a response stream. The
// fields cover the current messages-API event types plus the legacy
// completion-style variants.
type StreamEvent struct {
	Type       string       `json:"type"`
	Delta      *StreamDelta `json:"delta,omitempty"`
	Completion string       `json:"completion,omitempty"`
	Text       string       `json:"text,omitempty"`
}

// StreamDelta carries the incremental text of a content_block_delta.
type StreamDelta struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
