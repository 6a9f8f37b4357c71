package model

const (
	// FinishStop is the default finish reason for a cleanly completed
	// response or stream.
	FinishStop = "stop"
	// FinishError marks a terminal chunk produced by a mid-stream failure.
	FinishError = "error"
)

// Usage reports best-effort token accounting for one completion.
// TotalTokens is always PromptTokens+CompletionTokens; families that do
// not report usage yield the zero value rather than an error.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// NewUsage builds a Usage with the total derived from its parts.
func NewUsage(promptTokens, completionTokens int) Usage {
	return Usage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
}

// Response is the unified shape of a completed (non-streaming) request.
type Response struct {
	// Model is the deployment id the request was actually served by,
	// after inference-profile resolution.
	Model        string `json:"model"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
	Usage        Usage  `json:"usage"`
}

// Chunk is one incremental unit of a streamed response. A well-formed
// stream yields zero or more non-terminal chunks followed by exactly one
// terminal chunk. Delta may be empty on non-terminal chunks produced by
// family-internal control events; consumers can append Delta blindly.
type Chunk struct {
	Delta    string `json:"delta"`
	Terminal bool   `json:"terminal"`
	// FinishReason is set only on the terminal chunk.
	FinishReason string `json:"finish_reason,omitempty"`
	// ErrorText describes the failure when FinishReason is FinishError.
	ErrorText string `json:"error_text,omitempty"`
}

// TerminalChunk builds the chunk that cleanly ends a stream.
func TerminalChunk() Chunk {
	return Chunk{Terminal: true, FinishReason: FinishStop}
}

// ErrorChunk builds the terminal chunk reporting a mid-stream failure.
func ErrorChunk(err error) Chunk {
	return Chunk{Terminal: true, FinishReason: FinishError, ErrorText: err.Error()}
}
