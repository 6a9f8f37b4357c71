package titan

// Request is the native Titan text-generation body for InvokeModel.
// https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-titan-text.html
type Request struct {
	InputText            string               `json:"inputText"`
	TextGenerationConfig TextGenerationConfig `json:"textGenerationConfig"`
}

// TextGenerationConfig carries Titan's sampling parameters.
type TextGenerationConfig struct {
	MaxTokenCount int      `json:"maxTokenCount"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"topP"`
	StopSequences []string `json:"stopSequences"`
}

// Response is the native non-streaming response body.
type Response struct {
	Results []Result `json:"results"`
}

// Result is one generation result; Titan returns at most one.
type Result struct {
	OutputText       string `json:"outputText"`
	CompletionReason string `json:"completionReason"`
}

// StreamEvent is one decoded event payload of a response stream.
type StreamEvent struct {
	OutputText string `json:"outputText"`
}
