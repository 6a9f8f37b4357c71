package bedrock

import (
	"github.com/codefind-ai/bedrock-gateway/relay/bedrock/anthropic"
	"github.com/codefind-ai/bedrock-gateway/relay/bedrock/llama"
	"github.com/codefind-ai/bedrock-gateway/relay/bedrock/titan"
	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

// Adapter is the per-family request/response codec. ConvertRequest never
// fails on well-typed input; ParseChunk never fails at all, unparseable
// event payloads degrade to an empty-delta control chunk.
type Adapter interface {
	ConvertRequest(messages []relaymodel.Message, params relaymodel.GenerationParams) any
	ParseResponse(modelID string, body []byte) (*relaymodel.Response, error)
	ParseChunk(payload []byte) relaymodel.Chunk
}

// GetAdapter returns the codec for a family, or nil for an unknown one.
func GetAdapter(family Family) Adapter {
	switch family {
	case FamilyAnthropic:
		return anthropicAdapter{}
	case FamilyTitan:
		return titanAdapter{}
	case FamilyLlama:
		return llamaAdapter{}
	default:
		return nil
	}
}

type anthropicAdapter struct{}

func (anthropicAdapter) ConvertRequest(messages []relaymodel.Message, params relaymodel.GenerationParams) any {
	return anthropic.ConvertRequest(messages, params)
}

func (anthropicAdapter) ParseResponse(modelID string, body []byte) (*relaymodel.Response, error) {
	return anthropic.ParseResponse(modelID, body)
}

func (anthropicAdapter) ParseChunk(payload []byte) relaymodel.Chunk {
	return anthropic.ParseChunk(payload)
}

type titanAdapter struct{}

func (titanAdapter) ConvertRequest(messages []relaymodel.Message, params relaymodel.GenerationParams) any {
	return titan.ConvertRequest(messages, params)
}

func (titanAdapter) ParseResponse(modelID string, body []byte) (*relaymodel.Response, error) {
	return titan.ParseResponse(modelID, body)
}

func (titanAdapter) ParseChunk(payload []byte) relaymodel.Chunk {
	return titan.ParseChunk(payload)
}

type llamaAdapter struct{}

func (llamaAdapter) ConvertRequest(messages []relaymodel.Message, params relaymodel.GenerationParams) any {
	return llama.ConvertRequest(messages, params)
}

func (llamaAdapter) ParseResponse(modelID string, body []byte) (*relaymodel.Response, error) {
	return llama.ParseResponse(modelID, body)
}

func (llamaAdapter) ParseChunk(payload []byte) relaymodel.Chunk {
	return llama.ParseChunk(payload)
}
