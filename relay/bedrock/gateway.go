// Package bedrock normalizes chat completions across the model families
// exposed by AWS Bedrock. The gateway resolves the requested model to
// its best backing deployment, converts the unified request into the
// family's native wire shape, invokes the transport synchronously or as
// a stream, and maps the native response back to the unified shape.
package bedrock

import (
	"context"
	"encoding/json"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/codefind-ai/bedrock-gateway/common/config"
	"github.com/codefind-ai/bedrock-gateway/common/logger"
	"github.com/codefind-ai/bedrock-gateway/relay/bedrock/internal/streamfinalizer"
	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

// Gateway orchestrates resolution, formatting, invocation, and parsing.
// It holds no per-request state and is safe for concurrent use.
type Gateway struct {
	invoker  Invoker
	resolver *Resolver
}

func NewGateway(invoker Invoker, resolver *Resolver) *Gateway {
	return &Gateway{invoker: invoker, resolver: resolver}
}

// prepare runs the shared pre-invocation pipeline: resolve the model,
// classify its family, and build the native request body. An
// unrecognized family fails here, before any network call.
func (g *Gateway) prepare(ctx context.Context, requestedModel string,
	messages []relaymodel.Message, params relaymodel.GenerationParams) (string, Adapter, []byte, error) {
	modelID := g.resolver.Resolve(ctx, requestedModel)

	family, err := FamilyOf(modelID)
	if err != nil {
		return "", nil, nil, err
	}

	adapter := GetAdapter(family)
	body, err := marshalRequestBody(adapter.ConvertRequest(messages, params), params.Extra)
	if err != nil {
		return "", nil, nil, err
	}
	return modelID, adapter, body, nil
}

// Complete performs a blocking completion and returns the unified
// response. Transport failures come back classified; the caller owns
// any retry policy.
func (g *Gateway) Complete(ctx context.Context, requestedModel string,
	messages []relaymodel.Message, params relaymodel.GenerationParams) (*relaymodel.Response, error) {
	modelID, adapter, body, err := g.prepare(ctx, requestedModel, messages, params)
	if err != nil {
		return nil, err
	}

	raw, err := g.invoker.InvokeModel(ctx, modelID, body)
	if err != nil {
		return nil, Classify(err)
	}

	resp, err := adapter.ParseResponse(modelID, raw)
	if err != nil {
		return nil, Classify(err)
	}
	return resp, nil
}

// CompleteStream performs a streaming completion. The returned channel
// yields zero or more non-terminal chunks followed by exactly one
// terminal chunk, then closes. A mid-stream transport failure is
// delivered as the terminal chunk with an error finish reason; it never
// propagates as a panic or a silently truncated sequence. Cancelling
// ctx or draining the channel to close releases the event source.
//
// When streaming is administratively disabled the call degrades to the
// synchronous path and replays the whole response as a single chunk.
func (g *Gateway) CompleteStream(ctx context.Context, requestedModel string,
	messages []relaymodel.Message, params relaymodel.GenerationParams) (<-chan relaymodel.Chunk, error) {
	if config.DisableStreaming {
		logger.Logger.Debug("streaming disabled, falling back to synchronous completion",
			zap.String("model", requestedModel))
		return g.completeAsStream(ctx, requestedModel, messages, params)
	}

	modelID, adapter, body, err := g.prepare(ctx, requestedModel, messages, params)
	if err != nil {
		return nil, err
	}

	es, err := g.invoker.InvokeModelStream(ctx, modelID, body)
	if err != nil {
		return nil, Classify(err)
	}

	out := make(chan relaymodel.Chunk)
	go pumpStream(ctx, es, adapter, out)
	return out, nil
}

// completeAsStream runs the synchronous path and replays the result as
// a two-chunk stream.
func (g *Gateway) completeAsStream(ctx context.Context, requestedModel string,
	messages []relaymodel.Message, params relaymodel.GenerationParams) (<-chan relaymodel.Chunk, error) {
	resp, err := g.Complete(ctx, requestedModel, messages, params)
	if err != nil {
		return nil, err
	}

	out := make(chan relaymodel.Chunk, 2)
	out <- relaymodel.Chunk{Delta: resp.Text}
	out <- relaymodel.Chunk{Terminal: true, FinishReason: resp.FinishReason}
	close(out)
	return out, nil
}

// pumpStream drives the chunk channel from the native event source,
// one event per chunk with no read-ahead. The finalizer guarantees the
// single-terminal-chunk contract on every exit path.
func pumpStream(ctx context.Context, es EventStream, adapter Adapter, out chan<- relaymodel.Chunk) {
	defer close(out)
	defer func() { _ = es.Close() }()

	fin := streamfinalizer.New(func(chunk relaymodel.Chunk) bool {
		select {
		case out <- chunk:
			return true
		case <-ctx.Done():
			return false
		}
	})

	for payload := range es.Events() {
		if !fin.Emit(adapter.ParseChunk(payload)) {
			return
		}
	}

	if err := es.Err(); err != nil {
		fin.FinishError(Classify(err))
		return
	}
	fin.FinishStop()
}

// marshalRequestBody serializes a native request, overlaying the
// caller's family-specific extra parameters verbatim on top of the
// typed body.
func marshalRequestBody(request any, extra map[string]any) ([]byte, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, &ClassifiedError{Kind: ErrKindModel, cause: errors.Wrap(err, "marshal request body")}
	}
	if len(extra) == 0 {
		return body, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(body, &merged); err != nil {
		return nil, &ClassifiedError{Kind: ErrKindModel, cause: errors.Wrap(err, "remarshal request body")}
	}
	for key, value := range extra {
		merged[key] = value
	}
	body, err = json.Marshal(merged)
	if err != nil {
		return nil, &ClassifiedError{Kind: ErrKindModel, cause: errors.Wrap(err, "marshal merged request body")}
	}
	return body, nil
}
