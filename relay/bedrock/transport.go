package bedrock

import "context"

// Invoker is the pre-authenticated, family-agnostic invocation handle
// the gateway runs on. Implementations must be safe for concurrent
// independent calls; the gateway performs no locking around them.
type Invoker interface {
	// InvokeModel sends a JSON request body to a deployment and returns
	// the raw JSON response body.
	InvokeModel(ctx context.Context, modelID string, body []byte) ([]byte, error)

	// InvokeModelStream sends a JSON request body and returns an ordered
	// event source of raw JSON fragments.
	InvokeModelStream(ctx context.Context, modelID string, body []byte) (EventStream, error)
}

// EventStream is a single-consumer, forward-only sequence of native
// stream events. Events is closed when the source is exhausted or
// fails; Err reports the failure, if any, after Events closes. Close
// releases the underlying source and is safe to call at any point,
// including when the consumer abandons iteration early.
type EventStream interface {
	Events() <-chan []byte
	Err() error
	Close() error
}
