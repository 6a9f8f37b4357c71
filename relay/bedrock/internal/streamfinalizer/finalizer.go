// Package streamfinalizer guarantees that a chunk stream ends with
// exactly one terminal chunk, whatever order success, failure, or
// consumer abandonment arrive in.
package streamfinalizer

import (
	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

// Emitter delivers one chunk to the consumer. It returns false when the
// consumer is gone and production should stop.
type Emitter func(relaymodel.Chunk) bool

type Finalizer struct {
	emit         Emitter
	terminalSent bool
}

func New(emit Emitter) *Finalizer {
	return &Finalizer{emit: emit}
}

// Emit forwards a non-terminal chunk. Chunks arriving after the
// terminal one are dropped.
func (f *Finalizer) Emit(chunk relaymodel.Chunk) bool {
	if f.terminalSent {
		return false
	}
	chunk.Terminal = false
	chunk.FinishReason = ""
	chunk.ErrorText = ""
	return f.emit(chunk)
}

// FinishStop emits the clean end-of-stream terminal chunk.
func (f *Finalizer) FinishStop() bool {
	return f.finish(relaymodel.TerminalChunk())
}

// FinishError emits the terminal chunk reporting a mid-stream failure.
func (f *Finalizer) FinishError(err error) bool {
	return f.finish(relaymodel.ErrorChunk(err))
}

func (f *Finalizer) finish(chunk relaymodel.Chunk) bool {
	if f.terminalSent {
		return true
	}
	f.terminalSent = true
	return f.emit(chunk)
}

// TerminalSent reports whether the stream has been finalized.
func (f *Finalizer) TerminalSent() bool {
	return f.terminalSent
}
