package config

import (
	"github.com/codefind-ai/bedrock-gateway/common/env"
)

var (
	// Region is the AWS region used for both model invocation and
	// inference-profile listing.
	Region = env.String("AWS_REGION", "us-west-2")

	// DisableStreaming force-disables streaming completions regardless of
	// what the caller requests; the gateway falls back to the synchronous
	// path transparently.
	DisableStreaming = env.Bool("BEDROCK_DISABLE_STREAMING", false)

	// DefaultMaxTokens caps generation when the caller supplies no limit.
	DefaultMaxTokens = env.Int("DEFAULT_MAX_TOKENS", 4096)

	// DebugEnabled toggles verbose structured logging when DEBUG=true.
	DebugEnabled = env.Bool("DEBUG", false)
)
