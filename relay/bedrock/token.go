package bedrock

import (
	"sync"

	"github.com/Laisky/zap"
	"github.com/pkoukk/tiktoken-go"

	"github.com/codefind-ai/bedrock-gateway/common/logger"
	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

// Token counts here are approximations for context budgeting, not
// billing. cl100k is close enough across the supported families; when
// the encoding cannot be loaded the estimate falls back to the rough
// four-characters-per-token heuristic.

const fallbackCharsPerToken = 4

var (
	tokenEncoderOnce sync.Once
	tokenEncoder     *tiktoken.Tiktoken
)

func encoder() *tiktoken.Tiktoken {
	tokenEncoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			logger.Logger.Debug("tiktoken encoding unavailable, using char heuristic",
				zap.Error(err))
			return
		}
		tokenEncoder = enc
	})
	return tokenEncoder
}

// EstimateTokens approximates the token count of a text.
func EstimateTokens(text string) int {
	if enc := encoder(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len(text) / fallbackCharsPerToken
}

// EstimateMessageTokens approximates the prompt token count of a
// message list.
func EstimateMessageTokens(messages []relaymodel.Message) int {
	var total int
	for _, msg := range messages {
		total += EstimateTokens(msg.Content)
	}
	return total
}
