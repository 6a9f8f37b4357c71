// Command bedrockchat sends a single chat completion through the
// gateway, either as a whole response or streamed to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Laisky/zap"
	"github.com/joho/godotenv"

	"github.com/codefind-ai/bedrock-gateway/common/config"
	"github.com/codefind-ai/bedrock-gateway/common/logger"
	"github.com/codefind-ai/bedrock-gateway/relay/bedrock"
	relaymodel "github.com/codefind-ai/bedrock-gateway/relay/model"
)

func main() {
	_ = godotenv.Load()

	model := flag.String("model", "anthropic.claude-3-haiku-20240307-v1:0", "bedrock model id")
	prompt := flag.String("prompt", "", "user prompt")
	system := flag.String("system", "", "optional system prompt")
	stream := flag.Bool("stream", false, "stream the response")
	maxTokens := flag.Int("max-tokens", config.DefaultMaxTokens, "maximum tokens to generate")
	temperature := flag.Float64("temperature", 0, "sampling temperature")
	flag.Parse()

	if *prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: bedrockchat -prompt <text> [-model <id>] [-stream]")
		os.Exit(2)
	}

	ctx := context.Background()

	if status := bedrock.ValidateEnvironment(ctx, *model); !status.Ready {
		logger.Logger.Error("environment not ready", zap.Strings("missing", status.Missing))
		os.Exit(1)
	}

	invoker, err := bedrock.NewAWSInvokerForRegion(ctx, config.Region,
		os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"))
	if err != nil {
		logger.Logger.Error("create invoker", zap.Error(err))
		os.Exit(1)
	}

	gateway := bedrock.NewGateway(invoker, bedrock.NewResolver(invoker))

	var messages []relaymodel.Message
	if *system != "" {
		messages = append(messages, relaymodel.Message{Role: relaymodel.RoleSystem, Content: *system})
	}
	messages = append(messages, relaymodel.Message{Role: relaymodel.RoleUser, Content: *prompt})

	params := relaymodel.GenerationParams{
		Temperature: *temperature,
		MaxTokens:   *maxTokens,
	}

	logger.Logger.Debug("estimated prompt tokens",
		zap.Int("tokens", bedrock.EstimateMessageTokens(messages)))

	if *stream {
		runStream(ctx, gateway, *model, messages, params)
		return
	}

	resp, err := gateway.Complete(ctx, *model, messages, params)
	if err != nil {
		logger.Logger.Error("completion failed", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(resp.Text)
	logger.Logger.Debug("completion finished",
		zap.String("model", resp.Model),
		zap.String("finish_reason", resp.FinishReason),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))
}

func runStream(ctx context.Context, gateway *bedrock.Gateway, model string,
	messages []relaymodel.Message, params relaymodel.GenerationParams) {
	chunks, err := gateway.CompleteStream(ctx, model, messages, params)
	if err != nil {
		logger.Logger.Error("completion failed", zap.Error(err))
		os.Exit(1)
	}

	for chunk := range chunks {
		if chunk.Terminal {
			fmt.Println()
			if chunk.FinishReason == relaymodel.FinishError {
				logger.Logger.Error("stream failed", zap.String("error", chunk.ErrorText))
				os.Exit(1)
			}
			return
		}
		fmt.Print(chunk.Delta)
	}
}
