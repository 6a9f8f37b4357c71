package bedrock

import (
	"context"
	"strings"

	"github.com/Laisky/zap"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/codefind-ai/bedrock-gateway/common/config"
	"github.com/codefind-ai/bedrock-gateway/common/logger"
)

// EnvironmentStatus reports whether a completion against the given
// model could succeed with the current process environment.
type EnvironmentStatus struct {
	Ready   bool
	Missing []string
}

// ValidateEnvironment pre-flights credential and model readiness
// without performing a completion. Credentials are resolved through the
// default AWS chain, so static keys, a shared profile, and instance
// roles all count.
func ValidateEnvironment(ctx context.Context, model string) EnvironmentStatus {
	modelID := strings.TrimPrefix(model, gatewayPrefix)
	if _, err := FamilyOf(modelID); err != nil {
		return EnvironmentStatus{Missing: []string{"SUPPORTED_BEDROCK_MODEL"}}
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.Region))
	if err != nil {
		logger.Logger.Debug("load aws config failed", zap.Error(err))
		return EnvironmentStatus{Missing: []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"}}
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		logger.Logger.Debug("no resolvable aws credentials", zap.Error(err))
		return EnvironmentStatus{Missing: []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"}}
	}

	return EnvironmentStatus{Ready: true, Missing: []string{}}
}
