package bedrock

import (
	"strings"
)

// Family identifies the wire-protocol dialect a deployment speaks.
type Family int

const (
	FamilyAnthropic Family = iota + 1
	FamilyTitan
	FamilyLlama
)

func (f Family) String() string {
	switch f {
	case FamilyAnthropic:
		return "anthropic"
	case FamilyTitan:
		return "titan"
	case FamilyLlama:
		return "llama"
	default:
		return "unknown"
	}
}

// FamilyOf classifies a deployment id by provider substring. The id's
// qualification prefix never changes its family, so classification is a
// pure function of the id text and is computed fresh on every call.
// Unrecognized ids are a hard ModelError, never a silent default.
func FamilyOf(modelID string) (Family, error) {
	lower := strings.ToLower(modelID)
	switch {
	case strings.Contains(lower, "anthropic"):
		return FamilyAnthropic, nil
	case strings.Contains(lower, "amazon.titan"):
		return FamilyTitan, nil
	case strings.Contains(lower, "meta.llama"):
		return FamilyLlama, nil
	default:
		return 0, NewModelError("unsupported model type: %s", modelID)
	}
}
