package bedrock

import (
	"context"
	"strings"

	"github.com/Laisky/zap"
	gocache "github.com/patrickmn/go-cache"

	"github.com/codefind-ai/bedrock-gateway/common/logger"
)

// gatewayPrefix is the provider-gateway prefix callers may attach to a
// deployment id; it is stripped before resolution.
const gatewayPrefix = "bedrock/"

// regionPrefixes are the qualification prefixes inference profiles use.
var regionPrefixes = []string{"us", "eu", "ap", "ca", "sa", "af", "me"}

// ProfileLister lists the currently available region-qualified
// deployments (inference profiles) from the service.
type ProfileLister interface {
	ListInferenceProfiles(ctx context.Context) ([]string, error)
}

// Resolver maps a requested model id to the best available backing
// deployment. A qualified id is preferred over its base form because
// inference profiles provide pooled cross-region throughput; the
// resolver never downgrades a caller-supplied qualified id.
//
// The base-id to profile-id index is process-wide, populated lazily on
// first use, and never invalidated. Population is idempotent, so
// concurrent resolvers racing to fill it converge on the same entries;
// a failed listing leaves the index empty and resolution degrades to
// identity until a later fetch succeeds.
type Resolver struct {
	lister   ProfileLister
	profiles *gocache.Cache
}

// NewResolver returns a Resolver backed by the given profile lister.
// A nil lister disables qualification entirely.
func NewResolver(lister ProfileLister) *Resolver {
	return &Resolver{
		lister:   lister,
		profiles: gocache.New(gocache.NoExpiration, 0),
	}
}

// Resolve returns the deployment id to invoke for the requested model.
// It never fails: every degradation path falls back to the literal
// requested id (minus the gateway prefix). The result is never empty
// for a non-empty input.
func (r *Resolver) Resolve(ctx context.Context, requestedModel string) string {
	modelID := strings.TrimPrefix(requestedModel, gatewayPrefix)

	// Already qualified: trust the caller.
	if IsQualifiedID(modelID) {
		return modelID
	}

	r.populate(ctx)

	if qualified, ok := r.profiles.Get(modelID); ok {
		return qualified.(string)
	}
	return modelID
}

// populate fills the profile index on first use. While the index is
// empty every call retries the listing; once any entries exist the
// listing is not repeated for the life of the process.
func (r *Resolver) populate(ctx context.Context) {
	if r.lister == nil || r.profiles.ItemCount() > 0 {
		return
	}

	profileIDs, err := r.lister.ListInferenceProfiles(ctx)
	if err != nil {
		logger.Logger.Warn("could not fetch inference profiles, using base model ids",
			zap.Error(err))
		return
	}

	for _, profileID := range profileIDs {
		base, ok := BaseID(profileID)
		if !ok {
			continue
		}
		r.profiles.Set(base, profileID, gocache.NoExpiration)
	}
}

// IsQualifiedID reports whether a deployment id carries a recognized
// region qualification prefix.
func IsQualifiedID(modelID string) bool {
	for _, prefix := range regionPrefixes {
		if strings.HasPrefix(modelID, prefix+".") {
			return true
		}
	}
	return false
}

// BaseID strips the leading region prefix from a qualified id, e.g.
// "us.anthropic.claude-3-haiku-20240307-v1:0" yields
// "anthropic.claude-3-haiku-20240307-v1:0". The second return is false
// when the id carries no recognized qualification.
func BaseID(profileID string) (string, bool) {
	if !IsQualifiedID(profileID) {
		return profileID, false
	}
	parts := strings.SplitN(profileID, ".", 2)
	if len(parts) != 2 || parts[1] == "" {
		return profileID, false
	}
	return parts[1], true
}
