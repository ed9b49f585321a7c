package resolver

import (
	"context"

	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
)

type Client interface {
	// Resolve fetches a profile for a raw username (leading @ and whitespace
	// tolerated). It returns an error only when no record at all could be
	// produced; exhausted sources yield a degraded fallback record instead.
	Resolve(ctx context.Context, platform domain.Platform, rawUsername string) (domain.Profile, error)
}
