// Package source defines one fetching strategy per upstream. Strategies are
// tried in order by the resolver; a source signals "no usable data" with
// errors.ErrNotFound and may return any other error on network or parse
// failures. Neither outcome aborts a resolution.
package source

import (
	"context"

	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
)

type Source interface {
	// Name identifies the source in logs.
	Name() string

	// TryFetch attempts to build a profile record for a normalized username
	// (no leading @). It returns errors.ErrNotFound when the upstream had no
	// usable data for the user or the payload shape did not match.
	TryFetch(ctx context.Context, username string) (domain.Profile, error)
}
