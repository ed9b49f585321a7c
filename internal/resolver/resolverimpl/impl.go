package resolverimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/resolver"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/source"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/source/instagram"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/source/tiktok"
	apperrors "github.com/hoangnm2602/social-parser-discord-bot/pkg/errors"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	HTTP   *resty.Client
	Logger logger.Logger
}

type ResolverImpl struct {
	logger logger.Logger

	// Declaration order is priority order. Adding, removing or reordering an
	// upstream is an edit to this table only.
	chains map[domain.Platform][]source.Source
}

func New(opts Opts) *ResolverImpl {
	return newResolver(opts.Logger, map[domain.Platform][]source.Source{
		domain.PlatformTikTok: {
			tiktok.NewPageSource(opts.HTTP, opts.Logger),
			tiktok.NewAPISource(opts.HTTP, opts.Logger),
		},
		domain.PlatformInstagram: {
			instagram.NewPageSource(opts.HTTP, opts.Logger),
		},
	})
}

func newResolver(log logger.Logger, chains map[domain.Platform][]source.Source) *ResolverImpl {
	return &ResolverImpl{
		logger: log,
		chains: chains,
	}
}

var _ resolver.Client = (*ResolverImpl)(nil)

func (r *ResolverImpl) Resolve(ctx context.Context, platform domain.Platform, rawUsername string) (domain.Profile, error) {
	username := NormalizeUsername(rawUsername)
	if username == "" {
		return domain.Profile{}, apperrors.Wrap(apperrors.ErrInvalidInput, "username is empty")
	}

	sources, ok := r.chains[platform]
	if !ok {
		return domain.Profile{}, fmt.Errorf("unsupported platform %q", platform)
	}

	// Strictly sequential: the first source to produce a record wins, and a
	// later source is only paid for when an earlier one came up empty.
	for _, src := range sources {
		profile, err := src.TryFetch(ctx, username)
		if err == nil {
			return r.canonicalize(platform, username, profile), nil
		}
		if apperrors.IsNotFound(err) {
			r.logger.Debug("source has no data for user",
				"source", src.Name(),
				"platform", platform,
				"username", username,
				"reason", err)
			continue
		}
		r.logger.Warn("source failed, trying next",
			"source", src.Name(),
			"platform", platform,
			"username", username,
			"error", err)
	}

	r.logger.Info("all sources exhausted, returning fallback record",
		"platform", platform,
		"username", username)
	return domain.NewFallbackProfile(platform, username), nil
}

// canonicalize enforces the resolver-owned fields. The profile URL is always
// derived from the requested username, never taken from an upstream.
func (r *ResolverImpl) canonicalize(platform domain.Platform, username string, profile domain.Profile) domain.Profile {
	profile.Platform = platform
	profile.ProfileURL = platform.ProfileURL(username)
	if profile.Username == "" {
		profile.Username = username
	}
	if profile.DisplayName == "" {
		profile.DisplayName = profile.Username
	}
	return profile
}

// NormalizeUsername strips surrounding whitespace and a leading @ so that
// "@user" and "user" resolve identically.
func NormalizeUsername(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "@")
}
