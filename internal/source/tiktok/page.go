// Package tiktok provides profile sources for TikTok: a public profile page
// scrape and a third-party aggregator API.
package tiktok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
	apperrors "github.com/hoangnm2602/social-parser-discord-bot/pkg/errors"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/logger"
)

const (
	pageBaseURL = "https://www.tiktok.com"

	// Script element embedding the page's hydration state as JSON.
	universalDataSelector = `script#__UNIVERSAL_DATA_FOR_REHYDRATION__`
)

// universalData mirrors the slice of TikTok's hydration payload this source
// reads. Fields missing from the page decode to zero values and are treated
// as not found.
type universalData struct {
	DefaultScope struct {
		UserDetail struct {
			UserInfo struct {
				User struct {
					UniqueID     string `json:"uniqueId"`
					Nickname     string `json:"nickname"`
					Verified     bool   `json:"verified"`
					Signature    string `json:"signature"`
					AvatarMedium string `json:"avatarMedium"`
				} `json:"user"`
				Stats struct {
					FollowerCount  int64 `json:"followerCount"`
					FollowingCount int64 `json:"followingCount"`
					HeartCount     int64 `json:"heartCount"`
				} `json:"stats"`
			} `json:"userInfo"`
		} `json:"webapp.user-detail"`
	} `json:"__DEFAULT_SCOPE__"`
}

// PageSource scrapes the public TikTok profile page.
type PageSource struct {
	http    *resty.Client
	logger  logger.Logger
	baseURL string
}

func NewPageSource(client *resty.Client, log logger.Logger) *PageSource {
	return &PageSource{
		http:    client,
		logger:  log,
		baseURL: pageBaseURL,
	}
}

func (s *PageSource) Name() string { return "tiktok-page" }

func (s *PageSource) TryFetch(ctx context.Context, username string) (domain.Profile, error) {
	url := fmt.Sprintf("%s/@%s", s.baseURL, username)

	resp, err := s.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return domain.Profile{}, apperrors.Wrap(err, "fetch tiktok profile page")
	}
	if resp.StatusCode() != 200 {
		return domain.Profile{}, fmt.Errorf("tiktok profile page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return domain.Profile{}, apperrors.Wrap(err, "parse tiktok profile page")
	}

	raw := doc.Find(universalDataSelector).First().Text()
	if raw == "" {
		return domain.Profile{}, apperrors.Wrap(apperrors.ErrNotFound, "no hydration script on page")
	}

	var payload universalData
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.Profile{}, apperrors.Wrap(apperrors.ErrNotFound, "hydration payload is not valid JSON")
	}

	info := payload.DefaultScope.UserDetail.UserInfo
	if info.User.UniqueID == "" {
		return domain.Profile{}, apperrors.Wrap(apperrors.ErrNotFound, "hydration payload has no user detail")
	}

	return domain.Profile{
		Platform:    domain.PlatformTikTok,
		Username:    info.User.UniqueID,
		DisplayName: info.User.Nickname,
		Followers:   domain.KnownMetric(info.Stats.FollowerCount),
		Following:   domain.KnownMetric(info.Stats.FollowingCount),
		Likes:       domain.KnownMetric(info.Stats.HeartCount),
		Verified:    info.User.Verified,
		Bio:         info.User.Signature,
		AvatarURL:   info.User.AvatarMedium,
	}, nil
}
