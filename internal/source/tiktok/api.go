package tiktok

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
	apperrors "github.com/hoangnm2602/social-parser-discord-bot/pkg/errors"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/logger"
)

const apiBaseURL = "https://api.tiklydown.eu.org"

// userInfoResponse is the aggregator's schema. Its field names use snake_case
// and differ from the page hydration payload, so the mapping into the profile
// record is spelled out field by field.
type userInfoResponse struct {
	Status int `json:"status"`
	Result struct {
		UniqueID       string        `json:"unique_id"`
		Nickname       string        `json:"nickname"`
		FollowerCount  int64         `json:"follower_count"`
		FollowingCount int64         `json:"following_count"`
		HeartCount     int64         `json:"heart_count"`
		Verified       bool          `json:"verified"`
		Signature      string        `json:"signature"`
		Avatar300      avatarVariant `json:"avatar_300x300"`
		Avatar168      avatarVariant `json:"avatar_168x168"`
	} `json:"result"`
}

type avatarVariant struct {
	URLList []string `json:"url_list"`
}

// APISource queries a public third-party TikTok aggregator.
type APISource struct {
	http    *resty.Client
	logger  logger.Logger
	baseURL string
}

func NewAPISource(client *resty.Client, log logger.Logger) *APISource {
	return &APISource{
		http:    client,
		logger:  log,
		baseURL: apiBaseURL,
	}
}

func (s *APISource) Name() string { return "tiktok-api" }

func (s *APISource) TryFetch(ctx context.Context, username string) (domain.Profile, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("username", username).
		Get(s.baseURL + "/api/user/info")
	if err != nil {
		return domain.Profile{}, apperrors.Wrap(err, "fetch tiktok aggregator")
	}
	if resp.StatusCode() != 200 {
		return domain.Profile{}, apperrors.Wrap(apperrors.ErrNotFound, "aggregator rejected the request")
	}

	var payload userInfoResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return domain.Profile{}, apperrors.Wrap(apperrors.ErrNotFound, "aggregator payload is not valid JSON")
	}
	if payload.Status != 200 || payload.Result.UniqueID == "" {
		return domain.Profile{}, apperrors.Wrap(apperrors.ErrNotFound, "aggregator has no data for user")
	}

	r := payload.Result
	return domain.Profile{
		Platform:    domain.PlatformTikTok,
		Username:    r.UniqueID,
		DisplayName: r.Nickname,
		Followers:   domain.KnownMetric(r.FollowerCount),
		Following:   domain.KnownMetric(r.FollowingCount),
		Likes:       domain.KnownMetric(r.HeartCount),
		Verified:    r.Verified,
		Bio:         r.Signature,
		AvatarURL:   firstAvatar(r.Avatar300, r.Avatar168),
	}, nil
}

func firstAvatar(variants ...avatarVariant) string {
	for _, v := range variants {
		if len(v.URLList) > 0 {
			return v.URLList[0]
		}
	}
	return ""
}
