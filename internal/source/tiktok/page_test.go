package tiktok

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	apperrors "github.com/hoangnm2602/social-parser-discord-bot/pkg/errors"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hydrationJSON = `{
	"__DEFAULT_SCOPE__": {
		"webapp.user-detail": {
			"userInfo": {
				"user": {
					"uniqueId": "alice",
					"nickname": "Alice Doe",
					"verified": true,
					"signature": "hello world",
					"avatarMedium": "https://cdn.example.com/alice.jpg"
				},
				"stats": {
					"followerCount": 1234567,
					"followingCount": 321,
					"heartCount": 89000
				}
			}
		}
	}
}`

func newPageTestSource(url string) *PageSource {
	src := NewPageSource(resty.New(), logger.NewNop())
	src.baseURL = url
	return src
}

func TestPageSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/@alice", r.URL.Path)
		fmt.Fprintf(w, `<html><body><script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">%s</script></body></html>`, hydrationJSON)
	}))
	defer srv.Close()

	profile, err := newPageTestSource(srv.URL).TryFetch(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice Doe", profile.DisplayName)
	assert.Equal(t, int64(1234567), profile.Followers.Value)
	assert.True(t, profile.Followers.Known)
	assert.Equal(t, int64(321), profile.Following.Value)
	assert.Equal(t, int64(89000), profile.Likes.Value)
	assert.True(t, profile.Verified)
	assert.Equal(t, "hello world", profile.Bio)
	assert.Equal(t, "https://cdn.example.com/alice.jpg", profile.AvatarURL)
}

func TestPageSourceNoHydrationScript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer srv.Close()

	_, err := newPageTestSource(srv.URL).TryFetch(context.Background(), "alice")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPageSourceMalformedHydrationPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><script id="__UNIVERSAL_DATA_FOR_REHYDRATION__">{not json</script></body></html>`)
	}))
	defer srv.Close()

	_, err := newPageTestSource(srv.URL).TryFetch(context.Background(), "alice")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPageSourceMissingUserDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><script id="__UNIVERSAL_DATA_FOR_REHYDRATION__">{"__DEFAULT_SCOPE__":{}}</script></body></html>`)
	}))
	defer srv.Close()

	_, err := newPageTestSource(srv.URL).TryFetch(context.Background(), "alice")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPageSourceUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newPageTestSource(srv.URL).TryFetch(context.Background(), "alice")
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err), "a blocked request is a transient failure, not a clean miss")
}
