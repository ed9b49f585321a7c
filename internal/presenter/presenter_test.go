package presenter

import (
	"strings"
	"testing"

	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedVerifiedTikTokProfile(t *testing.T) {
	embed := Embed(domain.Profile{
		Platform:    domain.PlatformTikTok,
		Username:    "alice",
		DisplayName: "Alice Doe",
		Followers:   domain.KnownMetric(1_234_567),
		Following:   domain.KnownMetric(321),
		Likes:       domain.KnownMetric(89_000),
		Verified:    true,
		Bio:         "hello world",
		AvatarURL:   "https://cdn.example.com/alice.jpg",
		ProfileURL:  "https://www.tiktok.com/@alice",
	})

	assert.Equal(t, "Alice Doe (@alice) ✅", embed.Title)
	assert.True(t, strings.HasSuffix(embed.Title, "✅"))
	assert.Equal(t, "https://www.tiktok.com/@alice", embed.URL)
	assert.Equal(t, 0x000000, embed.Color)
	assert.Equal(t, "hello world", embed.Description)

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "👥 Followers", embed.Fields[0].Name)
	assert.Equal(t, "1.2M", embed.Fields[0].Value)
	assert.Equal(t, "➕ Following", embed.Fields[1].Name)
	assert.Equal(t, "❤️ Likes", embed.Fields[2].Name)
	assert.Equal(t, "89.0K", embed.Fields[2].Value)
	for _, f := range embed.Fields {
		assert.True(t, f.Inline)
	}

	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://cdn.example.com/alice.jpg", embed.Thumbnail.URL)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "TikTok Profile", embed.Footer.Text)
	assert.NotEmpty(t, embed.Timestamp)
}

func TestEmbedInstagramUsesPostsField(t *testing.T) {
	embed := Embed(domain.Profile{
		Platform:    domain.PlatformInstagram,
		Username:    "bob",
		DisplayName: "Bob",
		Followers:   domain.KnownMetric(1000),
		Posts:       domain.KnownMetric(12),
		ProfileURL:  "https://www.instagram.com/bob/",
	})

	assert.Equal(t, 0xE4405F, embed.Color)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "📸 Posts", embed.Fields[2].Name)
	assert.Equal(t, "12", embed.Fields[2].Value)
	assert.Equal(t, "Instagram Profile", embed.Footer.Text)
}

func TestEmbedOmitsFallbackBio(t *testing.T) {
	embed := Embed(domain.NewFallbackProfile(domain.PlatformInstagram, "bob"))

	assert.Equal(t, "bob (@bob)", embed.Title)
	assert.Empty(t, embed.Description, "the fallback notice must not be rendered as a bio")
	assert.Nil(t, embed.Thumbnail)

	require.Len(t, embed.Fields, 3)
	for _, f := range embed.Fields {
		assert.Equal(t, "N/A", f.Value)
	}
}

func TestEmbedOmitsEmptyBio(t *testing.T) {
	embed := Embed(domain.Profile{
		Platform:    domain.PlatformTikTok,
		Username:    "alice",
		DisplayName: "Alice",
	})
	assert.Empty(t, embed.Description)
}

func TestEmbedKeepsGenuineBio(t *testing.T) {
	embed := Embed(domain.Profile{
		Platform:    domain.PlatformTikTok,
		Username:    "alice",
		DisplayName: "Alice",
		Bio:         "genuine bio",
	})
	assert.Equal(t, "genuine bio", embed.Description)
}

func TestEmbedUnverifiedTitleHasNoBadge(t *testing.T) {
	embed := Embed(domain.Profile{
		Platform:    domain.PlatformTikTok,
		Username:    "alice",
		DisplayName: "Alice",
	})
	assert.Equal(t, "Alice (@alice)", embed.Title)
}
