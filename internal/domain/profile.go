package domain

import "fmt"

// Platform identifies a supported social network.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
)

// ProfileURL returns the canonical public profile URL for a normalized
// username. The URL is always derived here, never taken from an upstream.
func (p Platform) ProfileURL(username string) string {
	if p == PlatformInstagram {
		return fmt.Sprintf("https://www.instagram.com/%s/", username)
	}
	return fmt.Sprintf("https://www.tiktok.com/@%s", username)
}

// FallbackBio marks a profile whose details could not be fetched from any
// source. Compared by equality at presentation time so the message is not
// rendered twice.
const FallbackBio = "Unable to fetch detailed information"

// Metric is a profile counter that may not have been retrievable. Known is
// false when the field exists on the platform but no source could supply it,
// which is distinct from a counter that is genuinely zero.
type Metric struct {
	Value int64
	Known bool
}

// KnownMetric wraps a retrieved counter value.
func KnownMetric(v int64) Metric {
	return Metric{Value: v, Known: true}
}

// Profile is the normalized result of a resolution, regardless of which
// platform or source produced it.
type Profile struct {
	Platform    Platform
	Username    string
	DisplayName string
	Followers   Metric
	Following   Metric
	Likes       Metric // TikTok only
	Posts       Metric // Instagram only
	Verified    bool
	Bio         string
	AvatarURL   string // empty when no avatar exists
	ProfileURL  string
}

// NewFallbackProfile builds the degraded record returned when every source
// failed. Username and ProfileURL are still populated from the request.
func NewFallbackProfile(platform Platform, username string) Profile {
	return Profile{
		Platform:    platform,
		Username:    username,
		DisplayName: username,
		Bio:         FallbackBio,
		ProfileURL:  platform.ProfileURL(username),
	}
}
