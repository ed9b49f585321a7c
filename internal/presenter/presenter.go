// Package presenter maps a resolved profile record onto a Discord embed.
package presenter

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/formatter"
)

type style struct {
	color      int
	footerText string
	footerIcon string
	thirdField string
}

// Static per-platform presentation, not computed.
var styles = map[domain.Platform]style{
	domain.PlatformTikTok: {
		color:      0x000000,
		footerText: "TikTok Profile",
		footerIcon: "https://cdn-icons-png.flaticon.com/512/3046/3046126.png",
		thirdField: "❤️ Likes",
	},
	domain.PlatformInstagram: {
		color:      0xE4405F,
		footerText: "Instagram Profile",
		footerIcon: "https://cdn-icons-png.flaticon.com/512/2111/2111463.png",
		thirdField: "📸 Posts",
	},
}

// Embed renders a profile card. Degraded records render the same way, just
// with N/A metrics and without the fallback notice duplicated as description.
func Embed(p domain.Profile) *discordgo.MessageEmbed {
	st := styles[p.Platform]

	title := fmt.Sprintf("%s (@%s)", p.DisplayName, p.Username)
	if p.Verified {
		title += " ✅"
	}

	third := p.Likes
	if p.Platform == domain.PlatformInstagram {
		third = p.Posts
	}

	embed := &discordgo.MessageEmbed{
		Title: title,
		URL:   p.ProfileURL,
		Color: st.color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👥 Followers", Value: formatter.FormatMetric(p.Followers), Inline: true},
			{Name: "➕ Following", Value: formatter.FormatMetric(p.Following), Inline: true},
			{Name: st.thirdField, Value: formatter.FormatMetric(third), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    st.footerText,
			IconURL: st.footerIcon,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if p.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.AvatarURL}
	}

	if p.Bio != "" && p.Bio != domain.FallbackBio {
		embed.Description = p.Bio
	}

	return embed
}
