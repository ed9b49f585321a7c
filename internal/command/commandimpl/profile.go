package commandimpl

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/presenter"
)

var platformByCommand = map[string]domain.Platform{
	"tiktok-user":    domain.PlatformTikTok,
	"instagram-user": domain.PlatformInstagram,
}

func (c *CommandImpl) HandleInteraction(ctx context.Context, _ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error("Panic recovered while processing an interaction",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	data := i.ApplicationCommandData()
	platform, ok := platformByCommand[data.Name]
	if !ok {
		return
	}

	userID := interactionUserID(i)
	if !c.Limiter.Allow(userID) {
		if err := c.Discord.ReplyEphemeral(i.Interaction, "You're sending commands too quickly. Please wait a moment."); err != nil {
			c.Logger.Error("Failed to send rate limit notice", "user", userID, "error", err)
		}
		return
	}

	username := optionString(data, "username")
	c.Logger.Info("Profile command received",
		"command", data.Name,
		"username", username,
		"user", userID)

	if err := c.Discord.DeferReply(i.Interaction); err != nil {
		c.Logger.Error("Failed to defer interaction reply", "command", data.Name, "error", err)
		return
	}

	profile, err := c.Resolver.Resolve(ctx, platform, username)
	if err != nil {
		c.Logger.Error("Profile resolution failed",
			"command", data.Name,
			"username", username,
			"error", err)
		if editErr := c.Discord.EditReplyContent(ctx, i.Interaction, fmt.Sprintf("❌ Error: %v", err)); editErr != nil {
			c.Logger.Error("Failed to deliver error reply", "error", editErr)
		}
		return
	}

	if err := c.Discord.EditReplyEmbed(ctx, i.Interaction, presenter.Embed(profile)); err != nil {
		c.Logger.Error("Failed to deliver profile embed",
			"command", data.Name,
			"username", profile.Username,
			"error", err)
	}
}

func optionString(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// interactionUserID works for both guild interactions (Member set) and DM
// interactions (User set).
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
