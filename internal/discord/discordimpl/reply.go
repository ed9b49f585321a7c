package discordimpl

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/retry"
)

// DeferReply acknowledges an interaction immediately so the 3 second
// interaction deadline is not tripped by a slow upstream fetch.
func (d *DiscordImpl) DeferReply(i *discordgo.Interaction) error {
	return d.Session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// EditReplyEmbed replaces the deferred response with an embed. Delivery is
// retried because Discord API hiccups here would otherwise drop an already
// resolved profile.
func (d *DiscordImpl) EditReplyEmbed(ctx context.Context, i *discordgo.Interaction, embed *discordgo.MessageEmbed) error {
	return retry.Do(ctx, d.Logger, "EditReplyEmbed", func() error {
		_, err := d.Session.InteractionResponseEdit(i, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		})
		return err
	}, retry.DefaultConfig())
}

// EditReplyContent replaces the deferred response with plain text.
func (d *DiscordImpl) EditReplyContent(ctx context.Context, i *discordgo.Interaction, content string) error {
	return retry.Do(ctx, d.Logger, "EditReplyContent", func() error {
		_, err := d.Session.InteractionResponseEdit(i, &discordgo.WebhookEdit{
			Content: &content,
		})
		return err
	}, retry.DefaultConfig())
}

// ReplyEphemeral responds with a message only the invoking user can see.
func (d *DiscordImpl) ReplyEphemeral(i *discordgo.Interaction, content string) error {
	return d.Session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
