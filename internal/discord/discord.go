package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type Client interface {
	Open() error
	Close() error

	// RegisterCommands overwrites the application's slash commands, scoped to
	// the configured guild when one is set (instant) or globally otherwise.
	RegisterCommands(ctx context.Context) error

	AddInteractionHandler(h func(s *discordgo.Session, i *discordgo.InteractionCreate))

	DeferReply(i *discordgo.Interaction) error
	EditReplyEmbed(ctx context.Context, i *discordgo.Interaction, embed *discordgo.MessageEmbed) error
	EditReplyContent(ctx context.Context, i *discordgo.Interaction, content string) error
	ReplyEphemeral(i *discordgo.Interaction, content string) error
}
