package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type Client interface {
	// HandleInteraction processes one slash-command invocation end to end:
	// resolve the profile, render it, deliver the reply.
	HandleInteraction(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate)
}
