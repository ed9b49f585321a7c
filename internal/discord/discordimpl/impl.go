package discordimpl

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/discord"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/config"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/logger"
	"go.uber.org/fx"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "tiktok-user",
		Description: "Get TikTok user profile information",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "username",
				Description: "TikTok username",
				Required:    true,
			},
		},
	},
	{
		Name:        "instagram-user",
		Description: "Get Instagram user profile information",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "username",
				Description: "Instagram username",
				Required:    true,
			},
		},
	},
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type DiscordImpl struct {
	Session *discordgo.Session
	Logger  logger.Logger
	Config  *config.Config
}

func New(opts Opts) (*DiscordImpl, error) {
	session, err := discordgo.New("Bot " + opts.Config.Discord.Token)
	if err != nil {
		opts.Logger.Error("Error creating Discord session", "error", err)
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return &DiscordImpl{
		Session: session,
		Logger:  opts.Logger,
		Config:  opts.Config,
	}, nil
}

var _ discord.Client = (*DiscordImpl)(nil)

func (d *DiscordImpl) Open() error {
	if err := d.Session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway session: %w", err)
	}
	d.Logger.Info("Discord session opened")
	return nil
}

func (d *DiscordImpl) Close() error {
	return d.Session.Close()
}

func (d *DiscordImpl) RegisterCommands(_ context.Context) error {
	guildID := d.Config.Discord.GuildID
	scope := "global"
	if guildID != "" {
		scope = "guild " + guildID
	}

	_, err := d.Session.ApplicationCommandBulkOverwrite(d.Config.Discord.AppID, guildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands (%s): %w", scope, err)
	}

	d.Logger.Info("Slash commands registered", "scope", scope, "count", len(commands))
	return nil
}

func (d *DiscordImpl) AddInteractionHandler(h func(s *discordgo.Session, i *discordgo.InteractionCreate)) {
	d.Session.AddHandler(h)
}
