package commandimpl

import (
	"github.com/hoangnm2602/social-parser-discord-bot/internal/command"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/discord"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/ratelimit"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/resolver"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/config"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Discord  discord.Client
	Resolver resolver.Client
	Limiter  ratelimit.Limiter
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Discord  discord.Client
	Resolver resolver.Client
	Limiter  ratelimit.Limiter
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Discord:  opts.Discord,
		Resolver: opts.Resolver,
		Limiter:  opts.Limiter,
		Logger:   opts.Logger,
		Config:   opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)
