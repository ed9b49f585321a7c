package logger

import (
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(cfg *config.Config) *Impl {
		return New(
			Opts{
				Env:       cfg.App.Env,
				SentryURL: cfg.App.SentryURL,
			},
		)
	},
	fx.As(new(Logger)),
)
