package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/command"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/command/commandimpl"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/discord"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/discord/discordimpl"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/ratelimit"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/resolver"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/resolver/resolverimpl"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/config"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/httpclient"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		httpclient.New,
		newLimiter,
	),
	fx.Provide(
		fx.Annotate(
			discordimpl.New,
			fx.As(new(discord.Client)),
		), fx.Annotate(
			resolverimpl.New,
			fx.As(new(resolver.Client)),
		), fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	fx.Invoke(run),
)

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, dcClient discord.Client, cmdClient command.Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go startHttpServer(log, cfg)

			dcClient.AddInteractionHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
				// Each invocation is an independent unit of work.
				cmdClient.HandleInteraction(context.Background(), s, i)
			})

			if err := dcClient.Open(); err != nil {
				return err
			}

			if err := dcClient.RegisterCommands(ctx); err != nil {
				log.Error("Command registration error", "error", err)
				return err
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return dcClient.Close()
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
