package httpclient

import (
	"github.com/go-resty/resty/v2"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/config"
)

// Browser-like headers reduce anti-bot rejections on profile pages.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// New builds the shared HTTP client used by all profile sources. The timeout
// bounds every source attempt so a stuck upstream cannot hang a resolution.
func New(cfg *config.Config) *resty.Client {
	client := resty.New()
	client.SetTimeout(cfg.HTTP.Timeout)
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")
	return client
}
