// Package instagram provides the profile page source for Instagram.
//
// No third-party API source is implemented for Instagram: there is no
// reliable free aggregator to call, so the page scrape is the only strategy
// and everything else degrades to the resolver's fallback record.
package instagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
	apperrors "github.com/hoangnm2602/social-parser-discord-bot/pkg/errors"
	"github.com/hoangnm2602/social-parser-discord-bot/pkg/logger"
)

const (
	pageBaseURL = "https://www.instagram.com"

	jsonLDSelector = `script[type="application/ld+json"]`

	followAction = "https://schema.org/FollowAction"
)

// personLD is the slice of a schema.org JSON-LD block this source reads.
type personLD struct {
	Type             string            `json:"@type"`
	MainEntityOfPage json.RawMessage   `json:"mainEntityOfPage"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Image            imageField        `json:"image"`
	Interactions     []interactionStat `json:"interactionStatistic"`
}

type interactionStat struct {
	InteractionType string   `json:"interactionType"`
	Count           looseInt `json:"userInteractionCount"`
}

// imageField accepts both the string and array forms Instagram has used.
type imageField struct {
	URL string
}

func (f *imageField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.URL = s
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil && len(list) > 0 {
		f.URL = list[0]
	}
	return nil
}

// looseInt accepts a count serialized as either a number or a quoted string.
type looseInt int64

func (n *looseInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*n = looseInt(v)
	return nil
}

// PageSource scrapes the public Instagram profile page for its structured
// data blocks.
type PageSource struct {
	http    *resty.Client
	logger  logger.Logger
	baseURL string
}

func NewPageSource(client *resty.Client, log logger.Logger) *PageSource {
	return &PageSource{
		http:    client,
		logger:  log,
		baseURL: pageBaseURL,
	}
}

func (s *PageSource) Name() string { return "instagram-page" }

func (s *PageSource) TryFetch(ctx context.Context, username string) (domain.Profile, error) {
	url := fmt.Sprintf("%s/%s/", s.baseURL, username)

	resp, err := s.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return domain.Profile{}, apperrors.Wrap(err, "fetch instagram profile page")
	}
	if resp.StatusCode() != 200 {
		return domain.Profile{}, fmt.Errorf("instagram profile page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return domain.Profile{}, apperrors.Wrap(err, "parse instagram profile page")
	}

	person, found := findPersonBlock(doc)
	if !found {
		return domain.Profile{}, apperrors.Wrap(apperrors.ErrNotFound, "no person entity on page")
	}

	displayName := person.Name
	if displayName == "" {
		displayName = username
	}

	profile := domain.Profile{
		Platform:    domain.PlatformInstagram,
		Username:    username,
		DisplayName: displayName,
		Bio:         person.Description,
		AvatarURL:   person.Image.URL,
	}

	// The page only exposes follower counts; following and post counts stay
	// unavailable on this path.
	for _, stat := range person.Interactions {
		if stat.InteractionType == followAction {
			profile.Followers = domain.KnownMetric(int64(stat.Count))
			break
		}
	}

	return profile, nil
}

// findPersonBlock scans the page's JSON-LD scripts in document order and
// stops at the first one describing a person entity. Blocks that fail to
// decode are skipped.
func findPersonBlock(doc *goquery.Document) (personLD, bool) {
	var person personLD
	found := false

	doc.Find(jsonLDSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var candidate personLD
		if err := json.Unmarshal([]byte(sel.Text()), &candidate); err != nil {
			return true
		}
		if candidate.Type == "Person" || hasEntity(candidate.MainEntityOfPage) {
			person = candidate
			found = true
			return false
		}
		return true
	})

	return person, found
}

func hasEntity(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
