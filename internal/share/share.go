package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
)

// Payload is ready-to-use share content for one platform.
type Payload struct {
	Platform string `json:"platform"`
	Text     string `json:"text"`
	// URL is the platform share target with the text pre-filled;
	// empty for the generic clipboard platform.
	URL string `json:"url,omitempty"`
}

// Summary is the plain data a share consumes: the headline score and the
// money figures behind it.
type Summary struct {
	TotalScore      int
	ProfitMarginPct int
	ExpectedProfit  float64
	MaxOffer        float64
}

// Supported platforms.
const (
	PlatformTwitter  = "twitter"
	PlatformFacebook = "facebook"
	PlatformWhatsApp = "whatsapp"
	PlatformGeneric  = "generic"
)

// Build formats the share text for the given platform and wraps it in that
// platform's share target URL. Unknown platforms are an error.
func Build(platform string, s Summary) (Payload, error) {
	text := Text(s)
	switch strings.ToLower(platform) {
	case PlatformTwitter:
		return Payload{
			Platform: PlatformTwitter,
			Text:     text,
			URL:      "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text),
		}, nil
	case PlatformFacebook:
		return Payload{
			Platform: PlatformFacebook,
			Text:     text,
			URL:      "https://www.facebook.com/sharer/sharer.php?quote=" + url.QueryEscape(text),
		}, nil
	case PlatformWhatsApp:
		return Payload{
			Platform: PlatformWhatsApp,
			Text:     text,
			URL:      "https://wa.me/?text=" + url.QueryEscape(text),
		}, nil
	case PlatformGeneric:
		return Payload{Platform: PlatformGeneric, Text: text}, nil
	default:
		return Payload{}, fmt.Errorf("unknown share platform %q", platform)
	}
}

// Text is the platform-independent share line.
func Text(s Summary) string {
	return fmt.Sprintf(
		"This flip deal scores %d/100: %s expected profit at a %d%% margin. Max offer by the 70%% rule: %s.",
		s.TotalScore,
		domain.FormatUSD(s.ExpectedProfit),
		s.ProfitMarginPct,
		domain.FormatUSD(s.MaxOffer),
	)
}
