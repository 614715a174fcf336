package report

import (
	"net/url"
	"strings"

	"github.com/hosammostafait/AICareerAdvisor/entities"
)

const twitterShareText = "خطتي المهنية من المسار الذكي 🚀"

// VideoLink opens the video itself when the plan carries a URL and a
// YouTube search for its query otherwise.
func VideoLink(v entities.VideoRecommendation) string {
	if v.URL != "" {
		return v.URL
	}
	return "https://www.youtube.com/results?search_query=" + encodeComponent(v.SearchQuery)
}

type ShareLink struct {
	Network string
	Label   string
	URL     string
}

// ShareLinks builds the social share targets for a plan. pageURL is the
// address the networks that only accept a link will point at.
func ShareLinks(p *entities.Plan, pageURL string) []ShareLink {
	u := encodeComponent(pageURL)
	return []ShareLink{
		{Network: "whatsapp", Label: "واتساب", URL: "https://wa.me/?text=" + encodeComponent(PlanText(p))},
		{Network: "facebook", Label: "فيسبوك", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u},
		{Network: "twitter", Label: "تويتر", URL: "https://twitter.com/intent/tweet?text=" + encodeComponent(twitterShareText) + "&url=" + u},
		{Network: "linkedin", Label: "لينكد إن", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + u},
	}
}

// encodeComponent escapes s for use inside a query value, with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
