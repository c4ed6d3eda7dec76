package marketdesk

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// publishedLayout is the provider's timestamp format, in UTC.
const publishedLayout = "2006-01-02 15:04:05"

// NewsArticle is a news item, optionally attached to a symbol.
type NewsArticle struct {
	Symbol        Symbol `json:"symbol"`
	Title         string `json:"title"`
	Text          string `json:"text"`
	PublishedDate string `json:"publishedDate"`
	Site          string `json:"site"`
	URL           string `json:"url"`
	Image         string `json:"image"`
}

// Published parses the publication timestamp.
func (a NewsArticle) Published() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, a.PublishedDate); err == nil {
		return t, nil
	}
	return time.Parse(publishedLayout, a.PublishedDate)
}

// Age formats the article age relative to now: "Just now", "12m ago", "3h ago",
// "Yesterday", "4d ago" or the day like "Jan 02" after a week.
func (a NewsArticle) Age(now time.Time) string {
	published, err := a.Published()
	if err != nil {
		return a.PublishedDate
	}
	diff := now.Sub(published)
	if diff < 0 {
		return "Just now"
	}
	days := int(diff.Hours() / 24)
	switch {
	case days == 0 && diff < time.Minute:
		return "Just now"
	case days == 0 && diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case days == 0:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return published.Format("Jan 02")
	}
}

// Truncate shortens text to at most max runes, cutting at a word boundary and
// appending "...".
func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	cut := string([]rune(text)[:max-3])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// SearchResult is a symbol search hit.
type SearchResult struct {
	Symbol       Symbol `json:"symbol"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	Exchange     string `json:"exchange"`
	ExchangeFull string `json:"exchangeFullName"`
}

func (r SearchResult) String() string {
	return fmt.Sprintf("%s - %s (%s)", r.Symbol, r.Name, r.Exchange)
}
