package marketdesk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewsArticle_Age(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		published string
		want      string
	}{
		{"2025-03-14 12:30:00", "Just now"},
		{"2025-03-14 11:59:30", "Just now"},
		{"2025-03-14 11:45:00", "15m ago"},
		{"2025-03-14 09:00:00", "3h ago"},
		{"2025-03-13 09:00:00", "Yesterday"},
		{"2025-03-10 12:00:00", "4d ago"},
		{"2025-02-02 08:00:00", "Feb 02"},
		{"2025-03-14T11:00:00Z", "1h ago"},
		{"someday", "someday"},
	}
	for _, tc := range testCases {
		a := NewsArticle{PublishedDate: tc.published}
		assert.Equal(t, tc.want, a.Age(now), "Age(%q)", tc.published)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 200))
	assert.Equal(t, "the quick...", Truncate("the quick brown fox", 14))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
}

func TestSearchResult_String(t *testing.T) {
	r := SearchResult{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ"}
	assert.Equal(t, "AAPL - Apple Inc. (NASDAQ)", r.String())
}
