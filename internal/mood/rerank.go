package mood

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"filmreel/internal/models"
)

// ReviewFetcher loads free-text reviews for one title.
type ReviewFetcher func(ctx context.Context, key models.Key) ([]models.Review, error)

// Rerank is the best-effort second pass: the first topK candidates are
// re-ranked by how many of the collected keywords appear in their
// joined lowercase review text (one point per matching keyword), and
// the untouched remainder is appended after the ranked prefix. A
// failed review fetch scores that candidate zero; it never aborts the
// whole pass.
func Rerank(ctx context.Context, fetch ReviewFetcher, items []models.Item, keywords []string, topK int) []models.Item {
	if topK <= 0 || topK > len(items) {
		topK = len(items)
	}
	if len(keywords) == 0 || topK == 0 {
		return items
	}

	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		lowered = append(lowered, strings.ToLower(kw))
	}

	type scored struct {
		item  models.Item
		score int
	}
	prefix := make([]scored, 0, topK)
	for _, item := range items[:topK] {
		score := 0
		reviews, err := fetch(ctx, item.Key())
		if err != nil {
			slog.Debug("review fetch failed, scoring zero", "key", item.Key().String(), "error", err)
		} else {
			var joined strings.Builder
			for _, r := range reviews {
				joined.WriteString(strings.ToLower(r.Content))
				joined.WriteByte(' ')
			}
			text := joined.String()
			for _, kw := range lowered {
				if strings.Contains(text, kw) {
					score++
				}
			}
		}
		prefix = append(prefix, scored{item: item, score: score})
	}

	// Equal scores keep their original relative order.
	sort.SliceStable(prefix, func(i, j int) bool { return prefix[i].score > prefix[j].score })

	out := make([]models.Item, 0, len(items))
	for _, s := range prefix {
		out = append(out, s.item)
	}
	return append(out, items[topK:]...)
}
