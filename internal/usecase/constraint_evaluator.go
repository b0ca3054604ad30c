package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopgraph/pipeline/internal/domain"
)

// evaluateConstraints computes the rule-based boost and the explanation for a
// product against a parsed query. Purely lexical/numeric - it never consults
// the similarity signal, keeping the two composable. Boosts are summed.
// Reason precedence: price constraint > feature match > intent match >
// generic "Partial match".
func (s *MatchingService) evaluateConstraints(query domain.Query, product domain.Product) (float64, string) {
	var boost float64
	var priceReason, featureReason, intentReason string

	if query.HasPriceCap {
		if product.Price <= query.PriceCap {
			boost += s.priceMatchBoost
			priceReason = fmt.Sprintf("Price in range ($%s)", formatPrice(product.Price))
		} else {
			boost += s.priceViolationPenalty
			priceReason = "Price above range"
		}
	}

	if matched := matchTags(query.Tokens, product.Features); len(matched) > 0 {
		boost += s.featureMatchBoost * float64(len(matched))
		featureReason = "Has " + strings.Join(matched, ", ")
	}

	intentTargets := append([]string{}, product.Intents...)
	intentTargets = append(intentTargets, product.CategoryPath()...)
	if matched := matchTags(query.Tokens, intentTargets); len(matched) > 0 {
		boost += s.intentMatchBoost * float64(len(matched))
		intentReason = "Matches " + strings.Join(matched, ", ")
	}

	switch {
	case priceReason != "":
		return boost, priceReason
	case featureReason != "":
		return boost, featureReason
	case intentReason != "":
		return boost, intentReason
	}

	return boost, "Partial match"
}

// matchTags returns the readable form of each tag mentioned by at least one
// query token. A token mentions a tag on case-insensitive exact or substring
// match, with underscores read as spaces. Each tag counts at most once.
func matchTags(tokens []string, tags []string) []string {
	var matched []string
	seen := make(map[string]bool)

	for _, tag := range tags {
		readable := strings.ToLower(strings.ReplaceAll(tag, "_", " "))
		if readable == "" || seen[readable] {
			continue
		}
		for _, token := range tokens {
			if token == readable || strings.Contains(readable, token) || strings.Contains(token, readable) {
				matched = append(matched, readable)
				seen[readable] = true
				break
			}
		}
	}

	return matched
}

// formatPrice renders a price the way it appears in reason strings:
// no trailing zeros, so 29.99 stays "29.99" and 30 becomes "30"
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
