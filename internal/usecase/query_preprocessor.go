package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopgraph/pipeline/internal/domain"
)

// Compiled regex patterns for query parsing
var (
	// Matches upper price bounds like "under $30", "below 25", "under 19.99"
	priceUnderRegex = regexp.MustCompile(`(?:under|below)\s*\$?\s*(\d+(?:\.\d+)?)`)

	// Matches upper price bounds like "$30 or less"
	priceOrLessRegex = regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)\s*or\s*less`)

	// Strips punctuation before tokenization
	queryPunctuationRegex = regexp.MustCompile(`[^\w\s]`)
)

// queryStopWords are tokens that carry no matching signal
var queryStopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "by": true, "from": true, "is": true,
	"it": true, "as": true, "be": true, "are": true,
	"under": true, "below": true, "less": true,
}

// ParseQuery turns raw query text into a Query with normalized keyword tokens
// and an optional upper price bound. Empty or whitespace-only text is a valid
// query with no tokens and no bound.
func ParseQuery(text string) domain.Query {
	query := domain.Query{Text: text}
	textLower := strings.ToLower(text)

	if bound, ok := parsePriceCap(textLower); ok {
		query.PriceCap = bound
		query.HasPriceCap = true
	}

	query.Tokens = tokenizeQuery(textLower)

	return query
}

// parsePriceCap detects an upper price bound pattern in the query text
func parsePriceCap(textLower string) (float64, bool) {
	match := priceUnderRegex.FindStringSubmatch(textLower)
	if match == nil {
		match = priceOrLessRegex.FindStringSubmatch(textLower)
	}
	if match == nil {
		return 0, false
	}

	bound, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}

	return bound, true
}

// tokenizeQuery splits lowercase text into normalized keyword tokens,
// dropping punctuation, stop words, single characters and pure numbers
func tokenizeQuery(textLower string) []string {
	cleaned := queryPunctuationRegex.ReplaceAllString(textLower, " ")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 1 {
			continue
		}
		if queryStopWords[word] {
			continue
		}
		if isNumeric(word) {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
