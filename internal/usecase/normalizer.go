package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopgraph/pipeline/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	priceValueRegex     = regexp.MustCompile(`[\d.]+`)
	categorySepRegex    = regexp.MustCompile(`[>,\s]+`)
	duplicateSlashRegex = regexp.MustCompile(`/+`)
	whitespaceRegex     = regexp.MustCompile(`\s+`)
	urlRegex            = regexp.MustCompile(`(?i)^(https?://|www\.)[^\s/$.?#].[^\s]*$`)
)

// brandVariations maps canonical brand names to the spellings seen in feeds
var brandVariations = map[string][]string{
	"h&m":   {"h&m", "h & m", "h and m", "hm"},
	"oura":  {"oura", "oura ring", "oura rings"},
	"whoop": {"whoop", "whoop strap", "whoop band"},
}

// availabilityVariations maps normalized availability to raw feed values
var availabilityVariations = map[domain.Availability][]string{
	domain.AvailabilityInStock:    {"in stock", "instock", "available", "in_stock"},
	domain.AvailabilityOutOfStock: {"out of stock", "outofstock", "unavailable", "not available", "out_of_stock"},
}

// NormalizerConfig holds configuration for product normalization
type NormalizerConfig struct {
	MaxTitleLength       int
	MaxDescriptionLength int
	EnableDebugLogging   bool
}

// Normalizer cleans raw feed records into consistent Product values
type Normalizer struct {
	maxTitleLength       int
	maxDescriptionLength int
	enableDebugLogging   bool
}

// NewNormalizer creates a normalizer with the given configuration
func NewNormalizer(config NormalizerConfig) *Normalizer {
	maxTitle := config.MaxTitleLength
	if maxTitle <= 0 {
		maxTitle = 150
	}

	maxDescription := config.MaxDescriptionLength
	if maxDescription <= 0 {
		maxDescription = 500
	}

	return &Normalizer{
		maxTitleLength:       maxTitle,
		maxDescriptionLength: maxDescription,
		enableDebugLogging:   config.EnableDebugLogging,
	}
}

// Normalize cleans a single raw product record. Enrichment fields (features,
// intents, optimized content) are left empty for the downstream stages.
func (n *Normalizer) Normalize(raw domain.RawProduct) domain.Product {
	product := domain.Product{
		ID:           strings.TrimSpace(raw.ProductID),
		Title:        n.normalizeText(raw.Title, n.maxTitleLength),
		Description:  n.normalizeText(raw.Description, n.maxDescriptionLength),
		Brand:        normalizeBrand(raw.Brand),
		Category:     normalizeCategory(raw.Category),
		Price:        normalizePrice(raw.Price),
		Availability: normalizeAvailability(raw.Availability),
		ImageLink:    normalizeImageLink(raw.ImageURLs),
	}

	if n.enableDebugLogging {
		log.Printf("[NORMALIZE] product %q: brand=%q category=%q price=%.2f availability=%s",
			product.ID, product.Brand, product.Category, product.Price, product.Availability)
	}

	return product
}

// normalizeBrand maps brand spellings to a canonical uppercase form.
// Unrecognized brands are title-cased.
func normalizeBrand(brand string) string {
	if brand == "" {
		return ""
	}

	brandLower := strings.ToLower(strings.TrimSpace(brand))
	for canonical, variations := range brandVariations {
		for _, v := range variations {
			if brandLower == v {
				return strings.ToUpper(canonical)
			}
		}
	}

	return titleCase(strings.TrimSpace(brand))
}

// titleCase uppercases the first letter of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// normalizeCategory converts category strings to a lowercase slash path.
// "clothes>women>dresses" -> "clothes/women/dresses"
func normalizeCategory(category string) string {
	if category == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(category))
	normalized = categorySepRegex.ReplaceAllString(normalized, "/")
	normalized = duplicateSlashRegex.ReplaceAllString(normalized, "/")

	return strings.Trim(normalized, "/")
}

// normalizePrice extracts a non-negative price from an arbitrary string.
// "$29.99", "29.99 USD" and "29.99" all parse to 29.99; garbage parses to 0.
func normalizePrice(price string) float64 {
	match := priceValueRegex.FindString(price)
	if match == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.Trim(match, "."), 64)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

// normalizeAvailability maps raw availability strings onto the enum.
// Values that match neither direction are reported as unknown rather than
// guessed.
func normalizeAvailability(availability string) domain.Availability {
	if availability == "" {
		return domain.AvailabilityUnknown
	}

	compact := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(availability)), " ", "")

	// Out-of-stock first: "not available" must not match the "available" variation
	for _, status := range []domain.Availability{domain.AvailabilityOutOfStock, domain.AvailabilityInStock} {
		for _, v := range availabilityVariations[status] {
			if strings.Contains(compact, strings.ReplaceAll(v, " ", "")) {
				return status
			}
		}
	}

	return domain.AvailabilityUnknown
}

// normalizeImageLink picks the first valid URL from a pipe-separated list
func normalizeImageLink(imageURLs string) string {
	link := strings.TrimSpace(imageURLs)
	if link == "" {
		return ""
	}

	if idx := strings.Index(link, "|"); idx >= 0 {
		link = strings.TrimSpace(link[:idx])
	}

	if !urlRegex.MatchString(link) {
		return ""
	}

	return link
}

// normalizeText collapses whitespace and truncates to maxLength
func (n *Normalizer) normalizeText(text string, maxLength int) string {
	normalized := strings.TrimSpace(text)
	if normalized == "" {
		return ""
	}

	normalized = whitespaceRegex.ReplaceAllString(normalized, " ")

	if len(normalized) > maxLength {
		normalized = normalized[:maxLength-3] + "..."
	}

	return normalized
}
