package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopgraph/pipeline/internal/domain"
)

// ContentOptimizerConfig holds length limits for optimized content
type ContentOptimizerConfig struct {
	MaxTitleLength       int
	MaxDescriptionLength int
	EnableDebugLogging   bool
}

// ContentOptimizer rewrites product content into the form embedded and shown
// to AI platforms: a prefixed, audience-aware title and a description that
// surfaces intents and features as plain text.
type ContentOptimizer struct {
	maxTitleLength       int
	maxDescriptionLength int
	enableDebugLogging   bool
}

// NewContentOptimizer creates a content optimizer
func NewContentOptimizer(config ContentOptimizerConfig) *ContentOptimizer {
	maxTitle := config.MaxTitleLength
	if maxTitle <= 0 {
		maxTitle = 150
	}

	maxDescription := config.MaxDescriptionLength
	if maxDescription <= 0 {
		maxDescription = 500
	}

	return &ContentOptimizer{
		maxTitleLength:       maxTitle,
		maxDescriptionLength: maxDescription,
		enableDebugLogging:   config.EnableDebugLogging,
	}
}

// Optimize fills in AIOptimizedTitle and AIOptimizedContent. Features and
// intents must already be extracted.
func (o *ContentOptimizer) Optimize(product domain.Product) domain.Product {
	title := o.optimizedTitle(product)
	description := o.optimizedDescription(product)

	product.AIOptimizedTitle = title
	product.AIOptimizedContent = strings.TrimSpace(title + ". " + description)

	if o.enableDebugLogging {
		log.Printf("[OPTIMIZE] product %q content: %q", product.ID, product.AIOptimizedContent)
	}

	return product
}

// optimizedTitle builds "Eco-Friendly <brand> <audience> <title>", skipping
// whichever components the product lacks
func (o *ContentOptimizer) optimizedTitle(product domain.Product) string {
	var components []string

	if containsString(product.Features, "organic") {
		components = append(components, "Eco-Friendly")
	}

	if product.Brand != "" {
		components = append(components, product.Brand)
	}

	if audience := extractAudience(product.Category); audience != "" {
		components = append(components, audience)
	}

	if product.Title != "" {
		components = append(components, product.Title)
	}

	return truncate(strings.Join(components, " "), o.maxTitleLength)
}

// optimizedDescription appends readable intent and feature summaries to the
// original description
func (o *ContentOptimizer) optimizedDescription(product domain.Product) string {
	var components []string

	if product.Description != "" {
		components = append(components, product.Description)
	}

	if len(product.Intents) > 0 {
		readable := readableTags(product.Intents, 2)
		components = append(components, fmt.Sprintf("Perfect for %s", strings.Join(readable, ", ")))
	}

	if len(product.Features) > 0 {
		readable := readableTags(product.Features, 3)
		components = append(components, fmt.Sprintf("Features: %s", strings.Join(readable, ", ")))
	}

	return truncate(strings.Join(components, ". "), o.maxDescriptionLength)
}

// extractAudience infers the target audience from the category path
func extractAudience(category string) string {
	categoryLower := strings.ToLower(category)

	switch {
	case strings.Contains(categoryLower, "women"):
		return "Women"
	case strings.Contains(categoryLower, "men"):
		return "Men"
	case strings.Contains(categoryLower, "kids"):
		return "Kids"
	}

	return ""
}

// readableTags converts up to limit underscore tags to readable text
func readableTags(tags []string, limit int) []string {
	if len(tags) > limit {
		tags = tags[:limit]
	}

	readable := make([]string, len(tags))
	for i, tag := range tags {
		readable[i] = strings.ReplaceAll(tag, "_", " ")
	}
	return readable
}

// truncate cuts s to maxLength with a trailing ellipsis
func truncate(s string, maxLength int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}

// containsString reports whether list contains value
func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
