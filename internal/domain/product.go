package domain

import "strings"

// Availability is the normalized stock status of a product
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityUnknown    Availability = "unknown"
)

// RawProduct represents a product record as loaded from the input CSV,
// before any normalization. All fields are strings on purpose - upstream
// feeds are messy ("$29.99", "In Stock", "clothes>women>dresses").
type RawProduct struct {
	ProductID    string `json:"product_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Brand        string `json:"brand,omitempty"`
	Category     string `json:"category,omitempty"`
	Price        string `json:"price,omitempty"`
	Availability string `json:"availability,omitempty"`
	ImageURLs    string `json:"image_urls,omitempty"`
}

// Product is an enriched catalog record ready for AI consumption.
// Once a product enters the store it is never mutated.
type Product struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Brand              string       `json:"brand,omitempty"`
	Category           string       `json:"category,omitempty"` // normalized path, e.g. "clothes/women/dresses"
	Price              float64      `json:"price"`
	Availability       Availability `json:"availability"`
	ImageLink          string       `json:"image_link,omitempty"`
	Features           []string     `json:"features"`
	Intents            []string     `json:"intents"`
	AIOptimizedTitle   string       `json:"ai_optimized_title"`
	AIOptimizedContent string       `json:"ai_optimized_content"`
}

// CategoryPath returns the ordered segments of the normalized category path.
func (p Product) CategoryPath() []string {
	if p.Category == "" {
		return nil
	}
	return strings.Split(p.Category, "/")
}

// Matchable reports whether the product can participate in query matching.
// Products without AI-optimized content have nothing to embed.
func (p Product) Matchable() bool {
	return strings.TrimSpace(p.AIOptimizedContent) != ""
}

// Query is a parsed natural-language search query. Queries are ephemeral -
// one is constructed per match request and discarded afterwards.
type Query struct {
	Text        string   // raw query text as supplied by the caller
	Tokens      []string // normalized keyword tokens
	PriceCap    float64  // upper price bound parsed from the text
	HasPriceCap bool     // whether a price bound was detected
}

// MatchResult represents one ranked answer for a query
type MatchResult struct {
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"` // the product's AI-optimized content
	Score       float64 `json:"score"`
	Reason      string  `json:"reason"`
}
