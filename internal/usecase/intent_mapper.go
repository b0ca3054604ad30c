package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/shopgraph/pipeline/internal/domain"
)

// IntentMapperConfig holds the keyword-to-intent dictionaries and the
// budget price threshold
type IntentMapperConfig struct {
	IntentKeywords     map[string][]string
	CategoryIntents    map[string][]string
	BudgetThreshold    float64
	EnableDebugLogging bool
}

// IntentMapper maps product attributes to the user intents they serve
type IntentMapper struct {
	intentKeywords     map[string][]string
	categoryIntents    map[string][]string
	budgetThreshold    float64
	enableDebugLogging bool
}

// NewIntentMapper creates an intent mapper with the given dictionaries
func NewIntentMapper(config IntentMapperConfig) *IntentMapper {
	intentKeywords := config.IntentKeywords
	if len(intentKeywords) == 0 {
		intentKeywords = map[string][]string{
			"affordable":   {"cheap", "budget", "value", "affordable", "under"},
			"summer":       {"summer", "light", "breathable", "cotton", "warm weather"},
			"eco_friendly": {"organic", "eco", "sustainable", "green"},
			"casual":       {"casual", "everyday", "basic", "comfortable", "daily"},
			"comfort":      {"comfortable", "soft", "cozy", "warm", "stretch"},
		}
	}

	categoryIntents := config.CategoryIntents
	if len(categoryIntents) == 0 {
		categoryIntents = map[string][]string{
			"dress":   {"dress_shopping", "fashion", "style"},
			"hoodie":  {"cozy_wear", "casual_wear"},
			"sneaker": {"footwear", "active_wear"},
			"jacket":  {"outerwear", "cold_weather"},
			"t-shirt": {"casual_wear", "everyday_wear"},
		}
	}

	budgetThreshold := config.BudgetThreshold
	if budgetThreshold <= 0 {
		budgetThreshold = 30.0
	}

	return &IntentMapper{
		intentKeywords:     intentKeywords,
		categoryIntents:    categoryIntents,
		budgetThreshold:    budgetThreshold,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ExtractIntents returns the sorted, deduplicated intent tags for a product.
// Signals: keyword mentions in the text, price under the budget threshold,
// and category-driven intents.
func (m *IntentMapper) ExtractIntents(product domain.Product) []string {
	intents := make(map[string]bool)

	text := strings.ToLower(product.Title + " " + product.Description)
	for intent, keywords := range m.intentKeywords {
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				intents[intent] = true
				break
			}
		}
	}

	if product.Price > 0 && product.Price < m.budgetThreshold {
		intents["budget_friendly"] = true
	}

	categoryLower := strings.ToLower(product.Category)
	for keyword, mapped := range m.categoryIntents {
		if strings.Contains(categoryLower, keyword) {
			for _, intent := range mapped {
				intents[intent] = true
			}
		}
	}

	result := make([]string, 0, len(intents))
	for intent := range intents {
		result = append(result, intent)
	}
	sort.Strings(result)

	if m.enableDebugLogging {
		log.Printf("[INTENTS] extracted %d intents for product %q: %v", len(result), product.ID, result)
	}

	return result
}
