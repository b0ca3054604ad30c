package usecase

import (
	"context"
	"log"
	"math"
	"sort"

	"github.com/shopgraph/pipeline/internal/domain"
)

// Default ranking weights. All of them are tunable via MatchConfig; only the
// combination rule (similarity + summed boosts) is fixed.
const (
	defaultTopK                  = 10
	defaultPriceMatchBoost       = 0.3
	defaultPriceViolationPenalty = -0.2
	defaultFeatureMatchBoost     = 0.1
	defaultIntentMatchBoost      = 0.1
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	TopK                  int
	PriceMatchBoost       float64
	PriceViolationPenalty float64
	FeatureMatchBoost     float64
	IntentMatchBoost      float64
	EnableDebugLogging    bool
}

// MatchingService ranks products against natural-language queries by
// combining semantic similarity with rule-based constraint boosts
type MatchingService struct {
	embedder              domain.Embedder
	topK                  int
	priceMatchBoost       float64
	priceViolationPenalty float64
	featureMatchBoost     float64
	intentMatchBoost      float64
	enableDebugLogging    bool
}

// NewMatchingService creates a matching service with the given configuration
func NewMatchingService(embedder domain.Embedder, config MatchConfig) *MatchingService {
	topK := config.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	priceMatch := config.PriceMatchBoost
	if priceMatch == 0 {
		priceMatch = defaultPriceMatchBoost
	}

	priceViolation := config.PriceViolationPenalty
	if priceViolation == 0 {
		priceViolation = defaultPriceViolationPenalty
	}

	featureMatch := config.FeatureMatchBoost
	if featureMatch == 0 {
		featureMatch = defaultFeatureMatchBoost
	}

	intentMatch := config.IntentMatchBoost
	if intentMatch == 0 {
		intentMatch = defaultIntentMatchBoost
	}

	return &MatchingService{
		embedder:              embedder,
		topK:                  topK,
		priceMatchBoost:       priceMatch,
		priceViolationPenalty: priceViolation,
		featureMatchBoost:     featureMatch,
		intentMatchBoost:      intentMatch,
		enableDebugLogging:    config.EnableDebugLogging,
	}
}

// MatchQuery ranks products against a query and returns the top results.
// Score = cosine similarity of the query and product content embeddings,
// plus the summed constraint boosts. Equal scores keep store order, so output
// is deterministic for identical input. The only failure is an unavailable
// embedding model, which aborts the whole call; per-product problems (missing
// AI-optimized content) skip that product with a warning.
func (s *MatchingService) MatchQuery(
	ctx context.Context,
	queryText string,
	products []domain.Product,
) ([]domain.MatchResult, error) {
	query := ParseQuery(queryText)

	// Empty store is an empty answer, not an error. The query is still
	// embedded below even when its text is empty - the model defines
	// behavior for the empty string and constraints simply contribute zero.
	if len(products) == 0 {
		return []domain.MatchResult{}, nil
	}

	queryVector, err := s.embedder.Embed(ctx, query.Text)
	if err != nil {
		return nil, err
	}

	results := make([]domain.MatchResult, 0, len(products))

	for _, product := range products {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !product.Matchable() {
			log.Printf("[MATCH] WARNING: skipping product %q: %v (missing ai_optimized_content)",
				product.ID, domain.ErrMalformedProduct)
			continue
		}

		productVector, err := s.embedder.Embed(ctx, product.AIOptimizedContent)
		if err != nil {
			return nil, err
		}

		similarity := cosineSimilarity(queryVector, productVector)
		boost, reason := s.evaluateConstraints(query, product)
		score := similarity + boost

		if s.enableDebugLogging {
			log.Printf("[MATCH] product %q: similarity=%.4f boost=%.2f score=%.4f reason=%q",
				product.ID, similarity, boost, score, reason)
		}

		results = append(results, domain.MatchResult{
			ProductID:   product.ID,
			Description: product.AIOptimizedContent,
			Score:       score,
			Reason:      reason,
		})
	}

	// Stable sort keeps store order for equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.topK {
		results = results[:s.topK]
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] query %q matched %d products", queryText, len(results))
	}

	return results, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 when either vector is zero or dimensions differ - no semantic
// signal, not an error. Output is in [-1,1] and is never clamped.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
