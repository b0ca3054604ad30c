package main

import (
	"context"
	"log"
	"os"

	"github.com/shopgraph/pipeline/config"
	"github.com/shopgraph/pipeline/internal/infrastructure/embedding"
	"github.com/shopgraph/pipeline/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopGraph Pipeline v1.0.0")
	log.Printf("Environment: %s", cfg.Pipeline.Environment)
	log.Printf("Products CSV: %s", cfg.Pipeline.ProductsCSV)
	log.Printf("Output dir: %s", cfg.Pipeline.OutputDir)
	log.Printf("Embedding backend: %s (model: %s, %d dimensions)",
		cfg.Embedding.BaseURL, cfg.Embedding.Model, cfg.Embedding.Dimensions)

	// Initialize infrastructure dependencies
	embeddingClient := embedding.NewClient(embedding.ClientConfig{
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Timeout:    cfg.Embedding.Timeout,
		RateLimit:  cfg.Embedding.RateLimit,
		Burst:      cfg.Embedding.Burst,
	})

	// Enable debug mode in development environment
	if cfg.Pipeline.Environment == "development" {
		embeddingClient.SetDebug(true)
		log.Printf("Embedding client debug mode enabled")
	}

	// One vector cache per run, shared by every query
	embeddingCache := embedding.NewCache(embeddingClient)

	// Initialize usecase layer
	debug := cfg.Matching.EnableDebugLogging

	normalizer := usecase.NewNormalizer(usecase.NormalizerConfig{
		MaxTitleLength:       cfg.Enrichment.MaxTitleLength,
		MaxDescriptionLength: cfg.Enrichment.MaxDescriptionLength,
		EnableDebugLogging:   debug,
	})

	featureExtractor := usecase.NewFeatureExtractor(usecase.FeatureExtractorConfig{
		Materials:          cfg.Enrichment.Materials,
		Colors:             cfg.Enrichment.Colors,
		EnableDebugLogging: debug,
	})

	intentMapper := usecase.NewIntentMapper(usecase.IntentMapperConfig{
		IntentKeywords:     cfg.Enrichment.IntentKeywords,
		CategoryIntents:    cfg.Enrichment.CategoryIntents,
		BudgetThreshold:    cfg.Enrichment.BudgetThreshold,
		EnableDebugLogging: debug,
	})

	contentOptimizer := usecase.NewContentOptimizer(usecase.ContentOptimizerConfig{
		MaxTitleLength:       cfg.Enrichment.MaxTitleLength,
		MaxDescriptionLength: cfg.Enrichment.MaxDescriptionLength,
		EnableDebugLogging:   debug,
	})

	matchingService := usecase.NewMatchingService(embeddingCache, usecase.MatchConfig{
		TopK:                  cfg.Matching.TopK,
		PriceMatchBoost:       cfg.Matching.PriceMatchBoost,
		PriceViolationPenalty: cfg.Matching.PriceViolationPenalty,
		FeatureMatchBoost:     cfg.Matching.FeatureMatchBoost,
		IntentMatchBoost:      cfg.Matching.IntentMatchBoost,
		EnableDebugLogging:    debug,
	})

	log.Printf("Matching: top_k=%d, price=%.2f/%.2f, feature=%.2f, intent=%.2f",
		cfg.Matching.TopK,
		cfg.Matching.PriceMatchBoost,
		cfg.Matching.PriceViolationPenalty,
		cfg.Matching.FeatureMatchBoost,
		cfg.Matching.IntentMatchBoost)

	pipeline := usecase.NewPipeline(
		usecase.PipelineConfig{
			ProductsCSV: cfg.Pipeline.ProductsCSV,
			SchemaJSON:  cfg.Pipeline.SchemaJSON,
			QueriesJSON: cfg.Pipeline.QueriesJSON,
			OutputDir:   cfg.Pipeline.OutputDir,
		},
		normalizer,
		featureExtractor,
		intentMapper,
		contentOptimizer,
		usecase.NewSchemaValidator(debug),
		usecase.NewGraphBuilder(debug),
		matchingService,
	)

	// Run the complete pipeline
	results, err := pipeline.Run(context.Background())
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	if err := pipeline.SaveResults(results); err != nil {
		log.Fatalf("Failed to save results: %v", err)
	}

	log.Printf("==================================================")
	log.Printf("PIPELINE SUMMARY")
	log.Printf("Processed %d products", len(results.EnrichedProducts))
	log.Printf("Knowledge graph: %d nodes, %d relationships",
		len(results.KnowledgeGraph.Products), len(results.KnowledgeGraph.Relationships))
	log.Printf("Tested %d search queries", len(results.QueryResults))
	log.Printf("Embedding cache: %d distinct texts", embeddingCache.Size())
	log.Printf("==================================================")

	// Show a sample query result
	for query, matches := range results.QueryResults {
		if len(matches) == 0 {
			continue
		}
		log.Printf("Sample query %q:", query)
		for i, match := range matches {
			if i >= 2 {
				break
			}
			log.Printf("  %d. %s (score %.3f): %s", i+1, match.ProductID, match.Score, match.Reason)
		}
		break
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
