package usecase

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/shopgraph/pipeline/internal/domain"
	"github.com/shopgraph/pipeline/internal/infrastructure/dataset"
)

// PipelineConfig holds input/output locations for a pipeline run
type PipelineConfig struct {
	ProductsCSV string
	SchemaJSON  string
	QueriesJSON string
	OutputDir   string
}

// Results holds everything a pipeline run produces
type Results struct {
	EnrichedProducts []domain.Product               `json:"enriched_products"`
	KnowledgeGraph   domain.KnowledgeGraph          `json:"knowledge_graph"`
	QueryResults     map[string][]domain.MatchResult `json:"query_results"`
}

// Pipeline runs the full enrichment and query-matching flow:
// load -> normalize -> extract features -> map intents -> optimize content ->
// validate -> build knowledge graph -> match test queries
type Pipeline struct {
	config           PipelineConfig
	normalizer       *Normalizer
	featureExtractor *FeatureExtractor
	intentMapper     *IntentMapper
	contentOptimizer *ContentOptimizer
	schemaValidator  *SchemaValidator
	graphBuilder     *GraphBuilder
	matchingService  *MatchingService
}

// NewPipeline wires the pipeline stages together
func NewPipeline(
	config PipelineConfig,
	normalizer *Normalizer,
	featureExtractor *FeatureExtractor,
	intentMapper *IntentMapper,
	contentOptimizer *ContentOptimizer,
	schemaValidator *SchemaValidator,
	graphBuilder *GraphBuilder,
	matchingService *MatchingService,
) *Pipeline {
	return &Pipeline{
		config:           config,
		normalizer:       normalizer,
		featureExtractor: featureExtractor,
		intentMapper:     intentMapper,
		contentOptimizer: contentOptimizer,
		schemaValidator:  schemaValidator,
		graphBuilder:     graphBuilder,
		matchingService:  matchingService,
	}
}

// Run executes the complete pipeline from raw data to AI-ready outputs
func (p *Pipeline) Run(ctx context.Context) (*Results, error) {
	log.Printf("starting catalog pipeline")

	rawProducts, err := dataset.LoadProducts(p.config.ProductsCSV)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}

	schema, err := dataset.LoadSchema(p.config.SchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	queries, err := dataset.LoadQueries(p.config.QueriesJSON)
	if err != nil {
		return nil, fmt.Errorf("loading queries: %w", err)
	}

	log.Printf("enriching %d products", len(rawProducts))
	enriched := p.enrichProducts(rawProducts)

	// Validation reports problems but never drops products from the run
	if validation := p.schemaValidator.ValidateBatch(enriched, schema); len(validation) > 0 {
		log.Printf("WARNING: %s", p.schemaValidator.Summary(validation))
	} else {
		log.Printf("all products passed schema validation")
	}

	log.Printf("building knowledge graph for %d products", len(enriched))
	graph := p.graphBuilder.Build(enriched)

	log.Printf("matching %d queries against products", len(queries))
	queryResults := make(map[string][]domain.MatchResult, len(queries))
	for _, query := range queries {
		matches, err := p.matchingService.MatchQuery(ctx, query, enriched)
		if err != nil {
			return nil, fmt.Errorf("matching query %q: %w", query, err)
		}
		queryResults[query] = matches
	}

	log.Printf("pipeline completed: %d products, %d graph nodes, %d queries",
		len(enriched), len(graph.Products), len(queryResults))

	return &Results{
		EnrichedProducts: enriched,
		KnowledgeGraph:   graph,
		QueryResults:     queryResults,
	}, nil
}

// enrichProducts runs each raw record through the enrichment stages
func (p *Pipeline) enrichProducts(rawProducts []domain.RawProduct) []domain.Product {
	enriched := make([]domain.Product, 0, len(rawProducts))

	for _, raw := range rawProducts {
		product := p.normalizer.Normalize(raw)
		product.Features = p.featureExtractor.Extract(product.Title, product.Description)
		product.Intents = p.intentMapper.ExtractIntents(product)
		product = p.contentOptimizer.Optimize(product)
		enriched = append(enriched, product)
	}

	return enriched
}

// SaveResults writes the three result artifacts to the output directory
func (p *Pipeline) SaveResults(results *Results) error {
	artifacts := map[string]interface{}{
		"enriched_products.json": results.EnrichedProducts,
		"knowledge_graph.json":   results.KnowledgeGraph,
		"query_results.json":     results.QueryResults,
	}

	for name, artifact := range artifacts {
		path := filepath.Join(p.config.OutputDir, name)
		if err := dataset.SaveJSON(path, artifact); err != nil {
			return fmt.Errorf("saving %s: %w", name, err)
		}
	}

	log.Printf("results saved to %s", p.config.OutputDir)
	return nil
}
