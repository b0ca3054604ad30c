package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopgraph/pipeline/internal/domain"
)

func writePipelineInputs(t *testing.T) PipelineConfig {
	t.Helper()
	dir := t.TempDir()

	products := "product_id,title,description,brand,category,price,availability,image_urls\n" +
		"p1,Ladies Dress,summer cotton dress,H & M,Clothes > Women > Dresses,$29.99,In Stock,https://cdn.example.com/dress.jpg\n" +
		"p2,Wireless Headphones,noise cancelling over-ear headphones,Sony,Electronics > Audio,199.99,In Stock,\n"

	schema := `{
		"required_fields": {
			"id": "string",
			"title": "string, max 150 chars",
			"price": "float, >0"
		},
		"optional_fields": {
			"image_link": "url"
		}
	}`

	queries := `{"queries": ["summer dresses under $30"]}`

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
		return path
	}

	return PipelineConfig{
		ProductsCSV: write("raw_products.csv", products),
		SchemaJSON:  write("ai_schema.json", schema),
		QueriesJSON: write("ai_queries.json", queries),
		OutputDir:   filepath.Join(dir, "output"),
	}
}

func newTestPipeline(config PipelineConfig) *Pipeline {
	return NewPipeline(
		config,
		NewNormalizer(NormalizerConfig{}),
		NewFeatureExtractor(FeatureExtractorConfig{}),
		NewIntentMapper(IntentMapperConfig{}),
		NewContentOptimizer(ContentOptimizerConfig{}),
		NewSchemaValidator(false),
		NewGraphBuilder(false),
		NewMatchingService(newHashEmbedder(), MatchConfig{}),
	)
}

func TestPipeline_Run(t *testing.T) {
	pipeline := newTestPipeline(writePipelineInputs(t))

	results, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	t.Run("enriches every product", func(t *testing.T) {
		if len(results.EnrichedProducts) != 2 {
			t.Fatalf("len(EnrichedProducts) = %d, want 2", len(results.EnrichedProducts))
		}

		dress := results.EnrichedProducts[0]
		if dress.ID != "p1" {
			t.Fatalf("first product = %q, want p1 (input order preserved)", dress.ID)
		}
		if dress.Brand != "H&M" {
			t.Errorf("Brand = %q, want H&M", dress.Brand)
		}
		if dress.Category != "clothes/women/dresses" {
			t.Errorf("Category = %q, want clothes/women/dresses", dress.Category)
		}
		if dress.Price != 29.99 {
			t.Errorf("Price = %v, want 29.99", dress.Price)
		}

		want := "H&M Women Ladies Dress. summer cotton dress. " +
			"Perfect for budget friendly, dress shopping. Features: cotton"
		if dress.AIOptimizedContent != want {
			t.Errorf("AIOptimizedContent = %q, want %q", dress.AIOptimizedContent, want)
		}
	})

	t.Run("builds the knowledge graph", func(t *testing.T) {
		if len(results.KnowledgeGraph.Products) != 2 {
			t.Errorf("graph nodes = %d, want 2", len(results.KnowledgeGraph.Products))
		}
		if intents := results.KnowledgeGraph.IntentsOf("p1"); len(intents) == 0 {
			t.Error("p1 should have serves_intent edges")
		}
	})

	t.Run("matches the test queries", func(t *testing.T) {
		matches, ok := results.QueryResults["summer dresses under $30"]
		if !ok {
			t.Fatal("query missing from results")
		}
		if len(matches) != 2 {
			t.Fatalf("len(matches) = %d, want 2", len(matches))
		}
		if matches[0].ProductID != "p1" {
			t.Errorf("top match = %q, want p1", matches[0].ProductID)
		}
		if matches[0].Reason != "Price in range ($29.99)" {
			t.Errorf("top reason = %q, want price reason", matches[0].Reason)
		}
		if matches[0].Score <= matches[1].Score {
			t.Errorf("scores not descending: %v then %v", matches[0].Score, matches[1].Score)
		}
	})
}

func TestPipeline_SaveResults(t *testing.T) {
	config := writePipelineInputs(t)
	pipeline := newTestPipeline(config)

	results, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if err := pipeline.SaveResults(results); err != nil {
		t.Fatalf("SaveResults() error = %v", err)
	}

	t.Run("writes all artifacts", func(t *testing.T) {
		for _, name := range []string{"enriched_products.json", "knowledge_graph.json", "query_results.json"} {
			path := filepath.Join(config.OutputDir, name)
			if _, err := os.Stat(path); err != nil {
				t.Errorf("missing artifact %s: %v", name, err)
			}
		}
	})

	t.Run("artifacts are valid json", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(config.OutputDir, "query_results.json"))
		if err != nil {
			t.Fatalf("reading artifact: %v", err)
		}

		var decoded map[string][]domain.MatchResult
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("decoding artifact: %v", err)
		}
		if len(decoded["summer dresses under $30"]) != 2 {
			t.Errorf("decoded matches = %d, want 2", len(decoded["summer dresses under $30"]))
		}
	})
}

func TestPipeline_RunErrors(t *testing.T) {
	t.Run("missing products file", func(t *testing.T) {
		config := writePipelineInputs(t)
		config.ProductsCSV = filepath.Join(t.TempDir(), "absent.csv")

		if _, err := newTestPipeline(config).Run(context.Background()); err == nil {
			t.Error("Run() should fail when the products file is missing")
		}
	})

	t.Run("embedder failure aborts the run", func(t *testing.T) {
		config := writePipelineInputs(t)
		pipeline := NewPipeline(
			config,
			NewNormalizer(NormalizerConfig{}),
			NewFeatureExtractor(FeatureExtractorConfig{}),
			NewIntentMapper(IntentMapperConfig{}),
			NewContentOptimizer(ContentOptimizerConfig{}),
			NewSchemaValidator(false),
			NewGraphBuilder(false),
			NewMatchingService(&failingEmbedder{}, MatchConfig{}),
		)

		if _, err := pipeline.Run(context.Background()); err == nil {
			t.Error("Run() should fail when the embedding backend is down")
		}
	})
}
