package usecase

import (
	"log"

	"github.com/shopgraph/pipeline/internal/domain"
)

// GraphBuilder assembles the knowledge graph from enriched products
type GraphBuilder struct {
	enableDebugLogging bool
}

// NewGraphBuilder creates a graph builder
func NewGraphBuilder(enableDebugLogging bool) *GraphBuilder {
	return &GraphBuilder{enableDebugLogging: enableDebugLogging}
}

// Build creates a knowledge graph over the given products: one node per
// product, a serves_intent edge per intent tag and a belongs_to edge for the
// category. Products without an ID cannot be addressed in the graph and are
// skipped.
func (b *GraphBuilder) Build(products []domain.Product) domain.KnowledgeGraph {
	graph := domain.KnowledgeGraph{
		Products:      make(map[string]domain.GraphNode),
		Relationships: []domain.GraphEdge{},
	}

	for _, product := range products {
		if product.ID == "" {
			continue
		}

		title := product.AIOptimizedTitle
		if title == "" {
			title = product.Title
		}

		graph.Products[product.ID] = domain.GraphNode{
			Title:    title,
			Category: product.Category,
			Intents:  product.Intents,
			Features: product.Features,
			Price:    product.Price,
		}

		for _, intent := range product.Intents {
			graph.Relationships = append(graph.Relationships, domain.GraphEdge{
				Type:   domain.EdgeServesIntent,
				Source: product.ID,
				Target: intent,
			})
		}

		if product.Category != "" {
			graph.Relationships = append(graph.Relationships, domain.GraphEdge{
				Type:   domain.EdgeBelongsTo,
				Source: product.ID,
				Target: product.Category,
			})
		}
	}

	if b.enableDebugLogging {
		log.Printf("[GRAPH] built knowledge graph with %d products and %d relationships",
			len(graph.Products), len(graph.Relationships))
	}

	return graph
}
