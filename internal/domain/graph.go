package domain

// EdgeType classifies a relationship in the knowledge graph
type EdgeType string

const (
	// EdgeServesIntent links a product to a user intent it serves
	EdgeServesIntent EdgeType = "serves_intent"

	// EdgeBelongsTo links a product to its category path
	EdgeBelongsTo EdgeType = "belongs_to"
)

// GraphNode is a product node in the knowledge graph
type GraphNode struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Intents  []string `json:"intents"`
	Features []string `json:"features"`
	Price    float64  `json:"price"`
}

// GraphEdge is a typed, directed relationship between a product node and an
// intent or category target
type GraphEdge struct {
	Type   EdgeType `json:"type"`
	Source string   `json:"source"`
	Target string   `json:"target"`
}

// KnowledgeGraph links products to the intents they serve and the categories
// they belong to. An explicit node set plus typed edge list keeps graph
// queries (traversal, related products) possible without restructuring.
type KnowledgeGraph struct {
	Products      map[string]GraphNode `json:"products"`
	Relationships []GraphEdge          `json:"relationships"`
}

// IntentsOf returns the intent targets reachable from a product node.
func (g *KnowledgeGraph) IntentsOf(productID string) []string {
	var intents []string
	for _, edge := range g.Relationships {
		if edge.Type == EdgeServesIntent && edge.Source == productID {
			intents = append(intents, edge.Target)
		}
	}
	return intents
}

// RelatedProducts returns IDs of other products that serve at least one of
// the same intents as the given product, in edge order.
func (g *KnowledgeGraph) RelatedProducts(productID string) []string {
	shared := make(map[string]bool)
	for _, intent := range g.IntentsOf(productID) {
		shared[intent] = true
	}

	var related []string
	seen := map[string]bool{productID: true}
	for _, edge := range g.Relationships {
		if edge.Type != EdgeServesIntent || seen[edge.Source] {
			continue
		}
		if shared[edge.Target] {
			related = append(related, edge.Source)
			seen[edge.Source] = true
		}
	}
	return related
}
