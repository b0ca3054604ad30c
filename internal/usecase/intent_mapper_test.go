package usecase

import (
	"reflect"
	"testing"

	"github.com/shopgraph/pipeline/internal/domain"
)

func TestIntentMapper_ExtractIntents(t *testing.T) {
	mapper := NewIntentMapper(IntentMapperConfig{})

	t.Run("combines text, price and category signals", func(t *testing.T) {
		product := domain.Product{
			ID:          "p1",
			Title:       "Ladies Dress",
			Description: "summer cotton dress",
			Category:    "clothes/women/dresses",
			Price:       25,
		}

		got := mapper.ExtractIntents(product)
		want := []string{"budget_friendly", "dress_shopping", "fashion", "style", "summer"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExtractIntents() = %v, want %v", got, want)
		}
	})

	t.Run("price at or above threshold is not budget friendly", func(t *testing.T) {
		product := domain.Product{ID: "p2", Title: "Plain Tote", Price: 30}
		for _, intent := range mapper.ExtractIntents(product) {
			if intent == "budget_friendly" {
				t.Error("price 30 must not map to budget_friendly")
			}
		}
	})

	t.Run("zero price is not budget friendly", func(t *testing.T) {
		product := domain.Product{ID: "p3", Title: "Plain Tote", Price: 0}
		for _, intent := range mapper.ExtractIntents(product) {
			if intent == "budget_friendly" {
				t.Error("unknown price must not map to budget_friendly")
			}
		}
	})

	t.Run("eco keywords map to eco_friendly", func(t *testing.T) {
		product := domain.Product{
			ID:          "p4",
			Title:       "Organic Cotton Tee",
			Description: "sustainable everyday basic",
			Price:       45,
		}

		got := mapper.ExtractIntents(product)
		want := []string{"casual", "eco_friendly", "summer"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExtractIntents() = %v, want %v", got, want)
		}
	})

	t.Run("no signals yields empty slice", func(t *testing.T) {
		product := domain.Product{ID: "p5", Title: "Widget", Price: 99}
		got := mapper.ExtractIntents(product)
		if len(got) != 0 {
			t.Errorf("ExtractIntents() = %v, want none", got)
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		product := domain.Product{
			ID:          "p6",
			Title:       "Cozy Hoodie",
			Description: "soft comfortable everyday wear",
			Category:    "clothes/men/hoodies",
			Price:       20,
		}

		first := mapper.ExtractIntents(product)
		for i := 0; i < 10; i++ {
			if got := mapper.ExtractIntents(product); !reflect.DeepEqual(got, first) {
				t.Fatalf("run %d returned %v, first run returned %v", i, got, first)
			}
		}
	})
}

func TestIntentMapper_CustomDictionaries(t *testing.T) {
	mapper := NewIntentMapper(IntentMapperConfig{
		IntentKeywords:  map[string][]string{"hiking": {"trail", "hike"}},
		CategoryIntents: map[string][]string{"boot": {"outdoor_gear"}},
		BudgetThreshold: 100,
	})

	product := domain.Product{
		ID:          "p7",
		Title:       "Trail Boots",
		Description: "waterproof hike-ready",
		Category:    "footwear/boots",
		Price:       80,
	}

	got := mapper.ExtractIntents(product)
	want := []string{"budget_friendly", "hiking", "outdoor_gear"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractIntents() = %v, want %v", got, want)
	}
}
