package usecase

import (
	"strings"
	"testing"

	"github.com/shopgraph/pipeline/internal/domain"
)

func TestEvaluateConstraints(t *testing.T) {
	svc := NewMatchingService(newHashEmbedder(), MatchConfig{})

	t.Run("no price constraint contributes nothing", func(t *testing.T) {
		query := ParseQuery("comfortable shoes")
		product := domain.Product{ID: "p", Price: 99, AIOptimizedContent: "x"}

		boost, reason := svc.evaluateConstraints(query, product)
		if boost != 0 {
			t.Errorf("boost = %v, want 0", boost)
		}
		if reason != "Partial match" {
			t.Errorf("reason = %q, want Partial match", reason)
		}
	})

	t.Run("price within bound adds boost and reason", func(t *testing.T) {
		query := ParseQuery("shoes under $50")
		product := domain.Product{ID: "p", Price: 49.5}

		boost, reason := svc.evaluateConstraints(query, product)
		if boost != 0.3 {
			t.Errorf("boost = %v, want 0.3", boost)
		}
		if reason != "Price in range ($49.5)" {
			t.Errorf("reason = %q, want Price in range ($49.5)", reason)
		}
	})

	t.Run("price on the bound counts as in range", func(t *testing.T) {
		query := ParseQuery("shoes under $50")
		product := domain.Product{ID: "p", Price: 50}

		boost, reason := svc.evaluateConstraints(query, product)
		if boost != 0.3 {
			t.Errorf("boost = %v, want 0.3", boost)
		}
		if reason != "Price in range ($50)" {
			t.Errorf("reason = %q, want Price in range ($50)", reason)
		}
	})

	t.Run("price above bound penalizes", func(t *testing.T) {
		query := ParseQuery("shoes under $50")
		product := domain.Product{ID: "p", Price: 80}

		boost, reason := svc.evaluateConstraints(query, product)
		if boost != -0.2 {
			t.Errorf("boost = %v, want -0.2", boost)
		}
		if reason != "Price above range" {
			t.Errorf("reason = %q, want Price above range", reason)
		}
	})

	t.Run("feature matches accumulate per feature", func(t *testing.T) {
		query := ParseQuery("stretchy cotton leggings")
		product := domain.Product{
			ID:       "p",
			Price:    20,
			Features: []string{"cotton", "stretchy", "black_color"},
		}

		boost, reason := svc.evaluateConstraints(query, product)
		if diff := boost - 0.2; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("boost = %v, want 0.2 (two feature matches)", boost)
		}
		if !strings.HasPrefix(reason, "Has ") {
			t.Errorf("reason = %q, want feature reason", reason)
		}
	})

	t.Run("intent and category segments boost", func(t *testing.T) {
		query := ParseQuery("summer dresses")
		product := domain.Product{
			ID:       "p",
			Price:    20,
			Category: "clothes/women/dresses",
			Intents:  []string{"summer"},
		}

		boost, reason := svc.evaluateConstraints(query, product)
		if diff := boost - 0.2; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("boost = %v, want 0.2 (intent + category segment)", boost)
		}
		if !strings.HasPrefix(reason, "Matches ") {
			t.Errorf("reason = %q, want intent reason", reason)
		}
	})

	t.Run("price reason wins over feature match", func(t *testing.T) {
		query := ParseQuery("cotton dress under $30")
		product := domain.Product{
			ID:       "p",
			Price:    29.99,
			Features: []string{"cotton"},
		}

		boost, reason := svc.evaluateConstraints(query, product)
		if diff := boost - 0.4; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("boost = %v, want 0.4 (price + feature)", boost)
		}
		if reason != "Price in range ($29.99)" {
			t.Errorf("reason = %q, want price reason to take precedence", reason)
		}
	})

	t.Run("feature reason wins over intent match", func(t *testing.T) {
		query := ParseQuery("cozy wool sweater")
		product := domain.Product{
			ID:       "p",
			Price:    60,
			Features: []string{"wool"},
			Intents:  []string{"comfort", "cozy_wear"},
		}

		_, reason := svc.evaluateConstraints(query, product)
		if reason != "Has wool" {
			t.Errorf("reason = %q, want Has wool", reason)
		}
	})
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{29.99, "29.99"},
		{30, "30"},
		{0, "0"},
		{19.9, "19.9"},
		{1234.5, "1234.5"},
	}

	for _, tt := range tests {
		if got := formatPrice(tt.price); got != tt.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}
