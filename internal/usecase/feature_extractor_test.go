package usecase

import (
	"reflect"
	"testing"
)

func TestFeatureExtractor_Extract(t *testing.T) {
	extractor := NewFeatureExtractor(FeatureExtractorConfig{})

	tests := []struct {
		name        string
		title       string
		description string
		want        []string
	}{
		{
			name:        "material from description",
			title:       "Ladies Dress",
			description: "summer cotton dress",
			want:        []string{"cotton"},
		},
		{
			name:        "multiple materials",
			title:       "Organic Cotton Tee",
			description: "soft and breathable",
			want:        []string{"cotton", "organic"},
		},
		{
			name:        "fit keywords map to tags",
			title:       "Slim Jeans",
			description: "denim with stretch",
			want:        []string{"denim", "slim_fit", "stretchy"},
		},
		{
			name:        "colors get suffix",
			title:       "Blue Hoodie",
			description: "classic black drawstrings",
			want:        []string{"blue_color", "black_color"},
		},
		{
			name:        "case insensitive",
			title:       "COTTON SOCKS",
			description: "",
			want:        []string{"cotton"},
		},
		{
			name:        "no features",
			title:       "Gift Card",
			description: "redeemable online",
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.title, tt.description)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeatureExtractor_CustomDictionaries(t *testing.T) {
	extractor := NewFeatureExtractor(FeatureExtractorConfig{
		Materials: []string{"linen"},
		Colors:    []string{"red"},
	})

	got := extractor.Extract("Red Linen Shirt", "cotton blend")
	want := []string{"linen", "red_color"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v (cotton not in custom dictionary)", got, want)
	}
}
