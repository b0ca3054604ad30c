package usecase

import (
	"log"
	"strings"
)

// FeatureExtractorConfig holds the keyword dictionaries for extraction.
// The recognized entries live in configuration so merchandisers can extend
// them without code changes.
type FeatureExtractorConfig struct {
	Materials          []string
	Colors             []string
	EnableDebugLogging bool
}

// FeatureExtractor pulls structural features (material, fit, color) out of
// normalized product text
type FeatureExtractor struct {
	materials          []string
	colors             []string
	enableDebugLogging bool
}

// NewFeatureExtractor creates a feature extractor with the given dictionaries
func NewFeatureExtractor(config FeatureExtractorConfig) *FeatureExtractor {
	materials := config.Materials
	if len(materials) == 0 {
		materials = []string{"cotton", "organic", "denim", "wool"}
	}

	colors := config.Colors
	if len(colors) == 0 {
		colors = []string{"white", "blue", "black"}
	}

	return &FeatureExtractor{
		materials:          materials,
		colors:             colors,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Extract returns the features mentioned in the product title and description.
// Material keywords pass through as-is, style keywords map to fit tags, and
// colors become "<color>_color".
func (e *FeatureExtractor) Extract(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	var features []string

	for _, material := range e.materials {
		if strings.Contains(text, material) {
			features = append(features, material)
		}
	}

	if strings.Contains(text, "slim") {
		features = append(features, "slim_fit")
	}
	if strings.Contains(text, "stretch") {
		features = append(features, "stretchy")
	}

	for _, color := range e.colors {
		if strings.Contains(text, color) {
			features = append(features, color+"_color")
		}
	}

	if e.enableDebugLogging {
		log.Printf("[FEATURES] extracted %d features: %v", len(features), features)
	}

	return features
}
