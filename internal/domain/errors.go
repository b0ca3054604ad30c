package domain

import "errors"

var (
	// ErrModelUnavailable is returned when the embedding backend cannot be
	// reached or fails to produce a vector. Fatal to the current match run.
	ErrModelUnavailable = errors.New("embedding model unavailable")

	// ErrMalformedProduct is returned for product records missing required
	// fields such as ai_optimized_content. Local to one product, never fatal.
	ErrMalformedProduct = errors.New("malformed product record")

	// ErrInvalidQuery is returned when a query cannot be processed at all.
	// Empty query text is valid; this covers genuinely unusable input.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrProductNotFound is returned when a product ID is not in the store
	ErrProductNotFound = errors.New("product not found")

	// ErrUnsupportedFormat is returned for input files in a format the
	// loader does not understand
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
