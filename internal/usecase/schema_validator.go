package usecase

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopgraph/pipeline/internal/domain"
)

// Rule-string fragments recognized by the validator
var (
	maxLengthRuleRegex = regexp.MustCompile(`max (\d+) chars`)
	enumRuleRegex      = regexp.MustCompile(`enum\[(.*?)\]`)
)

// SchemaValidator checks enriched products against the AI schema contract.
// Validation reports problems; it never rejects a product from the run.
type SchemaValidator struct {
	enableDebugLogging bool
}

// NewSchemaValidator creates a schema validator
func NewSchemaValidator(enableDebugLogging bool) *SchemaValidator {
	return &SchemaValidator{enableDebugLogging: enableDebugLogging}
}

// ValidateProduct checks one product against the schema and returns the list
// of violations (empty when valid).
func (v *SchemaValidator) ValidateProduct(product domain.Product, schema domain.Schema) []string {
	fields := productFields(product)

	var errors []string

	for fieldName, rule := range schema.RequiredFields {
		value, ok := fields[fieldName]
		if !ok || isEmptyValue(value) {
			errors = append(errors, fmt.Sprintf("required field %q is missing or empty", fieldName))
			continue
		}
		errors = append(errors, validateRule(fieldName, value, rule)...)
	}

	for fieldName, rule := range schema.OptionalFields {
		value, ok := fields[fieldName]
		if !ok || isEmptyValue(value) {
			continue
		}
		errors = append(errors, validateRule(fieldName, value, rule)...)
	}

	sort.Strings(errors)

	if v.enableDebugLogging {
		if len(errors) > 0 {
			log.Printf("[VALIDATE] product %q has %d violations", product.ID, len(errors))
		} else {
			log.Printf("[VALIDATE] product %q passed validation", product.ID)
		}
	}

	return errors
}

// ValidateBatch validates every product and returns violations keyed by
// product ID. Products with no violations are absent from the result.
func (v *SchemaValidator) ValidateBatch(products []domain.Product, schema domain.Schema) map[string][]string {
	results := make(map[string][]string)

	for i, product := range products {
		id := product.ID
		if id == "" {
			id = fmt.Sprintf("product_%d", i)
		}
		if errors := v.ValidateProduct(product, schema); len(errors) > 0 {
			results[id] = errors
		}
	}

	return results
}

// Summary renders validation results as a human-readable report
func (v *SchemaValidator) Summary(results map[string][]string) string {
	if len(results) == 0 {
		return "all products passed schema validation"
	}

	total := 0
	ids := make([]string, 0, len(results))
	for id, errors := range results {
		total += len(errors)
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := []string{fmt.Sprintf("validation found %d violations in %d products:", total, len(results))}
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("product %s:", id))
		for _, e := range results[id] {
			lines = append(lines, "  - "+e)
		}
	}

	return strings.Join(lines, "\n")
}

// productFields exposes the validatable fields by their schema names
func productFields(product domain.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":                   product.ID,
		"title":                product.Title,
		"description":          product.Description,
		"brand":                product.Brand,
		"category":             product.Category,
		"price":                product.Price,
		"availability":         string(product.Availability),
		"image_link":           product.ImageLink,
		"ai_optimized_title":   product.AIOptimizedTitle,
		"ai_optimized_content": product.AIOptimizedContent,
	}
}

// validateRule checks one field value against a rule string such as
// "string, max 150 chars", "float, >0", "enum[in_stock,out_of_stock]" or "url"
func validateRule(fieldName string, value interface{}, rule string) []string {
	var errors []string
	ruleLower := strings.ToLower(rule)

	switch {
	case strings.Contains(ruleLower, "string"):
		s, ok := value.(string)
		if !ok {
			errors = append(errors, fmt.Sprintf("field %q should be a string", fieldName))
			break
		}
		if m := maxLengthRuleRegex.FindStringSubmatch(rule); m != nil {
			maxLen, _ := strconv.Atoi(m[1])
			if maxLen > 0 && len(s) > maxLen {
				errors = append(errors, fmt.Sprintf("field %q exceeds max length of %d characters", fieldName, maxLen))
			}
		}

	case strings.Contains(ruleLower, "float"):
		f, ok := value.(float64)
		if !ok {
			errors = append(errors, fmt.Sprintf("field %q should be numeric", fieldName))
			break
		}
		if strings.Contains(rule, ">0") && f <= 0 {
			errors = append(errors, fmt.Sprintf("field %q should be greater than 0", fieldName))
		}

	case strings.Contains(ruleLower, "enum"):
		allowed := parseEnumValues(rule)
		s := fmt.Sprintf("%v", value)
		if len(allowed) > 0 && !containsString(allowed, s) {
			errors = append(errors, fmt.Sprintf("field %q has invalid value %q (allowed: %s)",
				fieldName, s, strings.Join(allowed, ", ")))
		}

	case strings.Contains(ruleLower, "url"):
		s, _ := value.(string)
		if s != "" && !isValidURL(s) {
			errors = append(errors, fmt.Sprintf("field %q should be a valid URL", fieldName))
		}
	}

	return errors
}

// parseEnumValues extracts the allowed values from "enum[a,b,c]"
func parseEnumValues(rule string) []string {
	m := enumRuleRegex.FindStringSubmatch(rule)
	if m == nil {
		return nil
	}

	parts := strings.Split(m[1], ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func isValidURL(url string) bool {
	return strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "www.")
}

func isEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case nil:
		return true
	}
	return false
}
