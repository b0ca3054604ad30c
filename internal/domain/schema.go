package domain

// Schema describes the AI catalog contract that enriched products are
// validated against. Rules are compact strings such as
// "string, max 150 chars", "float, >0", "enum[in_stock,out_of_stock,unknown]"
// or "url", loaded from the schema JSON input.
type Schema struct {
	RequiredFields map[string]string `json:"required_fields"`
	OptionalFields map[string]string `json:"optional_fields"`
}
