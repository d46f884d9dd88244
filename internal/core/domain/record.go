package domain

// RawRow is an untyped record parsed from one CSV line or submitted as loose
// JSON. Values are strings when coming from the CSV reader but may be numbers
// when decoded from JSON, so consumers must not assume a concrete type.
type RawRow map[string]any

// DataRecord is a validated, normalized product record. Instances are only
// produced by the validator; once constructed, ProductName and Category are
// trimmed and non-empty and Price is a non-negative number.
type DataRecord struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}

// ValidationError describes a single failed field check. Row is 1-based.
// Value preserves the offending input for display: the raw field value for
// parse failures, the parsed number for the negative-price check.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// ValidationResult partitions an uploaded dataset. Every input row
// contributes either exactly one record to Valid or at least one entry to
// Errors, never both. Both slices preserve input order.
type ValidationResult struct {
	Valid  []DataRecord      `json:"valid"`
	Errors []ValidationError `json:"errors"`
}
