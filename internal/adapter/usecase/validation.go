package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"pawfuel/internal/core/domain"
)

// Field names checked by the validator, in check order.
const (
	fieldProductID   = "product_id"
	fieldProductName = "product_name"
	fieldPrice       = "price"
	fieldCategory    = "category"
)

// ValidateRecord checks the four required fields of one raw row and returns
// either a normalized record or the accumulated field errors. The policy is
// all-or-nothing per row: if any field fails, no record is produced even
// though the other fields may be valid. Checks run in the order id, name,
// price, category; the two price checks (unparsable vs negative) are
// mutually exclusive. Pure function of its inputs.
func ValidateRecord(row domain.RawRow, rowIndex int) (*domain.DataRecord, []domain.ValidationError) {
	var errs []domain.ValidationError

	rawID := row[fieldProductID]
	productID, err := strconv.Atoi(strings.TrimSpace(fieldString(rawID)))
	if err != nil {
		errs = append(errs, domain.ValidationError{
			Row:     rowIndex,
			Field:   fieldProductID,
			Message: "Product ID must be a valid number",
			Value:   rawID,
		})
	}

	rawName := row[fieldProductName]
	name := strings.TrimSpace(fieldString(rawName))
	if name == "" {
		errs = append(errs, domain.ValidationError{
			Row:     rowIndex,
			Field:   fieldProductName,
			Message: "Product name is required",
			Value:   rawName,
		})
	}

	rawPrice := row[fieldPrice]
	price, err := strconv.ParseFloat(strings.TrimSpace(fieldString(rawPrice)), 64)
	if err != nil {
		errs = append(errs, domain.ValidationError{
			Row:     rowIndex,
			Field:   fieldPrice,
			Message: "Price must be a valid number",
			Value:   rawPrice,
		})
	} else if price < 0 {
		errs = append(errs, domain.ValidationError{
			Row:     rowIndex,
			Field:   fieldPrice,
			Message: "Price must be positive",
			Value:   price,
		})
	}

	rawCategory := row[fieldCategory]
	category := strings.TrimSpace(fieldString(rawCategory))
	if category == "" {
		errs = append(errs, domain.ValidationError{
			Row:     rowIndex,
			Field:   fieldCategory,
			Message: "Category is required",
			Value:   rawCategory,
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &domain.DataRecord{
		ProductID:   productID,
		ProductName: name,
		Price:       price,
		Category:    category,
	}, nil
}

// ValidateAll applies ValidateRecord to every row in input order, reporting
// 1-based row numbers. It is a total partition: every input row contributes
// either exactly one valid record or at least one error, never both. Pure
// and idempotent.
func ValidateAll(rows []domain.RawRow) domain.ValidationResult {
	res := domain.ValidationResult{
		Valid:  []domain.DataRecord{},
		Errors: []domain.ValidationError{},
	}
	for i, row := range rows {
		record, errs := ValidateRecord(row, i+1)
		if record != nil {
			res.Valid = append(res.Valid, *record)
		}
		res.Errors = append(res.Errors, errs...)
	}
	return res
}

// fieldString renders an untyped cell for parsing. CSV cells arrive as
// strings; JSON rows may carry numbers, which are rendered without a
// floating-point exponent so "42" round-trips as an integer.
func fieldString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
