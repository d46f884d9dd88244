package usecase

import (
	"reflect"
	"testing"

	"pawfuel/internal/core/domain"
)

// TestValidateRecordValid ensures a clean row produces a trimmed, parsed
// record and no errors.
func TestValidateRecordValid(t *testing.T) {
	row := domain.RawRow{
		"product_id":   "1",
		"product_name": "  Mug  ",
		"price":        "9.99",
		"category":     " Home ",
	}
	record, errs := ValidateRecord(row, 1)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record == nil {
		t.Fatal("expected record")
	}
	if record.ProductID != 1 || record.ProductName != "Mug" || record.Price != 9.99 || record.Category != "Home" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

// TestValidateRecordAllOrNothing ensures a row with one bad field produces
// no record even though the other fields are valid.
func TestValidateRecordAllOrNothing(t *testing.T) {
	row := domain.RawRow{
		"product_id":   "2",
		"product_name": "   ",
		"price":        "5.00",
		"category":     "Home",
	}
	record, errs := ValidateRecord(row, 3)
	if record != nil {
		t.Fatalf("expected no record, got %+v", record)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Field != "product_name" || errs[0].Row != 3 {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
	if errs[0].Message != "Product name is required" {
		t.Fatalf("unexpected message: %s", errs[0].Message)
	}
}

// TestValidateRecordPriceChecks ensures the two price checks are mutually
// exclusive: unparsable yields the parse message, negative yields the
// positivity message with the parsed value preserved.
func TestValidateRecordPriceChecks(t *testing.T) {
	_, errs := ValidateRecord(domain.RawRow{
		"product_id": "1", "product_name": "Mug", "price": "abc", "category": "Home",
	}, 1)
	if len(errs) != 1 || errs[0].Message != "Price must be a valid number" {
		t.Fatalf("unexpected errors for unparsable price: %+v", errs)
	}
	if errs[0].Value != "abc" {
		t.Fatalf("expected raw value preserved, got %v", errs[0].Value)
	}

	_, errs = ValidateRecord(domain.RawRow{
		"product_id": "1", "product_name": "Mug", "price": "-5", "category": "Home",
	}, 1)
	if len(errs) != 1 || errs[0].Message != "Price must be positive" {
		t.Fatalf("unexpected errors for negative price: %+v", errs)
	}
	if errs[0].Value != float64(-5) {
		t.Fatalf("expected parsed value preserved, got %v", errs[0].Value)
	}
}

// TestValidateRecordFieldOrder ensures errors accumulate in check order:
// id, name, price, category.
func TestValidateRecordFieldOrder(t *testing.T) {
	_, errs := ValidateRecord(domain.RawRow{}, 1)
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d", len(errs))
	}
	want := []string{"product_id", "product_name", "price", "category"}
	for i, f := range want {
		if errs[i].Field != f {
			t.Fatalf("error %d: expected field %s, got %s", i, f, errs[i].Field)
		}
	}
}

// TestValidateAll exercises the concrete partition scenario: one valid row,
// one row with two errors reported as row 2.
func TestValidateAll(t *testing.T) {
	rows := []domain.RawRow{
		{"product_id": "1", "product_name": "Mug", "price": "9.99", "category": "Home"},
		{"product_id": "2", "product_name": "", "price": "-5", "category": "Home"},
	}
	res := ValidateAll(rows)

	if len(res.Valid) != 1 {
		t.Fatalf("expected 1 valid record, got %d", len(res.Valid))
	}
	want := domain.DataRecord{ProductID: 1, ProductName: "Mug", Price: 9.99, Category: "Home"}
	if res.Valid[0] != want {
		t.Fatalf("unexpected record: %+v", res.Valid[0])
	}

	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(res.Errors))
	}
	if res.Errors[0].Row != 2 || res.Errors[0].Field != "product_name" {
		t.Fatalf("unexpected first error: %+v", res.Errors[0])
	}
	if res.Errors[1].Row != 2 || res.Errors[1].Field != "price" || res.Errors[1].Message != "Price must be positive" {
		t.Fatalf("unexpected second error: %+v", res.Errors[1])
	}
}

// TestValidateAllIdempotent ensures re-running the pipeline on the same
// input yields identical output.
func TestValidateAllIdempotent(t *testing.T) {
	rows := []domain.RawRow{
		{"product_id": "x", "product_name": "A", "price": "1", "category": ""},
		{"product_id": "7", "product_name": "B", "price": "2.5", "category": "Toys"},
	}
	first := ValidateAll(rows)
	second := ValidateAll(rows)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

// TestValidateAllNumericCells ensures JSON-sourced numeric cells validate
// the same as their string forms.
func TestValidateAllNumericCells(t *testing.T) {
	rows := []domain.RawRow{
		{"product_id": float64(3), "product_name": "Bowl", "price": float64(12), "category": "Kitchen"},
	}
	res := ValidateAll(rows)
	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", res.Errors)
	}
	if res.Valid[0].ProductID != 3 || res.Valid[0].Price != 12 {
		t.Fatalf("unexpected record: %+v", res.Valid[0])
	}
}
