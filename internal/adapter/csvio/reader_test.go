package csvio

import (
	"strings"
	"testing"
)

func TestReadRowsHeaderMapping(t *testing.T) {
	in := "Product_ID, Product_Name ,PRICE,category\n1,Mug,9.99,kitchen\n2,Bowl,12.50,kitchen\n"
	rows, err := ReadRows(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["product_id"] != "1" || rows[0]["product_name"] != "Mug" || rows[0]["price"] != "9.99" {
		t.Fatalf("header names not normalized: %v", rows[0])
	}
	if rows[1]["category"] != "kitchen" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}

func TestReadRowsStripsBOM(t *testing.T) {
	in := "\xEF\xBB\xBFproduct_name,price\nMug,9.99\n"
	rows, err := ReadRows(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if _, ok := rows[0]["product_name"]; !ok {
		t.Fatalf("BOM leaked into first header: %v", rows[0])
	}
}

func TestReadRowsShortAndLongRows(t *testing.T) {
	in := "product_name,price,category\nMug,9.99\nBowl,12.50,kitchen,extra\n"
	rows, err := ReadRows(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if _, ok := rows[0]["category"]; ok {
		t.Fatalf("short row should omit trailing columns: %v", rows[0])
	}
	if len(rows[1]) != 3 {
		t.Fatalf("long row should drop extras: %v", rows[1])
	}
}

func TestReadRowsQuotedFields(t *testing.T) {
	in := "product_name,category\n\"Mug, large\",\"kitchen \"\"deluxe\"\"\"\n"
	rows, err := ReadRows(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if rows[0]["product_name"] != "Mug, large" || rows[0]["category"] != `kitchen "deluxe"` {
		t.Fatalf("quoted fields mishandled: %v", rows[0])
	}
}

func TestReadRowsEmptyInput(t *testing.T) {
	if _, err := ReadRows(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}
