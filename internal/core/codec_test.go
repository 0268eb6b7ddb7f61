package core

import (
	"strings"
	"testing"
)

var testCategoryIDs = map[string]bool{
	"cat_fl":    true,
	"cat_ep":    true,
	"cat_other": true,
}

// ----------------------------------------------------------------------------
// ParseCategoriesCSV Tests
// ----------------------------------------------------------------------------

func TestParseCategoriesCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantValid   int
		wantInvalid int
		wantReason  string // substring of the first invalid-row reason
	}{
		{
			name:      "valid rows",
			input:     "id,name,sortOrder\ncat_fl,Fruits,1\ncat_ep,Epicerie,2",
			wantValid: 2,
		},
		{
			name:      "header order and case do not matter",
			input:     "SortOrder,ID,Name\ncat_fl,Fruits,1",
			wantValid: 1,
		},
		{
			name:      "crlf line endings",
			input:     "id,name,sortOrder\r\ncat_fl,Fruits,1\r\n",
			wantValid: 1,
		},
		{
			name:      "blank lines skipped",
			input:     "id,name,sortOrder\n\ncat_fl,Fruits,1\n\n",
			wantValid: 1,
		},
		{
			name:        "missing header column rejects whole file",
			input:       "id,name\ncat_fl,Fruits",
			wantInvalid: 1,
			wantReason:  "invalid headers",
		},
		{
			name:        "wrong column count",
			input:       "id,name,sortOrder\ncat_fl,Fruits",
			wantInvalid: 1,
			wantReason:  "wrong column count (2 instead of 3)",
		},
		{
			name:        "extra column",
			input:       "id,name,sortOrder\ncat_fl,Fruits,1,bonus",
			wantInvalid: 1,
			wantReason:  "wrong column count (4 instead of 3)",
		},
		{
			name:        "non-numeric sortOrder",
			input:       "id,name,sortOrder\ncat_fl,Fruits,abc",
			wantInvalid: 1,
			wantReason:  "sortOrder missing",
		},
		{
			name:        "empty id",
			input:       "id,name,sortOrder\n,Fruits,1",
			wantInvalid: 1,
			wantReason:  "invalid row",
		},
		{
			name:        "bad row does not block valid siblings",
			input:       "id,name,sortOrder\ncat_fl,Fruits,1\nbroken\ncat_ep,Epicerie,2",
			wantValid:   2,
			wantInvalid: 1,
		},
		{
			name: "empty input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCategoriesCSV(tt.input)

			if got.Kind != ImportCategories {
				t.Errorf("Kind = %q, want %q", got.Kind, ImportCategories)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %d, want %d", got.Valid, tt.wantValid)
			}
			if got.Invalid != tt.wantInvalid {
				t.Errorf("Invalid = %d, want %d", got.Invalid, tt.wantInvalid)
			}
			if len(got.Categories) != tt.wantValid {
				t.Errorf("len(Categories) = %d, want %d", len(got.Categories), tt.wantValid)
			}
			if len(got.InvalidRows) != tt.wantInvalid {
				t.Fatalf("len(InvalidRows) = %d, want %d", len(got.InvalidRows), tt.wantInvalid)
			}
			if tt.wantReason != "" && !strings.Contains(got.InvalidRows[0].Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want substring %q", got.InvalidRows[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestParseCategoriesCSVLineNumbers(t *testing.T) {
	input := "id,name,sortOrder\ncat_fl,Fruits,1\nbroken line\ncat_ep,Epicerie,2"
	got := ParseCategoriesCSV(input)

	if len(got.InvalidRows) != 1 {
		t.Fatalf("len(InvalidRows) = %d, want 1", len(got.InvalidRows))
	}
	if got.InvalidRows[0].Row != 3 {
		t.Errorf("Row = %d, want 3 (1-based, header on line 1)", got.InvalidRows[0].Row)
	}
	if got.InvalidRows[0].Data != "broken line" {
		t.Errorf("Data = %q, want the raw line", got.InvalidRows[0].Data)
	}
}

// ----------------------------------------------------------------------------
// ParseProductsCSV Tests
// ----------------------------------------------------------------------------

func TestParseProductsCSV(t *testing.T) {
	const header = "id,categoryId,displayName,supplierRef,imageKey"

	tests := []struct {
		name        string
		input       string
		wantValid   int
		wantInvalid int
		wantReason  string
	}{
		{
			name:      "valid five-field rows",
			input:     header + "\nFL-001,cat_fl,Bananes,FL-001,banana",
			wantValid: 1,
		},
		{
			name:      "supplier column accepted",
			input:     header + ",supplierId\nFL-001,cat_fl,Bananes,FL-001,banana,sup_1",
			wantValid: 1,
		},
		{
			name:        "missing header column rejects whole file",
			input:       "id,categoryId,displayName\nFL-001,cat_fl,Bananes",
			wantInvalid: 1,
			wantReason:  "invalid headers",
		},
		{
			name:        "too few fields",
			input:       header + "\nFL-001,cat_fl,Bananes",
			wantInvalid: 1,
			wantReason:  "wrong column count (3, minimum 5)",
		},
		{
			name:        "missing required field",
			input:       header + "\nFL-001,cat_fl,,FL-001,banana",
			wantInvalid: 1,
			wantReason:  "required field missing",
		},
		{
			name:      "unknown category is remapped, not rejected",
			input:     header + "\nFL-001,cat_nope,Bananes,FL-001,banana",
			wantValid: 1,
		},
		{
			name:        "mixed valid and invalid",
			input:       header + "\nFL-001,cat_fl,Bananes,FL-001,banana\nshort\nFL-002,cat_fl,Pommes,FL-002,apple",
			wantValid:   2,
			wantInvalid: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseProductsCSV(tt.input, testCategoryIDs)

			if got.Kind != ImportProducts {
				t.Errorf("Kind = %q, want %q", got.Kind, ImportProducts)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %d, want %d", got.Valid, tt.wantValid)
			}
			if got.Invalid != tt.wantInvalid {
				t.Errorf("Invalid = %d, want %d", got.Invalid, tt.wantInvalid)
			}
			if len(got.InvalidRows) != tt.wantInvalid {
				t.Fatalf("len(InvalidRows) = %d, want %d", len(got.InvalidRows), tt.wantInvalid)
			}
			if tt.wantReason != "" && !strings.Contains(got.InvalidRows[0].Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want substring %q", got.InvalidRows[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestParseProductsCSVCategoryFallback(t *testing.T) {
	input := "id,categoryId,displayName,supplierRef,imageKey\nFL-001,cat_gone,Bananes,FL-001,banana"
	got := ParseProductsCSV(input, testCategoryIDs)

	if len(got.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1", len(got.Products))
	}
	if got.Products[0].CategoryID != FallbackCategoryID {
		t.Errorf("CategoryID = %q, want fallback %q", got.Products[0].CategoryID, FallbackCategoryID)
	}
	if got.Invalid != 0 {
		t.Errorf("Invalid = %d, want 0 (unknown category is not a rejection)", got.Invalid)
	}
}

func TestParseProductsCSVSupplierPassthrough(t *testing.T) {
	// supplierId is not validated at parse time; dangling references are
	// handled at supplier deletion, not here.
	input := "id,categoryId,displayName,supplierRef,imageKey,supplierId\nFL-001,cat_fl,Bananes,FL-001,banana,sup_unknown"
	got := ParseProductsCSV(input, testCategoryIDs)

	if got.Valid != 1 {
		t.Fatalf("Valid = %d, want 1", got.Valid)
	}
	if got.Products[0].SupplierID != "sup_unknown" {
		t.Errorf("SupplierID = %q, want passthrough %q", got.Products[0].SupplierID, "sup_unknown")
	}
}

func TestParseProductsCSVExcelArtifacts(t *testing.T) {
	input := "id,categoryId,displayName,supplierRef,imageKey\n=\"FL-001\",\"cat_fl\", Bananes ,FL-001,banana"
	got := ParseProductsCSV(input, testCategoryIDs)

	if got.Valid != 1 {
		t.Fatalf("Valid = %d, want 1, invalid rows: %+v", got.Valid, got.InvalidRows)
	}
	p := got.Products[0]
	if p.ID != "FL-001" {
		t.Errorf("ID = %q, want Excel prefix stripped", p.ID)
	}
	if p.CategoryID != "cat_fl" {
		t.Errorf("CategoryID = %q, want quotes stripped", p.CategoryID)
	}
	if p.DisplayName != "Bananes" {
		t.Errorf("DisplayName = %q, want whitespace trimmed", p.DisplayName)
	}
}

// ----------------------------------------------------------------------------
// Round-trip Tests
// ----------------------------------------------------------------------------

func TestCategoriesRoundTrip(t *testing.T) {
	categories := SeedCategories()

	got := ParseCategoriesCSV(ExportCategoriesCSV(categories))

	if got.Invalid != 0 {
		t.Fatalf("Invalid = %d, want 0, rows: %+v", got.Invalid, got.InvalidRows)
	}
	if len(got.Categories) != len(categories) {
		t.Fatalf("len(Categories) = %d, want %d", len(got.Categories), len(categories))
	}
	for i, c := range got.Categories {
		if c != categories[i] {
			t.Errorf("Categories[%d] = %+v, want %+v", i, c, categories[i])
		}
	}
}

func TestProductsRoundTrip(t *testing.T) {
	products := []Product{
		{ID: "FL-001", CategoryID: "cat_fl", DisplayName: "Bananes", SupplierRef: "FL-001", ImageKey: "banana", SupplierID: "sup_1"},
		{ID: "EP-001", CategoryID: "cat_ep", DisplayName: "Riz", SupplierRef: "EP-001", ImageKey: "rice"},
	}
	suppliers := []Supplier{{ID: "sup_1", Name: "Acme"}}

	got := ParseProductsCSV(ExportProductsCSV(products, suppliers), testCategoryIDs)

	if got.Invalid != 0 {
		t.Fatalf("Invalid = %d, want 0, rows: %+v", got.Invalid, got.InvalidRows)
	}
	if len(got.Products) != len(products) {
		t.Fatalf("len(Products) = %d, want %d", len(got.Products), len(products))
	}
	for i, p := range got.Products {
		if p != products[i] {
			t.Errorf("Products[%d] = %+v, want %+v", i, p, products[i])
		}
	}
}

func TestExportProductsCSVDenormalizesSupplierName(t *testing.T) {
	products := []Product{{ID: "FL-001", CategoryID: "cat_fl", DisplayName: "Bananes", SupplierRef: "FL-001", ImageKey: "banana", SupplierID: "sup_1"}}
	suppliers := []Supplier{{ID: "sup_1", Name: "Acme"}}

	out := ExportProductsCSV(products, suppliers)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("export has %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[1], ",sup_1,Acme") {
		t.Errorf("data row = %q, want supplierId and supplierName columns", lines[1])
	}
}
