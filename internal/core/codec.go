package core

// codec.go serializes catalog entities to the delimited import/export
// format and parses that format back into validated records.
//
// The format is deliberately simple: comma-delimited, one record per line,
// no quoting or escaping of embedded delimiters (a documented limitation of
// the exchange format, not something the parser tries to repair). Fields
// are positional; the header line is validated as a case-insensitive
// superset of the required column names.
//
// Parsing is per-row and best-effort: a malformed line is recorded as a
// diagnostic and never aborts the rest of the file, so the caller always
// gets an actionable valid/invalid breakdown to show before committing.

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	categoriesCSVHeader = "id,name,sortOrder"
	productsCSVHeader   = "id,categoryId,displayName,supplierRef,imageKey,supplierId,supplierName"
)

// ExportCategoriesCSV renders categories in current collection order.
func ExportCategoriesCSV(categories []Category) string {
	lines := make([]string, 0, len(categories)+1)
	lines = append(lines, categoriesCSVHeader)
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("%s,%s,%d", c.ID, c.Name, c.SortOrder))
	}
	return strings.Join(lines, "\n")
}

// ExportProductsCSV renders products in current collection order. The
// supplierName column is denormalized from the supplier collection at
// serialization time for readability; it is ignored on re-import.
func ExportProductsCSV(products []Product, suppliers []Supplier) string {
	names := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
	}

	lines := make([]string, 0, len(products)+1)
	lines = append(lines, productsCSVHeader)
	for _, p := range products {
		lines = append(lines, strings.Join([]string{
			p.ID, p.CategoryID, p.DisplayName, p.SupplierRef, p.ImageKey,
			p.SupplierID, names[p.SupplierID],
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// ParseCategoriesCSV parses category rows from delimited text.
//
// The header must contain the columns id, name and sortOrder (any order,
// any case); otherwise a single line-1 diagnostic is returned and no data
// rows are read. Each data row needs exactly 3 fields with non-empty id
// and name and an integer sortOrder.
func ParseCategoriesCSV(text string) ImportResult {
	result := ImportResult{Kind: ImportCategories, InvalidRows: []InvalidRow{}}

	lines := splitLines(text)
	if len(lines) == 0 {
		return result
	}

	if !headerHas(lines[0], "id", "name", "sortorder") {
		result.Invalid = 1
		result.InvalidRows = append(result.InvalidRows, InvalidRow{
			Row:    1,
			Reason: "invalid headers, expected: id,name,sortOrder",
			Data:   lines[0],
		})
		return result
	}

	for i, line := range lines[1:] {
		lineNum := i + 2 // 1-based, after header
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) != 3 {
			result.rejectRow(lineNum, fmt.Sprintf("wrong column count (%d instead of 3)", len(fields)), line)
			continue
		}

		id, name := fields[0], fields[1]
		sortOrder, err := strconv.Atoi(fields[2])
		if id == "" || name == "" || err != nil {
			result.rejectRow(lineNum, "invalid row (id, name or sortOrder missing)", line)
			continue
		}

		result.Categories = append(result.Categories, Category{ID: id, Name: name, SortOrder: sortOrder})
		result.Valid++
	}

	return result
}

// ParseProductsCSV parses product rows from delimited text.
//
// The header must contain id, categoryId, displayName, supplierRef and
// imageKey; a supplierId column additionally enables the optional 6th
// field. An unresolvable categoryId is not a rejection: the row stays
// valid and is silently re-homed to the fallback category. SupplierId is
// passed through unvalidated; dangling references are only detached when
// the supplier itself is deleted.
func ParseProductsCSV(text string, validCategoryIDs map[string]bool) ImportResult {
	result := ImportResult{Kind: ImportProducts, InvalidRows: []InvalidRow{}}

	lines := splitLines(text)
	if len(lines) == 0 {
		return result
	}

	if !headerHas(lines[0], "id", "categoryid", "displayname", "supplierref", "imagekey") {
		result.Invalid = 1
		result.InvalidRows = append(result.InvalidRows, InvalidRow{
			Row:    1,
			Reason: "invalid headers, expected: id,categoryId,displayName,supplierRef,imageKey[,supplierId,supplierName]",
			Data:   lines[0],
		})
		return result
	}
	hasSupplier := headerHas(lines[0], "supplierid")

	for i, line := range lines[1:] {
		lineNum := i + 2
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) < 5 {
			result.rejectRow(lineNum, fmt.Sprintf("wrong column count (%d, minimum 5)", len(fields)), line)
			continue
		}

		id, categoryID, displayName, supplierRef, imageKey := fields[0], fields[1], fields[2], fields[3], fields[4]
		if id == "" || displayName == "" || supplierRef == "" || imageKey == "" {
			result.rejectRow(lineNum, "invalid row (required field missing)", line)
			continue
		}

		if !validCategoryIDs[categoryID] {
			categoryID = FallbackCategoryID
		}

		p := Product{
			ID:          id,
			CategoryID:  categoryID,
			DisplayName: displayName,
			SupplierRef: supplierRef,
			ImageKey:    imageKey,
		}
		if hasSupplier && len(fields) > 5 {
			p.SupplierID = fields[5]
		}

		result.Products = append(result.Products, p)
		result.Valid++
	}

	return result
}

func (r *ImportResult) rejectRow(line int, reason, data string) {
	r.Invalid++
	r.InvalidRows = append(r.InvalidRows, InvalidRow{Row: line, Reason: reason, Data: data})
}

// splitLines trims the text and splits it into lines. Empty input yields
// no lines at all, so callers can return an all-zero result.
func splitLines(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// splitFields splits a data row on commas and cleans each cell.
func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = cleanCell(f)
	}
	return fields
}

// headerHas reports whether the header line contains every wanted column
// name, compared case-insensitively after cell cleanup.
func headerHas(headerLine string, wanted ...string) bool {
	have := make(map[string]bool)
	for _, h := range strings.Split(headerLine, ",") {
		have[strings.ToLower(cleanCell(h))] = true
	}
	for _, w := range wanted {
		if !have[w] {
			return false
		}
	}
	return true
}

// cleanCell removes common CSV artifacts from a cell value: surrounding
// whitespace, the Excel formula prefix (="value") and stray quotes.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else {
		s = strings.TrimPrefix(s, "=")
	}
	return strings.Trim(s, `"'`)
}
