package core

// projection.go derives the shopping-list views from the catalog plus the
// cart state. These are pure reads: the export collaborators (messaging
// deep-link, mail composer, print view) consume them and never mutate.

import (
	"fmt"
	"strings"
)

// NoSupplierLabel is the group label for list items whose product has no
// supplier attached.
const NoSupplierLabel = "no supplier"

// ListItems returns one entry per product with a positive cart quantity,
// joined against the category and supplier collections, in product
// collection order. No further sort is applied.
func (s *Store) ListItems() []ListItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make(map[string]Category, len(s.categories))
	for _, c := range s.categories {
		categories[c.ID] = c
	}
	suppliers := make(map[string]Supplier, len(s.suppliers))
	for _, sup := range s.suppliers {
		suppliers[sup.ID] = sup
	}

	var items []ListItem
	for _, p := range s.products {
		qty := s.quantities[p.ID]
		if qty <= 0 {
			continue
		}
		item := ListItem{Product: p, Quantity: qty}
		if c, ok := categories[p.CategoryID]; ok {
			item.Category = &c
		}
		if sup, ok := suppliers[p.SupplierID]; ok {
			item.Supplier = &sup
		}
		items = append(items, item)
	}
	return items
}

// GroupedExport groups the list items by supplier name and returns the
// structured sections consumed by the print collaborator. Groups appear in
// order of their first item.
func (s *Store) GroupedExport() []GroupedSection {
	var (
		sections []GroupedSection
		index    = make(map[string]int)
	)

	for _, item := range s.ListItems() {
		label := NoSupplierLabel
		if item.Supplier != nil {
			label = item.Supplier.Name
		}

		i, ok := index[label]
		if !ok {
			i = len(sections)
			index[label] = i
			sections = append(sections, GroupedSection{Category: label})
		}
		sections[i].Items = append(sections[i].Items, ExportItem{
			Ref: item.Product.SupplierRef,
			Qty: item.Quantity,
		})
	}

	return sections
}

// ExportText renders the canonical plain-text list shared by every export
// channel: one block per supplier group, a header line followed by
// "<supplierRef> x<quantity>" lines, blocks separated by a blank line.
func (s *Store) ExportText() string {
	var b strings.Builder
	for i, section := range s.GroupedExport() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(section.Category)
		for _, item := range section.Items {
			fmt.Fprintf(&b, "\n%s x%d", item.Ref, item.Qty)
		}
	}
	return strings.TrimSpace(b.String())
}

// SearchProducts filters the catalog by a case-insensitive query over
// display name and supplier reference, optionally restricted to
// favorites. An empty query matches everything.
func (s *Store) SearchProducts(query string, favoritesOnly bool) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var out []Product
	for _, p := range s.products {
		if favoritesOnly {
			if _, ok := s.favorites[p.ID]; !ok {
				continue
			}
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.DisplayName), query) &&
			!strings.Contains(strings.ToLower(p.SupplierRef), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
