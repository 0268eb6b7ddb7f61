package core

import (
	"context"
	"testing"
)

// exportFixture builds a store with two suppliers, one detached product and
// a small cart.
func exportFixture(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.AddSupplier(ctx, Supplier{ID: "sup_acme", Name: "Acme"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddSupplier(ctx, Supplier{ID: "sup_bio", Name: "BioGros"}); err != nil {
		t.Fatal(err)
	}

	products := []Product{
		{ID: "FL-001", CategoryID: "cat_fl", DisplayName: "Bananes", SupplierRef: "FL-001", ImageKey: "banana", SupplierID: "sup_acme"},
		{ID: "FL-002", CategoryID: "cat_fl", DisplayName: "Pommes", SupplierRef: "FL-002", ImageKey: "apple", SupplierID: "sup_bio"},
		{ID: "EP-001", CategoryID: "cat_ep", DisplayName: "Riz", SupplierRef: "EP-001", ImageKey: "rice", SupplierID: "sup_acme"},
		{ID: "EP-002", CategoryID: "cat_ep", DisplayName: "Pâtes", SupplierRef: "EP-002", ImageKey: "pasta"},
	}
	if err := s.UpdateProducts(ctx, products, ModeReplace); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestListItems(t *testing.T) {
	ctx := context.Background()
	s := exportFixture(t)

	s.SetQuantity(ctx, "FL-001", 2)
	s.SetQuantity(ctx, "EP-002", 1)

	items := s.ListItems()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 (only positive quantities)", len(items))
	}

	// Product collection order, not quantity or alphabetical order.
	if items[0].Product.ID != "FL-001" || items[1].Product.ID != "EP-002" {
		t.Fatalf("item order = %s, %s; want FL-001, EP-002", items[0].Product.ID, items[1].Product.ID)
	}

	first := items[0]
	if first.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", first.Quantity)
	}
	if first.Supplier == nil || first.Supplier.Name != "Acme" {
		t.Errorf("Supplier = %+v, want Acme joined", first.Supplier)
	}
	if first.Category == nil || first.Category.ID != "cat_fl" {
		t.Errorf("Category = %+v, want cat_fl joined", first.Category)
	}

	if items[1].Supplier != nil {
		t.Errorf("Supplier = %+v, want nil for detached product", items[1].Supplier)
	}
}

func TestGroupedExport(t *testing.T) {
	ctx := context.Background()
	s := exportFixture(t)

	s.SetQuantity(ctx, "FL-001", 2) // Acme
	s.SetQuantity(ctx, "FL-002", 1) // BioGros
	s.SetQuantity(ctx, "EP-001", 3) // Acme again
	s.SetQuantity(ctx, "EP-002", 1) // no supplier

	sections := s.GroupedExport()
	if len(sections) != 3 {
		t.Fatalf("len(sections) = %d, want 3", len(sections))
	}

	// Groups appear in first-item order; same-supplier items collapse into
	// one section.
	wantLabels := []string{"Acme", "BioGros", NoSupplierLabel}
	for i, want := range wantLabels {
		if sections[i].Category != want {
			t.Errorf("sections[%d].Category = %q, want %q", i, sections[i].Category, want)
		}
	}

	acme := sections[0].Items
	if len(acme) != 2 {
		t.Fatalf("Acme items = %d, want 2", len(acme))
	}
	if acme[0] != (ExportItem{Ref: "FL-001", Qty: 2}) {
		t.Errorf("Acme item 0 = %+v", acme[0])
	}
	if acme[1] != (ExportItem{Ref: "EP-001", Qty: 3}) {
		t.Errorf("Acme item 1 = %+v", acme[1])
	}
}

func TestExportText(t *testing.T) {
	ctx := context.Background()
	s := exportFixture(t)

	s.SetQuantity(ctx, "FL-001", 2)
	s.SetQuantity(ctx, "EP-001", 3)
	s.SetQuantity(ctx, "EP-002", 1)

	want := "Acme\nFL-001 x2\nEP-001 x3\n\nno supplier\nEP-002 x1"
	if got := s.ExportText(); got != want {
		t.Errorf("ExportText = %q, want %q", got, want)
	}
}

func TestExportTextEmptyCart(t *testing.T) {
	s := exportFixture(t)
	if got := s.ExportText(); got != "" {
		t.Errorf("ExportText = %q, want empty string", got)
	}
}

func TestSearchProducts(t *testing.T) {
	ctx := context.Background()
	s := exportFixture(t)
	s.ToggleFavorite(ctx, "FL-001")

	tests := []struct {
		name          string
		query         string
		favoritesOnly bool
		wantIDs       []string
	}{
		{name: "empty query matches all", wantIDs: []string{"FL-001", "FL-002", "EP-001", "EP-002"}},
		{name: "name match case-insensitive", query: "BANANES", wantIDs: []string{"FL-001"}},
		{name: "supplier ref match", query: "ep-0", wantIDs: []string{"EP-001", "EP-002"}},
		{name: "favorites only", favoritesOnly: true, wantIDs: []string{"FL-001"}},
		{name: "favorites only with query miss", query: "riz", favoritesOnly: true, wantIDs: nil},
		{name: "no match", query: "zzz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SearchProducts(tt.query, tt.favoritesOnly)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("result[%d] = %q, want %q", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}
