package core

// catalog.go is the reconciler: it applies imports and manual edits to the
// live catalog and repairs referential integrity afterwards. Products never
// keep a dangling category reference (they are re-homed to the fallback
// category), and removing a product always removes its cart quantity and
// favorite membership.

import (
	"context"

	"github.com/google/uuid"
)

// ValidCategoryIDs returns the set of live category ids, as consumed by
// ParseProductsCSV.
func (s *Store) ValidCategoryIDs() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryIDSet()
}

// categoryIDSet builds the id set of the current category collection.
// Caller holds at least a read lock.
func (s *Store) categoryIDSet() map[string]bool {
	ids := make(map[string]bool, len(s.categories))
	for _, c := range s.categories {
		ids[c.ID] = true
	}
	return ids
}

// ApplyImport commits a parsed import to the catalog under the given mode.
// Only the valid records of the result are applied; the invalid-row
// diagnostics have already served their purpose at preview time.
func (s *Store) ApplyImport(ctx context.Context, res ImportResult, mode ApplyMode) error {
	switch res.Kind {
	case ImportCategories:
		return s.UpdateCategories(ctx, res.Categories, mode)
	case ImportProducts:
		return s.UpdateProducts(ctx, res.Products, mode)
	default:
		return ErrUnknownImportKind
	}
}

// UpdateCategories reconciles the category collection.
//
// Replace swaps the collection for the incoming one; merge overlays
// incoming categories onto existing ones by id (incoming wins) and keeps
// the existing order, appending new ids at the end. In both modes the
// fallback category is re-ensured and every product whose category no
// longer resolves is rewritten to it.
func (s *Store) UpdateCategories(ctx context.Context, categories []Category, mode ApplyMode) error {
	s.mu.Lock()

	switch mode {
	case ModeReplace:
		s.categories = ensureFallback(append([]Category(nil), categories...))
	case ModeMerge:
		merged := make([]Category, len(s.categories))
		copy(merged, s.categories)
		index := make(map[string]int, len(merged))
		for i, c := range merged {
			index[c.ID] = i
		}
		for _, c := range categories {
			if i, ok := index[c.ID]; ok {
				merged[i] = c
			} else {
				index[c.ID] = len(merged)
				merged = append(merged, c)
			}
		}
		s.categories = ensureFallback(merged)
	default:
		s.mu.Unlock()
		return ErrUnknownMode
	}

	// Integrity cascade: runs unconditionally after either mode.
	valid := s.categoryIDSet()
	for i := range s.products {
		if !valid[s.products[i].CategoryID] {
			s.products[i].CategoryID = FallbackCategoryID
		}
	}

	s.mu.Unlock()
	s.persist(ctx, slotCategories, slotProducts)
	return nil
}

// UpdateProducts reconciles the product collection.
//
// Incoming products are sanitized first (unresolvable category ids go to
// the fallback). Replace swaps the collection and prunes quantities and
// favorites down to the surviving ids; merge overlays by id and prunes
// nothing, since nothing was removed.
func (s *Store) UpdateProducts(ctx context.Context, products []Product, mode ApplyMode) error {
	s.mu.Lock()

	valid := s.categoryIDSet()
	sanitized := make([]Product, len(products))
	for i, p := range products {
		if !valid[p.CategoryID] {
			p.CategoryID = FallbackCategoryID
		}
		sanitized[i] = p
	}

	switch mode {
	case ModeReplace:
		keep := make(map[string]bool, len(sanitized))
		for _, p := range sanitized {
			keep[p.ID] = true
		}
		for id := range s.quantities {
			if !keep[id] {
				delete(s.quantities, id)
			}
		}
		for id := range s.favorites {
			if !keep[id] {
				delete(s.favorites, id)
			}
		}
		s.products = sanitized
	case ModeMerge:
		merged := make([]Product, len(s.products))
		copy(merged, s.products)
		index := make(map[string]int, len(merged))
		for i, p := range merged {
			index[p.ID] = i
		}
		for _, p := range sanitized {
			if i, ok := index[p.ID]; ok {
				merged[i] = p
			} else {
				index[p.ID] = len(merged)
				merged = append(merged, p)
			}
		}
		s.products = merged
	default:
		s.mu.Unlock()
		return ErrUnknownMode
	}

	s.mu.Unlock()
	s.persist(ctx, slotProducts, slotQuantities, slotFavorites)
	return nil
}

// AddProduct appends one product to the catalog. The category reference is
// sanitized the same way imports are.
func (s *Store) AddProduct(ctx context.Context, p Product) error {
	s.mu.Lock()

	for _, existing := range s.products {
		if existing.ID == p.ID {
			s.mu.Unlock()
			return ErrDuplicateID
		}
	}
	if !s.categoryIDSet()[p.CategoryID] {
		p.CategoryID = FallbackCategoryID
	}
	s.products = append(s.products, p)

	s.mu.Unlock()
	s.persist(ctx, slotProducts)
	return nil
}

// DeleteProduct removes one product and cascades: its cart quantity and
// favorite membership are discarded with it.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrProductNotFound
	}

	s.products = append(s.products[:idx], s.products[idx+1:]...)
	delete(s.quantities, id)
	delete(s.favorites, id)

	s.mu.Unlock()
	s.persist(ctx, slotProducts, slotQuantities, slotFavorites)
	return nil
}

// AddSupplier appends one supplier, minting an id when none is given.
func (s *Store) AddSupplier(ctx context.Context, sup Supplier) (Supplier, error) {
	if sup.ID == "" {
		sup.ID = uuid.New().String()
	}

	s.mu.Lock()
	for _, existing := range s.suppliers {
		if existing.ID == sup.ID {
			s.mu.Unlock()
			return Supplier{}, ErrDuplicateID
		}
	}
	s.suppliers = append(s.suppliers, sup)
	s.mu.Unlock()

	s.persist(ctx, slotSuppliers)
	return sup, nil
}

// UpdateSupplier renames an existing supplier.
func (s *Store) UpdateSupplier(ctx context.Context, id, name string) error {
	s.mu.Lock()

	idx := -1
	for i, sup := range s.suppliers {
		if sup.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrSupplierNotFound
	}
	s.suppliers[idx].Name = name

	s.mu.Unlock()
	s.persist(ctx, slotSuppliers)
	return nil
}

// DeleteSupplier removes one supplier and detaches it from every product
// that referenced it. Products are never deleted by this operation.
func (s *Store) DeleteSupplier(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := -1
	for i, sup := range s.suppliers {
		if sup.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrSupplierNotFound
	}

	s.suppliers = append(s.suppliers[:idx], s.suppliers[idx+1:]...)
	for i := range s.products {
		if s.products[i].SupplierID == id {
			s.products[i].SupplierID = ""
		}
	}

	s.mu.Unlock()
	s.persist(ctx, slotSuppliers, slotProducts)
	return nil
}
