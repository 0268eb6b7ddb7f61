package core

// Fallback category. It always exists in the live catalog and re-homes
// products whose real category was deleted or never resolved.
const (
	FallbackCategoryID        = "cat_other"
	fallbackCategoryName      = "Autres"
	fallbackCategorySortOrder = 999
)

func fallbackCategory() Category {
	return Category{ID: FallbackCategoryID, Name: fallbackCategoryName, SortOrder: fallbackCategorySortOrder}
}

// ensureFallback appends the fallback category if it is missing.
func ensureFallback(categories []Category) []Category {
	for _, c := range categories {
		if c.ID == FallbackCategoryID {
			return categories
		}
	}
	return append(categories, fallbackCategory())
}

// SeedSuppliers is the built-in supplier list used when no persisted state
// exists (or the stored slot is unreadable).
func SeedSuppliers() []Supplier {
	return []Supplier{
		{ID: "sup_default", Name: "Fournisseur par défaut"},
	}
}

// SeedCategories is the built-in category list.
func SeedCategories() []Category {
	return []Category{
		{ID: "cat_fl", Name: "Fruits & Légumes", SortOrder: 1},
		{ID: "cat_ep", Name: "Épicerie", SortOrder: 2},
		{ID: "cat_pf", Name: "Produits frais", SortOrder: 3},
		{ID: "cat_vp", Name: "Viandes & Poissons", SortOrder: 4},
		{ID: "cat_mh", Name: "Maison & Hygiène", SortOrder: 5},
		{ID: "cat_other", Name: "Autres", SortOrder: 999},
	}
}

// SeedProducts is the built-in product catalog.
func SeedProducts() []Product {
	return []Product{
		// Fruits & Légumes
		{ID: "FL-001", CategoryID: "cat_fl", DisplayName: "Bananes", SupplierRef: "FL-001", ImageKey: "banana"},
		{ID: "FL-002", CategoryID: "cat_fl", DisplayName: "Pommes", SupplierRef: "FL-002", ImageKey: "apple"},
		{ID: "FL-003", CategoryID: "cat_fl", DisplayName: "Tomates", SupplierRef: "FL-003", ImageKey: "tomato"},
		{ID: "FL-004", CategoryID: "cat_fl", DisplayName: "Oignons", SupplierRef: "FL-004", ImageKey: "onion"},
		{ID: "FL-005", CategoryID: "cat_fl", DisplayName: "Ail", SupplierRef: "FL-005", ImageKey: "garlic"},
		{ID: "FL-006", CategoryID: "cat_fl", DisplayName: "Citron", SupplierRef: "FL-006", ImageKey: "lemon"},
		// Épicerie
		{ID: "EP-001", CategoryID: "cat_ep", DisplayName: "Riz", SupplierRef: "EP-001", ImageKey: "rice"},
		{ID: "EP-002", CategoryID: "cat_ep", DisplayName: "Pâtes", SupplierRef: "EP-002", ImageKey: "pasta"},
		{ID: "EP-003", CategoryID: "cat_ep", DisplayName: "Huile d'olive", SupplierRef: "OIL-001", ImageKey: "olive-oil"},
		{ID: "EP-004", CategoryID: "cat_ep", DisplayName: "Farine", SupplierRef: "EP-004", ImageKey: "flour"},
		{ID: "EP-005", CategoryID: "cat_ep", DisplayName: "Sucre", SupplierRef: "EP-005", ImageKey: "sugar"},
		{ID: "EP-006", CategoryID: "cat_ep", DisplayName: "Café", SupplierRef: "EP-006", ImageKey: "coffee"},
		// Produits frais
		{ID: "PF-001", CategoryID: "cat_pf", DisplayName: "Lait demi-écrémé", SupplierRef: "PF-001", ImageKey: "milk"},
		{ID: "PF-002", CategoryID: "cat_pf", DisplayName: "Oeufs", SupplierRef: "PF-002", ImageKey: "eggs"},
		{ID: "PF-003", CategoryID: "cat_pf", DisplayName: "Beurre", SupplierRef: "PF-003", ImageKey: "butter"},
		{ID: "PF-004", CategoryID: "cat_pf", DisplayName: "Yaourts nature", SupplierRef: "PF-004", ImageKey: "yogurt"},
		{ID: "PF-005", CategoryID: "cat_pf", DisplayName: "Fromage râpé", SupplierRef: "PF-005", ImageKey: "cheese"},
		{ID: "PF-006", CategoryID: "cat_pf", DisplayName: "Jambon", SupplierRef: "PF-006", ImageKey: "ham"},
		// Viandes & Poissons
		{ID: "VP-001", CategoryID: "cat_vp", DisplayName: "Poulet", SupplierRef: "VP-001", ImageKey: "chicken"},
		{ID: "VP-002", CategoryID: "cat_vp", DisplayName: "Steak haché", SupplierRef: "VP-002", ImageKey: "beef"},
		{ID: "VP-003", CategoryID: "cat_vp", DisplayName: "Saumon", SupplierRef: "VP-003", ImageKey: "salmon"},
		{ID: "VP-004", CategoryID: "cat_vp", DisplayName: "Thon", SupplierRef: "VP-004", ImageKey: "tuna"},
		{ID: "VP-005", CategoryID: "cat_vp", DisplayName: "Merguez", SupplierRef: "VP-005", ImageKey: "sausage"},
		{ID: "VP-006", CategoryID: "cat_vp", DisplayName: "Crevettes", SupplierRef: "VP-006", ImageKey: "shrimp"},
		// Maison & Hygiène
		{ID: "MH-001", CategoryID: "cat_mh", DisplayName: "Papier toilette", SupplierRef: "MH-001", ImageKey: "toilet-paper"},
		{ID: "MH-002", CategoryID: "cat_mh", DisplayName: "Essuie-tout", SupplierRef: "MH-002", ImageKey: "paper-towel"},
		{ID: "MH-003", CategoryID: "cat_mh", DisplayName: "Liquide vaisselle", SupplierRef: "MH-003", ImageKey: "dish-soap"},
		{ID: "MH-004", CategoryID: "cat_mh", DisplayName: "Lessive", SupplierRef: "MH-004", ImageKey: "laundry"},
		{ID: "MH-005", CategoryID: "cat_mh", DisplayName: "Sacs poubelle", SupplierRef: "MH-005", ImageKey: "trash-bag"},
		{ID: "MH-006", CategoryID: "cat_mh", DisplayName: "Dentifrice", SupplierRef: "MH-006", ImageKey: "toothpaste"},
	}
}
