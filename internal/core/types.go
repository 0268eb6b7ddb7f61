// Package core implements the grocery catalog, cart and CSV import logic.
// This package has no HTTP or rendering dependencies and can be driven by
// any frontend.
package core

// Category groups products in the catalog. The collection always contains
// the fallback category (FallbackCategoryID); products whose category
// disappears are re-homed there rather than left dangling.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// Supplier is an optional grouping dimension for products. Deleting a
// supplier detaches it from products, it never deletes them.
type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry. CategoryID always resolves to a live
// category; SupplierID may be empty or reference a supplier.
type Product struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	SupplierID  string `json:"supplierId,omitempty"`
	DisplayName string `json:"displayName"`
	SupplierRef string `json:"supplierRef"`
	ImageKey    string `json:"imageKey"`
}

// Recipient is a share-channel contact (WhatsApp or email). Recipients are
// only read by the export collaborators, never by the catalog logic.
type Recipient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Channel identifies a recipient list.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// ParseChannel converts a user-supplied channel string.
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelWhatsApp:
		return ChannelWhatsApp, nil
	case ChannelEmail:
		return ChannelEmail, nil
	default:
		return "", ErrUnknownChannel
	}
}

// ApplyMode selects how an import is reconciled against the live catalog.
type ApplyMode string

const (
	// ModeMerge overlays incoming records onto existing ones by id.
	// Additive: nothing unrelated is touched.
	ModeMerge ApplyMode = "merge"

	// ModeReplace substitutes the whole collection. Destructive: cart
	// quantities and favorites of removed products are discarded, so the
	// boundary must gate it behind an explicit confirmation.
	ModeReplace ApplyMode = "replace"
)

// ParseApplyMode converts a user-supplied mode string.
func ParseApplyMode(s string) (ApplyMode, error) {
	switch ApplyMode(s) {
	case ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	default:
		return "", ErrUnknownMode
	}
}

// ImportKind tags an ImportResult with the record type it carries, so the
// reconciler's dispatch stays exhaustive.
type ImportKind string

const (
	ImportCategories ImportKind = "categories"
	ImportProducts   ImportKind = "products"
)

// ParseImportKind converts a user-supplied kind string.
func ParseImportKind(s string) (ImportKind, error) {
	switch ImportKind(s) {
	case ImportCategories:
		return ImportCategories, nil
	case ImportProducts:
		return ImportProducts, nil
	default:
		return "", ErrUnknownImportKind
	}
}

// InvalidRow records one rejected CSV line. Row is the 1-based line number
// in the uploaded text, Data the raw line as received.
type InvalidRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
	Data   string `json:"data"`
}

// ImportResult is the outcome of parsing one CSV upload. It is produced
// once per parse, shown to the user as a preview, and then either applied
// to the store or discarded. Invalid rows never block valid siblings.
type ImportResult struct {
	Kind        ImportKind   `json:"kind"`
	Valid       int          `json:"valid"`
	Invalid     int          `json:"invalid"`
	InvalidRows []InvalidRow `json:"invalidRows"`
	Categories  []Category   `json:"categories,omitempty"`
	Products    []Product    `json:"products,omitempty"`
}

// ListItem is one line of the shopping list: a product with a positive
// quantity, joined against its category and supplier.
type ListItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	Category *Category `json:"category,omitempty"`
	Supplier *Supplier `json:"supplier,omitempty"`
}

// ExportItem is one line of a grouped export section.
type ExportItem struct {
	Ref string `json:"ref"`
	Qty int    `json:"qty"`
}

// GroupedSection is one supplier group of the structured export. The JSON
// field is named "category" for compatibility with the print collaborator;
// it holds the group label (supplier name).
type GroupedSection struct {
	Category string       `json:"category"`
	Items    []ExportItem `json:"items"`
}
