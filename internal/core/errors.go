package core

import "errors"

// Sentinel errors returned by store operations. Handlers map them to HTTP
// statuses and user messages via MapError.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrDuplicateID       = errors.New("id already exists")
	ErrUnknownMode       = errors.New("unknown apply mode")
	ErrUnknownImportKind = errors.New("unknown import kind")
	ErrUnknownChannel    = errors.New("unknown recipient channel")

	// ErrConfirmRequired is returned by the web boundary when a destructive
	// operation (catalog replace, cart reset) arrives without an explicit
	// confirmation flag. The store itself never requires it.
	ErrConfirmRequired = errors.New("confirmation required")
)
