// Error message mapping for user-facing responses.
//
// This file maps technical errors to short, actionable messages with a
// stable code for support reference. Sentinel errors from the store map
// directly; anything else is matched case-insensitively against known
// substrings (database and context errors mostly), with ERR000 as the
// fallback.
//
// Code ranges:
//
//	CAT001-CAT099  catalog errors (missing products, suppliers, duplicates)
//	IMP001-IMP099  import errors (unknown kind or mode, confirmation)
//	RCP001-RCP099  recipient errors
//	DB001-DB099    database errors matched by substring
//	ERR000         fallback for anything unmatched
package core

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage is the user-facing rendering of an error.
type UserMessage struct {
	Message string // what happened
	Action  string // what to do about it
	Code    string // stable code for support reference
}

// sentinelMessages maps store sentinels to their user message. Checked
// with errors.Is, so wrapped errors resolve too.
var sentinelMessages = []struct {
	err error
	msg UserMessage
}{
	{ErrProductNotFound, UserMessage{
		Message: "Product not found",
		Action:  "It may have been removed by a catalog import, refresh and retry",
		Code:    "CAT001",
	}},
	{ErrSupplierNotFound, UserMessage{
		Message: "Supplier not found",
		Action:  "Refresh the supplier list and retry",
		Code:    "CAT002",
	}},
	{ErrDuplicateID, UserMessage{
		Message: "An entry with this id already exists",
		Action:  "Use a different id or edit the existing entry",
		Code:    "CAT003",
	}},
	{ErrUnknownImportKind, UserMessage{
		Message: "Unknown import kind",
		Action:  "Import kind must be categories or products",
		Code:    "IMP001",
	}},
	{ErrUnknownMode, UserMessage{
		Message: "Unknown apply mode",
		Action:  "Apply mode must be merge or replace",
		Code:    "IMP002",
	}},
	{ErrConfirmRequired, UserMessage{
		Message: "This operation replaces or clears existing data",
		Action:  "Repeat the request with confirm=true to proceed",
		Code:    "IMP003",
	}},
	{ErrRecipientNotFound, UserMessage{
		Message: "Recipient not found",
		Action:  "Refresh the recipient list and retry",
		Code:    "RCP001",
	}},
	{ErrUnknownChannel, UserMessage{
		Message: "Unknown share channel",
		Action:  "Channel must be whatsapp or email",
		Code:    "RCP002",
	}},
}

// errorPatterns maps technical error substrings (case-insensitive) to user
// messages. First match wins, so specific patterns come before general ones.
var errorPatterns = []struct {
	pattern string
	msg     UserMessage
}{
	{"duplicate key", UserMessage{
		Message: "A record with this id already exists",
		Action:  "Check for duplicate entries",
		Code:    "DB001",
	}},
	{"connection refused", UserMessage{
		Message: "The database is unreachable",
		Action:  "Try again in a moment",
		Code:    "DB002",
	}},
	{"context canceled", UserMessage{
		Message: "The request was cancelled",
		Action:  "Please try again",
		Code:    "DB003",
	}},
	{"context deadline exceeded", UserMessage{
		Message: "The request timed out",
		Action:  "Try again, or with a smaller file",
		Code:    "DB004",
	}},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message. Returns
// the zero UserMessage for nil.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.err) {
			return sm.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError renders an error as "Message (Code: XXX). Action" for
// display. Returns "" for nil.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
