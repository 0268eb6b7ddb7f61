package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil error", err: nil, wantCode: ""},
		{name: "product not found", err: ErrProductNotFound, wantCode: "CAT001"},
		{name: "wrapped sentinel", err: fmt.Errorf("apply: %w", ErrDuplicateID), wantCode: "CAT003"},
		{name: "confirm required", err: ErrConfirmRequired, wantCode: "IMP003"},
		{name: "unknown channel", err: ErrUnknownChannel, wantCode: "RCP002"},
		{name: "duplicate key pattern", err: errors.New(`ERROR: duplicate key value violates unique constraint "state_slots_pkey"`), wantCode: "DB001"},
		{name: "context canceled pattern", err: errors.New("write: context canceled"), wantCode: "DB003"},
		{name: "unmatched falls back", err: errors.New("something odd"), wantCode: "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if tt.wantCode != "" && (got.Message == "" || got.Action == "") {
				t.Errorf("mapped message incomplete: %+v", got)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	got := FormatUserError(ErrProductNotFound)
	if !strings.Contains(got, "(Code: CAT001)") {
		t.Errorf("FormatUserError = %q, want embedded code", got)
	}
	if FormatUserError(nil) != "" {
		t.Error("FormatUserError(nil) should be empty")
	}
}
