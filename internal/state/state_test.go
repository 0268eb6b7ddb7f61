package state

import (
	"context"
	"errors"
	"testing"
)

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	if _, err := m.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) err = %v, want ErrNotFound", err)
	}

	if err := m.Save(ctx, "cart", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := m.Load(ctx, "cart")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Load = %q, want stored blob", got)
	}

	// Save replaces the previous value.
	if err := m.Save(ctx, "cart", []byte(`{}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = m.Load(ctx, "cart")
	if string(got) != `{}` {
		t.Errorf("Load after overwrite = %q, want {}", got)
	}
}

func TestMemStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	in := []byte("abc")
	if err := m.Save(ctx, "k", in); err != nil {
		t.Fatal(err)
	}
	in[0] = 'z'

	got, err := m.Load(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc" {
		t.Errorf("stored blob aliased caller slice: %q", got)
	}

	got[0] = 'z'
	again, _ := m.Load(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("returned blob aliased store: %q", again)
	}
}
