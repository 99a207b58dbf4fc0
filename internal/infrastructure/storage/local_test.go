package storage

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "abc-123", strings.NewReader("%PDF-1.4 data")); err != nil {
		t.Fatalf("save: %v", err)
	}

	rc, err := store.Open(ctx, "abc-123")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 data" {
		t.Fatalf("content mismatch: %q", data)
	}
}

func TestLocalStore_Delete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "gone", strings.NewReader("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Open(ctx, "gone"); err == nil {
		t.Fatalf("expected open to fail after delete")
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestLocalStore_RejectsTraversalKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		if err := store.Save(context.Background(), key, strings.NewReader("x")); err == nil {
			t.Errorf("expected key %q to be rejected", key)
		}
	}
}
