package assets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore error: %v", err)
	}

	ref, err := store.Save(context.Background(), "perfil.jpg", strings.NewReader("img-bytes"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if !strings.HasPrefix(ref, "uploads/") || !strings.HasSuffix(ref, ".jpg") {
		t.Fatalf("unexpected reference: %q", ref)
	}

	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(ref, "uploads/"))))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(b) != "img-bytes" {
		t.Fatalf("stored content mismatch: %q", b)
	}
}

func TestDiskStore_UniqueReferences(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore error: %v", err)
	}

	r1, err := store.Save(context.Background(), "a.png", strings.NewReader("1"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	r2, err := store.Save(context.Background(), "a.png", strings.NewReader("2"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if r1 == r2 {
		t.Fatalf("two uploads of the same filename must get distinct references")
	}
}
