package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreUploadAndDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewStore(dir, "http://localhost:8080/uploads/")
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	url, err := store.Upload(ctx, "p-1.png", []byte("image"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "http://localhost:8080/uploads/p-1.png" {
		t.Fatalf("url = %q, want local uploads url", url)
	}

	content, err := os.ReadFile(filepath.Join(dir, "p-1.png"))
	if err != nil {
		t.Fatalf("read uploaded file: %v", err)
	}
	if string(content) != "image" {
		t.Fatalf("content = %q, want image", content)
	}

	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "p-1.png")); !os.IsNotExist(err) {
		t.Fatal("expected uploaded file to be removed")
	}
}

func TestStoreUploadRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	url, err := store.Upload(context.Background(), "../escape.png", []byte("x"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "http://localhost:8080/uploads/escape.png" {
		t.Fatalf("url = %q, want base name only", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.png")); err != nil {
		t.Fatalf("expected file inside uploads dir: %v", err)
	}
}

func TestStoreOwnsOnlyItsBaseURL(t *testing.T) {
	store, err := NewStore(t.TempDir(), "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	if !store.Owns("http://localhost:8080/uploads/p-1.png") {
		t.Fatal("expected store to own its own uploads url")
	}
	if store.Owns("https://res.cloudinary.com/demo/image/upload/players/p-1.png") {
		t.Fatal("store must not claim a hosted provider url")
	}
}

func TestStoreDeleteMissingFileIsNoop(t *testing.T) {
	store, err := NewStore(t.TempDir(), "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	if err := store.Delete(context.Background(), "http://localhost:8080/uploads/ghost.png"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}
