package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSave(t *testing.T) {
	root := t.TempDir()
	s := NewStorage(root, "https://cdn.example.com/")

	resp, err := s.Save("posters", "free-guy.jpg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if resp.URL != "https://cdn.example.com/uploads/posters/free-guy.jpg" {
		t.Fatalf("unexpected url %q", resp.URL)
	}
	if resp.Name != "free-guy.jpg" {
		t.Fatalf("unexpected name %q", resp.Name)
	}

	b, err := os.ReadFile(filepath.Join(root, "posters", "free-guy.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "jpeg-bytes" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestSave_DefaultFolder(t *testing.T) {
	s := NewStorage(t.TempDir(), "")

	resp, err := s.Save("", "a.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if resp.URL != "/uploads/default/a.png" {
		t.Fatalf("unexpected url %q", resp.URL)
	}
}

func TestSave_PathTraversalFlattened(t *testing.T) {
	root := t.TempDir()
	s := NewStorage(root, "")

	resp, err := s.Save("../../etc", "../passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if strings.Contains(resp.URL, "..") {
		t.Fatalf("traversal leaked into url: %q", resp.URL)
	}
	if _, err := os.Stat(filepath.Join(root, "etc", "passwd")); err != nil {
		t.Fatalf("expected flattened path inside root: %v", err)
	}
}

func TestSave_EmptyName(t *testing.T) {
	s := NewStorage(t.TempDir(), "")
	if _, err := s.Save("f", "", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for empty name")
	}
}
