// Package files stores uploaded assets on local disk and hands back
// public URLs.
package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileResponse is the public view of a stored upload.
type FileResponse struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Storage writes uploads under Root/<folder>/ and maps them to
// BaseURL/uploads/<folder>/<name>.
type Storage struct {
	Root    string
	BaseURL string
}

func NewStorage(root, baseURL string) Storage {
	return Storage{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Save writes one upload. Folder and name are flattened to their base
// element so a crafted filename cannot escape Root.
func (s Storage) Save(folder, name string, r io.Reader) (FileResponse, error) {
	folder = sanitize(folder)
	if folder == "" {
		folder = "default"
	}
	name = sanitize(name)
	if name == "" {
		return FileResponse{}, fmt.Errorf("empty file name")
	}

	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return FileResponse{}, fmt.Errorf("ensure dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return FileResponse{}, fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return FileResponse{}, fmt.Errorf("write file: %w", err)
	}

	return FileResponse{
		URL:  fmt.Sprintf("%s/uploads/%s/%s", s.BaseURL, folder, name),
		Name: name,
	}, nil
}

func sanitize(s string) string {
	s = filepath.Base(strings.TrimSpace(s))
	if s == "." || s == ".." || s == string(filepath.Separator) {
		return ""
	}
	return s
}
