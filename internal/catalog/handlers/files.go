package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/files"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/api"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/httpserver"
)

const maxUploadBytes = 32 << 20

// UploadFiles handles POST /v1/admin/files?folder=. Each part of the
// multipart form named "files" is stored under the requested folder and
// reported back with its public URL.
func UploadFiles(storage files.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				api.BadRequest(w, "BODY_TOO_LARGE", "upload exceeds size limit", rid, nil)
				return
			}
			api.BadRequest(w, "INVALID_MULTIPART", "expected multipart form data", rid, nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		parts := r.MultipartForm.File["files"]
		if len(parts) == 0 {
			api.BadRequest(w, "NO_FILES", "no files in request", rid, nil)
			return
		}

		folder := strings.TrimSpace(r.URL.Query().Get("folder"))
		saved := make([]files.FileResponse, 0, len(parts))
		for _, part := range parts {
			f, err := part.Open()
			if err != nil {
				api.Internal(w, rid)
				return
			}
			resp, err := storage.Save(folder, part.Filename, f)
			f.Close()
			if err != nil {
				api.BadRequest(w, "INVALID_FILENAME", err.Error(), rid, nil)
				return
			}
			saved = append(saved, resp)
		}
		api.WriteJSON(w, http.StatusCreated, map[string]any{"files": saved})
	}
}
