// Package avatar stores profile photos and hands back the public URL that
// goes into the session's avatarUrl field.
//
// Two backends are provided: DiskStore for local deployments and S3Store
// for object storage. Handler exposes either over HTTP for the gateway.
package avatar

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrTooLarge is returned when a file exceeds the size limit.
var ErrTooLarge = errors.New("avatar: file too large")

// Store is the interface for avatar storage backends.
type Store interface {
	// Save stores the avatar for userID and returns its public URL.
	// Saving again for the same user overwrites the previous avatar.
	Save(userID, contentType string, size int64, r io.Reader) (url string, err error)
}

// ext maps a content type to the stored file extension.
func ext(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".img"
	}
}

// Handler returns an http.Handler for avatar uploads.
// Mount it on your router: r.Post("/api/avatar", avatar.Handler(store))
//
// The handler expects a multipart form with "file" and "user_id" fields and
// returns JSON with the stored URL:
//
//	{"url": "https://..."}
func Handler(store Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		userID := r.FormValue("user_id")
		if userID == "" {
			http.Error(w, "user_id is required", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		url, err := store.Save(userID, header.Header.Get("Content-Type"), header.Size, file)
		if errors.Is(err, ErrTooLarge) {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		if err != nil {
			http.Error(w, "upload failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"url": url})
	})
}
