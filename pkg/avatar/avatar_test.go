package avatar

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/avatars/", 1<<20)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	data := []byte("fake-png-bytes")
	url, err := store.Save("user_123", "image/png", int64(len(data)), bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/avatars/user_123.png" {
		t.Errorf("url = %q, want /avatars/user_123.png", url)
	}

	got, err := os.ReadFile(filepath.Join(dir, "user_123.png"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("saved bytes = %q, want %q", got, data)
	}
}

func TestDiskStoreOverwrite(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/avatars", 0)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	first, err := store.Save("user_1", "image/jpeg", 3, strings.NewReader("old"))
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := store.Save("user_1", "image/jpeg", 3, strings.NewReader("new"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if first != second {
		t.Errorf("overwrite changed URL: %q then %q", first, second)
	}
}

func TestDiskStoreTooLarge(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/avatars", 4)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	// Declared size over the limit is rejected up front.
	if _, err := store.Save("u", "image/png", 100, strings.NewReader("x")); !errors.Is(err, ErrTooLarge) {
		t.Errorf("declared oversize: err = %v, want ErrTooLarge", err)
	}

	// A lying declared size is caught while copying.
	if _, err := store.Save("u", "image/png", 2, strings.NewReader("toolong")); !errors.Is(err, ErrTooLarge) {
		t.Errorf("actual oversize: err = %v, want ErrTooLarge", err)
	}
	if _, statErr := os.Stat(filepath.Join(store.dir, "u.png")); !os.IsNotExist(statErr) {
		t.Errorf("partial file left behind after oversize upload")
	}
}

func multipartBody(t *testing.T, userID, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if userID != "" {
		if err := w.WriteField("user_id", userID); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if filename != "" {
		hdr := make(map[string][]string)
		hdr["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
		hdr["Content-Type"] = []string{contentType}
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		part.Write(data)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestHandlerUpload(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/avatars", 1<<20)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	srv := httptest.NewServer(Handler(store))
	defer srv.Close()

	body, contentType := multipartBody(t, "user_42", "me.png", "image/png", []byte("png-data"))
	resp, err := http.Post(srv.URL, contentType, body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["url"] != "/avatars/user_42.png" {
		t.Errorf("url = %q, want /avatars/user_42.png", out["url"])
	}
}

func TestHandlerValidation(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/avatars", 8)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	srv := httptest.NewServer(Handler(store))
	defer srv.Close()

	// Missing user_id.
	body, contentType := multipartBody(t, "", "me.png", "image/png", []byte("x"))
	resp, err := http.Post(srv.URL, contentType, body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing user_id: status = %d, want 400", resp.StatusCode)
	}

	// Missing file.
	body, contentType = multipartBody(t, "user_1", "", "", nil)
	resp, err = http.Post(srv.URL, contentType, body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing file: status = %d, want 400", resp.StatusCode)
	}

	// Oversize upload.
	body, contentType = multipartBody(t, "user_1", "me.png", "image/png", bytes.Repeat([]byte("a"), 64))
	resp, err = http.Post(srv.URL, contentType, body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("oversize: status = %d, want 413", resp.StatusCode)
	}

	// GET is not allowed.
	resp, err = http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET: status = %d, want 405", resp.StatusCode)
	}
}

func TestExt(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":     ".jpg",
		"image/png":      ".png",
		"image/webp":     ".webp",
		"image/whatever": ".img",
	}
	for ct, want := range cases {
		if got := ext(ct); got != want {
			t.Errorf("ext(%q) = %q, want %q", ct, got, want)
		}
	}
}
