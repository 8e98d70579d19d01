package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"film-catalog/internal/models"
)

func TestGetPresignedURL(t *testing.T) {
	app := newTestApp(newMemRepo(), stubUploader{})

	code, data := do(t, app, http.MethodGet, "/api/upload/presign?filename=inception.jpg", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, data)
	}

	var body models.PresignResponse
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.PublicURL != "https://storage.example.com/films/inception.jpg" {
		t.Fatalf("unexpected public url %q", body.PublicURL)
	}
	if body.PresignedURL == "" {
		t.Fatal("expected presigned url")
	}
}

func TestGetPresignedURLErrors(t *testing.T) {
	tests := []struct {
		name     string
		uploader PosterUploader
		target   string
		want     int
	}{
		{name: "not configured", uploader: nil, target: "/api/upload/presign?filename=a.jpg", want: http.StatusServiceUnavailable},
		{name: "missing filename", uploader: stubUploader{}, target: "/api/upload/presign", want: http.StatusBadRequest},
		{name: "non image", uploader: stubUploader{}, target: "/api/upload/presign?filename=a.exe&contentType=application/octet-stream", want: http.StatusBadRequest},
		{name: "storage failure", uploader: stubUploader{err: errors.New("no such bucket")}, target: "/api/upload/presign?filename=a.jpg", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(newMemRepo(), tt.uploader)

			code, data := do(t, app, http.MethodGet, tt.target, "")
			if code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, code)
			}
			if msg := decodeError(t, data); msg == "" {
				t.Fatalf("expected error message, got %s", data)
			}
		})
	}
}
