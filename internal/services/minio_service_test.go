package services

import (
	"strings"
	"testing"
)

func TestObjectNameFromURL(t *testing.T) {
	tests := []struct {
		in        string
		publicURL string
		want      string
	}{
		{in: "poster_1a2b3c4d.jpg", publicURL: "https://storage.example.com/films", want: "poster_1a2b3c4d.jpg"},
		{in: "films/poster_1a2b3c4d.jpg", publicURL: "https://storage.example.com/films", want: "poster_1a2b3c4d.jpg"},
		{in: "https://storage.example.com/films/poster_1a2b3c4d.jpg", publicURL: "https://storage.example.com/films", want: "poster_1a2b3c4d.jpg"},
		{in: "http://localhost:9000/films/poster_1a2b3c4d.jpg?X-Amz-Signature=abc", publicURL: "https://storage.example.com/films", want: "poster_1a2b3c4d.jpg"},
		{in: "https://cdn.example.com/posters/inception_1a2b3c4d.jpg", publicURL: "https://cdn.example.com/posters", want: "inception_1a2b3c4d.jpg"},
		{in: "https://cdn.example.com/inception_1a2b3c4d.jpg?v=2", publicURL: "https://cdn.example.com", want: "inception_1a2b3c4d.jpg"},
	}

	for _, tt := range tests {
		if got := objectNameFromURL(tt.in, "films", tt.publicURL); got != tt.want {
			t.Errorf("objectNameFromURL(%q, %q) = %q, want %q", tt.in, tt.publicURL, got, tt.want)
		}
	}
}

func TestCDNPublicURLIsOwnedAndResolved(t *testing.T) {
	s := &MinIOService{bucket: "films", publicURL: "https://cdn.example.com/posters"}
	posterURL := "https://cdn.example.com/posters/inception_1a2b3c4d.jpg"

	if !s.OwnsURL(posterURL) {
		t.Fatal("expected CDN URL to be owned")
	}
	if got := objectNameFromURL(posterURL, s.bucket, s.publicURL); got != "inception_1a2b3c4d.jpg" {
		t.Fatalf("expected object inception_1a2b3c4d.jpg, got %q", got)
	}
}

func TestUniqueObjectName(t *testing.T) {
	name := uniqueObjectName("../../etc/inception poster.png")
	if strings.Contains(name, "/") {
		t.Fatalf("object name must not contain path separators: %q", name)
	}
	if !strings.HasPrefix(name, "inception poster_") || !strings.HasSuffix(name, ".png") {
		t.Fatalf("unexpected object name %q", name)
	}
	if other := uniqueObjectName("../../etc/inception poster.png"); other == name {
		t.Fatalf("expected distinct names, got %q twice", name)
	}
}

func TestOwnsURL(t *testing.T) {
	s := &MinIOService{bucket: "films", publicURL: "https://storage.example.com/films"}

	if !s.OwnsURL("https://storage.example.com/films/poster_1a2b3c4d.jpg") {
		t.Fatal("expected bucket URL to be owned")
	}
	if s.OwnsURL("https://cdn.example.com/films/poster.jpg") {
		t.Fatal("expected foreign host not to be owned")
	}
	if s.OwnsURL("https://storage.example.com/films-archive/poster.jpg") {
		t.Fatal("expected sibling bucket not to be owned")
	}
}
