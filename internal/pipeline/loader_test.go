package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/ppiankov/dossier/internal/model"
)

func testLoaderConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = t.TempDir()
	cfg.RateLimiting.RequestsPerSecond = 0
	return cfg
}

func TestLoader_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Financials.CSV")
	if err := os.WriteFile(path, []byte(statementCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewLoader(testLoaderConfig(t), nil).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if doc.Ext != ".csv" {
		t.Errorf("Expected .csv, got %s", doc.Ext)
	}
	if string(doc.Data) != statementCSV {
		t.Errorf("Unexpected data: %q", doc.Data)
	}
}

func TestLoader_MissingLocalFile(t *testing.T) {
	_, err := NewLoader(testLoaderConfig(t), nil).Load(context.Background(), filepath.Join(t.TempDir(), "none.pdf"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoader_URLUsesCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = fmt.Fprint(w, "%PDF-1.4")
	}))
	defer server.Close()

	loader := NewLoader(testLoaderConfig(t), nil)
	for i := 0; i < 2; i++ {
		doc, err := loader.Load(context.Background(), server.URL+"/docs/articles")
		if err != nil {
			t.Fatalf("Load %d failed: %v", i, err)
		}
		if doc.Ext != ".pdf" {
			t.Errorf("Expected .pdf from content type, got %s", doc.Ext)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("Expected a single fetch with cache enabled, got %d", hits.Load())
	}
}

func TestLoader_RobotsDisallow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
			return
		}
		_, _ = fmt.Fprint(w, "secret")
	}))
	defer server.Close()

	cfg := testLoaderConfig(t)
	cfg.Cache.Enabled = false

	_, err := NewLoader(cfg, nil).Load(context.Background(), server.URL+"/private/statement.csv")
	if err == nil || err.Error() != "disallowed by robots.txt" {
		t.Errorf("Expected robots.txt refusal, got %v", err)
	}

	cfg.HTTP.RespectRobots = false
	doc, err := NewLoader(cfg, nil).Load(context.Background(), server.URL+"/private/statement.csv")
	if err != nil {
		t.Fatalf("Expected fetch without robots gate, got %v", err)
	}
	if doc.Ext != ".csv" {
		t.Errorf("Expected .csv from URL path, got %s", doc.Ext)
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://bank.example.com/a.pdf": true,
		"HTTP://bank.example.com":        true,
		"ftp://bank.example.com/a.pdf":   false,
		"./cases/acme/articles.pdf":      false,
	}
	for ref, want := range tests {
		if got := IsURL(ref); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", ref, got, want)
		}
	}
}

func TestRemoteExt(t *testing.T) {
	tests := []struct {
		url, contentType, want string
	}{
		{"https://x.test/a/Report.XLSX", "application/octet-stream", ".xlsx"},
		{"https://x.test/download", "text/csv; charset=utf-8", ".csv"},
		{"https://x.test/download", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
		{"https://x.test/download", "", ".txt"},
		{"https://x.test/download", "application/json", ".txt"},
	}
	for _, tt := range tests {
		if got := remoteExt(tt.url, tt.contentType); got != tt.want {
			t.Errorf("remoteExt(%q, %q) = %q, want %q", tt.url, tt.contentType, got, tt.want)
		}
	}
}
