package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ppiankov/dossier/internal/model"
)

func TestFileStore_MissingFileLoadsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "company_dossier.json"), nil)

	d, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d == nil || d.EntityName != "" || len(d.RegulatoryFlags) != 0 {
		t.Errorf("Expected empty dossier, got %+v", d)
	}
}

func TestFileStore_CorruptFileLoadsEmptyWithWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "company_dossier.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	core, logs := observer.New(zap.WarnLevel)
	s := NewFileStore(path, zap.New(core))

	d, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.EntityName != "" {
		t.Errorf("Expected empty dossier, got %+v", d)
	}
	if logs.Len() != 1 {
		t.Errorf("Expected 1 warning, got %d", logs.Len())
	}
}

func TestFileStore_ReadFailureIsAnError(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)
	if _, err := s.Load(context.Background()); err == nil {
		t.Error("Expected error reading a directory")
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "company_dossier.json")
	s := NewFileStore(path, nil)

	in := &model.Dossier{
		EntityName:      "Acme LLC",
		State:           "Delaware",
		UBOList:         []model.Owner{{Name: "Jane Doe", Role: model.String("Manager"), OwnershipPct: 60}},
		KYBStatus:       model.KYBApproved,
		Financials:      &model.FinancialSnapshot{GrossRevenue: model.Float(1000000)},
		CreditDecision:  model.DecisionReview,
		RegulatoryFlags: model.Flags{model.FlagMissingState},
	}
	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.EntityName != "Acme LLC" || out.UBOList[0].RoleName() != "Manager" || *out.Financials.GrossRevenue != 1000000 {
		t.Errorf("Round trip mismatch: %+v", out)
	}
	if out.Financials.DSCR != nil {
		t.Errorf("Expected null dscr, got %v", *out.Financials.DSCR)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the dossier file, found %d entries", len(entries))
	}
}

func TestStageFile_LeavesTargetUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credit_memo.md")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	tmp, err := StageFile(path, []byte("new"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer func() { _ = os.Remove(tmp) }()

	got, _ := os.ReadFile(path)
	if string(got) != "old" {
		t.Errorf("Expected target untouched, got %q", got)
	}
	staged, _ := os.ReadFile(tmp)
	if string(staged) != "new" {
		t.Errorf("Expected staged content, got %q", staged)
	}
}

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		name    string
		cfg     model.StoreConfig
		wantErr bool
	}{
		{"default file", model.StoreConfig{Path: "d.json"}, false},
		{"redis addr", model.StoreConfig{Backend: "redis", RedisAddr: "localhost:6379", RedisKey: "k"}, false},
		{"redis url", model.StoreConfig{Backend: "redis", RedisAddr: "redis://localhost:6379/2", RedisKey: "k"}, false},
		{"redis bad url", model.StoreConfig{Backend: "redis", RedisAddr: "redis://:bad:port/x"}, true},
		{"redis without addr", model.StoreConfig{Backend: "redis"}, true},
		{"unknown", model.StoreConfig{Backend: "s3"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, closeFn, err := New(tt.cfg, nil)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s == nil {
				t.Fatal("Expected store")
			}
			if err := closeFn(); err != nil {
				t.Errorf("Close failed: %v", err)
			}
		})
	}
}
