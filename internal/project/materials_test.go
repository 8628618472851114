package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ProfileCut/internal/model"
)

func TestDefaultCataloguePath(t *testing.T) {
	path, err := DefaultCataloguePath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(path) != "materials.json" {
		t.Errorf("expected filename materials.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".profilecut" {
		t.Errorf("expected parent dir .profilecut, got %s", dir)
	}
}

func TestSaveAndLoadCatalogue(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_materials.json")

	cat := model.Catalogue{
		Materials: []model.Material{
			model.NewMaterial("Test Profile", "acme", model.CategoryProfile, []model.StandardLength{
				model.NewStandardLength(12, "ft"),
			}),
		},
	}

	if err := SaveCatalogue(path, cat); err != nil {
		t.Fatalf("SaveCatalogue failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("catalogue file was not created")
	}

	loaded, err := LoadCatalogue(path, "acme")
	if err != nil {
		t.Fatalf("LoadCatalogue failed: %v", err)
	}

	if len(loaded.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(loaded.Materials))
	}
	if loaded.Materials[0].Name != "Test Profile" {
		t.Errorf("expected material 'Test Profile', got %q", loaded.Materials[0].Name)
	}
	if loaded.Materials[0].StandardLengths[0].LengthIn != 144 {
		t.Errorf("expected 144in standard length, got %v", loaded.Materials[0].StandardLengths[0].LengthIn)
	}
}

func TestLoadCatalogue_MissingFileCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "materials.json")

	cat, err := LoadCatalogue(path, "acme")
	if err != nil {
		t.Fatalf("LoadCatalogue failed: %v", err)
	}
	if len(cat.Materials) == 0 {
		t.Fatal("expected default catalogue to contain materials")
	}
	for _, m := range cat.Materials {
		if m.CompanyID != "acme" {
			t.Errorf("expected company 'acme' on material %q, got %q", m.Name, m.CompanyID)
		}
	}

	// The default catalogue should have been written to disk
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("default catalogue was not saved")
	}
}

func TestLoadCatalogue_CorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "materials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if _, err := LoadCatalogue(path, "acme"); err == nil {
		t.Fatal("expected error for corrupt catalogue file")
	}
}

func TestImportCatalogue_MergesAndDeduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "import.json")

	shared := model.NewMaterial("Shared", "acme", model.CategoryProfile, []model.StandardLength{
		model.NewStandardLength(12, "ft"),
	})
	existing := model.Catalogue{Materials: []model.Material{shared}}

	incoming := model.Catalogue{
		Materials: []model.Material{
			shared, // duplicate ID, should be skipped
			model.NewMaterial("New Profile", "acme", model.CategoryProfile, []model.StandardLength{
				model.NewStandardLength(20, "ft"),
			}),
		},
	}
	data, err := json.Marshal(incoming)
	if err != nil {
		t.Fatalf("failed to marshal catalogue: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}

	merged, err := ImportCatalogue(path, existing)
	if err != nil {
		t.Fatalf("ImportCatalogue failed: %v", err)
	}
	if len(merged.Materials) != 2 {
		t.Fatalf("expected 2 materials after merge, got %d", len(merged.Materials))
	}
	if merged.Materials[1].Name != "New Profile" {
		t.Errorf("expected imported material last, got %q", merged.Materials[1].Name)
	}
}

func TestImportCatalogue_MissingFile(t *testing.T) {
	existing := model.Catalogue{}
	if _, err := ImportCatalogue("/nonexistent/materials.json", existing); err == nil {
		t.Fatal("expected error for missing import file")
	}
}
