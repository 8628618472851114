package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/ProfileCut/internal/model"
)

// DefaultCataloguePath returns the default file path for the material catalogue.
// This is located at ~/.profilecut/materials.json.
func DefaultCataloguePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".profilecut", "materials.json"), nil
}

// SaveCatalogue writes the material catalogue to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalogue(path string, cat model.Catalogue) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalogue reads the material catalogue from the specified JSON file.
// If the file does not exist, it returns the default catalogue for the given
// company and saves it.
func LoadCatalogue(path, companyID string) (model.Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalogue(companyID)
			if saveErr := SaveCatalogue(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalogue{}, err
	}
	var cat model.Catalogue
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalogue{}, err
	}
	return cat, nil
}

// LoadOrCreateCatalogue loads the catalogue from the default path.
// If the file does not exist, it creates one with the default materials.
func LoadOrCreateCatalogue(companyID string) (model.Catalogue, string, error) {
	path, err := DefaultCataloguePath()
	if err != nil {
		return model.DefaultCatalogue(companyID), "", err
	}
	cat, err := LoadCatalogue(path, companyID)
	return cat, path, err
}

// ExportCatalogue exports the catalogue to a user-specified JSON file.
func ExportCatalogue(path string, cat model.Catalogue) error {
	return SaveCatalogue(path, cat)
}

// ImportCatalogue imports a catalogue from a user-specified JSON file,
// merging it with the existing catalogue. Duplicate IDs are skipped.
func ImportCatalogue(path string, existing model.Catalogue) (model.Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalogue
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	ids := make(map[string]bool, len(existing.Materials))
	for _, m := range existing.Materials {
		ids[m.ID] = true
	}
	for _, m := range imported.Materials {
		if !ids[m.ID] {
			existing.Materials = append(existing.Materials, m)
			ids[m.ID] = true
		}
	}
	return existing, nil
}
