package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	cat := DefaultCatalogue("acme")
	require.NotEmpty(t, cat.Materials)

	for _, m := range cat.Materials {
		assert.Equal(t, "acme", m.CompanyID)
		assert.Equal(t, CategoryProfile, m.Category)
		assert.NotEmpty(t, m.StandardLengths, "material %s needs standard lengths", m.Name)
		for _, std := range m.StandardLengths {
			assert.Greater(t, std.Length, 0.0)
			assert.Equal(t, "ft", std.Unit)
		}
	}
}

func TestCatalogueFinders(t *testing.T) {
	cat := DefaultCatalogue("acme")
	first := cat.Materials[0]

	byID := cat.FindMaterialByID(first.ID)
	require.NotNil(t, byID)
	assert.Equal(t, first.Name, byID.Name)

	byName := cat.FindMaterialByName(first.Name)
	require.NotNil(t, byName)
	assert.Equal(t, first.ID, byName.ID)

	assert.Nil(t, cat.FindMaterialByID("nope"))
	assert.Nil(t, cat.FindMaterialByName("nope"))
}

func TestCatalogueMaterialNames(t *testing.T) {
	cat := DefaultCatalogue("acme")
	names := cat.MaterialNames()
	assert.Len(t, names, len(cat.Materials))
	assert.Contains(t, names, "Handrail Round Pipe 2in")
}

func TestCatalogueProfileMaterials(t *testing.T) {
	cat := DefaultCatalogue("acme")
	cat.Materials = append(cat.Materials, NewMaterial("5mm Clear Glass", "acme", CategoryGlass, nil))

	profiles := cat.ProfileMaterials()
	assert.Len(t, profiles, len(cat.Materials)-1)
	for _, m := range profiles {
		assert.Equal(t, CategoryProfile, m.Category)
	}
}
