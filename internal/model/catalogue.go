package model

// Catalogue holds the company's saved profile materials.
type Catalogue struct {
	Materials []Material `json:"materials"`
}

// DefaultCatalogue returns a catalogue populated with common aluminium
// fabrication profiles and their standard purchasable lengths.
func DefaultCatalogue(companyID string) Catalogue {
	ft := func(lengths ...float64) []StandardLength {
		out := make([]StandardLength, len(lengths))
		for i, l := range lengths {
			out[i] = NewStandardLength(l, "ft")
		}
		return out
	}
	return Catalogue{
		Materials: []Material{
			NewMaterial("Sliding Window Track 2-Rail", companyID, CategoryProfile, ft(12, 15, 18)),
			NewMaterial("Sliding Window Track 3-Rail", companyID, CategoryProfile, ft(12, 15, 18)),
			NewMaterial("Window Shutter Section", companyID, CategoryProfile, ft(12, 16)),
			NewMaterial("Casement Outer Frame", companyID, CategoryProfile, ft(12, 19, 21)),
			NewMaterial("Partition Channel 1x1", companyID, CategoryProfile, ft(10, 12, 16)),
			NewMaterial("Handrail Round Pipe 2in", companyID, CategoryProfile, ft(12, 20)),
		},
	}
}

// FindMaterialByID returns a pointer to the material with the given ID, or nil.
func (c *Catalogue) FindMaterialByID(id string) *Material {
	for i := range c.Materials {
		if c.Materials[i].ID == id {
			return &c.Materials[i]
		}
	}
	return nil
}

// FindMaterialByName returns a pointer to the first material with the given name, or nil.
func (c *Catalogue) FindMaterialByName(name string) *Material {
	for i := range c.Materials {
		if c.Materials[i].Name == name {
			return &c.Materials[i]
		}
	}
	return nil
}

// MaterialNames returns the material names for listings and pickers.
func (c *Catalogue) MaterialNames() []string {
	names := make([]string, len(c.Materials))
	for i, m := range c.Materials {
		names[i] = m.Name
	}
	return names
}

// ProfileMaterials returns only the materials the cutting engine can consume.
func (c *Catalogue) ProfileMaterials() []Material {
	var out []Material
	for _, m := range c.Materials {
		if m.Category == CategoryProfile {
			out = append(out, m)
		}
	}
	return out
}
