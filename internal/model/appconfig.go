package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default engine settings applied to new jobs
	DefaultKerfWidthIn    float64 `json:"default_kerf_width_in"`
	DefaultUsableOffcutFt float64 `json:"default_usable_offcut_ft"`

	// Purchase estimate defaults
	DefaultWastePercent float64 `json:"default_waste_percent"`

	// Application preferences
	CompanyID  string   `json:"company_id"`
	RecentJobs []string `json:"recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultKerfWidthIn:    defaults.KerfWidthIn,
		DefaultUsableOffcutFt: defaults.UsableOffcutFt,
		DefaultWastePercent:   10.0,
		RecentJobs:            []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a CutSettings
// struct. Used when creating a new job so it inherits the saved defaults.
func (c AppConfig) ApplyToSettings(s *CutSettings) {
	s.KerfWidthIn = c.DefaultKerfWidthIn
	s.UsableOffcutFt = c.DefaultUsableOffcutFt
}
