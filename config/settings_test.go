package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AryanSingh257/ai-resume-analyzer/services"
)

func TestLoadSettings_MissingFileFallsBackToDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.json"))

	assert.NoError(t, err)
	assert.Equal(t, services.DefaultScoreWeights(), settings.ScoringWeights)
}

func TestSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	custom := DefaultSettings()
	custom.ScoringWeights.Contact = 30
	custom.ScoringWeights.JobMatch = 10

	assert.NoError(t, SaveSettings(path, custom))

	loaded, err := LoadSettings(path)
	assert.NoError(t, err)
	assert.Equal(t, custom, loaded)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"scoring_weights": {"contact_info": 25}}`
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	loaded, err := LoadSettings(path)
	assert.NoError(t, err)
	assert.Equal(t, 25.0, loaded.ScoringWeights.Contact)
	// Unspecified categories keep their default weights.
	assert.Equal(t, 15.0, loaded.ScoringWeights.Formatting)
}

func TestLoadSettings_RejectsNegativeWeight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"scoring_weights": {"contact_info": -5}}`
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestLoadSettings_RejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings")
}
