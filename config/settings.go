package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AryanSingh257/ai-resume-analyzer/services"
)

// Settings holds the user-tunable knobs persisted as JSON between
// runs.
type Settings struct {
	ScoringWeights services.ScoreWeights `json:"scoring_weights"`
}

func DefaultSettings() Settings {
	return Settings{ScoringWeights: services.DefaultScoreWeights()}
}

// LoadSettings reads the settings file, falling back to defaults when
// the file does not exist.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.ScoringWeights.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// SaveSettings writes the settings file with indentation so it stays
// hand editable.
func SaveSettings(path string, settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
