package ports

import "github.com/casey/combomatic/internal/domain"

// PresetLoader loads a search preset from a source (e.g., filesystem).
type PresetLoader interface {
	LoadPreset(path string) (domain.Preset, error)
}
