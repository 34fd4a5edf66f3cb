// Package config loads search presets from YAML files on disk and maps
// them into domain values.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/casey/combomatic/internal/domain"
)

// Loader reads preset files from the filesystem. It satisfies
// ports.PresetLoader.
type Loader struct{}

func NewLoader() Loader {
	return Loader{}
}

func (Loader) LoadPreset(path string) (domain.Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Preset{}, &domain.OpError{
			Op:   "config.load_preset",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLPreset
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Preset{}, &domain.OpError{
			Op:   "config.load_preset",
			Kind: domain.KindInvalidPreset,
			Path: path,
			Err:  err,
		}
	}

	return MapPreset(path, dto)
}
