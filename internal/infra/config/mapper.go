package config

import (
	"errors"
	"strings"

	"github.com/casey/combomatic/internal/domain"
)

// MapPreset applies defaults and validates the DTO into a domain.Preset.
func MapPreset(path string, yp YAMLPreset) (domain.Preset, error) {
	min := domain.DefaultMin
	if yp.Min != nil {
		min = *yp.Min
	}
	max := domain.DefaultMax
	if yp.Max != nil {
		max = *yp.Max
	}
	radius := domain.DefaultRadius
	if yp.Range != nil {
		radius = *yp.Range
	}

	ring, err := domain.NewRing(min, max)
	if err != nil {
		return domain.Preset{}, withPath(err, path)
	}

	search, err := domain.NewSearch(ring, domain.Combination(yp.Combination), radius)
	if err != nil {
		return domain.Preset{}, withPath(err, path)
	}

	name := strings.TrimSpace(yp.Name)

	return domain.Preset{Name: name, Search: search, CSV: yp.CSV}, nil
}

// withPath stamps the preset path onto domain validation errors so the
// user can tell which file was rejected.
func withPath(err error, path string) error {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Path == "" {
		return &domain.OpError{Op: "config.map_preset", Kind: oe.Kind, Path: path, Err: err}
	}
	return err
}
