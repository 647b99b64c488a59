package car

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type profileSpec struct {
	Name          string  `yaml:"name"`
	WearCoeff     float64 `yaml:"wear_coeff"`
	WearShape     float64 `yaml:"wear_shape"`
	FrictionLimit float64 `yaml:"friction_limit"`
	BaseFriction  float64 `yaml:"base_friction"`
}

// LoadProfile reads a custom TireProfile from YAML. WearShape defaults to
// the standard wear_coeff*5000-1 shape and BaseFriction to 1 when omitted.
func LoadProfile(r io.Reader) (TireProfile, error) {
	var s profileSpec
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return TireProfile{}, fmt.Errorf("tire profile: %w", err)
	}
	if s.WearCoeff <= 0 {
		return TireProfile{}, fmt.Errorf("tire profile %q: wear_coeff must be positive", s.Name)
	}
	if s.FrictionLimit <= 0 {
		return TireProfile{}, fmt.Errorf("tire profile %q: friction_limit must be positive", s.Name)
	}
	if s.WearShape == 0 {
		s.WearShape = s.WearCoeff*5000 - 1
	}
	if s.BaseFriction == 0 {
		s.BaseFriction = 1
	}
	return TireProfile{
		Name:          s.Name,
		WearCoeff:     s.WearCoeff,
		WearShape:     s.WearShape,
		FrictionLimit: s.FrictionLimit,
		BaseFriction:  s.BaseFriction,
	}, nil
}
