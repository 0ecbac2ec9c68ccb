package registry

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrConfig reports a configuration that cannot be decoded or fails
// validation.
var ErrConfig = errors.New("registry: invalid configuration")

// Params are the algorithm parameters. Pointer fields are optional; nil
// keeps the algorithm's default.
type Params struct {
	// Beta is β of the Levin-type transforms.
	Beta *float64 `yaml:"beta" validate:"omitempty,finite,gt=0"`
	// Gamma is γ of Levin-Sidi M and of the generalized ρ numerators.
	Gamma *float64 `yaml:"gamma" validate:"omitempty,finite"`
	// Rho is ρ of the γ-ρ numerator.
	Rho *float64 `yaml:"rho" validate:"omitempty,finite,ne=0"`
	// Zeta is ζ of Weniger's δ.
	Zeta *float64 `yaml:"zeta" validate:"omitempty,finite,gt=0"`
	// Threshold is the cross-rule tolerance of the robust ε algorithm.
	Threshold *float64 `yaml:"threshold" validate:"omitempty,finite,gte=0"`

	Remainder  string `yaml:"remainder" validate:"omitempty,oneof=u t t-wave v v-wave"`
	Numerator  string `yaml:"numerator" validate:"omitempty,oneof=rho generalized gamma-rho"`
	Recurrence bool   `yaml:"recurrence"`
	Strict     bool   `yaml:"strict"`
}

// Config selects an algorithm and its parameters.
type Config struct {
	Algorithm string `yaml:"algorithm" validate:"required,algorithm"`
	Params    `yaml:",inline"`
}

var validate = mustValidator()

// mustValidator registers the custom tags; a failed registration panics
// during package initialisation.
func mustValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range map[string]validator.Func{
		"finite":    validateFinite,
		"algorithm": validateAlgorithm,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registry: register validation %q: %v", tag, err))
		}
	}

	return v
}

func validateFinite(fl validator.FieldLevel) bool {
	x := fl.Field().Float()
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func validateAlgorithm(fl validator.FieldLevel) bool {
	_, ok := builders[float64]()[fl.Field().String()]
	return ok
}

// Validate checks c against its field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// Load decodes one YAML document from r and validates it.
func Load(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
