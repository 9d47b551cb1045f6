package sim

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var specValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges declared in the struct tags. Cross-field rules
// (sums to 1, contiguous segments) are enforced by NewParameters.
func (s *ParameterSpec) Validate() error {
	if err := specValidate.Struct(s); err != nil {
		return fmt.Errorf("validating parameters: %w", err)
	}
	return nil
}

// LoadParameterSpec reads a YAML parameter file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadParameterSpec(path string) (*ParameterSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}
	return ParseParameterSpec(data)
}

// ParseParameterSpec decodes YAML parameter data and checks field ranges.
func ParseParameterSpec(data []byte) (*ParameterSpec, error) {
	var spec ParameterSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing parameter file: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadParameters reads, validates and builds Parameters from a YAML file.
func LoadParameters(path string) (Parameters, error) {
	spec, err := LoadParameterSpec(path)
	if err != nil {
		return Parameters{}, err
	}
	return NewParameters(*spec)
}

// MarshalParameterSpec renders spec as YAML in the layout LoadParameterSpec reads.
func MarshalParameterSpec(spec ParameterSpec) ([]byte, error) {
	return yaml.Marshal(spec)
}
