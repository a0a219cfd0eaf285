package registry

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"mergingtonactivities/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedFile is the root structure of a seed document.
type SeedFile struct {
	Activities []*domain.Activity `yaml:"activities"`
}

// LoadSeed parses a YAML seed document. Unknown keys are rejected so that
// typos in field names fail at startup.
func LoadSeed(r io.Reader) ([]*domain.Activity, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f SeedFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty seed document", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for _, a := range f.Activities {
		if a != nil && a.Participants == nil {
			a.Participants = []string{}
		}
	}
	return f.Activities, nil
}

// LoadSeedFile reads a seed document from path.
func LoadSeedFile(path string) ([]*domain.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}

// DefaultSeed returns the built-in activities.
func DefaultSeed() []*domain.Activity {
	activities, err := LoadSeed(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(fmt.Sprintf("registry: embedded seed is invalid: %v", err))
	}
	return activities
}
