// Package profiles provides named attribute profiles for the extract
// command. A profile is an ordered list of column names the free-text
// sample_attribute field of a study's samples is expected to split
// into. Profiles live in the user's profiles.yaml file; an embedded
// starter template is written there on first run.
package profiles

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed templates/profiles.yaml
var exampleProfilesTemplate string

// ProfilesConfig represents the complete profiles.yaml file.
type ProfilesConfig struct {
	// Profiles is the list of named attribute profiles.
	Profiles []Profile `yaml:"profiles"`
}

// Profile is one named, ordered attribute column list.
type Profile struct {
	// Name identifies the profile on the command line (--profile).
	Name string `yaml:"name"`

	// Description is a free-form note about which studies the profile
	// fits. Optional.
	Description string `yaml:"description,omitempty"`

	// Columns is the ordered list of attribute column names.
	Columns []string `yaml:"columns"`
}

// Parse reads a profiles.yaml document and validates it.
func Parse(data []byte) (*ProfilesConfig, error) {
	var res ProfilesConfig
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("cannot parse profiles config: %w", err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// Find returns the profile with the given name.
func (c *ProfilesConfig) Find(name string) (Profile, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names returns all profile names in file order.
func (c *ProfilesConfig) Names() []string {
	res := make([]string, len(c.Profiles))
	for i, p := range c.Profiles {
		res[i] = p.Name
	}
	return res
}

// ExampleTemplate returns the embedded starter profiles.yaml content.
func ExampleTemplate() string {
	return exampleProfilesTemplate
}
